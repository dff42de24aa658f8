package dto

import "github.com/BruksfildServices01/service-scheduler/internal/models"

// AddressView is the reduced address shape nested under a client; the
// owner is implied, so client_id is omitted.
type AddressView struct {
	ID           uint   `json:"id"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	Reference    string `json:"reference"`
	Number       string `json:"number"`
}

type AddressPublic struct {
	ID           uint   `json:"id"`
	ClientID     uint   `json:"client_id"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	Reference    string `json:"reference"`
	Number       string `json:"number"`
}

type AddressList struct {
	Addresses []AddressView `json:"addresses"`
}

func NewAddressView(a models.Address) AddressView {
	return AddressView{
		ID:           a.ID,
		Street:       a.Street,
		Neighborhood: a.Neighborhood,
		Reference:    a.Reference,
		Number:       a.Number,
	}
}

func NewAddressPublic(a models.Address) AddressPublic {
	return AddressPublic{
		ID:           a.ID,
		ClientID:     a.ClientID,
		Street:       a.Street,
		Neighborhood: a.Neighborhood,
		Reference:    a.Reference,
		Number:       a.Number,
	}
}

func NewAddressList(addresses []models.Address) AddressList {
	out := make([]AddressView, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, NewAddressView(a))
	}
	return AddressList{Addresses: out}
}
