package dto

import "github.com/BruksfildServices01/service-scheduler/internal/models"

type ClientPublic struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	PhoneNumber string        `json:"phone_number"`
	Addresses   []AddressView `json:"addresses"`
}

type ClientList struct {
	Clients []ClientPublic `json:"clients"`
}

func NewClientPublic(c models.Client) ClientPublic {
	addresses := make([]AddressView, 0, len(c.Addresses))
	for _, a := range c.Addresses {
		addresses = append(addresses, NewAddressView(a))
	}

	return ClientPublic{
		ID:          c.ID,
		Name:        c.Name,
		PhoneNumber: c.PhoneNumber,
		Addresses:   addresses,
	}
}

func NewClientList(clients []models.Client) ClientList {
	out := make([]ClientPublic, 0, len(clients))
	for _, c := range clients {
		out = append(out, NewClientPublic(c))
	}
	return ClientList{Clients: out}
}
