package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-scheduler/internal/audit"
	"github.com/BruksfildServices01/service-scheduler/internal/dto"
	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

type AddressHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAddressHandler(db *gorm.DB, audit *audit.Dispatcher) *AddressHandler {
	return &AddressHandler{db: db, audit: audit}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAddressRequest struct {
	ClientID     uint   `json:"client_id" binding:"required,min=1"`
	Street       string `json:"street" binding:"required"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	Reference    string `json:"reference" binding:"required"`
	Number       string `json:"number" binding:"required"`
}

type UpdateAddressRequest struct {
	Street       string `json:"street" binding:"required"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	Reference    string `json:"reference" binding:"required"`
	Number       string `json:"number" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AddressHandler) Create(c *gin.Context) {
	var req CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var client models.Client
	if err := h.db.First(&client, req.ClientID).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found")
		return
	}

	address := models.Address{
		ClientID:     req.ClientID,
		Street:       req.Street,
		Neighborhood: req.Neighborhood,
		Reference:    req.Reference,
		Number:       req.Number,
	}

	if err := h.db.Create(&address).Error; err != nil {
		httperr.Internal(c, "failed_to_create_address", "Could not create address.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "address_created",
		Entity:   "address",
		EntityID: &address.ID,
	})

	httpresp.Created(c, dto.NewAddressPublic(address))
}

// ======================================================
// LIST BY CLIENT
// ======================================================

func (h *AddressHandler) ListByClient(c *gin.Context) {
	clientID := c.Param("client_id")

	var client models.Client
	if err := h.db.First(&client, "id = ?", clientID).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found")
		return
	}

	var addresses []models.Address
	if err := h.db.
		Where("client_id = ?", client.ID).
		Order("id ASC").
		Find(&addresses).Error; err != nil {

		httperr.Internal(c, "failed_to_list_addresses", "Could not list addresses.")
		return
	}

	httpresp.OK(c, dto.NewAddressList(addresses))
}

// ======================================================
// UPDATE
// ======================================================

func (h *AddressHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var address models.Address
	if err := h.db.First(&address, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "address_not_found", "Address not found")
		return
	}

	var req UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	address.Street = req.Street
	address.Neighborhood = req.Neighborhood
	address.Reference = req.Reference
	address.Number = req.Number

	if err := h.db.Save(&address).Error; err != nil {
		httperr.Internal(c, "failed_to_update_address", "Could not update address.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "address_updated",
		Entity:   "address",
		EntityID: &address.ID,
	})

	httpresp.OK(c, dto.NewAddressPublic(address))
}

// ======================================================
// DELETE
// ======================================================

func (h *AddressHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var address models.Address
	if err := h.db.First(&address, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "address_not_found", "Address not found")
		return
	}

	// A client keeps at least one address; the full cascade happens
	// only through client deletion.
	var count int64
	if err := h.db.
		Model(&models.Address{}).
		Where("client_id = ?", address.ClientID).
		Count(&count).Error; err != nil {

		httperr.Internal(c, "failed_to_delete_address", "Could not delete address.")
		return
	}

	if count <= 1 {
		httperr.BadRequest(
			c,
			"sole_address",
			"It is not possible to delete the client's only address.",
		)
		return
	}

	if err := h.db.Delete(&address).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_address", "Could not delete address.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "address_deleted",
		Entity:   "address",
		EntityID: &address.ID,
	})

	httpresp.Message(c, "Address deleted")
}
