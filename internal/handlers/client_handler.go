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

type ClientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClientHandler(db *gorm.DB, audit *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{db: db, audit: audit}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClientRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`

	// Optional initial address, created in the same transaction when
	// a street is supplied.
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	Reference    string `json:"reference"`
	Number       string `json:"number"`
}

type UpdateClientRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var existing models.Client
	if err := h.db.
		Where("phone_number = ?", req.PhoneNumber).
		First(&existing).Error; err == nil {

		httperr.Conflict(
			c,
			"phone_number_in_use",
			"Phone number already exists in another client",
		)
		return
	}

	client := models.Client{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&client).Error; err != nil {
			return err
		}

		if req.Street != "" {
			address := models.Address{
				ClientID:     client.ID,
				Street:       req.Street,
				Neighborhood: req.Neighborhood,
				Reference:    req.Reference,
				Number:       req.Number,
			}
			if err := tx.Create(&address).Error; err != nil {
				return err
			}
			client.Addresses = append(client.Addresses, address)
		}

		return nil
	})

	if err != nil {
		httperr.Internal(c, "failed_to_create_client", "Could not create client.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.Created(c, dto.NewClientPublic(client))
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	limit, offset := listWindow(c)

	var clients []models.Client
	if err := h.db.
		Preload("Addresses").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Could not list clients.")
		return
	}

	httpresp.OK(c, dto.NewClientList(clients))
}

// ======================================================
// GET BY ID
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := h.db.
		Preload("Addresses").
		First(&client, "id = ?", id).Error; err != nil {

		httperr.NotFound(c, "client_not_found", "Client not found")
		return
	}

	httpresp.OK(c, dto.NewClientPublic(client))
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := h.db.
		Preload("Addresses").
		First(&client, "id = ?", id).Error; err != nil {

		httperr.NotFound(c, "client_not_found", "Client not found")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var other models.Client
	if err := h.db.
		Where("phone_number = ?", req.PhoneNumber).
		First(&other).Error; err == nil && other.ID != client.ID {

		httperr.Conflict(
			c,
			"phone_number_in_use",
			"Phone number already exists in another client",
		)
		return
	}

	client.Name = req.Name
	if client.PhoneNumber != req.PhoneNumber {
		client.PhoneNumber = req.PhoneNumber
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Could not update client.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.OK(c, dto.NewClientPublic(client))
}

// ======================================================
// DELETE (cascades owned addresses)
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := h.db.First(&client, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("client_id = ?", client.ID).
			Delete(&models.Address{}).Error; err != nil {
			return err
		}
		return tx.Delete(&client).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Could not delete client.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.Message(c, "Client deleted")
}
