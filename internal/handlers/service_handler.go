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

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit}
}

// ======================================================
// REQUESTS
// ======================================================

type ServiceRequest struct {
	Type        string  `json:"type" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gte=0"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	service := models.Service{
		Type:        req.Type,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "service_created",
		Entity:   "service",
		EntityID: &service.ID,
	})

	httpresp.Created(c, dto.NewServicePublic(service))
}

func (h *ServiceHandler) List(c *gin.Context) {
	limit, offset := listWindow(c)

	var services []models.Service
	if err := h.db.
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.OK(c, dto.NewServiceList(services))
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found")
		return
	}

	httpresp.OK(c, dto.NewServicePublic(service))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	service.Type = req.Type
	service.Description = req.Description
	service.Price = req.Price

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &service.ID,
	})

	httpresp.OK(c, dto.NewServicePublic(service))
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found")
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &service.ID,
	})

	httpresp.Message(c, "Service deleted")
}
