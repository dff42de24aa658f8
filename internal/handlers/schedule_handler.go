package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/service-scheduler/internal/dto"
	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
	ucschedule "github.com/BruksfildServices01/service-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher

	createUC *ucschedule.CreateSchedule
	updateUC *ucschedule.UpdateSchedule
	filterUC *ucschedule.FilterSchedules
}

func NewScheduleHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	createUC *ucschedule.CreateSchedule,
	updateUC *ucschedule.UpdateSchedule,
	filterUC *ucschedule.FilterSchedules,
) *ScheduleHandler {
	return &ScheduleHandler{
		db:       db,
		audit:    audit,
		createUC: createUC,
		updateUC: updateUC,
		filterUC: filterUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ScheduleRequest struct {
	ClientID    uint   `json:"client_id" binding:"required,min=1"`
	ServiceID   uint   `json:"service_id" binding:"required,min=1"`
	Date        string `json:"date" binding:"required"`
	Shift       string `json:"shift" binding:"required,oneof=morning afternoon evening"`
	Description string `json:"description"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be formatted as YYYY-MM-DD")
		return
	}

	s, err := h.createUC.Execute(c.Request.Context(), ucschedule.CreateScheduleInput{
		ClientID:    req.ClientID,
		ServiceID:   req.ServiceID,
		Date:        date,
		Shift:       domain.Shift(req.Shift),
		Description: req.Description,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_schedule", "Could not create schedule.")
		return
	}

	httpresp.Created(c, dto.NewSchedulePublic(*s))
}

// ======================================================
// LIST
// ======================================================

func (h *ScheduleHandler) List(c *gin.Context) {
	limit, offset := listWindow(c)

	var schedules []models.Schedule
	if err := h.db.
		Preload("Client").
		Preload("Service").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&schedules).Error; err != nil {

		httperr.Internal(c, "failed_to_list_schedules", "Could not list schedules.")
		return
	}

	httpresp.OK(c, dto.NewScheduleList(schedules))
}

// ======================================================
// FILTER
// ======================================================

func (h *ScheduleHandler) Filter(c *gin.Context) {
	params, ok := h.bindFilterParams(c)
	if !ok {
		return
	}

	list, err := h.filterUC.Execute(c.Request.Context(), params)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_filter_schedules", "Could not filter schedules.")
		return
	}

	httpresp.OK(c, list)
}

func (h *ScheduleHandler) bindFilterParams(c *gin.Context) (domain.FilterParams, bool) {
	var params domain.FilterParams
	params.Limit, params.Offset = listWindow(c)

	if v := c.Query("start_date"); v != "" {
		d, err := parseDate(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "start_date must be formatted as YYYY-MM-DD")
			return params, false
		}
		params.StartDate = &d
	}

	if v := c.Query("end_date"); v != "" {
		d, err := parseDate(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "end_date must be formatted as YYYY-MM-DD")
			return params, false
		}
		params.EndDate = &d
	}

	if v := c.Query("client_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil || id < 1 {
			httperr.BadRequest(c, "invalid_client_id", "client_id must be a positive integer")
			return params, false
		}
		params.ClientID = uint(id)
	}

	if v := c.Query("service_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil || id < 1 {
			httperr.BadRequest(c, "invalid_service_id", "service_id must be a positive integer")
			return params, false
		}
		params.ServiceID = uint(id)
	}

	params.Shift = domain.Shift(c.Query("shift"))

	return params, true
}

// ======================================================
// GET BY ID
// ======================================================

func (h *ScheduleHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var s models.Schedule
	if err := h.db.
		Preload("Client").
		Preload("Service").
		First(&s, "id = ?", id).Error; err != nil {

		httperr.NotFound(c, "schedule_not_found", "Schedule not found")
		return
	}

	httpresp.OK(c, dto.NewSchedulePublic(s))
}

// ======================================================
// UPDATE
// ======================================================

func (h *ScheduleHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "schedule_not_found", "Schedule not found")
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be formatted as YYYY-MM-DD")
		return
	}

	s, err := h.updateUC.Execute(c.Request.Context(), ucschedule.UpdateScheduleInput{
		ScheduleID:  uint(id),
		ClientID:    req.ClientID,
		ServiceID:   req.ServiceID,
		Date:        date,
		Shift:       domain.Shift(req.Shift),
		Description: req.Description,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_schedule", "Could not update schedule.")
		return
	}

	httpresp.OK(c, dto.NewSchedulePublic(*s))
}

// ======================================================
// DELETE
// ======================================================

func (h *ScheduleHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var s models.Schedule
	if err := h.db.First(&s, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "schedule_not_found", "Schedule not found")
		return
	}

	if err := h.db.Delete(&s).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_schedule", "Could not delete schedule.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "schedule_deleted",
		Entity:   "schedule",
		EntityID: &s.ID,
	})

	httpresp.Message(c, "Schedule deleted")
}
