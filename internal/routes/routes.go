package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-scheduler/internal/audit"
	"github.com/BruksfildServices01/service-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/service-scheduler/internal/infra/repository"
	ucSchedule "github.com/BruksfildServices01/service-scheduler/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, log zerolog.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — SCHEDULES
	// ======================================================
	createScheduleUC := ucSchedule.NewCreateSchedule(
		scheduleRepo,
		auditDispatcher,
	)

	updateScheduleUC := ucSchedule.NewUpdateSchedule(
		scheduleRepo,
		auditDispatcher,
	)

	filterSchedulesUC := ucSchedule.NewFilterSchedules(
		scheduleRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(db, auditDispatcher)
	addressHandler := handlers.NewAddressHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)

	scheduleHandler := handlers.NewScheduleHandler(
		db,
		auditDispatcher,
		createScheduleUC,
		updateScheduleUC,
		filterSchedulesUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// ROUTES
	// ======================================================
	clients := r.Group("/clients")
	{
		clients.POST("", clientHandler.Create)
		clients.GET("", clientHandler.List)
		clients.GET("/:id", clientHandler.Get)
		clients.PUT("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
	}

	address := r.Group("/address")
	{
		address.POST("", addressHandler.Create)
		address.GET("/:client_id", addressHandler.ListByClient)
		address.PUT("/:id", addressHandler.Update)
		address.DELETE("/:id", addressHandler.Delete)
	}

	services := r.Group("/services")
	{
		services.POST("", serviceHandler.Create)
		services.GET("", serviceHandler.List)
		services.GET("/:id", serviceHandler.Get)
		services.PUT("/:id", serviceHandler.Update)
		services.DELETE("/:id", serviceHandler.Delete)
	}

	schedules := r.Group("/schedules")
	{
		schedules.POST("", scheduleHandler.Create)
		schedules.GET("", scheduleHandler.List)
		schedules.GET("/filter", scheduleHandler.Filter)
		schedules.GET("/:id", scheduleHandler.Get)
		schedules.PUT("/:id", scheduleHandler.Update)
		schedules.DELETE("/:id", scheduleHandler.Delete)
	}

	r.GET("/audit-logs", auditLogsHandler.List)
}
