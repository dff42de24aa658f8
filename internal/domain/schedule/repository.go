package schedule

import (
	"context"

	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

type Repository interface {
	// -------- Related entities --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Schedule --------
	GetSchedule(
		ctx context.Context,
		id uint,
	) (*models.Schedule, error)

	CreateSchedule(
		ctx context.Context,
		s *models.Schedule,
	) error

	UpdateSchedule(
		ctx context.Context,
		s *models.Schedule,
	) error

	DeleteSchedule(
		ctx context.Context,
		s *models.Schedule,
	) error

	ListSchedules(
		ctx context.Context,
		limit int,
		offset int,
	) ([]models.Schedule, error)

	FilterSchedules(
		ctx context.Context,
		params FilterParams,
	) ([]models.Schedule, error)
}
