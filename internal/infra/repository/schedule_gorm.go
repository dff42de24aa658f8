package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Related entities
// --------------------------------------------------

func (r *ScheduleGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *ScheduleGormRepository) GetSchedule(
	ctx context.Context,
	id uint,
) (*models.Schedule, error) {

	var s models.Schedule
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleGormRepository) CreateSchedule(
	ctx context.Context,
	s *models.Schedule,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ScheduleGormRepository) UpdateSchedule(
	ctx context.Context,
	s *models.Schedule,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ScheduleGormRepository) DeleteSchedule(
	ctx context.Context,
	s *models.Schedule,
) error {
	return r.db.WithContext(ctx).Delete(s).Error
}

func (r *ScheduleGormRepository) ListSchedules(
	ctx context.Context,
	limit int,
	offset int,
) ([]models.Schedule, error) {

	var schedules []models.Schedule
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *ScheduleGormRepository) FilterSchedules(
	ctx context.Context,
	params domain.FilterParams,
) ([]models.Schedule, error) {

	q := r.db.WithContext(ctx).Model(&models.Schedule{})

	if params.StartDate != nil {
		q = q.Where("date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		q = q.Where("date <= ?", *params.EndDate)
	}

	if params.ClientID != 0 {
		q = q.Where("client_id = ?", params.ClientID)
	}

	if params.ServiceID != 0 {
		q = q.Where("service_id = ?", params.ServiceID)
	}

	if params.Shift != "" {
		q = q.Where("shift = ?", params.Shift.String())
	}

	var schedules []models.Schedule
	if err := q.
		Preload("Client").
		Preload("Service").
		Order("id ASC").
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}
