package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/service-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

type UpdateScheduleInput struct {
	ScheduleID uint

	ClientID  uint
	ServiceID uint

	Date  time.Time
	Shift domain.Shift

	Description string
}

type UpdateSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateSchedule {
	return &UpdateSchedule{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces every mutable field. Existence is checked in order:
// schedule, then client, then service.
func (uc *UpdateSchedule) Execute(
	ctx context.Context,
	in UpdateScheduleInput,
) (*models.Schedule, error) {

	s, err := uc.repo.GetSchedule(ctx, in.ScheduleID)
	if err != nil {
		return nil, httperr.ErrBusiness("schedule_not_found", "Schedule not found")
	}

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found", "Client not found")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found", "Service not found")
	}

	s.ClientID = in.ClientID
	s.ServiceID = in.ServiceID
	s.Date = in.Date
	s.Shift = in.Shift.String()
	s.Description = in.Description
	s.Client = *client
	s.Service = *service

	if err := uc.repo.UpdateSchedule(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "schedule_updated",
		Entity:   "schedule",
		EntityID: &s.ID,
	})

	return s, nil
}
