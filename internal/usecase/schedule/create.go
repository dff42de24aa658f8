package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/service-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateScheduleInput struct {
	ClientID  uint
	ServiceID uint

	Date  time.Time
	Shift domain.Shift

	Description string
}

// ======================================================
// USE CASE
// ======================================================

type CreateSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateSchedule {
	return &CreateSchedule{
		repo:  repo,
		audit: audit,
	}
}

// Execute checks the client before the service, so the Not Found
// message names whichever reference is missing first.
func (uc *CreateSchedule) Execute(
	ctx context.Context,
	in CreateScheduleInput,
) (*models.Schedule, error) {

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found", "Client not found")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found", "Service not found")
	}

	s := &models.Schedule{
		ClientID:    in.ClientID,
		ServiceID:   in.ServiceID,
		Date:        in.Date,
		Shift:       in.Shift.String(),
		Description: in.Description,
	}

	if err := uc.repo.CreateSchedule(ctx, s); err != nil {
		return nil, err
	}

	s.Client = *client
	s.Service = *service

	uc.audit.Dispatch(audit.Event{
		Action:   "schedule_created",
		Entity:   "schedule",
		EntityID: &s.ID,
	})

	return s, nil
}
