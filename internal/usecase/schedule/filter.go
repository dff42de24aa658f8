package schedule

import (
	"context"

	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/service-scheduler/internal/dto"
)

type FilterSchedules struct {
	repo domain.Repository
}

func NewFilterSchedules(
	repo domain.Repository,
) *FilterSchedules {
	return &FilterSchedules{
		repo: repo,
	}
}

func (uc *FilterSchedules) Execute(
	ctx context.Context,
	params domain.FilterParams,
) (dto.ScheduleList, error) {

	if err := params.Validate(); err != nil {
		return dto.ScheduleList{}, err
	}

	schedules, err := uc.repo.FilterSchedules(ctx, params)
	if err != nil {
		return dto.ScheduleList{}, err
	}

	return dto.NewScheduleList(schedules), nil
}
