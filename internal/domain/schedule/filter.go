package schedule

import (
	"time"

	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
)

// FilterParams holds the optional predicates of the schedule filter
// listing. Supplied predicates are combined as an AND-conjunction.
type FilterParams struct {
	StartDate *time.Time
	EndDate   *time.Time
	ClientID  uint
	ServiceID uint
	Shift     Shift

	Limit  int
	Offset int
}

// Validate rejects the params before any store access. The date-range
// ordering rule lives here and nowhere else.
func (p FilterParams) Validate() error {
	if p.StartDate != nil && p.EndDate != nil && p.StartDate.After(*p.EndDate) {
		return httperr.ErrBusiness(
			"invalid_date_range",
			"start_date must be <= than end_date",
		)
	}

	if p.Shift != "" && !p.Shift.Valid() {
		return httperr.ErrBusiness(
			"invalid_shift",
			"shift must be one of: morning, afternoon, evening",
		)
	}

	return nil
}
