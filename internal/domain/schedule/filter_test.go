package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
)

func date(value string) *time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestFilterParamsValidate(t *testing.T) {
	assert.NoError(t, schedule.FilterParams{}.Validate())

	assert.NoError(t, schedule.FilterParams{
		StartDate: date("2023-09-01"),
		EndDate:   date("2023-09-30"),
	}.Validate())

	// equal bounds are a valid one-day window
	assert.NoError(t, schedule.FilterParams{
		StartDate: date("2023-09-15"),
		EndDate:   date("2023-09-15"),
	}.Validate())

	// either bound may be supplied alone
	assert.NoError(t, schedule.FilterParams{StartDate: date("2023-09-15")}.Validate())
	assert.NoError(t, schedule.FilterParams{EndDate: date("2023-09-15")}.Validate())
}

func TestFilterParamsValidateRejectsInvertedRange(t *testing.T) {
	err := schedule.FilterParams{
		StartDate: date("2023-09-30"),
		EndDate:   date("2023-09-01"),
	}.Validate()

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_range"))
}

func TestFilterParamsValidateRejectsUnknownShift(t *testing.T) {
	err := schedule.FilterParams{Shift: "midnight"}.Validate()

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_shift"))
}
