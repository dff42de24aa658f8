package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/service-scheduler/internal/domain/schedule"
)

func TestShiftValid(t *testing.T) {
	assert.True(t, schedule.ShiftMorning.Valid())
	assert.True(t, schedule.ShiftAfternoon.Valid())
	assert.True(t, schedule.ShiftEvening.Valid())

	assert.False(t, schedule.Shift("").Valid())
	assert.False(t, schedule.Shift("midnight").Valid())
	assert.False(t, schedule.Shift("Morning").Valid())
}
