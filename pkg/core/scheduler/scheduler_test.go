package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careops/wardops/pkg/core/model"
)

var horizonStart = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday

func icuStaff(n int) []model.StaffMember {
	names := []string{"Asha", "Ben", "Carla", "Dev", "Ena"}
	staff := make([]model.StaffMember, n)
	for i := 0; i < n; i++ {
		staff[i] = model.StaffMember{
			ID:         names[i],
			Name:       names[i],
			Role:       "nurse",
			Department: "ICU",
			Status:     model.StaffOnDuty,
		}
	}
	return staff
}

func icuConstraints() model.SchedulingConstraints {
	return model.SchedulingConstraints{
		Department:         "ICU",
		MinStaffPerShift:   1,
		MinRestHours:       8,
		MaxWorkingHours:    168,
		MaxConsecutiveDays: 7,
	}
}

func TestGenerate_FatalPreconditions(t *testing.T) {
	dates := Horizon(horizonStart, 7)

	t.Run("empty roster", func(t *testing.T) {
		_, err := New().Generate(nil, icuConstraints(), dates)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("no staff in department", func(t *testing.T) {
		staff := []model.StaffMember{{ID: "s1", Department: "General"}}
		_, err := New().Generate(staff, icuConstraints(), dates)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, err.Error(), "ICU")
	})

	t.Run("below staffing floor", func(t *testing.T) {
		// ICU requires 3 per shift but only 2 ICU staff exist: the whole
		// run aborts, zero schedules.
		constraints := icuConstraints()
		constraints.MinStaffPerShift = 3

		schedules, err := New().Generate(icuStaff(2), constraints, dates)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, err.Error(), "required 3, available 2")
		assert.Nil(t, schedules)
	})

	t.Run("empty horizon", func(t *testing.T) {
		_, err := New().Generate(icuStaff(2), icuConstraints(), nil)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
	})
}

func TestGenerate_CoverageBalancesAcrossShiftTypes(t *testing.T) {
	dates := Horizon(horizonStart, 1)

	schedules, err := New().Generate(icuStaff(3), icuConstraints(), dates)
	require.NoError(t, err)
	require.Len(t, schedules, 3)

	// Three staff on one date spread over the three shift types, in
	// catalogue order.
	require.Len(t, schedules[0].Shifts, 1)
	require.Len(t, schedules[1].Shifts, 1)
	require.Len(t, schedules[2].Shifts, 1)
	assert.Equal(t, "Morning", schedules[0].Shifts[0].ShiftName)
	assert.Equal(t, "Afternoon", schedules[1].Shifts[0].ShiftName)
	assert.Equal(t, "Night", schedules[2].Shifts[0].ShiftName)
}

func TestGenerate_ForcedRestAfterMaxConsecutiveDays(t *testing.T) {
	constraints := icuConstraints()
	constraints.MaxConsecutiveDays = 5
	dates := Horizon(horizonStart, 7)

	schedules, err := New().Generate(icuStaff(1), constraints, dates)
	require.NoError(t, err)
	require.Len(t, schedules, 1)

	shifts := schedules[0].Shifts
	require.Len(t, shifts, 6, "day 6 must be forced idle")

	// Days 0-4 worked, day 5 skipped, day 6 resumes.
	for i := 0; i < 5; i++ {
		assert.Equal(t, dates[i], shifts[i].Date)
	}
	assert.Equal(t, dates[6], shifts[5].Date)
}

func TestGenerate_MaxWorkingHoursCapsTotalShifts(t *testing.T) {
	constraints := icuConstraints()
	constraints.MaxWorkingHours = 16 // two 8-hour shifts
	dates := Horizon(horizonStart, 7)

	schedules, err := New().Generate(icuStaff(1), constraints, dates)
	require.NoError(t, err)

	shifts := schedules[0].Shifts
	require.Len(t, shifts, 2)
	assert.Equal(t, dates[0], shifts[0].Date)
	assert.Equal(t, dates[1], shifts[1].Date)
}

func TestGenerate_NightShiftEndResolvesToNextDay(t *testing.T) {
	sched := NewWithCatalogue([]model.ShiftType{{Name: "Night", StartHour: 23, EndHour: 7}})
	dates := Horizon(horizonStart, 1)

	schedules, err := sched.Generate(icuStaff(1), icuConstraints(), dates)
	require.NoError(t, err)
	require.Len(t, schedules[0].Shifts, 1)

	shift := schedules[0].Shifts[0]
	assert.Equal(t, time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC), shift.Start)
	assert.Equal(t, time.Date(2026, 3, 3, 7, 0, 0, 0, time.UTC), shift.End)
}

func TestGenerate_MinRestBlocksShortTurnaround(t *testing.T) {
	// Nightly shifts end at 07:00 and restart at 23:00 the same day: a 16
	// hour turnaround.
	sched := NewWithCatalogue([]model.ShiftType{{Name: "Night", StartHour: 23, EndHour: 7}})
	dates := Horizon(horizonStart, 2)

	t.Run("16h rest required, back-to-back nights allowed", func(t *testing.T) {
		constraints := icuConstraints()
		constraints.MinRestHours = 16

		schedules, err := sched.Generate(icuStaff(1), constraints, dates)
		require.NoError(t, err)
		assert.Len(t, schedules[0].Shifts, 2)
	})

	t.Run("17h rest required, second night is a gap", func(t *testing.T) {
		constraints := icuConstraints()
		constraints.MinRestHours = 17

		schedules, err := sched.Generate(icuStaff(1), constraints, dates)
		require.NoError(t, err)
		require.Len(t, schedules[0].Shifts, 1)
		assert.Equal(t, dates[0], schedules[0].Shifts[0].Date)
	})
}

func TestGenerate_NightToMorningTurnaroundRejected(t *testing.T) {
	// Two staff, Morning/Night catalogue, 30h rest. The first staff member
	// takes Mornings with a rest gap on day 1; the second takes the Night
	// shift on day 0, ending 07:00 on day 1. Day 1's least-covered shift is
	// then Morning (07:00 start) -- a zero-hour turnaround after the night
	// shift, so day 1 stays a gap. No retry with another shift type.
	sched := NewWithCatalogue([]model.ShiftType{
		{Name: "Morning", StartHour: 7, EndHour: 15},
		{Name: "Night", StartHour: 23, EndHour: 7},
	})
	constraints := icuConstraints()
	constraints.MinRestHours = 30
	dates := Horizon(horizonStart, 3)

	schedules, err := sched.Generate(icuStaff(2), constraints, dates)
	require.NoError(t, err)
	require.Len(t, schedules, 2)

	first := schedules[0].Shifts
	require.Len(t, first, 2)
	assert.Equal(t, "Morning", first[0].ShiftName)
	assert.Equal(t, dates[0], first[0].Date)
	assert.Equal(t, dates[2], first[1].Date)

	second := schedules[1].Shifts
	require.Len(t, second, 2)
	assert.Equal(t, "Night", second[0].ShiftName)
	assert.Equal(t, dates[0], second[0].Date)
	assert.Equal(t, dates[2], second[1].Date, "the morning after a night shift must stay a gap")
}

func TestGenerate_SchedulesFollowRosterOrderAndChronology(t *testing.T) {
	dates := Horizon(horizonStart, 5)

	schedules, err := New().Generate(icuStaff(3), icuConstraints(), dates)
	require.NoError(t, err)
	require.Len(t, schedules, 3)

	assert.Equal(t, "Asha", schedules[0].StaffID)
	assert.Equal(t, "Ben", schedules[1].StaffID)
	assert.Equal(t, "Carla", schedules[2].StaffID)

	for _, schedule := range schedules {
		for i := 1; i < len(schedule.Shifts); i++ {
			assert.True(t, schedule.Shifts[i-1].Date.Before(schedule.Shifts[i].Date),
				"shifts must be in chronological day order")
		}
	}
}

func TestGenerate_DepartmentMatchIgnoresCaseAndWhitespace(t *testing.T) {
	staff := []model.StaffMember{
		{ID: "s1", Name: "S1", Department: " icu ", Status: model.StaffOnDuty},
	}
	dates := Horizon(horizonStart, 1)

	schedules, err := New().Generate(staff, icuConstraints(), dates)
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Len(t, schedules[0].Shifts, 1)
}

func TestHorizon(t *testing.T) {
	start := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)
	dates := Horizon(start, 7)

	require.Len(t, dates, 7)
	assert.Equal(t, horizonStart, dates[0], "dates are normalized to midnight")
	for i := 1; i < len(dates); i++ {
		assert.Equal(t, dates[i-1].AddDate(0, 0, 1), dates[i])
	}
}

func TestDefaultCatalogue(t *testing.T) {
	catalogue := DefaultCatalogue()
	require.Len(t, catalogue, 3)

	assert.Equal(t, 8, catalogue[0].Hours())
	assert.Equal(t, 8, catalogue[1].Hours())
	assert.Equal(t, 8, catalogue[2].Hours())
	assert.False(t, catalogue[0].CrossesMidnight())
	assert.True(t, catalogue[2].CrossesMidnight())
}
