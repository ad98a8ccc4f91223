package timetable_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabiogif/moday-backoffice/pkg/timetable"
)

func kindOf(t *testing.T, err error) timetable.ErrorKind {
	t.Helper()
	var verr *timetable.ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	return verr.Kind
}

func monday(start, end string) timetable.Interval {
	return timetable.Interval{
		DayOfWeek:    1,
		StartTime:    start,
		EndTime:      end,
		DeliveryType: timetable.Both,
		Active:       true,
	}
}

func TestParseTimeOfDay(t *testing.T) {
	for in, want := range map[string]timetable.TimeOfDay{
		"00:00": 0,
		"08:30": 510,
		"23:59": 1439,
	} {
		got, err := timetable.ParseTimeOfDay(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got)
	}

	for _, in := range []string{"24:00", "12:60", "8:00", "0800", "ab:cd", "12:3", ""} {
		_, err := timetable.ParseTimeOfDay(in)
		assert.Error(t, err, "input %q", in)
	}

	assert.Equal(t, "08:05", timetable.TimeOfDay(485).String())
}

func TestValidateAcceptsSimpleInterval(t *testing.T) {
	assert.NoError(t, timetable.Validate(monday("08:00", "12:00"), nil))
}

func TestValidateMissingFields(t *testing.T) {
	iv := monday("", "12:00")
	err := timetable.Validate(iv, nil)
	assert.Equal(t, timetable.KindMissingField, kindOf(t, err))

	var verr *timetable.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "start_time", verr.Field)

	iv = monday("8h00", "12:00")
	err = timetable.Validate(iv, nil)
	assert.Equal(t, timetable.KindMissingField, kindOf(t, err))

	iv = monday("08:00", "12:00")
	iv.DayOfWeek = 7
	err = timetable.Validate(iv, nil)
	assert.Equal(t, timetable.KindMissingField, kindOf(t, err))
}

func TestValidateFirstPeriodOrdering(t *testing.T) {
	// 18:00–08:00 on the same day is inverted, not an overnight window.
	err := timetable.Validate(monday("18:00", "08:00"), nil)
	assert.Equal(t, timetable.KindInvalidOrder, kindOf(t, err))

	var verr *timetable.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "end_time", verr.Field)

	// Zero-length windows are inverted too: end must be strictly after start.
	err = timetable.Validate(monday("08:00", "08:00"), nil)
	assert.Equal(t, timetable.KindInvalidOrder, kindOf(t, err))
}

func TestValidateIncompleteSplit(t *testing.T) {
	iv := monday("08:00", "12:00")
	iv.StartTime2 = "13:00"
	err := timetable.Validate(iv, nil)
	assert.Equal(t, timetable.KindIncompleteSplit, kindOf(t, err))

	iv = monday("08:00", "12:00")
	iv.EndTime2 = "18:00"
	err = timetable.Validate(iv, nil)
	assert.Equal(t, timetable.KindIncompleteSplit, kindOf(t, err))
}

func TestValidateSecondPeriodOrdering(t *testing.T) {
	iv := monday("08:00", "12:00")
	iv.StartTime2 = "18:00"
	iv.EndTime2 = "13:00"
	err := timetable.Validate(iv, nil)
	assert.Equal(t, timetable.KindInvalidOrder, kindOf(t, err))

	var verr *timetable.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "end_time_2", verr.Field)
}

func TestValidatePeriodSeparation(t *testing.T) {
	// 08:00–12:00 then 13:00–18:00 → accepted.
	iv := monday("08:00", "12:00")
	iv.StartTime2 = "13:00"
	iv.EndTime2 = "18:00"
	assert.NoError(t, timetable.Validate(iv, nil))

	// Second period starting inside the first → rejected.
	iv.StartTime2 = "11:00"
	err := timetable.Validate(iv, nil)
	assert.Equal(t, timetable.KindPeriodOverlap, kindOf(t, err))

	// Strictly after means a shared boundary is rejected as well.
	iv.StartTime2 = "12:00"
	err = timetable.Validate(iv, nil)
	assert.Equal(t, timetable.KindPeriodOverlap, kindOf(t, err))
}

func TestValidateCrossIntervalOverlap(t *testing.T) {
	registered := monday("08:00", "12:00")
	registered.ID = 7

	// Monday 10:00–14:00 overlaps Monday 08:00–12:00.
	err := timetable.Validate(monday("10:00", "14:00"), []timetable.Interval{registered})
	assert.Equal(t, timetable.KindOverlap, kindOf(t, err))

	var verr *timetable.ValidationError
	require.True(t, errors.As(err, &verr))
	require.NotNil(t, verr.Conflict)
	assert.Equal(t, uint(7), verr.Conflict.ID)
	assert.Contains(t, verr.Detail, "Monday")

	// Contiguous boundary 12:00–18:00 does not overlap [08:00,12:00).
	assert.NoError(t, timetable.Validate(monday("12:00", "18:00"), []timetable.Interval{registered}))
}

func TestValidateIgnoresInactiveOtherDayAndDisjointChannel(t *testing.T) {
	inactive := monday("08:00", "12:00")
	inactive.Active = false
	assert.NoError(t, timetable.Validate(monday("09:00", "11:00"), []timetable.Interval{inactive}))

	tuesday := monday("08:00", "12:00")
	tuesday.DayOfWeek = 2
	assert.NoError(t, timetable.Validate(monday("09:00", "11:00"), []timetable.Interval{tuesday}))

	pickupOnly := monday("08:00", "12:00")
	pickupOnly.DeliveryType = timetable.Pickup
	deliveryCandidate := monday("09:00", "11:00")
	deliveryCandidate.DeliveryType = timetable.Delivery
	assert.NoError(t, timetable.Validate(deliveryCandidate, []timetable.Interval{pickupOnly}))

	// "both" competes with every channel.
	bothCandidate := monday("09:00", "11:00")
	err := timetable.Validate(bothCandidate, []timetable.Interval{pickupOnly})
	assert.Equal(t, timetable.KindOverlap, kindOf(t, err))
}

func TestValidateEditDoesNotSelfReject(t *testing.T) {
	stored := monday("08:00", "12:00")
	stored.ID = 42

	edited := monday("08:30", "12:30")
	edited.ID = 42
	assert.NoError(t, timetable.Validate(edited, []timetable.Interval{stored}))
}

func TestOverlapsSymmetry(t *testing.T) {
	type window struct{ start, end timetable.TimeOfDay }
	windows := []window{
		{480, 720},  // 08:00–12:00
		{600, 840},  // 10:00–14:00
		{720, 1080}, // 12:00–18:00
		{0, 1439},
		{480, 481},
	}

	for _, a := range windows {
		for _, b := range windows {
			assert.Equal(t,
				timetable.Overlaps(a.start, a.end, b.start, b.end),
				timetable.Overlaps(b.start, b.end, a.start, a.end),
				"overlap must be symmetric for %v vs %v", a, b)
		}
	}

	assert.False(t, timetable.Overlaps(480, 720, 720, 1080))
	assert.True(t, timetable.Overlaps(480, 720, 600, 840))
	assert.True(t, timetable.Overlaps(480, 720, 500, 600)) // containment
}
