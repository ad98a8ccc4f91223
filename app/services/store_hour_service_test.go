package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabiogif/moday-backoffice/pkg/timetable"
)

const monday = 1

func mondayWindow(start, end string) StoreHourInput {
	return StoreHourInput{
		DayOfWeek:    monday,
		StartTime:    start,
		EndTime:      end,
		DeliveryType: "both",
	}
}

func TestStoreHourCreateAndConflict(t *testing.T) {
	setupDB(t)
	svc := NewStoreHourService()

	first, err := svc.Create(1, mondayWindow("08:00", "12:00"))
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	// 10:00–14:00 overlaps 08:00–12:00.
	_, err = svc.Create(1, mondayWindow("10:00", "14:00"))
	var verr *timetable.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, timetable.KindOverlap, verr.Kind)
	require.NotNil(t, verr.Conflict)
	assert.Equal(t, "08:00", verr.Conflict.StartTime)

	// Contiguous 12:00–18:00 touches but does not overlap.
	_, err = svc.Create(1, mondayWindow("12:00", "18:00"))
	require.NoError(t, err)
}

func TestStoreHourOrderingRejected(t *testing.T) {
	setupDB(t)
	svc := NewStoreHourService()

	_, err := svc.Create(1, mondayWindow("18:00", "08:00"))
	var verr *timetable.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, timetable.KindInvalidOrder, verr.Kind)
	assert.Equal(t, "end_time", verr.Field)
}

func TestStoreHourSplitDay(t *testing.T) {
	setupDB(t)
	svc := NewStoreHourService()

	// Second period starting after the first ends is fine.
	input := mondayWindow("08:00", "12:00")
	input.StartTime2 = "13:00"
	input.EndTime2 = "18:00"
	_, err := svc.Create(1, input)
	require.NoError(t, err)

	// Second period starting inside the first is rejected.
	bad := mondayWindow("08:00", "12:00")
	bad.DayOfWeek = 2 // clean day
	bad.StartTime2 = "11:00"
	bad.EndTime2 = "18:00"
	_, err = svc.Create(1, bad)
	var verr *timetable.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, timetable.KindPeriodOverlap, verr.Kind)

	// A lone start_time_2 is an incomplete split.
	partial := mondayWindow("08:00", "12:00")
	partial.DayOfWeek = 3
	partial.StartTime2 = "13:00"
	_, err = svc.Create(1, partial)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, timetable.KindIncompleteSplit, verr.Kind)
}

func TestStoreHourChannelsDoNotCompete(t *testing.T) {
	setupDB(t)
	svc := NewStoreHourService()

	delivery := mondayWindow("08:00", "12:00")
	delivery.DeliveryType = "delivery"
	_, err := svc.Create(1, delivery)
	require.NoError(t, err)

	// Same window on the pickup channel is allowed.
	pickup := mondayWindow("08:00", "12:00")
	pickup.DeliveryType = "pickup"
	_, err = svc.Create(1, pickup)
	require.NoError(t, err)

	// "both" competes with every channel.
	both := mondayWindow("09:00", "11:00")
	_, err = svc.Create(1, both)
	var verr *timetable.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, timetable.KindOverlap, verr.Kind)
}

func TestStoreHourUpdateExcludesSelf(t *testing.T) {
	setupDB(t)
	svc := NewStoreHourService()

	hour, err := svc.Create(1, mondayWindow("08:00", "12:00"))
	require.NoError(t, err)

	// Saving the same window again must not self-reject.
	updated, err := svc.Update(1, hour.ID, mondayWindow("08:00", "12:00"))
	require.NoError(t, err)
	assert.Equal(t, hour.ID, updated.ID)

	// Widening into another row's window still rejects.
	_, err = svc.Create(1, mondayWindow("12:00", "18:00"))
	require.NoError(t, err)

	_, err = svc.Update(1, hour.ID, mondayWindow("08:00", "13:00"))
	var verr *timetable.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, timetable.KindOverlap, verr.Kind)
}

func TestStoreHourInactiveRowsIgnored(t *testing.T) {
	setupDB(t)
	svc := NewStoreHourService()

	off := mondayWindow("08:00", "12:00")
	inactive := false
	off.Active = &inactive
	_, err := svc.Create(1, off)
	require.NoError(t, err)

	// An inactive row never blocks a new window.
	_, err = svc.Create(1, mondayWindow("09:00", "11:00"))
	require.NoError(t, err)
}

func TestStoreHourMissingFields(t *testing.T) {
	setupDB(t)
	svc := NewStoreHourService()

	input := StoreHourInput{DayOfWeek: monday, EndTime: "12:00", DeliveryType: "both"}
	_, err := svc.Create(1, input)
	var verr *timetable.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, timetable.KindMissingField, verr.Kind)
	assert.Equal(t, "start_time", verr.Field)

	input = StoreHourInput{DayOfWeek: 7, StartTime: "08:00", EndTime: "12:00", DeliveryType: "both"}
	_, err = svc.Create(1, input)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "day_of_week", verr.Field)
}
