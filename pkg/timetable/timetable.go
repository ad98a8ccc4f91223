// Package timetable validates weekly store-hour intervals: one opening
// window per record, optionally split into two sub-periods (morning and
// afternoon around a break), checked for internal ordering and for
// overlap against the other active intervals of the same weekday.
//
// Validation is a pure single-pass decision over caller-supplied data;
// the package performs no I/O. The backend's own uniqueness constraint
// remains the final authority for the fetch-then-validate race.
package timetable

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time as minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses strict "HH:MM" between 00:00 and 23:59.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("timetable: invalid time %q (want HH:MM)", s)
	}
	h, m := 0, 0
	for _, c := range s[:2] {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("timetable: invalid time %q (want HH:MM)", s)
		}
		h = h*10 + int(c-'0')
	}
	for _, c := range s[3:] {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("timetable: invalid time %q (want HH:MM)", s)
		}
		m = m*10 + int(c-'0')
	}
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("timetable: time %q out of range", s)
	}
	return TimeOfDay(h*60 + m), nil
}

// String renders the time back as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// DeliveryType is the service channel an interval applies to.
type DeliveryType string

const (
	Delivery DeliveryType = "delivery"
	Pickup   DeliveryType = "pickup"
	Both     DeliveryType = "both"
)

// intersects reports whether two channels compete for the same window.
// "both" competes with everything.
func (d DeliveryType) intersects(other DeliveryType) bool {
	return d == other || d == Both || other == Both
}

// Interval is one (possibly split) daily opening window. Time fields are
// raw form input; shape validation is the first step of Validate.
type Interval struct {
	ID           uint         `json:"id"`
	DayOfWeek    int          `json:"day_of_week"` // 0=Sunday … 6=Saturday
	StartTime    string       `json:"start_time"`
	EndTime      string       `json:"end_time"`
	StartTime2   string       `json:"start_time_2,omitempty"`
	EndTime2     string       `json:"end_time_2,omitempty"`
	DeliveryType DeliveryType `json:"delivery_type"`
	Active       bool         `json:"is_active"`
}

// DayName returns the weekday label for user-facing messages.
func (iv Interval) DayName() string {
	if iv.DayOfWeek < 0 || iv.DayOfWeek > 6 {
		return fmt.Sprintf("day %d", iv.DayOfWeek)
	}
	return time.Weekday(iv.DayOfWeek).String()
}

// ErrorKind classifies a validation rejection.
type ErrorKind string

const (
	KindMissingField    ErrorKind = "missing_field"
	KindInvalidOrder    ErrorKind = "invalid_order"
	KindIncompleteSplit ErrorKind = "incomplete_split"
	KindPeriodOverlap   ErrorKind = "period_overlap"
	KindOverlap         ErrorKind = "overlap"
)

// ValidationError is the structured rejection returned by Validate.
// Field names the offending input where one exists; Conflict carries the
// clashing interval for KindOverlap so the caller can show its range.
type ValidationError struct {
	Kind     ErrorKind
	Field    string
	Detail   string
	Conflict *Interval
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("timetable: %s: %s", string(e.Kind), e.Detail)
}

// Overlaps reports whether [aStart,aEnd) and [bStart,bEnd) share any
// instant. Touching boundaries (aEnd == bStart) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return (aStart >= bStart && aStart < bEnd) ||
		(aEnd > bStart && aEnd <= bEnd) ||
		(aStart <= bStart && aEnd >= bEnd)
}

// Validate decides whether candidate may be persisted given the already
// registered intervals. The existing set should be freshly loaded by the
// caller; entries that are inactive, on another weekday, on a disjoint
// delivery channel, or that share the candidate's ID (editing) are
// ignored. Returns nil on acceptance, otherwise a *ValidationError.
//
// Only the primary [start,end) window is checked across intervals; split
// second windows are validated internally but not against other records,
// matching the persisted contract.
func Validate(candidate Interval, existing []Interval) error {
	if candidate.DayOfWeek < 0 || candidate.DayOfWeek > 6 {
		return &ValidationError{
			Kind:   KindMissingField,
			Field:  "day_of_week",
			Detail: "day_of_week must be between 0 (Sunday) and 6 (Saturday)",
		}
	}

	start, err := requireTime("start_time", candidate.StartTime)
	if err != nil {
		return err
	}
	end, err := requireTime("end_time", candidate.EndTime)
	if err != nil {
		return err
	}

	if end <= start {
		return &ValidationError{
			Kind:   KindInvalidOrder,
			Field:  "end_time",
			Detail: fmt.Sprintf("end time %s must be after start time %s", end, start),
		}
	}

	hasStart2 := candidate.StartTime2 != ""
	hasEnd2 := candidate.EndTime2 != ""
	if hasStart2 != hasEnd2 {
		return &ValidationError{
			Kind:   KindIncompleteSplit,
			Field:  "start_time_2",
			Detail: "a split day needs both start_time_2 and end_time_2",
		}
	}

	if hasStart2 {
		start2, err := requireTime("start_time_2", candidate.StartTime2)
		if err != nil {
			return err
		}
		end2, err := requireTime("end_time_2", candidate.EndTime2)
		if err != nil {
			return err
		}

		if end2 <= start2 {
			return &ValidationError{
				Kind:   KindInvalidOrder,
				Field:  "end_time_2",
				Detail: fmt.Sprintf("second period end %s must be after its start %s", end2, start2),
			}
		}
		if start2 <= end {
			return &ValidationError{
				Kind:   KindPeriodOverlap,
				Field:  "start_time_2",
				Detail: fmt.Sprintf("the first period should end before %s and the second period should start after %s", start2, end),
			}
		}
	}

	for i := range existing {
		other := existing[i]
		if !other.Active || other.DayOfWeek != candidate.DayOfWeek {
			continue
		}
		if candidate.ID != 0 && other.ID == candidate.ID {
			continue // editing: never self-reject
		}
		if !candidate.DeliveryType.intersects(other.DeliveryType) {
			continue
		}

		oStart, err1 := ParseTimeOfDay(other.StartTime)
		oEnd, err2 := ParseTimeOfDay(other.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}

		if Overlaps(start, end, oStart, oEnd) {
			return &ValidationError{
				Kind:  KindOverlap,
				Field: "start_time",
				Detail: fmt.Sprintf("conflicts with the %s interval %s–%s",
					other.DayName(), oStart, oEnd),
				Conflict: &other,
			}
		}
	}

	return nil
}

func requireTime(field, value string) (TimeOfDay, *ValidationError) {
	if value == "" {
		return 0, &ValidationError{
			Kind:   KindMissingField,
			Field:  field,
			Detail: fmt.Sprintf("the %s field is required", field),
		}
	}
	t, err := ParseTimeOfDay(value)
	if err != nil {
		return 0, &ValidationError{
			Kind:   KindMissingField,
			Field:  field,
			Detail: fmt.Sprintf("the %s field must be a valid HH:MM time", field),
		}
	}
	return t, nil
}
