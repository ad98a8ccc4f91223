package models

import (
	"gorm.io/gorm"

	"github.com/fabiogif/moday-backoffice/pkg/timetable"
)

// StoreHour is one weekly opening window, optionally split into two
// periods around a mid-day break. Times are stored as "HH:MM" strings,
// the shape the dashboard submits; timetable.Validate owns the parsing.
type StoreHour struct {
	gorm.Model
	DayOfWeek    int    `gorm:"not null;index"             json:"day_of_week"` // 0=Sunday … 6=Saturday
	StartTime    string `gorm:"size:5;not null"            json:"start_time"`
	EndTime      string `gorm:"size:5;not null"            json:"end_time"`
	StartTime2   string `gorm:"size:5"                     json:"start_time_2,omitempty"`
	EndTime2     string `gorm:"size:5"                     json:"end_time_2,omitempty"`
	DeliveryType string `gorm:"size:20;not null;default:both" json:"delivery_type"` // delivery | pickup | both
	Active       bool   `gorm:"default:true"               json:"is_active"`
}

// Interval converts the row into the timetable value type.
func (h StoreHour) Interval() timetable.Interval {
	return timetable.Interval{
		ID:           h.ID,
		DayOfWeek:    h.DayOfWeek,
		StartTime:    h.StartTime,
		EndTime:      h.EndTime,
		StartTime2:   h.StartTime2,
		EndTime2:     h.EndTime2,
		DeliveryType: timetable.DeliveryType(h.DeliveryType),
		Active:       h.Active,
	}
}
