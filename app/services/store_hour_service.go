package services

import (
	"errors"

	"github.com/fabiogif/moday-backoffice/app/models"
	"github.com/fabiogif/moday-backoffice/app/repositories"
	"github.com/fabiogif/moday-backoffice/pkg/audit"
	"github.com/fabiogif/moday-backoffice/pkg/metrics"
	"github.com/fabiogif/moday-backoffice/pkg/timetable"
)

// StoreHourInput is the create/update payload for one opening window.
// Time fields are deliberately left to the timetable validator so its
// ordered checks (missing field → ordering → split → overlap) decide
// which message the user sees first.
type StoreHourInput struct {
	DayOfWeek    int    `json:"day_of_week"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	StartTime2   string `json:"start_time_2,omitempty"`
	EndTime2     string `json:"end_time_2,omitempty"`
	DeliveryType string `json:"delivery_type" validate:"required,in=delivery,pickup,both"`
	Active       *bool  `json:"is_active"`
}

type StoreHourService struct {
	hours *repositories.StoreHourRepository
}

func NewStoreHourService() *StoreHourService {
	return &StoreHourService{hours: repositories.NewStoreHourRepository()}
}

// List returns the full weekly timetable.
func (s *StoreHourService) List() ([]models.StoreHour, error) {
	return s.hours.All()
}

// Find loads one store hour.
func (s *StoreHourService) Find(id uint) (models.StoreHour, error) {
	return s.hours.FindByID(id)
}

// Create validates the candidate window against the freshly-loaded
// registered set and persists it on acceptance.
func (s *StoreHourService) Create(actorID uint, input StoreHourInput) (models.StoreHour, error) {
	hour := s.fromInput(input, 0)

	if err := s.validate(hour); err != nil {
		return models.StoreHour{}, err
	}
	if err := s.hours.Create(&hour); err != nil {
		return models.StoreHour{}, err
	}

	audit.Record(actorID, "store_hour.created", "store_hour", hour.ID, map[string]any{
		"day":   hour.DayOfWeek,
		"start": hour.StartTime,
		"end":   hour.EndTime,
	})
	return hour, nil
}

// Update revalidates the edited window. The record's own row is
// excluded from the overlap check, so saving unchanged times never
// self-rejects.
func (s *StoreHourService) Update(actorID, id uint, input StoreHourInput) (models.StoreHour, error) {
	existing, err := s.hours.FindByID(id)
	if err != nil {
		return models.StoreHour{}, err
	}

	hour := s.fromInput(input, id)
	hour.Model = existing.Model

	if err := s.validate(hour); err != nil {
		return models.StoreHour{}, err
	}
	if err := s.hours.Update(&hour); err != nil {
		return models.StoreHour{}, err
	}

	audit.Record(actorID, "store_hour.updated", "store_hour", id, nil)
	return hour, nil
}

// Delete removes a store hour.
func (s *StoreHourService) Delete(actorID, id uint) error {
	hour, err := s.hours.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.hours.Delete(&hour); err != nil {
		return err
	}

	audit.Record(actorID, "store_hour.deleted", "store_hour", id, nil)
	return nil
}

// validate runs the interval checks against the same weekday's rows.
// The database load and the check are not atomic; the backend's own
// validation remains the final authority for concurrent submissions.
func (s *StoreHourService) validate(hour models.StoreHour) error {
	sameDay, err := s.hours.ForDay(hour.DayOfWeek)
	if err != nil {
		return err
	}

	existing := make([]timetable.Interval, len(sameDay))
	for i, row := range sameDay {
		existing[i] = row.Interval()
	}

	if err := timetable.Validate(hour.Interval(), existing); err != nil {
		var verr *timetable.ValidationError
		if errors.As(err, &verr) {
			metrics.StoreHourRejections.WithLabelValues(string(verr.Kind)).Inc()
		}
		return err
	}
	return nil
}

func (s *StoreHourService) fromInput(input StoreHourInput, id uint) models.StoreHour {
	hour := models.StoreHour{
		DayOfWeek:    input.DayOfWeek,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		StartTime2:   input.StartTime2,
		EndTime2:     input.EndTime2,
		DeliveryType: input.DeliveryType,
		Active:       true,
	}
	hour.ID = id
	if input.Active != nil {
		hour.Active = *input.Active
	}
	return hour
}
