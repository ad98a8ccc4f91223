package services

import (
	"time"

	"github.com/fabiogif/moday-backoffice/app/models"
	"github.com/fabiogif/moday-backoffice/app/repositories"
	"github.com/fabiogif/moday-backoffice/pkg/audit"
	"github.com/fabiogif/moday-backoffice/pkg/orm"
)

// EventInput is the create/update payload for a promotional event.
type EventInput struct {
	Title       string    `json:"title"       validate:"required,min=2,max=255"`
	Description string    `json:"description" validate:"nullable,max=2000"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Active      *bool     `json:"is_active"`
}

type EventService struct {
	events *repositories.EventRepository
}

func NewEventService() *EventService {
	return &EventService{events: repositories.NewEventRepository()}
}

// List returns one page of events.
func (s *EventService) List(page, limit int) ([]models.Event, orm.Pagination, error) {
	return s.events.All(page, limit)
}

// Find loads one event.
func (s *EventService) Find(id uint) (models.Event, error) {
	return s.events.FindByID(id)
}

// Create validates the date window and persists a new event.
func (s *EventService) Create(actorID uint, input EventInput) (models.Event, error) {
	if err := validateWindow(input); err != nil {
		return models.Event{}, err
	}

	event := models.Event{
		Title:       input.Title,
		Description: input.Description,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		Active:      true,
	}
	if input.Active != nil {
		event.Active = *input.Active
	}

	if err := s.events.Create(&event); err != nil {
		return models.Event{}, err
	}

	audit.Record(actorID, "event.created", "event", event.ID, map[string]any{"title": event.Title})
	return event, nil
}

// Update validates the date window and persists changes.
func (s *EventService) Update(actorID, id uint, input EventInput) (models.Event, error) {
	event, err := s.events.FindByID(id)
	if err != nil {
		return models.Event{}, err
	}

	if err := validateWindow(input); err != nil {
		return models.Event{}, err
	}

	event.Title = input.Title
	event.Description = input.Description
	event.StartsAt = input.StartsAt
	event.EndsAt = input.EndsAt
	if input.Active != nil {
		event.Active = *input.Active
	}

	if err := s.events.Update(&event); err != nil {
		return models.Event{}, err
	}

	audit.Record(actorID, "event.updated", "event", id, nil)
	return event, nil
}

// Delete removes an event.
func (s *EventService) Delete(actorID, id uint) error {
	event, err := s.events.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.events.Delete(&event); err != nil {
		return err
	}

	audit.Record(actorID, "event.deleted", "event", id, nil)
	return nil
}

func validateWindow(input EventInput) error {
	if input.StartsAt.IsZero() {
		return fieldErrf("starts_at", "The starts_at field is required.")
	}
	if input.EndsAt.IsZero() {
		return fieldErrf("ends_at", "The ends_at field is required.")
	}
	if !input.EndsAt.After(input.StartsAt) {
		return fieldErrf("ends_at", "The ends_at must be after starts_at.")
	}
	return nil
}
