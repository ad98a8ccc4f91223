package repositories

import (
	"github.com/fabiogif/moday-backoffice/app/models"
	"github.com/fabiogif/moday-backoffice/pkg/orm"
)

// EventRepository handles database operations for Event.
type EventRepository struct{}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

// FindByID looks up an event by primary key.
func (r *EventRepository) FindByID(id uint) (models.Event, error) {
	var event models.Event
	err := orm.DB().Model(&models.Event{}).Where("id = ?", id).First(&event)
	return event, err
}

// All returns one page of events, soonest first.
func (r *EventRepository) All(page, limit int) ([]models.Event, orm.Pagination, error) {
	var events []models.Event
	pagination, err := orm.DB().
		Model(&models.Event{}).
		Order("starts_at").
		GetWithPagination(&events, page, limit)
	return events, pagination, err
}

// Create persists a new event.
func (r *EventRepository) Create(event *models.Event) error {
	return orm.DB().Create(event)
}

// Update persists changes to an existing event.
func (r *EventRepository) Update(event *models.Event) error {
	return orm.DB().Save(event)
}

// Delete removes an event.
func (r *EventRepository) Delete(event *models.Event) error {
	return orm.DB().Delete(event)
}
