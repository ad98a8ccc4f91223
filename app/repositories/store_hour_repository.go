package repositories

import (
	"github.com/fabiogif/moday-backoffice/app/models"
	"github.com/fabiogif/moday-backoffice/pkg/orm"
)

// StoreHourRepository handles database operations for StoreHour.
type StoreHourRepository struct{}

func NewStoreHourRepository() *StoreHourRepository {
	return &StoreHourRepository{}
}

// FindByID looks up a store hour by primary key.
func (r *StoreHourRepository) FindByID(id uint) (models.StoreHour, error) {
	var hour models.StoreHour
	err := orm.DB().Model(&models.StoreHour{}).Where("id = ?", id).First(&hour)
	return hour, err
}

// All returns every store hour ordered by weekday then start time.
func (r *StoreHourRepository) All() ([]models.StoreHour, error) {
	var hours []models.StoreHour
	err := orm.DB().
		Model(&models.StoreHour{}).
		Order("day_of_week, start_time").
		Get(&hours)
	return hours, err
}

// ForDay returns the registered hours of one weekday. The overlap check
// runs against this freshly-loaded set inside the request.
func (r *StoreHourRepository) ForDay(dayOfWeek int) ([]models.StoreHour, error) {
	var hours []models.StoreHour
	err := orm.DB().
		Model(&models.StoreHour{}).
		Where("day_of_week = ?", dayOfWeek).
		Get(&hours)
	return hours, err
}

// Create persists a new store hour.
func (r *StoreHourRepository) Create(hour *models.StoreHour) error {
	return orm.DB().Create(hour)
}

// Update persists changes to an existing store hour.
func (r *StoreHourRepository) Update(hour *models.StoreHour) error {
	return orm.DB().Save(hour)
}

// Delete removes a store hour.
func (r *StoreHourRepository) Delete(hour *models.StoreHour) error {
	return orm.DB().Delete(hour)
}
