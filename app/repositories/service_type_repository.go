package repositories

import (
	"github.com/fabiogif/moday-backoffice/app/models"
	"github.com/fabiogif/moday-backoffice/pkg/orm"
)

// ServiceTypeRepository handles database operations for ServiceType.
type ServiceTypeRepository struct{}

func NewServiceTypeRepository() *ServiceTypeRepository {
	return &ServiceTypeRepository{}
}

// FindByID looks up a service type by primary key.
func (r *ServiceTypeRepository) FindByID(id uint) (models.ServiceType, error) {
	var st models.ServiceType
	err := orm.DB().Model(&models.ServiceType{}).Where("id = ?", id).First(&st)
	return st, err
}

// All returns every service type.
func (r *ServiceTypeRepository) All() ([]models.ServiceType, error) {
	var types []models.ServiceType
	err := orm.DB().Model(&models.ServiceType{}).Order("id").Get(&types)
	return types, err
}

// Create persists a new service type.
func (r *ServiceTypeRepository) Create(st *models.ServiceType) error {
	return orm.DB().Create(st)
}

// Update persists changes to an existing service type.
func (r *ServiceTypeRepository) Update(st *models.ServiceType) error {
	return orm.DB().Save(st)
}

// Delete removes a service type.
func (r *ServiceTypeRepository) Delete(st *models.ServiceType) error {
	return orm.DB().Delete(st)
}
