package services

import (
	"github.com/fabiogif/moday-backoffice/app/models"
	"github.com/fabiogif/moday-backoffice/app/repositories"
	"github.com/fabiogif/moday-backoffice/pkg/audit"
)

// ServiceTypeInput is the create/update payload for a service type.
type ServiceTypeInput struct {
	Name        string `json:"name"        validate:"required,min=2,max=255"`
	Description string `json:"description" validate:"nullable,max=2000"`
	Active      *bool  `json:"is_active"`
}

type ServiceTypeService struct {
	types *repositories.ServiceTypeRepository
}

func NewServiceTypeService() *ServiceTypeService {
	return &ServiceTypeService{types: repositories.NewServiceTypeRepository()}
}

// List returns every service type.
func (s *ServiceTypeService) List() ([]models.ServiceType, error) {
	return s.types.All()
}

// Find loads one service type.
func (s *ServiceTypeService) Find(id uint) (models.ServiceType, error) {
	return s.types.FindByID(id)
}

// Create persists a new service type.
func (s *ServiceTypeService) Create(actorID uint, input ServiceTypeInput) (models.ServiceType, error) {
	st := models.ServiceType{
		Name:        input.Name,
		Description: input.Description,
		Active:      true,
	}
	if input.Active != nil {
		st.Active = *input.Active
	}

	if err := s.types.Create(&st); err != nil {
		return models.ServiceType{}, err
	}

	audit.Record(actorID, "service_type.created", "service_type", st.ID, map[string]any{"name": st.Name})
	return st, nil
}

// Update persists changes to an existing service type.
func (s *ServiceTypeService) Update(actorID, id uint, input ServiceTypeInput) (models.ServiceType, error) {
	st, err := s.types.FindByID(id)
	if err != nil {
		return models.ServiceType{}, err
	}

	st.Name = input.Name
	st.Description = input.Description
	if input.Active != nil {
		st.Active = *input.Active
	}

	if err := s.types.Update(&st); err != nil {
		return models.ServiceType{}, err
	}

	audit.Record(actorID, "service_type.updated", "service_type", id, nil)
	return st, nil
}

// Delete removes a service type.
func (s *ServiceTypeService) Delete(actorID, id uint) error {
	st, err := s.types.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.types.Delete(&st); err != nil {
		return err
	}

	audit.Record(actorID, "service_type.deleted", "service_type", id, nil)
	return nil
}
