package services

import (
	"github.com/fabiogif/moday-backoffice/app/models"
	"github.com/fabiogif/moday-backoffice/app/repositories"
	"github.com/fabiogif/moday-backoffice/pkg/audit"
	"github.com/fabiogif/moday-backoffice/pkg/pricing"
)

// PlanInput is the create/update payload for a subscription plan.
type PlanInput struct {
	Name        string        `json:"name"        validate:"required,min=2,max=255"`
	Description string        `json:"description" validate:"nullable,max=2000"`
	Price       pricing.Money `json:"price"`
	Interval    string        `json:"interval"    validate:"required,in=monthly,yearly"`
	Active      *bool         `json:"is_active"`
}

type PlanService struct {
	plans *repositories.PlanRepository
}

func NewPlanService() *PlanService {
	return &PlanService{plans: repositories.NewPlanRepository()}
}

// List returns every plan, cheapest first.
func (s *PlanService) List() ([]models.Plan, error) {
	return s.plans.All()
}

// Find loads one plan.
func (s *PlanService) Find(id uint) (models.Plan, error) {
	return s.plans.FindByID(id)
}

// Create persists a new plan.
func (s *PlanService) Create(actorID uint, input PlanInput) (models.Plan, error) {
	if input.Price < 0 {
		return models.Plan{}, &pricing.Error{
			Kind:   pricing.KindInvalidPrice,
			Field:  "price",
			Detail: "plan price must not be negative",
		}
	}

	plan := models.Plan{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Interval:    input.Interval,
		Active:      true,
	}
	if input.Active != nil {
		plan.Active = *input.Active
	}

	if err := s.plans.Create(&plan); err != nil {
		return models.Plan{}, err
	}

	audit.Record(actorID, "plan.created", "plan", plan.ID, map[string]any{"name": plan.Name})
	return plan, nil
}

// Update persists changes to an existing plan.
func (s *PlanService) Update(actorID, id uint, input PlanInput) (models.Plan, error) {
	plan, err := s.plans.FindByID(id)
	if err != nil {
		return models.Plan{}, err
	}

	if input.Price < 0 {
		return models.Plan{}, &pricing.Error{
			Kind:   pricing.KindInvalidPrice,
			Field:  "price",
			Detail: "plan price must not be negative",
		}
	}

	plan.Name = input.Name
	plan.Description = input.Description
	plan.Price = input.Price
	plan.Interval = input.Interval
	if input.Active != nil {
		plan.Active = *input.Active
	}

	if err := s.plans.Update(&plan); err != nil {
		return models.Plan{}, err
	}

	audit.Record(actorID, "plan.updated", "plan", id, nil)
	return plan, nil
}

// Delete removes a plan.
func (s *PlanService) Delete(actorID, id uint) error {
	plan, err := s.plans.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.plans.Delete(&plan); err != nil {
		return err
	}

	audit.Record(actorID, "plan.deleted", "plan", id, nil)
	return nil
}
