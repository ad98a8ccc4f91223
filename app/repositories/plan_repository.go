package repositories

import (
	"github.com/fabiogif/moday-backoffice/app/models"
	"github.com/fabiogif/moday-backoffice/pkg/orm"
)

// PlanRepository handles database operations for Plan.
type PlanRepository struct{}

func NewPlanRepository() *PlanRepository {
	return &PlanRepository{}
}

// FindByID looks up a plan by primary key.
func (r *PlanRepository) FindByID(id uint) (models.Plan, error) {
	var plan models.Plan
	err := orm.DB().Model(&models.Plan{}).Where("id = ?", id).First(&plan)
	return plan, err
}

// All returns every plan.
func (r *PlanRepository) All() ([]models.Plan, error) {
	var plans []models.Plan
	err := orm.DB().Model(&models.Plan{}).Order("price").Get(&plans)
	return plans, err
}

// Create persists a new plan.
func (r *PlanRepository) Create(plan *models.Plan) error {
	return orm.DB().Create(plan)
}

// Update persists changes to an existing plan.
func (r *PlanRepository) Update(plan *models.Plan) error {
	return orm.DB().Save(plan)
}

// Delete removes a plan.
func (r *PlanRepository) Delete(plan *models.Plan) error {
	return orm.DB().Delete(plan)
}
