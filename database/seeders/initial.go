package seeders

import (
	"errors"

	"gorm.io/gorm"

	"github.com/fabiogif/moday-backoffice/app/models"
	"github.com/fabiogif/moday-backoffice/pkg/auth"
)

func init() {
	Register("admin_user", SeedAdminUser)
	Register("service_types", SeedServiceTypes)
	Register("plans", SeedPlans)
}

// SeedAdminUser creates the bootstrap admin account if it is missing.
// The password is a placeholder for local setups; change it on first
// login in any real deployment.
func SeedAdminUser(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", "admin@moday.local").First(&existing).Error
	if err == nil {
		return nil // already seeded
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Name:     "Admin",
		Email:    "admin@moday.local",
		Password: hash,
		Role:     models.RoleAdmin,
	}).Error
}

// SeedServiceTypes inserts the default fulfilment channels.
func SeedServiceTypes(db *gorm.DB) error {
	defaults := []models.ServiceType{
		{Name: "Delivery", Description: "Orders delivered to the customer's address", Active: true},
		{Name: "Pickup", Description: "Orders collected at the counter", Active: true},
		{Name: "Dine-in", Description: "Orders served at the table", Active: true},
	}

	for _, st := range defaults {
		var existing models.ServiceType
		err := db.Where("name = ?", st.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&st).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedPlans inserts the default subscription plans.
func SeedPlans(db *gorm.DB) error {
	defaults := []models.Plan{
		{Name: "Starter", Description: "Single store, core features", Price: 4990, Interval: models.PlanMonthly, Active: true},
		{Name: "Pro", Description: "Unlimited products, live order feed", Price: 9990, Interval: models.PlanMonthly, Active: true},
		{Name: "Pro Yearly", Description: "Pro, billed yearly", Price: 99900, Interval: models.PlanYearly, Active: true},
	}

	for _, plan := range defaults {
		var existing models.Plan
		err := db.Where("name = ?", plan.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&plan).Error; err != nil {
			return err
		}
	}
	return nil
}
