package migrations

import (
	"gorm.io/gorm"

	"github.com/fabiogif/moday-backoffice/app/models"
	"github.com/fabiogif/moday-backoffice/pkg/migration"
)

func init() {
	migration.Register("20250301000000_create_users_table", &CreateUsersTable{})
	migration.Register("20250301000001_create_products_table", &CreateProductsTable{})
	migration.Register("20250301000002_create_orders_table", &CreateOrdersTable{})
	migration.Register("20250301000003_create_store_hours_table", &CreateStoreHoursTable{})
	migration.Register("20250301000004_create_service_types_table", &CreateServiceTypesTable{})
	migration.Register("20250301000005_create_plans_table", &CreatePlansTable{})
	migration.Register("20250301000006_create_events_table", &CreateEventsTable{})
}

// -------- 0000: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0001: products + variations + optionals --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{}, &models.Variation{}, &models.Optional{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("optionals", "variations", "products")
}

// -------- 0002: orders + items + item optionals --------

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{}, &models.OrderItem{}, &models.OrderItemOptional{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("order_item_optionals", "order_items", "orders")
}

// -------- 0003: store hours --------

type CreateStoreHoursTable struct{}

func (m *CreateStoreHoursTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.StoreHour{})
}

func (m *CreateStoreHoursTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("store_hours")
}

// -------- 0004: service types --------

type CreateServiceTypesTable struct{}

func (m *CreateServiceTypesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.ServiceType{})
}

func (m *CreateServiceTypesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("service_types")
}

// -------- 0005: plans --------

type CreatePlansTable struct{}

func (m *CreatePlansTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Plan{})
}

func (m *CreatePlansTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("plans")
}

// -------- 0006: events --------

type CreateEventsTable struct{}

func (m *CreateEventsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Event{})
}

func (m *CreateEventsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("events")
}
