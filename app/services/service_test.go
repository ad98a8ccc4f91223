package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fabiogif/moday-backoffice/app/models"
	"github.com/fabiogif/moday-backoffice/pkg/database"
)

// setupDB points the shared connection at a fresh in-memory database.
// The DSN is unique per test so parallel packages never share state.
func setupDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Variation{},
		&models.Optional{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderItemOptional{},
		&models.StoreHour{},
		&models.ServiceType{},
		&models.Plan{},
		&models.Event{},
	))

	database.DB = db
	t.Cleanup(func() { database.DB = nil })
}
