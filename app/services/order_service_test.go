package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabiogif/moday-backoffice/app/models"
	"github.com/fabiogif/moday-backoffice/pkg/database"
	"github.com/fabiogif/moday-backoffice/pkg/pricing"
)

// seedPizza creates the catalogue row the order tests configure against:
// base 35.00, variation Grande +10.00, optionals Bacon 5.00 and
// Borda Recheada 12.00.
func seedPizza(t *testing.T) models.Product {
	t.Helper()

	product := models.Product{
		Name:   "Pizza Margherita",
		Price:  3500,
		Active: true,
		Variations: []models.Variation{
			{Name: "Grande", Price: 1000},
		},
		Optionals: []models.Optional{
			{Name: "Bacon", Price: 500},
			{Name: "Borda Recheada", Price: 1200},
		},
	}
	require.NoError(t, database.DB.Create(&product).Error)
	return product
}

func TestOrderCreatePricesLinesServerSide(t *testing.T) {
	setupDB(t)
	product := seedPizza(t)
	svc := NewOrderService()

	order, err := svc.Create(1, OrderInput{
		CustomerName: "Maria",
		DeliveryType: "delivery",
		Items: []OrderItemInput{{
			ProductID:   product.ID,
			VariationID: &product.Variations[0].ID,
			Quantity:    1,
			Optionals: []OrderOptionalInput{
				{OptionalID: product.Optionals[0].ID, Quantity: 2}, // Bacon ×2
				{OptionalID: product.Optionals[1].ID, Quantity: 1}, // Borda ×1
			},
		}},
	})
	require.NoError(t, err)

	// 35.00 + 10.00 + 5.00×2 + 12.00×1 = 67.00
	assert.Equal(t, "67.00", order.Total.String())
	assert.Equal(t, models.OrderPending, order.Status)
	require.Len(t, order.Items, 1)

	item := order.Items[0]
	assert.Equal(t, "Pizza Margherita", item.ProductName)
	assert.Equal(t, "Grande", item.VariationName)
	assert.Equal(t, pricing.Money(3500), item.BasePrice)
	assert.Len(t, item.Optionals, 2)

	// Snapshot persisted, not just computed.
	saved, err := svc.Find(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Total, saved.Total)
	assert.Len(t, saved.Items, 1)
}

func TestOrderCreateNegativeVariationDiscounts(t *testing.T) {
	setupDB(t)

	product := models.Product{
		Name:   "Combo",
		Price:  3000,
		Active: true,
		Variations: []models.Variation{
			{Name: "Promo", Price: -500},
		},
	}
	require.NoError(t, database.DB.Create(&product).Error)

	svc := NewOrderService()
	order, err := svc.Create(1, OrderInput{
		CustomerName: "João",
		DeliveryType: "pickup",
		Items: []OrderItemInput{{
			ProductID:   product.ID,
			VariationID: &product.Variations[0].ID,
			Quantity:    1,
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "25.00", order.Total.String())
}

func TestOrderCreateMultipliesByLineQuantity(t *testing.T) {
	setupDB(t)
	product := seedPizza(t)
	svc := NewOrderService()

	order, err := svc.Create(1, OrderInput{
		CustomerName: "Ana",
		DeliveryType: "delivery",
		Items: []OrderItemInput{{
			ProductID: product.ID,
			Quantity:  3,
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "105.00", order.Total.String())
}

func TestOrderCreateRejections(t *testing.T) {
	setupDB(t)
	product := seedPizza(t)
	svc := NewOrderService()

	t.Run("unknown product", func(t *testing.T) {
		_, err := svc.Create(1, OrderInput{
			CustomerName: "Maria",
			DeliveryType: "delivery",
			Items:        []OrderItemInput{{ProductID: 9999, Quantity: 1}},
		})
		var ferr *FieldError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, "items.0.product_id", ferr.Field)
	})

	t.Run("unknown variation", func(t *testing.T) {
		bogus := uint(9999)
		_, err := svc.Create(1, OrderInput{
			CustomerName: "Maria",
			DeliveryType: "delivery",
			Items: []OrderItemInput{{
				ProductID:   product.ID,
				VariationID: &bogus,
				Quantity:    1,
			}},
		})
		var ferr *FieldError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, "items.0.variation_id", ferr.Field)
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := svc.Create(1, OrderInput{
			CustomerName: "Maria",
			DeliveryType: "delivery",
			Items:        []OrderItemInput{{ProductID: product.ID, Quantity: 0}},
		})
		var ferr *FieldError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, "items.0.quantity", ferr.Field)
	})

	t.Run("negative optional quantity", func(t *testing.T) {
		_, err := svc.Create(1, OrderInput{
			CustomerName: "Maria",
			DeliveryType: "delivery",
			Items: []OrderItemInput{{
				ProductID: product.ID,
				Quantity:  1,
				Optionals: []OrderOptionalInput{
					{OptionalID: product.Optionals[0].ID, Quantity: -1},
				},
			}},
		})
		var perr *pricing.Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, pricing.KindInvalidQuantity, perr.Kind)
	})

	t.Run("duplicate optional selection", func(t *testing.T) {
		_, err := svc.Create(1, OrderInput{
			CustomerName: "Maria",
			DeliveryType: "delivery",
			Items: []OrderItemInput{{
				ProductID: product.ID,
				Quantity:  1,
				Optionals: []OrderOptionalInput{
					{OptionalID: product.Optionals[0].ID, Quantity: 1},
					{OptionalID: product.Optionals[0].ID, Quantity: 2},
				},
			}},
		})
		var perr *pricing.Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, pricing.KindDuplicateOptional, perr.Kind)
	})

	t.Run("inactive product", func(t *testing.T) {
		off := models.Product{Name: "Retired", Price: 1000, Active: false}
		require.NoError(t, database.DB.Create(&off).Error)

		_, err := svc.Create(1, OrderInput{
			CustomerName: "Maria",
			DeliveryType: "delivery",
			Items:        []OrderItemInput{{ProductID: off.ID, Quantity: 1}},
		})
		var ferr *FieldError
		require.ErrorAs(t, err, &ferr)
		assert.Contains(t, ferr.Message, "not available")
	})
}

func TestOrderStatusTransitions(t *testing.T) {
	setupDB(t)
	product := seedPizza(t)
	svc := NewOrderService()

	order, err := svc.Create(1, OrderInput{
		CustomerName: "Maria",
		DeliveryType: "delivery",
		Items:        []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(1, order.ID, models.OrderPreparing)
	require.NoError(t, err)
	assert.Equal(t, models.OrderPreparing, updated.Status)

	_, err = svc.UpdateStatus(1, order.ID, "shipped")
	var ferr *FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "status", ferr.Field)
}

func TestOrderBulkStatusUpdate(t *testing.T) {
	setupDB(t)
	product := seedPizza(t)
	svc := NewOrderService()

	var ids []uint
	for i := 0; i < 3; i++ {
		order, err := svc.Create(1, OrderInput{
			CustomerName: "Maria",
			DeliveryType: "delivery",
			Items:        []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		})
		require.NoError(t, err)
		ids = append(ids, order.ID)
	}

	require.NoError(t, svc.BulkUpdateStatus(1, BulkStatusInput{IDs: ids, Status: models.OrderReady}))

	orders, _, err := svc.List(models.OrderReady, 1, 10)
	require.NoError(t, err)
	assert.Len(t, orders, 3)
}
