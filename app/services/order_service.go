package services

import (
	"fmt"

	"github.com/fabiogif/moday-backoffice/app/models"
	"github.com/fabiogif/moday-backoffice/app/repositories"
	"github.com/fabiogif/moday-backoffice/pkg/audit"
	"github.com/fabiogif/moday-backoffice/pkg/logger"
	"github.com/fabiogif/moday-backoffice/pkg/metrics"
	"github.com/fabiogif/moday-backoffice/pkg/orm"
	"github.com/fabiogif/moday-backoffice/pkg/pricing"
)

// OrderInput is the create-order payload.
type OrderInput struct {
	CustomerName  string           `json:"customer_name"  validate:"required,max=255"`
	CustomerPhone string           `json:"customer_phone" validate:"nullable,max=50"`
	DeliveryType  string           `json:"delivery_type"  validate:"required,in=delivery,pickup"`
	Items         []OrderItemInput `json:"items"          validate:"required"`
}

// OrderItemInput configures one line: a product, at most one variation
// and any number of optional selections.
type OrderItemInput struct {
	ProductID   uint                 `json:"product_id"`
	VariationID *uint                `json:"variation_id,omitempty"`
	Quantity    int                  `json:"quantity"`
	Optionals   []OrderOptionalInput `json:"optionals,omitempty"`
}

// OrderOptionalInput selects an optional with a quantity.
type OrderOptionalInput struct {
	OptionalID uint `json:"optional_id"`
	Quantity   int  `json:"quantity"`
}

// StatusInput updates one order's status.
type StatusInput struct {
	Status string `json:"status" validate:"required,in=pending,preparing,ready,delivered,cancelled"`
}

// BulkStatusInput updates the status of several orders at once.
type BulkStatusInput struct {
	IDs    []uint `json:"ids"    validate:"required"`
	Status string `json:"status" validate:"required,in=pending,preparing,ready,delivered,cancelled"`
}

type OrderService struct {
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
}

func NewOrderService() *OrderService {
	return &OrderService{
		orders:   repositories.NewOrderRepository(),
		products: repositories.NewProductRepository(),
	}
}

// List returns one page of orders, optionally filtered by status.
func (s *OrderService) List(status string, page, limit int) ([]models.Order, orm.Pagination, error) {
	if status != "" && !models.OrderStatuses[status] {
		return nil, orm.Pagination{}, fieldErrf("status", "The selected status is invalid.")
	}
	return s.orders.All(status, page, limit)
}

// Find loads one order with its item tree.
func (s *OrderService) Find(id uint) (models.Order, error) {
	return s.orders.FindByID(id)
}

// Create prices every line server-side and persists the order. Client
// supplied prices are never trusted; the catalogue rows loaded inside
// this request are the only price source.
func (s *OrderService) Create(actorID uint, input OrderInput) (models.Order, error) {
	order := models.Order{
		UserID:        actorID,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		DeliveryType:  input.DeliveryType,
		Status:        models.OrderPending,
	}

	for i, line := range input.Items {
		field := fmt.Sprintf("items.%d", i)

		if line.Quantity < 1 {
			return models.Order{}, fieldErrf(field+".quantity", "The quantity must be at least 1.")
		}

		product, err := s.products.FindByID(line.ProductID)
		if err != nil {
			return models.Order{}, fieldErrf(field+".product_id", "The selected product is invalid.")
		}
		if !product.Active {
			return models.Order{}, fieldErrf(field+".product_id", "The product %q is not available.", product.Name)
		}

		item := models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			BasePrice:   product.Price,
			Quantity:    line.Quantity,
		}

		var variation *pricing.Variation
		if line.VariationID != nil {
			row, ok := findVariation(product.Variations, *line.VariationID)
			if !ok {
				return models.Order{}, fieldErrf(field+".variation_id", "The selected variation is invalid.")
			}
			v := row.Pricing()
			variation = &v
			item.VariationID = line.VariationID
			item.VariationName = row.Name
			item.VariationPrice = row.Price
		}

		selections := make([]pricing.Selection, 0, len(line.Optionals))
		for _, sel := range line.Optionals {
			row, ok := findOptional(product.Optionals, sel.OptionalID)
			if !ok {
				return models.Order{}, fieldErrf(field+".optionals", "The selected optional is invalid.")
			}
			selections = append(selections, pricing.Selection{
				Optional: row.Pricing(),
				Quantity: sel.Quantity,
			})
			item.Optionals = append(item.Optionals, models.OrderItemOptional{
				OptionalID: row.ID,
				Name:       row.Name,
				Price:      row.Price,
				Quantity:   sel.Quantity,
			})
		}

		total, err := pricing.ComputeLineTotal(product.Price, variation, selections, line.Quantity)
		if err != nil {
			return models.Order{}, err
		}

		item.Total = total
		order.Total += total
		order.Items = append(order.Items, item)
	}

	if len(order.Items) == 0 {
		return models.Order{}, fieldErrf("items", "The items field is required.")
	}

	if err := s.orders.Create(&order); err != nil {
		return models.Order{}, err
	}

	metrics.OrdersCreated.Inc()
	OrderFeed.Publish("order.created", order)
	audit.Record(actorID, "order.created", "order", order.ID, map[string]any{
		"total": order.Total.String(),
		"items": len(order.Items),
	})
	logger.Info("order: created", "order_id", order.ID, "total", order.Total.String())

	return order, nil
}

// UpdateStatus moves one order to a new status.
func (s *OrderService) UpdateStatus(actorID, id uint, status string) (models.Order, error) {
	if !models.OrderStatuses[status] {
		return models.Order{}, fieldErrf("status", "The selected status is invalid.")
	}

	order, err := s.orders.FindByID(id)
	if err != nil {
		return models.Order{}, err
	}

	order.Status = status
	if err := s.orders.Update(&order); err != nil {
		return models.Order{}, err
	}

	metrics.OrderStatusChanges.WithLabelValues(status).Inc()
	OrderFeed.Publish("order.status_changed", map[string]any{"id": order.ID, "status": status})
	audit.Record(actorID, "order.status_changed", "order", order.ID, map[string]any{"status": status})

	return order, nil
}

// BulkUpdateStatus moves several orders to a new status at once.
func (s *OrderService) BulkUpdateStatus(actorID uint, input BulkStatusInput) error {
	if !models.OrderStatuses[input.Status] {
		return fieldErrf("status", "The selected status is invalid.")
	}
	if len(input.IDs) == 0 {
		return fieldErrf("ids", "The ids field is required.")
	}

	if err := s.orders.UpdateStatusBulk(input.IDs, input.Status); err != nil {
		return err
	}

	for range input.IDs {
		metrics.OrderStatusChanges.WithLabelValues(input.Status).Inc()
	}
	OrderFeed.Publish("order.status_changed_bulk", map[string]any{"ids": input.IDs, "status": input.Status})
	audit.Record(actorID, "order.status_changed_bulk", "order", 0, map[string]any{
		"ids":    input.IDs,
		"status": input.Status,
	})
	return nil
}

func findVariation(rows []models.Variation, id uint) (models.Variation, bool) {
	for _, row := range rows {
		if row.ID == id {
			return row, true
		}
	}
	return models.Variation{}, false
}

func findOptional(rows []models.Optional, id uint) (models.Optional, bool) {
	for _, row := range rows {
		if row.ID == id {
			return row, true
		}
	}
	return models.Optional{}, false
}
