package repositories

import (
	"github.com/fabiogif/moday-backoffice/app/models"
	"github.com/fabiogif/moday-backoffice/pkg/orm"
	"github.com/fabiogif/moday-backoffice/pkg/pricing"
)

// OrderRepository handles database operations for Order.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// FindByID loads an order with its items and their optionals.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var order models.Order
	err := orm.DB().
		Model(&models.Order{}).
		Preload("Items").
		Preload("Items.Optionals").
		Where("id = ?", id).
		First(&order)
	return order, err
}

// All returns one page of orders, newest first, optionally filtered by
// status ("" means all).
func (r *OrderRepository) All(status string, page, limit int) ([]models.Order, orm.Pagination, error) {
	q := orm.DB().
		Model(&models.Order{}).
		Preload("Items").
		Preload("Items.Optionals").
		Order("id desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var orders []models.Order
	pagination, err := q.GetWithPagination(&orders, page, limit)
	return orders, pagination, err
}

// Create persists an order with its item tree in one cascade.
func (r *OrderRepository) Create(order *models.Order) error {
	return orm.DB().Create(order)
}

// Update persists changes to an existing order.
func (r *OrderRepository) Update(order *models.Order) error {
	return orm.DB().Save(order)
}

// UpdateStatusBulk sets status on every order in ids.
func (r *OrderRepository) UpdateStatusBulk(ids []uint, status string) error {
	return orm.DB().
		Model(&models.Order{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{"status": status})
}

// CountByStatus returns order counts grouped by status.
func (r *OrderRepository) CountByStatus() (map[string]int64, error) {
	counts := make(map[string]int64, len(models.OrderStatuses))
	for status := range models.OrderStatuses {
		n, err := orm.DB().Model(&models.Order{}).Where("status = ?", status).Count()
		if err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, nil
}

// Revenue sums the totals of all delivered orders.
func (r *OrderRepository) Revenue() (pricing.Money, error) {
	var orders []models.Order
	err := orm.DB().
		Model(&models.Order{}).
		Where("status = ?", models.OrderDelivered).
		Get(&orders)
	if err != nil {
		return 0, err
	}

	var total pricing.Money
	for _, o := range orders {
		total += o.Total
	}
	return total, nil
}
