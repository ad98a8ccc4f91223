package services

import (
	"github.com/fabiogif/moday-backoffice/app/repositories"
)

// Stats is the dashboard aggregate served over GraphQL.
type Stats struct {
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
	Revenue        string           `json:"revenue"` // delivered orders, decimal string
	Products       int64            `json:"products"`
}

type DashboardService struct {
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
}

func NewDashboardService() *DashboardService {
	return &DashboardService{
		orders:   repositories.NewOrderRepository(),
		products: repositories.NewProductRepository(),
	}
}

// Stats aggregates order counts by status, delivered revenue and the
// catalogue size.
func (s *DashboardService) Stats() (Stats, error) {
	counts, err := s.orders.CountByStatus()
	if err != nil {
		return Stats{}, err
	}

	revenue, err := s.orders.Revenue()
	if err != nil {
		return Stats{}, err
	}

	productCount, err := s.products.Count()
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		OrdersByStatus: counts,
		Revenue:        revenue.String(),
		Products:       productCount,
	}, nil
}
