package memory

import (
	"time"

	"github.com/vkarel/restock/pkg/domain/entities"
	"github.com/vkarel/restock/pkg/domain/repositories"
)

// SalesRepository provides in-memory point-of-sale storage
type SalesRepository struct {
	sales []*entities.SaleRecord
}

// NewSalesRepository creates a new in-memory sales repository
func NewSalesRepository(expectedRows int) *SalesRepository {
	return &SalesRepository{
		sales: make([]*entities.SaleRecord, 0, expectedRows),
	}
}

// Verify interface compliance
var _ repositories.SalesRepository = (*SalesRepository)(nil)

// LoadSales loads sales into the repository
func (r *SalesRepository) LoadSales(sales []*entities.SaleRecord) error {
	r.sales = append(r.sales, sales...)
	return nil
}

// AddSale adds a single sale to the repository
func (r *SalesRepository) AddSale(sale entities.SaleRecord) {
	r.sales = append(r.sales, &sale)
}

// GetSalesInRange returns sales with dates in [from, to] inclusive
func (r *SalesRepository) GetSalesInRange(from, to time.Time) ([]*entities.SaleRecord, error) {
	from = entities.DateOf(from)
	to = entities.DateOf(to)

	var inRange []*entities.SaleRecord
	for _, s := range r.sales {
		if !s.Date.Before(from) && !s.Date.After(to) {
			inRange = append(inRange, s)
		}
	}
	return inRange, nil
}
