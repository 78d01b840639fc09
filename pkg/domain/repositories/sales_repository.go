package repositories

import (
	"time"

	"github.com/vkarel/restock/pkg/domain/entities"
)

// SalesRepository provides access to point-of-sale records
type SalesRepository interface {
	// GetSalesInRange returns sales with dates in [from, to] inclusive.
	GetSalesInRange(from, to time.Time) ([]*entities.SaleRecord, error)

	LoadSales(sales []*entities.SaleRecord) error
}
