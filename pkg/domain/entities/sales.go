package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord is a point-of-sale transaction collapsed to its calendar date
type SaleRecord struct {
	Food string
	Qty  decimal.Decimal
	Date time.Time
}

// ForecastRecord is one predicted daily usage from the external demand forecast
type ForecastRecord struct {
	Date       time.Time
	Ingredient Ingredient
	Qty        decimal.Decimal
}
