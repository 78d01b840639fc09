package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReorderPlanEntry is a single replenishment order in the reorder plan. The
// plan carries at most one entry per ingredient per run.
type ReorderPlanEntry struct {
	Ingredient    Ingredient
	OrderDate     time.Time
	DeliveryDate  time.Time
	OrderQty      decimal.Decimal
	Unit          string
	UnitCost      decimal.Decimal
	EstimatedCost decimal.Decimal
	Supplier      string
	// StockoutDate is the first date inventory would have gone negative
	// had no order been placed.
	StockoutDate time.Time
}

// NewReorderPlanEntry creates a validated ReorderPlanEntry. The estimated cost
// is derived as order quantity times unit cost.
func NewReorderPlanEntry(
	ingredient Ingredient,
	orderDate, deliveryDate time.Time,
	orderQty decimal.Decimal,
	unit string,
	unitCost decimal.Decimal,
	supplier string,
	stockoutDate time.Time,
) (*ReorderPlanEntry, error) {
	if ingredient == "" {
		return nil, fmt.Errorf("ingredient cannot be empty")
	}
	if orderQty.IsNegative() {
		return nil, fmt.Errorf("order quantity cannot be negative, got %s", orderQty)
	}
	if orderDate.After(deliveryDate) {
		return nil, fmt.Errorf("order date %v cannot be after delivery date %v", orderDate, deliveryDate)
	}

	return &ReorderPlanEntry{
		Ingredient:    ingredient,
		OrderDate:     orderDate,
		DeliveryDate:  deliveryDate,
		OrderQty:      orderQty,
		Unit:          unit,
		UnitCost:      unitCost,
		EstimatedCost: orderQty.Mul(unitCost),
		Supplier:      supplier,
		StockoutDate:  stockoutDate,
	}, nil
}

// BaselinePlanEntry is one order under the naive repeat-last-order policy
type BaselinePlanEntry struct {
	Ingredient Ingredient
	Qty        decimal.Decimal
	Unit       string
	Cost       decimal.Decimal
}
