package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseRecord is a single row from the purchasing ledger
type PurchaseRecord struct {
	Ingredient Ingredient
	TxnDate    time.Time
	Qty        decimal.Decimal
	Unit       string
	UnitCost   decimal.Decimal
	Supplier   string
}

// NewPurchaseRecord creates a validated PurchaseRecord
func NewPurchaseRecord(ingredient Ingredient, txnDate time.Time, qty decimal.Decimal, unit string, unitCost decimal.Decimal, supplier string) (*PurchaseRecord, error) {
	if ingredient == "" {
		return nil, fmt.Errorf("ingredient cannot be empty")
	}
	if txnDate.IsZero() {
		return nil, fmt.Errorf("transaction date cannot be zero")
	}
	if qty.IsNegative() {
		return nil, fmt.Errorf("quantity cannot be negative, got %s", qty)
	}
	if unitCost.IsNegative() {
		return nil, fmt.Errorf("unit cost cannot be negative, got %s", unitCost)
	}

	return &PurchaseRecord{
		Ingredient: ingredient,
		TxnDate:    DateOf(txnDate),
		Qty:        qty,
		Unit:       unit,
		UnitCost:   unitCost,
		Supplier:   supplier,
	}, nil
}

// DeliveryRecord is an aggregated delivery landing on a date: all ledger
// transactions for the same ingredient with the same delivery date are summed
// into one record.
type DeliveryRecord struct {
	Date       time.Time
	Ingredient Ingredient
	Qty        decimal.Decimal
}
