package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// UsageSource identifies which signal produced a daily usage value
type UsageSource int

const (
	SourceForecast UsageSource = iota
	SourceActual
	SourceTypical
	SourceNone
)

// String method for UsageSource enum
func (s UsageSource) String() string {
	switch s {
	case SourceForecast:
		return "Forecast"
	case SourceActual:
		return "Actual"
	case SourceTypical:
		return "Typical"
	case SourceNone:
		return "None"
	default:
		return "Unknown"
	}
}

// DailyUsageRecord is the usage of one ingredient on one date. Records are
// unique per (date, ingredient); contributions to the same (date, ingredient,
// unit) are summed before a record is built.
type DailyUsageRecord struct {
	Date       time.Time
	Ingredient Ingredient
	Usage      decimal.Decimal
	Unit       string
}
