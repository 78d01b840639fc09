package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vkarel/restock/pkg/domain/entities"
)

// PlanResult contains the complete output of a planning run
type PlanResult struct {
	RunID       uuid.UUID
	GeneratedAt time.Time
	Horizon     entities.Horizon

	// Entries holds at most one reorder order per ingredient, sorted by
	// order date ascending then estimated cost descending.
	Entries []entities.ReorderPlanEntry

	// Baseline is the naive repeat-last-order plan used for comparison.
	Baseline []entities.BaselinePlanEntry

	DynamicCost  decimal.Decimal
	BaselineCost decimal.Decimal
	// Savings is baseline minus dynamic; positive means the dynamic plan
	// is cheaper.
	Savings decimal.Decimal
}

// Empty reports whether the run found no ingredient needing a restock
func (r *PlanResult) Empty() bool {
	return len(r.Entries) == 0
}
