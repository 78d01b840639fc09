package planning

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vkarel/restock/pkg/domain/entities"
)

// BuildBaseline computes the naive recurring-order plan used as the cost
// benchmark: every ingredient with purchase history repeats its last order
// quantity once, ordered on the horizon start date. An entry is included only
// when its hypothetical delivery date lands inside the horizon. The second
// return value is the total baseline cost.
func BuildBaseline(latest map[entities.Ingredient]*entities.PurchaseRecord, horizon entities.Horizon, leadTimeDays int) ([]entities.BaselinePlanEntry, decimal.Decimal) {
	deliveryDate := horizon.Start.AddDate(0, 0, leadTimeDays)

	var entries []entities.BaselinePlanEntry
	total := decimal.Zero
	if !horizon.Contains(deliveryDate) {
		return entries, total
	}

	ingredients := make([]entities.Ingredient, 0, len(latest))
	for ingredient := range latest {
		ingredients = append(ingredients, ingredient)
	}
	sort.Slice(ingredients, func(i, j int) bool { return ingredients[i] < ingredients[j] })

	for _, ingredient := range ingredients {
		last := latest[ingredient]
		cost := last.Qty.Mul(last.UnitCost)
		entries = append(entries, entities.BaselinePlanEntry{
			Ingredient: ingredient,
			Qty:        last.Qty,
			Unit:       last.Unit,
			Cost:       cost,
		})
		total = total.Add(cost)
	}
	return entries, total
}
