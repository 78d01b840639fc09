package planning

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vkarel/restock/pkg/domain/entities"
	"github.com/vkarel/restock/pkg/domain/repositories"
)

// ExplodeSales expands point-of-sale records into ingredient usage through the
// recipe mapping. Each sold food item contributes ingredient_amount *
// quantity_sold to that ingredient's usage on the sale date; contributions to
// the same (date, ingredient, unit) are summed. Sales of food items with no
// recipe mapping are skipped and logged as a data-quality signal.
func ExplodeSales(recipes repositories.RecipeRepository, sales []*entities.SaleRecord, logger zerolog.Logger) ([]entities.DailyUsageRecord, error) {
	type usageKey struct {
		date       time.Time
		ingredient entities.Ingredient
		unit       string
	}
	totals := make(map[usageKey]decimal.Decimal)

	skipped := make(map[string]int)
	for _, sale := range sales {
		recipe, err := recipes.GetRecipe(sale.Food)
		if err != nil {
			return nil, fmt.Errorf("failed to look up recipe for %q: %w", sale.Food, err)
		}
		if recipe == nil {
			skipped[sale.Food]++
			continue
		}

		for _, line := range recipe.Lines {
			key := usageKey{
				date:       entities.DateOf(sale.Date),
				ingredient: line.Ingredient,
				unit:       line.Unit,
			}
			totals[key] = totals[key].Add(line.Qty.Mul(sale.Qty))
		}
	}

	for food, count := range skipped {
		logger.Warn().Str("food", food).Int("sales", count).Msg("no recipe mapping for sold food item, usage skipped")
	}

	records := make([]entities.DailyUsageRecord, 0, len(totals))
	for key, usage := range totals {
		records = append(records, entities.DailyUsageRecord{
			Date:       key.date,
			Ingredient: key.ingredient,
			Usage:      usage,
			Unit:       key.unit,
		})
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.Before(records[j].Date)
		}
		if records[i].Ingredient != records[j].Ingredient {
			return records[i].Ingredient < records[j].Ingredient
		}
		return records[i].Unit < records[j].Unit
	})

	return records, nil
}
