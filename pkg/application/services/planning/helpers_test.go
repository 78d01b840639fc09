package planning

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vkarel/restock/pkg/domain/entities"
	"github.com/vkarel/restock/pkg/infrastructure/repositories/memory"
)

// testHorizonStart matches the reference dataset: a one-week horizon starting
// the day after the reference week ends.
var testHorizonStart = entities.Date(2020, 3, 17)

type testFixture struct {
	purchases *memory.PurchaseRepository
	sales     *memory.SalesRepository
	forecasts *memory.ForecastRepository
	recipes   *memory.RecipeRepository
}

func newTestFixture() *testFixture {
	return &testFixture{
		purchases: memory.NewPurchaseRepository(16),
		sales:     memory.NewSalesRepository(64),
		forecasts: memory.NewForecastRepository(64),
		recipes:   memory.NewRecipeRepository(8),
	}
}

func (f *testFixture) planner(t *testing.T, config Config) *Planner {
	t.Helper()
	planner, err := NewPlanner(config, zerolog.Nop(), f.purchases, f.sales, f.forecasts, f.recipes)
	if err != nil {
		t.Fatalf("NewPlanner failed: %v", err)
	}
	return planner
}

// addFlatForecast adds a constant daily forecast for an ingredient across the
// whole test horizon.
func (f *testFixture) addFlatForecast(ingredient entities.Ingredient, perDay float64) {
	for i := 0; i < 7; i++ {
		f.forecasts.AddForecast(entities.ForecastRecord{
			Date:       testHorizonStart.AddDate(0, 0, i),
			Ingredient: ingredient,
			Qty:        decimal.NewFromFloat(perDay),
		})
	}
}

// addLastBuy records a single ledger row old enough that its own delivery
// lands before the test horizon.
func (f *testFixture) addLastBuy(ingredient entities.Ingredient, qty float64, unit string, unitCost float64, supplier string) {
	f.purchases.AddPurchase(entities.PurchaseRecord{
		Ingredient: ingredient,
		TxnDate:    entities.Date(2020, 3, 2),
		Qty:        decimal.NewFromFloat(qty),
		Unit:       unit,
		UnitCost:   decimal.NewFromFloat(unitCost),
		Supplier:   supplier,
	})
}

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func nopLogger() zerolog.Logger { return zerolog.Nop() }

func assertSameDate(t *testing.T, label string, got, want time.Time) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", label, got.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}
