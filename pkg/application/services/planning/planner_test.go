package planning

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vkarel/restock/pkg/domain/entities"
)

// The reference scenario: lettuce starts at 50g (its last order quantity),
// burns 20g/day with no scheduled deliveries, and a 3-day lead time. Inventory
// goes negative on the third horizon date (50-60), so the latest safe order
// date is three days earlier. Remaining need from the delivery date through
// horizon end is 100g, offset by the 10g still projected on hand that morning.
func TestPlanner_SingleIngredientStockout(t *testing.T) {
	f := newTestFixture()
	f.addLastBuy("Lettuce", 50, "g", 0.05, "GreenGrocer")
	f.addFlatForecast("Lettuce", 20)

	planner := f.planner(t, Config{LeadTimeDays: 3, HorizonDays: 7})
	result, err := planner.BuildPlan(context.Background(), testHorizonStart)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	if len(result.Entries) != 1 {
		t.Fatalf("Expected 1 reorder entry, got %d", len(result.Entries))
	}
	entry := result.Entries[0]

	assertSameDate(t, "stockout", entry.StockoutDate, entities.Date(2020, 3, 19))
	assertSameDate(t, "order_date", entry.OrderDate, entities.Date(2020, 3, 16))
	assertSameDate(t, "delivery_date", entry.DeliveryDate, entities.Date(2020, 3, 19))

	if !entry.OrderQty.Equal(dec(90)) {
		t.Errorf("OrderQty = %s, want 90", entry.OrderQty)
	}
	if entry.Unit != "g" {
		t.Errorf("Unit = %q, want g", entry.Unit)
	}
	if entry.Supplier != "GreenGrocer" {
		t.Errorf("Supplier = %q, want GreenGrocer", entry.Supplier)
	}
	if !entry.EstimatedCost.Equal(dec(4.5)) {
		t.Errorf("EstimatedCost = %s, want 4.50", entry.EstimatedCost)
	}
	if !result.DynamicCost.Equal(dec(4.5)) {
		t.Errorf("DynamicCost = %s, want 4.50", result.DynamicCost)
	}
}

func TestPlanner_NoStockoutMeansNoEntry(t *testing.T) {
	f := newTestFixture()
	f.addLastBuy("Lettuce", 500, "g", 0.05, "GreenGrocer")
	f.addFlatForecast("Lettuce", 20)

	// Zero usage, zero inventory, zero deliveries: also no entry.
	f.addFlatForecast("Saffron", 0)

	planner := f.planner(t, Config{LeadTimeDays: 3, HorizonDays: 7})
	result, err := planner.BuildPlan(context.Background(), testHorizonStart)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	if !result.Empty() {
		t.Fatalf("Expected empty plan, got %d entries", len(result.Entries))
	}
	if !result.DynamicCost.IsZero() {
		t.Errorf("DynamicCost = %s, want 0", result.DynamicCost)
	}
}

func TestPlanner_AtMostOneEntryPerIngredient(t *testing.T) {
	f := newTestFixture()
	// Tiny starting stock against heavy usage: stocks out on day one and
	// would stock out again later without the single-order policy.
	f.addLastBuy("Lettuce", 10, "g", 0.05, "GreenGrocer")
	f.addFlatForecast("Lettuce", 50)
	f.addLastBuy("Milk", 100, "ml", 0.002, "DairyCo")
	f.addFlatForecast("Milk", 80)

	planner := f.planner(t, Config{LeadTimeDays: 3, HorizonDays: 7})
	result, err := planner.BuildPlan(context.Background(), testHorizonStart)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	seen := make(map[entities.Ingredient]int)
	for _, entry := range result.Entries {
		seen[entry.Ingredient]++
	}
	for ingredient, count := range seen {
		if count > 1 {
			t.Errorf("Ingredient %s has %d entries, want at most 1", ingredient, count)
		}
	}
	if len(result.Entries) != 2 {
		t.Errorf("Expected entries for both ingredients, got %d", len(result.Entries))
	}
}

func TestPlanner_LeadTimeInvariant(t *testing.T) {
	f := newTestFixture()
	f.addLastBuy("Lettuce", 50, "g", 0.05, "GreenGrocer")
	f.addFlatForecast("Lettuce", 20)
	f.addLastBuy("Milk", 30, "ml", 0.002, "DairyCo")
	f.addFlatForecast("Milk", 40)

	for _, leadTime := range []int{0, 1, 3, 5} {
		planner := f.planner(t, Config{LeadTimeDays: leadTime, HorizonDays: 7})
		result, err := planner.BuildPlan(context.Background(), testHorizonStart)
		if err != nil {
			t.Fatalf("BuildPlan(lead=%d) failed: %v", leadTime, err)
		}

		for _, entry := range result.Entries {
			gap := entry.DeliveryDate.Sub(entry.OrderDate).Hours() / 24
			if int(gap) != leadTime {
				t.Errorf("lead=%d: %s delivery gap = %v days", leadTime, entry.Ingredient, gap)
			}
			if entry.OrderQty.IsNegative() {
				t.Errorf("lead=%d: %s negative order qty %s", leadTime, entry.Ingredient, entry.OrderQty)
			}
		}
	}
}

// Coverage: re-simulating with the sized order injected must not stock out
// before horizon end.
func TestPlanner_OrderCoversHorizon(t *testing.T) {
	f := newTestFixture()
	f.addLastBuy("Lettuce", 50, "g", 0.05, "GreenGrocer")
	f.addFlatForecast("Lettuce", 20)
	f.addLastBuy("Milk", 75, "ml", 0.002, "DairyCo")
	f.addFlatForecast("Milk", 60)
	// A mid-horizon ledger delivery to exercise the schedule as well.
	f.purchases.AddPurchase(entities.PurchaseRecord{
		Ingredient: "Milk",
		TxnDate:    entities.Date(2020, 3, 16),
		Qty:        decimal.NewFromInt(40),
		Unit:       "ml",
		UnitCost:   decimal.NewFromFloat(0.002),
		Supplier:   "DairyCo",
	})

	config := Config{LeadTimeDays: 3, HorizonDays: 7}
	planner := f.planner(t, config)
	result, err := planner.BuildPlan(context.Background(), testHorizonStart)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}
	if result.Empty() {
		t.Fatal("Expected reorder entries for the coverage check")
	}

	// Rebuild the simulation state and inject each planned order.
	horizon, _ := entities.NewHorizon(testHorizonStart, 7)
	forecasts, _ := f.forecasts.GetForecasts()
	purchases, _ := f.purchases.GetPurchases()
	latest, _ := f.purchases.GetLatestPurchases()

	resolver := NewUsageResolver(horizon, forecasts, nil)
	schedule := NewDeliverySchedule(purchases, config.LeadTimeDays)
	simulator := NewSimulator(horizon, resolver, schedule)

	for _, entry := range result.Entries {
		schedule.AddPlanned(entry.DeliveryDate, entry.Ingredient, entry.OrderQty)
	}
	for _, entry := range result.Entries {
		start := latest[entry.Ingredient].Qty
		if stockout, found := simulator.FirstStockoutWithPlanned(entry.Ingredient, start); found {
			t.Errorf("%s still stocks out on %s after applying its order",
				entry.Ingredient, stockout.Format("2006-01-02"))
		}
	}
}

func TestPlanner_SortOrder(t *testing.T) {
	f := newTestFixture()
	// Different stockout dates and costs: cheap-early, pricey-early,
	// late.
	f.addLastBuy("Lettuce", 10, "g", 0.01, "GreenGrocer")
	f.addFlatForecast("Lettuce", 50)
	f.addLastBuy("Beef Patty", 10, "g", 0.90, "MeatWorks")
	f.addFlatForecast("Beef Patty", 50)
	f.addLastBuy("Milk", 300, "ml", 0.002, "DairyCo")
	f.addFlatForecast("Milk", 60)

	planner := f.planner(t, Config{LeadTimeDays: 3, HorizonDays: 7})
	result, err := planner.BuildPlan(context.Background(), testHorizonStart)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}
	if len(result.Entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(result.Entries))
	}

	for i := 1; i < len(result.Entries); i++ {
		prev, cur := result.Entries[i-1], result.Entries[i]
		if cur.OrderDate.Before(prev.OrderDate) {
			t.Errorf("Entries not sorted by order date: %s before %s", cur.Ingredient, prev.Ingredient)
		}
		if cur.OrderDate.Equal(prev.OrderDate) && cur.EstimatedCost.GreaterThan(prev.EstimatedCost) {
			t.Errorf("Equal order dates not sorted by cost descending: %s after %s", cur.Ingredient, prev.Ingredient)
		}
	}

	// Beef Patty and Lettuce stock out on the same date; the pricier order
	// comes first.
	if result.Entries[0].Ingredient != "Beef Patty" {
		t.Errorf("Expected Beef Patty first, got %s", result.Entries[0].Ingredient)
	}
}

func TestPlanner_MissingPurchaseHistoryDefaults(t *testing.T) {
	f := newTestFixture()
	// Forecast-only ingredient: no ledger rows at all.
	f.addFlatForecast("Saffron", 5)

	planner := f.planner(t, Config{LeadTimeDays: 3, HorizonDays: 7})
	result, err := planner.BuildPlan(context.Background(), testHorizonStart)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	if len(result.Entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(result.Entries))
	}
	entry := result.Entries[0]

	// Zero starting inventory stocks out on the first date.
	assertSameDate(t, "stockout", entry.StockoutDate, testHorizonStart)
	if entry.Unit != "" {
		t.Errorf("Unit = %q, want empty", entry.Unit)
	}
	if !entry.UnitCost.IsZero() {
		t.Errorf("UnitCost = %s, want 0", entry.UnitCost)
	}
	if entry.Supplier != "Unknown" {
		t.Errorf("Supplier = %q, want Unknown", entry.Supplier)
	}
	if !entry.OrderQty.Equal(dec(35)) {
		t.Errorf("OrderQty = %s, want full horizon need 35", entry.OrderQty)
	}
	if !entry.EstimatedCost.IsZero() {
		t.Errorf("EstimatedCost = %s, want 0", entry.EstimatedCost)
	}
}

// The on-hand level projected for the delivery morning offsets the order.
// Because the delivery lands on the stockout date itself, that level is the
// last non-negative reading before the stockout.
func TestPlanner_OnHandAtDeliveryCredited(t *testing.T) {
	f := newTestFixture()
	f.addLastBuy("Onion", 10, "g", 0.03, "VeggieCo")
	f.addFlatForecast("Onion", 30)

	planner := f.planner(t, Config{LeadTimeDays: 3, HorizonDays: 7})
	result, err := planner.BuildPlan(context.Background(), testHorizonStart)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(result.Entries))
	}
	entry := result.Entries[0]

	// Stockout on day one; delivery lands the same date, so the 10g still
	// on hand that morning offsets the 210g full-horizon need.
	assertSameDate(t, "stockout", entry.StockoutDate, testHorizonStart)
	if !entry.OrderQty.Equal(dec(200)) {
		t.Errorf("OrderQty = %s, want 200", entry.OrderQty)
	}
}

func TestNewPlanner_InvalidConfig(t *testing.T) {
	f := newTestFixture()

	if _, err := NewPlanner(Config{LeadTimeDays: -1, HorizonDays: 7}, nopLogger(), f.purchases, f.sales, f.forecasts, f.recipes); err == nil {
		t.Error("Expected error for negative lead time, got none")
	}
	if _, err := NewPlanner(Config{LeadTimeDays: 3, HorizonDays: 0}, nopLogger(), f.purchases, f.sales, f.forecasts, f.recipes); err == nil {
		t.Error("Expected error for zero horizon, got none")
	}
}
