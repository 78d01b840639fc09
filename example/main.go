package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vkarel/restock/pkg/application/services/planning"
	"github.com/vkarel/restock/pkg/domain/entities"
	"github.com/vkarel/restock/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	// Create repositories
	purchases := memory.NewPurchaseRepository(8)
	sales := memory.NewSalesRepository(32)
	forecasts := memory.NewForecastRepository(32)
	recipes := memory.NewRecipeRepository(4)

	setupCafeData(purchases, sales, forecasts, recipes)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)

	planner, err := planning.NewPlanner(
		planning.Config{LeadTimeDays: 3, HorizonDays: 7},
		logger,
		purchases, sales, forecasts, recipes,
	)
	if err != nil {
		fmt.Printf("❌ Planner setup failed: %v\n", err)
		return
	}

	horizonStart := entities.Date(2020, 3, 17)
	fmt.Println("🍔 Planning next week's restocks for the cafe...")
	fmt.Printf("Horizon: 7 days from %s, 3-day lead time\n\n", horizonStart.Format("2006-01-02"))

	result, err := planner.BuildPlan(ctx, horizonStart)
	if err != nil {
		fmt.Printf("❌ Planning failed: %v\n", err)
		return
	}

	// Display results
	fmt.Println("📊 Plan Results:")
	fmt.Printf("  Reorders: %d\n", len(result.Entries))
	fmt.Printf("  Baseline orders: %d\n", len(result.Baseline))
	fmt.Println()

	if result.Empty() {
		fmt.Println("No restocks required in this window.")
	} else {
		fmt.Println("📝 Reorder Plan:")
		for _, entry := range result.Entries {
			fmt.Printf("  %s: order %s %s by %s (delivery %s)\n",
				entry.Ingredient,
				entry.OrderQty.StringFixed(1),
				entry.Unit,
				entry.OrderDate.Format("2006-01-02"),
				entry.DeliveryDate.Format("2006-01-02"))
			fmt.Printf("    Est cost: £%s | Supplier: %s | Would stock out: %s\n",
				entry.EstimatedCost.StringFixed(2),
				entry.Supplier,
				entry.StockoutDate.Format("2006-01-02"))
		}
		fmt.Println()
	}

	fmt.Printf("💰 Dynamic plan: £%s vs baseline £%s", result.DynamicCost.StringFixed(2), result.BaselineCost.StringFixed(2))
	if result.Savings.IsNegative() {
		fmt.Printf(" (extra spend £%s)\n", result.Savings.Neg().StringFixed(2))
	} else {
		fmt.Printf(" (savings £%s)\n", result.Savings.StringFixed(2))
	}

	fmt.Println("✅ Restock planning complete!")
}

func setupCafeData(
	purchases *memory.PurchaseRepository,
	sales *memory.SalesRepository,
	forecasts *memory.ForecastRepository,
	recipes *memory.RecipeRepository,
) {
	// Menu
	recipes.AddRecipe(entities.Recipe{Food: "Burger", Lines: []entities.RecipeLine{
		{Ingredient: "Beef Patty", Qty: decimal.NewFromInt(90), Unit: "g"},
		{Ingredient: "Lettuce", Qty: decimal.NewFromInt(20), Unit: "g"},
	}})
	recipes.AddRecipe(entities.Recipe{Food: "Garden Salad", Lines: []entities.RecipeLine{
		{Ingredient: "Lettuce", Qty: decimal.NewFromInt(80), Unit: "g"},
	}})

	// Last buys: deliveries land before the horizon starts.
	addPurchase := func(ingredient entities.Ingredient, qty int64, unit, cost, supplier string) {
		purchases.AddPurchase(entities.PurchaseRecord{
			Ingredient: ingredient,
			TxnDate:    entities.Date(2020, 3, 10),
			Qty:        decimal.NewFromInt(qty),
			Unit:       unit,
			UnitCost:   decimal.RequireFromString(cost),
			Supplier:   supplier,
		})
	}
	addPurchase("Lettuce", 50, "g", "0.05", "GreenGrocer")
	addPurchase("Beef Patty", 2000, "g", "0.012", "MeatCo")

	// Reference week of sales, feeding the actual-usage fallback.
	for d := 0; d < 7; d++ {
		date := entities.Date(2020, 3, 10).AddDate(0, 0, d)
		sales.AddSale(entities.SaleRecord{Food: "Burger", Qty: decimal.NewFromInt(12), Date: date})
		sales.AddSale(entities.SaleRecord{Food: "Garden Salad", Qty: decimal.NewFromInt(4), Date: date})
	}

	// Forecast covers lettuce only; beef falls back to typical usage.
	horizonStart := entities.Date(2020, 3, 17)
	for d := 0; d < 7; d++ {
		forecasts.AddForecast(entities.ForecastRecord{
			Date:       horizonStart.AddDate(0, 0, d),
			Ingredient: "Lettuce",
			Qty:        decimal.NewFromInt(20),
		})
	}
}
