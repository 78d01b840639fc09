package csv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vkarel/restock/pkg/domain/entities"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadPurchases(t *testing.T) {
	path := writeFile(t, "bank.csv", `ingredient,txn_date,qty,unit,unit_cost_gbp,merchant
Lettuce,2020-03-02,500,g,0.05,GreenGrocer
Beef Patty,2020-03-05,120,g,0.90,MeatCo
`)

	loader := NewLoader()
	purchases, err := loader.LoadPurchases(path)
	require.NoError(t, err)
	require.Len(t, purchases, 2)

	require.Equal(t, entities.Ingredient("Lettuce"), purchases[0].Ingredient)
	require.True(t, purchases[0].TxnDate.Equal(entities.Date(2020, 3, 2)))
	require.True(t, purchases[0].Qty.Equal(decimal.NewFromInt(500)))
	require.Equal(t, "g", purchases[0].Unit)
	require.True(t, purchases[0].UnitCost.Equal(decimal.RequireFromString("0.05")))
	require.Equal(t, "GreenGrocer", purchases[0].Supplier)
}

func TestLoadPurchases_MultipleFiles(t *testing.T) {
	week1 := writeFile(t, "week1.csv", `ingredient,txn_date,qty,unit,unit_cost_gbp,merchant
Lettuce,2020-03-02,500,g,0.05,GreenGrocer
`)
	week2 := writeFile(t, "week2.csv", `ingredient,txn_date,qty,unit,unit_cost_gbp,merchant
Lettuce,2020-03-09,400,g,0.05,GreenGrocer
`)

	purchases, err := NewLoader().LoadPurchases(week1, week2)
	require.NoError(t, err)
	require.Len(t, purchases, 2)
	require.True(t, purchases[1].TxnDate.Equal(entities.Date(2020, 3, 9)))
}

func TestLoadPurchases_HeaderMismatch(t *testing.T) {
	path := writeFile(t, "bank.csv", `ingredient,date,qty,unit,unit_cost_gbp,merchant
Lettuce,2020-03-02,500,g,0.05,GreenGrocer
`)

	_, err := NewLoader().LoadPurchases(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "header mismatch")
}

func TestLoadPurchases_BadRow(t *testing.T) {
	path := writeFile(t, "bank.csv", `ingredient,txn_date,qty,unit,unit_cost_gbp,merchant
Lettuce,2020-03-02,lots,g,0.05,GreenGrocer
`)

	_, err := NewLoader().LoadPurchases(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "row 2")
}

func TestLoadSales_CollapsesTimestamps(t *testing.T) {
	path := writeFile(t, "pos.csv", `datetime,actual_food,quantity
2020-03-10 12:31:05,Burger,2
2020-03-10 19:02:44,Burger,1
2020-03-11,Salad,3
`)

	sales, err := NewLoader().LoadSales(path)
	require.NoError(t, err)
	require.Len(t, sales, 3)

	// Same-day timestamps land on the same calendar date.
	require.True(t, sales[0].Date.Equal(sales[1].Date))
	require.True(t, sales[0].Date.Equal(entities.Date(2020, 3, 10)))
	require.True(t, sales[2].Date.Equal(entities.Date(2020, 3, 11)))
	require.Equal(t, "Salad", sales[2].Food)
}

func TestLoadForecasts(t *testing.T) {
	path := writeFile(t, "forecast.csv", `date,ingredient,pred_qty
2020-03-17,Lettuce,20.5
2020-03-18,Lettuce,18
`)

	forecasts, err := NewLoader().LoadForecasts(path)
	require.NoError(t, err)
	require.Len(t, forecasts, 2)
	require.Equal(t, entities.Ingredient("Lettuce"), forecasts[0].Ingredient)
	require.True(t, forecasts[0].Qty.Equal(decimal.RequireFromString("20.5")))
}

func TestLoadForecasts_EmptyFile(t *testing.T) {
	path := writeFile(t, "forecast.csv", "date,ingredient,pred_qty\n")

	_, err := NewLoader().LoadForecasts(path)
	require.Error(t, err)
}

func TestLoadRecipes(t *testing.T) {
	path := writeFile(t, "recipes.json", `{
  "Burger": [["Beef Patty", "90g"], ["Lettuce", "20 g"]],
  "Flat White": [["Milk", "160ml"], ["Espresso Shot", "2unit"]]
}`)

	recipes, err := NewLoader().LoadRecipes(path, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	// Sorted by food name.
	require.Equal(t, "Burger", recipes[0].Food)
	require.Len(t, recipes[0].Lines, 2)
	require.True(t, recipes[0].Lines[0].Qty.Equal(decimal.NewFromInt(90)))
	require.Equal(t, "g", recipes[0].Lines[0].Unit)
	require.Equal(t, "ml", recipes[1].Lines[0].Unit)
}

func TestLoadRecipes_DropsMalformedLines(t *testing.T) {
	path := writeFile(t, "recipes.json", `{
  "Burger": [["Beef Patty", "90g"], ["Secret Sauce", "a dollop"]]
}`)

	recipes, err := NewLoader().LoadRecipes(path, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	require.Len(t, recipes[0].Lines, 1)
	require.Equal(t, entities.Ingredient("Beef Patty"), recipes[0].Lines[0].Ingredient)
}

func TestLoadRecipes_InvalidJSON(t *testing.T) {
	path := writeFile(t, "recipes.json", `{"Burger": `)

	_, err := NewLoader().LoadRecipes(path, zerolog.Nop())
	require.Error(t, err)
}
