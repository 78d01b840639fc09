package commands

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkarel/restock/pkg/domain/entities"
)

// GenerateConfig holds configuration for scenario generation
type GenerateConfig struct {
	OutputDir    string // Output directory for generated files
	HorizonStart string // First planned date, YYYY-MM-DD
	HorizonDays  int    // Planning window length
	LeadTimeDays int    // Order-to-delivery delay
	Seed         int64  // Random seed for reproducible generation
	Verbose      bool   // Verbose output
	Help         bool   // Show help
}

// GenerateCommand builds a synthetic but realistic planning scenario: a menu,
// a reference week of point-of-sale lines, an ingredient forecast for the
// horizon, and a purchasing ledger, plus a config file tying them together.
type GenerateCommand struct {
	config GenerateConfig
	rand   *rand.Rand
}

// NewGenerateCommand creates a new generate command
func NewGenerateCommand(config GenerateConfig) *GenerateCommand {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &GenerateCommand{
		config: config,
		rand:   rand.New(rand.NewSource(seed)),
	}
}

// menuItem is a food on the generated menu with its average daily sales
type menuItem struct {
	Food      string
	SalesMean float64
	Lines     []entities.RecipeLine
}

type supplierInfo struct {
	Name     string
	UnitCost decimal.Decimal
}

// menu returns the fixed generated menu. Quantities are per sold unit.
func (cmd *GenerateCommand) menu() []menuItem {
	line := func(ingredient string, qty float64) entities.RecipeLine {
		ing := entities.Ingredient(ingredient)
		return entities.RecipeLine{
			Ingredient: ing,
			Qty:        decimal.NewFromFloat(qty),
			Unit:       entities.InferUnit(ing),
		}
	}

	return []menuItem{
		{Food: "Burger", SalesMean: 34, Lines: []entities.RecipeLine{
			line("Beef Patty", 90),
			line("Burger Bun", 1),
			line("Lettuce", 20),
			line("Cheese Slice", 1),
		}},
		{Food: "Veggie Burger", SalesMean: 11, Lines: []entities.RecipeLine{
			line("Veggie Patty", 90),
			line("Burger Bun", 1),
			line("Lettuce", 20),
		}},
		{Food: "Garden Salad", SalesMean: 14, Lines: []entities.RecipeLine{
			line("Lettuce", 80),
			line("Tomato", 60),
			line("Olive Oil", 10),
		}},
		{Food: "Fish & Chips", SalesMean: 22, Lines: []entities.RecipeLine{
			line("Cod Fillet", 140),
			line("Chips", 150),
		}},
		{Food: "Steak Pie", SalesMean: 16, Lines: []entities.RecipeLine{
			line("Pie Filling", 120),
			line("Flour", 80),
		}},
		{Food: "Flat White", SalesMean: 48, Lines: []entities.RecipeLine{
			line("Milk", 160),
			line("Espresso Shot", 2),
		}},
		{Food: "Lemonade", SalesMean: 19, Lines: []entities.RecipeLine{
			line("Lemon Juice", 40),
			line("Sparkling Water", 200),
		}},
	}
}

// suppliers returns the supplier and unit price for each generated ingredient
func (cmd *GenerateCommand) suppliers() map[entities.Ingredient]supplierInfo {
	price := func(name string, cost string) supplierInfo {
		return supplierInfo{Name: name, UnitCost: decimal.RequireFromString(cost)}
	}

	return map[entities.Ingredient]supplierInfo{
		"Beef Patty":      price("MeatCo", "0.012"),
		"Veggie Patty":    price("GreenGrocer", "0.010"),
		"Burger Bun":      price("DailyBakery", "0.35"),
		"Lettuce":         price("GreenGrocer", "0.004"),
		"Cheese Slice":    price("DairyDirect", "0.22"),
		"Tomato":          price("GreenGrocer", "0.003"),
		"Olive Oil":       price("MedImports", "0.009"),
		"Cod Fillet":      price("PortFish", "0.016"),
		"Chips":           price("FrostFoods", "0.002"),
		"Pie Filling":     price("MeatCo", "0.008"),
		"Flour":           price("MillSupply", "0.001"),
		"Milk":            price("DairyDirect", "0.0012"),
		"Espresso Shot":   price("BeanHouse", "0.28"),
		"Lemon Juice":     price("MedImports", "0.006"),
		"Sparkling Water": price("SpringCo", "0.0008"),
	}
}

// seasonalMultiplier scales demand for the festive spike, the back-to-school
// bump, the summer dip and the January lull.
func seasonalMultiplier(dt time.Time) float64 {
	month, day := dt.Month(), dt.Day()
	switch {
	case month == time.November && day >= 24:
		return 1.85
	case month == time.December && day <= 23:
		return 1.55
	case (month == time.August && day >= 15) || month == time.September:
		return 1.25
	case (month == time.July) || (month == time.August && day < 15):
		return 0.82
	case month == time.January:
		return 0.78
	}
	return 1.0
}

// weekdayMultiplier scales demand for the weekend trade, Monday through Sunday
func weekdayMultiplier(dt time.Time) float64 {
	multipliers := [7]float64{0.95, 1.0, 1.02, 1.0, 1.15, 1.38, 1.28}
	return multipliers[(int(dt.Weekday())+6)%7]
}

// Execute runs the generate command
func (cmd *GenerateCommand) Execute(ctx context.Context) error {
	if cmd.config.Help {
		cmd.printHelp()
		return nil
	}

	horizonStart, err := time.Parse("2006-01-02", cmd.config.HorizonStart)
	if err != nil {
		return fmt.Errorf("invalid horizon start %q (expected YYYY-MM-DD)", cmd.config.HorizonStart)
	}
	horizonStart = entities.DateOf(horizonStart)

	if cmd.config.Verbose {
		fmt.Printf("🔧 Generating scenario: %d-day horizon from %s, lead time %d days\n",
			cmd.config.HorizonDays, cmd.config.HorizonStart, cmd.config.LeadTimeDays)
		fmt.Printf("📁 Output directory: %s\n", cmd.config.OutputDir)
		fmt.Printf("🎲 Random seed: %d\n", cmd.config.Seed)
	}

	if err := os.MkdirAll(cmd.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	menu := cmd.menu()

	if cmd.config.Verbose {
		fmt.Println("🍔 Generating recipes.json...")
	}
	if err := cmd.generateRecipes(menu); err != nil {
		return fmt.Errorf("failed to generate recipes: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Println("🧾 Generating pos.csv...")
	}
	if err := cmd.generateSales(menu, horizonStart); err != nil {
		return fmt.Errorf("failed to generate sales: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Println("📈 Generating forecast.csv...")
	}
	if err := cmd.generateForecast(menu, horizonStart); err != nil {
		return fmt.Errorf("failed to generate forecast: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Println("🏦 Generating bank.csv...")
	}
	if err := cmd.generateLedger(menu, horizonStart); err != nil {
		return fmt.Errorf("failed to generate ledger: %w", err)
	}

	if err := cmd.generateConfigFile(); err != nil {
		return fmt.Errorf("failed to generate config file: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Printf("✅ Scenario generated successfully in %s\n", cmd.config.OutputDir)
		fmt.Printf("   Run it with: restock -config %s\n", filepath.Join(cmd.config.OutputDir, "restock.yaml"))
	}

	return nil
}

// generateRecipes creates the recipes.json file
func (cmd *GenerateCommand) generateRecipes(menu []menuItem) error {
	recipes := make(map[string][][]string, len(menu))
	for _, item := range menu {
		lines := make([][]string, 0, len(item.Lines))
		for _, l := range item.Lines {
			lines = append(lines, []string{string(l.Ingredient), l.Qty.String() + l.Unit})
		}
		recipes[item.Food] = lines
	}

	data, err := json.MarshalIndent(recipes, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(cmd.config.OutputDir, "recipes.json"), data, 0644)
}

// dailySales draws the number of units sold for one food on one date
func (cmd *GenerateCommand) dailySales(item menuItem, dt time.Time) int {
	mu := item.SalesMean * seasonalMultiplier(dt) * weekdayMultiplier(dt)
	sigma := mu * 0.4
	if sigma < 1 {
		sigma = 1
	}
	qty := int(cmd.rand.NormFloat64()*sigma + mu)
	if qty < 0 {
		qty = 0
	}
	return qty
}

// generateSales creates the pos.csv file covering the reference week before
// the horizon.
func (cmd *GenerateCommand) generateSales(menu []menuItem, horizonStart time.Time) error {
	file, err := os.Create(filepath.Join(cmd.config.OutputDir, "pos.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"datetime", "actual_food", "quantity"}); err != nil {
		return err
	}

	for d := cmd.config.HorizonDays; d >= 1; d-- {
		dt := horizonStart.AddDate(0, 0, -d)
		for _, item := range menu {
			total := cmd.dailySales(item, dt)
			// Split the day's sales into a lunch and a dinner line.
			lunch := total / 2
			if lunch > 0 {
				at := dt.Add(time.Duration(11+cmd.rand.Intn(3)) * time.Hour)
				if err := w.Write([]string{at.Format("2006-01-02 15:04:05"), item.Food, fmt.Sprint(lunch)}); err != nil {
					return err
				}
			}
			if total-lunch > 0 {
				at := dt.Add(time.Duration(17+cmd.rand.Intn(5)) * time.Hour)
				if err := w.Write([]string{at.Format("2006-01-02 15:04:05"), item.Food, fmt.Sprint(total - lunch)}); err != nil {
					return err
				}
			}
		}
	}

	return w.Error()
}

// generateForecast creates the forecast.csv file: expected ingredient usage
// per horizon date, from mean food sales exploded through the recipes.
func (cmd *GenerateCommand) generateForecast(menu []menuItem, horizonStart time.Time) error {
	file, err := os.Create(filepath.Join(cmd.config.OutputDir, "forecast.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"date", "ingredient", "pred_qty"}); err != nil {
		return err
	}

	for d := 0; d < cmd.config.HorizonDays; d++ {
		dt := horizonStart.AddDate(0, 0, d)
		scale := seasonalMultiplier(dt) * weekdayMultiplier(dt)

		usage := make(map[entities.Ingredient]decimal.Decimal)
		var order []entities.Ingredient
		for _, item := range menu {
			expected := decimal.NewFromFloat(item.SalesMean * scale)
			for _, l := range item.Lines {
				if _, seen := usage[l.Ingredient]; !seen {
					order = append(order, l.Ingredient)
				}
				usage[l.Ingredient] = usage[l.Ingredient].Add(expected.Mul(l.Qty))
			}
		}

		for _, ingredient := range order {
			record := []string{
				dt.Format("2006-01-02"),
				string(ingredient),
				usage[ingredient].Round(1).String(),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}

	return w.Error()
}

// generateLedger creates the bank.csv file: one purchase per ingredient sized
// to roughly a week of typical usage, dated so its delivery lands just before
// the horizon.
func (cmd *GenerateCommand) generateLedger(menu []menuItem, horizonStart time.Time) error {
	file, err := os.Create(filepath.Join(cmd.config.OutputDir, "bank.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"ingredient", "txn_date", "qty", "unit", "unit_cost_gbp", "merchant"}); err != nil {
		return err
	}

	weekly := make(map[entities.Ingredient]decimal.Decimal)
	var order []entities.Ingredient
	for _, item := range menu {
		perWeek := decimal.NewFromFloat(item.SalesMean * 7)
		for _, l := range item.Lines {
			if _, seen := weekly[l.Ingredient]; !seen {
				order = append(order, l.Ingredient)
			}
			weekly[l.Ingredient] = weekly[l.Ingredient].Add(perWeek.Mul(l.Qty))
		}
	}

	suppliers := cmd.suppliers()
	for _, ingredient := range order {
		// Stock coverage varies so some ingredients run out mid-horizon.
		coverage := decimal.NewFromFloat(0.4 + cmd.rand.Float64()*0.8)
		qty := weekly[ingredient].Mul(coverage).Round(0)

		// Delivery lands one or two days before the horizon starts.
		daysBefore := cmd.config.LeadTimeDays + 1 + cmd.rand.Intn(2)
		txnDate := horizonStart.AddDate(0, 0, -daysBefore)

		supplier := suppliers[ingredient]
		record := []string{
			string(ingredient),
			txnDate.Format("2006-01-02"),
			qty.String(),
			entities.InferUnit(ingredient),
			supplier.UnitCost.String(),
			supplier.Name,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return w.Error()
}

// generateConfigFile writes a restock.yaml pointing at the generated files
func (cmd *GenerateCommand) generateConfigFile() error {
	content := fmt.Sprintf(`lead_time_days: %d
horizon_days: %d
horizon_start: %q
bank_files:
  - %s
sales_file: %s
forecast_file: %s
recipes_file: %s
`,
		cmd.config.LeadTimeDays,
		cmd.config.HorizonDays,
		cmd.config.HorizonStart,
		filepath.Join(cmd.config.OutputDir, "bank.csv"),
		filepath.Join(cmd.config.OutputDir, "pos.csv"),
		filepath.Join(cmd.config.OutputDir, "forecast.csv"),
		filepath.Join(cmd.config.OutputDir, "recipes.json"),
	)

	return os.WriteFile(filepath.Join(cmd.config.OutputDir, "restock.yaml"), []byte(content), 0644)
}

// printHelp shows usage information
func (cmd *GenerateCommand) printHelp() {
	fmt.Println(`Restock Scenario Generator

USAGE:
    restock generate [OPTIONS]

OPTIONS:
    -output <DIR>         Output directory for generated files (required)
    -horizon-start <date> First planned date, YYYY-MM-DD (required)
    -horizon-days <N>     Planning window length in days (default: 7)
    -lead-time <N>        Order-to-delivery delay in days (default: 3)
    -seed <N>             Random seed for reproducible generation (optional)
    -verbose              Enable verbose output
    -help                 Show this help message

GENERATED FILES:
    recipes.json          Menu with per-unit ingredient quantities
    pos.csv               Point-of-sale lines for the week before the horizon
    forecast.csv          Expected ingredient usage per horizon date
    bank.csv              Purchasing ledger with one buy per ingredient
    restock.yaml          Config file wiring the scenario together

EXAMPLES:
    # Generate a scenario and plan it
    restock generate -output ./scenario -horizon-start 2026-09-01 -verbose
    restock -config ./scenario/restock.yaml -verbose

    # Generate a reproducible scenario
    restock generate -output ./scenario -horizon-start 2026-09-01 -seed 42`)
}
