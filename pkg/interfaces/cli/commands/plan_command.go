package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/vkarel/restock/pkg/application/services/planning"
	"github.com/vkarel/restock/pkg/infrastructure/config"
	"github.com/vkarel/restock/pkg/infrastructure/repositories/csv"
	"github.com/vkarel/restock/pkg/infrastructure/repositories/memory"
	"github.com/vkarel/restock/pkg/interfaces/cli/output"
)

// Config holds configuration for the plan command. File paths and planning
// knobs given here override whatever the YAML config file says.
type Config struct {
	ConfigFile   string
	BankFiles    []string
	SalesFile    string
	ForecastFile string
	RecipesFile  string
	HorizonStart string
	LeadTimeDays int
	HorizonDays  int
	OutputDir    string
	Format       string
	Verbose      bool
	Help         bool
}

// PlanCommand handles the main reorder planning logic
type PlanCommand struct {
	config Config
	logger zerolog.Logger
}

// NewPlanCommand creates a new plan command with the given configuration
func NewPlanCommand(cfg Config, logger zerolog.Logger) *PlanCommand {
	return &PlanCommand{
		config: cfg,
		logger: logger,
	}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	cfg, err := c.resolveConfig()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	horizonStart, err := cfg.ParseHorizonStart()
	if err != nil {
		return err
	}

	if c.config.Verbose {
		c.printHeader(cfg)
	}

	// Load data from input files
	if c.config.Verbose {
		fmt.Println("📂 Loading input files...")
	}

	loader := csv.NewLoader()

	purchases, err := loader.LoadPurchases(cfg.BankFiles...)
	if err != nil {
		return fmt.Errorf("error loading purchasing ledger: %w", err)
	}

	sales, err := loader.LoadSales(cfg.SalesFile)
	if err != nil {
		return fmt.Errorf("error loading sales: %w", err)
	}

	forecasts, err := loader.LoadForecasts(cfg.ForecastFile)
	if err != nil {
		return fmt.Errorf("error loading forecast: %w", err)
	}

	recipes, err := loader.LoadRecipes(cfg.RecipesFile, c.logger)
	if err != nil {
		return fmt.Errorf("error loading recipes: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Data loaded successfully:\n")
		fmt.Printf("  Ledger rows: %d\n", len(purchases))
		fmt.Printf("  Sales lines: %d\n", len(sales))
		fmt.Printf("  Forecast rows: %d\n", len(forecasts))
		fmt.Printf("  Recipes: %d\n", len(recipes))
		fmt.Println()
	}

	// Create repositories
	purchaseRepo := memory.NewPurchaseRepository(len(purchases))
	if err := purchaseRepo.LoadPurchases(purchases); err != nil {
		return fmt.Errorf("failed to load purchases into repository: %w", err)
	}

	salesRepo := memory.NewSalesRepository(len(sales))
	if err := salesRepo.LoadSales(sales); err != nil {
		return fmt.Errorf("failed to load sales into repository: %w", err)
	}

	forecastRepo := memory.NewForecastRepository(len(forecasts))
	if err := forecastRepo.LoadForecasts(forecasts); err != nil {
		return fmt.Errorf("failed to load forecast into repository: %w", err)
	}

	recipeRepo := memory.NewRecipeRepository(len(recipes))
	if err := recipeRepo.LoadRecipes(recipes); err != nil {
		return fmt.Errorf("failed to load recipes into repository: %w", err)
	}

	planner, err := planning.NewPlanner(
		planning.Config{
			LeadTimeDays: cfg.LeadTimeDays,
			HorizonDays:  cfg.HorizonDays,
		},
		c.logger,
		purchaseRepo,
		salesRepo,
		forecastRepo,
		recipeRepo,
	)
	if err != nil {
		return err
	}

	// Build the reorder plan
	if c.config.Verbose {
		fmt.Println("🔄 Building reorder plan...")
	}

	startTime := time.Now()
	result, err := planner.BuildPlan(ctx, horizonStart)
	planTime := time.Since(startTime)

	if err != nil {
		return fmt.Errorf("error building reorder plan: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Plan built in %v\n\n", planTime)
	}

	// Generate output
	outputConfig := output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
		PlanTime:  planTime,
		InputFiles: map[string]string{
			"Sales":    cfg.SalesFile,
			"Forecast": cfg.ForecastFile,
			"Recipes":  cfg.RecipesFile,
		},
	}

	if err := output.Generate(result, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.Verbose {
		fmt.Println("🏁 Restock planning complete!")
	}

	return nil
}

// resolveConfig merges the YAML config file with command-line overrides
func (c *PlanCommand) resolveConfig() (config.Config, error) {
	cfg := config.Default()
	if c.config.ConfigFile != "" {
		loaded, err := config.Load(c.config.ConfigFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if len(c.config.BankFiles) > 0 {
		cfg.BankFiles = c.config.BankFiles
	}
	if c.config.SalesFile != "" {
		cfg.SalesFile = c.config.SalesFile
	}
	if c.config.ForecastFile != "" {
		cfg.ForecastFile = c.config.ForecastFile
	}
	if c.config.RecipesFile != "" {
		cfg.RecipesFile = c.config.RecipesFile
	}
	if c.config.HorizonStart != "" {
		cfg.HorizonStart = c.config.HorizonStart
	}
	if c.config.LeadTimeDays >= 0 {
		cfg.LeadTimeDays = c.config.LeadTimeDays
	}
	if c.config.HorizonDays > 0 {
		cfg.HorizonDays = c.config.HorizonDays
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	if len(cfg.BankFiles) == 0 || cfg.SalesFile == "" || cfg.ForecastFile == "" || cfg.RecipesFile == "" {
		return cfg, fmt.Errorf("must specify bank, sales, forecast and recipes files via flags or config file")
	}

	files := map[string]string{
		"Sales":    cfg.SalesFile,
		"Forecast": cfg.ForecastFile,
		"Recipes":  cfg.RecipesFile,
	}
	for i, bank := range cfg.BankFiles {
		files[fmt.Sprintf("Bank %d", i+1)] = bank
	}
	for name, path := range files {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return cfg, fmt.Errorf("%s file not found: %s", name, path)
		}
	}

	return cfg, nil
}

// printHeader prints the command header information
func (c *PlanCommand) printHeader(cfg config.Config) {
	fmt.Printf("🚀 Restock Planner CLI\n")
	fmt.Printf("Input files:\n")
	for _, bank := range cfg.BankFiles {
		fmt.Printf("  Bank: %s\n", bank)
	}
	fmt.Printf("  Sales: %s\n", cfg.SalesFile)
	fmt.Printf("  Forecast: %s\n", cfg.ForecastFile)
	fmt.Printf("  Recipes: %s\n", cfg.RecipesFile)
	fmt.Printf("Horizon: %d days from %s, lead time %d days\n", cfg.HorizonDays, cfg.HorizonStart, cfg.LeadTimeDays)
	fmt.Printf("Output format: %s\n", c.config.Format)
	if c.config.OutputDir != "" {
		fmt.Printf("Output directory: %s\n", c.config.OutputDir)
	}
	fmt.Println()
}

// showHelp displays the help message
func (c *PlanCommand) showHelp() {
	fmt.Printf(`Restock Planner CLI - Reorder planning for restaurant ingredients

USAGE:
    restock -config <file>                 # Use a YAML config file
    restock -bank <files> -sales <file> -forecast <file> -recipes <file> -horizon-start <date>

OPTIONS:
    -config <file>        Path to YAML configuration file
    -bank <files>         Comma-separated purchasing ledger CSV files
    -sales <file>         Path to point-of-sale CSV file
    -forecast <file>      Path to ingredient forecast CSV file
    -recipes <file>       Path to recipes JSON file
    -horizon-start <date> First planned date, YYYY-MM-DD
    -lead-time <n>        Order-to-delivery delay in days (default: 3)
    -horizon-days <n>     Planning window length in days (default: 7)
    -output <dir>         Output directory for results (optional)
    -format <fmt>         Output format: text, json, csv (default: text)
    -verbose              Enable verbose output
    -help                 Show this help message

FILE FORMATS:

bank CSV:
    ingredient,txn_date,qty,unit,unit_cost_gbp,merchant
    Lettuce,2020-03-02,500,g,0.05,GreenGrocer

sales CSV:
    datetime,actual_food,quantity
    2020-03-10 12:31:05,Burger,2

forecast CSV:
    date,ingredient,pred_qty
    2020-03-17,Lettuce,20.5

recipes JSON:
    {"Burger": [["Beef Patty", "90g"], ["Lettuce", "20g"]]}

EXAMPLES:
    # Plan the next week from a config file
    restock -config restock.yaml -verbose

    # Plan with explicit files and two bank statements
    restock -bank week1bank.csv,week2bank.csv -sales pos.csv -forecast forecast.csv -recipes recipes.json -horizon-start 2020-03-17

    # Generate JSON output
    restock -config restock.yaml -format json -output results/
`)
}
