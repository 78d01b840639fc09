package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vkarel/restock/pkg/interfaces/cli/commands"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "generate" {
		runGenerate(os.Args[2:])
		return
	}

	// Command line flags
	var (
		configFile   = flag.String("config", "", "Path to YAML configuration file")
		bankFiles    = flag.String("bank", "", "Comma-separated purchasing ledger CSV files")
		salesFile    = flag.String("sales", "", "Path to point-of-sale CSV file")
		forecastFile = flag.String("forecast", "", "Path to ingredient forecast CSV file")
		recipesFile  = flag.String("recipes", "", "Path to recipes JSON file")
		horizonStart = flag.String("horizon-start", "", "First planned date, YYYY-MM-DD")
		leadTime     = flag.Int("lead-time", -1, "Order-to-delivery delay in days")
		horizonDays  = flag.Int("horizon-days", 0, "Planning window length in days")
		outputDir    = flag.String("output", "", "Output directory for results (optional)")
		format       = flag.String("format", "text", "Output format: text, json, csv")
		verbose      = flag.Bool("verbose", false, "Enable verbose output")
		help         = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		ConfigFile:   *configFile,
		BankFiles:    splitFiles(*bankFiles),
		SalesFile:    *salesFile,
		ForecastFile: *forecastFile,
		RecipesFile:  *recipesFile,
		HorizonStart: *horizonStart,
		LeadTimeDays: *leadTime,
		HorizonDays:  *horizonDays,
		OutputDir:    *outputDir,
		Format:       *format,
		Verbose:      *verbose,
		Help:         *help,
	}

	// Create and execute command
	cmd := commands.NewPlanCommand(config, newLogger(*verbose))
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var (
		outputDir    = fs.String("output", "", "Output directory for generated files")
		horizonStart = fs.String("horizon-start", "", "First planned date, YYYY-MM-DD")
		horizonDays  = fs.Int("horizon-days", 7, "Planning window length in days")
		leadTime     = fs.Int("lead-time", 3, "Order-to-delivery delay in days")
		seed         = fs.Int64("seed", 0, "Random seed for reproducible generation")
		verbose      = fs.Bool("verbose", false, "Enable verbose output")
		help         = fs.Bool("help", false, "Show help message")
	)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	config := commands.GenerateConfig{
		OutputDir:    *outputDir,
		HorizonStart: *horizonStart,
		HorizonDays:  *horizonDays,
		LeadTimeDays: *leadTime,
		Seed:         *seed,
		Verbose:      *verbose,
		Help:         *help,
	}

	if !config.Help && (config.OutputDir == "" || config.HorizonStart == "") {
		fmt.Fprintln(os.Stderr, "Error: -output and -horizon-start are required")
		os.Exit(1)
	}

	cmd := commands.NewGenerateCommand(config)
	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func splitFiles(s string) []string {
	if s == "" {
		return nil
	}
	var files []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			files = append(files, trimmed)
		}
	}
	return files
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
