package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vkarel/restock/pkg/application/dto"
	"github.com/vkarel/restock/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format     string
	OutputDir  string
	Verbose    bool
	PlanTime   time.Duration
	InputFiles map[string]string
}

// Generate creates output in the specified format
func Generate(result *dto.PlanResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates the human-readable restock report
func generateTextOutput(result *dto.PlanResult, config Config) error {
	var b strings.Builder

	rule := strings.Repeat("=", 80)
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "REORDER / RESTOCK LIST  %s to %s\n",
		result.Horizon.Start.Format("2006-01-02"),
		result.Horizon.End().Format("2006-01-02"))
	fmt.Fprintf(&b, "%s\n\n", rule)

	if result.Empty() {
		fmt.Fprintf(&b, "No restocks required in this %d-day window under the model.\n\n", result.Horizon.Days)
	} else {
		fmt.Fprintf(&b, "%-12s %-12s %-20s %-10s %-6s %-10s %-15s\n",
			"Order By", "Delivery", "Ingredient", "Qty", "Unit", "Est Cost", "Supplier")
		fmt.Fprintf(&b, "%-12s %-12s %-20s %-10s %-6s %-10s %-15s\n",
			"------------", "------------", "--------------------", "----------", "------", "----------", "---------------")

		for _, entry := range result.Entries {
			fmt.Fprintf(&b, "%-12s %-12s %-20s %-10s %-6s %-10s %-15s\n",
				entry.OrderDate.Format("2006-01-02"),
				entry.DeliveryDate.Format("2006-01-02"),
				entry.Ingredient,
				entry.OrderQty.StringFixed(1),
				entry.Unit,
				"£"+entry.EstimatedCost.StringFixed(2),
				entry.Supplier)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "COSTS (Dynamic vs Weekly Recurring Baseline)\n")
	fmt.Fprintf(&b, "  Dynamic plan total:  £%s (%d orders)\n", result.DynamicCost.StringFixed(2), len(result.Entries))
	fmt.Fprintf(&b, "  Baseline total:      £%s (%d orders)\n", result.BaselineCost.StringFixed(2), len(result.Baseline))
	if result.Savings.IsNegative() {
		fmt.Fprintf(&b, "  Estimated extra spend: £%s\n", result.Savings.Neg().StringFixed(2))
	} else {
		fmt.Fprintf(&b, "  Estimated savings:     £%s\n", result.Savings.StringFixed(2))
	}

	fmt.Print(b.String())

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		filename := filepath.Join(config.OutputDir, "restock_report.txt")
		if err := os.WriteFile(filename, []byte(b.String()), 0644); err != nil {
			return fmt.Errorf("failed to write text report: %w", err)
		}
		if config.Verbose {
			fmt.Printf("💾 Report saved to: %s\n", filename)
		}
	}

	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(result *dto.PlanResult, config Config) error {
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
	} else {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		filename := filepath.Join(config.OutputDir, "restock_plan.json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write JSON file: %w", err)
		}

		if config.Verbose {
			fmt.Printf("💾 JSON plan saved to: %s\n", filename)
		}
	}

	return nil
}

// generateCSVOutput creates CSV output
func generateCSVOutput(result *dto.PlanResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	planFile := filepath.Join(config.OutputDir, "restock_plan.csv")
	if err := writePlanCSV(result.Entries, planFile); err != nil {
		return fmt.Errorf("failed to write reorder plan CSV: %w", err)
	}

	baselineFile := filepath.Join(config.OutputDir, "baseline_plan.csv")
	if err := writeBaselineCSV(result.Baseline, baselineFile); err != nil {
		return fmt.Errorf("failed to write baseline plan CSV: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 CSV results saved to:\n")
		fmt.Printf("  Reorder Plan: %s\n", planFile)
		fmt.Printf("  Baseline Plan: %s\n", baselineFile)
	}

	return nil
}

func writePlanCSV(entries []entities.ReorderPlanEntry, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{"ingredient", "order_date", "delivery_date", "stockout_date", "order_qty", "unit", "unit_cost_gbp", "est_cost_gbp", "supplier"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, e := range entries {
		record := []string{
			string(e.Ingredient),
			e.OrderDate.Format("2006-01-02"),
			e.DeliveryDate.Format("2006-01-02"),
			e.StockoutDate.Format("2006-01-02"),
			e.OrderQty.String(),
			e.Unit,
			e.UnitCost.String(),
			e.EstimatedCost.StringFixed(2),
			e.Supplier,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return w.Error()
}

func writeBaselineCSV(entries []entities.BaselinePlanEntry, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{"ingredient", "qty", "unit", "cost_gbp"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, e := range entries {
		record := []string{
			string(e.Ingredient),
			e.Qty.String(),
			e.Unit,
			e.Cost.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return w.Error()
}
