package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkarel/restock/pkg/domain/entities"
)

// Loader handles loading planner data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadPurchases loads purchasing ledger rows from one or more bank CSV files,
// concatenated in the order given.
func (l *Loader) LoadPurchases(filenames ...string) ([]*entities.PurchaseRecord, error) {
	var purchases []*entities.PurchaseRecord
	for _, filename := range filenames {
		filePurchases, err := l.loadBankFile(filename)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, filePurchases...)
	}
	return purchases, nil
}

func (l *Loader) loadBankFile(filename string) ([]*entities.PurchaseRecord, error) {
	records, err := readAll(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read bank CSV: %w", err)
	}

	expectedHeader := []string{"ingredient", "txn_date", "qty", "unit", "unit_cost_gbp", "merchant"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("bank CSV %s header mismatch. Expected: %v, Got: %v", filename, expectedHeader, records[0])
	}

	var purchases []*entities.PurchaseRecord
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("bank CSV %s row %d: expected %d columns, got %d", filename, i+2, len(expectedHeader), len(record))
		}

		txnDate, err := parseDate(record[1])
		if err != nil {
			return nil, fmt.Errorf("bank CSV %s row %d: invalid txn_date: %w", filename, i+2, err)
		}

		qty, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, fmt.Errorf("bank CSV %s row %d: invalid qty: %s", filename, i+2, record[2])
		}

		unitCost, err := decimal.NewFromString(strings.TrimSpace(record[4]))
		if err != nil {
			return nil, fmt.Errorf("bank CSV %s row %d: invalid unit_cost_gbp: %s", filename, i+2, record[4])
		}

		purchase, err := entities.NewPurchaseRecord(entities.Ingredient(record[0]), txnDate, qty, record[3], unitCost, record[5])
		if err != nil {
			return nil, fmt.Errorf("bank CSV %s row %d: %w", filename, i+2, err)
		}

		purchases = append(purchases, purchase)
	}

	return purchases, nil
}

// LoadSales loads point-of-sale lines from a CSV file. Timestamps collapse to
// calendar dates.
func (l *Loader) LoadSales(filename string) ([]*entities.SaleRecord, error) {
	records, err := readAll(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read sales CSV: %w", err)
	}

	expectedHeader := []string{"datetime", "actual_food", "quantity"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("sales CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var sales []*entities.SaleRecord
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("sales CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		timestamp, err := parseTimestamp(record[0])
		if err != nil {
			return nil, fmt.Errorf("sales CSV row %d: invalid datetime: %w", i+2, err)
		}

		qty, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, fmt.Errorf("sales CSV row %d: invalid quantity: %s", i+2, record[2])
		}

		sales = append(sales, &entities.SaleRecord{
			Food: record[1],
			Qty:  qty,
			Date: entities.DateOf(timestamp),
		})
	}

	return sales, nil
}

// LoadForecasts loads predicted ingredient demand from a CSV file
func (l *Loader) LoadForecasts(filename string) ([]*entities.ForecastRecord, error) {
	records, err := readAll(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read forecast CSV: %w", err)
	}

	expectedHeader := []string{"date", "ingredient", "pred_qty"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("forecast CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var forecasts []*entities.ForecastRecord
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("forecast CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		date, err := parseDate(record[0])
		if err != nil {
			return nil, fmt.Errorf("forecast CSV row %d: invalid date: %w", i+2, err)
		}

		qty, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, fmt.Errorf("forecast CSV row %d: invalid pred_qty: %s", i+2, record[2])
		}

		forecasts = append(forecasts, &entities.ForecastRecord{
			Date:       date,
			Ingredient: entities.Ingredient(record[1]),
			Qty:        qty,
		})
	}

	return forecasts, nil
}

// Helper functions for parsing CSV records

func readAll(filename string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s must have header and at least one data row", filename)
	}

	return records, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%q (expected YYYY-MM-DD)", s)
	}
	return entities.DateOf(date), nil
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q (expected a date or datetime)", s)
}
