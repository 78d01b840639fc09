package entities

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// RecipeLine is one ingredient requirement within a recipe
type RecipeLine struct {
	Ingredient Ingredient
	Qty        decimal.Decimal
	Unit       string
}

// Recipe maps a food item to the ingredients one sold unit consumes
type Recipe struct {
	Food  string
	Lines []RecipeLine
}

var quantityPattern = regexp.MustCompile(`^([0-9.]+)\s*(\w+)`)

// ParseQuantity parses a recipe quantity string such as "90g" or "1.5 kg"
// into a quantity and a unit.
func ParseQuantity(s string) (decimal.Decimal, string, error) {
	m := quantityPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return decimal.Zero, "", fmt.Errorf("malformed quantity string: %q", s)
	}
	qty, err := decimal.NewFromString(m[1])
	if err != nil {
		return decimal.Zero, "", fmt.Errorf("malformed quantity string: %q", s)
	}
	return qty, m[2], nil
}
