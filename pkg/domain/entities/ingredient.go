package entities

import "strings"

// Ingredient identifies an ingredient by name
type Ingredient string

// gram-measured ingredients that commonly appear without ledger history
var gramIngredients = map[Ingredient]bool{
	"Lettuce":        true,
	"Pickles":        true,
	"Onion":          true,
	"Potatoes":       true,
	"Chicken Nugget": true,
	"Fish Fillet":    true,
	"Cod Fillet":     true,
	"Tomato":         true,
	"Chips":          true,
	"Flour":          true,
}

// millilitre-measured ingredients that commonly appear without ledger history
var millilitreIngredients = map[Ingredient]bool{
	"Milk":            true,
	"Ketchup":         true,
	"Mustard":         true,
	"Mayonnaise":      true,
	"Olive Oil":       true,
	"Lemon Juice":     true,
	"Sparkling Water": true,
}

// InferUnit guesses a unit of measure for an ingredient that has no purchasing
// history. Callers should prefer the unit recorded in the ledger when one
// exists; this heuristic is the fallback for forecast-only ingredients.
func InferUnit(ingredient Ingredient) string {
	name := string(ingredient)
	if strings.Contains(name, "Patty") || strings.Contains(name, "Filling") || gramIngredients[ingredient] {
		return "g"
	}
	if millilitreIngredients[ingredient] {
		return "ml"
	}
	return "unit"
}
