package csv

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"github.com/vkarel/restock/pkg/domain/entities"
)

// LoadRecipes loads the food-to-ingredient mapping from a JSON file. Each food
// maps to a list of [ingredient, quantity] pairs, e.g. ["Beef Patty", "90g"].
// Lines whose quantity cannot be parsed are dropped with a warning rather than
// failing the whole load.
func (l *Loader) LoadRecipes(filename string, logger zerolog.Logger) ([]*entities.Recipe, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipes file %s: %w", filename, err)
	}

	var raw map[string][][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse recipes JSON %s: %w", filename, err)
	}

	foods := make([]string, 0, len(raw))
	for food := range raw {
		foods = append(foods, food)
	}
	sort.Strings(foods)

	var recipes []*entities.Recipe
	for _, food := range foods {
		recipe := &entities.Recipe{Food: food}
		for _, pair := range raw[food] {
			if len(pair) != 2 {
				return nil, fmt.Errorf("recipes JSON %s: food %q has a line with %d elements, expected [ingredient, quantity]", filename, food, len(pair))
			}

			qty, unit, err := entities.ParseQuantity(pair[1])
			if err != nil {
				logger.Warn().
					Str("food", food).
					Str("ingredient", pair[0]).
					Str("quantity", pair[1]).
					Msg("Dropping recipe line with unparseable quantity")
				continue
			}

			recipe.Lines = append(recipe.Lines, entities.RecipeLine{
				Ingredient: entities.Ingredient(pair[0]),
				Qty:        qty,
				Unit:       unit,
			})
		}
		recipes = append(recipes, recipe)
	}

	return recipes, nil
}
