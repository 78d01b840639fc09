package repositories

import "github.com/vkarel/restock/pkg/domain/entities"

// RecipeRepository provides access to the food item to ingredient mapping
type RecipeRepository interface {
	// GetRecipe returns the recipe for a food item, or nil when the item
	// has no mapping.
	GetRecipe(food string) (*entities.Recipe, error)

	GetAllRecipes() ([]*entities.Recipe, error)
	LoadRecipes(recipes []*entities.Recipe) error
}
