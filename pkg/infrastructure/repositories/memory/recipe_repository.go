package memory

import (
	"github.com/vkarel/restock/pkg/domain/entities"
	"github.com/vkarel/restock/pkg/domain/repositories"
)

// RecipeRepository provides in-memory recipe mapping storage
type RecipeRepository struct {
	recipes    []*entities.Recipe
	recipesMap map[string]int
}

// NewRecipeRepository creates a new in-memory recipe repository
func NewRecipeRepository(expectedRecipes int) *RecipeRepository {
	return &RecipeRepository{
		recipes:    make([]*entities.Recipe, 0, expectedRecipes),
		recipesMap: make(map[string]int, expectedRecipes),
	}
}

// Verify interface compliance
var _ repositories.RecipeRepository = (*RecipeRepository)(nil)

// LoadRecipes loads recipes into the repository
func (r *RecipeRepository) LoadRecipes(recipes []*entities.Recipe) error {
	for _, recipe := range recipes {
		r.AddRecipe(*recipe)
	}
	return nil
}

// AddRecipe adds a recipe to the repository, replacing any existing mapping
// for the same food item
func (r *RecipeRepository) AddRecipe(recipe entities.Recipe) {
	if index, exists := r.recipesMap[recipe.Food]; exists {
		r.recipes[index] = &recipe
		return
	}
	r.recipesMap[recipe.Food] = len(r.recipes)
	r.recipes = append(r.recipes, &recipe)
}

// GetRecipe returns the recipe for a food item, or nil when the item has no
// mapping
func (r *RecipeRepository) GetRecipe(food string) (*entities.Recipe, error) {
	index, exists := r.recipesMap[food]
	if !exists {
		return nil, nil
	}
	return r.recipes[index], nil
}

// GetAllRecipes returns all recipes
func (r *RecipeRepository) GetAllRecipes() ([]*entities.Recipe, error) {
	return r.recipes, nil
}
