// Package recipes provides database operations for recipes and their
// ingredient lists.
//
// Ingredient bulk insert is the one multi-statement unit in the system and
// runs in a single transaction: either every ingredient row is persisted or
// none is. The owning recipe row is created separately by the caller and is
// intentionally left in place when the ingredient batch fails.
package recipes

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kviik/recipegram/internal/entities"
)

var (
	ErrNotFound       = errors.New("recipe not found")
	ErrIngredientName = errors.New("ingredient name is required")
)

const summaryColumns = "recipes.id, recipes.user_id, recipes.title, recipes.category_id, " +
	"recipes.description, recipes.image_url, recipes.created_at, " +
	"categories.name AS category_name, users.email AS user_email"

// Repository handles recipe database operations.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a recipe row and returns its id. Validation beyond the
// schema is the caller's job.
func (r *Repository) Create(userID uint, title string, categoryID uint, description, imageURL string) (uint, error) {
	recipe := &entities.Recipe{
		UserID:      userID,
		Title:       title,
		CategoryID:  categoryID,
		Description: description,
		ImageURL:    imageURL,
	}
	if err := r.db.Create(recipe).Error; err != nil {
		return 0, fmt.Errorf("failed to create recipe: %w", err)
	}
	return recipe.ID, nil
}

// AddIngredients persists the whole batch in one transaction. Any failure
// rolls back every row, so a recipe never ends up with a partial ingredient
// list.
func (r *Repository) AddIngredients(recipeID uint, ingredients []entities.IngredientInput) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, in := range ingredients {
			if in.Name == "" {
				return ErrIngredientName
			}
			row := entities.Ingredient{
				RecipeID: recipeID,
				Name:     in.Name,
				Amount:   in.Amount,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to insert ingredient %q: %w", in.Name, err)
			}
		}
		return nil
	})
}

// summaryQuery joins recipes with their category and owner. With a viewer
// the per-row favorite status is selected as well; without one the column is
// absent and IsFavorite stays nil.
func (r *Repository) summaryQuery(viewerID uint) *gorm.DB {
	query := r.db.Table("recipes").
		Joins("JOIN categories ON categories.id = recipes.category_id").
		Joins("JOIN users ON users.id = recipes.user_id")

	if viewerID != 0 {
		return query.Select(summaryColumns+", EXISTS(SELECT 1 FROM favorites WHERE favorites.user_id = ? AND favorites.recipe_id = recipes.id) AS is_favorite", viewerID)
	}
	return query.Select(summaryColumns)
}

// GetAll returns every recipe, newest first.
func (r *Repository) GetAll(viewerID uint) ([]entities.RecipeSummary, error) {
	recipes := []entities.RecipeSummary{}
	err := r.summaryQuery(viewerID).
		Order("recipes.created_at DESC").
		Scan(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetByID returns one recipe with its full ingredient list.
func (r *Repository) GetByID(recipeID, viewerID uint) (*entities.RecipeDetail, error) {
	var summary entities.RecipeSummary
	result := r.summaryQuery(viewerID).
		Where("recipes.id = ?", recipeID).
		Limit(1).
		Scan(&summary)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var ingredients []entities.Ingredient
	if err := r.db.Where("recipe_id = ?", recipeID).Find(&ingredients).Error; err != nil {
		return nil, err
	}

	return &entities.RecipeDetail{
		RecipeSummary: summary,
		Ingredients:   ingredients,
	}, nil
}
