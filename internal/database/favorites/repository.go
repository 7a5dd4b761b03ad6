// Package favorites provides database operations for the user-recipe
// favorite relation.
//
// It implements both the HTTP layer's FavoriteStore and the categories
// package's FavoritesSource:
//
//	var _ categories.FavoritesSource = (*Repository)(nil)
package favorites

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kviik/recipegram/internal/entities"
)

// Repository handles favorite database operations.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Add records a favorite if it does not exist yet. The (user, recipe) pair
// is unique, so a repeat call is a no-op that reports false.
func (r *Repository) Add(userID, recipeID uint) (bool, error) {
	fav := entities.Favorite{UserID: userID, RecipeID: recipeID}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Remove deletes the relation and reports whether a row was removed.
func (r *Repository) Remove(userID, recipeID uint) (bool, error) {
	result := r.db.
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.Favorite{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// IsFavorite reports whether the user has favorited the recipe.
func (r *Repository) IsFavorite(userID, recipeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns how many recipes the user has favorited.
func (r *Repository) Count(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Favorite{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// ListForUser returns the user's favorited recipes joined with category and
// owner, most recently favorited first.
func (r *Repository) ListForUser(userID uint) ([]entities.RecipeSummary, error) {
	recipes := []entities.RecipeSummary{}
	err := r.db.Table("favorites").
		Select("recipes.id, recipes.user_id, recipes.title, recipes.category_id, "+
			"recipes.description, recipes.image_url, recipes.created_at, "+
			"categories.name AS category_name, users.email AS user_email").
		Joins("JOIN recipes ON recipes.id = favorites.recipe_id").
		Joins("JOIN categories ON categories.id = recipes.category_id").
		Joins("JOIN users ON users.id = recipes.user_id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Scan(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}
