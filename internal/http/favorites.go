package http

import (
	"github.com/gin-gonic/gin"

	"github.com/kviik/recipegram/internal/entities"
)

// FavoriteStore defines database operations for favorites management.
type FavoriteStore interface {
	Add(userID, recipeID uint) (bool, error)
	Remove(userID, recipeID uint) (bool, error)
	IsFavorite(userID, recipeID uint) (bool, error)
	ListForUser(userID uint) ([]entities.RecipeSummary, error)
}

type FavoritesController struct {
	store FavoriteStore
}

func NewFavoritesController(store FavoriteStore) *FavoritesController {
	return &FavoritesController{store: store}
}

// AddFavorite marks a recipe as the viewer's favorite. Adding an existing
// favorite is a no-op reported as added: false.
// POST /api/favorites/:recipeId
func (fc *FavoritesController) AddFavorite(c *gin.Context) {
	recipeID, ok := parseIDParam(c, "recipeId")
	if !ok {
		return
	}

	added, err := fc.store.Add(GetUserID(c), recipeID)
	if err != nil {
		respondInternalError(c, err, "add favorite")
		return
	}

	respondOK(c, gin.H{"added": added})
}

// RemoveFavorite removes a recipe from the viewer's favorites.
// DELETE /api/favorites/:recipeId
func (fc *FavoritesController) RemoveFavorite(c *gin.Context) {
	recipeID, ok := parseIDParam(c, "recipeId")
	if !ok {
		return
	}

	removed, err := fc.store.Remove(GetUserID(c), recipeID)
	if err != nil {
		respondInternalError(c, err, "remove favorite")
		return
	}

	respondOK(c, gin.H{"removed": removed})
}

// GetFavoriteStatus reports whether the viewer has favorited a recipe.
// GET /api/favorites/:recipeId
func (fc *FavoritesController) GetFavoriteStatus(c *gin.Context) {
	recipeID, ok := parseIDParam(c, "recipeId")
	if !ok {
		return
	}

	isFavorite, err := fc.store.IsFavorite(GetUserID(c), recipeID)
	if err != nil {
		respondInternalError(c, err, "check favorite")
		return
	}

	respondOK(c, gin.H{"isFavorite": isFavorite})
}

// ListFavorites returns the viewer's favorited recipes, most recently
// favorited first.
// GET /api/favorites
func (fc *FavoritesController) ListFavorites(c *gin.Context) {
	list, err := fc.store.ListForUser(GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "list favorites")
		return
	}

	respondOK(c, gin.H{"recipes": list})
}
