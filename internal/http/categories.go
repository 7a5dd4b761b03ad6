package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kviik/recipegram/internal/database/categories"
	"github.com/kviik/recipegram/internal/entities"
)

// CategoryStore defines database operations for category management.
type CategoryStore interface {
	GetAll(viewerID uint) ([]entities.Category, error)
	Create(name string) (*entities.Category, error)
	GetBySlug(slug string) (*entities.Category, error)
	GetByID(id uint) (*entities.Category, error)
	GetRecipes(ref categories.Ref, viewerID uint) ([]entities.RecipeSummary, error)
}

type CategoriesController struct {
	store CategoryStore
}

func NewCategoriesController(store CategoryStore) *CategoriesController {
	return &CategoriesController{store: store}
}

// GetAllCategories lists every category, including the viewer's virtual
// favorites entry when they have favorites.
// GET /api/categories
func (cc *CategoriesController) GetAllCategories(c *gin.Context) {
	cats, err := cc.store.GetAll(GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "fetch categories")
		return
	}

	respondOK(c, gin.H{"categories": cats})
}

// CreateCategory creates a new category with a derived slug.
// POST /api/categories
func (cc *CategoriesController) CreateCategory(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		respondBadRequest(c, "Category name is required")
		return
	}

	category, err := cc.store.Create(name)
	if err != nil {
		if errors.Is(err, categories.ErrCategoryExists) {
			respondBadRequest(c, "Category already exists")
			return
		}
		respondInternalError(c, err, "create category")
		return
	}

	respondCreated(c, gin.H{"category": category})
}

// GetCategoryRecipes lists the recipes of one category. The parameter is a
// category reference: "favorites", a numeric id, or a slug. Slugs never
// consist of digits only, so the three forms don't collide.
// GET /api/categories/:categoryId/recipes
func (cc *CategoriesController) GetCategoryRecipes(c *gin.Context) {
	param := c.Param("categoryId")
	viewerID := GetUserID(c)

	ref, err := categories.ParseRef(param)
	if err != nil {
		// Not "favorites" and not numeric: treat the parameter as a slug.
		category, lookupErr := cc.store.GetBySlug(param)
		if lookupErr != nil {
			if errors.Is(lookupErr, categories.ErrNotFound) {
				respondNotFound(c, "Category")
				return
			}
			respondInternalError(c, lookupErr, "fetch category")
			return
		}
		ref = categories.RealRef(category.ID)
	}

	// The favorites variant is viewer-scoped; without a session it comes
	// back as an empty list rather than an error.
	recipes, err := cc.store.GetRecipes(ref, viewerID)
	if err != nil {
		if errors.Is(err, categories.ErrNotFound) {
			respondNotFound(c, "Category")
			return
		}
		respondInternalError(c, err, "fetch category recipes")
		return
	}

	respondOK(c, gin.H{"recipes": recipes})
}
