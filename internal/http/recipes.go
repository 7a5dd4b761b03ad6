package http

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kviik/recipegram/internal/database/categories"
	"github.com/kviik/recipegram/internal/database/recipes"
	"github.com/kviik/recipegram/internal/entities"
)

// RecipeStore defines database operations for recipe management.
type RecipeStore interface {
	Create(userID uint, title string, categoryID uint, description, imageURL string) (uint, error)
	AddIngredients(recipeID uint, ingredients []entities.IngredientInput) error
	GetAll(viewerID uint) ([]entities.RecipeSummary, error)
	GetByID(recipeID, viewerID uint) (*entities.RecipeDetail, error)
}

// CategoryGetter resolves stored categories for recipe validation.
type CategoryGetter interface {
	GetByID(id uint) (*entities.Category, error)
}

type RecipesController struct {
	store      RecipeStore
	catStore   CategoryGetter
	uploadsDir string
}

func NewRecipesController(store RecipeStore, catStore CategoryGetter, uploadsDir string) *RecipesController {
	return &RecipesController{store: store, catStore: catStore, uploadsDir: uploadsDir}
}

// GetAllRecipes lists every recipe, newest first, annotated with the
// viewer's favorite status when a session exists.
// GET /api/recipes
func (rc *RecipesController) GetAllRecipes(c *gin.Context) {
	list, err := rc.store.GetAll(GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "fetch recipes")
		return
	}

	respondOK(c, gin.H{"recipes": list})
}

// GetRecipe returns one recipe with its ingredients.
// GET /api/recipes/:id
func (rc *RecipesController) GetRecipe(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	recipe, err := rc.store.GetByID(id, GetUserID(c))
	if err != nil {
		if errors.Is(err, recipes.ErrNotFound) {
			respondNotFound(c, "Recipe")
			return
		}
		respondInternalError(c, err, "fetch recipe")
		return
	}

	respondOK(c, gin.H{"recipe": recipe})
}

// CreateRecipe creates a recipe from a multipart form: title, categoryId,
// description, ingredients (JSON array of {name, amount}) and an optional
// recipeImage file. The ingredient batch is inserted in one transaction.
// POST /api/recipes
func (rc *RecipesController) CreateRecipe(c *gin.Context) {
	userID := GetUserID(c)

	title := strings.TrimSpace(c.PostForm("title"))
	description := strings.TrimSpace(c.PostForm("description"))
	categoryIDStr := c.PostForm("categoryId")
	ingredientsJSON := c.PostForm("ingredients")

	if title == "" || description == "" || categoryIDStr == "" {
		respondBadRequest(c, "Title, category and description are required")
		return
	}

	categoryID64, err := strconv.ParseUint(categoryIDStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid categoryId")
		return
	}
	categoryID := uint(categoryID64)

	if _, err := rc.catStore.GetByID(categoryID); err != nil {
		if errors.Is(err, categories.ErrNotFound) {
			respondBadRequest(c, "Category does not exist")
			return
		}
		respondInternalError(c, err, "validate category")
		return
	}

	var ingredients []entities.IngredientInput
	if ingredientsJSON != "" {
		if err := json.Unmarshal([]byte(ingredientsJSON), &ingredients); err != nil {
			respondBadRequest(c, "Invalid ingredients payload")
			return
		}
	}
	if len(ingredients) == 0 {
		respondBadRequest(c, "At least one ingredient is required")
		return
	}
	for _, ing := range ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			respondBadRequest(c, "Every ingredient needs a name")
			return
		}
	}

	imageURL, err := saveRecipeImage(c, rc.uploadsDir)
	if err != nil {
		switch {
		case errors.Is(err, ErrUploadType):
			respondBadRequest(c, "Only jpg, jpeg, png and gif images are allowed")
		case errors.Is(err, ErrUploadTooBig):
			respondBadRequest(c, "Image exceeds the 5 MB limit")
		default:
			respondInternalError(c, err, "store image")
		}
		return
	}

	recipeID, err := rc.store.Create(userID, title, categoryID, description, imageURL)
	if err != nil {
		respondInternalError(c, err, "create recipe")
		return
	}

	if err := rc.store.AddIngredients(recipeID, ingredients); err != nil {
		if errors.Is(err, recipes.ErrIngredientName) {
			respondBadRequest(c, "Every ingredient needs a name")
			return
		}
		respondInternalError(c, err, "store ingredients")
		return
	}

	respondCreated(c, gin.H{"id": recipeID})
}
