package http

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kviik/recipegram/internal/auth"
	"github.com/kviik/recipegram/internal/database/categories"
	"github.com/kviik/recipegram/internal/database/recipes"
)

// PagesController renders the server-side HTML pages. Pages are public;
// templates adapt to the session viewer.
type PagesController struct {
	categoryStore CategoryStore
	recipeStore   RecipeStore
}

func NewPagesController(categoryStore CategoryStore, recipeStore RecipeStore) *PagesController {
	return &PagesController{
		categoryStore: categoryStore,
		recipeStore:   recipeStore,
	}
}

// viewerData is the template context shared by every page.
func viewerData(c *gin.Context) gin.H {
	return gin.H{
		"IsAuthenticated": auth.IsAuthenticated(c),
		"Email":           auth.GetEmail(c),
		"CSRFField":       template.HTML(auth.CSRFTokenField(c)),
	}
}

func (pc *PagesController) renderHTML(c *gin.Context, status int, name string, data gin.H) {
	page := viewerData(c)
	for k, v := range data {
		page[k] = v
	}

	cats, err := pc.categoryStore.GetAll(GetUserID(c))
	if err == nil {
		page["Categories"] = cats
	}

	c.HTML(status, name, page)
}

func (pc *PagesController) renderNotFound(c *gin.Context, message string) {
	pc.renderHTML(c, http.StatusNotFound, "404", gin.H{"Title": "Not found", "Message": message})
}

// HomePage lists all recipes.
// GET /
func (pc *PagesController) HomePage(c *gin.Context) {
	list, err := pc.recipeStore.GetAll(GetUserID(c))
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading recipes")
		return
	}

	pc.renderHTML(c, http.StatusOK, "index", gin.H{
		"Title":   "All Recipes",
		"Recipes": list,
	})
}

// CategoryPage lists the recipes of one category by slug. An all-digits
// parameter is a legacy numeric id and redirects to the slug URL. The
// favorites slug shows the viewer's favorites.
// GET /category/:slug
func (pc *PagesController) CategoryPage(c *gin.Context) {
	slug := c.Param("slug")

	if id, err := strconv.ParseUint(slug, 10, 32); err == nil {
		category, lookupErr := pc.categoryStore.GetByID(uint(id))
		if lookupErr != nil {
			pc.renderNotFound(c, "Category not found")
			return
		}
		c.Redirect(http.StatusFound, "/category/"+category.Slug)
		return
	}

	category, err := pc.categoryStore.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, categories.ErrNotFound) {
			pc.renderNotFound(c, "Category not found")
			return
		}
		c.String(http.StatusInternalServerError, "Error loading category")
		return
	}

	ref := categories.RealRef(category.ID)
	if category.Virtual {
		ref = categories.FavoritesRef()
	}

	list, err := pc.categoryStore.GetRecipes(ref, GetUserID(c))
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading recipes")
		return
	}

	pc.renderHTML(c, http.StatusOK, "category", gin.H{
		"Title":    category.Name,
		"Category": category,
		"Recipes":  list,
	})
}

// RecipePage shows one recipe with its ingredients.
// GET /recipe/:id
func (pc *PagesController) RecipePage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		pc.renderNotFound(c, "Recipe not found")
		return
	}

	recipe, err := pc.recipeStore.GetByID(uint(id), GetUserID(c))
	if err != nil {
		if errors.Is(err, recipes.ErrNotFound) {
			pc.renderNotFound(c, "Recipe not found")
			return
		}
		c.String(http.StatusInternalServerError, "Error loading recipe")
		return
	}

	pc.renderHTML(c, http.StatusOK, "recipe", gin.H{
		"Title":  recipe.Title,
		"Recipe": recipe,
	})
}
