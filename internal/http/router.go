package http

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kviik/recipegram/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(auth.SecurityHeadersMiddleware())

	// CSRF must run before session load so the session context is layered
	// on top of the CSRF request replacement
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	router.Use(cfg.SessionManager.SessionLoadSave())
	router.Use(cfg.AuthMiddleware.LoadUser())

	tmpl := template.Must(template.ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	// Static assets and uploaded images
	router.Static("/static", cfg.StaticPath)
	router.Static("/uploads", cfg.UploadsDir)

	health := NewHealthController(cfg.Database, cfg.Version)
	categoriesController := NewCategoriesController(cfg.CategoryStore)
	recipesController := NewRecipesController(cfg.RecipeStore, cfg.CategoryStore, cfg.UploadsDir)
	favoritesController := NewFavoritesController(cfg.FavoriteStore)
	pagesController := NewPagesController(cfg.CategoryStore, cfg.RecipeStore)
	authController := NewAuthPagesController(cfg.UserStore, cfg.SessionManager)

	// Health endpoint
	router.GET("/health", health.Status)

	// Pages
	router.GET("/", pagesController.HomePage)
	router.GET("/category/:slug", pagesController.CategoryPage)
	router.GET("/recipe/:id", pagesController.RecipePage)
	router.GET("/register", authController.RegisterPage)
	router.POST("/register", authController.Register)
	router.GET("/login", authController.LoginPage)
	router.POST("/login", authController.Login)
	router.GET("/logout", authController.Logout)

	// JSON API
	api := router.Group("/api")
	requireAuth := cfg.AuthMiddleware.RequireAuth()

	api.GET("/categories", categoriesController.GetAllCategories)
	api.POST("/categories", requireAuth, categoriesController.CreateCategory)
	api.GET("/categories/:categoryId/recipes", categoriesController.GetCategoryRecipes)

	api.GET("/recipes", recipesController.GetAllRecipes)
	api.POST("/recipes", requireAuth, recipesController.CreateRecipe)
	api.GET("/recipes/:id", recipesController.GetRecipe)

	api.GET("/favorites", requireAuth, favoritesController.ListFavorites)
	api.POST("/favorites/:recipeId", requireAuth, favoritesController.AddFavorite)
	api.DELETE("/favorites/:recipeId", requireAuth, favoritesController.RemoveFavorite)
	api.GET("/favorites/:recipeId", requireAuth, favoritesController.GetFavoriteStatus)

	// gin's tree cannot hold a static "slug" segment beside the :categoryId
	// wildcard, so GET /api/categories/slug/:slug/recipes is dispatched here.
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			if rest, found := strings.CutPrefix(c.Request.URL.Path, "/api/categories/slug/"); found {
				if slug, found := strings.CutSuffix(rest, "/recipes"); found && slug != "" && !strings.Contains(slug, "/") {
					c.Params = append(c.Params, gin.Param{Key: "categoryId", Value: slug})
					categoriesController.GetCategoryRecipes(c)
					return
				}
			}
		}
		c.Status(http.StatusNotFound)
	})

	return router
}
