package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoriesRouter(stores *testStores, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middleware...)
	controller := NewCategoriesController(stores.categories)
	router.GET("/api/categories", controller.GetAllCategories)
	router.POST("/api/categories", controller.CreateCategory)
	router.GET("/api/categories/:categoryId/recipes", controller.GetCategoryRecipes)
	return router
}

func TestCategoriesController_GetAllCategories(t *testing.T) {
	t.Run("lists the seeded categories in the envelope", func(t *testing.T) {
		stores, cleanup := setupControllerTest(t)
		defer cleanup()

		router := categoriesRouter(stores)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/categories", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Len(t, body["categories"], 7)
	})

	t.Run("includes the virtual favorites entry for a viewer", func(t *testing.T) {
		stores, cleanup := setupControllerTest(t)
		defer cleanup()

		user, err := stores.users.Create("a@example.com", "secret123")
		require.NoError(t, err)
		cat, err := stores.categories.GetBySlug("dinner")
		require.NoError(t, err)
		recipeID, err := stores.recipes.Create(user.ID, "Stew", cat.ID, "test", "")
		require.NoError(t, err)
		_, err = stores.favorites.Add(user.ID, recipeID)
		require.NoError(t, err)

		router := categoriesRouter(stores, asUser(user.ID, user.Email))
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/categories", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		cats := body["categories"].([]any)
		require.Len(t, cats, 8)
		first := cats[0].(map[string]any)
		assert.Equal(t, "favorites", first["id"], "virtual entry uses the literal id")
		assert.Equal(t, "Favorites", first["name"])
	})
}

func TestCategoriesController_CreateCategory(t *testing.T) {
	t.Run("creates a category", func(t *testing.T) {
		stores, cleanup := setupControllerTest(t)
		defer cleanup()

		router := categoriesRouter(stores)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/categories", strings.NewReader(`{"name":"Mac & Cheese!"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		created := body["category"].(map[string]any)
		assert.Equal(t, "mac-cheese", created["slug"])
	})

	t.Run("duplicate name", func(t *testing.T) {
		stores, cleanup := setupControllerTest(t)
		defer cleanup()

		router := categoriesRouter(stores)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/categories", strings.NewReader(`{"name":"Dinner"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Category already exists", body["error"])
	})

	t.Run("missing name", func(t *testing.T) {
		stores, cleanup := setupControllerTest(t)
		defer cleanup()

		router := categoriesRouter(stores)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/categories", strings.NewReader(`{"name":"  "}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCategoriesController_GetCategoryRecipes(t *testing.T) {
	t.Run("accepts numeric id, slug and favorites forms", func(t *testing.T) {
		stores, cleanup := setupControllerTest(t)
		defer cleanup()

		user, err := stores.users.Create("a@example.com", "secret123")
		require.NoError(t, err)
		cat, err := stores.categories.GetBySlug("dinner")
		require.NoError(t, err)
		recipeID, err := stores.recipes.Create(user.ID, "Stew", cat.ID, "test", "")
		require.NoError(t, err)
		_, err = stores.favorites.Add(user.ID, recipeID)
		require.NoError(t, err)

		router := categoriesRouter(stores, asUser(user.ID, user.Email))

		for _, param := range []string{"dinner", "favorites", "1"} {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/api/categories/"+param+"/recipes", nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, "param %q", param)
			body := decodeBody(t, w)
			assert.Equal(t, true, body["success"], "param %q", param)
		}
	})

	t.Run("unknown slug", func(t *testing.T) {
		stores, cleanup := setupControllerTest(t)
		defer cleanup()

		router := categoriesRouter(stores)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/categories/no-such-category/recipes", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
	})

	t.Run("favorites without a session is an empty list", func(t *testing.T) {
		stores, cleanup := setupControllerTest(t)
		defer cleanup()

		router := categoriesRouter(stores)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/categories/favorites/recipes", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Empty(t, body["recipes"])
	})
}
