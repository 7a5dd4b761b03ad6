package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func favoritesRouter(stores *testStores, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middleware...)
	controller := NewFavoritesController(stores.favorites)
	router.GET("/api/favorites", controller.ListFavorites)
	router.POST("/api/favorites/:recipeId", controller.AddFavorite)
	router.DELETE("/api/favorites/:recipeId", controller.RemoveFavorite)
	router.GET("/api/favorites/:recipeId", controller.GetFavoriteStatus)
	return router
}

func seedFavoriteFixture(t *testing.T, stores *testStores) (userID, recipeID uint) {
	t.Helper()
	user, err := stores.users.Create("a@example.com", "secret123")
	require.NoError(t, err)
	id, err := stores.recipes.Create(user.ID, "Stew", 1, "test", "")
	require.NoError(t, err)
	return user.ID, id
}

func TestFavoritesController_RoundTrip(t *testing.T) {
	stores, cleanup := setupControllerTest(t)
	defer cleanup()

	userID, _ := seedFavoriteFixture(t, stores)
	router := favoritesRouter(stores, asUser(userID, "a@example.com"))

	// Initially not a favorite
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/favorites/1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["isFavorite"])

	// Add reports created
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/api/favorites/1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["added"])

	// Second add is a no-op
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/api/favorites/1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["added"])

	// Status flips
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/favorites/1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, true, decodeBody(t, w)["isFavorite"])

	// Listed under the viewer's favorites
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/favorites", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["recipes"], 1)

	// Remove reports removal, second remove does not
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", "/api/favorites/1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, true, decodeBody(t, w)["removed"])

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", "/api/favorites/1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, false, decodeBody(t, w)["removed"])
}

func TestFavoritesController_InvalidID(t *testing.T) {
	stores, cleanup := setupControllerTest(t)
	defer cleanup()

	userID, _ := seedFavoriteFixture(t, stores)
	router := favoritesRouter(stores, asUser(userID, "a@example.com"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/favorites/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["success"])
}
