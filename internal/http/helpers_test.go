package http

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/kviik/recipegram/internal/auth"
	"github.com/kviik/recipegram/internal/database"
	"github.com/kviik/recipegram/internal/database/categories"
	"github.com/kviik/recipegram/internal/database/favorites"
	"github.com/kviik/recipegram/internal/database/recipes"
	"github.com/kviik/recipegram/internal/database/users"
)

type testStores struct {
	db         *database.Database
	users      *users.Repository
	categories *categories.Repository
	recipes    *recipes.Repository
	favorites  *favorites.Repository
}

func setupControllerTest(t *testing.T) (*testStores, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	favoriteStore := favorites.NewRepository(db.DB)
	stores := &testStores{
		db:         db,
		users:      users.NewRepository(db.DB, 4),
		categories: categories.NewRepository(db.DB, favoriteStore),
		recipes:    recipes.NewRepository(db.DB),
		favorites:  favoriteStore,
	}

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return stores, cleanup
}

// asUser injects an authenticated viewer the way the session middleware
// would.
func asUser(userID uint, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.ContextKeyUserID, userID)
		c.Set(auth.ContextKeyEmail, email)
		c.Next()
	}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
