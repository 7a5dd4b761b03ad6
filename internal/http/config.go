package http

import (
	"github.com/kviik/recipegram/internal/auth"
	"github.com/kviik/recipegram/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database

	// Stores
	UserStore     UserStore
	CategoryStore CategoryStore
	RecipeStore   RecipeStore
	FavoriteStore FavoriteStore

	// Authentication
	SessionManager *auth.SessionManager
	AuthMiddleware *auth.Middleware
	CSRFSecret     []byte
	SecureCookies  bool

	// UI paths
	TemplatesPath string
	StaticPath    string

	// Uploads
	UploadsDir string

	// Application info
	Version string
}
