package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kviik/recipegram/internal/database"
)

type HealthController struct {
	db      *database.Database
	version string
}

func NewHealthController(db *database.Database, version string) *HealthController {
	return &HealthController{
		db:      db,
		version: version,
	}
}

// Status reports liveness and whether the recipe database answers a ping.
// GET /health
func (h *HealthController) Status(c *gin.Context) {
	if err := h.pingDatabase(); err != nil {
		log.Printf("Health check failed: %v", err)
		respondError(c, http.StatusServiceUnavailable, "Database unreachable")
		return
	}

	respondOK(c, gin.H{
		"status":  "ok",
		"time":    time.Now().Format(time.RFC3339),
		"version": h.version,
	})
}

func (h *HealthController) pingDatabase() error {
	if h.db == nil {
		return errors.New("database not configured")
	}
	sqlDB, err := h.db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
