package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kviik/recipegram/internal/auth"
)

// GetUserID extracts the authenticated user's ID from the Gin context.
// Returns 0 for anonymous requests.
func GetUserID(c *gin.Context) uint {
	return auth.GetUserID(c)
}

// --- Response Helpers ---
//
// Every JSON response carries the envelope {"success": bool, ...}. Payload
// keys are merged into the envelope rather than nested under "data".

// respondOK sends a 200 response with success: true and the payload keys
// merged into the envelope.
func respondOK(c *gin.Context, payload gin.H) {
	respondWith(c, http.StatusOK, payload)
}

// respondCreated sends a 201 response with success: true.
func respondCreated(c *gin.Context, payload gin.H) {
	respondWith(c, http.StatusCreated, payload)
}

func respondWith(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// respondError sends an error envelope with the given status code.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// respondBadRequest sends a 400 Bad Request envelope.
func respondBadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, message)
}

// respondNotFound sends a 404 Not Found envelope.
func respondNotFound(c *gin.Context, resource string) {
	respondError(c, http.StatusNotFound, resource+" not found")
}

// respondInternalError logs the error and sends a 500 envelope.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	respondError(c, http.StatusInternalServerError, "Failed to "+context)
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. Responds with a 400 envelope and returns 0, false on failure.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}
