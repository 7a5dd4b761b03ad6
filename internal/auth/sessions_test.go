package auth

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kviik/recipegram/internal/config"
	"github.com/kviik/recipegram/internal/entities"
)

func setupSessionTest(t *testing.T) (*SessionManager, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_sessions_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	sqlDB, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)

	sm, err := NewSessionManager(sqlDB, config.Auth{
		SessionLifetime: time.Hour,
		SecureCookies:   false,
	})
	require.NoError(t, err)

	cleanup := func() {
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return sm, cleanup
}

func TestSessionManager_RoundTrip(t *testing.T) {
	sm, cleanup := setupSessionTest(t)
	defer cleanup()

	m := NewMiddleware(sm)
	user := &entities.User{ID: 7, Email: "a@example.com"}

	router := gin.New()
	router.Use(sm.SessionLoadSave())
	router.Use(m.LoadUser())
	router.POST("/login", func(c *gin.Context) {
		require.NoError(t, sm.CreateSession(c.Request, user))
		c.Status(http.StatusNoContent)
	})
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": sm.GetUserID(c.Request),
			"email":   sm.GetEmail(c.Request),
		})
	})
	router.POST("/logout", func(c *gin.Context) {
		require.NoError(t, sm.DestroySession(c.Request))
		c.Status(http.StatusNoContent)
	})

	// Log in and capture the session cookie
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "login must set a session cookie")
	var session *http.Cookie
	for _, c := range cookies {
		if c.Name == "session" {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)

	// The cookie identifies the user on the next request
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/whoami", nil)
	req.AddCookie(session)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7,"email":"a@example.com"}`, w.Body.String())

	// Destroying the session invalidates the cookie
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/logout", nil)
	req.AddCookie(session)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/whoami", nil)
	req.AddCookie(session)
	router.ServeHTTP(w, req)
	assert.JSONEq(t, `{"user_id":0,"email":""}`, w.Body.String())
}

func TestSessionManager_AnonymousRequest(t *testing.T) {
	sm, cleanup := setupSessionTest(t)
	defer cleanup()

	router := gin.New()
	router.Use(sm.SessionLoadSave())
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": sm.GetUserID(c.Request)})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":0}`, w.Body.String())
}
