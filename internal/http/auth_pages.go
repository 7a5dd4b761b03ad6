package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/mail"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kviik/recipegram/internal/auth"
	"github.com/kviik/recipegram/internal/database/users"
	"github.com/kviik/recipegram/internal/entities"
)

// UserStore defines database operations for user accounts.
type UserStore interface {
	Create(email, password string) (*entities.User, error)
	VerifyCredentials(email, password string) (*entities.User, error)
}

// AuthPagesController renders and handles the register/login/logout forms.
type AuthPagesController struct {
	store          UserStore
	sessionManager *auth.SessionManager
}

func NewAuthPagesController(store UserStore, sessionManager *auth.SessionManager) *AuthPagesController {
	return &AuthPagesController{store: store, sessionManager: sessionManager}
}

// RegisterPage renders the registration form.
// GET /register
func (ac *AuthPagesController) RegisterPage(c *gin.Context) {
	ac.renderForm(c, http.StatusOK, "register", "", "")
}

// Register creates an account, logs the user in and redirects home.
// POST /register
func (ac *AuthPagesController) Register(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	if _, err := mail.ParseAddress(email); err != nil {
		ac.renderForm(c, http.StatusBadRequest, "register", "Please enter a valid email address", email)
		return
	}
	if len(password) < auth.MinPasswordLength {
		message := fmt.Sprintf("Password must be at least %d characters", auth.MinPasswordLength)
		ac.renderForm(c, http.StatusBadRequest, "register", message, email)
		return
	}

	user, err := ac.store.Create(email, password)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			ac.renderForm(c, http.StatusBadRequest, "register", "An account with this email already exists", email)
			return
		}
		log.Printf("Registration failed for %s: %v", email, err)
		ac.renderForm(c, http.StatusInternalServerError, "register", "Registration failed, please try again", email)
		return
	}

	if err := ac.sessionManager.CreateSession(c.Request, user); err != nil {
		log.Printf("Session creation failed for %s: %v", email, err)
		ac.renderForm(c, http.StatusInternalServerError, "login", "Account created, please log in", email)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// LoginPage renders the login form.
// GET /login
func (ac *AuthPagesController) LoginPage(c *gin.Context) {
	ac.renderForm(c, http.StatusOK, "login", "", "")
}

// Login checks credentials, starts a session and redirects home.
// POST /login
func (ac *AuthPagesController) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	user, err := ac.store.VerifyCredentials(email, password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			ac.renderForm(c, http.StatusUnauthorized, "login", "Invalid email or password", email)
			return
		}
		log.Printf("Login failed for %s: %v", email, err)
		ac.renderForm(c, http.StatusInternalServerError, "login", "Login failed, please try again", email)
		return
	}

	if err := ac.sessionManager.CreateSession(c.Request, user); err != nil {
		log.Printf("Session creation failed for %s: %v", email, err)
		ac.renderForm(c, http.StatusInternalServerError, "login", "Login failed, please try again", email)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Logout destroys the session and redirects home.
// GET /logout
func (ac *AuthPagesController) Logout(c *gin.Context) {
	if err := ac.sessionManager.DestroySession(c.Request); err != nil {
		log.Printf("Session destroy failed: %v", err)
	}
	c.Redirect(http.StatusFound, "/")
}

// renderForm re-renders an auth form, keeping the submitted email so the
// user doesn't retype it.
func (ac *AuthPagesController) renderForm(c *gin.Context, status int, name, errorMessage, email string) {
	title := "Log in"
	if name == "register" {
		title = "Register"
	}

	data := viewerData(c)
	data["Title"] = title
	data["Error"] = errorMessage
	data["FormEmail"] = email
	c.HTML(status, name, data)
}
