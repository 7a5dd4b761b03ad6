// Package users provides database operations for user accounts.
package users

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kviik/recipegram/internal/auth"
	"github.com/kviik/recipegram/internal/entities"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	ErrNotFound   = errors.New("user not found")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so callers cannot distinguish the two.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Repository handles user persistence and credential verification.
type Repository struct {
	db         *gorm.DB
	bcryptCost int
}

func NewRepository(db *gorm.DB, bcryptCost int) *Repository {
	return &Repository{db: db, bcryptCost: bcryptCost}
}

// Create hashes the password and inserts a new user. The returned record
// never carries the hash.
func (r *Repository) Create(email, password string) (*entities.User, error) {
	hash, err := auth.HashPassword(password, r.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{Email: email, Password: hash}
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.Password = ""
	return user, nil
}

// FindByEmail returns the full user row, including the password hash.
func (r *Repository) FindByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// VerifyCredentials checks an email/password pair. On success the user is
// returned with the password hash stripped; otherwise ErrInvalidCredentials.
func (r *Repository) VerifyCredentials(email, password string) (*entities.User, error) {
	user, err := r.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckPassword(password, user.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	user.Password = ""
	return user, nil
}
