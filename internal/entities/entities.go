package entities

import (
	"encoding/json"
	"time"
)

// FavoritesCategoryID is the wire identifier of the per-user virtual
// "Favorites" category. It is never a database row.
const FavoritesCategoryID = "favorites"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"` // bcrypt hash
	CreatedAt time.Time `json:"created_at"`
}

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	// Slug is derived from Name on read, never stored.
	Slug string `gorm:"-" json:"slug"`
	// Virtual marks the synthesized per-user Favorites entry.
	Virtual bool `gorm:"-" json:"virtual,omitempty"`
}

// MarshalJSON emits the literal id "favorites" for the virtual entry so the
// wire format matches stored categories' numeric ids without a second type.
func (c Category) MarshalJSON() ([]byte, error) {
	type category Category // avoid recursion
	if !c.Virtual {
		return json.Marshal(category(c))
	}
	return json.Marshal(struct {
		ID string `json:"id"`
		category
	}{ID: FavoritesCategoryID, category: category(c)})
}

type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	CategoryID  uint      `gorm:"index;not null" json:"category_id"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"size:512" json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	User        User         `gorm:"foreignKey:UserID" json:"-"`
	Category    Category     `gorm:"foreignKey:CategoryID" json:"-"`
	Ingredients []Ingredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

type Ingredient struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RecipeID uint   `gorm:"index;not null" json:"recipe_id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Amount   string `gorm:"size:100" json:"amount,omitempty"`
}

type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_favorites_user_recipe;not null" json:"user_id"`
	RecipeID  uint      `gorm:"uniqueIndex:idx_favorites_user_recipe;not null" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`

	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string       { return "users" }
func (Category) TableName() string   { return "categories" }
func (Recipe) TableName() string     { return "recipes" }
func (Ingredient) TableName() string { return "ingredients" }
func (Favorite) TableName() string   { return "favorites" }

// RecipeSummary is a recipe row joined with its category name and owner
// email. IsFavorite is set only when the query ran with a viewer context;
// without one it stays nil and is omitted from JSON.
type RecipeSummary struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	Title        string    `json:"title"`
	CategoryID   uint      `json:"category_id"`
	CategoryName string    `json:"category_name"`
	UserEmail    string    `json:"user_email"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	IsFavorite   *bool     `json:"is_favorite,omitempty"`
}

// RecipeDetail is a summary plus the recipe's ingredient list.
type RecipeDetail struct {
	RecipeSummary
	Ingredients []Ingredient `json:"ingredients"`
}

// IngredientInput is a single ingredient in a bulk insert request.
type IngredientInput struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}
