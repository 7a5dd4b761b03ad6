// Package categories provides database operations for recipe categories,
// including the derived URL slugs and the per-user virtual Favorites entry.
package categories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kviik/recipegram/internal/entities"
)

var (
	ErrCategoryExists = errors.New("category already exists")
	ErrNotFound       = errors.New("category not found")
)

// FavoritesSource supplies the favorite data needed to synthesize the
// virtual Favorites category. Implemented by favorites.Repository.
type FavoritesSource interface {
	ListForUser(userID uint) ([]entities.RecipeSummary, error)
	Count(userID uint) (int64, error)
}

// Repository handles category database operations.
type Repository struct {
	db        *gorm.DB
	favorites FavoritesSource
}

func NewRepository(db *gorm.DB, favorites FavoritesSource) *Repository {
	return &Repository{db: db, favorites: favorites}
}

// virtualFavorites is the synthesized per-user Favorites entry. It is not a
// row; its wire id is the literal "favorites".
func virtualFavorites() entities.Category {
	return entities.Category{
		Name:    "Favorites",
		Slug:    entities.FavoritesCategoryID,
		Virtual: true,
	}
}

// GetAll returns all categories ordered by name with slugs filled in. When
// viewerID is non-zero and that user has at least one favorite, the virtual
// Favorites entry is prepended.
func (r *Repository) GetAll(viewerID uint) ([]entities.Category, error) {
	var cats []entities.Category
	if err := r.db.Order("name").Find(&cats).Error; err != nil {
		return nil, err
	}
	for i := range cats {
		cats[i].Slug = GenerateSlug(cats[i].Name)
	}

	if viewerID != 0 {
		count, err := r.favorites.Count(viewerID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			cats = append([]entities.Category{virtualFavorites()}, cats...)
		}
	}

	return cats, nil
}

// Create inserts a new category. Duplicate names fail with ErrCategoryExists.
func (r *Repository) Create(name string) (*entities.Category, error) {
	cat := &entities.Category{Name: name}
	if err := r.db.Create(cat).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	cat.Slug = GenerateSlug(cat.Name)
	return cat, nil
}

// GetBySlug resolves a slug to its category. The favorites slug resolves to
// the virtual descriptor without touching the database. Slugs are not
// stored, so stored categories are matched by deriving each slug in turn.
func (r *Repository) GetBySlug(slug string) (*entities.Category, error) {
	if slug == entities.FavoritesCategoryID {
		v := virtualFavorites()
		return &v, nil
	}

	var cats []entities.Category
	if err := r.db.Find(&cats).Error; err != nil {
		return nil, err
	}
	for i := range cats {
		if GenerateSlug(cats[i].Name) == slug {
			cats[i].Slug = slug
			return &cats[i], nil
		}
	}
	return nil, ErrNotFound
}

// GetByID loads a single stored category.
func (r *Repository) GetByID(id uint) (*entities.Category, error) {
	var cat entities.Category
	if err := r.db.First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	cat.Slug = GenerateSlug(cat.Name)
	return &cat, nil
}

// GetRecipes lists the recipes of a category, newest first. The favorites
// variant delegates to the favorite store for the viewer (empty without one)
// and marks every returned recipe as favorited. For stored categories the
// viewer's favorite status is computed per row when a viewer is present.
func (r *Repository) GetRecipes(ref Ref, viewerID uint) ([]entities.RecipeSummary, error) {
	if ref.IsFavorites() {
		if viewerID == 0 {
			return []entities.RecipeSummary{}, nil
		}
		recipes, err := r.favorites.ListForUser(viewerID)
		if err != nil {
			return nil, err
		}
		for i := range recipes {
			fav := true
			recipes[i].IsFavorite = &fav
		}
		return recipes, nil
	}

	query := r.db.Table("recipes").
		Joins("JOIN categories ON categories.id = recipes.category_id").
		Joins("JOIN users ON users.id = recipes.user_id").
		Where("recipes.category_id = ?", ref.ID()).
		Order("recipes.created_at DESC")

	const columns = "recipes.id, recipes.user_id, recipes.title, recipes.category_id, " +
		"recipes.description, recipes.image_url, recipes.created_at, " +
		"categories.name AS category_name, users.email AS user_email"

	if viewerID != 0 {
		query = query.Select(columns+", EXISTS(SELECT 1 FROM favorites WHERE favorites.user_id = ? AND favorites.recipe_id = recipes.id) AS is_favorite", viewerID)
	} else {
		query = query.Select(columns)
	}

	recipes := []entities.RecipeSummary{}
	if err := query.Scan(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
