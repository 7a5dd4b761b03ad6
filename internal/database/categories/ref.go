package categories

import (
	"errors"
	"strconv"

	"github.com/kviik/recipegram/internal/entities"
)

// ErrBadRef means the value is neither a numeric category id nor the
// favorites identifier.
var ErrBadRef = errors.New("not a category reference")

// Ref identifies a category in a request: either a stored row or the
// per-user virtual Favorites collection. Parsing happens once at the HTTP
// boundary; store code switches on the variant instead of comparing ids
// against the "favorites" sentinel string.
type Ref struct {
	favorites bool
	id        uint
}

// RealRef refers to a stored category row.
func RealRef(id uint) Ref { return Ref{id: id} }

// FavoritesRef refers to the virtual Favorites collection.
func FavoritesRef() Ref { return Ref{favorites: true} }

// ParseRef interprets a path parameter as a category reference.
func ParseRef(s string) (Ref, error) {
	if s == entities.FavoritesCategoryID {
		return FavoritesRef(), nil
	}
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return Ref{}, ErrBadRef
	}
	return RealRef(uint(id)), nil
}

func (r Ref) IsFavorites() bool { return r.favorites }

// ID returns the stored category id; zero for the favorites variant.
func (r Ref) ID() uint { return r.id }
