package database

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kviik/recipegram/internal/entities"
)

func testDBPath(t *testing.T) string {
	t.Helper()
	return "./test_database_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
}

func TestNewDatabase_SeedsDefaultCategories(t *testing.T) {
	dbPath := testDBPath(t)
	defer os.Remove(dbPath)

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int64
	require.NoError(t, db.DB.Model(&entities.Category{}).Count(&count).Error)
	assert.Equal(t, int64(len(defaultCategories)), count)

	var breakfast entities.Category
	assert.NoError(t, db.DB.Where("name = ?", "Breakfast").First(&breakfast).Error)
}

func TestNewDatabase_SeedIsIdempotent(t *testing.T) {
	dbPath := testDBPath(t)
	defer os.Remove(dbPath)

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Opening the same file again must not duplicate the seed rows
	db, err = NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int64
	require.NoError(t, db.DB.Model(&entities.Category{}).Count(&count).Error)
	assert.Equal(t, int64(len(defaultCategories)), count)
}

func TestNewDatabase_ForeignKeysOnEveryConnection(t *testing.T) {
	dbPath := testDBPath(t)
	defer os.Remove(dbPath)

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)

	// Pin two pooled connections at once; both must have the pragma set,
	// not just whichever one ran the startup statements.
	ctx := context.Background()
	conn1, err := sqlDB.Conn(ctx)
	require.NoError(t, err)
	defer conn1.Close()
	conn2, err := sqlDB.Conn(ctx)
	require.NoError(t, err)
	defer conn2.Close()

	for i, conn := range []*sql.Conn{conn1, conn2} {
		var enabled int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled))
		assert.Equal(t, 1, enabled, "connection %d", i+1)
	}
}

func TestNewDatabase_CascadeDeletesFavorites(t *testing.T) {
	dbPath := testDBPath(t)
	defer os.Remove(dbPath)

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	user := entities.User{Email: "a@example.com", Password: "hash"}
	require.NoError(t, db.DB.Create(&user).Error)

	var cat entities.Category
	require.NoError(t, db.DB.First(&cat).Error)

	recipe := entities.Recipe{UserID: user.ID, Title: "Stew", CategoryID: cat.ID, Description: "test"}
	require.NoError(t, db.DB.Create(&recipe).Error)
	require.NoError(t, db.DB.Create(&entities.Favorite{UserID: user.ID, RecipeID: recipe.ID}).Error)

	require.NoError(t, db.DB.Delete(&entities.Recipe{}, recipe.ID).Error)

	var count int64
	require.NoError(t, db.DB.Model(&entities.Favorite{}).Where("recipe_id = ?", recipe.ID).Count(&count).Error)
	assert.Zero(t, count)
}
