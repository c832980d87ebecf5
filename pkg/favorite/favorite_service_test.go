package favorite

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/pkg/recipe"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{}, &entities.Recipe{}, &entities.Favorite{},
	))
	return db
}

func newService(db *gorm.DB) FavoriteService {
	return NewFavoriteService(NewFavoriteRepository(db), recipe.NewRecipeRepository(db))
}

func seedFixture(t *testing.T, db *gorm.DB) (*entities.User, *entities.Recipe) {
	t.Helper()
	u := &entities.User{Username: "alice", Email: "alice@example.com", Password: "x", Role: domain.RoleUser, IsActive: true}
	require.NoError(t, db.Create(u).Error)
	r := &entities.Recipe{
		UserID: u.ID, Title: "t", Description: "d",
		Ingredients: []string{"a"}, Instructions: []string{"b"}, Servings: 1,
	}
	require.NoError(t, db.Create(r).Error)
	return u, r
}

func TestAddFavorite(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	alice, target := seedFixture(t, db)

	created, err := service.AddFavorite(context.Background(), target.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, target.ID, created.RecipeID)

	_, err = service.AddFavorite(context.Background(), target.ID, alice.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyFavorited)

	_, err = service.AddFavorite(context.Background(), 9999, alice.ID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRemoveFavorite(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	alice, target := seedFixture(t, db)

	err := service.RemoveFavorite(context.Background(), target.ID, alice.ID)
	assert.ErrorIs(t, err, domain.ErrFavoriteNotFound)

	_, err = service.AddFavorite(context.Background(), target.ID, alice.ID)
	require.NoError(t, err)
	require.NoError(t, service.RemoveFavorite(context.Background(), target.ID, alice.ID))

	favorited, err := service.IsFavorited(context.Background(), target.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestGetUserFavorites(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	alice, target := seedFixture(t, db)

	_, err := service.AddFavorite(context.Background(), target.ID, alice.ID)
	require.NoError(t, err)

	recipes, total, err := service.GetUserFavorites(context.Background(), alice.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, recipes, 1)
	assert.Equal(t, target.ID, recipes[0].ID)
}
