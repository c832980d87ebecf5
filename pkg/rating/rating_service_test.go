package rating

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
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
		&entities.User{}, &entities.Recipe{}, &entities.Rating{},
	))
	return db
}

func seedRecipe(t *testing.T, db *gorm.DB) (*entities.User, *entities.Recipe) {
	t.Helper()
	author := &entities.User{Username: "author", Email: "author@example.com", Password: "x", Role: domain.RoleUser, IsActive: true}
	require.NoError(t, db.Create(author).Error)
	target := &entities.Recipe{
		UserID:       author.ID,
		Title:        "Pancakes",
		Description:  "fluffy",
		Ingredients:  []string{"flour", "eggs"},
		Instructions: []string{"mix", "fry"},
		PrepTime:     10,
		CookTime:     15,
		Servings:     2,
		Difficulty:   "easy",
	}
	require.NoError(t, db.Create(target).Error)
	return author, target
}

func seedUser(t *testing.T, db *gorm.DB, name string) *entities.User {
	t.Helper()
	u := &entities.User{Username: name, Email: name + "@example.com", Password: "x", Role: domain.RoleUser, IsActive: true}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestRateRecipeUpsertsAndRecomputes(t *testing.T) {
	db := setupTestDB(t)
	service := NewRatingService(NewRatingRepository(db))
	_, target := seedRecipe(t, db)
	rater := seedUser(t, db, "rater")

	res, err := service.RateRecipe(context.Background(), target.ID, rater.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Rating.Rating)
	assert.Equal(t, 3.0, res.AverageRating)
	assert.Equal(t, int64(1), res.TotalRatings)

	// Rating again replaces, it never duplicates.
	res, err = service.RateRecipe(context.Background(), target.ID, rater.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.AverageRating)
	assert.Equal(t, int64(1), res.TotalRatings)

	var stored entities.Recipe
	require.NoError(t, db.First(&stored, target.ID).Error)
	assert.Equal(t, 5.0, stored.AverageRating)
	assert.Equal(t, int64(1), stored.TotalRatings)
}

func TestRateRecipeMultipleUsersAverages(t *testing.T) {
	db := setupTestDB(t)
	service := NewRatingService(NewRatingRepository(db))
	_, target := seedRecipe(t, db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	_, err := service.RateRecipe(context.Background(), target.ID, alice.ID, 2)
	require.NoError(t, err)
	res, err := service.RateRecipe(context.Background(), target.ID, bob.ID, 5)
	require.NoError(t, err)

	assert.Equal(t, 3.5, res.AverageRating)
	assert.Equal(t, int64(2), res.TotalRatings)
}

func TestRateRecipeRejectsOutOfRange(t *testing.T) {
	db := setupTestDB(t)
	service := NewRatingService(NewRatingRepository(db))
	_, target := seedRecipe(t, db)
	rater := seedUser(t, db, "rater")

	for _, value := range []int{0, 6, -1} {
		_, err := service.RateRecipe(context.Background(), target.ID, rater.ID, value)
		assert.ErrorIs(t, err, domain.ErrRatingOutOfRange)
	}

	// Nothing was written.
	var stored entities.Recipe
	require.NoError(t, db.First(&stored, target.ID).Error)
	assert.Equal(t, 0.0, stored.AverageRating)
	assert.Equal(t, int64(0), stored.TotalRatings)
}

func TestRateRecipeMissingRecipe(t *testing.T) {
	db := setupTestDB(t)
	service := NewRatingService(NewRatingRepository(db))
	rater := seedUser(t, db, "rater")

	_, err := service.RateRecipe(context.Background(), 9999, rater.ID, 4)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestDeleteRatingRecomputesAggregate(t *testing.T) {
	db := setupTestDB(t)
	service := NewRatingService(NewRatingRepository(db))
	_, target := seedRecipe(t, db)
	rater := seedUser(t, db, "rater")

	_, err := service.RateRecipe(context.Background(), target.ID, rater.ID, 4)
	require.NoError(t, err)

	require.NoError(t, service.DeleteRating(context.Background(), target.ID, rater.ID))

	var stored entities.Recipe
	require.NoError(t, db.First(&stored, target.ID).Error)
	assert.Equal(t, 0.0, stored.AverageRating)
	assert.Equal(t, int64(0), stored.TotalRatings)
}

func TestDeleteRatingMissing(t *testing.T) {
	db := setupTestDB(t)
	service := NewRatingService(NewRatingRepository(db))
	_, target := seedRecipe(t, db)
	rater := seedUser(t, db, "rater")

	err := service.DeleteRating(context.Background(), target.ID, rater.ID)
	assert.ErrorIs(t, err, domain.ErrRatingNotFound)
}

func TestGetUserRating(t *testing.T) {
	db := setupTestDB(t)
	service := NewRatingService(NewRatingRepository(db))
	_, target := seedRecipe(t, db)
	rater := seedUser(t, db, "rater")

	_, err := service.GetUserRating(context.Background(), target.ID, rater.ID)
	assert.ErrorIs(t, err, domain.ErrRatingNotFound)

	_, err = service.RateRecipe(context.Background(), target.ID, rater.ID, 2)
	require.NoError(t, err)

	res, err := service.GetUserRating(context.Background(), target.ID, rater.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Rating)
	assert.Equal(t, target.ID, res.RecipeID)
}
