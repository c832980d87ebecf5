package follow

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/pkg/user"
	"context"
	"fmt"
	"testing"
	"time"

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
		&entities.User{}, &entities.Recipe{}, &entities.Review{}, &entities.Follow{},
	))
	return db
}

func newService(db *gorm.DB) FollowService {
	return NewFollowService(NewFollowRepository(db), user.NewUserRepository(db))
}

func seedUser(t *testing.T, db *gorm.DB, name string) *entities.User {
	t.Helper()
	u := &entities.User{Username: name, Email: name + "@example.com", Password: "x", Role: domain.RoleUser, IsActive: true}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedRecipeAt(t *testing.T, db *gorm.DB, author *entities.User, title string, at time.Time) *entities.Recipe {
	t.Helper()
	r := &entities.Recipe{
		UserID:       author.ID,
		Title:        title,
		Description:  "d",
		Ingredients:  []string{"a"},
		Instructions: []string{"b"},
		Servings:     1,
	}
	require.NoError(t, db.Create(r).Error)
	require.NoError(t, db.Model(r).Update("created_at", at).Error)
	r.CreatedAt = at
	return r
}

func seedReviewAt(t *testing.T, db *gorm.DB, author *entities.User, target *entities.Recipe, at time.Time) *entities.Review {
	t.Helper()
	rv := &entities.Review{UserID: author.ID, RecipeID: target.ID, Comment: "nice"}
	require.NoError(t, db.Create(rv).Error)
	require.NoError(t, db.Model(rv).Update("created_at", at).Error)
	rv.CreatedAt = at
	return rv
}

func TestFollowSelf(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	alice := seedUser(t, db, "alice")

	err := service.Follow(context.Background(), alice.ID, alice.ID)
	assert.ErrorIs(t, err, domain.ErrCannotFollowSelf)
}

func TestFollowMissingUser(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	alice := seedUser(t, db, "alice")

	err := service.Follow(context.Background(), alice.ID, 9999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestFollowTwice(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	require.NoError(t, service.Follow(context.Background(), alice.ID, bob.ID))
	err := service.Follow(context.Background(), alice.ID, bob.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyFollowing)
}

func TestUnfollowNotFollowed(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	err := service.Unfollow(context.Background(), alice.ID, bob.ID)
	assert.ErrorIs(t, err, domain.ErrNotFollowing)
}

func TestFollowUnfollowRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	require.NoError(t, service.Follow(context.Background(), alice.ID, bob.ID))
	following, err := service.IsFollowing(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	require.NoError(t, service.Unfollow(context.Background(), alice.ID, bob.ID))
	following, err = service.IsFollowing(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestGetFollowers(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	require.NoError(t, service.Follow(context.Background(), bob.ID, alice.ID))
	require.NoError(t, service.Follow(context.Background(), carol.ID, alice.ID))

	res, err := service.GetFollowers(context.Background(), alice.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Pagination.Total)
	assert.Len(t, res.Users, 2)
}

func TestActivityFeedEmptyWithoutFollowing(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	alice := seedUser(t, db, "alice")

	res, err := service.GetActivityFeed(context.Background(), alice.ID, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, res.Activities)
	assert.Equal(t, int64(0), res.Pagination.Total)
	assert.Equal(t, 1, res.Pagination.Page)
	assert.Equal(t, int64(0), res.Pagination.Pages)
}

func TestActivityFeedMergesNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	require.NoError(t, service.Follow(context.Background(), alice.ID, bob.ID))

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	older := seedRecipeAt(t, db, bob, "older recipe", base)
	newer := seedRecipeAt(t, db, bob, "newer recipe", base.Add(2*time.Hour))
	seedReviewAt(t, db, bob, older, base.Add(time.Hour))

	res, err := service.GetActivityFeed(context.Background(), alice.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, res.Activities, 3)
	assert.Equal(t, int64(3), res.Pagination.Total)

	assert.Equal(t, domain.ActivityKindRecipe, res.Activities[0].Type)
	assert.Equal(t, newer.ID, res.Activities[0].Data.(*entities.Recipe).ID)
	assert.Equal(t, domain.ActivityKindReview, res.Activities[1].Type)
	assert.Equal(t, domain.ActivityKindRecipe, res.Activities[2].Type)
	assert.Equal(t, older.ID, res.Activities[2].Data.(*entities.Recipe).ID)
}

func TestActivityFeedIgnoresUnfollowedAuthors(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")
	require.NoError(t, service.Follow(context.Background(), alice.ID, bob.ID))

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	seedRecipeAt(t, db, bob, "from bob", base)
	seedRecipeAt(t, db, carol, "from carol", base.Add(time.Hour))

	res, err := service.GetActivityFeed(context.Background(), alice.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, res.Activities, 1)
	assert.Equal(t, "from bob", res.Activities[0].Data.(*entities.Recipe).Title)
}

func TestActivityFeedPagination(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	require.NoError(t, service.Follow(context.Background(), alice.ID, bob.ID))

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedRecipeAt(t, db, bob, fmt.Sprintf("recipe %d", i), base.Add(time.Duration(i)*time.Hour))
	}

	first, err := service.GetActivityFeed(context.Background(), alice.ID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, first.Activities, 2)
	assert.Equal(t, int64(5), first.Pagination.Total)
	assert.Equal(t, int64(3), first.Pagination.Pages)

	last, err := service.GetActivityFeed(context.Background(), alice.ID, 3, 2)
	require.NoError(t, err)
	assert.Len(t, last.Activities, 1)

	beyond, err := service.GetActivityFeed(context.Background(), alice.ID, 9, 2)
	require.NoError(t, err)
	assert.Empty(t, beyond.Activities)
}
