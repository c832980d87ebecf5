package collection

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
		&entities.User{}, &entities.Recipe{}, &entities.Collection{}, &entities.CollectionRecipe{},
	))
	return db
}

func newService(db *gorm.DB) CollectionService {
	return NewCollectionService(NewCollectionRepository(db), recipe.NewRecipeRepository(db))
}

func seedUser(t *testing.T, db *gorm.DB, name string) *entities.User {
	t.Helper()
	u := &entities.User{Username: name, Email: name + "@example.com", Password: "x", Role: domain.RoleUser, IsActive: true}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedRecipe(t *testing.T, db *gorm.DB, author *entities.User, title string) *entities.Recipe {
	t.Helper()
	r := &entities.Recipe{
		UserID: author.ID, Title: title, Description: "d",
		Ingredients: []string{"a"}, Instructions: []string{"b"}, Servings: 1,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func TestCreateAndListCollections(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	alice := seedUser(t, db, "alice")

	created, err := service.CreateCollection(context.Background(), domain.CreateCollectionRequest{
		Name:        "Weeknight dinners",
		Description: "fast ones",
	}, alice.ID)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	collections, err := service.GetUserCollections(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, collections, 1)
	assert.Equal(t, "Weeknight dinners", collections[0].Name)
}

func TestAddRecipeToCollection(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	alice := seedUser(t, db, "alice")
	target := seedRecipe(t, db, alice, "pasta")

	created, err := service.CreateCollection(context.Background(), domain.CreateCollectionRequest{Name: "faves"}, alice.ID)
	require.NoError(t, err)

	require.NoError(t, service.AddRecipe(context.Background(), created.ID, target.ID, alice.ID))

	err = service.AddRecipe(context.Background(), created.ID, target.ID, alice.ID)
	assert.ErrorIs(t, err, domain.ErrRecipeAlreadyInList)

	err = service.AddRecipe(context.Background(), created.ID, 9999, alice.ID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	_, recipes, total, err := service.GetCollection(context.Background(), created.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, recipes, 1)
	assert.Equal(t, "pasta", recipes[0].Title)
}

func TestRemoveRecipeFromCollection(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	alice := seedUser(t, db, "alice")
	target := seedRecipe(t, db, alice, "pasta")

	created, err := service.CreateCollection(context.Background(), domain.CreateCollectionRequest{Name: "faves"}, alice.ID)
	require.NoError(t, err)

	err = service.RemoveRecipe(context.Background(), created.ID, target.ID, alice.ID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotInCollection)

	require.NoError(t, service.AddRecipe(context.Background(), created.ID, target.ID, alice.ID))
	require.NoError(t, service.RemoveRecipe(context.Background(), created.ID, target.ID, alice.ID))

	_, _, total, err := service.GetCollection(context.Background(), created.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestCollectionOwnerGates(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	target := seedRecipe(t, db, alice, "pasta")

	created, err := service.CreateCollection(context.Background(), domain.CreateCollectionRequest{Name: "faves"}, alice.ID)
	require.NoError(t, err)

	_, err = service.UpdateCollection(context.Background(), created.ID, domain.UpdateCollectionRequest{Name: "stolen"}, bob.ID)
	assert.ErrorIs(t, err, domain.ErrNotCollectionOwner)

	err = service.AddRecipe(context.Background(), created.ID, target.ID, bob.ID)
	assert.ErrorIs(t, err, domain.ErrNotCollectionOwner)

	err = service.DeleteCollection(context.Background(), created.ID, bob.ID)
	assert.ErrorIs(t, err, domain.ErrNotCollectionOwner)
}

func TestDeleteCollectionCascades(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	alice := seedUser(t, db, "alice")
	target := seedRecipe(t, db, alice, "pasta")

	created, err := service.CreateCollection(context.Background(), domain.CreateCollectionRequest{Name: "faves"}, alice.ID)
	require.NoError(t, err)
	require.NoError(t, service.AddRecipe(context.Background(), created.ID, target.ID, alice.ID))

	require.NoError(t, service.DeleteCollection(context.Background(), created.ID, alice.ID))

	var entries int64
	db.Model(&entities.CollectionRecipe{}).Count(&entries)
	assert.Equal(t, int64(0), entries)

	_, _, _, err = service.GetCollection(context.Background(), created.ID, 1, 10)
	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)

	// The recipe itself survives.
	var count int64
	db.Model(&entities.Recipe{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateCollection(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db)
	alice := seedUser(t, db, "alice")

	created, err := service.CreateCollection(context.Background(), domain.CreateCollectionRequest{
		Name:        "old name",
		Description: "old description",
	}, alice.ID)
	require.NoError(t, err)

	updated, err := service.UpdateCollection(context.Background(), created.ID, domain.UpdateCollectionRequest{
		Name: "new name",
	}, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "new name", updated.Name)
	assert.Equal(t, "old description", updated.Description)
}
