package admin

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/pkg/recipe"
	"RecipeShare-Backend/pkg/review"
	"RecipeShare-Backend/pkg/user"
	"context"
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubS3 struct {
	deleted []string
}

func (s *stubS3) UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error) {
	return dir + "/" + fileName, nil
}

func (s *stubS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	return objectKey, nil
}

func (s *stubS3) DeleteFile(objectKey string) error {
	s.deleted = append(s.deleted, objectKey)
	return nil
}

func (s *stubS3) GetPublicLinkKey(objectKey string) string { return "https://cdn.test/" + objectKey }

func (s *stubS3) GetObjectKeyFromLink(link string) string { return link }

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{}, &entities.Recipe{}, &entities.Rating{}, &entities.Review{},
		&entities.Favorite{}, &entities.Follow{}, &entities.Collection{}, &entities.CollectionRecipe{},
	))
	return db
}

func newService(db *gorm.DB) (AdminService, *stubS3) {
	s3 := &stubS3{}
	return NewAdminService(
		NewAdminRepository(db),
		user.NewUserRepository(db),
		recipe.NewRecipeRepository(db),
		review.NewReviewRepository(db),
		s3,
	), s3
}

func seedUser(t *testing.T, db *gorm.DB, name, role string) *entities.User {
	t.Helper()
	u := &entities.User{Username: name, Email: name + "@example.com", Password: "x", Role: role, IsActive: true}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestToggleUserStatus(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newService(db)
	root := seedUser(t, db, "root", domain.RoleAdmin)
	target := seedUser(t, db, "target", domain.RoleUser)

	res, err := service.ToggleUserStatus(context.Background(), target.ID, root.ID)
	require.NoError(t, err)
	assert.False(t, res.IsActive)

	res, err = service.ToggleUserStatus(context.Background(), target.ID, root.ID)
	require.NoError(t, err)
	assert.True(t, res.IsActive)
}

func TestToggleUserStatusProtections(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newService(db)
	root := seedUser(t, db, "root", domain.RoleAdmin)
	peer := seedUser(t, db, "peer", domain.RoleAdmin)

	_, err := service.ToggleUserStatus(context.Background(), root.ID, root.ID)
	assert.ErrorIs(t, err, domain.ErrCannotBanSelf)

	_, err = service.ToggleUserStatus(context.Background(), peer.ID, root.ID)
	assert.ErrorIs(t, err, domain.ErrCannotTargetAdmin)

	_, err = service.ToggleUserStatus(context.Background(), 9999, root.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMakeAdmin(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newService(db)
	target := seedUser(t, db, "target", domain.RoleUser)

	res, err := service.MakeAdmin(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, res.Role)

	_, err = service.MakeAdmin(context.Background(), target.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyAdmin)
}

func TestAdminDeleteUser(t *testing.T) {
	db := setupTestDB(t)
	service, s3 := newService(db)
	root := seedUser(t, db, "root", domain.RoleAdmin)
	target := seedUser(t, db, "target", domain.RoleUser)
	require.NoError(t, db.Create(&entities.Recipe{
		UserID: target.ID, Title: "t", Description: "d",
		Ingredients: []string{"a"}, Instructions: []string{"b"}, Servings: 1,
		ImageURL: "recipes/img.png",
	}).Error)

	err := service.DeleteUser(context.Background(), root.ID, root.ID)
	assert.ErrorIs(t, err, domain.ErrCannotDeleteSelf)

	require.NoError(t, service.DeleteUser(context.Background(), target.ID, root.ID))

	var count int64
	db.Model(&entities.User{}).Where("id = ?", target.ID).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&entities.Recipe{}).Count(&count)
	assert.Equal(t, int64(0), count)
	assert.Contains(t, s3.deleted, "recipes/img.png")
}

func TestAdminDeleteRecipeAndReview(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newService(db)
	author := seedUser(t, db, "author", domain.RoleUser)
	reviewer := seedUser(t, db, "reviewer", domain.RoleUser)

	target := &entities.Recipe{
		UserID: author.ID, Title: "t", Description: "d",
		Ingredients: []string{"a"}, Instructions: []string{"b"}, Servings: 1,
	}
	require.NoError(t, db.Create(target).Error)
	flagged := &entities.Review{UserID: reviewer.ID, RecipeID: target.ID, Comment: "spam"}
	require.NoError(t, db.Create(flagged).Error)

	require.NoError(t, service.DeleteReview(context.Background(), flagged.ID, domain.ModerationRequest{Reason: "spam"}))
	err := service.DeleteReview(context.Background(), flagged.ID, domain.ModerationRequest{})
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)

	require.NoError(t, service.DeleteRecipe(context.Background(), target.ID, domain.ModerationRequest{Reason: "off topic"}))
	err = service.DeleteRecipe(context.Background(), target.ID, domain.ModerationRequest{})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetUsersFilters(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newService(db)
	seedUser(t, db, "alice", domain.RoleUser)
	bob := seedUser(t, db, "bob", domain.RoleUser)
	require.NoError(t, db.Model(bob).Update("is_active", false).Error)

	users, total, err := service.GetUsers(context.Background(), domain.UserQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, users, 2)

	users, total, err = service.GetUsers(context.Background(), domain.UserQuery{Status: "inactive", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, "bob", users[0].Username)

	_, total, err = service.GetUsers(context.Background(), domain.UserQuery{Search: "ali", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestGetStatistics(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newService(db)
	author := seedUser(t, db, "author", domain.RoleUser)
	banned := seedUser(t, db, "banned", domain.RoleUser)
	require.NoError(t, db.Model(banned).Update("is_active", false).Error)
	require.NoError(t, db.Create(&entities.Recipe{
		UserID: author.ID, Title: "t", Description: "d",
		Ingredients: []string{"a"}, Instructions: []string{"b"}, Servings: 1,
	}).Error)

	stats, err := service.GetStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.ActiveUsers)
	assert.Equal(t, int64(1), stats.InactiveUsers)
	assert.Equal(t, int64(1), stats.TotalRecipes)
	assert.Equal(t, int64(1), stats.RecentRecipes)
	assert.Equal(t, int64(2), stats.RecentUsers)
}
