package user

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/pkg/jwt"
	"context"
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubS3 records deletions instead of talking to object storage.
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

func newService(db *gorm.DB) (UserService, *stubS3) {
	s3 := &stubS3{}
	return NewUserService(NewUserRepository(db), jwt.NewJWTService(), s3), s3
}

func signUp(t *testing.T, service UserService, name string) domain.SignUpResponse {
	t.Helper()
	res, err := service.SignUp(context.Background(), domain.SignUpRequest{
		Username: name,
		Email:    name + "@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	return res
}

func TestSignUpAndSignIn(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newService(db)

	created := signUp(t, service, "alice")
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, domain.RoleUser, created.Role)

	res, err := service.SignIn(context.Background(), domain.SignInRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, created.ID, res.User.ID)
}

func TestSignUpDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newService(db)
	signUp(t, service, "alice")

	_, err := service.SignUp(context.Background(), domain.SignUpRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newService(db)
	signUp(t, service, "alice")

	_, err := service.SignUp(context.Background(), domain.SignUpRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestSignInWrongCredentials(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newService(db)
	signUp(t, service, "alice")

	_, err := service.SignIn(context.Background(), domain.SignInRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrPasswordIncorrect)

	_, err = service.SignIn(context.Background(), domain.SignInRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailNotFound)
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newService(db)
	created := signUp(t, service, "alice")

	err := service.ChangePassword(context.Background(), domain.ChangePasswordRequest{
		CurrentPassword: "nope",
		NewPassword:     "newpassword1",
	}, created.ID)
	assert.ErrorIs(t, err, domain.ErrPasswordIncorrect)

	require.NoError(t, service.ChangePassword(context.Background(), domain.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword1",
	}, created.ID))

	_, err = service.SignIn(context.Background(), domain.SignInRequest{
		Email:    "alice@example.com",
		Password: "newpassword1",
	})
	assert.NoError(t, err)
}

func TestGetProfileCounts(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newService(db)
	alice := signUp(t, service, "alice")
	bob := signUp(t, service, "bob")

	require.NoError(t, db.Create(&entities.Recipe{
		UserID: alice.ID, Title: "t", Description: "d",
		Ingredients: []string{"a"}, Instructions: []string{"b"}, Servings: 1,
	}).Error)
	require.NoError(t, db.Create(&entities.Follow{FollowerID: bob.ID, FollowingID: alice.ID}).Error)

	res, err := service.GetProfile(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Statistics.Recipes)
	assert.Equal(t, int64(1), res.Statistics.Followers)
	assert.Equal(t, int64(0), res.Statistics.Following)
}

func TestDeleteAccountCascades(t *testing.T) {
	db := setupTestDB(t)
	service, s3 := newService(db)
	alice := signUp(t, service, "alice")
	bob := signUp(t, service, "bob")

	// Alice owns a recipe with an image; bob rated and reviewed it.
	ownRecipe := &entities.Recipe{
		UserID: alice.ID, Title: "own", Description: "d",
		Ingredients: []string{"a"}, Instructions: []string{"b"}, Servings: 1,
		ImageURL: "recipes/own.png",
	}
	require.NoError(t, db.Create(ownRecipe).Error)
	require.NoError(t, db.Create(&entities.Rating{UserID: bob.ID, RecipeID: ownRecipe.ID, Rating: 4}).Error)
	require.NoError(t, db.Create(&entities.Review{UserID: bob.ID, RecipeID: ownRecipe.ID, Comment: "c"}).Error)

	// Alice also rated bob's recipe; that aggregate must be refreshed.
	foreignRecipe := &entities.Recipe{
		UserID: bob.ID, Title: "foreign", Description: "d",
		Ingredients: []string{"a"}, Instructions: []string{"b"}, Servings: 1,
		AverageRating: 5, TotalRatings: 1,
	}
	require.NoError(t, db.Create(foreignRecipe).Error)
	require.NoError(t, db.Create(&entities.Rating{UserID: alice.ID, RecipeID: foreignRecipe.ID, Rating: 5}).Error)

	err := service.DeleteAccount(context.Background(), domain.DeleteAccountRequest{Password: "wrong"}, alice.ID)
	assert.ErrorIs(t, err, domain.ErrPasswordIncorrect)

	require.NoError(t, service.DeleteAccount(context.Background(), domain.DeleteAccountRequest{Password: "password123"}, alice.ID))

	var count int64
	db.Model(&entities.User{}).Where("id = ?", alice.ID).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&entities.Recipe{}).Where("user_id = ?", alice.ID).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&entities.Rating{}).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&entities.Review{}).Count(&count)
	assert.Equal(t, int64(0), count)

	var survivor entities.Recipe
	require.NoError(t, db.First(&survivor, foreignRecipe.ID).Error)
	assert.Equal(t, 0.0, survivor.AverageRating)
	assert.Equal(t, int64(0), survivor.TotalRatings)

	assert.Contains(t, s3.deleted, "recipes/own.png")
}
