package user

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/internal/utils/mailing"
	"RecipeShare-Backend/internal/utils/storage"
	"RecipeShare-Backend/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		SignUp(ctx context.Context, req domain.SignUpRequest) (domain.SignUpResponse, error)
		SignIn(ctx context.Context, req domain.SignInRequest) (domain.SignInResponse, error)
		GetProfile(ctx context.Context, userID uint) (domain.ProfileResponse, error)
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID uint) (domain.UserResponse, error)
		ChangePassword(ctx context.Context, req domain.ChangePasswordRequest, userID uint) error
		DeleteAccount(ctx context.Context, req domain.DeleteAccountRequest, userID uint) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func (s *userService) SignUp(ctx context.Context, req domain.SignUpRequest) (domain.SignUpResponse, error) {
	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.SignUpResponse{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.SignUpResponse{}, err
	}

	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.SignUpResponse{}, domain.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.SignUpResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.SignUpResponse{}, err
	}

	newUser := &entities.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
		IsActive: true,
	}
	if err := s.userRepository.CreateUser(ctx, newUser); err != nil {
		return domain.SignUpResponse{}, err
	}

	if mailing.Enabled() {
		go func(email, username string) {
			body := fmt.Sprintf("<p>Hi %s, welcome to RecipeShare! Start by posting your first recipe.</p>", username)
			if err := mailing.SendMail(email, "Welcome to RecipeShare", body); err != nil {
				log.Printf("failed to send welcome mail to %s: %v", email, err)
			}
		}(newUser.Email, newUser.Username)
	}

	return domain.SignUpResponse{
		ID:       newUser.ID,
		Username: newUser.Username,
		Email:    newUser.Email,
		Role:     newUser.Role,
	}, nil
}

func (s *userService) SignIn(ctx context.Context, req domain.SignInRequest) (domain.SignInResponse, error) {
	account, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SignInResponse{}, domain.ErrEmailNotFound
		}
		return domain.SignInResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return domain.SignInResponse{}, domain.ErrPasswordIncorrect
	}

	token := s.jwtService.GenerateTokenUser(account.ID, account.Role)
	return domain.SignInResponse{
		Token: token,
		User:  toUserResponse(account),
	}, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uint) (domain.ProfileResponse, error) {
	account, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.ProfileResponse{}, err
	}

	recipes, err := s.userRepository.CountRecipesByUser(ctx, userID)
	if err != nil {
		return domain.ProfileResponse{}, err
	}
	followers, err := s.userRepository.CountFollowers(ctx, userID)
	if err != nil {
		return domain.ProfileResponse{}, err
	}
	following, err := s.userRepository.CountFollowing(ctx, userID)
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	return domain.ProfileResponse{
		User: toUserResponse(account),
		Statistics: domain.ProfileStatistics{
			Recipes:   recipes,
			Followers: followers,
			Following: following,
		},
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID uint) (domain.UserResponse, error) {
	account, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if req.Username != "" && req.Username != account.Username {
		if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
			return domain.UserResponse{}, domain.ErrUsernameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, err
		}
		account.Username = req.Username
	}

	if req.Email != "" && req.Email != account.Email {
		if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
			return domain.UserResponse{}, domain.ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, err
		}
		account.Email = req.Email
	}

	if req.Bio != nil {
		account.Bio = *req.Bio
	}

	if req.Image != nil {
		var objectKey string
		var uploadErr error
		if account.ProfileImage != "" {
			existingKey := s.s3.GetObjectKeyFromLink(account.ProfileImage)
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(uuid.New().String(), req.Image, "profiles", storage.AllowImage...)
		}
		if uploadErr != nil {
			return domain.UserResponse{}, uploadErr
		}
		account.ProfileImage = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.userRepository.UpdateUser(ctx, account); err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(account), nil
}

func (s *userService) ChangePassword(ctx context.Context, req domain.ChangePasswordRequest, userID uint) error {
	account, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.CurrentPassword)); err != nil {
		return domain.ErrPasswordIncorrect
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	account.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, account)
}

func (s *userService) DeleteAccount(ctx context.Context, req domain.DeleteAccountRequest, userID uint) error {
	account, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return domain.ErrPasswordIncorrect
	}

	// Stored images go first; object storage is best-effort and not part of
	// the database transaction.
	if account.ProfileImage != "" {
		_ = s.s3.DeleteFile(s.s3.GetObjectKeyFromLink(account.ProfileImage))
	}
	recipes, err := s.userRepository.GetRecipesByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, recipe := range recipes {
		if recipe.ImageURL != "" {
			_ = s.s3.DeleteFile(s.s3.GetObjectKeyFromLink(recipe.ImageURL))
		}
	}

	return s.userRepository.DeleteUserCascade(ctx, userID)
}

func toUserResponse(account *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		Bio:          account.Bio,
		ProfileImage: account.ProfileImage,
		Role:         account.Role,
		IsActive:     account.IsActive,
		CreatedAt:    account.CreatedAt,
	}
}
