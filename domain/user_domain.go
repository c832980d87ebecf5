package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessSignUp         = "user created successfully"
	MessageSuccessSignIn         = "sign-in successful"
	MessageSuccessGetProfile     = "profile retrieved successfully"
	MessageSuccessUpdateProfile  = "profile updated successfully"
	MessageSuccessChangePassword = "password changed successfully"
	MessageSuccessDeleteAccount  = "account deleted successfully"

	MessageFailedSignUp         = "sign-up failed"
	MessageFailedSignIn         = "sign-in failed"
	MessageFailedGetProfile     = "failed to fetch profile"
	MessageFailedUpdateProfile  = "failed to update profile"
	MessageFailedChangePassword = "failed to change password"
	MessageFailedDeleteAccount  = "failed to delete account"

	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrEmailNotFound      = errors.New("email not found, please sign up first")
	ErrPasswordIncorrect  = errors.New("password is incorrect")
	ErrUserNotFound       = errors.New("user not found")
)

type (
	SignUpRequest struct {
		Username string `json:"name" validate:"required,min=3,max=30"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	SignUpResponse struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}

	SignInRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	SignInResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UserResponse struct {
		ID           uint      `json:"id"`
		Username     string    `json:"username"`
		Email        string    `json:"email"`
		Bio          string    `json:"bio,omitempty"`
		ProfileImage string    `json:"profile_image,omitempty"`
		Role         string    `json:"role"`
		IsActive     bool      `json:"is_active"`
		CreatedAt    time.Time `json:"created_at"`
	}

	UserSummary struct {
		ID           uint   `json:"id"`
		Username     string `json:"username"`
		ProfileImage string `json:"profile_image,omitempty"`
		Bio          string `json:"bio,omitempty"`
	}

	ProfileStatistics struct {
		Recipes   int64 `json:"recipes"`
		Followers int64 `json:"followers"`
		Following int64 `json:"following"`
	}

	ProfileResponse struct {
		User       UserResponse      `json:"user"`
		Statistics ProfileStatistics `json:"statistics"`
	}

	UpdateProfileRequest struct {
		Username string                `json:"username" form:"username" validate:"omitempty,min=3,max=30"`
		Email    string                `json:"email" form:"email" validate:"omitempty,email"`
		Bio      *string               `json:"bio" form:"bio"`
		Image    *multipart.FileHeader `json:"-" form:"-"`
	}

	ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
	}

	DeleteAccountRequest struct {
		Password string `json:"password" validate:"required"`
	}
)
