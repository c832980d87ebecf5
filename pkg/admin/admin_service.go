package admin

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/internal/utils/mailing"
	"RecipeShare-Backend/internal/utils/storage"
	"RecipeShare-Backend/pkg/recipe"
	"RecipeShare-Backend/pkg/review"
	"RecipeShare-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

type (
	AdminService interface {
		GetUsers(ctx context.Context, query domain.UserQuery) ([]*entities.User, int64, error)
		ToggleUserStatus(ctx context.Context, targetID, adminID uint) (domain.ToggleStatusResponse, error)
		MakeAdmin(ctx context.Context, targetID uint) (domain.MakeAdminResponse, error)
		DeleteUser(ctx context.Context, targetID, adminID uint) error
		DeleteRecipe(ctx context.Context, recipeID uint, req domain.ModerationRequest) error
		DeleteReview(ctx context.Context, reviewID uint, req domain.ModerationRequest) error
		GetStatistics(ctx context.Context) (domain.StatisticsResponse, error)
	}

	adminService struct {
		adminRepository  AdminRepository
		userRepository   user.UserRepository
		recipeRepository recipe.RecipeRepository
		reviewRepository review.ReviewRepository
		s3               storage.AwsS3
	}
)

func NewAdminService(
	adminRepository AdminRepository,
	userRepository user.UserRepository,
	recipeRepository recipe.RecipeRepository,
	reviewRepository review.ReviewRepository,
	s3 storage.AwsS3,
) AdminService {
	return &adminService{
		adminRepository:  adminRepository,
		userRepository:   userRepository,
		recipeRepository: recipeRepository,
		reviewRepository: reviewRepository,
		s3:               s3,
	}
}

func (s *adminService) GetUsers(ctx context.Context, query domain.UserQuery) ([]*entities.User, int64, error) {
	return s.adminRepository.GetUsers(ctx, query)
}

func (s *adminService) ToggleUserStatus(ctx context.Context, targetID, adminID uint) (domain.ToggleStatusResponse, error) {
	if targetID == adminID {
		return domain.ToggleStatusResponse{}, domain.ErrCannotBanSelf
	}

	target, err := s.userRepository.GetUserByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ToggleStatusResponse{}, domain.ErrUserNotFound
		}
		return domain.ToggleStatusResponse{}, err
	}
	if target.Role == domain.RoleAdmin {
		return domain.ToggleStatusResponse{}, domain.ErrCannotTargetAdmin
	}

	target.IsActive = !target.IsActive
	if err := s.userRepository.UpdateUser(ctx, target); err != nil {
		return domain.ToggleStatusResponse{}, err
	}

	return domain.ToggleStatusResponse{
		ID:       target.ID,
		Username: target.Username,
		IsActive: target.IsActive,
	}, nil
}

func (s *adminService) MakeAdmin(ctx context.Context, targetID uint) (domain.MakeAdminResponse, error) {
	target, err := s.userRepository.GetUserByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MakeAdminResponse{}, domain.ErrUserNotFound
		}
		return domain.MakeAdminResponse{}, err
	}
	if target.Role == domain.RoleAdmin {
		return domain.MakeAdminResponse{}, domain.ErrAlreadyAdmin
	}

	target.Role = domain.RoleAdmin
	if err := s.userRepository.UpdateUser(ctx, target); err != nil {
		return domain.MakeAdminResponse{}, err
	}

	return domain.MakeAdminResponse{
		ID:       target.ID,
		Username: target.Username,
		Role:     target.Role,
	}, nil
}

func (s *adminService) DeleteUser(ctx context.Context, targetID, adminID uint) error {
	if targetID == adminID {
		return domain.ErrCannotDeleteSelf
	}

	target, err := s.userRepository.GetUserByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	if target.Role == domain.RoleAdmin {
		return domain.ErrCannotTargetAdmin
	}

	if target.ProfileImage != "" {
		_ = s.s3.DeleteFile(s.s3.GetObjectKeyFromLink(target.ProfileImage))
	}
	recipes, err := s.userRepository.GetRecipesByUser(ctx, targetID)
	if err != nil {
		return err
	}
	for _, item := range recipes {
		if item.ImageURL != "" {
			_ = s.s3.DeleteFile(s.s3.GetObjectKeyFromLink(item.ImageURL))
		}
	}

	return s.userRepository.DeleteUserCascade(ctx, targetID)
}

func (s *adminService) DeleteRecipe(ctx context.Context, recipeID uint, req domain.ModerationRequest) error {
	target, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if target.ImageURL != "" {
		_ = s.s3.DeleteFile(s.s3.GetObjectKeyFromLink(target.ImageURL))
	}
	if err := s.recipeRepository.DeleteRecipeCascade(ctx, recipeID); err != nil {
		return err
	}

	s.notifyModeration(ctx, target.UserID, fmt.Sprintf("Your recipe %q was removed by a moderator.", target.Title), req.Reason)
	log.Printf("admin removed recipe %d (reason: %s)", recipeID, req.Reason)
	return nil
}

func (s *adminService) DeleteReview(ctx context.Context, reviewID uint, req domain.ModerationRequest) error {
	target, err := s.reviewRepository.GetReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReviewNotFound
		}
		return err
	}

	if err := s.reviewRepository.DeleteReview(ctx, reviewID); err != nil {
		return err
	}

	s.notifyModeration(ctx, target.UserID, "Your review was removed by a moderator.", req.Reason)
	log.Printf("admin removed review %d (reason: %s)", reviewID, req.Reason)
	return nil
}

func (s *adminService) GetStatistics(ctx context.Context) (domain.StatisticsResponse, error) {
	var stats domain.StatisticsResponse
	var err error

	if stats.TotalUsers, err = s.adminRepository.CountUsers(ctx); err != nil {
		return domain.StatisticsResponse{}, err
	}
	if stats.ActiveUsers, err = s.adminRepository.CountActiveUsers(ctx); err != nil {
		return domain.StatisticsResponse{}, err
	}
	stats.InactiveUsers = stats.TotalUsers - stats.ActiveUsers

	if stats.TotalRecipes, err = s.adminRepository.CountRecipes(ctx); err != nil {
		return domain.StatisticsResponse{}, err
	}
	if stats.TotalReviews, err = s.adminRepository.CountReviews(ctx); err != nil {
		return domain.StatisticsResponse{}, err
	}

	since := time.Now().AddDate(0, 0, -30)
	if stats.RecentRecipes, err = s.adminRepository.CountRecipesSince(ctx, since); err != nil {
		return domain.StatisticsResponse{}, err
	}
	if stats.RecentUsers, err = s.adminRepository.CountUsersSince(ctx, since); err != nil {
		return domain.StatisticsResponse{}, err
	}

	return stats, nil
}

// notifyModeration mails the affected author when SMTP is configured.
func (s *adminService) notifyModeration(ctx context.Context, userID uint, summary, reason string) {
	if !mailing.Enabled() {
		return
	}
	account, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return
	}
	body := fmt.Sprintf("<p>%s</p>", summary)
	if reason != "" {
		body += fmt.Sprintf("<p>Reason: %s</p>", reason)
	}
	go func(email string) {
		if err := mailing.SendMail(email, "Content removed", body); err != nil {
			log.Printf("failed to send moderation mail to %s: %v", email, err)
		}
	}(account.Email)
}
