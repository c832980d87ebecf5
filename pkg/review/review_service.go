package review

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/pkg/recipe"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	ReviewService interface {
		CreateReview(ctx context.Context, recipeID uint, req domain.CreateReviewRequest, userID uint) (*entities.Review, error)
		GetRecipeReviews(ctx context.Context, recipeID uint, page, limit int) ([]*entities.Review, int64, error)
		GetUserReviews(ctx context.Context, userID uint, page, limit int) ([]*entities.Review, int64, error)
		UpdateReview(ctx context.Context, reviewID uint, req domain.UpdateReviewRequest, userID uint) (*entities.Review, error)
		DeleteReview(ctx context.Context, reviewID uint, userID uint) error
	}

	reviewService struct {
		reviewRepository ReviewRepository
		recipeRepository recipe.RecipeRepository
	}
)

func NewReviewService(reviewRepository ReviewRepository, recipeRepository recipe.RecipeRepository) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		recipeRepository: recipeRepository,
	}
}

// CreateReview enforces one review per (user, recipe). The check here gives
// the specific error message; the unique index backs it at the storage level.
func (s *reviewService) CreateReview(ctx context.Context, recipeID uint, req domain.CreateReviewRequest, userID uint) (*entities.Review, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	if _, err := s.reviewRepository.GetReviewForUserRecipe(ctx, userID, recipeID); err == nil {
		return nil, domain.ErrAlreadyReviewed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newReview := &entities.Review{
		UserID:   userID,
		RecipeID: recipeID,
		Comment:  req.Comment,
		Tips:     req.Tips,
	}
	if err := s.reviewRepository.CreateReview(ctx, newReview); err != nil {
		return nil, err
	}

	return s.reviewRepository.GetReviewByID(ctx, newReview.ID)
}

func (s *reviewService) GetRecipeReviews(ctx context.Context, recipeID uint, page, limit int) ([]*entities.Review, int64, error) {
	return s.reviewRepository.GetReviewsByRecipe(ctx, recipeID, page, limit)
}

func (s *reviewService) GetUserReviews(ctx context.Context, userID uint, page, limit int) ([]*entities.Review, int64, error) {
	return s.reviewRepository.GetReviewsByUser(ctx, userID, page, limit)
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID uint, req domain.UpdateReviewRequest, userID uint) (*entities.Review, error) {
	existing, err := s.reviewRepository.GetReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	if existing.UserID != userID {
		return nil, domain.ErrNotReviewOwner
	}

	if req.Comment != "" {
		existing.Comment = req.Comment
	}
	if req.Tips != "" {
		existing.Tips = req.Tips
	}

	if err := s.reviewRepository.UpdateReview(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID uint, userID uint) error {
	existing, err := s.reviewRepository.GetReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReviewNotFound
		}
		return err
	}
	if existing.UserID != userID {
		return domain.ErrNotReviewOwner
	}
	return s.reviewRepository.DeleteReview(ctx, reviewID)
}
