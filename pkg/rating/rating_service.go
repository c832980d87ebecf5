package rating

import (
	"RecipeShare-Backend/domain"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	RatingService interface {
		RateRecipe(ctx context.Context, recipeID, userID uint, value int) (domain.RateRecipeResponse, error)
		GetUserRating(ctx context.Context, recipeID, userID uint) (domain.RatingResponse, error)
		DeleteRating(ctx context.Context, recipeID, userID uint) error
	}

	ratingService struct {
		ratingRepository RatingRepository
	}
)

func NewRatingService(ratingRepository RatingRepository) RatingService {
	return &ratingService{ratingRepository: ratingRepository}
}

func (s *ratingService) RateRecipe(ctx context.Context, recipeID, userID uint, value int) (domain.RateRecipeResponse, error) {
	if value < 1 || value > 5 {
		return domain.RateRecipeResponse{}, domain.ErrRatingOutOfRange
	}

	userRating, avg, total, err := s.ratingRepository.RateRecipe(ctx, recipeID, userID, value)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RateRecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RateRecipeResponse{}, err
	}

	return domain.RateRecipeResponse{
		Rating: domain.RatingResponse{
			ID:       userRating.ID,
			UserID:   userRating.UserID,
			RecipeID: userRating.RecipeID,
			Rating:   userRating.Rating,
		},
		AverageRating: avg,
		TotalRatings:  total,
	}, nil
}

func (s *ratingService) GetUserRating(ctx context.Context, recipeID, userID uint) (domain.RatingResponse, error) {
	userRating, err := s.ratingRepository.GetRating(ctx, recipeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RatingResponse{}, domain.ErrRatingNotFound
		}
		return domain.RatingResponse{}, err
	}
	return domain.RatingResponse{
		ID:       userRating.ID,
		UserID:   userRating.UserID,
		RecipeID: userRating.RecipeID,
		Rating:   userRating.Rating,
	}, nil
}

func (s *ratingService) DeleteRating(ctx context.Context, recipeID, userID uint) error {
	err := s.ratingRepository.DeleteRating(ctx, recipeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRatingNotFound
		}
		return err
	}
	return nil
}
