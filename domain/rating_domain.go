package domain

import "errors"

var (
	MessageSuccessRateRecipe   = "recipe rated successfully"
	MessageSuccessGetRating    = "rating retrieved successfully"
	MessageSuccessDeleteRating = "rating deleted successfully"

	MessageFailedRateRecipe   = "failed to rate recipe"
	MessageFailedGetRating    = "failed to fetch rating"
	MessageFailedDeleteRating = "failed to delete rating"

	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrRatingNotFound   = errors.New("rating not found")
)

type (
	RateRecipeRequest struct {
		Rating int `json:"rating" validate:"required,min=1,max=5"`
	}

	RatingResponse struct {
		ID       uint `json:"id"`
		UserID   uint `json:"user_id"`
		RecipeID uint `json:"recipe_id"`
		Rating   int  `json:"rating"`
	}

	RateRecipeResponse struct {
		Rating        RatingResponse `json:"rating"`
		AverageRating float64        `json:"average_rating"`
		TotalRatings  int64          `json:"total_ratings"`
	}
)
