package domain

import "errors"

var (
	MessageSuccessCreateReview = "review created successfully"
	MessageSuccessGetReviews   = "reviews retrieved successfully"
	MessageSuccessUpdateReview = "review updated successfully"
	MessageSuccessDeleteReview = "review deleted successfully"

	MessageFailedCreateReview = "failed to create review"
	MessageFailedGetReviews   = "failed to fetch reviews"
	MessageFailedUpdateReview = "failed to update review"
	MessageFailedDeleteReview = "failed to delete review"

	ErrReviewNotFound  = errors.New("review not found")
	ErrAlreadyReviewed = errors.New("you have already reviewed this recipe")
	ErrNotReviewOwner  = errors.New("you are not authorized to modify this review")
)

type (
	CreateReviewRequest struct {
		Comment string `json:"comment" validate:"required"`
		Tips    string `json:"tips"`
	}

	UpdateReviewRequest struct {
		Comment string `json:"comment"`
		Tips    string `json:"tips"`
	}
)
