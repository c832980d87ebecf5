package handlers

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/internal/api/presenters"
	"RecipeShare-Backend/internal/utils"
	"RecipeShare-Backend/pkg/review"

	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	reviewService review.ReviewService
}

func NewReviewHandler(reviewService review.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c, "recipeId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReview, err)
	}

	var req domain.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReview, err)
	}

	res, err := h.reviewService.CreateReview(c.Context(), recipeID, req, authUserID(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedCreateReview, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateReview)
}

func (h *ReviewHandler) GetRecipeReviews(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c, "recipeId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReviews, err)
	}
	page, limit := parsePagination(c, 10)

	reviews, total, err := h.reviewService.GetRecipeReviews(c.Context(), recipeID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedGetReviews, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{
		"reviews":    reviews,
		"pagination": domain.NewPagination(total, page, limit),
	}, fiber.StatusOK, domain.MessageSuccessGetReviews)
}

func (h *ReviewHandler) GetUserReviews(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReviews, err)
	}
	page, limit := parsePagination(c, 10)

	reviews, total, err := h.reviewService.GetUserReviews(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedGetReviews, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{
		"reviews":    reviews,
		"pagination": domain.NewPagination(total, page, limit),
	}, fiber.StatusOK, domain.MessageSuccessGetReviews)
}

func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	reviewID, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateReview, err)
	}

	var req domain.UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.reviewService.UpdateReview(c.Context(), reviewID, req, authUserID(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedUpdateReview, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateReview)
}

func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	reviewID, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteReview, err)
	}

	if err := h.reviewService.DeleteReview(c.Context(), reviewID, authUserID(c)); err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedDeleteReview, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteReview)
}
