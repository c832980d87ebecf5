package handlers

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/internal/api/presenters"
	"RecipeShare-Backend/internal/utils"
	"RecipeShare-Backend/pkg/rating"

	"github.com/gofiber/fiber/v2"
)

type RatingHandler struct {
	ratingService rating.RatingService
}

func NewRatingHandler(ratingService rating.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

func (h *RatingHandler) RateRecipe(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c, "recipeId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRateRecipe, err)
	}

	var req domain.RateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRateRecipe, domain.ErrRatingOutOfRange)
	}

	res, err := h.ratingService.RateRecipe(c.Context(), recipeID, authUserID(c), req.Rating)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedRateRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRateRecipe)
}

func (h *RatingHandler) GetMyRating(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c, "recipeId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRating, err)
	}

	res, err := h.ratingService.GetUserRating(c.Context(), recipeID, authUserID(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedGetRating, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRating)
}

func (h *RatingHandler) DeleteRating(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c, "recipeId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRating, err)
	}

	if err := h.ratingService.DeleteRating(c.Context(), recipeID, authUserID(c)); err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedDeleteRating, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRating)
}
