package handlers

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/internal/api/presenters"
	"RecipeShare-Backend/pkg/favorite"

	"github.com/gofiber/fiber/v2"
)

type FavoriteHandler struct {
	favoriteService favorite.FavoriteService
}

func NewFavoriteHandler(favoriteService favorite.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

func (h *FavoriteHandler) AddFavorite(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c, "recipeId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFavorite, err)
	}

	res, err := h.favoriteService.AddFavorite(c.Context(), recipeID, authUserID(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedAddFavorite, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFavorite)
}

func (h *FavoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c, "recipeId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveFavorite, err)
	}

	if err := h.favoriteService.RemoveFavorite(c.Context(), recipeID, authUserID(c)); err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedRemoveFavorite, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveFavorite)
}

func (h *FavoriteHandler) GetMyFavorites(c *fiber.Ctx) error {
	page, limit := parsePagination(c, 10)

	recipes, total, err := h.favoriteService.GetUserFavorites(c.Context(), authUserID(c), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedGetFavorites, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{
		"recipes":    recipes,
		"pagination": domain.NewPagination(total, page, limit),
	}, fiber.StatusOK, domain.MessageSuccessGetFavorites)
}

func (h *FavoriteHandler) CheckFavorite(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c, "recipeId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckFavorite, err)
	}

	favorited, err := h.favoriteService.IsFavorited(c.Context(), recipeID, authUserID(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedCheckFavorite, err)
	}
	return presenters.SuccessResponse(c, domain.CheckFavoriteResponse{IsFavorited: favorited}, fiber.StatusOK, domain.MessageSuccessCheckFavorite)
}
