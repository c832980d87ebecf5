package handlers

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/internal/api/presenters"
	"RecipeShare-Backend/pkg/admin"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	adminService admin.AdminService
}

func NewAdminHandler(adminService admin.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) GetUsers(c *fiber.Ctx) error {
	page, limit := parsePagination(c, 20)
	query := domain.UserQuery{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	users, total, err := h.adminService.GetUsers(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedGetUsers, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{
		"users":      users,
		"pagination": domain.NewPagination(total, page, limit),
	}, fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *AdminHandler) ToggleUserStatus(c *fiber.Ctx) error {
	targetID, err := parseIDParam(c, "userId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleStatus, err)
	}

	res, err := h.adminService.ToggleUserStatus(c.Context(), targetID, authUserID(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedToggleStatus, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleStatus)
}

func (h *AdminHandler) MakeAdmin(c *fiber.Ctx) error {
	targetID, err := parseIDParam(c, "userId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMakeAdmin, err)
	}

	res, err := h.adminService.MakeAdmin(c.Context(), targetID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedMakeAdmin, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessMakeAdmin)
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	targetID, err := parseIDParam(c, "userId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteUser, err)
	}

	if err := h.adminService.DeleteUser(c.Context(), targetID, authUserID(c)); err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedDeleteUser, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteUser)
}

func (h *AdminHandler) DeleteRecipe(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c, "recipeId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecipe, err)
	}

	var req domain.ModerationRequest
	_ = c.BodyParser(&req)

	if err := h.adminService.DeleteRecipe(c.Context(), recipeID, req); err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedDeleteRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *AdminHandler) DeleteReview(c *fiber.Ctx) error {
	reviewID, err := parseIDParam(c, "reviewId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteReview, err)
	}

	var req domain.ModerationRequest
	_ = c.BodyParser(&req)

	if err := h.adminService.DeleteReview(c.Context(), reviewID, req); err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedDeleteReview, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteReview)
}

func (h *AdminHandler) GetStatistics(c *fiber.Ctx) error {
	res, err := h.adminService.GetStatistics(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedGetStatistics, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStatistics)
}
