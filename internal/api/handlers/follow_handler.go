package handlers

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/internal/api/presenters"
	"RecipeShare-Backend/pkg/follow"

	"github.com/gofiber/fiber/v2"
)

type FollowHandler struct {
	followService follow.FollowService
}

func NewFollowHandler(followService follow.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

func (h *FollowHandler) Follow(c *fiber.Ctx) error {
	targetID, err := parseIDParam(c, "userId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFollow, err)
	}

	if err := h.followService.Follow(c.Context(), authUserID(c), targetID); err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedFollow, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessFollow)
}

func (h *FollowHandler) Unfollow(c *fiber.Ctx) error {
	targetID, err := parseIDParam(c, "userId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUnfollow, err)
	}

	if err := h.followService.Unfollow(c.Context(), authUserID(c), targetID); err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedUnfollow, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnfollow)
}

func (h *FollowHandler) CheckFollow(c *fiber.Ctx) error {
	targetID, err := parseIDParam(c, "userId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckFollow, err)
	}

	following, err := h.followService.IsFollowing(c.Context(), authUserID(c), targetID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedCheckFollow, err)
	}
	return presenters.SuccessResponse(c, domain.CheckFollowResponse{IsFollowing: following}, fiber.StatusOK, domain.MessageSuccessCheckFollow)
}

func (h *FollowHandler) GetFollowers(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFollowers, err)
	}
	page, limit := parsePagination(c, 20)

	res, err := h.followService.GetFollowers(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedGetFollowers, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFollowers)
}

func (h *FollowHandler) GetFollowing(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFollowing, err)
	}
	page, limit := parsePagination(c, 20)

	res, err := h.followService.GetFollowing(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedGetFollowing, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFollowing)
}

func (h *FollowHandler) GetActivityFeed(c *fiber.Ctx) error {
	page, limit := parsePagination(c, 10)

	res, err := h.followService.GetActivityFeed(c.Context(), authUserID(c), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedGetFeed, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFeed)
}
