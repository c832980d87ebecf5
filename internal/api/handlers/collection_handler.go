package handlers

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/internal/api/presenters"
	"RecipeShare-Backend/internal/utils"
	"RecipeShare-Backend/pkg/collection"

	"github.com/gofiber/fiber/v2"
)

type CollectionHandler struct {
	collectionService collection.CollectionService
}

func NewCollectionHandler(collectionService collection.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

func (h *CollectionHandler) CreateCollection(c *fiber.Ctx) error {
	var req domain.CreateCollectionRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCollection, err)
	}

	res, err := h.collectionService.CreateCollection(c.Context(), req, authUserID(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedCreateCollection, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCollection)
}

func (h *CollectionHandler) GetMyCollections(c *fiber.Ctx) error {
	res, err := h.collectionService.GetUserCollections(c.Context(), authUserID(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedGetCollections, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCollections)
}

func (h *CollectionHandler) GetUserCollections(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCollections, err)
	}

	res, err := h.collectionService.GetUserCollections(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedGetCollections, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCollections)
}

func (h *CollectionHandler) GetCollection(c *fiber.Ctx) error {
	collectionID, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCollection, err)
	}
	page, limit := parsePagination(c, 10)

	found, recipes, total, err := h.collectionService.GetCollection(c.Context(), collectionID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedGetCollection, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{
		"collection": found,
		"recipes":    recipes,
		"pagination": domain.NewPagination(total, page, limit),
	}, fiber.StatusOK, domain.MessageSuccessGetCollection)
}

func (h *CollectionHandler) UpdateCollection(c *fiber.Ctx) error {
	collectionID, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCollection, err)
	}

	var req domain.UpdateCollectionRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCollection, err)
	}

	res, err := h.collectionService.UpdateCollection(c.Context(), collectionID, req, authUserID(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedUpdateCollection, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCollection)
}

func (h *CollectionHandler) DeleteCollection(c *fiber.Ctx) error {
	collectionID, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCollection, err)
	}

	if err := h.collectionService.DeleteCollection(c.Context(), collectionID, authUserID(c)); err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedDeleteCollection, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCollection)
}

func (h *CollectionHandler) AddRecipe(c *fiber.Ctx) error {
	collectionID, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCollectionRecipe, err)
	}
	recipeID, err := parseIDParam(c, "recipeId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCollectionRecipe, err)
	}

	if err := h.collectionService.AddRecipe(c.Context(), collectionID, recipeID, authUserID(c)); err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedAddCollectionRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddCollectionRecipe)
}

func (h *CollectionHandler) RemoveRecipe(c *fiber.Ctx) error {
	collectionID, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveCollectionItem, err)
	}
	recipeID, err := parseIDParam(c, "recipeId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveCollectionItem, err)
	}

	if err := h.collectionService.RemoveRecipe(c.Context(), collectionID, recipeID, authUserID(c)); err != nil {
		return presenters.ErrorResponse(c, presenters.HTTPStatus(err), domain.MessageFailedRemoveCollectionItem, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveCollectionItem)
}
