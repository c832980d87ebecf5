package domain

import "errors"

var (
	MessageSuccessCreateCollection     = "collection created successfully"
	MessageSuccessGetCollections       = "collections retrieved successfully"
	MessageSuccessGetCollection        = "collection retrieved successfully"
	MessageSuccessUpdateCollection     = "collection updated successfully"
	MessageSuccessDeleteCollection     = "collection deleted successfully"
	MessageSuccessAddCollectionRecipe  = "recipe added to collection"
	MessageSuccessRemoveCollectionItem = "recipe removed from collection"

	MessageFailedCreateCollection     = "failed to create collection"
	MessageFailedGetCollections       = "failed to fetch collections"
	MessageFailedGetCollection        = "failed to fetch collection"
	MessageFailedUpdateCollection     = "failed to update collection"
	MessageFailedDeleteCollection     = "failed to delete collection"
	MessageFailedAddCollectionRecipe  = "failed to add recipe to collection"
	MessageFailedRemoveCollectionItem = "failed to remove recipe from collection"

	ErrCollectionNotFound    = errors.New("collection not found")
	ErrNotCollectionOwner    = errors.New("you are not authorized to modify this collection")
	ErrRecipeAlreadyInList   = errors.New("recipe already in collection")
	ErrRecipeNotInCollection = errors.New("recipe not found in collection")
)

type (
	CreateCollectionRequest struct {
		Name        string `json:"name" validate:"required,max=100"`
		Description string `json:"description"`
	}

	UpdateCollectionRequest struct {
		Name        string `json:"name" validate:"omitempty,max=100"`
		Description string `json:"description"`
	}
)
