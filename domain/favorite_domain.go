package domain

import "errors"

var (
	MessageSuccessAddFavorite    = "recipe added to favorites"
	MessageSuccessRemoveFavorite = "recipe removed from favorites"
	MessageSuccessGetFavorites   = "favorites retrieved successfully"
	MessageSuccessCheckFavorite  = "favorite status retrieved successfully"

	MessageFailedAddFavorite    = "failed to add favorite"
	MessageFailedRemoveFavorite = "failed to remove favorite"
	MessageFailedGetFavorites   = "failed to fetch favorites"
	MessageFailedCheckFavorite  = "failed to check favorite status"

	ErrAlreadyFavorited = errors.New("recipe already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

type CheckFavoriteResponse struct {
	IsFavorited bool `json:"is_favorited"`
}
