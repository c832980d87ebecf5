package presenters

import (
	"RecipeShare-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	notFoundErrors = []error{
		domain.ErrUserNotFound,
		domain.ErrRecipeNotFound,
		domain.ErrRatingNotFound,
		domain.ErrReviewNotFound,
		domain.ErrFavoriteNotFound,
		domain.ErrCollectionNotFound,
		domain.ErrNotFollowing,
		domain.ErrRecipeNotInCollection,
		domain.ErrEmailNotFound,
		gorm.ErrRecordNotFound,
	}

	conflictErrors = []error{
		domain.ErrAlreadyFollowing,
		domain.ErrAlreadyFavorited,
		domain.ErrAlreadyReviewed,
		domain.ErrRecipeAlreadyInList,
	}

	forbiddenErrors = []error{
		domain.ErrNotRecipeOwner,
		domain.ErrNotReviewOwner,
		domain.ErrNotCollectionOwner,
		domain.ErrCannotTargetAdmin,
		domain.ErrUserNotAllowed,
		domain.ErrAccountInactive,
	}

	badRequestErrors = []error{
		domain.ErrRatingOutOfRange,
		domain.ErrCannotFollowSelf,
		domain.ErrCannotBanSelf,
		domain.ErrCannotDeleteSelf,
		domain.ErrAlreadyAdmin,
		domain.ErrUsernameTaken,
		domain.ErrEmailTaken,
		domain.ErrPasswordIncorrect,
		domain.ErrInvalidIngredients,
		domain.ErrInvalidInstruction,
		domain.ErrInvalidDifficulty,
	}

	unauthorizedErrors = []error{
		domain.ErrTokenNotFound,
		domain.ErrTokenInvalid,
		domain.ErrTokenExpired,
	}
)

// HTTPStatus maps a service error to the response status code. Unrecognized
// errors are infrastructure failures and map to 500.
func HTTPStatus(err error) int {
	switch {
	case matches(err, badRequestErrors):
		return fiber.StatusBadRequest
	case matches(err, unauthorizedErrors):
		return fiber.StatusUnauthorized
	case matches(err, forbiddenErrors):
		return fiber.StatusForbidden
	case matches(err, notFoundErrors):
		return fiber.StatusNotFound
	case matches(err, conflictErrors):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func matches(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
