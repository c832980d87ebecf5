package favorite

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/pkg/recipe"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	FavoriteService interface {
		AddFavorite(ctx context.Context, recipeID, userID uint) (*entities.Favorite, error)
		RemoveFavorite(ctx context.Context, recipeID, userID uint) error
		GetUserFavorites(ctx context.Context, userID uint, page, limit int) ([]*entities.Recipe, int64, error)
		IsFavorited(ctx context.Context, recipeID, userID uint) (bool, error)
	}

	favoriteService struct {
		favoriteRepository FavoriteRepository
		recipeRepository   recipe.RecipeRepository
	}
)

func NewFavoriteService(favoriteRepository FavoriteRepository, recipeRepository recipe.RecipeRepository) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		recipeRepository:   recipeRepository,
	}
}

func (s *favoriteService) AddFavorite(ctx context.Context, recipeID, userID uint) (*entities.Favorite, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	if _, err := s.favoriteRepository.GetFavorite(ctx, userID, recipeID); err == nil {
		return nil, domain.ErrAlreadyFavorited
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newFavorite := &entities.Favorite{UserID: userID, RecipeID: recipeID}
	if err := s.favoriteRepository.CreateFavorite(ctx, newFavorite); err != nil {
		return nil, err
	}
	return newFavorite, nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, recipeID, userID uint) error {
	if _, err := s.favoriteRepository.GetFavorite(ctx, userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFavoriteNotFound
		}
		return err
	}
	return s.favoriteRepository.DeleteFavorite(ctx, userID, recipeID)
}

func (s *favoriteService) GetUserFavorites(ctx context.Context, userID uint, page, limit int) ([]*entities.Recipe, int64, error) {
	return s.favoriteRepository.GetUserFavorites(ctx, userID, page, limit)
}

func (s *favoriteService) IsFavorited(ctx context.Context, recipeID, userID uint) (bool, error) {
	_, err := s.favoriteRepository.GetFavorite(ctx, userID, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
