package collection

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/pkg/recipe"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	CollectionService interface {
		CreateCollection(ctx context.Context, req domain.CreateCollectionRequest, userID uint) (*entities.Collection, error)
		GetUserCollections(ctx context.Context, userID uint) ([]*entities.Collection, error)
		GetCollection(ctx context.Context, collectionID uint, page, limit int) (*entities.Collection, []*entities.Recipe, int64, error)
		UpdateCollection(ctx context.Context, collectionID uint, req domain.UpdateCollectionRequest, userID uint) (*entities.Collection, error)
		DeleteCollection(ctx context.Context, collectionID uint, userID uint) error
		AddRecipe(ctx context.Context, collectionID, recipeID, userID uint) error
		RemoveRecipe(ctx context.Context, collectionID, recipeID, userID uint) error
	}

	collectionService struct {
		collectionRepository CollectionRepository
		recipeRepository     recipe.RecipeRepository
	}
)

func NewCollectionService(collectionRepository CollectionRepository, recipeRepository recipe.RecipeRepository) CollectionService {
	return &collectionService{
		collectionRepository: collectionRepository,
		recipeRepository:     recipeRepository,
	}
}

func (s *collectionService) CreateCollection(ctx context.Context, req domain.CreateCollectionRequest, userID uint) (*entities.Collection, error) {
	newCollection := &entities.Collection{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.collectionRepository.CreateCollection(ctx, newCollection); err != nil {
		return nil, err
	}
	return newCollection, nil
}

func (s *collectionService) GetUserCollections(ctx context.Context, userID uint) ([]*entities.Collection, error) {
	return s.collectionRepository.GetCollectionsByUser(ctx, userID)
}

func (s *collectionService) GetCollection(ctx context.Context, collectionID uint, page, limit int) (*entities.Collection, []*entities.Recipe, int64, error) {
	found, err := s.collectionRepository.GetCollectionByID(ctx, collectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, 0, domain.ErrCollectionNotFound
		}
		return nil, nil, 0, err
	}

	recipes, count, err := s.collectionRepository.GetCollectionRecipes(ctx, collectionID, page, limit)
	if err != nil {
		return nil, nil, 0, err
	}
	return found, recipes, count, nil
}

func (s *collectionService) UpdateCollection(ctx context.Context, collectionID uint, req domain.UpdateCollectionRequest, userID uint) (*entities.Collection, error) {
	existing, err := s.ownedCollection(ctx, collectionID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.Description != "" {
		existing.Description = req.Description
	}

	if err := s.collectionRepository.UpdateCollection(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *collectionService) DeleteCollection(ctx context.Context, collectionID uint, userID uint) error {
	if _, err := s.ownedCollection(ctx, collectionID, userID); err != nil {
		return err
	}
	return s.collectionRepository.DeleteCollectionCascade(ctx, collectionID)
}

func (s *collectionService) AddRecipe(ctx context.Context, collectionID, recipeID, userID uint) error {
	if _, err := s.ownedCollection(ctx, collectionID, userID); err != nil {
		return err
	}

	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if _, err := s.collectionRepository.GetEntry(ctx, collectionID, recipeID); err == nil {
		return domain.ErrRecipeAlreadyInList
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.collectionRepository.CreateEntry(ctx, &entities.CollectionRecipe{
		CollectionID: collectionID,
		RecipeID:     recipeID,
	})
}

func (s *collectionService) RemoveRecipe(ctx context.Context, collectionID, recipeID, userID uint) error {
	if _, err := s.ownedCollection(ctx, collectionID, userID); err != nil {
		return err
	}

	if _, err := s.collectionRepository.GetEntry(ctx, collectionID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotInCollection
		}
		return err
	}

	return s.collectionRepository.DeleteEntry(ctx, collectionID, recipeID)
}

func (s *collectionService) ownedCollection(ctx context.Context, collectionID, userID uint) (*entities.Collection, error) {
	existing, err := s.collectionRepository.GetCollectionByID(ctx, collectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, err
	}
	if existing.UserID != userID {
		return nil, domain.ErrNotCollectionOwner
	}
	return existing, nil
}
