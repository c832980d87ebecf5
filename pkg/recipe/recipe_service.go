package recipe

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/internal/utils/storage"
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID uint) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, q domain.RecipeQuery) ([]*entities.Recipe, int64, error)
		GetRecipeByID(ctx context.Context, recipeID uint) (*entities.Recipe, error)
		GetRecipesByUser(ctx context.Context, userID uint, page, limit int) ([]*entities.Recipe, int64, error)
		UpdateRecipe(ctx context.Context, recipeID uint, req domain.UpdateRecipeRequest, userID uint) (*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, recipeID uint, userID uint) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID uint) (*entities.Recipe, error) {
	ingredients, err := parseStringList(req.Ingredients)
	if err != nil {
		return nil, domain.ErrInvalidIngredients
	}
	instructions, err := parseStringList(req.Instructions)
	if err != nil {
		return nil, domain.ErrInvalidInstruction
	}

	dietaryPreferences := []string{}
	if req.DietaryPreferences != "" {
		dietaryPreferences, err = parseStringList(req.DietaryPreferences)
		if err != nil {
			return nil, domain.ErrInvalidIngredients
		}
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}

	imageURL := ""
	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(uuid.New().String(), req.Image, "recipes", storage.AllowImage...)
		if err != nil {
			return nil, err
		}
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	newRecipe := &entities.Recipe{
		UserID:             userID,
		Title:              req.Title,
		Description:        req.Description,
		Ingredients:        ingredients,
		Instructions:       instructions,
		PrepTime:           req.PrepTime,
		CookTime:           req.CookTime,
		Servings:           req.Servings,
		Difficulty:         difficulty,
		Category:           req.Category,
		DietaryPreferences: dietaryPreferences,
		ImageURL:           imageURL,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, newRecipe); err != nil {
		return nil, err
	}
	return newRecipe, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, q domain.RecipeQuery) ([]*entities.Recipe, int64, error) {
	return s.recipeRepository.GetRecipes(ctx, q)
}

func (s *recipeService) GetRecipeByID(ctx context.Context, recipeID uint) (*entities.Recipe, error) {
	found, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return found, nil
}

func (s *recipeService) GetRecipesByUser(ctx context.Context, userID uint, page, limit int) ([]*entities.Recipe, int64, error) {
	return s.recipeRepository.GetRecipesByUser(ctx, userID, page, limit)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID uint, req domain.UpdateRecipeRequest, userID uint) (*entities.Recipe, error) {
	existing, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if existing.UserID != userID {
		return nil, domain.ErrNotRecipeOwner
	}

	if req.Title != "" {
		existing.Title = req.Title
	}
	if req.Description != "" {
		existing.Description = req.Description
	}
	if req.Ingredients != "" {
		ingredients, err := parseStringList(req.Ingredients)
		if err != nil {
			return nil, domain.ErrInvalidIngredients
		}
		existing.Ingredients = ingredients
	}
	if req.Instructions != "" {
		instructions, err := parseStringList(req.Instructions)
		if err != nil {
			return nil, domain.ErrInvalidInstruction
		}
		existing.Instructions = instructions
	}
	if req.PrepTime > 0 {
		existing.PrepTime = req.PrepTime
	}
	if req.CookTime > 0 {
		existing.CookTime = req.CookTime
	}
	if req.Servings > 0 {
		existing.Servings = req.Servings
	}
	if req.Difficulty != "" {
		existing.Difficulty = req.Difficulty
	}
	if req.Category != "" {
		existing.Category = req.Category
	}
	if req.DietaryPreferences != "" {
		prefs, err := parseStringList(req.DietaryPreferences)
		if err != nil {
			return nil, domain.ErrInvalidIngredients
		}
		existing.DietaryPreferences = prefs
	}

	if req.Image != nil {
		if existing.ImageURL != "" {
			_ = s.s3.DeleteFile(s.s3.GetObjectKeyFromLink(existing.ImageURL))
		}
		objectKey, err := s.s3.UploadFile(uuid.New().String(), req.Image, "recipes", storage.AllowImage...)
		if err != nil {
			return nil, err
		}
		existing.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID uint, userID uint) error {
	existing, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	if existing.UserID != userID {
		return domain.ErrNotRecipeOwner
	}

	if existing.ImageURL != "" {
		_ = s.s3.DeleteFile(s.s3.GetObjectKeyFromLink(existing.ImageURL))
	}

	return s.recipeRepository.DeleteRecipeCascade(ctx, recipeID)
}

func parseStringList(raw string) ([]string, error) {
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, err
	}
	return list, nil
}
