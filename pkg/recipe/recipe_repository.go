package recipe

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, q domain.RecipeQuery) ([]*entities.Recipe, int64, error)
		GetRecipesByUser(ctx context.Context, userID uint, page, limit int) ([]*entities.Recipe, int64, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipeCascade(ctx context.Context, recipeID uint) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

var sortColumns = map[string]string{
	"created_at":     "created_at",
	"average_rating": "average_rating",
	"prep_time":      "prep_time",
	"title":          "title",
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Preload("User").First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, q domain.RecipeQuery) ([]*entities.Recipe, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Recipe{})

	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(ingredients) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if q.Category != "" {
		query = query.Where("category = ?", q.Category)
	}
	if q.Difficulty != "" {
		query = query.Where("difficulty = ?", q.Difficulty)
	}
	if q.DietaryPreference != "" {
		// Dietary preferences are stored as a JSON array; match the quoted value.
		query = query.Where("dietary_preferences LIKE ?", fmt.Sprintf(`%%"%s"%%`, q.DietaryPreference))
	}
	if q.MaxPrepTime > 0 {
		query = query.Where("prep_time <= ?", q.MaxPrepTime)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	sortBy, ok := sortColumns[q.SortBy]
	if !ok {
		sortBy = "created_at"
	}
	order := "desc"
	if strings.EqualFold(q.Order, "asc") {
		order = "asc"
	}

	var recipes []*entities.Recipe
	offset := (q.Page - 1) * q.Limit
	if err := query.
		Preload("User").
		Offset(offset).
		Limit(q.Limit).
		Order(sortBy + " " + order).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetRecipesByUser(ctx context.Context, userID uint, page, limit int) ([]*entities.Recipe, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var recipes []*entities.Recipe
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

// DeleteRecipeCascade removes the recipe together with its ratings, reviews,
// favorites and collection entries in one transaction.
func (r *recipeRepository) DeleteRecipeCascade(ctx context.Context, recipeID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&entities.Rating{}, &entities.Review{}, &entities.Favorite{}, &entities.CollectionRecipe{},
		} {
			if err := tx.Where("recipe_id = ?", recipeID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&entities.Recipe{}, recipeID).Error
	})
}
