package favorite

import (
	"RecipeShare-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	FavoriteRepository interface {
		CreateFavorite(ctx context.Context, favorite *entities.Favorite) error
		GetFavorite(ctx context.Context, userID, recipeID uint) (*entities.Favorite, error)
		DeleteFavorite(ctx context.Context, userID, recipeID uint) error
		GetUserFavorites(ctx context.Context, userID uint, page, limit int) ([]*entities.Recipe, int64, error)
	}

	favoriteRepository struct {
		db *gorm.DB
	}
)

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) CreateFavorite(ctx context.Context, favorite *entities.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *favoriteRepository) GetFavorite(ctx context.Context, userID, recipeID uint) (*entities.Favorite, error) {
	var favorite entities.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) DeleteFavorite(ctx context.Context, userID, recipeID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.Favorite{}).Error
}

// GetUserFavorites returns the favorited recipes, most recently favorited first.
func (r *favoriteRepository) GetUserFavorites(ctx context.Context, userID uint, page, limit int) ([]*entities.Recipe, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var recipes []*entities.Recipe
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
		Where("favorites.user_id = ?", userID).
		Offset(offset).
		Limit(limit).
		Order("favorites.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}
