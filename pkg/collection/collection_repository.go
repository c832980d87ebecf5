package collection

import (
	"RecipeShare-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	CollectionRepository interface {
		CreateCollection(ctx context.Context, collection *entities.Collection) error
		GetCollectionByID(ctx context.Context, id uint) (*entities.Collection, error)
		GetCollectionsByUser(ctx context.Context, userID uint) ([]*entities.Collection, error)
		UpdateCollection(ctx context.Context, collection *entities.Collection) error
		DeleteCollectionCascade(ctx context.Context, collectionID uint) error
		GetCollectionRecipes(ctx context.Context, collectionID uint, page, limit int) ([]*entities.Recipe, int64, error)
		CountCollectionRecipes(ctx context.Context, collectionID uint) (int64, error)
		GetEntry(ctx context.Context, collectionID, recipeID uint) (*entities.CollectionRecipe, error)
		CreateEntry(ctx context.Context, entry *entities.CollectionRecipe) error
		DeleteEntry(ctx context.Context, collectionID, recipeID uint) error
	}

	collectionRepository struct {
		db *gorm.DB
	}
)

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) CreateCollection(ctx context.Context, collection *entities.Collection) error {
	return r.db.WithContext(ctx).Create(collection).Error
}

func (r *collectionRepository) GetCollectionByID(ctx context.Context, id uint) (*entities.Collection, error) {
	var collection entities.Collection
	if err := r.db.WithContext(ctx).First(&collection, id).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) GetCollectionsByUser(ctx context.Context, userID uint) ([]*entities.Collection, error) {
	var collections []*entities.Collection
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}

func (r *collectionRepository) UpdateCollection(ctx context.Context, collection *entities.Collection) error {
	return r.db.WithContext(ctx).Save(collection).Error
}

func (r *collectionRepository) DeleteCollectionCascade(ctx context.Context, collectionID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", collectionID).
			Delete(&entities.CollectionRecipe{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Collection{}, collectionID).Error
	})
}

func (r *collectionRepository) GetCollectionRecipes(ctx context.Context, collectionID uint, page, limit int) ([]*entities.Recipe, int64, error) {
	count, err := r.CountCollectionRecipes(ctx, collectionID)
	if err != nil {
		return nil, 0, err
	}

	var recipes []*entities.Recipe
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN collection_recipes ON collection_recipes.recipe_id = recipes.id").
		Where("collection_recipes.collection_id = ?", collectionID).
		Offset(offset).
		Limit(limit).
		Order("collection_recipes.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *collectionRepository) CountCollectionRecipes(ctx context.Context, collectionID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.CollectionRecipe{}).
		Where("collection_id = ?", collectionID).
		Count(&count).Error
	return count, err
}

func (r *collectionRepository) GetEntry(ctx context.Context, collectionID, recipeID uint) (*entities.CollectionRecipe, error) {
	var entry entities.CollectionRecipe
	if err := r.db.WithContext(ctx).
		Where("collection_id = ? AND recipe_id = ?", collectionID, recipeID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *collectionRepository) CreateEntry(ctx context.Context, entry *entities.CollectionRecipe) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *collectionRepository) DeleteEntry(ctx context.Context, collectionID, recipeID uint) error {
	return r.db.WithContext(ctx).
		Where("collection_id = ? AND recipe_id = ?", collectionID, recipeID).
		Delete(&entities.CollectionRecipe{}).Error
}
