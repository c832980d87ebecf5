package rating

import (
	"RecipeShare-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RatingRepository interface {
		// RateRecipe upserts the user's rating and refreshes the recipe's
		// denormalized aggregate in one transaction.
		RateRecipe(ctx context.Context, recipeID, userID uint, value int) (*entities.Rating, float64, int64, error)
		GetRating(ctx context.Context, recipeID, userID uint) (*entities.Rating, error)
		// DeleteRating removes the user's rating and refreshes the aggregate in
		// one transaction.
		DeleteRating(ctx context.Context, recipeID, userID uint) error
	}

	ratingRepository struct {
		db *gorm.DB
	}
)

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// lockRecipe loads the recipe row under a row lock so that concurrent
// upsert+recompute units on the same recipe serialize. SQLite (used in tests)
// has no row locks; its writes are serialized by the database itself.
func lockRecipe(tx *gorm.DB, recipeID uint, recipe *entities.Recipe) error {
	q := tx
	if tx.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return q.First(recipe, recipeID).Error
}

func recalculate(tx *gorm.DB, recipe *entities.Recipe) (float64, int64, error) {
	var avg float64
	var total int64
	row := tx.Model(&entities.Rating{}).
		Where("recipe_id = ?", recipe.ID).
		Select("COALESCE(AVG(rating), 0), COUNT(*)").
		Row()
	if err := row.Scan(&avg, &total); err != nil {
		return 0, 0, err
	}

	err := tx.Model(recipe).Updates(map[string]interface{}{
		"average_rating": avg,
		"total_ratings":  total,
	}).Error
	return avg, total, err
}

func (r *ratingRepository) RateRecipe(ctx context.Context, recipeID, userID uint, value int) (*entities.Rating, float64, int64, error) {
	var userRating entities.Rating
	var avg float64
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target entities.Recipe
		if err := lockRecipe(tx, recipeID, &target); err != nil {
			return err
		}

		err := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).First(&userRating).Error
		switch {
		case err == nil:
			userRating.Rating = value
			if err := tx.Save(&userRating).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			userRating = entities.Rating{UserID: userID, RecipeID: recipeID, Rating: value}
			if err := tx.Create(&userRating).Error; err != nil {
				return err
			}
		default:
			return err
		}

		avg, total, err = recalculate(tx, &target)
		return err
	})
	if err != nil {
		return nil, 0, 0, err
	}
	return &userRating, avg, total, nil
}

func (r *ratingRepository) GetRating(ctx context.Context, recipeID, userID uint) (*entities.Rating, error) {
	var userRating entities.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&userRating).Error; err != nil {
		return nil, err
	}
	return &userRating, nil
}

func (r *ratingRepository) DeleteRating(ctx context.Context, recipeID, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target entities.Recipe
		if err := lockRecipe(tx, recipeID, &target); err != nil {
			return err
		}

		var userRating entities.Rating
		if err := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
			First(&userRating).Error; err != nil {
			return err
		}
		if err := tx.Delete(&userRating).Error; err != nil {
			return err
		}

		_, _, err := recalculate(tx, &target)
		return err
	})
}
