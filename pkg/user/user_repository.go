package user

import (
	"RecipeShare-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id uint) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		GetRecipesByUser(ctx context.Context, userID uint) ([]*entities.Recipe, error)
		CountRecipesByUser(ctx context.Context, userID uint) (int64, error)
		CountFollowers(ctx context.Context, userID uint) (int64, error)
		CountFollowing(ctx context.Context, userID uint) (int64, error)
		DeleteUserCascade(ctx context.Context, userID uint) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) GetRecipesByUser(ctx context.Context, userID uint) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *userRepository) CountRecipesByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *userRepository) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Follow{}).Where("following_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *userRepository) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}

// DeleteUserCascade removes the user and every row that references them or
// their recipes, then refreshes the rating aggregates of foreign recipes the
// user had rated. All of it commits or rolls back as one unit.
func (r *userRepository) DeleteUserCascade(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ratedRecipeIDs []uint
		if err := tx.Model(&entities.Rating{}).
			Where("user_id = ?", userID).
			Distinct().
			Pluck("recipe_id", &ratedRecipeIDs).Error; err != nil {
			return err
		}

		var ownRecipeIDs []uint
		if err := tx.Model(&entities.Recipe{}).
			Where("user_id = ?", userID).
			Pluck("id", &ownRecipeIDs).Error; err != nil {
			return err
		}

		// Rows referencing the user's recipes.
		if len(ownRecipeIDs) > 0 {
			for _, model := range []interface{}{
				&entities.Rating{}, &entities.Review{}, &entities.Favorite{}, &entities.CollectionRecipe{},
			} {
				if err := tx.Where("recipe_id IN ?", ownRecipeIDs).Delete(model).Error; err != nil {
					return err
				}
			}
		}

		// Rows authored by the user.
		for _, model := range []interface{}{
			&entities.Rating{}, &entities.Review{}, &entities.Favorite{},
		} {
			if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("follower_id = ? OR following_id = ?", userID, userID).
			Delete(&entities.Follow{}).Error; err != nil {
			return err
		}

		var collectionIDs []uint
		if err := tx.Model(&entities.Collection{}).
			Where("user_id = ?", userID).
			Pluck("id", &collectionIDs).Error; err != nil {
			return err
		}
		if len(collectionIDs) > 0 {
			if err := tx.Where("collection_id IN ?", collectionIDs).
				Delete(&entities.CollectionRecipe{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&entities.Collection{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&entities.Recipe{}).Error; err != nil {
			return err
		}

		// Keep the denormalized aggregate truthful on recipes that survive.
		survivors := diff(ratedRecipeIDs, ownRecipeIDs)
		if len(survivors) > 0 {
			if err := tx.Exec(
				`UPDATE recipes SET
					total_ratings = (SELECT COUNT(*) FROM ratings WHERE ratings.recipe_id = recipes.id),
					average_rating = (SELECT COALESCE(AVG(rating), 0) FROM ratings WHERE ratings.recipe_id = recipes.id)
				WHERE recipes.id IN ?`, survivors).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&entities.User{}, userID).Error
	})
}

func diff(ids, exclude []uint) []uint {
	excluded := make(map[uint]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}
	var out []uint
	for _, id := range ids {
		if _, ok := excluded[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
