package follow

import (
	"RecipeShare-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	FollowRepository interface {
		CreateFollow(ctx context.Context, follow *entities.Follow) error
		GetFollow(ctx context.Context, followerID, followingID uint) (*entities.Follow, error)
		DeleteFollow(ctx context.Context, followerID, followingID uint) error
		GetFollowers(ctx context.Context, userID uint, page, limit int) ([]*entities.User, int64, error)
		GetFollowing(ctx context.Context, userID uint, page, limit int) ([]*entities.User, int64, error)
		GetFollowingIDs(ctx context.Context, userID uint) ([]uint, error)
		GetRecentRecipesByAuthors(ctx context.Context, authorIDs []uint, limit int) ([]*entities.Recipe, error)
		GetRecentReviewsByAuthors(ctx context.Context, authorIDs []uint, limit int) ([]*entities.Review, error)
	}

	followRepository struct {
		db *gorm.DB
	}
)

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) CreateFollow(ctx context.Context, follow *entities.Follow) error {
	return r.db.WithContext(ctx).Create(follow).Error
}

func (r *followRepository) GetFollow(ctx context.Context, followerID, followingID uint) (*entities.Follow, error) {
	var follow entities.Follow
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&follow).Error; err != nil {
		return nil, err
	}
	return &follow, nil
}

func (r *followRepository) DeleteFollow(ctx context.Context, followerID, followingID uint) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&entities.Follow{}).Error
}

// GetFollowers lists the users following userID, most recent follow first.
func (r *followRepository) GetFollowers(ctx context.Context, userID uint, page, limit int) ([]*entities.User, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Follow{}).
		Where("following_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var users []*entities.User
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.following_id = ?", userID).
		Offset(offset).
		Limit(limit).
		Order("follows.created_at desc").
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

// GetFollowing lists the users that userID follows, most recent follow first.
func (r *followRepository) GetFollowing(ctx context.Context, userID uint, page, limit int) ([]*entities.User, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var users []*entities.User
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Joins("JOIN follows ON follows.following_id = users.id").
		Where("follows.follower_id = ?", userID).
		Offset(offset).
		Limit(limit).
		Order("follows.created_at desc").
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

func (r *followRepository) GetFollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&entities.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *followRepository) GetRecentRecipesByAuthors(ctx context.Context, authorIDs []uint, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id IN ?", authorIDs).
		Limit(limit).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *followRepository) GetRecentReviewsByAuthors(ctx context.Context, authorIDs []uint, limit int) ([]*entities.Review, error) {
	var reviews []*entities.Review
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Recipe").
		Where("user_id IN ?", authorIDs).
		Limit(limit).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
