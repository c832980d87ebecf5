package admin

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

type (
	AdminRepository interface {
		GetUsers(ctx context.Context, query domain.UserQuery) ([]*entities.User, int64, error)
		CountUsers(ctx context.Context) (int64, error)
		CountActiveUsers(ctx context.Context) (int64, error)
		CountRecipes(ctx context.Context) (int64, error)
		CountReviews(ctx context.Context) (int64, error)
		CountRecipesSince(ctx context.Context, since time.Time) (int64, error)
		CountUsersSince(ctx context.Context, since time.Time) (int64, error)
	}

	adminRepository struct {
		db *gorm.DB
	}
)

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetUsers(ctx context.Context, query domain.UserQuery) ([]*entities.User, int64, error) {
	stmt := r.db.WithContext(ctx).Model(&entities.User{})

	if query.Search != "" {
		pattern := "%" + strings.ToLower(query.Search) + "%"
		stmt = stmt.Where("LOWER(username) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}
	switch query.Status {
	case "active":
		stmt = stmt.Where("is_active = ?", true)
	case "inactive":
		stmt = stmt.Where("is_active = ?", false)
	}

	var count int64
	if err := stmt.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var users []*entities.User
	offset := (query.Page - 1) * query.Limit
	if err := stmt.
		Offset(offset).
		Limit(query.Limit).
		Order("created_at desc").
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

func (r *adminRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountActiveUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountReviews(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Review{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountRecipesSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountUsersSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}
