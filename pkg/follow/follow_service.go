package follow

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/pkg/user"
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"
)

// feedSourceCap bounds how many recipes and how many reviews feed one merge.
// It is a hard ceiling: pages past cap*2 entries come back empty even when
// older activity exists.
const feedSourceCap = 10

type (
	FollowService interface {
		Follow(ctx context.Context, followerID, followingID uint) error
		Unfollow(ctx context.Context, followerID, followingID uint) error
		IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
		GetFollowers(ctx context.Context, userID uint, page, limit int) (domain.FollowListResponse, error)
		GetFollowing(ctx context.Context, userID uint, page, limit int) (domain.FollowListResponse, error)
		GetActivityFeed(ctx context.Context, userID uint, page, limit int) (domain.ActivityFeedResponse, error)
	}

	followService struct {
		followRepository FollowRepository
		userRepository   user.UserRepository
	}
)

func NewFollowService(followRepository FollowRepository, userRepository user.UserRepository) FollowService {
	return &followService{
		followRepository: followRepository,
		userRepository:   userRepository,
	}
}

func (s *followService) Follow(ctx context.Context, followerID, followingID uint) error {
	if followerID == followingID {
		return domain.ErrCannotFollowSelf
	}

	if _, err := s.userRepository.GetUserByID(ctx, followingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if _, err := s.followRepository.GetFollow(ctx, followerID, followingID); err == nil {
		return domain.ErrAlreadyFollowing
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.followRepository.CreateFollow(ctx, &entities.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	})
}

func (s *followService) Unfollow(ctx context.Context, followerID, followingID uint) error {
	if _, err := s.followRepository.GetFollow(ctx, followerID, followingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFollowing
		}
		return err
	}
	return s.followRepository.DeleteFollow(ctx, followerID, followingID)
}

func (s *followService) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	_, err := s.followRepository.GetFollow(ctx, followerID, followingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *followService) GetFollowers(ctx context.Context, userID uint, page, limit int) (domain.FollowListResponse, error) {
	users, count, err := s.followRepository.GetFollowers(ctx, userID, page, limit)
	if err != nil {
		return domain.FollowListResponse{}, err
	}
	return domain.FollowListResponse{
		Users:      toUserSummaries(users),
		Pagination: domain.NewPagination(count, page, limit),
	}, nil
}

func (s *followService) GetFollowing(ctx context.Context, userID uint, page, limit int) (domain.FollowListResponse, error) {
	users, count, err := s.followRepository.GetFollowing(ctx, userID, page, limit)
	if err != nil {
		return domain.FollowListResponse{}, err
	}
	return domain.FollowListResponse{
		Users:      toUserSummaries(users),
		Pagination: domain.NewPagination(count, page, limit),
	}, nil
}

// GetActivityFeed merges the recent recipes and reviews of every followed
// user into one reverse-chronological timeline.
func (s *followService) GetActivityFeed(ctx context.Context, userID uint, page, limit int) (domain.ActivityFeedResponse, error) {
	followingIDs, err := s.followRepository.GetFollowingIDs(ctx, userID)
	if err != nil {
		return domain.ActivityFeedResponse{}, err
	}

	if len(followingIDs) == 0 {
		return domain.ActivityFeedResponse{
			Activities: []domain.Activity{},
			Pagination: domain.PaginationResponse{Total: 0, Page: 1, Pages: 0},
		}, nil
	}

	recipes, err := s.followRepository.GetRecentRecipesByAuthors(ctx, followingIDs, feedSourceCap)
	if err != nil {
		return domain.ActivityFeedResponse{}, err
	}
	reviews, err := s.followRepository.GetRecentReviewsByAuthors(ctx, followingIDs, feedSourceCap)
	if err != nil {
		return domain.ActivityFeedResponse{}, err
	}

	activities := make([]domain.Activity, 0, len(recipes)+len(reviews))
	for _, item := range recipes {
		activities = append(activities, domain.Activity{
			Type:      domain.ActivityKindRecipe,
			Data:      item,
			CreatedAt: item.CreatedAt,
		})
	}
	for _, item := range reviews {
		activities = append(activities, domain.Activity{
			Type:      domain.ActivityKindReview,
			Data:      item,
			CreatedAt: item.CreatedAt,
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		if !activities[i].CreatedAt.Equal(activities[j].CreatedAt) {
			return activities[i].CreatedAt.After(activities[j].CreatedAt)
		}
		// Equal timestamps: recipes before reviews, then newest id first.
		if activities[i].Type != activities[j].Type {
			return activities[i].Type == domain.ActivityKindRecipe
		}
		return activityID(activities[i]) > activityID(activities[j])
	})

	total := int64(len(activities))
	offset := (page - 1) * limit
	if offset > len(activities) {
		offset = len(activities)
	}
	end := offset + limit
	if end > len(activities) {
		end = len(activities)
	}

	return domain.ActivityFeedResponse{
		Activities: activities[offset:end],
		Pagination: domain.NewPagination(total, page, limit),
	}, nil
}

func activityID(a domain.Activity) uint {
	switch data := a.Data.(type) {
	case *entities.Recipe:
		return data.ID
	case *entities.Review:
		return data.ID
	default:
		return 0
	}
}

func toUserSummaries(users []*entities.User) []domain.UserSummary {
	summaries := make([]domain.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, domain.UserSummary{
			ID:           u.ID,
			Username:     u.Username,
			ProfileImage: u.ProfileImage,
			Bio:          u.Bio,
		})
	}
	return summaries
}
