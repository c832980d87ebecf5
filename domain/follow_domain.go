package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessFollow       = "successfully followed user"
	MessageSuccessUnfollow     = "successfully unfollowed user"
	MessageSuccessGetFollowers = "followers retrieved successfully"
	MessageSuccessGetFollowing = "following retrieved successfully"
	MessageSuccessCheckFollow  = "follow status retrieved successfully"
	MessageSuccessGetFeed      = "activity feed retrieved successfully"

	MessageFailedFollow       = "failed to follow user"
	MessageFailedUnfollow     = "failed to unfollow user"
	MessageFailedGetFollowers = "failed to fetch followers"
	MessageFailedGetFollowing = "failed to fetch following"
	MessageFailedCheckFollow  = "failed to check follow status"
	MessageFailedGetFeed      = "failed to fetch activity feed"

	ErrCannotFollowSelf = errors.New("you cannot follow yourself")
	ErrAlreadyFollowing = errors.New("you are already following this user")
	ErrNotFollowing     = errors.New("you are not following this user")
)

const (
	ActivityKindRecipe = "recipe"
	ActivityKindReview = "review"
)

type (
	// Activity is one entry of the merged timeline: either a recipe or a
	// review authored by a followed user, tagged with its kind.
	Activity struct {
		Type      string      `json:"type"` // ActivityKindRecipe or ActivityKindReview
		Data      interface{} `json:"data"`
		CreatedAt time.Time   `json:"created_at"`
	}

	ActivityFeedResponse struct {
		Activities []Activity         `json:"activities"`
		Pagination PaginationResponse `json:"pagination"`
	}

	FollowListResponse struct {
		Users      []UserSummary      `json:"users"`
		Pagination PaginationResponse `json:"pagination"`
	}

	CheckFollowResponse struct {
		IsFollowing bool `json:"is_following"`
	}
)
