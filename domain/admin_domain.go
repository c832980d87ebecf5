package domain

import "errors"

var (
	MessageSuccessGetUsers      = "users retrieved successfully"
	MessageSuccessToggleStatus  = "user status updated successfully"
	MessageSuccessDeleteUser    = "user deleted successfully"
	MessageSuccessGetStatistics = "statistics retrieved successfully"
	MessageSuccessMakeAdmin     = "user promoted to admin successfully"

	MessageFailedGetUsers      = "failed to fetch users"
	MessageFailedToggleStatus  = "failed to update user status"
	MessageFailedDeleteUser    = "failed to delete user"
	MessageFailedGetStatistics = "failed to fetch statistics"
	MessageFailedMakeAdmin     = "failed to make user admin"

	ErrCannotBanSelf     = errors.New("you cannot ban yourself")
	ErrCannotDeleteSelf  = errors.New("you cannot delete yourself")
	ErrCannotTargetAdmin = errors.New("cannot modify admin users")
	ErrAlreadyAdmin      = errors.New("user is already an admin")
)

type (
	// UserQuery enumerates the recognized filters for the admin user listing.
	UserQuery struct {
		Search string
		Status string // "active", "inactive" or empty
		Page   int
		Limit  int
	}

	ToggleStatusResponse struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		IsActive bool   `json:"is_active"`
	}

	MakeAdminResponse struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Role     string `json:"role"`
	}

	ModerationRequest struct {
		Reason string `json:"reason"`
	}

	StatisticsResponse struct {
		TotalUsers    int64 `json:"total_users"`
		ActiveUsers   int64 `json:"active_users"`
		InactiveUsers int64 `json:"inactive_users"`
		TotalRecipes  int64 `json:"total_recipes"`
		TotalReviews  int64 `json:"total_reviews"`
		RecentRecipes int64 `json:"recent_recipes"`
		RecentUsers   int64 `json:"recent_users"`
	}
)
