package domain

import "errors"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "authentication required, please provide a valid token"
	MessageFailedTokenInvalid   = "invalid token"
	MessageFailedTokenExpired   = "token expired, please login again"
	MessageUserNotAllowed       = "access denied, admin privileges required"
	MessageAccountDeactivated   = "account is deactivated, please contact support"

	ErrTokenNotFound   = errors.New("authentication required")
	ErrTokenInvalid    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired, please login again")
	ErrUserNotAllowed  = errors.New("admin privileges required")
	ErrAccountInactive = errors.New("account is deactivated")
)

type PaginationResponse struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int64 `json:"pages"`
}

func NewPagination(total int64, page, limit int) PaginationResponse {
	if limit <= 0 {
		limit = 1
	}
	return PaginationResponse{
		Total: total,
		Page:  page,
		Pages: (total + int64(limit) - 1) / int64(limit),
	}
}
