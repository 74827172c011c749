package dto

import (
	"time"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
)

// RegisterRequest defines the data needed to register a local user.
// Role is deliberately absent; self-registration is always employee.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID    string      `json:"userID"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// UpdateUserRoleRequest defines the payload for assigning a user's
// role. Only admins may call the endpoint that binds it.
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=employee manager admin"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// ToListUserResponse converts a slice of domain.User to response DTOs.
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = ToUserResponse(&u)
	}
	return res
}
