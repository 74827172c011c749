package dto

import (
	"time"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
)

// NotificationResponse defines the data returned for a notification.
type NotificationResponse struct {
	NotificationID string    `json:"notificationID"`
	UserID         string    `json:"userID"`
	Type           string    `json:"type"`
	Message        string    `json:"message"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToNotificationResponse converts a domain.Notification to its DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		UserID:         n.UserID,
		Type:           n.Type,
		Message:        n.Message,
		Read:           n.Read,
		CreatedAt:      n.CreatedAt,
	}
}

// ToListNotificationResponse converts a slice of domain.Notification to DTOs.
func ToListNotificationResponse(notifications []domain.Notification) []NotificationResponse {
	res := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		res[i] = ToNotificationResponse(&n)
	}
	return res
}
