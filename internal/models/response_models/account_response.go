package response_models

import (
	"time"

	"triday/internal/models/db_models"
	"triday/pkg/utils"
)

type AccountResponse struct {
	ID                   string `json:"id"`
	DisplayName          string `json:"display_name"`
	Email                string `json:"email"`
	Role                 string `json:"role"`
	Status               string `json:"status"`
	StatusReason         string `json:"status_reason,omitempty"`
	AccessExpiresAt      string `json:"access_expires_at,omitempty"`
	AccessDurationDays   int    `json:"access_duration_days"`
	Locale               string `json:"locale"`
	Theme                string `json:"theme"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	NotificationTime     string `json:"notification_time"`
	CreatedAt            int64  `json:"created_at"`
}

func NewAccountResponse(u *db_models.User) AccountResponse {
	resp := AccountResponse{
		ID:                   u.ID.String(),
		DisplayName:          u.DisplayName,
		Email:                u.Email,
		Role:                 string(u.Role),
		Status:               string(u.Status),
		StatusReason:         u.StatusReason,
		AccessDurationDays:   u.AccessDurationDays,
		Locale:               u.Locale,
		Theme:                u.Theme,
		NotificationsEnabled: u.NotificationsEnabled,
		NotificationTime:     u.NotificationTime,
		CreatedAt:            u.CreatedAt,
	}
	if u.AccessExpiresAt != nil {
		resp.AccessExpiresAt = utils.FormatRFC3339(time.Unix(*u.AccessExpiresAt, 0).UTC())
	}
	return resp
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}
