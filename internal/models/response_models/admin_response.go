package response_models

import "triday/internal/models/db_models"

type UserListResponse struct {
	Users    []AccountResponse `json:"users"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

type AccessLogResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id,omitempty"`
	UserEmail   string `json:"user_email"`
	EventType   string `json:"event_type"`
	EventDetail string `json:"event_detail,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

func NewAccessLogResponse(l *db_models.AccessLog) AccessLogResponse {
	resp := AccessLogResponse{
		ID:          l.ID.String(),
		UserEmail:   l.UserEmail,
		EventType:   l.EventType,
		EventDetail: l.EventDetail,
		CreatedAt:   l.CreatedAt,
	}
	if l.UserID != nil {
		resp.UserID = l.UserID.String()
	}
	return resp
}

type LogListResponse struct {
	Logs     []AccessLogResponse `json:"logs"`
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
