package request_models

type CreateUserRequest struct {
	DisplayName string `json:"display_name" binding:"required,min=2,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Role        string `json:"role" binding:"omitempty,oneof=user admin"`
}

type UpdateUserRequest struct {
	DisplayName        *string `json:"display_name"`
	Role               *string `json:"role" binding:"omitempty,oneof=user admin"`
	AccessDurationDays *int    `json:"access_duration_days"`
	Locale             *string `json:"locale"`
	Theme              *string `json:"theme"`
}

type SuspendUserRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ReactivateUserRequest extends access by DurationDays from now; when
// omitted the default from app settings applies.
type ReactivateUserRequest struct {
	DurationDays *int `json:"duration_days"`
}

type UpdateSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}
