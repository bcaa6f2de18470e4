package request_models

// CompleteDayRequest uses a pointer so day 0 (the welcome segment)
// still passes `required` binding.
type CompleteDayRequest struct {
	Day *int `json:"day" binding:"required"`
}

type UpdateProgressRequest struct {
	CurrentDay  *int    `json:"current_day"`
	CurrentStep *string `json:"current_step"`
}
