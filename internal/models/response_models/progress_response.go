package response_models

import (
	"triday/internal/models/db_models"
	"triday/pkg/utils"
)

type ProgressResponse struct {
	CurrentDay        int    `json:"current_day"`
	CompletedDays     []int  `json:"completed_days"`
	CurrentStep       string `json:"current_step"`
	Streak            int    `json:"streak"`
	LastCompletedDate string `json:"last_completed_date,omitempty"`
	TotalDays         int    `json:"total_days"`
}

func NewProgressResponse(p *db_models.JourneyProgress, totalDays int) ProgressResponse {
	days := make([]int, 0, len(p.CompletedDays))
	for _, d := range p.CompletedDays {
		days = append(days, int(d))
	}

	resp := ProgressResponse{
		CurrentDay:    p.CurrentDay,
		CompletedDays: days,
		CurrentStep:   string(p.CurrentStep),
		Streak:        p.Streak,
		TotalDays:     totalDays,
	}
	if p.LastCompletedDate != nil {
		resp.LastCompletedDate = utils.FormatDate(*p.LastCompletedDate)
	}
	return resp
}
