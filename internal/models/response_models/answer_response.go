package response_models

import (
	"encoding/json"

	"triday/internal/models/db_models"
)

type AnswerResponse struct {
	DayKey    string          `json:"day_key"`
	Answers   json.RawMessage `json:"answers"`
	UpdatedAt int64           `json:"updated_at"`
}

func NewAnswerResponse(a *db_models.DayAnswer) AnswerResponse {
	return AnswerResponse{
		DayKey:    string(a.DayKey),
		Answers:   json.RawMessage(a.Answers),
		UpdatedAt: a.UpdatedAt,
	}
}
