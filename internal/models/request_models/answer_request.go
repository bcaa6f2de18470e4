package request_models

import "encoding/json"

type SaveAnswerRequest struct {
	Answers json.RawMessage `json:"answers" binding:"required"`
}
