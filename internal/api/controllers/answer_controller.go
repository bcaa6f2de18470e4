package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"triday/internal/models/request_models"
	"triday/internal/models/response_models"
	"triday/internal/services"
	"triday/pkg/utils"
)

type AnswerController struct {
	answerService services.AnswerServiceInterface
}

func NewAnswerController(answerService services.AnswerServiceInterface) *AnswerController {
	return &AnswerController{
		answerService: answerService,
	}
}

// ListAnswers godoc
// @Summary List all saved survey answers for the authenticated user
// @Tags Answers
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/answers [get]
func (a *AnswerController) ListAnswers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	answers, err := a.answerService.ListAnswers(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	out := make([]response_models.AnswerResponse, 0, len(answers))
	for i := range answers {
		out = append(out, response_models.NewAnswerResponse(&answers[i]))
	}

	utils.RespondSuccess(c, out, "Answers fetched successfully")
}

// GetAnswer godoc
// @Summary Get the saved answers for one program day
// @Tags Answers
// @Produce json
// @Param dayKey path string true "Day key (welcome, day1, day2, day3)"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/answers/{dayKey} [get]
func (a *AnswerController) GetAnswer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	answer, err := a.answerService.GetAnswer(c.Request.Context(), userID, c.Param("dayKey"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAnswerResponse(answer), "Answer fetched successfully")
}

// SaveAnswer godoc
// @Summary Save the survey answers for one program day
// @Description Fully replaces any previously stored payload for the day
// @Tags Answers
// @Accept json
// @Produce json
// @Param dayKey path string true "Day key (welcome, day1, day2, day3)"
// @Param request body request_models.SaveAnswerRequest true "Answers payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/answers/{dayKey} [put]
func (a *AnswerController) SaveAnswer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.SaveAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	answer, err := a.answerService.SaveAnswer(c.Request.Context(), userID, c.Param("dayKey"), req.Answers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAnswerResponse(answer), "Answer saved successfully")
}
