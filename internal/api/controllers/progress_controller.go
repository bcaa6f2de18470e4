package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"triday/internal/models/request_models"
	"triday/internal/models/response_models"
	"triday/internal/progression"
	"triday/internal/services"
	"triday/pkg/utils"
)

type ProgressController struct {
	progressService services.ProgressServiceInterface
}

func NewProgressController(progressService services.ProgressServiceInterface) *ProgressController {
	return &ProgressController{
		progressService: progressService,
	}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Missing user identity")
		return uuid.Nil, false
	}
	return id, true
}

// GetProgress godoc
// @Summary Get the authenticated user's journey progress
// @Tags Progress
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/progress [get]
func (p *ProgressController) GetProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	progress, err := p.progressService.GetProgress(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewProgressResponse(progress, progression.TotalDays), "Progress fetched successfully")
}

// UpdateProgress godoc
// @Summary Sync the current day pointer and step
// @Tags Progress
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProgressRequest true "Progress sync payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/progress [put]
func (p *ProgressController) UpdateProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	progress, err := p.progressService.UpdateProgress(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewProgressResponse(progress, progression.TotalDays), "Progress updated successfully")
}

// CompleteDay godoc
// @Summary Mark a program day complete
// @Description Adds the day to the completed set, advances the pointer and recomputes the streak
// @Tags Progress
// @Accept json
// @Produce json
// @Param request body request_models.CompleteDayRequest true "Day completion payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/progress/complete-day [post]
func (p *ProgressController) CompleteDay(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CompleteDayRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Day == nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	progress, err := p.progressService.CompleteDay(c.Request.Context(), userID, *req.Day)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewProgressResponse(progress, progression.TotalDays), "Day completed")
}
