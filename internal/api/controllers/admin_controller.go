package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"triday/internal/models/request_models"
	"triday/internal/models/response_models"
	"triday/internal/services"
	"triday/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}

// ListUsers godoc
// @Summary List all user accounts
// @Tags Admin
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (1-100)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/admin/users [get]
func (a *AdminController) ListUsers(c *gin.Context) {
	page, pageSize := pagination(c)

	users, total, err := a.adminService.ListUsers(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	out := make([]response_models.AccountResponse, 0, len(users))
	for i := range users {
		out = append(out, response_models.NewAccountResponse(&users[i]))
	}

	utils.RespondSuccess(c, response_models.UserListResponse{
		Users:    out,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, "Users fetched successfully")
}

// CreateUser godoc
// @Summary Create a user account
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.CreateUserRequest true "User payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/admin/users [post]
func (a *AdminController) CreateUser(c *gin.Context) {
	var req request_models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.adminService.CreateUser(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAccountResponse(user), "User created successfully")
}

// GetUser godoc
// @Summary Fetch one user account
// @Tags Admin
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/admin/users/{id} [get]
func (a *AdminController) GetUser(c *gin.Context) {
	user, err := a.adminService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAccountResponse(user), "User fetched successfully")
}

// UpdateUser godoc
// @Summary Update one user account
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param request body request_models.UpdateUserRequest true "Update payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/admin/users/{id} [put]
func (a *AdminController) UpdateUser(c *gin.Context) {
	var req request_models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.adminService.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAccountResponse(user), "User updated successfully")
}

// DeleteUser godoc
// @Summary Delete one user account
// @Tags Admin
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/admin/users/{id} [delete]
func (a *AdminController) DeleteUser(c *gin.Context) {
	if err := a.adminService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User deleted successfully")
}

// SuspendUser godoc
// @Summary Suspend a user with a reason
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param request body request_models.SuspendUserRequest true "Suspension payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/admin/users/{id}/suspend [post]
func (a *AdminController) SuspendUser(c *gin.Context) {
	var req request_models.SuspendUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.adminService.SuspendUser(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAccountResponse(user), "User suspended")
}

// ReactivateUser godoc
// @Summary Reactivate a suspended or expired user
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param request body request_models.ReactivateUserRequest false "Reactivation payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/admin/users/{id}/reactivate [post]
func (a *AdminController) ReactivateUser(c *gin.Context) {
	var req request_models.ReactivateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.adminService.ReactivateUser(c.Request.Context(), c.Param("id"), req.DurationDays)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAccountResponse(user), "User reactivated")
}

// ListLogs godoc
// @Summary List access log entries
// @Tags Admin
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (1-100)"
// @Param email query string false "Filter by user email"
// @Param event_type query string false "Filter by event type"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/admin/logs [get]
func (a *AdminController) ListLogs(c *gin.Context) {
	page, pageSize := pagination(c)

	logs, total, err := a.adminService.ListLogs(c.Request.Context(), page, pageSize,
		c.Query("email"), c.Query("event_type"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	out := make([]response_models.AccessLogResponse, 0, len(logs))
	for i := range logs {
		out = append(out, response_models.NewAccessLogResponse(&logs[i]))
	}

	utils.RespondSuccess(c, response_models.LogListResponse{
		Logs:     out,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, "Logs fetched successfully")
}

// GetSettings godoc
// @Summary List application settings
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/admin/settings [get]
func (a *AdminController) GetSettings(c *gin.Context) {
	settings, err := a.adminService.GetSettings(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	out := make([]response_models.SettingResponse, 0, len(settings))
	for _, s := range settings {
		out = append(out, response_models.SettingResponse{Key: s.Key, Value: s.Value})
	}

	utils.RespondSuccess(c, out, "Settings fetched successfully")
}

// UpdateSetting godoc
// @Summary Upsert one application setting
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.UpdateSettingRequest true "Setting payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/admin/settings [put]
func (a *AdminController) UpdateSetting(c *gin.Context) {
	var req request_models.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.adminService.UpdateSetting(c.Request.Context(), req.Key, req.Value); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Setting updated successfully")
}
