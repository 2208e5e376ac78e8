package handler

import (
	"errors"
	"net/http"

	"fuel-dispatch-monitor/internal/usecase/profile"
	appErrors "fuel-dispatch-monitor/pkg/errors"
	"fuel-dispatch-monitor/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	service *profile.Service
}

func NewProfileHandler(service *profile.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	p := router.Group("/profile")
	{
		p.GET("", h.Get)
		p.PUT("", h.Update)
		p.PUT("/password", h.ChangePassword)
	}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", h.service.Get())
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req profile.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.Update(&req)
	if err != nil {
		writeProfileError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", resp)
}

func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	var req profile.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.service.ChangePassword(&req); err != nil {
		writeProfileError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}

func writeProfileError(c *gin.Context, err error) {
	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		status := http.StatusBadRequest
		if appErr.Code == "INVALID_PASSWORD" {
			status = http.StatusUnauthorized
		}
		utils.ErrorResponse(c, status, appErr.Message)
		return
	}
	utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}
