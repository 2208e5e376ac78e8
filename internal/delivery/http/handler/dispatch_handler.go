package handler

import (
	"errors"
	"net/http"

	"fuel-dispatch-monitor/internal/usecase/dispatchops"
	appErrors "fuel-dispatch-monitor/pkg/errors"
	"fuel-dispatch-monitor/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DispatchHandler struct {
	service *dispatchops.Service
}

func NewDispatchHandler(service *dispatchops.Service) *DispatchHandler {
	return &DispatchHandler{service: service}
}

func (h *DispatchHandler) RegisterRoutes(router *gin.RouterGroup) {
	dispatches := router.Group("/dispatches")
	{
		dispatches.GET("", h.ListTasks)
		dispatches.POST("", h.CreateTask)
		dispatches.GET("/:no", h.GetTask)
		dispatches.PUT("/:no/status", h.UpdateStatus)
	}
}

func (h *DispatchHandler) ListTasks(c *gin.Context) {
	var filter dispatchops.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	tasks, err := h.service.ListTasks(c.Request.Context(), &filter)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dispatch tasks retrieved successfully", tasks)
}

func (h *DispatchHandler) CreateTask(c *gin.Context) {
	var req dispatchops.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.service.CreateTask(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, appErrors.ErrTaskAlreadyExists) {
			utils.ErrorResponse(c, http.StatusConflict, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Dispatch task created successfully", task)
}

func (h *DispatchHandler) GetTask(c *gin.Context) {
	task, err := h.service.GetTask(c.Request.Context(), c.Param("no"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dispatch task retrieved successfully", task)
}

func (h *DispatchHandler) UpdateStatus(c *gin.Context) {
	var req dispatchops.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.service.UpdateStatus(c.Request.Context(), c.Param("no"), &req)
	if err != nil {
		if errors.Is(err, appErrors.ErrTaskNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", task)
}
