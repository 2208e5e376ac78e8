package handler

import (
	"net/http"
	"strconv"

	"fuel-dispatch-monitor/internal/usecase/dashboard"
	"fuel-dispatch-monitor/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service *dashboard.Service
}

func NewDashboardHandler(service *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	board := router.Group("/dashboard")
	{
		board.GET("/kpis", h.GetKpis)
		board.GET("/charts", h.GetCharts)
		board.GET("/summary", h.GetEntitySummary)
		board.GET("/transit", h.GetTransitBoard)
		board.GET("/recent", h.GetRecentDispatches)
		board.GET("/regional-fuel", h.GetRegionalFuel)
	}
}

func (h *DashboardHandler) GetKpis(c *gin.Context) {
	kpis, err := h.service.GetKpis(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "KPIs retrieved successfully", kpis)
}

func (h *DashboardHandler) GetCharts(c *gin.Context) {
	charts, err := h.service.GetCharts(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Charts retrieved successfully", charts)
}

func (h *DashboardHandler) GetEntitySummary(c *gin.Context) {
	summary, err := h.service.GetEntitySummary(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Entity summary retrieved successfully", summary)
}

func (h *DashboardHandler) GetTransitBoard(c *gin.Context) {
	board, err := h.service.GetTransitBoard(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Transit board retrieved successfully", board)
}

func (h *DashboardHandler) GetRecentDispatches(c *gin.Context) {
	limit := 6
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	recent, err := h.service.GetRecentDispatches(c.Request.Context(), limit)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Recent dispatches retrieved successfully", recent)
}

func (h *DashboardHandler) GetRegionalFuel(c *gin.Context) {
	summaries, err := h.service.GetRegionalFuelSummary(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Regional fuel summary retrieved successfully", summaries)
}
