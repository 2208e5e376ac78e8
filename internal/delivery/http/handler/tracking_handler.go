package handler

import (
	"errors"
	"net/http"

	"fuel-dispatch-monitor/internal/gps"
	"fuel-dispatch-monitor/pkg/utils"

	"github.com/gin-gonic/gin"
)

type TrackingHandler struct {
	client *gps.Client
}

func NewTrackingHandler(client *gps.Client) *TrackingHandler {
	return &TrackingHandler{client: client}
}

func (h *TrackingHandler) RegisterRoutes(router *gin.RouterGroup) {
	tracking := router.Group("/tracking")
	{
		tracking.GET("/vehicles", h.ListVehicles)
	}
}

// ListVehicles proxies one live fetch from the GPS provider. The optional
// q parameter filters over name, IMEI, group, status and engine; skipped
// provider records ride along so callers can surface data quality.
func (h *TrackingHandler) ListVehicles(c *gin.Context) {
	result, err := h.client.FetchVehicles(c.Request.Context())
	if err != nil {
		var reqErr *gps.RequestError
		if errors.As(err, &reqErr) {
			utils.ErrorResponse(c, http.StatusBadGateway, err.Error())
			return
		}
		var shapeErr *gps.ShapeError
		if errors.As(err, &shapeErr) {
			utils.ErrorResponse(c, http.StatusBadGateway, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusServiceUnavailable, err.Error())
		return
	}

	if q := c.Query("q"); q != "" {
		filtered := make([]gps.Vehicle, 0, len(result.Vehicles))
		for _, v := range result.Vehicles {
			if v.MatchesQuery(q) {
				filtered = append(filtered, v)
			}
		}
		result.Vehicles = filtered
	}

	utils.SuccessResponse(c, http.StatusOK, "GPS vehicles retrieved successfully", result)
}
