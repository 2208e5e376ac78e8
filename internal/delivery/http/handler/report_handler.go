package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"fuel-dispatch-monitor/internal/usecase/report"
	appErrors "fuel-dispatch-monitor/pkg/errors"
	"fuel-dispatch-monitor/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service *report.Service
}

func NewReportHandler(service *report.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("", h.RunReport)
		reports.GET("/export", h.ExportReport)
	}
}

func (h *ReportHandler) RunReport(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	result, err := h.service.Run(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Report generated successfully", result)
}

func (h *ReportHandler) ExportReport(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	result, err := h.service.Run(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	format := c.DefaultQuery("format", "xlsx")
	stamp := time.Now().Format("20060102_150405")

	switch format {
	case "xlsx":
		buf, err := report.ExportXLSX(result)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to generate workbook")
			return
		}
		filename := fmt.Sprintf("dispatch_report_%s_%s.xlsx", result.Mode, stamp)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())

	case "csv":
		buf, err := report.ExportCSV(result)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to generate CSV")
			return
		}
		filename := fmt.Sprintf("dispatch_report_%s_%s.csv", result.Mode, stamp)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		c.Data(http.StatusOK, "text/csv", buf.Bytes())

	default:
		utils.ErrorResponse(c, http.StatusBadRequest, "format must be xlsx or csv")
	}
}

func (h *ReportHandler) bindRequest(c *gin.Context) (*report.Request, bool) {
	var req report.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return nil, false
	}
	if req.Mode == "" {
		req.Mode = report.ModeDispatch
	}
	return &req, true
}

func (h *ReportHandler) writeServiceError(c *gin.Context, err error) {
	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
		return
	}
	utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
}
