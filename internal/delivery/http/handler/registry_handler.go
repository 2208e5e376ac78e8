package handler

import (
	"errors"
	"net/http"

	"fuel-dispatch-monitor/internal/usecase/registry"
	appErrors "fuel-dispatch-monitor/pkg/errors"
	"fuel-dispatch-monitor/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RegistryHandler struct {
	service *registry.Service
}

func NewRegistryHandler(service *registry.Service) *RegistryHandler {
	return &RegistryHandler{service: service}
}

func (h *RegistryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/oil-companies", h.ListOilCompanies)
	router.POST("/oil-companies", h.CreateOilCompany)

	router.GET("/transporters", h.ListTransporters)
	router.POST("/transporters", h.CreateTransporter)
	router.POST("/transporters/:id/vehicles", h.AddVehicle)

	router.GET("/vehicles", h.ListVehicles)

	router.GET("/depots", h.ListDepots)
	router.POST("/depots", h.CreateDepot)
}

func (h *RegistryHandler) ListOilCompanies(c *gin.Context) {
	companies, err := h.service.ListOilCompanies(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Oil companies retrieved successfully", companies)
}

func (h *RegistryHandler) CreateOilCompany(c *gin.Context) {
	var req registry.CreateOilCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	company, err := h.service.CreateOilCompany(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Oil company created successfully", company)
}

func (h *RegistryHandler) ListTransporters(c *gin.Context) {
	transporters, err := h.service.ListTransporters(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Transporters retrieved successfully", transporters)
}

func (h *RegistryHandler) CreateTransporter(c *gin.Context) {
	var req registry.CreateTransporterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	transporter, err := h.service.CreateTransporter(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Transporter created successfully", transporter)
}

func (h *RegistryHandler) AddVehicle(c *gin.Context) {
	var req registry.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	vehicle, err := h.service.AddVehicle(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, appErrors.ErrTransporterNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Vehicle added successfully", vehicle)
}

func (h *RegistryHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.service.ListVehicles(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicles retrieved successfully", vehicles)
}

func (h *RegistryHandler) ListDepots(c *gin.Context) {
	depots, err := h.service.ListDepots(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Depots retrieved successfully", depots)
}

func (h *RegistryHandler) CreateDepot(c *gin.Context) {
	var req registry.CreateDepotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	depot, err := h.service.CreateDepot(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Depot created successfully", depot)
}
