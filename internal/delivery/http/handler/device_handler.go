package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "fleet-console/internal/domain/device"
	"fleet-console/internal/usecase/device"
	"fleet-console/pkg/utils"
)

type DeviceHandler struct {
	service *device.Service
}

func NewDeviceHandler(service *device.Service) *DeviceHandler {
	return &DeviceHandler{service: service}
}

func (h *DeviceHandler) RegisterRoutes(router *gin.RouterGroup) {
	devices := router.Group("/devices")
	{
		devices.GET("", h.ListDevices)
		devices.GET("/:id", h.GetDevice)
		devices.GET("/:id/health", h.GetHealth)
		devices.POST("/:id/commands", h.SubmitCommand)
		devices.GET("/:id/commands/history", h.CommandHistory)
	}
}

func (h *DeviceHandler) ListDevices(c *gin.Context) {
	devices := h.service.ListDevices(c.Request.Context())
	c.JSON(http.StatusOK, device.DeviceListResponse{Devices: devices})
}

func (h *DeviceHandler) GetDevice(c *gin.Context) {
	d, err := h.service.GetDevice(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"device": d})
}

func (h *DeviceHandler) GetHealth(c *gin.Context) {
	metrics, err := h.service.GetHealth(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"health": metrics})
}

func (h *DeviceHandler) SubmitCommand(c *gin.Context) {
	var req device.SubmitCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd, err := h.service.SubmitCommand(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, domain.ErrDeviceNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusCreated, device.CommandResponse{Command: cmd})
}

func (h *DeviceHandler) CommandHistory(c *gin.Context) {
	commands, err := h.service.CommandHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	c.JSON(http.StatusOK, device.CommandHistoryResponse{Commands: commands})
}
