package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/model"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/repository"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/service"
)

// DeviceHandler handles catalog endpoints
type DeviceHandler struct {
	catalogService *service.CatalogService
}

func NewDeviceHandler(catalogService *service.CatalogService) *DeviceHandler {
	return &DeviceHandler{catalogService: catalogService}
}

// Dashboard godoc
// @Summary List the catalog, newest release first
// @Tags Devices
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /dashboard [get]
func (h *DeviceHandler) Dashboard(c *gin.Context) {
	devices, err := h.catalogService.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.DashboardResponse{Devices: devices})
}

// Product godoc
// @Summary Get one device by id
// @Tags Devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.ProductRequest true "Product request"
// @Success 200 {object} model.DeviceResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /product [post]
func (h *DeviceHandler) Product(c *gin.Context) {
	var req model.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "missing device id", Message: err.Error()})
		return
	}

	device, err := h.catalogService.Product(c.Request.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, model.DeviceResponse{Device: device})
}

// Filter godoc
// @Summary Filter devices by brand, release year, market status and storage
// @Tags Devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.FilterRequest true "Filter fields, all optional"
// @Success 200 {object} model.DevicesResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /filter [post]
func (h *DeviceHandler) Filter(c *gin.Context) {
	var req model.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	devices, err := h.catalogService.Filter(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidYear) {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.DevicesResponse{Devices: devices})
}

// Search godoc
// @Summary Free-text search over brand, model and release year
// @Tags Devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.SearchRequest true "Search request"
// @Success 200 {object} model.DevicesResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /search [post]
func (h *DeviceHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "missing search value", Message: err.Error()})
		return
	}

	devices, err := h.catalogService.Search(c.Request.Context(), req.Search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.DevicesResponse{Devices: devices})
}

// Compare godoc
// @Summary Fetch a set of devices for side-by-side comparison
// @Tags Devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.CompareRequest true "Compare request"
// @Success 200 {object} model.DevicesResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /compare [post]
func (h *DeviceHandler) Compare(c *gin.Context) {
	var req model.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "missing device ids", Message: err.Error()})
		return
	}

	devices, err := h.catalogService.Compare(c.Request.Context(), req.IDs)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.DevicesResponse{Devices: devices})
}
