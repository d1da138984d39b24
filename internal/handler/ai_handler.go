package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/model"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/pkg/gemini"
)

// AIHandler handles the recommendation endpoint
type AIHandler struct {
	gemini *gemini.Service
}

func NewAIHandler(geminiService *gemini.Service) *AIHandler {
	return &AIHandler{gemini: geminiService}
}

// Recommend godoc
// @Summary Generate a purchase recommendation for two or more devices
// @Tags AI
// @Accept json
// @Produce json
// @Param body body model.RecommendRequest true "Device attribute sets (at least two)"
// @Success 200 {object} model.RecommendResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /ai [post]
func (h *AIHandler) Recommend(c *gin.Context) {
	var req model.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "missing devices", Message: err.Error()})
		return
	}

	text, err := h.gemini.Recommend(c.Request.Context(), req.Devices)
	if err != nil {
		if errors.Is(err, gemini.ErrInsufficientInput) {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.RecommendResponse{Recommendation: text})
}
