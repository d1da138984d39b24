package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/repository"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDeviceTestRouter wires a handler over a zero-value repository; only
// routes that reject input before any collection access may be exercised.
func newDeviceTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewDeviceHandler(service.NewCatalogService(&repository.DeviceRepository{}))

	r := gin.New()
	r.POST("/compare", h.Compare)
	return r
}

func TestCompareEndpoint_MalformedIDInSet(t *testing.T) {
	r := newDeviceTestRouter()

	body := `{"ids":["507f1f77bcf86cd799439011","not-a-hex-id"]}`
	req := httptest.NewRequest(http.MethodPost, "/compare", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid id format", resp["error"])
}

func TestCompareEndpoint_MissingIDs(t *testing.T) {
	r := newDeviceTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/compare", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
