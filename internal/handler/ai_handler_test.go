package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/pkg/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAITestRouter(upstreamURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := gemini.NewService("key", "gemini-2.0-flash")
	svc.BaseURL = upstreamURL

	r := gin.New()
	r.POST("/ai", NewAIHandler(svc).Recommend)
	return r
}

func postAI(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/ai", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRecommendEndpoint_MissingDevices(t *testing.T) {
	r := newAITestRouter("http://unused.invalid")

	w := postAI(r, `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendEndpoint_SingleDevice(t *testing.T) {
	r := newAITestRouter("http://unused.invalid")

	w := postAI(r, `{"devices":[{"brand":"Apple","model":"iPhone 15 Pro"}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "at least two devices are required", body["error"])
}

func TestRecommendEndpoint_Success(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"Pick the Pixel."}]}}]}`)
	}))
	defer upstream.Close()

	r := newAITestRouter(upstream.URL)

	w := postAI(r, `{"devices":[{"brand":"Google","model":"Pixel 8"},{"brand":"Apple","model":"iPhone 15 Pro"}]}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Pick the Pixel.", body["recommendation"])
}

func TestRecommendEndpoint_UpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error":"model overloaded"}`)
	}))
	defer upstream.Close()

	r := newAITestRouter(upstream.URL)

	w := postAI(r, `{"devices":[{"brand":"Google","model":"Pixel 8"},{"brand":"Apple","model":"iPhone 15 Pro"}]}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "model overloaded")
}
