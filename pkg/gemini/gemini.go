package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/model"
)

// ErrInsufficientInput means fewer than two devices were supplied
var ErrInsufficientInput = errors.New("at least two devices are required")

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Service calls the Gemini generateContent endpoint for recommendation text
type Service struct {
	APIKey  string
	Model   string
	BaseURL string
	Client  *http.Client
}

func NewService(apiKey, geminiModel string) *Service {
	return &Service{
		APIKey:  apiKey,
		Model:   geminiModel,
		BaseURL: defaultBaseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Recommend renders a comparison prompt for the given devices and returns
// the generated recommendation text verbatim
func (s *Service) Recommend(ctx context.Context, devices []model.DeviceSpec) (string, error) {
	if len(devices) < 2 {
		return "", ErrInsufficientInput
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.BaseURL, s.Model, s.APIKey)

	payload := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: buildPrompt(devices)}}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini response read failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error: %s", string(respBody))
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no recommendation returned")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

// buildPrompt enumerates each device's attributes in a fixed template so
// repeated calls for the same input produce the same prompt
func buildPrompt(devices []model.DeviceSpec) string {
	var b strings.Builder
	b.WriteString("You are a phone shopping assistant. Compare the following devices and recommend which one to buy, with a short reasoning.\n")

	for i, d := range devices {
		fmt.Fprintf(&b, "\nDevice %d: %s %s\n", i+1, d.Brand, d.Model)
		fmt.Fprintf(&b, "- Display: %s\n", d.Display)
		fmt.Fprintf(&b, "- Processor: %s\n", d.Processor)
		fmt.Fprintf(&b, "- Front camera: %s\n", d.FrontCamera)
		fmt.Fprintf(&b, "- Rear camera: %s\n", d.RearCamera)
		fmt.Fprintf(&b, "- RAM: %s\n", d.RAM)
		fmt.Fprintf(&b, "- Storage: %s\n", d.Storage)
		fmt.Fprintf(&b, "- OS: %s\n", d.OS)
	}

	b.WriteString("\nRecommendation:")
	return b.String()
}
