package suggestion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/meteomotto/go-weather-backend/internal/weather/domain"
)

// GeminiClient calls the generateContent endpoint of the Gemini REST API.
type GeminiClient struct {
	apiKey  string
	baseURL string
	model   string
	httpc   *http.Client
}

func NewGeminiClient(apiKey, baseURL, model string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate asks the model for a short weather suggestion. A response
// missing the candidates path yields the per-language fallback sentence,
// not an error; only transport and HTTP failures are surfaced.
func (c *GeminiClient) Generate(ctx context.Context, snapshot domain.ConditionsSnapshot, city, lang string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(snapshot, city, lang)}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 100,
		},
		SafetySettings: []safetySetting{
			{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
			{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
			{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
			{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
		},
	}

	b, _ := json.Marshal(reqBody)

	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini error (status %d)", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("gemini decode: %w", err)
	}

	if len(out.Candidates) > 0 && len(out.Candidates[0].Content.Parts) > 0 {
		return out.Candidates[0].Content.Parts[0].Text, nil
	}

	return Fallback(lang), nil
}

// Fallback is the canned suggestion used when the model returns nothing.
func Fallback(lang string) string {
	if lang == "tr" {
		return "Bugün için özel bir önerim yok, ama her zaman hazırlıklı olmak iyidir!"
	}
	return "I don't have a special suggestion for today, but it's always good to be prepared!"
}

func buildPrompt(snapshot domain.ConditionsSnapshot, city, lang string) string {
	temp := int(math.Round(snapshot.Temperature))
	feelsLike := int(math.Round(snapshot.FeelsLike))

	if lang == "tr" {
		return fmt.Sprintf("%s'de hava durumu: %d°C (hissedilen: %d°C), %s, nem: %%%d, rüzgar: %g km/s. "+
			"Bu hava durumuna göre esprili, samimi ve yararlı bir öneri yaz. Kısa ve öz olsun, 1-2 cümle.",
			city, temp, feelsLike, snapshot.Description, snapshot.Humidity, snapshot.WindSpeed)
	}
	return fmt.Sprintf("Weather in %s: %d°C (feels like: %d°C), %s, humidity: %d%%, wind: %g km/h. "+
		"Write a witty, friendly, and helpful suggestion for this weather. Keep it short and concise, 1-2 sentences.",
		city, temp, feelsLike, snapshot.Description, snapshot.Humidity, snapshot.WindSpeed)
}
