package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"kd_cleaning/internal/usecase/interfaces"

	"github.com/hashicorp/go-retryablehttp"
)

var ErrMissingExtractionAPIKey = errors.New("missing EXTRACTION_API_KEY")
var ErrExtractionGatewayNotConfigured = errors.New("extraction gateway not configured")

const (
	defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

	extractionPrompt = "Extract every work order line from the following document text. " +
		"Respond with a JSON array only; each element has the fields unit, date, " +
		"service_type, start_time, end_time and work_order when present."
)

// GeminiGateway extracts structured work-order fields from raw document text
// through the Gemini generateContent API.
//
// Rate-limit (429) and overload (503) responses are retried up to three
// attempts with a growing pause between them; other provider errors surface
// immediately.

type GeminiGateway struct {
	client   *retryablehttp.Client
	endpoint string
	apiKey   string
	mockMode bool
}

var _ interfaces.IExtractionGateway = (*GeminiGateway)(nil)

func NewGeminiGateway(apiKey string) (*GeminiGateway, error) {
	if isExtractionGatewayMockEnabled() {
		log.Printf("[extraction][gateway] mock mode enabled")
		return &GeminiGateway{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[extraction][gateway] missing EXTRACTION_API_KEY")
		return nil, ErrMissingExtractionAPIKey
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.Logger = nil
	client.CheckRetry = checkRetry
	client.Backoff = attemptBackoff
	log.Printf("[extraction][gateway] Gemini client initialized")

	return &GeminiGateway{
		client:   client,
		endpoint: getenvDefault("EXTRACTION_ENDPOINT", defaultEndpoint),
		apiKey:   apiKey,
	}, nil
}

func (g *GeminiGateway) ExtractFields(ctx context.Context, documentText string) (json.RawMessage, error) {
	if g != nil && g.mockMode {
		log.Printf("[extraction][gateway] mock extract start text_len=%d", len(documentText))
		return json.RawMessage(`[]`), nil
	}
	if g == nil || g.client == nil {
		log.Printf("[extraction][gateway] gateway not configured")
		return nil, ErrExtractionGatewayNotConfigured
	}
	log.Printf("[extraction][gateway] extract start text_len=%d", len(documentText))

	body, err := json.Marshal(map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{
				{"text": extractionPrompt + "\n\n" + documentText},
			}},
		},
		"generationConfig": map[string]string{
			"response_mime_type": "application/json",
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[extraction][gateway] request failed err=%v", err)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[extraction][gateway] provider error status=%d body_len=%d", resp.StatusCode, len(raw))
		return nil, fmt.Errorf("extraction provider returned status %d", resp.StatusCode)
	}

	fields, err := decodeCandidateText(raw)
	if err != nil {
		log.Printf("[extraction][gateway] response decode failed err=%v", err)
		return nil, err
	}
	log.Printf("[extraction][gateway] extract success fields_len=%d", len(fields))
	return fields, nil
}

// decodeCandidateText unwraps the generateContent envelope down to the model's
// JSON text and validates it parses as an array.
func decodeCandidateText(raw []byte) (json.RawMessage, error) {
	var envelope struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Candidates) == 0 || len(envelope.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("extraction response has no candidates")
	}

	text := envelope.Candidates[0].Content.Parts[0].Text
	var fields []json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return nil, fmt.Errorf("extraction response is not a JSON array: %w", err)
	}
	return json.RawMessage(text), nil
}

func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusServiceUnavailable {
		return true, nil
	}
	return false, nil
}

// attemptBackoff waits attempt*2s between tries, matching the provider's
// published rate-limit guidance.
func attemptBackoff(_, _ time.Duration, attemptNum int, _ *http.Response) time.Duration {
	return time.Duration(attemptNum+1) * 2 * time.Second
}

func isExtractionGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("EXTRACTION_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
