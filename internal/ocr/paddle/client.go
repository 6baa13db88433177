package paddle

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"invocr/internal/config"
	"invocr/internal/port"
)

// statusOK is the success code of the PaddleOCR serving API.
const statusOK = "000"

// Client implements port.OCREngine against a PaddleOCR serving endpoint.
// The zero-state struct plus a shared http.Client make it safe for
// concurrent requests.
type Client struct {
	endpoint string
	language string
	client   *http.Client
}

// NewClient creates an OCR engine client from config.
func NewClient(cfg *config.OCRConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		endpoint: cfg.Endpoint,
		language: cfg.Language,
		client:   &http.Client{Timeout: timeout},
	}
}

type apiRequest struct {
	Images      []string `json:"images"`
	UseAngleCls bool     `json:"use_angle_cls"`
	Lang        string   `json:"lang,omitempty"`
}

type apiResponse struct {
	Status  string           `json:"status"`
	Msg     string           `json:"msg"`
	Results []port.RawResult `json:"results"`
}

// Recognize sends one page image to the serving endpoint and returns the
// engine's nested block/line payload untouched.
func (c *Client) Recognize(ctx context.Context, image []byte, classifyOrientation bool) (port.RawResult, error) {
	reqBody := apiRequest{
		Images:      []string{base64.StdEncoding.EncodeToString(image)},
		UseAngleCls: classifyOrientation,
		Lang:        c.language,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling OCR API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OCR API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var parsed apiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}
	if parsed.Status != statusOK {
		return nil, fmt.Errorf("OCR engine error (status %s): %s", parsed.Status, parsed.Msg)
	}
	if len(parsed.Results) == 0 {
		return nil, fmt.Errorf("empty response from OCR engine: no results")
	}

	return parsed.Results[0], nil
}

// Ping reports whether the serving endpoint is reachable. Any HTTP response
// counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("OCR endpoint unreachable: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}
