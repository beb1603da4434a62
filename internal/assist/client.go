// Package assist wraps the external generative-language API behind a narrow
// contract: the app sends a prompt (plus optional chat history) and receives
// either free text or a constrained JSON shape. Malformed or empty model
// output is always treated as "no suggestion" — never an error the user sees.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/travelflow/tripflow/internal/observability"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "mistralai/Mistral-7B-Instruct-v0.3"

// Client calls a hosted text-generation model over HTTP.
// A client with an empty API key is valid: every call returns the zero
// result, so the app works fully without the assistant.
type Client struct {
	base   string
	apiKey string
	model  string
	hc     *http.Client
}

// New builds a Client. base "" uses the hosted inference endpoint; model ""
// uses DefaultModel.
func New(base, apiKey, model string) *Client {
	if base == "" {
		base = "https://api-inference.huggingface.co"
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		base:   base,
		apiKey: apiKey,
		model:  model,
		hc:     &http.Client{Timeout: 60 * time.Second},
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool { return c.apiKey != "" }

type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
}

type generateParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type generateResponse []struct {
	GeneratedText string `json:"generated_text"`
}

// generate sends one prompt and returns the raw model text. An unconfigured
// client returns "" without a network call.
func (c *Client) generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if c.apiKey == "" {
		return "", nil
	}

	body, err := json.Marshal(generateRequest{
		Inputs: prompt,
		Parameters: generateParameters{
			MaxNewTokens:   maxTokens,
			Temperature:    0.6,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s", c.base, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("assist", "error", time.Since(start))
		return "", fmt.Errorf("assist.Client.generate: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		observability.ObserveExternal("assist", "error", time.Since(start))
		return "", fmt.Errorf("assist.Client.generate: status %d: %s", resp.StatusCode, truncate(raw, 200))
	}
	observability.ObserveExternal("assist", "ok", time.Since(start))

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil || len(out) == 0 {
		return "", nil // malformed model output is "no suggestion"
	}
	return strings.TrimSpace(out[0].GeneratedText), nil
}

// parseJSON extracts the first JSON value of the expected shape from model
// text. Models often wrap JSON in prose or code fences; everything before
// the first bracket and after the matching close is discarded. Returns false
// when no usable JSON is present.
func parseJSON(text string, dst any) bool {
	if text == "" {
		return false
	}
	start := strings.IndexAny(text, "[{")
	if start < 0 {
		return false
	}
	open := text[start]
	closer := byte(']')
	if open == '{' {
		closer = '}'
	}
	end := strings.LastIndexByte(text, closer)
	if end <= start {
		return false
	}
	return json.Unmarshal([]byte(text[start:end+1]), dst) == nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
