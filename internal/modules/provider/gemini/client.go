package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/http_client"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/logs"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/provider"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/tools"
	jsoniter "github.com/json-iterator/go"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ErrCall covers transport failures and non-2xx provider answers.
var ErrCall = errors.New("provider call failed")

type Client struct {
	baseURL string
	model   string
	apiKey  string
	client  *http_client.HttpClient
}

func NewClient(baseURL, model, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		model:   model,
		apiKey:  apiKey,
		// Image generation can take well over a minute.
		client: http_client.NewWithTimeout(6 * time.Minute),
	}
}

// Generate sends the prompt with TEXT+IMAGE response modalities and
// returns the response parts in provider order. The caller decides what
// to do with them; see provider.ExtractImage.
func (c *Client) Generate(ctx context.Context, prompt string) ([]provider.Part, error) {
	body := generateContentRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	}
	req, err := c.client.NewRequest(
		http.MethodPost,
		tools.FullURL(c.baseURL, fmt.Sprintf("models/%s:generateContent", c.model)),
		http_client.WithHeader("Content-Type", "application/json"),
		http_client.WithHeader("x-goog-api-key", c.apiKey),
		http_client.WithBody(body),
		http_client.WithContext(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCall, err)
	}
	reqAt := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCall, err)
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCall, err)
	}
	logs.Logger.Info().
		Str("model", c.model).
		Int("status_code", resp.StatusCode).
		Dur("req_consume_ms", time.Since(reqAt)).
		Msg("generation request")
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrCall, resp.StatusCode, truncate(respBody, 512))
	}
	var wire generateContentResponse
	err = jsoniter.Unmarshal(respBody, &wire)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCall, err)
	}
	if wire.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrCall, wire.Error.Message)
	}
	if len(wire.Candidates) == 0 || wire.Candidates[0].Content == nil || len(wire.Candidates[0].Content.Parts) == 0 {
		return nil, provider.ErrEmptyResponse
	}
	ret := make([]provider.Part, 0, len(wire.Candidates[0].Content.Parts))
	for _, p := range wire.Candidates[0].Content.Parts {
		out := provider.Part{Text: p.Text}
		if p.InlineData != nil {
			out.InlineData = &provider.Blob{MimeType: p.InlineData.MimeType, Data: p.InlineData.Data}
		}
		ret = append(ret, out)
	}
	return ret, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
