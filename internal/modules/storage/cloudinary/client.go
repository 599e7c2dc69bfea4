// Package cloudinary implements the image host against Cloudinary's
// signed upload API.
package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/config"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/http_client"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/logs"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/tools"
	jsoniter "github.com/json-iterator/go"
)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

type Client struct {
	baseURL   string
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
	client    *http_client.HttpClient
	now       func() time.Time
}

func NewClient(cfg config.Cloudinary) *Client {
	return &Client{
		baseURL:   defaultBaseURL,
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		folder:    cfg.Folder,
		client:    http_client.NewWithTimeout(2 * time.Minute),
		now:       time.Now,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Upload sends the bytes as a base64 data URI and returns secure_url.
func (c *Client) Upload(ctx context.Context, b []byte) (string, error) {
	timestamp := fmt.Sprintf("%d", c.now().Unix())
	form := url.Values{}
	form.Set("file", "data:"+tools.DetectImageType(b).MimeType()+";base64,"+base64.StdEncoding.EncodeToString(b))
	form.Set("api_key", c.apiKey)
	form.Set("timestamp", timestamp)
	if c.folder != "" {
		form.Set("folder", c.folder)
	}
	form.Set("signature", c.signature(timestamp))

	req, err := c.client.NewRequest(
		http.MethodPost,
		tools.FullURL(c.baseURL, c.cloudName+"/image/upload"),
		http_client.WithHeader("Content-Type", "application/x-www-form-urlencoded"),
		http_client.WithBody(strings.NewReader(form.Encode())),
		http_client.WithContext(ctx),
	)
	if err != nil {
		return "", err
	}
	reqAt := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	logs.Logger.Info().
		Str("host", "cloudinary").
		Int("status_code", resp.StatusCode).
		Dur("req_consume_ms", time.Since(reqAt)).
		Msg("upload request")
	var wire uploadResponse
	err = jsoniter.Unmarshal(respBody, &wire)
	if err != nil {
		return "", fmt.Errorf("upload response parse: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		if wire.Error != nil {
			return "", fmt.Errorf("upload rejected: %s", wire.Error.Message)
		}
		return "", fmt.Errorf("upload rejected: status %d", resp.StatusCode)
	}
	if wire.SecureURL == "" {
		return "", fmt.Errorf("upload response missing secure_url")
	}
	return wire.SecureURL, nil
}

// signature is SHA1 over the sorted non-file params plus the api secret,
// per Cloudinary's signed upload scheme.
func (c *Client) signature(timestamp string) string {
	params := []string{}
	if c.folder != "" {
		params = append(params, "folder="+c.folder)
	}
	params = append(params, "timestamp="+timestamp)
	toSign := strings.Join(params, "&") + c.apiSecret
	sum := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(sum[:])
}
