package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"
)

// ErrRejected indicates the image host refused the payload (bad data URI,
// unsupported format, size limit).
var ErrRejected = errors.New("image rejected by host")

// UploadResult is the hosted image descriptor returned after upload.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// Client exposes operations against the external image hosting service.
type Client interface {
	Upload(ctx context.Context, dataURI, folder string) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

// HTTPClient implements Client via HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

type uploadRequest struct {
	Data   string `json:"data"`
	Folder string `json:"folder,omitempty"`
}

// NewHTTPClient creates an image host client with default timeout.
func NewHTTPClient(baseURL, apiKey string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse image host url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("image host url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		apiKey:  apiKey,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Upload sends a base64 data URI to the host and returns the public URL.
func (c *HTTPClient) Upload(ctx context.Context, dataURI, folder string) (*UploadResult, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/upload")

	payload, err := json.Marshal(uploadRequest{Data: dataURI, Folder: folder})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var result UploadResult
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, err
		}
		return &result, nil
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusRequestEntityTooLarge:
		return nil, ErrRejected
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("image upload failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("image host error: %s", resp.Status)
	}
}

// Delete removes a previously uploaded image by its public id.
func (c *HTTPClient) Delete(ctx context.Context, publicID string) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/images/", publicID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint.String(), nil)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("image delete failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return fmt.Errorf("image host error: %s", resp.Status)
	}
}
