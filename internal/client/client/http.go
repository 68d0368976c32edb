package client

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

	"github.com/dmitrijs2005/interviewprep/internal/client/models"
	"github.com/dmitrijs2005/interviewprep/internal/common"
	"github.com/dmitrijs2005/interviewprep/internal/netx"
)

const (
	pathProfile = "/profile"
	pathImage   = "/image"
	pathHealth  = "/health"

	maxErrorBody = 64 << 10
)

// HTTPClient talks to the profile backend over HTTP/JSON.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

// NewHTTPClient returns a client for baseURL (e.g. "http://127.0.0.1:8080").
// Every request is bounded by timeout; token may be nil.
func NewHTTPClient(baseURL string, timeout time.Duration, token TokenSource) *HTTPClient {
	if token == nil {
		token = func(context.Context) string { return "" }
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
	}
}

var _ ProfileAPI = (*HTTPClient)(nil)

func (c *HTTPClient) GetProfile(ctx context.Context) (models.Profile, error) {
	var p models.Profile
	if err := c.doJSON(ctx, http.MethodGet, pathProfile, nil, &p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, in models.ProfileUpdate) (models.Profile, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return models.Profile{}, fmt.Errorf("encode profile update: %w", err)
	}

	var p models.Profile
	if err := c.doJSON(ctx, http.MethodPut, pathProfile, bytes.NewReader(body), &p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

func (c *HTTPClient) UploadImage(ctx context.Context, img models.ImageSelection) (string, error) {
	body, contentType, err := netx.MultipartFile(common.ImageFormField, img.FileName, img.ContentType, img.Data)
	if err != nil {
		return "", err
	}

	req, err := c.newRequest(ctx, http.MethodPost, pathImage, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)

	var out models.ImageUploadResponse
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	if out.ImageURL == "" {
		return "", &APIError{StatusCode: http.StatusOK, Message: "upload response has no imageUrl"}
	}
	return out.ImageURL, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, pathHealth, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if token := c.token(ctx); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	return req, nil
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapStatus(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func mapStatus(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(b, &payload)

	apiErr := &APIError{StatusCode: resp.StatusCode, Message: payload.Message}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrUnauthorized, apiErr)
	case resp.StatusCode == http.StatusBadGateway,
		resp.StatusCode == http.StatusServiceUnavailable,
		resp.StatusCode == http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %w", ErrUnavailable, apiErr)
	default:
		return apiErr
	}
}
