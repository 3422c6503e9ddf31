package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yashwakde/promptvault/internal/client/models"
	"github.com/yashwakde/promptvault/internal/client/payload"
	"github.com/yashwakde/promptvault/internal/common"
)

// CredentialSource yields the current bearer credential, or "" when none
// is stored. It is consulted on every request, never cached, so a
// credential rotated by login/verify is picked up on the very next call.
type CredentialSource func() string

// HTTPClient is the concrete Client over the backend's REST endpoints.
// One instance is constructed at process start and shared.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	credential CredentialSource
}

func NewHTTPClient(baseURL string, timeout time.Duration, credential CredentialSource) *HTTPClient {
	if credential == nil {
		credential = func() string { return "" }
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		credential: credential,
	}
}

// do performs one JSON round trip. Network failures come back wrapped in
// ErrUnavailable; non-2xx responses come back as *ServerError with the
// decoded body. The response body is returned raw for the caller to
// normalize.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if tok := c.credential(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := payload.FromJSON(respBody).(map[string]any)
		if errBody == nil && len(respBody) > 0 {
			errBody = map[string]any{"message": strings.TrimSpace(string(respBody))}
		}
		return nil, newServerError(resp.StatusCode, errBody)
	}

	return respBody, nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (any, error) {
	body, err := c.do(ctx, http.MethodPost, "/user/register", req)
	if err != nil {
		return nil, err
	}
	return payload.FromJSON(body), nil
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, req VerifyRequest) (any, error) {
	body, err := c.do(ctx, http.MethodPost, "/user/verify", req)
	if err != nil {
		return nil, err
	}
	return payload.FromJSON(body), nil
}

func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) (any, error) {
	body, err := c.do(ctx, http.MethodPost, "/user/login", req)
	if err != nil {
		return nil, err
	}
	return payload.FromJSON(body), nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/user/logout", nil)
	return err
}

func (c *HTTPClient) FetchProfile(ctx context.Context) (any, error) {
	body, err := c.do(ctx, http.MethodGet, "/user/profile", nil)
	if err != nil {
		return nil, err
	}
	return payload.FromJSON(body), nil
}

func (c *HTTPClient) CreatePrompt(ctx context.Context, req CreatePromptRequest) (any, error) {
	body, err := c.do(ctx, http.MethodPost, "/prompt/createprompt", req)
	if err != nil {
		return nil, err
	}
	return payload.FromJSON(body), nil
}

func (c *HTTPClient) AllPrompts(ctx context.Context) ([]models.Prompt, error) {
	body, err := c.do(ctx, http.MethodGet, "/prompt/allprompts", nil)
	if err != nil {
		return nil, err
	}
	return payload.List(payload.FromJSON(body)), nil
}

func (c *HTTPClient) MyPrompts(ctx context.Context, userID string) ([]models.Prompt, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: myprompts requires a user id", common.ErrValidation)
	}
	body, err := c.do(ctx, http.MethodGet, "/prompt/myprompts/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, err
	}
	return payload.List(payload.FromJSON(body)), nil
}

// Close releases idle transport connections.
func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
