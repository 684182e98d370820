package variables

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"go.uber.org/zap"

	"vardeck/internal/debug"
	"vardeck/internal/domain"
	appErrors "vardeck/internal/errors"
)

// maxErrorBody bounds how much of an error response is kept for messages.
const maxErrorBody = 64 << 10

// HTTPOption customizes the HTTP client.
type HTTPOption func(*httpClient)

// WithAPIKey sends the key as a bearer token.
func WithAPIKey(key string) HTTPOption {
	return func(c *httpClient) {
		c.apiKey = strings.TrimSpace(key)
	}
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) HTTPOption {
	return func(c *httpClient) {
		if d > 0 {
			c.hc.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client (tests).
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(c *httpClient) {
		if hc != nil {
			c.hc = hc
		}
	}
}

// WithListLimit caps the number of variables returned by List.
func WithListLimit(n int) HTTPOption {
	return func(c *httpClient) {
		if n > 0 {
			c.listLimit = n
		}
	}
}

// httpClient talks to a Prefect-compatible variables REST API.
type httpClient struct {
	baseURL   string
	apiKey    string
	listLimit int
	hc        *http.Client
	log       *zap.Logger
}

// NewHTTPClient returns a Client for the API rooted at baseURL
// (for example http://127.0.0.1:4200/api).
func NewHTTPClient(baseURL string, opts ...HTTPOption) Client {
	hc := cleanhttp.DefaultPooledClient()
	c := &httpClient{
		baseURL:   strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		listLimit: 200,
		hc:        hc,
		log:       debug.L().Named("http"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiVariable is the wire shape of a variable.
type apiVariable struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Value   any       `json:"value"`
	Tags    []string  `json:"tags"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

func (v apiVariable) toDomain() domain.Variable {
	tags := v.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.Variable{
		ID:      v.ID,
		Name:    v.Name,
		Value:   v.Value,
		Tags:    tags,
		Created: v.Created,
		Updated: v.Updated,
	}
}

func (c *httpClient) Create(ctx context.Context, req domain.CreateRequest) (domain.Variable, error) {
	var out apiVariable
	if err := c.do(ctx, http.MethodPost, "/variables/", req, &out); err != nil {
		return domain.Variable{}, err
	}
	c.log.Debug("variable created", zap.String("id", out.ID), zap.String("name", out.Name))
	return out.toDomain(), nil
}

func (c *httpClient) List(ctx context.Context) ([]domain.Variable, error) {
	body := map[string]any{
		"sort":  "NAME_ASC",
		"limit": c.listLimit,
	}
	var out []apiVariable
	if err := c.do(ctx, http.MethodPost, "/variables/filter", body, &out); err != nil {
		return nil, err
	}
	vars := make([]domain.Variable, 0, len(out))
	for _, v := range out {
		vars = append(vars, v.toDomain())
	}
	return vars, nil
}

func (c *httpClient) do(ctx context.Context, method, path string, in, out any) error {
	if c.baseURL == "" {
		return appErrors.New(appErrors.CodeConfigurationError, "No API URL configured (set api.url)", nil)
	}
	url := c.baseURL + path

	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.hc.Do(httpReq)
	if err != nil {
		c.log.Debug("request failed", zap.String("method", method), zap.String("url", url), zap.Error(err))
		return transportError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	c.log.Debug("request done",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return classifyHTTPError(method, url, resp.StatusCode, body)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return appErrors.New(appErrors.CodeRemoteFailed, "Unexpected response from the variables API", err)
	}
	return nil
}
