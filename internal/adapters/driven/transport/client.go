package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driven"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.APIClient = (*Client)(nil)

const (
	// HeaderRequestID carries the per-request correlation ID.
	HeaderRequestID = "X-Request-ID"

	// maxResponseBodyBytes bounds how much of a response body is read.
	maxResponseBodyBytes int64 = 32 << 20
)

// Config holds configuration for the admin API client.
type Config struct {
	// BaseURL is the single origin every path is relative to (required).
	BaseURL string

	// HTTPClient is the underlying client for both transports.
	// Each transport gets its own copy. Defaults to a client with no timeout:
	// callers bound calls with context deadlines.
	HTTPClient *http.Client

	// Headers are extra default headers for both transports.
	Headers map[string]string

	// Auth is registered on the authenticated transport, if set.
	Auth *AuthInterceptor

	// RequestHooks run on the authenticated transport, before Auth's request hook.
	RequestHooks []RequestHook

	// ResponseHooks run on the authenticated transport, after Auth's response hook.
	ResponseHooks []ResponseHook
}

// instance is one logical transport.
type instance struct {
	name          string
	http          *http.Client
	requestHooks  []RequestHook
	responseHooks []ResponseHook
}

// Client dispatches admin API calls over a public and an authenticated transport.
type Client struct {
	baseURL *url.URL
	headers map[string]string
	public  *instance
	authed  *instance
}

// NewClient creates a new admin API client.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("transport: base URL is required")
	}
	base, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("transport: invalid base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("transport: base URL must be absolute: %s", cfg.BaseURL)
	}

	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	publicHTTP := *cfg.HTTPClient
	authedHTTP := *cfg.HTTPClient

	headers := map[string]string{"Accept": contentTypeJSON}
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	authed := &instance{name: "authenticated", http: &authedHTTP}
	authed.requestHooks = append(authed.requestHooks, cfg.RequestHooks...)
	if cfg.Auth != nil {
		authed.requestHooks = append(authed.requestHooks, cfg.Auth.BeforeRequest)
		authed.responseHooks = append(authed.responseHooks, cfg.Auth.AfterResponse)
	}
	authed.responseHooks = append(authed.responseHooks, cfg.ResponseHooks...)

	return &Client{
		baseURL: base,
		headers: headers,
		public:  &instance{name: "public", http: &publicHTTP},
		authed:  authed,
	}, nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, cfg *driven.RequestConfig, useAuth bool) (*driven.Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, cfg, useAuth)
}

// Post issues a POST request.
func (c *Client) Post(
	ctx context.Context, path string, body any, cfg *driven.RequestConfig, useAuth bool,
) (*driven.Response, error) {
	return c.do(ctx, http.MethodPost, path, body, cfg, useAuth)
}

// Put issues a PUT request.
func (c *Client) Put(
	ctx context.Context, path string, body any, cfg *driven.RequestConfig, useAuth bool,
) (*driven.Response, error) {
	return c.do(ctx, http.MethodPut, path, body, cfg, useAuth)
}

// Patch issues a PATCH request.
func (c *Client) Patch(
	ctx context.Context, path string, body any, cfg *driven.RequestConfig, useAuth bool,
) (*driven.Response, error) {
	return c.do(ctx, http.MethodPatch, path, body, cfg, useAuth)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, cfg *driven.RequestConfig, useAuth bool) (*driven.Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, cfg, useAuth)
}

// do runs one call through the selected transport: request hooks, dispatch,
// then response hooks, all before returning to the caller.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	body any,
	cfg *driven.RequestConfig,
	useAuth bool,
) (*driven.Response, error) {
	inst := c.public
	if useAuth {
		inst = c.authed
	}

	req, err := c.newRequest(ctx, method, path, body, cfg)
	if err != nil {
		return nil, err
	}

	log := logger.WithRequestID(req.Header.Get(HeaderRequestID)).WithField("transport", inst.name)
	log.Debugf("%s %s", method, req.URL.Redacted())

	for _, hook := range inst.requestHooks {
		if err := hook(req); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	resp, err := c.send(inst, req)
	if err != nil {
		log.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Debugf("%s %s failed: %v", method, req.URL.Path, err)
	} else {
		log.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Debugf("%s %s -> %d", method, req.URL.Path, resp.StatusCode)
	}

	for _, hook := range inst.responseHooks {
		err = hook(req, resp, err)
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// send performs the HTTP exchange and converts non-2xx statuses into *APIError.
func (c *Client) send(inst *instance, req *http.Request) (*driven.Response, error) {
	httpResp, err := inst.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, &APIError{
			Method:     req.Method,
			URL:        req.URL.Redacted(),
			StatusCode: httpResp.StatusCode,
			Body:       data,
		}
	}

	return &driven.Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       data,
	}, nil
}

// newRequest builds the request: URL, encoded body, then headers in order
// defaults, body default, caller overrides, forced multipart type.
func (c *Client) newRequest(
	ctx context.Context,
	method, path string,
	body any,
	cfg *driven.RequestConfig,
) (*http.Request, error) {
	target, err := c.resolve(path, cfg)
	if err != nil {
		return nil, err
	}

	p, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), p.reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if p.contentType != "" {
		req.Header.Set("Content-Type", p.contentType)
	}
	if cfg != nil {
		for k, v := range cfg.Headers {
			if strings.TrimSpace(k) == "" {
				continue
			}
			req.Header.Set(k, v)
		}
	}
	if p.force {
		req.Header.Set("Content-Type", p.contentType)
	}
	if p.binary && isJSONContentType(req.Header.Get("Content-Type")) {
		req.Header.Set("Content-Type", contentTypeBinary)
	}
	if req.Header.Get(HeaderRequestID) == "" {
		req.Header.Set(HeaderRequestID, uuid.NewString())
	}

	return req, nil
}

// resolve joins path onto the base URL and merges query parameters.
// Absolute URLs are used as-is.
func (c *Client) resolve(path string, cfg *driven.RequestConfig) (*url.URL, error) {
	var target *url.URL
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		u, err := url.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("invalid request URL: %w", err)
		}
		target = u
	} else {
		rel, err := url.Parse(strings.TrimLeft(path, "/"))
		if err != nil {
			return nil, fmt.Errorf("invalid request path: %w", err)
		}
		u := *c.baseURL
		u.Path = strings.TrimRight(c.baseURL.Path, "/") + "/" + rel.Path
		// Keep escaped segments (e.g. %2F inside an id) intact.
		u.RawPath = strings.TrimRight(c.baseURL.EscapedPath(), "/") + "/" + rel.EscapedPath()
		u.RawQuery = rel.RawQuery
		target = &u
	}

	if cfg != nil && len(cfg.Query) > 0 {
		q := target.Query()
		for k, v := range cfg.Query {
			q.Set(k, v)
		}
		target.RawQuery = q.Encode()
	}
	return target, nil
}
