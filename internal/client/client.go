package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goto/backoffice/pkg/apierror"
	"github.com/goto/backoffice/pkg/statsd"
	"github.com/goto/salt/log"
	"github.com/oklog/ulid/v2"
)

const (
	// RequestIDHeaderKey is attached to every outgoing request that does not carry one.
	RequestIDHeaderKey = "X-Request-Id"

	contentTypeJSON = "application/json"
)

type Config struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url" default:"http://localhost:3001"`
	// Timeout bounds a whole request. Zero leaves requests unbounded.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" default:"0s"`
}

// Client executes JSON requests against one base URL and maps every failure
// into an *apierror.Error.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     log.Logger
	statsd     *statsd.Reporter
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(logger log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithStatsD(reporter *statsd.Reporter) Option {
	return func(c *Client) {
		c.statsd = reporter
	}
}

func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     log.NewNoop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestOptions overrides the method, body and headers of one request.
type RequestOptions struct {
	Method string
	Body   []byte
	Header http.Header
}

// Execute sends the request and decodes a successful JSON response into out.
// A nil out discards the body.
func (c *Client) Execute(ctx context.Context, endpoint string, opts *RequestOptions, out interface{}) (err error) {
	if opts == nil {
		opts = &RequestOptions{}
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	status := 0
	start := time.Now()
	defer func() {
		c.statsd.Timing("client.request", time.Since(start)).
			Tag("method", method).
			Tag("status", strconv.Itoa(status)).
			Outcome(err).
			Publish()
	}()

	var body io.Reader
	if opts.Body != nil {
		body = bytes.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return apierror.Network(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)
	for key, values := range opts.Header {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if req.Header.Get(RequestIDHeaderKey) == "" {
		req.Header.Set(RequestIDHeaderKey, ulid.Make().String())
	}

	c.logger.Debug("sending request", "method", method, "url", req.URL.String(), "request_id", req.Header.Get(RequestIDHeaderKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apierror.Network(unwrapURLError(err))
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierror.Network(fmt.Errorf("read response: %w", err))
	}

	c.logger.Debug("received response", "method", method, "url", req.URL.String(), "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody apierror.Body
		if err := json.Unmarshal(respBody, &errBody); err != nil {
			errBody = apierror.Body{}
		}
		return apierror.FromResponse(resp.StatusCode, http.StatusText(resp.StatusCode), errBody)
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return apierror.Network(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// Path appends an encoded query string to endpoint.
func Path(endpoint string, q url.Values) string {
	if len(q) == 0 {
		return endpoint
	}
	return endpoint + "?" + q.Encode()
}

func unwrapURLError(err error) error {
	if ue, ok := err.(*url.Error); ok && ue.Err != nil {
		return ue.Err
	}
	return err
}
