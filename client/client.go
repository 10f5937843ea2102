// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

// Package client implements the Telegram Bot API v5.3 client: typed methods
// over a single resty request path, with JSON bodies for plain calls and
// multipart form encoding when a request carries file uploads.
package client

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sgerasimov/go-tgbot/internal/logger"
	"github.com/sgerasimov/go-tgbot/internal/validators"
	"github.com/sgerasimov/go-tgbot/models"
)

// DefaultEndpoint is the cloud Bot API server. Override with WithEndpoint
// to target a local Bot API server.
const DefaultEndpoint = "https://api.telegram.org"

const defaultTimeout = 30 * time.Second

// Bot tokens look like "123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11".
var botTokenRe = regexp.MustCompile(`^\d+:[A-Za-z0-9_-]{30,}$`)

// Client talks to the Bot API. All methods are safe for concurrent use.
type Client struct {
	token    string
	endpoint string

	rc        *resty.Client
	log       *logger.Logger
	validator validators.Validator

	timeout      time.Duration
	floodRetries int
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint points the client at a different API server, e.g. a local
// Bot API instance.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = strings.TrimRight(endpoint, "/") }
}

// WithTimeout sets the per-request timeout, applied as a context deadline.
// Long-polling getUpdates calls extend it by the polling timeout, so an
// idle poll never races the deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger attaches a logger. The default discards all output.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithHTTPClient replaces the underlying HTTP transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.rc = resty.NewWithClient(hc) }
}

// WithFloodControlRetries makes the client wait and retry up to n times
// when the API answers 429 with a retry_after hint.
func WithFloodControlRetries(n int) Option {
	return func(c *Client) { c.floodRetries = n }
}

// New validates the bot token and builds a Client.
func New(token string, opts ...Option) (*Client, error) {
	if !botTokenRe.MatchString(token) {
		return nil, ErrInvalidToken
	}

	c := &Client{
		token:    token,
		endpoint: DefaultEndpoint,
		rc:       resty.New(),
		log:      logger.Nop(),
		timeout:  defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.rc.SetBaseURL(c.endpoint)
	c.validator = validators.NewParamsValidator()

	if c.floodRetries > 0 {
		c.rc.SetRetryCount(c.floodRetries)
		c.rc.AddRetryCondition(func(r *resty.Response, err error) bool {
			return err == nil && r.StatusCode() == http.StatusTooManyRequests
		})
		c.rc.SetRetryAfter(func(_ *resty.Client, r *resty.Response) (time.Duration, error) {
			var env models.Response
			if uerr := models.Unmarshal(r.Body(), &env); uerr == nil && env.Parameters != nil && env.Parameters.RetryAfter > 0 {
				return time.Duration(env.Parameters.RetryAfter) * time.Second, nil
			}
			return time.Second, nil
		})
	}

	return c, nil
}

// Token returns the bot token the client was built with.
func (c *Client) Token() string { return c.token }

// TokenSecret returns the part of the token after the colon. It serves as
// the webhook path segment, the recommended way to make webhook URLs
// unguessable.
func (c *Client) TokenSecret() string {
	_, secret, _ := strings.Cut(c.token, ":")
	return secret
}

// FileURL builds the download link for a File returned by GetFile. The link
// is valid for at least one hour.
func (c *Client) FileURL(file *models.File) string {
	return fmt.Sprintf("%s/file/bot%s/%s", c.endpoint, c.token, file.FilePath)
}

// invoke performs one Bot API call and decodes the result envelope into
// out. out may be nil when the caller discards the result.
func (c *Client) invoke(ctx context.Context, method string, params, out any) error {
	if params != nil {
		if err := c.validator.Validate(ctx, params); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	if timeout := c.callTimeout(params); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req := c.rc.R().SetContext(ctx)

	if up, ok := params.(models.Uploader); ok && params != nil {
		files := up.UploadFiles()
		if len(files) > 0 {
			form, err := formFields(params)
			if err != nil {
				return fmt.Errorf("%s encode form: %w", method, err)
			}
			req.SetFormData(form)
			for name, f := range files {
				req.SetFileReader(name, f.Name, f.Reader)
			}
			return c.send(req, method, out)
		}
	}

	if params != nil {
		body, err := models.Marshal(params)
		if err != nil {
			return fmt.Errorf("%s encode body: %w", method, err)
		}
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	return c.send(req, method, out)
}

// callTimeout returns the deadline for one call. getUpdates holds the
// connection open for its poll window, so the window is added on top of the
// base timeout.
func (c *Client) callTimeout(params any) time.Duration {
	if c.timeout <= 0 {
		return 0
	}
	if p, ok := params.(*models.GetUpdatesParams); ok && p != nil && p.Timeout > 0 {
		return c.timeout + time.Duration(p.Timeout)*time.Second
	}
	return c.timeout
}

func (c *Client) send(req *resty.Request, method string, out any) error {
	start := time.Now()
	resp, err := req.Post("/bot" + c.token + "/" + method)
	if err != nil {
		return fmt.Errorf("%s request: %w", method, err)
	}

	c.log.Debug().
		Str("method", method).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("bot api call")

	return decodeResponse(method, resp, out)
}

// decodeResponse unwraps the ok/result envelope, mapping failures to
// *APIError.
func decodeResponse(method string, resp *resty.Response, out any) error {
	var env models.Response
	if err := models.Unmarshal(resp.Body(), &env); err != nil {
		if resp.IsError() {
			// Non-JSON error pages from proxies in front of the API.
			return &APIError{
				Method:      method,
				Code:        resp.StatusCode(),
				Description: http.StatusText(resp.StatusCode()),
			}
		}
		return fmt.Errorf("%s decode response: %w", method, err)
	}

	if !env.OK {
		return &APIError{
			Method:      method,
			Code:        env.ErrorCode,
			Description: env.Description,
			Parameters:  env.Parameters,
		}
	}

	if out == nil || len(env.Result) == 0 {
		return nil
	}
	if err := models.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("%s decode result: %w", method, err)
	}
	return nil
}

// formFields flattens params into multipart form fields: strings go out
// bare, everything else as its JSON serialization, matching how the Bot API
// reads nested objects from form data.
func formFields(params any) (map[string]string, error) {
	body, err := models.Marshal(params)
	if err != nil {
		return nil, err
	}

	var raw map[string]models.RawResult
	if err := models.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	form := make(map[string]string, len(raw))
	for k, v := range raw {
		if len(v) == 0 || string(v) == "null" {
			continue
		}
		if v[0] == '"' {
			var s string
			if err := models.Unmarshal(v, &s); err != nil {
				return nil, err
			}
			form[k] = s
			continue
		}
		form[k] = string(v)
	}
	return form, nil
}

// invokeTyped is the generic front of invoke for methods with a concrete
// result type.
func invokeTyped[T any](ctx context.Context, c *Client, method string, params any) (T, error) {
	var out T
	if err := c.invoke(ctx, method, params, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// invokeMessage decodes the Message result of send and edit methods. Edit
// methods applied to inline messages answer with "true" instead of a
// Message object; the message is nil in that case.
func invokeMessage(ctx context.Context, c *Client, method string, params any) (*models.Message, error) {
	var raw models.RawResult
	if err := c.invoke(ctx, method, params, &raw); err != nil {
		return nil, err
	}
	if string(raw) == "true" {
		return nil, nil
	}
	var msg models.Message
	if err := models.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("%s decode message: %w", method, err)
	}
	return &msg, nil
}
