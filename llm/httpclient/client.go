package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/squee72564/provider-runtime/internal/log"
)

// RetryPolicy bounds Transport's retry behavior. BaseDelay is
// doubled (Multiplier) after each attempt, capped implicitly by MaxAttempts.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
}

// DefaultRetryPolicy is a conservative default backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: 200 * time.Millisecond, Multiplier: 2.0}
}

// Client performs HTTP calls on behalf of adapters, applying RetryPolicy to idempotent
// failure kinds. It never buffers a streaming body.
type Client struct {
	HTTP   *http.Client
	Retry  RetryPolicy
	Logger *log.Logger
}

// NewClient builds a Client with sane defaults, ready to have its HTTP/Retry/Logger
// fields overridden by the runtime builder.
func NewClient() *Client {
	return &Client{
		HTTP:   &http.Client{Timeout: 60 * time.Second},
		Retry:  DefaultRetryPolicy(),
		Logger: log.NewNop(),
	}
}

// Do issues req, retrying per c.Retry on connection errors, timeouts, 5xx, and 429. The
// final classified error surfaces unchanged; 4xx other than 429 are
// never retried and return immediately on the first attempt.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	var lastErr error

	attempts := c.Retry.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(float64(c.Retry.BaseDelay) * math.Pow(c.Retry.Multiplier, float64(attempt-1)))

			select {
			case <-ctx.Done():
				return nil, &transportError{kind: "cancelled", message: ctx.Err().Error()}
			case <-time.After(delay):
			}
		}

		resp, err := c.doOnce(ctx, req)
		if err == nil {
			c.Logger.Info(ctx, "httpclient: request completed",
				zap.String("request_id", req.RequestID),
				zap.Int("status", resp.StatusCode),
				zap.Int("attempt", attempt+1),
			)

			return resp, nil
		}

		lastErr = err

		var te *transportError
		if errors.As(err, &te) && te.retryable {
			c.Logger.Warn(ctx, "httpclient: retrying request",
				zap.String("request_id", req.RequestID),
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)

			continue
		}

		var se *statusError
		if errors.As(err, &se) && IsHTTPStatusCodeRetryable(se.statusCode) {
			c.Logger.Warn(ctx, "httpclient: retrying request",
				zap.String("request_id", req.RequestID),
				zap.Int("attempt", attempt+1),
				zap.Int("status", se.statusCode),
			)

			continue
		}

		break
	}

	return nil, lastErr
}

func (c *Client) doOnce(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return nil, &transportError{kind: "io", message: err.Error()}
	}

	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}

	for k, vs := range req.Headers {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	if req.Query != nil {
		httpReq.URL.RawQuery = req.Query.Encode()
	}

	applyAuth(httpReq, req.Auth)

	httpResp, err := c.HTTP.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &transportError{kind: "cancelled", message: ctx.Err().Error()}
		}

		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, &transportError{kind: "timeout", message: err.Error(), retryable: true}
		}

		return nil, &transportError{kind: "connect", message: err.Error(), retryable: true}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &transportError{kind: "io", message: err.Error()}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
		Request:    req,
	}

	if httpResp.StatusCode >= 400 {
		return resp, &statusError{statusCode: httpResp.StatusCode, body: body}
	}

	return resp, nil
}

func applyAuth(req *http.Request, auth *AuthConfig) {
	if auth == nil {
		return
	}

	switch auth.Type {
	case AuthTypeBearer:
		req.Header.Set("Authorization", "Bearer "+auth.APIKey)
	case AuthTypeAPIKey:
		req.Header.Set(auth.HeaderKey, auth.APIKey)
	}
}

// transportError is the internal classification handed back up to the adapter, which
// maps it onto llm.Transport{...}.
type transportError struct {
	kind      string
	message   string
	retryable bool
}

func (e *transportError) Error() string {
	return fmt.Sprintf("httpclient: %s: %s", e.kind, e.message)
}

func (e *transportError) Kind() string { return e.kind }

// statusError is the internal classification for a non-2xx HTTP response, handed back
// up to the adapter for mapping onto llm.ProviderProtocol / llm.CredentialsRejected.
type statusError struct {
	statusCode int
	body       []byte
}

func (e *statusError) Error() string {
	return fmt.Sprintf("httpclient: status %d", e.statusCode)
}

func (e *statusError) StatusCode() int { return e.statusCode }
func (e *statusError) Body() []byte    { return e.body }
