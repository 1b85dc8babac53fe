// Package api is the typed client for the booking backend's REST surface.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"glowbook/internal/common/errors"
	commonhttp "glowbook/internal/common/http"
	"glowbook/internal/common/logger"
	"glowbook/internal/common/metrics"
	"glowbook/internal/common/observability"
)

// TokenSource supplies the bearer token attached to authenticated requests.
// An empty string means the request goes out anonymously.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-token TokenSource, mostly for tests.
type StaticToken string

func (s StaticToken) Token() string { return string(s) }

// Client talks to the booking backend.
type Client struct {
	baseURL string
	http    *commonhttp.Client
	tokens  TokenSource
	obs     *observability.Observability
	log     logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, obs *observability.Observability, log logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    commonhttp.NewClient(timeout),
		tokens:  tokens,
		obs:     obs,
		log:     log,
	}
}

// errorEnvelope is the backend's failure shape.
type errorEnvelope struct {
	Message string `json:"message"`
}

// doJSON issues a JSON request against endpoint and decodes the response into
// out. Backend rejections come back as conflict errors carrying the backend's
// message verbatim.
func (c *Client) doJSON(ctx context.Context, method, endpoint string, body, out interface{}) error {
	req, err := commonhttp.NewJSONRequest(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return errors.NewTransportError(err)
	}
	return c.do(req, endpoint, out)
}

// do sends a prepared request. Callers that need a custom body (multipart
// uploads) build the request themselves and still get the shared auth,
// tracing and error handling.
func (c *Client) do(req *http.Request, endpoint string, out interface{}) error {
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	ctx, span := c.obs.StartSpan(req.Context(), "api."+req.Method, endpoint)
	defer span.End()
	req = req.WithContext(ctx)

	metrics.APIRequestsTotal.WithLabelValues(endpoint, req.Method).Inc()
	start := time.Now()

	resp, err := c.http.Do(req)
	metrics.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequestFailures.WithLabelValues(endpoint, string(errors.ClassTransport)).Inc()
		c.log.WithError(err).Error("request failed", map[string]interface{}{
			"endpoint": endpoint,
			"method":   req.Method,
		})
		return errors.NewTransportError(err)
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)

		var envelope errorEnvelope
		_ = json.Unmarshal(raw, &envelope)

		stdErr := errors.FromStatus(resp.StatusCode, envelope.Message)
		metrics.APIRequestFailures.WithLabelValues(endpoint, string(stdErr.Class)).Inc()
		c.log.Warn("backend rejected request", map[string]interface{}{
			"endpoint": endpoint,
			"status":   resp.StatusCode,
			"message":  envelope.Message,
		})
		return stdErr
	}

	if err := commonhttp.DecodeJSON(resp, out); err != nil {
		return errors.NewTransportError(err)
	}
	return nil
}

func appointmentPath(id, suffix string) string {
	return fmt.Sprintf("/appointments/%s%s", id, suffix)
}
