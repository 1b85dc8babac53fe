package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowbook/internal/common/logger"
)

type fakeSender struct {
	sent    []SendRequest
	sendErr error
}

func (f *fakeSender) Send(ctx context.Context, to, subject, html string) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.sent = append(f.sent, SendRequest{To: to, Subject: subject, HTML: html})
	return "msg-123", nil
}

func newTestRouter(t *testing.T, sender Sender, limit int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	limiter := NewRateLimiter(client, limit, time.Minute)

	router := gin.New()
	NewHandler(sender, limiter, "shared-secret", logger.NewNoOpLogger()).Register(router)
	return router
}

func doSend(router *gin.Engine, secret string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/emails/send", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set("x-email-secret", secret)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validBody() SendRequest {
	return SendRequest{To: "a@b.com", Subject: "Welcome", HTML: "<p>hi</p>"}
}

func TestSendHappyPath(t *testing.T) {
	sender := &fakeSender{}
	router := newTestRouter(t, sender, 5)

	rec := doSend(router, "shared-secret", validBody())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "msg-123", resp["messageId"])
	require.Len(t, sender.sent, 1)
}

func TestSendRejectsWrongSecret(t *testing.T) {
	sender := &fakeSender{}
	router := newTestRouter(t, sender, 5)

	rec := doSend(router, "wrong", validBody())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, sender.sent)

	rec = doSend(router, "", validBody())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSendRejectsMissingFields(t *testing.T) {
	sender := &fakeSender{}
	router := newTestRouter(t, sender, 5)

	rec := doSend(router, "shared-secret", SendRequest{To: "a@b.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, sender.sent)
}

func TestSendRateLimitsPerRecipient(t *testing.T) {
	sender := &fakeSender{}
	router := newTestRouter(t, sender, 2)

	for i := 0; i < 2; i++ {
		rec := doSend(router, "shared-secret", validBody())
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doSend(router, "shared-secret", validBody())
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Len(t, sender.sent, 2)

	// A different recipient has its own window.
	other := validBody()
	other.To = "c@d.com"
	rec = doSend(router, "shared-secret", other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSendProviderFailure(t *testing.T) {
	sender := &fakeSender{sendErr: assert.AnError}
	router := newTestRouter(t, sender, 5)

	rec := doSend(router, "shared-secret", validBody())
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "email delivery failed", resp["message"])
}
