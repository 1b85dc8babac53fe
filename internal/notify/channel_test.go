package notify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"glowbook/internal/common/logger"
)

func TestChannelAuthenticatesAndDeliversEvents(t *testing.T) {
	upgrader := websocket.Upgrader{}
	authFrames := make(chan authFrame, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var auth authFrame
		if err := conn.ReadJSON(&auth); err != nil {
			return
		}
		authFrames <- auth

		_ = conn.WriteMessage(websocket.TextMessage,
			[]byte(`{"event":"unread_count","payload":4}`))
		_ = conn.WriteMessage(websocket.TextMessage,
			[]byte(`{"event":"new_notification","payload":{"id":"n1","type":"REVIEW_RECEIVED","message":"new review"}}`))

		// Hold the connection open until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	channel := NewChannel(url, "user-1", logger.NewNoOpLogger())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan struct{})
	go func() {
		defer close(done)
		channel.Run(ctx)
	}()

	select {
	case auth := <-authFrames:
		assert.Equal(t, "authenticate", auth.Event)
		assert.Equal(t, "user-1", auth.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("no authenticate frame received")
	}

	var got []Event
	for len(got) < 2 {
		select {
		case event := <-channel.Events():
			got = append(got, event)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %d events", len(got))
		}
	}
	assert.Equal(t, EventUnreadCount, got[0].Kind)
	assert.Equal(t, 4, got[0].UnreadCount)
	assert.Equal(t, EventNewNotification, got[1].Kind)
	assert.Equal(t, "n1", got[1].Notification.ID)

	channel.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("channel did not shut down")
	}
}

func TestWaitRetrySleepsForThePolicyInterval(t *testing.T) {
	channel := NewChannel("ws://unused", "user-1", logger.NewNoOpLogger())
	rejected := errors.New("authenticate rejected")

	start := time.Now()
	ok := channel.waitRetry(context.Background(), backoff.NewConstantBackOff(50*time.Millisecond), rejected, "retrying")
	assert.True(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestWaitRetryStopsOnCancelledContext(t *testing.T) {
	channel := NewChannel("ws://unused", "user-1", logger.NewNoOpLogger())
	rejected := errors.New("authenticate rejected")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ok := channel.waitRetry(ctx, backoff.NewConstantBackOff(time.Hour), rejected, "retrying")
	assert.False(t, ok)
}
