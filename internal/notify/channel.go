package notify

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"

	"glowbook/internal/common/logger"
	"glowbook/internal/common/metrics"
)

// Channel maintains the websocket connection to the push endpoint. It
// reconnects with exponential backoff and re-authenticates on every
// (re)connect, since the backend binds the socket to a user only after the
// authenticate frame.
type Channel struct {
	url    string
	userID string
	log    logger.Logger

	events chan Event

	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
	cancel context.CancelFunc
}

type authFrame struct {
	Event   string `json:"event"`
	Payload string `json:"payload"`
}

func NewChannel(url, userID string, log logger.Logger) *Channel {
	return &Channel{
		url:    url,
		userID: userID,
		log:    log,
		events: make(chan Event, 64),
	}
}

// Events delivers decoded push events. The channel closes when Close is
// called.
func (c *Channel) Events() <-chan Event { return c.events }

// Run connects and pumps events until ctx is cancelled or Close is called.
func (c *Channel) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()

	defer close(c.events)

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 0 // keep trying until cancelled
	policy.MaxInterval = 30 * time.Second

	for {
		if ctx.Err() != nil {
			return
		}

		conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
		if err != nil {
			metrics.PushReconnects.Inc()
			if !c.waitRetry(ctx, policy, err, "push connect failed") {
				return
			}
			continue
		}

		if err := c.authenticate(conn); err != nil {
			conn.Close()
			metrics.PushReconnects.Inc()
			if !c.waitRetry(ctx, policy, err, "push authenticate failed") {
				return
			}
			continue
		}

		policy.Reset()
		c.setConn(conn)
		c.log.Info("push channel connected", map[string]interface{}{"user_id": c.userID})

		c.readLoop(ctx, conn)
		c.setConn(nil)

		if ctx.Err() != nil || c.isClosed() {
			return
		}
		metrics.PushReconnects.Inc()
	}
}

func (c *Channel) authenticate(conn *websocket.Conn) error {
	return conn.WriteJSON(authFrame{Event: "authenticate", Payload: c.userID})
}

// waitRetry sleeps for the policy's next interval. It returns false when ctx
// is cancelled during the wait.
func (c *Channel) waitRetry(ctx context.Context, policy backoff.BackOff, err error, msg string) bool {
	wait := policy.NextBackOff()
	c.log.WithError(err).Warn(msg, map[string]interface{}{
		"retry_in": wait.String(),
	})
	select {
	case <-ctx.Done():
		return false
	case <-time.After(wait):
		return true
	}
}

func (c *Channel) readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			conn.Close()
			return
		}

		event, err := ParseEvent(raw)
		if err != nil {
			c.log.WithError(err).Warn("dropping malformed push frame", nil)
			continue
		}
		if event == nil {
			continue
		}

		select {
		case c.events <- *event:
		case <-ctx.Done():
			conn.Close()
			return
		}
	}
}

func (c *Channel) setConn(conn *websocket.Conn) {
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
}

func (c *Channel) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Close tears the connection down and stops reconnecting.
func (c *Channel) Close() {
	c.mu.Lock()
	c.closed = true
	if c.cancel != nil {
		c.cancel()
	}
	if c.conn != nil {
		_ = c.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		c.conn.Close()
	}
	c.mu.Unlock()
}
