package relay

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glowbook/internal/common/logger"
	"glowbook/internal/common/metrics"
)

// SendRequest is the relay's only request body.
type SendRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Handler wires the send endpoint.
type Handler struct {
	sender  Sender
	limiter *RateLimiter
	secret  string
	log     logger.Logger
}

func NewHandler(sender Sender, limiter *RateLimiter, secret string, log logger.Logger) *Handler {
	return &Handler{sender: sender, limiter: limiter, secret: secret, log: log}
}

// Register mounts the routes on the engine.
func (h *Handler) Register(router *gin.Engine) {
	router.POST("/emails/send", h.send)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (h *Handler) send(c *gin.Context) {
	if c.GetHeader("x-email-secret") != h.secret {
		metrics.RelayEmailsRejected.WithLabelValues("unauthorized").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RelayEmailsRejected.WithLabelValues("bad_body").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	if req.To == "" || req.Subject == "" || req.HTML == "" {
		metrics.RelayEmailsRejected.WithLabelValues("missing_fields").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"message": "to, subject and html are required"})
		return
	}

	allowed, err := h.limiter.Allow(c.Request.Context(), req.To)
	if err != nil {
		// Redis being down should not block transactional email.
		h.log.WithError(err).Warn("rate limiter unavailable, allowing send", nil)
		allowed = true
	}
	if !allowed {
		metrics.RelayEmailsRejected.WithLabelValues("rate_limited").Inc()
		c.JSON(http.StatusTooManyRequests, gin.H{"message": "too many emails to this recipient"})
		return
	}

	messageID, err := h.sender.Send(c.Request.Context(), req.To, req.Subject, req.HTML)
	if err != nil {
		metrics.RelayEmailsRejected.WithLabelValues("provider_error").Inc()
		h.log.WithError(err).Error("email send failed", map[string]interface{}{"to": req.To})
		c.JSON(http.StatusBadGateway, gin.H{"message": "email delivery failed"})
		return
	}

	metrics.RelayEmailsSent.Inc()
	h.log.Info("email sent", map[string]interface{}{"to": req.To, "message_id": messageID})
	c.JSON(http.StatusOK, gin.H{"success": true, "messageId": messageID})
}
