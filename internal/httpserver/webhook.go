package httpserver

import (
	"io"
	"log"
	"net/http"

	"roastery-admin/internal/domain"

	"github.com/gin-gonic/gin"
)

// webhookBodyLimit caps how much of an inbound payload is stored.
const webhookBodyLimit = 1 << 20

// webhookTestHandler accepts POSTs only, records the raw headers and
// body with a server timestamp, and always acknowledges with 200. A
// failed write is logged, not surfaced.
func webhookTestHandler(repo webhookStore, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.String(http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, webhookBodyLimit))
		if err != nil {
			logger.Printf("webhook: read body err=%v", err)
			body = nil
		}

		logger.Printf("webhook: received %d bytes from %s", len(body), c.ClientIP())
		if _, err := repo.Create(c.Request.Context(), domain.WebhookEvent{
			Headers: c.Request.Header,
			Body:    string(body),
		}); err != nil {
			logger.Printf("webhook: persist err=%v", err)
		}

		c.String(http.StatusOK, "webhook received")
	}
}
