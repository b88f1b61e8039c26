package domain

import "time"

// WebhookEvent is a raw inbound webhook capture kept for inspection.
type WebhookEvent struct {
	ID         string              `json:"id"`
	Headers    map[string][]string `json:"headers"`
	Body       string              `json:"body"`
	ReceivedAt time.Time           `json:"receivedAt"`
}
