package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EventContactSubmitted     = "contact_submitted"
	EventNewsletterSubscribed = "newsletter_subscribed"
	EventNewsletterLeft       = "newsletter_unsubscribed"
)

type AnalyticsEvent struct {
	ID        string    `json:"id" db:"id"`
	EventType string    `json:"event_type" db:"event_type"`
	Payload   string    `json:"payload" db:"payload"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func NewAnalyticsEvent(eventType string, payload map[string]string) *AnalyticsEvent {
	body, err := json.Marshal(payload)
	if err != nil {
		body = []byte("{}")
	}
	return &AnalyticsEvent{
		ID:        uuid.New().String(),
		EventType: eventType,
		Payload:   string(body),
		CreatedAt: time.Now().UTC(),
	}
}
