package entity

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	SubscriberStatusActive       = "active"
	SubscriberStatusUnsubscribed = "unsubscribed"
)

// Subscriber existe uma única vez por email, não importa quantas vezes
// a pessoa entrou e saiu da newsletter.
type Subscriber struct {
	ID             string     `json:"id" db:"id"`
	Email          string     `json:"email" db:"email"`
	Name           string     `json:"name,omitempty" db:"name"`
	Preferences    StringList `json:"preferences" db:"preferences"`
	Status         string     `json:"status" db:"status"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty" db:"unsubscribed_at"`
}

type SubscriberStats struct {
	Total        int `json:"total" db:"total"`
	Active       int `json:"active" db:"active"`
	Unsubscribed int `json:"unsubscribed" db:"unsubscribed"`
}

func NewSubscriber(email, name string, preferences []string) (*Subscriber, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, errors.New("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errors.New("email is invalid")
	}
	if preferences == nil {
		preferences = []string{}
	}

	now := time.Now().UTC()
	return &Subscriber{
		ID:          uuid.New().String(),
		Email:       email,
		Name:        strings.TrimSpace(name),
		Preferences: preferences,
		Status:      SubscriberStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (s *Subscriber) IsActive() bool {
	return s.Status == SubscriberStatusActive
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
