package entity

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	SubmissionStatusNew        = "new"
	SubmissionStatusInProgress = "in-progress"
	SubmissionStatusCompleted  = "completed"
)

var ErrInvalidSubmissionStatus = errors.New("status must be one of: new, in-progress, completed")

// Submission é um pedido de contato vindo do formulário público.
type Submission struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone,omitempty" db:"phone"`
	Company   string    `json:"company,omitempty" db:"company"`
	Service   string    `json:"service,omitempty" db:"service"`
	Message   string    `json:"message" db:"message"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SubmissionFilter carries the optional status filter and row limit of the admin list.
type SubmissionFilter struct {
	Status string
	Limit  int
}

// Factory
func NewSubmission(name, email, phone, company, service, message string) (*Submission, error) {
	now := time.Now().UTC()
	s := &Submission{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Phone:     strings.TrimSpace(phone),
		Company:   strings.TrimSpace(company),
		Service:   strings.TrimSpace(service),
		Message:   strings.TrimSpace(message),
		Status:    SubmissionStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Submission) Validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if s.Email == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(s.Email); err != nil {
		return errors.New("email is invalid")
	}
	if s.Message == "" {
		return errors.New("message is required")
	}
	if !IsValidSubmissionStatus(s.Status) {
		return ErrInvalidSubmissionStatus
	}
	return nil
}

func IsValidSubmissionStatus(status string) bool {
	switch status {
	case SubmissionStatusNew, SubmissionStatusInProgress, SubmissionStatusCompleted:
		return true
	}
	return false
}
