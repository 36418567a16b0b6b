package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Service é um serviço da agência exibido no site (SEO, tráfego pago, etc).
type Service struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Icon        string     `json:"icon" db:"icon"`
	Category    string     `json:"category" db:"category"`
	Price       string     `json:"price" db:"price"`
	Featured    bool       `json:"featured" db:"featured"`
	Status      string     `json:"status" db:"status"`
	Points      StringList `json:"points" db:"points"`
	SubServices StringList `json:"sub_services" db:"sub_services"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// ServicePatch is a partial update: nil fields are left untouched.
// Field order is the SET clause order.
type ServicePatch struct {
	Title       *string   `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	Icon        *string   `json:"icon" db:"icon"`
	Category    *string   `json:"category" db:"category"`
	Price       *string   `json:"price" db:"price"`
	Featured    *bool     `json:"featured" db:"featured"`
	Status      *string   `json:"status" db:"status"`
	Points      *[]string `json:"points" db:"points"`
	SubServices *[]string `json:"sub_services" db:"sub_services"`
}

func NewService(title, description, icon, category, price string, featured bool, points, subServices []string) (*Service, error) {
	now := time.Now().UTC()
	s := &Service{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Icon:        icon,
		Category:    category,
		Price:       price,
		Featured:    featured,
		Status:      StatusActive,
		Points:      nonNil(points),
		SubServices: nonNil(subServices),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if s.Title == "" {
		return nil, errors.New("title is required")
	}
	if s.Description == "" {
		return nil, errors.New("description is required")
	}
	return s, nil
}

func (p ServicePatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return errors.New("title cannot be empty")
	}
	if p.Status != nil && !IsValidStatus(*p.Status) {
		return errors.New("status must be active or inactive")
	}
	return nil
}

func IsValidStatus(status string) bool {
	return status == StatusActive || status == StatusInactive
}

func nonNil(l []string) StringList {
	if l == nil {
		return StringList{}
	}
	return l
}
