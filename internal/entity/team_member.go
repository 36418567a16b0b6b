package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Role        string    `json:"role" db:"role"`
	Bio         string    `json:"bio" db:"bio"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	LinkedinURL string    `json:"linkedin_url" db:"linkedin_url"`
	Position    int       `json:"position" db:"position"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type TeamMemberPatch struct {
	Name        *string `json:"name" db:"name"`
	Role        *string `json:"role" db:"role"`
	Bio         *string `json:"bio" db:"bio"`
	ImageURL    *string `json:"image_url" db:"image_url"`
	LinkedinURL *string `json:"linkedin_url" db:"linkedin_url"`
	Position    *int    `json:"position" db:"position"`
	Status      *string `json:"status" db:"status"`
}

func NewTeamMember(name, role, bio, imageURL, linkedinURL string, position int) (*TeamMember, error) {
	now := time.Now().UTC()
	m := &TeamMember{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(name),
		Role:        strings.TrimSpace(role),
		Bio:         bio,
		ImageURL:    imageURL,
		LinkedinURL: linkedinURL,
		Position:    position,
		Status:      StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if m.Name == "" {
		return nil, errors.New("name is required")
	}
	if m.Role == "" {
		return nil, errors.New("role is required")
	}
	return m, nil
}

func (p TeamMemberPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return errors.New("name cannot be empty")
	}
	if p.Status != nil && !IsValidStatus(*p.Status) {
		return errors.New("status must be active or inactive")
	}
	return nil
}
