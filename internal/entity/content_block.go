package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Seções conhecidas do site. Outras seções são aceitas.
const (
	SectionHome         = "home"
	SectionAbout        = "about"
	SectionTestimonials = "testimonials"
)

// ContentBlock é um trecho editável de uma página. Depoimentos são blocos
// da seção "testimonials" com Author preenchido.
type ContentBlock struct {
	ID        string    `json:"id" db:"id"`
	Section   string    `json:"section" db:"section"`
	Key       string    `json:"key" db:"block_key"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	Author    string    `json:"author,omitempty" db:"author"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type ContentBlockPatch struct {
	Title    *string `json:"title" db:"title"`
	Body     *string `json:"body" db:"body"`
	ImageURL *string `json:"image_url" db:"image_url"`
	Author   *string `json:"author" db:"author"`
	Position *int    `json:"position" db:"position"`
}

func NewContentBlock(section, key, title, body, imageURL, author string, position int) (*ContentBlock, error) {
	now := time.Now().UTC()
	b := &ContentBlock{
		ID:        uuid.New().String(),
		Section:   strings.ToLower(strings.TrimSpace(section)),
		Key:       strings.TrimSpace(key),
		Title:     title,
		Body:      body,
		ImageURL:  imageURL,
		Author:    author,
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if b.Section == "" {
		return nil, errors.New("section is required")
	}
	if b.Key == "" {
		return nil, errors.New("key is required")
	}
	return b, nil
}
