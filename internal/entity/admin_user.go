package entity

import (
	"time"

	"github.com/google/uuid"
)

const RoleAdmin = "admin"

type AdminUser struct {
	ID        string    `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Password  string    `json:"-" db:"password"` // hash bcrypt, nunca o texto puro
	Email     string    `json:"email" db:"email"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func NewAdminUser(username, passwordHash, email string) *AdminUser {
	return &AdminUser{
		ID:        uuid.New().String(),
		Username:  username,
		Password:  passwordHash,
		Email:     email,
		Role:      RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}
}
