package handlers

import (
	"net/http"

	"github.com/xavierca1/agency-site/internal/infra/auth"
	"github.com/xavierca1/agency-site/internal/usecase"
)

type AuthHandler struct {
	UC *usecase.AuthUseCase
	*Responder
}

func NewAuthHandler(uc *usecase.AuthUseCase, rs *Responder) *AuthHandler {
	return &AuthHandler{UC: uc, Responder: rs}
}

// Login (POST /admin/auth/login)
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if err := decode(r, &input); err != nil {
		h.Fail(w, http.StatusBadRequest, "Invalid JSON", err)
		return
	}

	out, err := h.UC.Login(r.Context(), input)
	if err != nil {
		h.Error(w, r, err)
		return
	}

	h.JSON(w, http.StatusOK, Envelope{
		"token":     out.Token,
		"expiresAt": out.ExpiresAt,
		"user":      out.User,
	})
}

// Me (GET /admin/auth/me)
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		h.Fail(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}
	h.JSON(w, http.StatusOK, Envelope{
		"user": Envelope{
			"id":       claims.Subject,
			"username": claims.Username,
			"role":     claims.Role,
		},
	})
}
