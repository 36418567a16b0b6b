package handlers

import (
	"net/http"
	"strings"

	"github.com/xavierca1/agency-site/internal/infra/metrics"
	"github.com/xavierca1/agency-site/internal/usecase"
)

type NewsletterHandler struct {
	UC      *usecase.NewsletterUseCase
	SiteURL string
	// RequireAdmin protege o action=list, que divide a rota GET com o unsubscribe público.
	RequireAdmin func(http.Handler) http.Handler
	*Responder
}

func NewNewsletterHandler(uc *usecase.NewsletterUseCase, siteURL string, requireAdmin func(http.Handler) http.Handler, rs *Responder) *NewsletterHandler {
	return &NewsletterHandler{
		UC:           uc,
		SiteURL:      strings.TrimRight(siteURL, "/"),
		RequireAdmin: requireAdmin,
		Responder:    rs,
	}
}

// Subscribe (POST /newsletter)
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubscribeInput
	if err := decode(r, &input); err != nil {
		h.Fail(w, http.StatusBadRequest, "Invalid JSON", err)
		return
	}

	out, err := h.UC.Subscribe(r.Context(), input)
	if err != nil {
		h.Error(w, r, err)
		return
	}

	switch {
	case out.AlreadySubscribed:
		metrics.RecordSubscription("already_subscribed")
		h.JSON(w, http.StatusOK, Envelope{
			"message":           "You are already subscribed to our newsletter.",
			"alreadySubscribed": true,
		})
	case out.Reactivated:
		metrics.RecordSubscription("reactivated")
		h.JSON(w, http.StatusOK, Envelope{"message": "Welcome back! Your subscription has been reactivated."})
	default:
		metrics.RecordSubscription("created")
		h.JSON(w, http.StatusCreated, Envelope{"message": "Thanks for subscribing!"})
	}
}

// Get (GET /newsletter?action=...)
func (h *NewsletterHandler) Get(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("action") {
	case "unsubscribe":
		h.Unsubscribe(w, r)
	case "list":
		h.RequireAdmin(http.HandlerFunc(h.List)).ServeHTTP(w, r)
	default:
		h.Fail(w, http.StatusBadRequest, "Invalid action", nil)
	}
}

// Unsubscribe sempre redireciona para o site; o resultado vai na query.
func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	target := h.SiteURL + "/?unsubscribed=true"
	if err := h.UC.Unsubscribe(r.Context(), r.URL.Query().Get("email")); err != nil {
		if !usecase.IsDomainError(err) {
			h.Logger.WithError(err).Error("❌ erro ao cancelar inscrição")
		}
		target = h.SiteURL + "/?unsubscribe=error"
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// List (GET /newsletter?action=list), admin
func (h *NewsletterHandler) List(w http.ResponseWriter, r *http.Request) {
	subscribers, stats, err := h.UC.List(r.Context())
	if err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, http.StatusOK, Envelope{
		"subscribers": subscribers,
		"stats":       stats,
	})
}
