package handlers

import (
	"context"
	"net/http"

	"github.com/xavierca1/agency-site/internal/infra/database"
)

// StoreController é o Selector visto pelo painel admin.
type StoreController interface {
	Active() database.Kind
	Reset()
	Ensure(ctx context.Context) (*database.Store, error)
}

type StoreHandler struct {
	Selector StoreController
	*Responder
}

func NewStoreHandler(selector StoreController, rs *Responder) *StoreHandler {
	return &StoreHandler{Selector: selector, Responder: rs}
}

// Status (GET /admin/store)
func (h *StoreHandler) Status(w http.ResponseWriter, r *http.Request) {
	h.JSON(w, http.StatusOK, Envelope{"active": h.Selector.Active()})
}

// Reset (POST /admin/store/reset) esquece a escolha e faz o probe de novo.
func (h *StoreHandler) Reset(w http.ResponseWriter, r *http.Request) {
	previous := h.Selector.Active()
	h.Selector.Reset()

	st, err := h.Selector.Ensure(r.Context())
	if err != nil {
		h.Error(w, r, err)
		return
	}

	h.Logger.WithField("previous", previous).WithField("active", st.Kind).Info("🔁 escolha de banco refeita")
	h.JSON(w, http.StatusOK, Envelope{
		"previous": previous,
		"active":   st.Kind,
	})
}
