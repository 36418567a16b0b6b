package handlers

import (
	"net/http"

	"github.com/xavierca1/agency-site/internal/usecase"
)

type DashboardHandler struct {
	UC *usecase.DashboardUseCase
	*Responder
}

func NewDashboardHandler(uc *usecase.DashboardUseCase, rs *Responder) *DashboardHandler {
	return &DashboardHandler{UC: uc, Responder: rs}
}

func (h *DashboardHandler) Handle(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.UC.Execute(r.Context())
	if err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, http.StatusOK, Envelope{"data": dashboard})
}
