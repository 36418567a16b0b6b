package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/agency-site/internal/entity"
	"github.com/xavierca1/agency-site/internal/usecase"
)

type TeamHandler struct {
	UC *usecase.TeamUseCase
	*Responder
}

func NewTeamHandler(uc *usecase.TeamUseCase, rs *Responder) *TeamHandler {
	return &TeamHandler{UC: uc, Responder: rs}
}

func (h *TeamHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

func (h *TeamHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

func (h *TeamHandler) list(w http.ResponseWriter, r *http.Request, activeOnly bool) {
	members, err := h.UC.List(r.Context(), activeOnly)
	if err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, http.StatusOK, Envelope{"data": members})
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.TeamMemberInput
	if err := decode(r, &input); err != nil {
		h.Fail(w, http.StatusBadRequest, "Invalid JSON", err)
		return
	}

	member, err := h.UC.Create(r.Context(), input)
	if err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, http.StatusCreated, Envelope{"message": "Team member created", "data": member})
}

func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch entity.TeamMemberPatch
	if err := decode(r, &patch); err != nil {
		h.Fail(w, http.StatusBadRequest, "Invalid JSON", err)
		return
	}

	if err := h.UC.Update(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, http.StatusOK, Envelope{"message": "Team member updated"})
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, http.StatusOK, Envelope{"message": "Team member deleted"})
}
