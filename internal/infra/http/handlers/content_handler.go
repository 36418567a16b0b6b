package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/agency-site/internal/entity"
	"github.com/xavierca1/agency-site/internal/usecase"
)

type ContentHandler struct {
	UC *usecase.ContentUseCase
	*Responder
}

func NewContentHandler(uc *usecase.ContentUseCase, rs *Responder) *ContentHandler {
	return &ContentHandler{UC: uc, Responder: rs}
}

// BySection (GET /content/{section})
func (h *ContentHandler) BySection(w http.ResponseWriter, r *http.Request) {
	blocks, err := h.UC.List(r.Context(), chi.URLParam(r, "section"))
	if err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, http.StatusOK, Envelope{"data": blocks})
}

// List (GET /admin/content?section=)
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	blocks, err := h.UC.List(r.Context(), r.URL.Query().Get("section"))
	if err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, http.StatusOK, Envelope{"data": blocks})
}

func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.ContentBlockInput
	if err := decode(r, &input); err != nil {
		h.Fail(w, http.StatusBadRequest, "Invalid JSON", err)
		return
	}

	block, err := h.UC.Create(r.Context(), input)
	if err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, http.StatusCreated, Envelope{"message": "Content block created", "data": block})
}

func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch entity.ContentBlockPatch
	if err := decode(r, &patch); err != nil {
		h.Fail(w, http.StatusBadRequest, "Invalid JSON", err)
		return
	}

	if err := h.UC.Update(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, http.StatusOK, Envelope{"message": "Content block updated"})
}

func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, http.StatusOK, Envelope{"message": "Content block deleted"})
}
