package handlers

import (
	"net/http"
	"strconv"

	"github.com/xavierca1/agency-site/internal/infra/metrics"
	"github.com/xavierca1/agency-site/internal/usecase"
)

type ContactHandler struct {
	UC *usecase.ContactUseCase
	*Responder
}

func NewContactHandler(uc *usecase.ContactUseCase, rs *Responder) *ContactHandler {
	return &ContactHandler{UC: uc, Responder: rs}
}

// Submit (POST /contact)
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input usecase.ContactInput
	if err := decode(r, &input); err != nil {
		h.Fail(w, http.StatusBadRequest, "Invalid JSON", err)
		return
	}

	if _, err := h.UC.Submit(r.Context(), input); err != nil {
		h.Error(w, r, err)
		return
	}
	metrics.RecordSubmission()

	h.JSON(w, http.StatusCreated, Envelope{
		"message": "Thank you for your message. We'll get back to you soon!",
	})
}

// List (GET /contact?status=&limit=), admin
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.Fail(w, http.StatusBadRequest, "limit must be a positive integer", nil)
			return
		}
		limit = n
	}

	submissions, err := h.UC.List(r.Context(), q.Get("status"), limit)
	if err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, http.StatusOK, Envelope{"submissions": submissions})
}

type updateStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// UpdateStatus (PATCH /contact), admin
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := decode(r, &req); err != nil {
		h.Fail(w, http.StatusBadRequest, "Invalid JSON", err)
		return
	}

	if err := h.UC.UpdateStatus(r.Context(), req.ID, req.Status); err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, http.StatusOK, Envelope{"message": "Submission updated"})
}

// Delete (DELETE /contact?id=), admin
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.Delete(r.Context(), r.URL.Query().Get("id")); err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, http.StatusOK, Envelope{"message": "Submission deleted"})
}
