package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/agency-site/internal/entity"
	"github.com/xavierca1/agency-site/internal/usecase"
)

type ServiceHandler struct {
	UC *usecase.ServiceUseCase
	*Responder
}

func NewServiceHandler(uc *usecase.ServiceUseCase, rs *Responder) *ServiceHandler {
	return &ServiceHandler{UC: uc, Responder: rs}
}

// ListPublic (GET /services): só os ativos, destaque primeiro.
func (h *ServiceHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

// ListAll (GET /admin/services)
func (h *ServiceHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

func (h *ServiceHandler) list(w http.ResponseWriter, r *http.Request, activeOnly bool) {
	services, err := h.UC.List(r.Context(), activeOnly)
	if err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, http.StatusOK, Envelope{"data": services})
}

// Get (GET /admin/services/{id})
func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	service, err := h.UC.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, http.StatusOK, Envelope{"data": service})
}

func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.ServiceInput
	if err := decode(r, &input); err != nil {
		h.Fail(w, http.StatusBadRequest, "Invalid JSON", err)
		return
	}

	service, err := h.UC.Create(r.Context(), input)
	if err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, http.StatusCreated, Envelope{"message": "Service created", "data": service})
}

func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch entity.ServicePatch
	if err := decode(r, &patch); err != nil {
		h.Fail(w, http.StatusBadRequest, "Invalid JSON", err)
		return
	}

	if err := h.UC.Update(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, http.StatusOK, Envelope{"message": "Service updated"})
}

func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.Error(w, r, err)
		return
	}
	h.JSON(w, http.StatusOK, Envelope{"message": "Service deleted"})
}
