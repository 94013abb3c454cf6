package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/whiteelite/catalog/internal/application/services"
	domainrepos "github.com/whiteelite/catalog/internal/domain/repositories"
	shared "github.com/whiteelite/catalog/pkg/shared/domain/entities"
)

// resource serves CRUD routes for one entity kind.
type resource[T shared.Identifiable, D services.Descriptor] struct {
	svc    *services.Service[T, D]
	repo   domainrepos.Repository[T]
	broker domainrepos.Notifier
}

func newResource[T shared.Identifiable, D services.Descriptor](
	svc *services.Service[T, D],
	repo domainrepos.Repository[T],
	broker domainrepos.Notifier,
) *resource[T, D] {
	return &resource[T, D]{svc: svc, repo: repo, broker: broker}
}

func (h *resource[T, D]) routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *resource[T, D]) create(w http.ResponseWriter, r *http.Request) {
	var descriptor D
	if !decodeBody(w, r, &descriptor) {
		return
	}

	item, err := h.svc.Create(r.Context(), descriptor, h.repo, h.broker)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *resource[T, D]) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Find(r.Context(), id, h.repo)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *resource[T, D]) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var descriptor D
	if !decodeBody(w, r, &descriptor) {
		return
	}

	if err := h.svc.Update(r.Context(), id, descriptor, h.repo, h.broker); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *resource[T, D]) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id, h.repo, h.broker); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request) (shared.ID, bool) {
	id, err := shared.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return shared.ID{}, false
	}
	return id, true
}
