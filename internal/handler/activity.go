package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/faculty-appraisal/internal/auth"
	"github.com/sakif/faculty-appraisal/internal/model"
	"github.com/sakif/faculty-appraisal/internal/service"
)

// ActivityHandler is the HTTP face of the generic CRUD engine. Like the
// engine, it is written once and mounted five times — one route subtree per
// activity type, each operating on the authenticated owner's own list.
type ActivityHandler[T any, P service.RecordPtr[T]] struct {
	svc    *service.Activity[T, P]
	logger *slog.Logger
}

func NewActivityHandler[T any, P service.RecordPtr[T]](svc *service.Activity[T, P], logger *slog.Logger) *ActivityHandler[T, P] {
	return &ActivityHandler[T, P]{svc: svc, logger: logger}
}

// Mount registers the CRUD routes on r:
//
//	GET    /      → list
//	POST   /      → create
//	PUT    /{id}  → update
//	DELETE /{id}  → delete
func (h *ActivityHandler[T, P]) Mount(r chi.Router) {
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
}

func (h *ActivityHandler[T, P]) HandleList(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Message: "valid authentication required"})
		return
	}

	list, err := h.svc.List(r.Context(), ident.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *ActivityHandler[T, P]) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Message: "valid authentication required"})
		return
	}

	var rec T
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		h.logger.Warn("invalid record JSON",
			slog.String("type", string(h.svc.Type())),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad_request", Message: "Invalid JSON body"})
		return
	}

	created, err := h.svc.Create(r.Context(), ident.UserID, rec)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *ActivityHandler[T, P]) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Message: "valid authentication required"})
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad_request", Message: "Record ID is required"})
		return
	}

	var rec T
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		h.logger.Warn("invalid record JSON",
			slog.String("type", string(h.svc.Type())),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad_request", Message: "Invalid JSON body"})
		return
	}

	updated, err := h.svc.Update(r.Context(), ident.UserID, id, rec)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *ActivityHandler[T, P]) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Message: "valid authentication required"})
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad_request", Message: "Record ID is required"})
		return
	}

	if err := h.svc.Delete(r.Context(), ident.UserID, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleUnknownActivityType is the catch-all mounted under the activities
// subtree. Requests whose kind segment isn't one of the five activity types
// get a 404 naming the bad segment instead of the router's bare default.
func HandleUnknownActivityType(w http.ResponseWriter, r *http.Request) {
	seg := chi.URLParam(r, "type")
	if _, ok := model.ParseActivityType(seg); !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: fmt.Sprintf("unknown activity type %q", seg),
		})
		return
	}
	writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not_found", Message: "resource not found"})
}
