package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/faculty-appraisal/internal/service"
)

// AdminHandler serves the admin dashboard data: the faculty directory,
// per-faculty activity counts, and the PDF report downloads.
type AdminHandler struct {
	users   *service.AuthService
	reports *service.ReportService
	logger  *slog.Logger
}

func NewAdminHandler(users *service.AuthService, reports *service.ReportService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{users: users, reports: reports, logger: logger}
}

// HandleListFaculty returns the faculty directory.
//
// HTTP: GET /api/admin/faculty
func (h *AdminHandler) HandleListFaculty(w http.ResponseWriter, r *http.Request) {
	faculty, err := h.users.ListFaculty(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, faculty)
}

// HandleFacultyStats returns one faculty member's activity counts.
//
// HTTP: GET /api/admin/faculty/{id}/stats
func (h *AdminHandler) HandleFacultyStats(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad_request", Message: "Faculty ID is required"})
		return
	}

	stats, err := h.reports.Stats(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// HandleFacultyReport streams the single-faculty PDF report.
//
// HTTP: GET /api/admin/faculty/{id}/report
func (h *AdminHandler) HandleFacultyReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad_request", Message: "Faculty ID is required"})
		return
	}

	doc, err := h.reports.FacultyReport(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writePDF(w, doc)
}

// HandleAllReports streams the whole-roster PDF report.
//
// HTTP: GET /api/admin/reports
func (h *AdminHandler) HandleAllReports(w http.ResponseWriter, r *http.Request) {
	doc, err := h.reports.AllFacultyReports(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writePDF(w, doc)
}

func writePDF(w http.ResponseWriter, doc *service.Document) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Data)
}
