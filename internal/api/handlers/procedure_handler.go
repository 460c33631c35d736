package handlers

import (
	"net/http"
	"strconv"

	"github.com/mediguide/backend/internal/domain/repositories"
)

// ProcedureHandler handles procedure catalog HTTP requests
type ProcedureHandler struct {
	repo repositories.ProcedureRepository
}

// NewProcedureHandler creates a new procedure handler
func NewProcedureHandler(repo repositories.ProcedureRepository) *ProcedureHandler {
	return &ProcedureHandler{repo: repo}
}

// ListProcedures handles GET /api/procedures
func (h *ProcedureHandler) ListProcedures(w http.ResponseWriter, r *http.Request) {
	procedures, err := h.repo.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"procedures": procedures,
		"count":      len(procedures),
	})
}

// GetProcedure handles GET /api/procedures/{id}
func (h *ProcedureHandler) GetProcedure(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid procedure ID")
		return
	}

	procedure, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, procedure)
}
