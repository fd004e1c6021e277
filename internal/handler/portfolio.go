package handler

import (
	"net/http"
	"strconv"

	"github.com/minimindteam/Dash/internal/domain"
	"github.com/minimindteam/Dash/internal/service"
)

// PortfolioHandler handles portfolio projects and categories.
type PortfolioHandler struct {
	portfolio *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolio *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio}
}

// HandleListProjects returns all projects, newest first.
// GET /api/portfolio-projects
func (h *PortfolioHandler) HandleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.portfolio.ListProjects(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]portfolioProjectDTO, 0, len(projects))
	for i := range projects {
		dtos = append(dtos, toPortfolioProjectDTO(&projects[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// HandleCreateProject adds a project.
// POST /api/portfolio-projects
func (h *PortfolioHandler) HandleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req portfolioProjectDTO
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project := req.toDomain()
	project.ID = 0
	if err := h.portfolio.CreateProject(r.Context(), SessionFromContext(r.Context()), project); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPortfolioProjectDTO(project))
}

// HandleUpdateProject overwrites a project.
// PUT /api/portfolio-projects/{id}
func (h *PortfolioHandler) HandleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req portfolioProjectDTO
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project := req.toDomain()
	project.ID = id
	if err := h.portfolio.UpdateProject(r.Context(), SessionFromContext(r.Context()), project); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPortfolioProjectDTO(project))
}

// HandleDeleteProject removes a project.
// DELETE /api/portfolio-projects/{id}
func (h *PortfolioHandler) HandleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.portfolio.DeleteProject(r.Context(), SessionFromContext(r.Context()), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListCategories returns all categories sorted by name.
// GET /api/portfolio-categories
func (h *PortfolioHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.portfolio.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	type categoryDTO struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	dtos := make([]categoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, categoryDTO{ID: c.ID, Name: c.Name})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// HandleCreateCategory adds a category.
// POST /api/portfolio-categories
func (h *PortfolioHandler) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category := &domain.PortfolioCategory{Name: req.Name}
	if err := h.portfolio.CreateCategory(r.Context(), SessionFromContext(r.Context()), category); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"id": category.ID, "name": category.Name})
}

// HandleDeleteCategory removes a category.
// DELETE /api/portfolio-categories/{id}
func (h *PortfolioHandler) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.portfolio.DeleteCategory(r.Context(), SessionFromContext(r.Context()), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
