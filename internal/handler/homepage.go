package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/minimindteam/Dash/internal/domain"
	"github.com/minimindteam/Dash/internal/service"
)

// HomePageHandler serves the home page aggregate: full fetch, full-replace
// save, and immediate per-item deletes.
type HomePageHandler struct {
	homePage *service.HomePageService
}

// NewHomePageHandler creates a new HomePageHandler.
func NewHomePageHandler(homePage *service.HomePageService) *HomePageHandler {
	return &HomePageHandler{homePage: homePage}
}

// HandleGet returns the whole aggregate. Public; an authenticated fetch
// additionally creates the content singleton if it is missing. A failed
// read degrades to an empty aggregate so the site still renders.
// GET /api/home-page
func (h *HomePageHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	page, err := h.homePage.Fetch(r.Context(), sess)
	if err != nil {
		slog.Error("fetch home page", "error", err)
		writeJSON(w, http.StatusOK, toHomePageDTO(&domain.HomePage{}))
		return
	}

	writeJSON(w, http.StatusOK, toHomePageDTO(page))
}

// HandleSave replaces the whole aggregate with the submitted draft and
// returns the persisted result. Inline files are uploaded before anything
// is written to the store.
// PUT /api/home-page
func (h *HomePageHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	var req saveHomePageRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	page, err := h.homePage.Save(r.Context(), sess, req.toDraft())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toHomePageDTO(page))
}

// HandleDeleteHeroImage removes one persisted hero image.
// DELETE /api/home-page/hero-images/{id}
func (h *HomePageHandler) HandleDeleteHeroImage(w http.ResponseWriter, r *http.Request) {
	h.deleteItem(w, r, h.homePage.DeleteHeroImage)
}

// HandleDeleteStat removes one persisted stat.
// DELETE /api/home-page/stats/{id}
func (h *HomePageHandler) HandleDeleteStat(w http.ResponseWriter, r *http.Request) {
	h.deleteItem(w, r, h.homePage.DeleteStat)
}

// HandleDeleteServicePreview removes one persisted service preview.
// DELETE /api/home-page/services-preview/{id}
func (h *HomePageHandler) HandleDeleteServicePreview(w http.ResponseWriter, r *http.Request) {
	h.deleteItem(w, r, h.homePage.DeleteServicePreview)
}

func (h *HomePageHandler) deleteItem(w http.ResponseWriter, r *http.Request, del func(context.Context, *domain.Session, int64) error) {
	sess := SessionFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := del(r.Context(), sess, id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
