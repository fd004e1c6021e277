package handler

import (
	"net/http"
	"strconv"

	"github.com/minimindteam/Dash/internal/domain"
	"github.com/minimindteam/Dash/internal/service"
)

// ReviewHandler handles reviews, approval, and the reviews-page counters.
type ReviewHandler struct {
	reviews *service.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// HandleListPublic returns approved reviews only.
// GET /api/reviews
func (h *ReviewHandler) HandleListPublic(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.ListPublic(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewDTOs(reviews))
}

// HandleListAdmin returns every review, approved or not.
// GET /api/admin/reviews
func (h *ReviewHandler) HandleListAdmin(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.ListAdmin(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewDTOs(reviews))
}

// HandleSubmit accepts a review from the public site. It starts unapproved.
// POST /api/reviews
func (h *ReviewHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req reviewDTO
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review := req.toDomain()
	review.ID = 0
	if err := h.reviews.Submit(r.Context(), review); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReviewDTO(review))
}

// HandleUpdate overwrites a review.
// PUT /api/reviews/{id}
func (h *ReviewHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req reviewDTO
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review := req.toDomain()
	review.ID = id
	if err := h.reviews.Update(r.Context(), SessionFromContext(r.Context()), review); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewDTO(review))
}

// HandleApprove sets a review's approval flag. An empty body approves.
// PUT /api/reviews/{id}/approve
func (h *ReviewHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	req := struct {
		Approved bool `json:"approved"`
	}{Approved: true}
	if r.ContentLength > 0 {
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	if err := h.reviews.SetApproved(r.Context(), SessionFromContext(r.Context()), id, req.Approved); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete removes a review.
// DELETE /api/reviews/{id}
func (h *ReviewHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.reviews.Delete(r.Context(), SessionFromContext(r.Context()), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListStats returns the ordered reviews-page counters.
// GET /api/reviews-stats
func (h *ReviewHandler) HandleListStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reviews.ListStats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]reviewsStatDTO, 0, len(stats))
	for _, s := range stats {
		dtos = append(dtos, reviewsStatDTO{ID: s.ID, Number: s.Number, Label: s.Label, SortOrder: s.SortOrder})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// HandleCreateStat adds a reviews-page counter.
// POST /api/reviews-stats
func (h *ReviewHandler) HandleCreateStat(w http.ResponseWriter, r *http.Request) {
	var req reviewsStatDTO
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stat := &domain.ReviewsStat{Number: req.Number, Label: req.Label, SortOrder: req.SortOrder}
	if err := h.reviews.CreateStat(r.Context(), SessionFromContext(r.Context()), stat); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, reviewsStatDTO{ID: stat.ID, Number: stat.Number, Label: stat.Label, SortOrder: stat.SortOrder})
}

// HandleUpdateStat overwrites a reviews-page counter.
// PUT /api/reviews-stats/{id}
func (h *ReviewHandler) HandleUpdateStat(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req reviewsStatDTO
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stat := &domain.ReviewsStat{ID: id, Number: req.Number, Label: req.Label, SortOrder: req.SortOrder}
	if err := h.reviews.UpdateStat(r.Context(), SessionFromContext(r.Context()), stat); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reviewsStatDTO{ID: stat.ID, Number: stat.Number, Label: stat.Label, SortOrder: stat.SortOrder})
}

// HandleDeleteStat removes a reviews-page counter.
// DELETE /api/reviews-stats/{id}
func (h *ReviewHandler) HandleDeleteStat(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.reviews.DeleteStat(r.Context(), SessionFromContext(r.Context()), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toReviewDTOs(reviews []domain.Review) []reviewDTO {
	dtos := make([]reviewDTO, 0, len(reviews))
	for i := range reviews {
		dtos = append(dtos, toReviewDTO(&reviews[i]))
	}
	return dtos
}
