package handler

import (
	"net/http"

	"github.com/minimindteam/Dash/internal/domain"
	"github.com/minimindteam/Dash/internal/service"
)

// ContactHandler handles the contact info singleton.
type ContactHandler struct {
	contact *service.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contact *service.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// HandleGet returns the current contact info.
// GET /api/contact-info
func (h *ContactHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	info, err := h.contact.Get(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toContactInfoDTO(info))
}

// HandleUpdate replaces the contact info wholesale.
// PUT /api/contact-info
func (h *ContactHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req contactInfoDTO
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	info := &domain.ContactInfo{
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		BusinessHours: req.BusinessHours,
		Facebook:      req.Facebook,
		Twitter:       req.Twitter,
		LinkedIn:      req.LinkedIn,
		Instagram:     req.Instagram,
	}
	if err := h.contact.Update(r.Context(), SessionFromContext(r.Context()), info); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toContactInfoDTO(info))
}
