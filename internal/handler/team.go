package handler

import (
	"net/http"
	"strconv"

	"github.com/minimindteam/Dash/internal/service"
)

// TeamHandler handles team member CRUD.
type TeamHandler struct {
	team *service.TeamService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(team *service.TeamService) *TeamHandler {
	return &TeamHandler{team: team}
}

// HandleList returns all team members.
// GET /api/team-members
func (h *TeamHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	members, err := h.team.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]teamMemberDTO, 0, len(members))
	for i := range members {
		dtos = append(dtos, toTeamMemberDTO(&members[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// HandleCreate adds a team member.
// POST /api/team-members
func (h *TeamHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req teamMemberDTO
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	member := req.toDomain()
	member.ID = 0
	if err := h.team.Create(r.Context(), SessionFromContext(r.Context()), member); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTeamMemberDTO(member))
}

// HandleUpdate overwrites a team member.
// PUT /api/team-members/{id}
func (h *TeamHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req teamMemberDTO
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	member := req.toDomain()
	member.ID = id
	if err := h.team.Update(r.Context(), SessionFromContext(r.Context()), member); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTeamMemberDTO(member))
}

// HandleDelete removes a team member.
// DELETE /api/team-members/{id}
func (h *TeamHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.team.Delete(r.Context(), SessionFromContext(r.Context()), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
