package handler

import (
	"net/http"
	"strconv"

	"github.com/minimindteam/Dash/internal/service"
)

// MessageHandler handles the contact-form inbox.
type MessageHandler struct {
	messages *service.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messages *service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// HandleSubmit accepts a message from the public contact form.
// POST /api/messages
func (h *MessageHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.messages.Submit(r.Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMessageDTO(msg))
}

// HandleList returns all messages, newest first.
// GET /api/messages
func (h *MessageHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.messages.List(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]messageDTO, 0, len(msgs))
	for i := range msgs {
		dtos = append(dtos, toMessageDTO(&msgs[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// HandleMarkRead flips a message's read flag. An empty body marks it read.
// PUT /api/messages/{id}/read
func (h *MessageHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	req := struct {
		Read bool `json:"is_read"`
	}{Read: true}
	if r.ContentLength > 0 {
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	if err := h.messages.MarkRead(r.Context(), SessionFromContext(r.Context()), id, req.Read); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete removes one message.
// DELETE /api/messages/{id}
func (h *MessageHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.messages.Delete(r.Context(), SessionFromContext(r.Context()), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleReply records an admin reply to a message.
// POST /api/messages/reply
func (h *MessageHandler) HandleReply(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RecipientEmail string `json:"recipient_email"`
		Subject        string `json:"subject"`
		Body           string `json:"body"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.messages.Reply(r.Context(), SessionFromContext(r.Context()), req.RecipientEmail, req.Subject, req.Body)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMessageReplyDTO(reply))
}

// HandleListReplies returns the reply history for one message's sender.
// GET /api/messages/{id}/replies
func (h *MessageHandler) HandleListReplies(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	replies, err := h.messages.Replies(r.Context(), SessionFromContext(r.Context()), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]messageReplyDTO, 0, len(replies))
	for i := range replies {
		dtos = append(dtos, toMessageReplyDTO(&replies[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}
