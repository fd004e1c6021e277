package service

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/minimindteam/Dash/internal/domain"
)

// MessageService handles the contact-form inbox: public intake, admin
// listing, read flags, deletion, and recorded replies.
type MessageService struct {
	messages domain.MessageRepository
}

// NewMessageService creates a new MessageService.
func NewMessageService(messages domain.MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// Submit accepts a message from the public contact form. No session needed.
func (s *MessageService) Submit(ctx context.Context, name, email, subject, body string) (*domain.ContactMessage, error) {
	err := validation.Errors{
		"name":    validation.Validate(name, validation.Required),
		"email":   validation.Validate(email, validation.Required, is.EmailFormat),
		"message": validation.Validate(body, validation.Required),
	}.Filter()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	msg := &domain.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: body,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return msg, nil
}

// List returns all messages, newest first.
func (s *MessageService) List(ctx context.Context, sess *domain.Session) ([]domain.ContactMessage, error) {
	if sess == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.messages.List(ctx)
}

// MarkRead flips the read flag of one message.
func (s *MessageService) MarkRead(ctx context.Context, sess *domain.Session, id int64, read bool) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	return s.messages.SetRead(ctx, id, read)
}

// Delete removes one message.
func (s *MessageService) Delete(ctx context.Context, sess *domain.Session, id int64) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	return s.messages.Delete(ctx, id)
}

// Reply records an admin reply. Delivery happens outside this service;
// the record is the audit trail the dashboard shows.
func (s *MessageService) Reply(ctx context.Context, sess *domain.Session, recipientEmail, subject, body string) (*domain.MessageReply, error) {
	if sess == nil {
		return nil, domain.ErrUnauthenticated
	}

	err := validation.Errors{
		"recipient_email": validation.Validate(recipientEmail, validation.Required, is.EmailFormat),
		"subject":         validation.Validate(subject, validation.Required),
		"body":            validation.Validate(body, validation.Required),
	}.Filter()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	reply := &domain.MessageReply{
		RecipientEmail: recipientEmail,
		Subject:        subject,
		Body:           body,
	}
	if err := s.messages.CreateReply(ctx, reply); err != nil {
		return nil, fmt.Errorf("create reply: %w", err)
	}
	return reply, nil
}

// Replies returns the reply history for the sender of one message.
func (s *MessageService) Replies(ctx context.Context, sess *domain.Session, messageID int64) ([]domain.MessageReply, error) {
	if sess == nil {
		return nil, domain.ErrUnauthenticated
	}

	msg, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}
	return s.messages.ListReplies(ctx, msg.Email)
}
