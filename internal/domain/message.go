package domain

import (
	"context"
	"time"
)

// ContactMessage is an inbound message from the public contact form.
type ContactMessage struct {
	ID         int64
	Name       string
	Email      string
	Subject    string
	Message    string
	Read       bool
	ReceivedAt time.Time
}

// MessageReply records an admin reply to a contact message. Delivery is
// handled outside this service; the reply is persisted for the audit trail.
type MessageReply struct {
	ID             int64
	RecipientEmail string
	Subject        string
	Body           string
	SentAt         time.Time
}

// MessageRepository defines persistence operations for contact messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
	GetByID(ctx context.Context, id int64) (*ContactMessage, error)
	List(ctx context.Context) ([]ContactMessage, error)
	SetRead(ctx context.Context, id int64, read bool) error
	Delete(ctx context.Context, id int64) error
	CreateReply(ctx context.Context, reply *MessageReply) error
	ListReplies(ctx context.Context, recipientEmail string) ([]MessageReply, error)
}
