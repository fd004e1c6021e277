package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/minimindteam/Dash/internal/domain"
)

// messageRepo implements domain.MessageRepository using SQLite.
type messageRepo struct {
	db *sql.DB
}

func (r *messageRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO contact_messages (name, email, subject, message, is_read, received_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		msg.Name, msg.Email, msg.Subject, msg.Message, msg.Read, now,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get message id: %w", err)
	}
	msg.ID = id
	msg.ReceivedAt = now
	return nil
}

func (r *messageRepo) GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	m := &domain.ContactMessage{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, subject, message, is_read, received_at
		 FROM contact_messages WHERE id = ?`, id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Read, &m.ReceivedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get message: %w", err)
	}
	return m, nil
}

func (r *messageRepo) List(ctx context.Context) ([]domain.ContactMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, subject, message, is_read, received_at
		 FROM contact_messages ORDER BY received_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Read, &m.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *messageRepo) SetRead(ctx context.Context, id int64, read bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE contact_messages SET is_read = ? WHERE id = ?", read, id)
	if err != nil {
		return fmt.Errorf("set message read: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *messageRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM contact_messages WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *messageRepo) CreateReply(ctx context.Context, reply *domain.MessageReply) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO message_replies (recipient_email, subject, body, sent_at)
		 VALUES (?, ?, ?, ?)`,
		reply.RecipientEmail, reply.Subject, reply.Body, now,
	)
	if err != nil {
		return fmt.Errorf("insert reply: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get reply id: %w", err)
	}
	reply.ID = id
	reply.SentAt = now
	return nil
}

func (r *messageRepo) ListReplies(ctx context.Context, recipientEmail string) ([]domain.MessageReply, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, recipient_email, subject, body, sent_at
		 FROM message_replies WHERE recipient_email = ? ORDER BY sent_at DESC`, recipientEmail)
	if err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}
	defer rows.Close()

	var replies []domain.MessageReply
	for rows.Next() {
		var rep domain.MessageReply
		if err := rows.Scan(&rep.ID, &rep.RecipientEmail, &rep.Subject, &rep.Body, &rep.SentAt); err != nil {
			return nil, fmt.Errorf("scan reply: %w", err)
		}
		replies = append(replies, rep)
	}
	return replies, rows.Err()
}
