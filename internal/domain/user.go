package domain

import (
	"context"
	"time"
)

// User represents an administrator account allowed to manage site content.
type User struct {
	ID           int64
	Email        string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is the authenticated identity threaded through every operation
// that writes to the store. A nil *Session means "not authenticated".
type Session struct {
	UserID int64
	Email  string
}

// TokenPair is the credential set issued on login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserRepository defines persistence operations for admin users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
