package domain

import (
	"context"
	"time"
)

// Order is a package purchase request submitted through the public site.
// OrderID is the public identifier used in routes and customer emails.
type Order struct {
	OrderID      string
	Name         string
	Email        string
	Phone        string
	Company      string
	Message      string
	Budget       string
	Timeline     string
	PackageName  string
	PackagePrice string
	Status       string
	CreatedAt    time.Time
}

const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusInProgress = "in-progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses lists every status an order may hold. Transitions are
// unrestricted; the dashboard moves orders between any two statuses.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusInProgress,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	GetByOrderID(ctx context.Context, orderID string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
	Delete(ctx context.Context, orderID string) error
}
