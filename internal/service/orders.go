package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/minimindteam/Dash/internal/domain"
)

// OrderService handles package orders: public intake from the pricing page
// and admin status management.
type OrderService struct {
	orders domain.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orders domain.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

var orderStatusRule = buildOrderStatusRule()

func buildOrderStatusRule() validation.Rule {
	statuses := make([]any, len(domain.OrderStatuses))
	for i, s := range domain.OrderStatuses {
		statuses[i] = s
	}
	return validation.In(statuses...)
}

// Submit accepts an order from the public site. No session needed. The
// order starts pending with a generated public identifier.
func (s *OrderService) Submit(ctx context.Context, order *domain.Order) error {
	err := validation.Errors{
		"name":         validation.Validate(order.Name, validation.Required),
		"email":        validation.Validate(order.Email, validation.Required, is.EmailFormat),
		"package_name": validation.Validate(order.PackageName, validation.Required),
	}.Filter()
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	orderID, err := generateOrderID()
	if err != nil {
		return fmt.Errorf("generate order id: %w", err)
	}
	order.OrderID = orderID
	order.Status = domain.OrderStatusPending

	if err := s.orders.Create(ctx, order); err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// List returns all orders, newest first.
func (s *OrderService) List(ctx context.Context, sess *domain.Session) ([]domain.Order, error) {
	if sess == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.orders.List(ctx)
}

// UpdateStatus moves an order to a new status. Transitions are
// unrestricted; the dashboard moves orders freely between statuses.
func (s *OrderService) UpdateStatus(ctx context.Context, sess *domain.Session, orderID, status string) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}

	if err := validation.Validate(status, validation.Required, orderStatusRule); err != nil {
		return fmt.Errorf("%w: status: %s", domain.ErrInvalidInput, err)
	}
	return s.orders.UpdateStatus(ctx, orderID, status)
}

// Delete removes one order.
func (s *OrderService) Delete(ctx context.Context, sess *domain.Session, orderID string) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	return s.orders.Delete(ctx, orderID)
}

func generateOrderID() (string, error) {
	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(suffix)), nil
}
