package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/minimindteam/Dash/internal/domain"
)

// orderRepo implements domain.OrderRepository using SQLite.
type orderRepo struct {
	db *sql.DB
}

const orderColumns = `order_id, name, email, phone, company, message, budget, timeline,
	 package_name, package_price, status, created_at`

func (r *orderRepo) Create(ctx context.Context, order *domain.Order) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO orders (order_id, name, email, phone, company, message, budget, timeline, package_name, package_price, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.OrderID, order.Name, order.Email, order.Phone, order.Company,
		order.Message, order.Budget, order.Timeline, order.PackageName,
		order.PackagePrice, order.Status, now,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	order.CreatedAt = now
	return nil
}

func (r *orderRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	o := &domain.Order{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_id = ?`, orderID,
	).Scan(&o.OrderID, &o.Name, &o.Email, &o.Phone, &o.Company, &o.Message,
		&o.Budget, &o.Timeline, &o.PackageName, &o.PackagePrice, &o.Status, &o.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (r *orderRepo) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.OrderID, &o.Name, &o.Email, &o.Phone, &o.Company, &o.Message,
			&o.Budget, &o.Timeline, &o.PackageName, &o.PackagePrice, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *orderRepo) UpdateStatus(ctx context.Context, orderID, status string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status = ? WHERE order_id = ?", status, orderID)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
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

func (r *orderRepo) Delete(ctx context.Context, orderID string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM orders WHERE order_id = ?", orderID)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
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
