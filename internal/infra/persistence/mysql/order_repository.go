package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domcart "example.com/dropship-manager/internal/domain/cart"
	domorder "example.com/dropship-manager/internal/domain/order"
	domproduct "example.com/dropship-manager/internal/domain/product"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, reference, customer_name, customer_email, product_id,
    product_name, quantity, unit_price, total_amount, status, tracking_number,
    created_at, updated_at`

// CreateBatch creates one order per cart line inside a single transaction.
// Each line locks its product row, checks stock and decrements it; any
// failure rolls back every order in the batch. Totals are computed from the
// unit price captured in the cart line, not the live catalog price.
func (r *OrderRepository) CreateBatch(ctx context.Context, customer domorder.Customer, lines []domcart.Line) (_ []*domorder.Order, retErr error) {
	if len(lines) == 0 {
		return nil, domorder.ErrEmptyCheckout
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		var name string
		var status domproduct.Status
		var stock int64

		row := tx.QueryRowContext(ctx, `
            SELECT name, status, stock_quantity
            FROM products
            WHERE id = ?
            FOR UPDATE
        `, line.ProductID)
		if err = row.Scan(&name, &status, &stock); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				retErr = fmt.Errorf("product %d: %w", line.ProductID, domproduct.ErrProductNotFound)
				return nil, retErr
			}
			retErr = err
			return nil, retErr
		}

		if status != domproduct.StatusActive || stock < line.Quantity {
			retErr = fmt.Errorf("product %d: %w", line.ProductID, domproduct.ErrOutOfStock)
			return nil, retErr
		}

		if _, err = tx.ExecContext(ctx, `
            UPDATE products SET stock_quantity = stock_quantity - ?
            WHERE id = ?
        `, line.Quantity, line.ProductID); err != nil {
			retErr = err
			return nil, retErr
		}

		total := line.UnitPrice * float64(line.Quantity)
		res, err2 := tx.ExecContext(ctx, `
            INSERT INTO orders (reference, customer_name, customer_email, product_id,
                product_name, quantity, unit_price, total_amount, status)
            VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
        `, uuid.NewString(), customer.Name, customer.Email, line.ProductID,
			name, line.Quantity, line.UnitPrice, total, domorder.StatusPending)
		if err2 != nil {
			retErr = err2
			return nil, retErr
		}
		id, _ := res.LastInsertId()
		ids = append(ids, id)
	}

	if err = tx.Commit(); err != nil {
		retErr = err
		return nil, retErr
	}

	orders := make([]*domorder.Order, 0, len(ids))
	for _, id := range ids {
		o, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *domorder.Order) (*domorder.Order, error) {
	if o.Reference == "" {
		o.Reference = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = domorder.StatusPending
	}
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO orders (reference, customer_name, customer_email, product_id,
            product_name, quantity, unit_price, total_amount, status, tracking_number)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `, o.Reference, o.CustomerName, o.CustomerEmail, o.ProductID, o.ProductName,
		o.Quantity, o.UnitPrice, o.TotalAmount, o.Status, o.TrackingNumber)
	if err != nil {
		return nil, err
	}
	o.ID, _ = res.LastInsertId()
	return r.GetByID(ctx, o.ID)
}

func (r *OrderRepository) List(ctx context.Context) ([]*domorder.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*domorder.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domorder.Order, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT `+orderColumns+` FROM orders WHERE id = ?
    `, id)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domorder.ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status domorder.Status, trackingNumber string) (*domorder.Order, error) {
	var res sql.Result
	var err error
	if trackingNumber != "" {
		res, err = r.db.ExecContext(ctx, `
            UPDATE orders SET status = ?, tracking_number = ?, updated_at = NOW()
            WHERE id = ?
        `, status, trackingNumber, id)
	} else {
		res, err = r.db.ExecContext(ctx, `
            UPDATE orders SET status = ?, updated_at = NOW() WHERE id = ?
        `, status, id)
	}
	if err != nil {
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

func (r *OrderRepository) Overview(ctx context.Context) (*domorder.Overview, error) {
	var ov domorder.Overview
	err := r.db.QueryRowContext(ctx, `
        SELECT
            COUNT(*),
            COALESCE(SUM(status = ?), 0),
            COALESCE(SUM(status = ?), 0),
            COALESCE(SUM(CASE WHEN status IN (?, ?) THEN total_amount ELSE 0 END), 0)
        FROM orders
    `, domorder.StatusPending, domorder.StatusProcessing,
		domorder.StatusShipped, domorder.StatusDelivered).
		Scan(&ov.TotalOrders, &ov.PendingOrders, &ov.ProcessingOrders, &ov.TotalRevenue)
	if err != nil {
		return nil, err
	}
	return &ov, nil
}

func scanOrder(row interface{ Scan(dest ...any) error }) (*domorder.Order, error) {
	var o domorder.Order
	err := row.Scan(&o.ID, &o.Reference, &o.CustomerName, &o.CustomerEmail,
		&o.ProductID, &o.ProductName, &o.Quantity, &o.UnitPrice, &o.TotalAmount,
		&o.Status, &o.TrackingNumber, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
