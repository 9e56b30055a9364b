package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	CreateOrderFromCart(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error)
	Stats(ctx context.Context) (revenue decimal.Decimal, count int, err error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

// CreateOrderFromCart writes the order, its lines and clears the owner's cart
// in one transaction. Nothing is kept when any statement fails.
func (r *orderRepository) CreateOrderFromCart(ctx context.Context, order *models.Order) (err error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin checkout transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rollback failed: %w", rbErr))
			}
		}
	}()

	query := `
		INSERT INTO orders (id, user_id, total, status, payment_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	var paymentURL sql.NullString
	if order.PaymentURL != "" {
		paymentURL = sql.NullString{String: order.PaymentURL, Valid: true}
	}

	if err = tx.QueryRowContext(dbCtx, query, order.ID, order.UserID, order.Total, order.Status, paymentURL).
		Scan(&order.CreatedAt, &order.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, quantity, size, color, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING created_at
	`

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID

		if err = tx.QueryRowContext(dbCtx, itemQuery, item.ID, order.ID, item.ProductID, item.Quantity, item.Size, item.Color, item.Price).
			Scan(&item.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert an order item: %w", err)
		}
	}

	if err = clearConvertedLines(dbCtx, tx, order); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit checkout: %w", err)
	}

	return nil
}

// clearConvertedLines deletes the cart lines the order was built from, each
// only while it still holds the ordered quantity. A line removed or
// re-quantified since the cart was read makes the count differ and fails the
// checkout with ErrCartChanged. Lines added meanwhile stay in the cart.
func clearConvertedLines(ctx context.Context, tx *sql.Tx, order *models.Order) error {
	lineIDs := make([]string, len(order.Items))
	quantities := make([]int64, len(order.Items))

	for i, item := range order.Items {
		lineIDs[i] = item.CartLineID.String()
		quantities[i] = int64(item.Quantity)
	}

	query := `
		DELETE FROM cart_items ci
		USING unnest($2::uuid[], $3::int[]) AS snap(id, quantity)
		WHERE ci.user_id = $1 AND ci.id = snap.id AND ci.quantity = snap.quantity
	`

	result, err := tx.ExecContext(ctx, query, order.UserID, pq.Array(lineIDs), pq.Array(quantities))
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if affected != int64(len(order.Items)) {
		return fmt.Errorf("cleared %d of %d cart lines: %w", affected, len(order.Items), ErrCartChanged)
	}

	return nil
}

const orderColumns = `o.id, o.user_id, o.total, o.status, o.payment_url, o.created_at, o.updated_at`

func scanOrder(row rowScanner) (models.Order, error) {
	var order models.Order
	var paymentURL sql.NullString

	if err := row.Scan(&order.ID, &order.UserID, &order.Total, &order.Status, &paymentURL, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return models.Order{}, err
	}

	order.PaymentURL = paymentURL.String
	order.Items = []models.OrderLine{}

	return order, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order, err := scanOrder(r.DB.QueryRowContext(dbCtx, `SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get the order: %w", err)
	}

	orders := []models.Order{order}
	if err := r.attachItems(dbCtx, orders); err != nil {
		return nil, err
	}

	return &orders[0], nil
}

// ListOrdersByUser returns one page of the user's orders, newest first, and
// the user's total order count.
func (r *orderRepository) ListOrdersByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (page - 1) * size

	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan the orders: %w", err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachItems(dbCtx, orders); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// attachItems loads the lines of all given orders in one query, resolving
// each line's product when it still exists.
func (r *orderRepository) attachItems(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, len(orders))
	index := make(map[uuid.UUID]int, len(orders))

	for i, order := range orders {
		ids[i] = order.ID.String()
		index[order.ID] = i
	}

	query := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.size, oi.color, oi.price, oi.created_at, ` + productColumns + `
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1::uuid[])
		ORDER BY oi.created_at, oi.id
	`

	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to get the order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderLine
		var productID uuid.NullUUID
		var product joinedProduct

		dest := append([]any{&item.ID, &item.OrderID, &productID, &item.Quantity, &item.Size, &item.Color, &item.Price, &item.CreatedAt},
			product.targets()...)

		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("failed to scan order item: %w", err)
		}

		item.ProductID = productID.UUID
		item.Product = product.product()

		if i, ok := index[item.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}

// Stats returns revenue over paid orders and the number of orders.
func (r *orderRepository) Stats(ctx context.Context) (decimal.Decimal, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT COALESCE(SUM(total) FILTER (WHERE status = $1), 0), COUNT(*)
		FROM orders
	`

	var revenue decimal.Decimal
	var count int

	if err := r.DB.QueryRowContext(dbCtx, query, models.OrderStatusPaid).Scan(&revenue, &count); err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to compute order stats: %w", err)
	}

	return revenue, count, nil
}
