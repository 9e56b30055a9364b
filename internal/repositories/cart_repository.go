package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/google/uuid"
)

type CartRepository interface {
	ListLines(ctx context.Context, userID uuid.UUID) ([]models.CartLine, error)
	GetLine(ctx context.Context, userID, lineID uuid.UUID) (*models.CartLine, error)
	InsertLine(ctx context.Context, line *models.CartLine) error
	UpdateQuantity(ctx context.Context, userID, lineID uuid.UUID, quantity int) error
	DeleteLine(ctx context.Context, userID, lineID uuid.UUID) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

const cartLineSelect = `
	SELECT ci.id, ci.user_id, ci.product_id, ci.quantity, ci.size, ci.color, ci.created_at, ` + productColumns + `
	FROM cart_items ci
	LEFT JOIN products p ON p.id = ci.product_id
`

func scanCartLine(row rowScanner) (models.CartLine, error) {
	var line models.CartLine
	var product joinedProduct

	dest := append([]any{&line.ID, &line.UserID, &line.ProductID, &line.Quantity, &line.Size, &line.Color, &line.CreatedAt},
		product.targets()...)

	if err := row.Scan(dest...); err != nil {
		return models.CartLine{}, err
	}

	line.Product = product.product()

	return line, nil
}

// ListLines returns the user's lines with their products resolved, oldest first.
func (r *cartRepository) ListLines(ctx context.Context, userID uuid.UUID) ([]models.CartLine, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, cartLineSelect+` WHERE ci.user_id = $1 ORDER BY ci.created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart lines: %w", err)
	}
	defer rows.Close()

	lines := []models.CartLine{}

	for rows.Next() {
		line, err := scanCartLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}

		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func (r *cartRepository) GetLine(ctx context.Context, userID, lineID uuid.UUID) (*models.CartLine, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	line, err := scanCartLine(r.DB.QueryRowContext(dbCtx, cartLineSelect+` WHERE ci.id = $1 AND ci.user_id = $2`, lineID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("querying cart line: %w", err)
	}

	return &line, nil
}

// InsertLine adds a line, or bumps the quantity of the row that already holds
// the same (user, product, size, color) so concurrent adds converge on one line.
func (r *cartRepository) InsertLine(ctx context.Context, line *models.CartLine) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO cart_items (id, user_id, product_id, quantity, size, color, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (user_id, product_id, size, color)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, quantity, created_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, line.ID, line.UserID, line.ProductID, line.Quantity, line.Size, line.Color).
		Scan(&line.ID, &line.Quantity, &line.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert cart line: %w", err)
	}

	return nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, userID, lineID uuid.UUID, quantity int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE cart_items SET quantity = $1 WHERE id = $2 AND user_id = $3`, quantity, lineID, userID)
	if err != nil {
		return fmt.Errorf("failed to update cart line: %w", err)
	}

	return expectOneRow(result)
}

func (r *cartRepository) DeleteLine(ctx context.Context, userID, lineID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, lineID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete cart line: %w", err)
	}

	return expectOneRow(result)
}
