package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context) ([]*models.Product, error)
	CountProducts(ctx context.Context) (int, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `p.id, p.name, p.description, p.price, p.discount_price, p.image_url,
	p.category, p.sizes, p.colors, p.stock, p.created_at, p.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	p := &models.Product{}

	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.DiscountPrice, &p.ImageURL,
		&p.Category, pq.Array(&p.Sizes), pq.Array(&p.Colors), &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// joinedProduct receives product columns from a LEFT JOIN, where every
// column is NULL when the referenced product no longer exists.
type joinedProduct struct {
	ID            uuid.NullUUID
	Name          sql.NullString
	Description   sql.NullString
	Price         decimal.NullDecimal
	DiscountPrice decimal.NullDecimal
	ImageURL      sql.NullString
	Category      sql.NullString
	Sizes         pq.StringArray
	Colors        pq.StringArray
	Stock         sql.NullInt64
	CreatedAt     sql.NullTime
	UpdatedAt     sql.NullTime
}

func (j *joinedProduct) targets() []any {
	return []any{&j.ID, &j.Name, &j.Description, &j.Price, &j.DiscountPrice, &j.ImageURL,
		&j.Category, &j.Sizes, &j.Colors, &j.Stock, &j.CreatedAt, &j.UpdatedAt}
}

func (j *joinedProduct) product() *models.Product {
	if !j.ID.Valid {
		return nil
	}

	return &models.Product{
		ID:            j.ID.UUID,
		Name:          j.Name.String,
		Description:   j.Description.String,
		Price:         j.Price.Decimal,
		DiscountPrice: j.DiscountPrice,
		ImageURL:      j.ImageURL.String,
		Category:      models.Category(j.Category.String),
		Sizes:         []string(j.Sizes),
		Colors:        []string(j.Colors),
		Stock:         int(j.Stock.Int64),
		CreatedAt:     j.CreatedAt.Time,
		UpdatedAt:     j.UpdatedAt.Time,
	}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO products (id, name, description, price, discount_price, image_url, category, sizes, colors, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, product.ID, product.Name, product.Description, product.Price,
		product.DiscountPrice, product.ImageURL, product.Category, pq.Array(product.Sizes), pq.Array(product.Colors),
		product.Stock).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	return nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("querying product: %w", err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, discount_price = $4, image_url = $5,
			category = $6, sizes = $7, colors = $8, stock = $9, updated_at = $10
		WHERE id = $11
	`

	now := time.Now()

	result, err := r.DB.ExecContext(dbCtx, query, product.Name, product.Description, product.Price,
		product.DiscountPrice, product.ImageURL, product.Category, pq.Array(product.Sizes),
		pq.Array(product.Colors), product.Stock, now, product.ID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	if err := expectOneRow(result); err != nil {
		return err
	}

	product.UpdatedAt = now

	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return expectOneRow(result)
}

// ListProducts returns the whole catalog, newest first.
func (r *productRepository) ListProducts(ctx context.Context) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products p ORDER BY p.created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*models.Product{}

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) CountProducts(ctx context.Context) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return total, nil
}
