package repository_test

import (
	"database/sql"
	"database/sql/driver"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var productCols = []string{"id", "name", "description", "price", "discount_price", "image_url",
	"category", "sizes", "colors", "stock", "created_at", "updated_at"}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return db, mock
}

func sampleProduct() *models.Product {
	now := time.Now().Truncate(time.Second)

	return &models.Product{
		ID:            uuid.New(),
		Name:          "Linen Shirt",
		Description:   "Breathable summer shirt",
		Price:         decimal.RequireFromString("120.00"),
		DiscountPrice: decimal.NewNullDecimal(decimal.RequireFromString("90.00")),
		ImageURL:      "https://cdn.example.com/shirt.png",
		Category:      models.CategoryTops,
		Sizes:         []string{"S", "M"},
		Colors:        []string{"white"},
		Stock:         5,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// productValues renders a product the way Postgres hands it to the driver.
func productValues(p *models.Product) []driver.Value {
	var discount driver.Value
	if p.DiscountPrice.Valid {
		discount = p.DiscountPrice.Decimal.StringFixed(2)
	}

	return []driver.Value{p.ID.String(), p.Name, p.Description, p.Price.StringFixed(2), discount, p.ImageURL,
		string(p.Category), "{" + strings.Join(p.Sizes, ",") + "}", "{" + strings.Join(p.Colors, ",") + "}",
		int64(p.Stock), p.CreatedAt, p.UpdatedAt}
}

func nullProductValues() []driver.Value {
	return make([]driver.Value, len(productCols))
}
