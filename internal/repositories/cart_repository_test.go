package repository_test

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cartLineCols = append([]string{"id", "user_id", "product_id", "quantity", "size", "color", "created_at"}, productCols...)

func cartLineRow(lineID, userID, productID uuid.UUID, quantity int, product []driver.Value) []driver.Value {
	return append([]driver.Value{lineID.String(), userID.String(), productID.String(), int64(quantity), "M", "white", time.Now()}, product...)
}

func TestCartRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewCartRepo(db)
	ctx := t.Context()
	userID := uuid.New()

	t.Run("ListLines", func(t *testing.T) {
		t.Run("Success - Resolves Products", func(t *testing.T) {
			// Arrange
			product := sampleProduct()
			lineID := uuid.New()
			mock.ExpectQuery(regexp.QuoteMeta(`LEFT JOIN products p ON p.id = ci.product_id`)).
				WithArgs(userID).
				WillReturnRows(sqlmock.NewRows(cartLineCols).
					AddRow(cartLineRow(lineID, userID, product.ID, 2, productValues(product))...))

			// Act
			lines, err := repo.ListLines(ctx, userID)

			// Assert
			require.NoError(t, err)
			require.Len(t, lines, 1)
			assert.Equal(t, lineID, lines[0].ID)
			assert.Equal(t, 2, lines[0].Quantity)
			require.NotNil(t, lines[0].Product)
			assert.Equal(t, product.Name, lines[0].Product.Name)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Success - Missing Product Resolves To Nil", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(`WHERE ci.user_id = $1`)).
				WithArgs(userID).
				WillReturnRows(sqlmock.NewRows(cartLineCols).
					AddRow(cartLineRow(uuid.New(), userID, uuid.New(), 1, nullProductValues())...))

			lines, err := repo.ListLines(ctx, userID)

			require.NoError(t, err)
			require.Len(t, lines, 1)
			assert.Nil(t, lines[0].Product)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Success - Empty Cart", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(`WHERE ci.user_id = $1`)).
				WithArgs(userID).
				WillReturnRows(sqlmock.NewRows(cartLineCols))

			lines, err := repo.ListLines(ctx, userID)

			require.NoError(t, err)
			assert.NotNil(t, lines)
			assert.Empty(t, lines)
		})

		t.Run("Failure - Query Error", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(`WHERE ci.user_id = $1`)).
				WithArgs(userID).
				WillReturnError(errors.New("db down"))

			lines, err := repo.ListLines(ctx, userID)

			require.Error(t, err)
			assert.Nil(t, lines)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetLine", func(t *testing.T) {
		t.Run("Failure - Other User's Line", func(t *testing.T) {
			lineID := uuid.New()
			mock.ExpectQuery(regexp.QuoteMeta(`WHERE ci.id = $1 AND ci.user_id = $2`)).
				WithArgs(lineID, userID).
				WillReturnRows(sqlmock.NewRows(cartLineCols))

			line, err := repo.GetLine(ctx, userID, lineID)

			require.ErrorIs(t, err, repository.ErrNotFound)
			assert.Nil(t, line)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("InsertLine", func(t *testing.T) {
		t.Run("Success - Upsert Returns Merged Quantity", func(t *testing.T) {
			// Arrange
			existingID := uuid.New()
			line := &models.CartLine{ID: uuid.New(), UserID: userID, ProductID: uuid.New(), Quantity: 1, Size: "M", Color: "white"}

			mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (user_id, product_id, size, color)`)).
				WithArgs(line.ID, line.UserID, line.ProductID, 1, "M", "white").
				WillReturnRows(sqlmock.NewRows([]string{"id", "quantity", "created_at"}).
					AddRow(existingID.String(), int64(3), time.Now()))

			// Act
			err := repo.InsertLine(ctx, line)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, existingID, line.ID)
			assert.Equal(t, 3, line.Quantity)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Database Error", func(t *testing.T) {
			line := &models.CartLine{ID: uuid.New(), UserID: userID, ProductID: uuid.New(), Quantity: 1}
			mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO cart_items`)).WillReturnError(errors.New("fk violation"))

			err := repo.InsertLine(ctx, line)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to insert cart line")
		})
	})

	t.Run("UpdateQuantity", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			lineID := uuid.New()
			mock.ExpectExec(regexp.QuoteMeta(`UPDATE cart_items SET quantity = $1 WHERE id = $2 AND user_id = $3`)).
				WithArgs(4, lineID, userID).
				WillReturnResult(sqlmock.NewResult(0, 1))

			require.NoError(t, repo.UpdateQuantity(ctx, userID, lineID, 4))
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Not Found", func(t *testing.T) {
			lineID := uuid.New()
			mock.ExpectExec(regexp.QuoteMeta(`UPDATE cart_items`)).
				WithArgs(4, lineID, userID).
				WillReturnResult(sqlmock.NewResult(0, 0))

			require.ErrorIs(t, repo.UpdateQuantity(ctx, userID, lineID, 4), repository.ErrNotFound)
		})
	})

	t.Run("DeleteLine", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			lineID := uuid.New()
			mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM cart_items WHERE id = $1 AND user_id = $2`)).
				WithArgs(lineID, userID).
				WillReturnResult(sqlmock.NewResult(0, 1))

			require.NoError(t, repo.DeleteLine(ctx, userID, lineID))
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Rows Affected Error", func(t *testing.T) {
			lineID := uuid.New()
			mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM cart_items`)).
				WithArgs(lineID, userID).
				WillReturnResult(sqlmock.NewErrorResult(errors.New("driver error")))

			err := repo.DeleteLine(ctx, userID, lineID)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to get affected rows")
		})
	})
}
