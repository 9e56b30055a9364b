// Package pricing holds the money rules shared by the cart and checkout:
// which price a product sells at and how line and cart totals add up.
package pricing

import (
	"errors"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// MaxAmount is the largest value a NUMERIC(12,2) column holds.
var MaxAmount = decimal.RequireFromString("9999999999.99")

var (
	ErrAmountScale = errors.New("must have at most 2 decimal places")
	ErrAmountRange = errors.New("must not exceed 9999999999.99")
)

// CheckAmount rejects amounts the price columns would round or overflow.
func CheckAmount(amount decimal.Decimal) error {
	if !amount.Equal(amount.Round(2)) {
		return ErrAmountScale
	}
	if amount.GreaterThan(MaxAmount) {
		return ErrAmountRange
	}

	return nil
}

// UnitPrice is the discount price when present and positive, otherwise the
// base price. A product that failed to resolve sells at zero.
func UnitPrice(p *models.Product) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}

	if p.DiscountPrice.Valid && p.DiscountPrice.Decimal.IsPositive() {
		return p.DiscountPrice.Decimal
	}

	return p.Price
}

func LineTotal(line models.CartLine) decimal.Decimal {
	return UnitPrice(line.Product).Mul(decimal.NewFromInt(int64(line.Quantity)))
}

// Total sums unit price times quantity over all lines. It never fails.
func Total(lines []models.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(LineTotal(line))
	}

	return total
}

// ItemCount is the number of units across all lines.
func ItemCount(lines []models.CartLine) int {
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}

	return count
}

// HasDiscount reports whether the product shows a discount: a positive
// discount strictly below the base price.
func HasDiscount(p *models.Product) bool {
	if p == nil || !p.DiscountPrice.Valid {
		return false
	}

	d := p.DiscountPrice.Decimal

	return d.IsPositive() && d.LessThan(p.Price)
}

// DiscountPercent is the rounded percentage saved, or 0 without a discount.
func DiscountPercent(p *models.Product) int64 {
	if !HasDiscount(p) || !p.Price.IsPositive() {
		return 0
	}

	return p.Price.Sub(p.DiscountPrice.Decimal).Div(p.Price).Mul(hundred).Round(0).IntPart()
}

// Cents converts an amount to minor currency units, rounding half away from zero.
func Cents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

func View(p *models.Product) models.ProductView {
	return models.ProductView{
		Product:         p,
		EffectivePrice:  UnitPrice(p),
		DiscountPercent: DiscountPercent(p),
	}
}
