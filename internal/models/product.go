package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryTops        Category = "tops"
	CategoryBottoms     Category = "bottoms"
	CategoryDresses     Category = "dresses"
	CategoryAccessories Category = "accessories"

	// CategoryAll is the catalog filter sentinel, never stored on a product.
	CategoryAll Category = "all"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryTops, CategoryBottoms, CategoryDresses, CategoryAccessories:
		return true
	}

	return false
}

var DefaultSizes = []string{"XS", "S", "M", "L", "XL"}

type Product struct {
	ID            uuid.UUID           `json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Price         decimal.Decimal     `json:"price"`
	DiscountPrice decimal.NullDecimal `json:"discount_price"`
	ImageURL      string              `json:"image_url"`
	Category      Category            `json:"category"`
	Sizes         []string            `json:"sizes"`
	Colors        []string            `json:"colors"`
	Stock         int                 `json:"stock"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// ProductView is a product as shown in the catalog, with its discount badge.
type ProductView struct {
	*Product
	EffectivePrice  decimal.Decimal `json:"effective_price"`
	DiscountPercent int64           `json:"discount_percent,omitempty"`
}

type CreateProductRequest struct {
	Name          string           `json:"name" validate:"required,min=2,max=200"`
	Description   string           `json:"description" validate:"max=2000"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price,omitempty"`
	ImageURL      string           `json:"image_url" validate:"omitempty,url"`
	Category      Category         `json:"category" validate:"required,oneof=tops bottoms dresses accessories"`
	Sizes         []string         `json:"sizes,omitempty" validate:"omitempty,dive,required"`
	Colors        []string         `json:"colors,omitempty" validate:"omitempty,dive,required"`
	Stock         int              `json:"stock" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description   *string          `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	DiscountPrice *decimal.Decimal `json:"discount_price,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty" validate:"omitempty,url"`
	Category      *Category        `json:"category,omitempty" validate:"omitempty,oneof=tops bottoms dresses accessories"`
	Sizes         []string         `json:"sizes,omitempty" validate:"omitempty,dive,required"`
	Colors        []string         `json:"colors,omitempty" validate:"omitempty,dive,required"`
	Stock         *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
}
