// Package cart plans cart mutations as plain values so the rules can be
// checked without a store. Services apply the resulting Mutation.
package cart

import (
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
)

// MaxQuantity caps a single line.
const MaxQuantity = 999

type MutationKind string

const (
	MutationInsert MutationKind = "insert"
	MutationUpdate MutationKind = "update"
	MutationDelete MutationKind = "delete"
)

// Mutation is one store write. Insert always carries quantity 1.
type Mutation struct {
	Kind     MutationKind
	LineID   uuid.UUID
	Line     models.CartLine
	Quantity int
}

// FindLine returns the line holding the product variant, if any.
func FindLine(lines []models.CartLine, productID uuid.UUID, size, color string) (models.CartLine, bool) {
	for _, line := range lines {
		if line.SameItem(productID, size, color) {
			return line, true
		}
	}

	return models.CartLine{}, false
}

// PlanAdd inserts a new line with quantity 1, or bumps the existing line for
// the same (product, size, color) through PlanSetQuantity.
func PlanAdd(lines []models.CartLine, userID, productID uuid.UUID, size, color string) Mutation {
	if existing, ok := FindLine(lines, productID, size, color); ok {
		return PlanSetQuantity(existing, existing.Quantity+1)
	}

	return Mutation{
		Kind: MutationInsert,
		Line: models.CartLine{
			ID:        uuid.New(),
			UserID:    userID,
			ProductID: productID,
			Quantity:  1,
			Size:      size,
			Color:     color,
		},
		Quantity: 1,
	}
}

// PlanSetQuantity deletes the line for quantity <= 0, otherwise updates it.
func PlanSetQuantity(line models.CartLine, quantity int) Mutation {
	if quantity <= 0 {
		return Mutation{Kind: MutationDelete, LineID: line.ID, Line: line}
	}

	return Mutation{Kind: MutationUpdate, LineID: line.ID, Line: line, Quantity: quantity}
}
