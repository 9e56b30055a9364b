// Package catalog holds the in-memory catalog queries.
package catalog

import (
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/models"
)

// Filter keeps products whose name or description contains searchTerm
// (case-insensitive) and whose category matches, unless category is
// CategoryAll or empty. Input order is preserved.
func Filter(products []*models.Product, searchTerm string, category models.Category) []*models.Product {
	term := strings.ToLower(searchTerm)
	filtered := make([]*models.Product, 0, len(products))

	for _, p := range products {
		if p == nil {
			continue
		}

		matchesSearch := strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term)
		matchesCategory := category == models.CategoryAll || category == "" || p.Category == category

		if matchesSearch && matchesCategory {
			filtered = append(filtered, p)
		}
	}

	return filtered
}
