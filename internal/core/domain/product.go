package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// UnknownProductName is the display fallback for a transaction whose product
// reference no longer resolves.
const UnknownProductName = "Unknown Product"

// ProductCategory classifies the packaging of a catalog entry.
type ProductCategory string

const (
	CategoryPail         ProductCategory = "Pail"
	CategoryDrums        ProductCategory = "Drums"
	CategoryIBC          ProductCategory = "IBC"
	CategorySmallBottles ProductCategory = "Small Bottles"
)

// ValidCategory reports whether c is one of the known packaging categories.
func ValidCategory(c ProductCategory) bool {
	switch c {
	case CategoryPail, CategoryDrums, CategoryIBC, CategorySmallBottles:
		return true
	}
	return false
}

// Product is a catalog entry. Products are immutable once created and the
// catalog is append-only; uniqueness is enforced on the case-insensitive
// (name, size) pair, not on the ID.
type Product struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Size      string          `json:"size"`
	Category  ProductCategory `json:"category"`
}

// ProductSlug derives the deterministic product ID from the creation time,
// name and size: lower-cased, with whitespace collapsed to underscores.
// Two calls within the same millisecond with identical name and size would
// collide, but the duplicate check on (name, size) already blocks that case.
func ProductSlug(at time.Time, name, size string) string {
	slug := fmt.Sprintf("%d_%s_%s", at.UnixMilli(), name, size)
	slug = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, slug)
	return strings.ToLower(slug)
}

// SameProduct reports whether two (name, size) pairs identify the same
// product, ignoring case and surrounding whitespace. Category is
// deliberately not part of product identity.
func SameProduct(aName, aSize, bName, bSize string) bool {
	return strings.EqualFold(strings.TrimSpace(aName), strings.TrimSpace(bName)) &&
		strings.EqualFold(strings.TrimSpace(aSize), strings.TrimSpace(bSize))
}
