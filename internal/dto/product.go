package dto

import "github.com/zetaenergy/zeta_books/internal/core/domain"

// CreateProductRequest is the payload for adding a product to the catalog.
type CreateProductRequest struct {
	Name     string `json:"name" binding:"required"`
	Size     string `json:"size" binding:"required"`
	Category string `json:"category" binding:"required,oneof=Pail Drums IBC 'Small Bottles'"`
}

// ProductResponse is the API representation of a catalog entry.
type ProductResponse struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Category  string `json:"category"`
}

// ToProductResponse converts a domain product to its response DTO.
func ToProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ProductID: p.ProductID,
		Name:      p.Name,
		Size:      p.Size,
		Category:  string(p.Category),
	}
}

// ToProductResponses converts a slice of domain products.
func ToProductResponses(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ToProductResponse(p)
	}
	return out
}
