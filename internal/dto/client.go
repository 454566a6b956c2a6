package dto

import (
	"time"

	"github.com/zetaenergy/zeta_books/internal/core/domain"
)

// CreateClientRequest is the payload for registering a new client.
type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// ClientResponse is the API representation of a client.
type ClientResponse struct {
	ClientID  string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToClientResponse converts a domain client to its response DTO.
func ToClientResponse(c domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:  c.ClientID,
		Name:      c.Name,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

// ToClientResponses converts a slice of domain clients.
func ToClientResponses(clients []domain.Client) []ClientResponse {
	out := make([]ClientResponse, len(clients))
	for i, c := range clients {
		out[i] = ToClientResponse(c)
	}
	return out
}
