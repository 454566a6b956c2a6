package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zetaenergy/zeta_books/internal/core/domain"
)

// CreateTransactionRequest is the payload for recording a sale.
// Date defaults to the current time when omitted.
type CreateTransactionRequest struct {
	ClientID     string          `json:"clientId" binding:"required"`
	ProductID    string          `json:"productId" binding:"required"`
	Quantity     int64           `json:"quantity" binding:"required,min=1"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit" binding:"required"`
	AmountPaid   decimal.Decimal `json:"amountPaid"`
	Date         *time.Time      `json:"date"`
}

// AmendTransactionRequest replaces the amount paid on an existing
// transaction.
type AmendTransactionRequest struct {
	AmountPaid decimal.Decimal `json:"amountPaid"`
}

// TransactionEditResponse is one entry of the amendment audit trail.
type TransactionEditResponse struct {
	Date               time.Time       `json:"date"`
	PreviousAmountPaid decimal.Decimal `json:"previousAmountPaid"`
	NewAmountPaid      decimal.Decimal `json:"newAmountPaid"`
	PreviousStatus     string          `json:"previousStatus"`
	NewStatus          string          `json:"newStatus"`
}

// TransactionResponse is the API representation of a transaction, with the
// client and product references resolved to display names ("Unknown Client"
// / "Unknown Product" when dangling).
type TransactionResponse struct {
	TransactionID string                    `json:"id"`
	ClientID      string                    `json:"clientId"`
	ClientName    string                    `json:"clientName"`
	ProductID     string                    `json:"productId"`
	ProductName   string                    `json:"productName"`
	Quantity      int64                     `json:"quantity"`
	PricePerUnit  decimal.Decimal           `json:"pricePerUnit"`
	TotalPrice    decimal.Decimal           `json:"totalPrice"`
	Date          time.Time                 `json:"date"`
	PaymentStatus string                    `json:"paymentStatus"`
	AmountPaid    decimal.Decimal           `json:"amountPaid"`
	AmountDue     decimal.Decimal           `json:"amountDue"`
	EditHistory   []TransactionEditResponse `json:"editHistory,omitempty"`
	LastEditedAt  *time.Time                `json:"lastEditedAt,omitempty"`
}

// ToTransactionResponse converts a domain transaction, attaching resolved
// display names supplied by the caller.
func ToTransactionResponse(t domain.Transaction, clientName, productName string) TransactionResponse {
	resp := TransactionResponse{
		TransactionID: t.TransactionID,
		ClientID:      t.ClientID,
		ClientName:    clientName,
		ProductID:     t.ProductID,
		ProductName:   productName,
		Quantity:      t.Quantity,
		PricePerUnit:  t.PricePerUnit,
		TotalPrice:    t.TotalPrice,
		Date:          t.Date,
		PaymentStatus: string(t.PaymentStatus),
		AmountPaid:    t.AmountPaid,
		AmountDue:     t.AmountDue,
		LastEditedAt:  t.LastEditedAt,
	}
	if len(t.EditHistory) > 0 {
		resp.EditHistory = make([]TransactionEditResponse, len(t.EditHistory))
		for i, e := range t.EditHistory {
			resp.EditHistory[i] = TransactionEditResponse{
				Date:               e.Date,
				PreviousAmountPaid: e.PreviousAmountPaid,
				NewAmountPaid:      e.NewAmountPaid,
				PreviousStatus:     string(e.PreviousStatus),
				NewStatus:          string(e.NewStatus),
			}
		}
	}
	return resp
}
