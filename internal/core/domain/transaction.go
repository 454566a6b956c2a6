package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus indicates whether a transaction has been fully paid.
type PaymentStatus string

const (
	StatusSettled PaymentStatus = "settled"
	StatusPending PaymentStatus = "pending"
)

// DisplayName renders the status the way it appears in reports and exports.
func (s PaymentStatus) DisplayName() string {
	if s == StatusSettled {
		return "Settled"
	}
	return "Pending Payment"
}

// Transaction records a single sale of a product to a client. TotalPrice is
// frozen at creation (Quantity × PricePerUnit) and never re-derived from the
// current quantity and price afterwards. AmountPaid, AmountDue, PaymentStatus,
// EditHistory and LastEditedAt are the only mutable fields, and they only
// change together through ApplyPayment.
//
// ClientID and ProductID are foreign references with no enforced existential
// integrity; a dangling reference resolves to a sentinel display name.
type Transaction struct {
	TransactionID string            `json:"id"`
	ClientID      string            `json:"clientId"`
	ProductID     string            `json:"productId"`
	Quantity      int64             `json:"quantity"`
	PricePerUnit  decimal.Decimal   `json:"pricePerUnit"`
	TotalPrice    decimal.Decimal   `json:"totalPrice"`
	Date          time.Time         `json:"date"`
	PaymentStatus PaymentStatus     `json:"paymentStatus"`
	AmountPaid    decimal.Decimal   `json:"amountPaid"`
	AmountDue     decimal.Decimal   `json:"amountDue"`
	EditHistory   []TransactionEdit `json:"editHistory,omitempty"`
	LastEditedAt  *time.Time        `json:"lastEditedAt,omitempty"`
}

// TransactionEdit is one immutable entry in a transaction's append-only
// amendment log.
type TransactionEdit struct {
	Date               time.Time       `json:"date"`
	PreviousAmountPaid decimal.Decimal `json:"previousAmountPaid"`
	NewAmountPaid      decimal.Decimal `json:"newAmountPaid"`
	PreviousStatus     PaymentStatus   `json:"previousStatus"`
	NewStatus          PaymentStatus   `json:"newStatus"`
}

// StatusFor derives the payment status from an amount due. Status is always
// a pure function of the amount due and is never set independently.
func StatusFor(amountDue decimal.Decimal) PaymentStatus {
	if amountDue.IsZero() {
		return StatusSettled
	}
	return StatusPending
}

// AmountDueFor computes the outstanding amount, clamped at zero so an
// overpayment never produces a negative due.
func AmountDueFor(totalPrice, amountPaid decimal.Decimal) decimal.Decimal {
	due := totalPrice.Sub(amountPaid)
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}

// ClampPayment restricts a payment amount to the range [0, totalPrice].
func ClampPayment(amountPaid, totalPrice decimal.Decimal) decimal.Decimal {
	if amountPaid.IsNegative() {
		return decimal.Zero
	}
	if amountPaid.GreaterThan(totalPrice) {
		return totalPrice
	}
	return amountPaid
}

// ApplyPayment returns a copy of the transaction with the payment replaced by
// newAmountPaid (clamped to [0, TotalPrice]), the due amount and status
// re-derived from the frozen TotalPrice, and exactly one edit appended to the
// history. An amendment that leaves the amount unchanged still records an
// edit. The receiver is not modified; callers are responsible for persisting
// the returned value.
func (t Transaction) ApplyPayment(newAmountPaid decimal.Decimal, at time.Time) Transaction {
	previousPaid := t.AmountPaid
	previousStatus := t.PaymentStatus

	paid := ClampPayment(newAmountPaid, t.TotalPrice)
	due := AmountDueFor(t.TotalPrice, paid)
	status := StatusFor(due)

	history := make([]TransactionEdit, len(t.EditHistory), len(t.EditHistory)+1)
	copy(history, t.EditHistory)
	history = append(history, TransactionEdit{
		Date:               at,
		PreviousAmountPaid: previousPaid,
		NewAmountPaid:      paid,
		PreviousStatus:     previousStatus,
		NewStatus:          status,
	})

	t.AmountPaid = paid
	t.AmountDue = due
	t.PaymentStatus = status
	t.EditHistory = history
	t.LastEditedAt = &at
	return t
}
