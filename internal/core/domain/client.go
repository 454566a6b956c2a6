package domain

import "time"

// UnknownClientName is the display fallback for a transaction whose client
// reference no longer resolves. Client deletion does not cascade to
// transactions, so dangling references are legal.
const UnknownClientName = "Unknown Client"

// Client is a business customer. ClientID is assigned at creation and never
// changes; the only mutation defined for clients is deletion.
type Client struct {
	ClientID  string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}
