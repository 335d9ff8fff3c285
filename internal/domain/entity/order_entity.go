package entity

import (
	"encoding/json"
	"time"
)

const OrderStatusPending = "pending"

// Order snapshots the purchaser at creation time. Items are opaque to the core.
type Order struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"userId"`
	UserName  string            `json:"userName"`
	UserEmail string            `json:"userEmail"`
	Items     []json.RawMessage `json:"items"`
	Total     float64           `json:"total"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}
