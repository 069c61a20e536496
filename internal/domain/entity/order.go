package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Order represents a billing order. Payment processing attaches the payment
// UUID once the provider confirms the charge.
type Order struct {
	UUID        uuid.UUID     `json:"uuid"`                   // Identifier assigned by the billing service.
	Code        string        `json:"code"`                   // Human-facing order code, referenced by provider notifications.
	StatusID    OrderStatusID `json:"status_id"`              // Order status catalog id.
	PaymentUUID *uuid.UUID    `json:"payment_uuid,omitempty"` // Confirmed payment, nil until linked.
}

// Payment represents a confirmed provider payment created from a decoded
// notification payload.
type Payment struct {
	UUID      uuid.UUID       `json:"uuid"`       // Identifier assigned by the billing service.
	OrderCode string          `json:"order_code"` // Order the payment settles.
	Payload   json.RawMessage `json:"payload"`    // Raw provider notification data, stored verbatim.
}
