// Package entity contains the data objects exchanged with the upstream
// services. The gateway composes them but owns no persistent storage.
package entity

import (
	"github.com/google/uuid"
)

// User is the identity record served by the identity upstream. All credential
// state is owned remotely; the gateway only reads and forwards it.
type User struct {
	UUID               uuid.UUID `json:"uuid"`                 // Identifier assigned by the identity service.
	Email              string    `json:"email"`                // Primary login identifier.
	IsExpired          bool      `json:"is_expired"`           // Account has passed its validity window.
	IsLocked           bool      `json:"is_locked"`            // Account locked by the identity service.
	IsPasswordExpired  bool      `json:"is_password_expired"`  // Credential must be rotated before use.
	IsEnabled          bool      `json:"is_enabled"`           // Account is allowed to authenticate.
	IsPincodeActivated bool      `json:"is_pincode_activated"` // Account was activated through a pin code.
	PinCode            string    `json:"pin_code,omitempty"`   // Pairing pin code, present only while pairing is open.
}
