package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice represents a client installation registered with the identity
// service, either directly or through a pin-code exchange.
type UserDevice struct {
	UUID           uuid.UUID      `json:"uuid"`                      // Identifier assigned by the identity service.
	UserUUID       uuid.UUID      `json:"user_uuid"`                 // Owning user.
	PlatformID     PlatformID     `json:"platform_id"`               // Client platform catalog id.
	VPNTypeID      VPNTypeID      `json:"vpn_type_id"`               // Protocol the device connects with.
	DeviceID       string         `json:"device_id"`                 // Client-supplied hardware identifier.
	DeviceToken    string         `json:"device_token"`              // Opaque token issued when the device was bound.
	VirtualIP      string         `json:"virtual_ip,omitempty"`      // Address inside the VPN overlay.
	DeviceIP       string         `json:"device_ip,omitempty"`       // Last seen public address.
	IsConnected    bool           `json:"is_connected"`              // Device currently holds a tunnel.
	ConnectedSince *time.Time     `json:"connected_since,omitempty"` // Start of the current tunnel, if any.
	PinCode        string         `json:"pin_code,omitempty"`        // Pin code the device was bound through, if any.
}
