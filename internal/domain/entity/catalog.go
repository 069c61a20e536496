package entity

// PlatformID identifies a client platform. The set is closed and the numeric
// values are part of the wire contract with the identity service.
type PlatformID int64

const (
	PlatformAndroid PlatformID = 1
	PlatformIOS     PlatformID = 2
	PlatformWindows PlatformID = 3
	PlatformMacOS   PlatformID = 4
	PlatformLinux   PlatformID = 5
	PlatformTV      PlatformID = 6
)

// IsValid checks if the PlatformID is a known value.
func (p PlatformID) IsValid() bool {
	switch p {
	case PlatformAndroid, PlatformIOS, PlatformWindows, PlatformMacOS, PlatformLinux, PlatformTV:
		return true
	default:
		return false
	}
}

// VPNTypeID identifies a VPN protocol. Closed set, stable numeric values.
type VPNTypeID int64

const (
	VPNTypeOpenVPN   VPNTypeID = 1
	VPNTypeWireGuard VPNTypeID = 2
	VPNTypeIKEv2     VPNTypeID = 3
)

// IsValid checks if the VPNTypeID is a known value.
func (t VPNTypeID) IsValid() bool {
	switch t {
	case VPNTypeOpenVPN, VPNTypeWireGuard, VPNTypeIKEv2:
		return true
	default:
		return false
	}
}

// ServerStatusID identifies the operational status of a VPN server.
type ServerStatusID int64

const (
	ServerStatusActive      ServerStatusID = 1
	ServerStatusInactive    ServerStatusID = 2
	ServerStatusMaintenance ServerStatusID = 3
	ServerStatusRetired     ServerStatusID = 4
)

// IsValid checks if the ServerStatusID is a known value.
func (s ServerStatusID) IsValid() bool {
	switch s {
	case ServerStatusActive, ServerStatusInactive, ServerStatusMaintenance, ServerStatusRetired:
		return true
	default:
		return false
	}
}

// OrderStatusID identifies the state of a billing order.
type OrderStatusID int64

const (
	OrderStatusPending   OrderStatusID = 1
	OrderStatusPaid      OrderStatusID = 2
	OrderStatusCancelled OrderStatusID = 3
)

// IsValid checks if the OrderStatusID is a known value.
func (o OrderStatusID) IsValid() bool {
	switch o {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// VPNType is a catalog entry describing a VPN protocol.
type VPNType struct {
	ID   VPNTypeID `json:"id"`
	Name string    `json:"name"`
}

// VPNServerStatus is a catalog entry describing a server status.
type VPNServerStatus struct {
	ID   ServerStatusID `json:"id"`
	Name string         `json:"name"`
}
