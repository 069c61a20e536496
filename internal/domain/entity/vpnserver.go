package entity

import (
	"github.com/google/uuid"
)

// VPNServer is the raw server record as the VPN-config upstream serves it,
// including the internal geo position key. Handlers never see this shape;
// the server policy projects it into VPNServerView or VPNServerCondition
// before returning it.
type VPNServer struct {
	UUID              uuid.UUID      `json:"uuid"`                         // Identifier assigned by the VPN-config service.
	TypeID            VPNTypeID      `json:"type_id"`                      // Protocol catalog id.
	StatusID          ServerStatusID `json:"status_id"`                    // Operational status catalog id.
	Bandwidth         int64          `json:"bandwidth"`                    // Provisioned bandwidth in kbit/s.
	Load              float64        `json:"load"`                         // Current load factor, 0..1.
	GeoPositionID     int64          `json:"geo_position_id"`              // Internal key into the geo catalog.
	ConfigurationUUID *uuid.UUID     `json:"configuration_uuid,omitempty"` // Configuration template reference.
}

// VPNServerView is the full projection returned to callers: the internal geo
// position key is gone and, when the geo lookup succeeded, the embedded geo
// record takes its place.
type VPNServerView struct {
	UUID              uuid.UUID      `json:"uuid"`
	TypeID            VPNTypeID      `json:"type_id"`
	StatusID          ServerStatusID `json:"status_id"`
	Bandwidth         int64          `json:"bandwidth"`
	Load              float64        `json:"load"`
	ConfigurationUUID *uuid.UUID     `json:"configuration_uuid,omitempty"`
	Geo               *Geo           `json:"geo,omitempty"`
}

// VPNServerCondition is the redacted projection used where only operational
// state matters: no geo position key, no type, no geo embedding.
type VPNServerCondition struct {
	UUID      uuid.UUID      `json:"uuid"`
	StatusID  ServerStatusID `json:"status_id"`
	Bandwidth int64          `json:"bandwidth"`
	Load      float64        `json:"load"`
}

// View projects the raw record into the full view. Geo stays nil; the caller
// attaches it after a successful geo lookup.
func (s *VPNServer) View() *VPNServerView {
	return &VPNServerView{
		UUID:              s.UUID,
		TypeID:            s.TypeID,
		StatusID:          s.StatusID,
		Bandwidth:         s.Bandwidth,
		Load:              s.Load,
		ConfigurationUUID: s.ConfigurationUUID,
	}
}

// Condition projects the raw record into the condition view.
func (s *VPNServer) Condition() *VPNServerCondition {
	return &VPNServerCondition{
		UUID:      s.UUID,
		StatusID:  s.StatusID,
		Bandwidth: s.Bandwidth,
		Load:      s.Load,
	}
}

// VPNServerConfiguration is an opaque configuration payload passed through to
// the client untouched.
type VPNServerConfiguration struct {
	ServerUUID uuid.UUID `json:"server_uuid"`
	UserUUID   *uuid.UUID `json:"user_uuid,omitempty"`
	Payload    string    `json:"payload"` // Rendered client configuration (e.g. an .ovpn or wg quick file).
}
