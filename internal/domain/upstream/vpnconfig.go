package upstream

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// VPNServerClient talks to the VPN-config service's server resource.
type VPNServerClient interface {
	// Create registers a new server.
	Create(ctx context.Context, server *entity.VPNServer) (*Envelope[entity.VPNServer], error)

	// Update replaces mutable fields of a server.
	Update(ctx context.Context, server *entity.VPNServer) (*Envelope[entity.VPNServer], error)

	// GetByUUID looks a server up by identifier.
	GetByUUID(ctx context.Context, id uuid.UUID) (*Envelope[entity.VPNServer], error)

	// List retrieves servers, unfiltered.
	List(ctx context.Context, page *Page) (*Envelope[[]entity.VPNServer], error)

	// ListByType retrieves servers of one protocol type.
	ListByType(ctx context.Context, typeID entity.VPNTypeID, page *Page) (*Envelope[[]entity.VPNServer], error)

	// ListByStatus retrieves servers in one operational status.
	ListByStatus(ctx context.Context, statusID entity.ServerStatusID, page *Page) (*Envelope[[]entity.VPNServer], error)
}

// VPNServerConfigurationClient retrieves rendered client configurations.
type VPNServerConfigurationClient interface {
	// Get retrieves the configuration of a server, optionally personalized
	// for a user.
	Get(ctx context.Context, serverUUID uuid.UUID, userUUID *uuid.UUID) (*Envelope[entity.VPNServerConfiguration], error)
}

// VPNTypeClient reads the protocol type catalog.
type VPNTypeClient interface {
	// List retrieves all protocol types.
	List(ctx context.Context) (*Envelope[[]entity.VPNType], error)

	// GetByID retrieves one protocol type.
	GetByID(ctx context.Context, id entity.VPNTypeID) (*Envelope[entity.VPNType], error)
}

// VPNServerStatusClient reads the server status catalog.
type VPNServerStatusClient interface {
	// List retrieves all server statuses.
	List(ctx context.Context) (*Envelope[[]entity.VPNServerStatus], error)

	// GetByID retrieves one server status.
	GetByID(ctx context.Context, id entity.ServerStatusID) (*Envelope[entity.VPNServerStatus], error)
}

// GeoClient reads the geo catalog owned by the VPN-config service. The
// gateway embeds geo records into server views but never mutates them.
type GeoClient interface {
	// GetPosition retrieves a geo position by its internal numeric id.
	GetPosition(ctx context.Context, id int64) (*Envelope[entity.GeoPosition], error)

	// GetCity retrieves a city catalog entry.
	GetCity(ctx context.Context, id int64) (*Envelope[entity.GeoCity], error)

	// GetCountry retrieves a country catalog entry.
	GetCountry(ctx context.Context, id int64) (*Envelope[entity.GeoCountry], error)

	// GetState retrieves a state catalog entry.
	GetState(ctx context.Context, id int64) (*Envelope[entity.GeoState], error)
}
