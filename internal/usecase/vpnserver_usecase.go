package usecase

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/domain/upstream"

	"github.com/google/uuid"
)

// ServerFilter narrows a server selection to one protocol type or one
// operational status. Setting both is a validation error.
type ServerFilter struct {
	TypeID   *entity.VPNTypeID
	StatusID *entity.ServerStatusID
}

// VPNServerUsecase orchestrates VPN server discovery, selection and
// composition with geo data. The same underlying lookups feed two parallel
// output shapes: the full view (embedded geo, internal ids stripped) and the
// condition view (geo position and type redacted, no enrichment).
type VPNServerUsecase interface {
	// CreateVPNServer registers a new server.
	CreateVPNServer(ctx context.Context, server *entity.VPNServer) (*entity.VPNServer, error)

	// UpdateVPNServer updates an existing server.
	UpdateVPNServer(ctx context.Context, server *entity.VPNServer) (*entity.VPNServer, error)

	// GetRandomVPNServer returns the UUID of one server matching the
	// filter. Selection is the first item of a single page-1 read (limit 1,
	// offset 0), not true randomness.
	GetRandomVPNServer(ctx context.Context, filter ServerFilter) (uuid.UUID, error)

	// GetVPNServerList retrieves full views, each enriched with embedded
	// geo data. A failed geo lookup leaves that item without geo instead of
	// aborting the list.
	GetVPNServerList(ctx context.Context, page *upstream.Page) ([]*entity.VPNServerView, error)

	// GetVPNServerListByType retrieves full views of one protocol type.
	GetVPNServerListByType(ctx context.Context, typeID entity.VPNTypeID, page *upstream.Page) ([]*entity.VPNServerView, error)

	// GetVPNServerListByStatus retrieves full views in one status.
	GetVPNServerListByStatus(ctx context.Context, statusID entity.ServerStatusID, page *upstream.Page) ([]*entity.VPNServerView, error)

	// GetVPNServerConditionList retrieves condition views; no geo calls.
	GetVPNServerConditionList(ctx context.Context, page *upstream.Page) ([]*entity.VPNServerCondition, error)

	// GetVPNServerConditionListByType retrieves condition views of one type.
	GetVPNServerConditionListByType(ctx context.Context, typeID entity.VPNTypeID, page *upstream.Page) ([]*entity.VPNServerCondition, error)

	// GetVPNServerConditionListByStatus retrieves condition views in one status.
	GetVPNServerConditionListByStatus(ctx context.Context, statusID entity.ServerStatusID, page *upstream.Page) ([]*entity.VPNServerCondition, error)

	// GetVPNServer retrieves one full view by server UUID.
	GetVPNServer(ctx context.Context, id uuid.UUID) (*entity.VPNServerView, error)

	// GetVPNServerCondition retrieves one condition view by server UUID.
	GetVPNServerCondition(ctx context.Context, id uuid.UUID) (*entity.VPNServerCondition, error)

	// GetVPNServerConfiguration retrieves the rendered configuration of a
	// server, optionally personalized for a user. Pure passthrough.
	GetVPNServerConfiguration(ctx context.Context, serverUUID uuid.UUID, userUUID *uuid.UUID) (*entity.VPNServerConfiguration, error)

	// GetNearestVPNServer returns the full view closest to the given
	// coordinates among servers whose geo enrichment succeeded. This is a
	// distinct selection strategy, not a replacement for GetRandomVPNServer.
	GetNearestVPNServer(ctx context.Context, lat, lon float64) (*entity.VPNServerView, error)

	// GetVPNTypes reads the protocol type catalog.
	GetVPNTypes(ctx context.Context) ([]entity.VPNType, error)

	// GetVPNServerStatuses reads the server status catalog.
	GetVPNServerStatuses(ctx context.Context) ([]entity.VPNServerStatus, error)
}
