package impl

import (
	"context"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/upstream"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type vpnServerService struct {
	servers        upstream.VPNServerClient
	configurations upstream.VPNServerConfigurationClient
	types          upstream.VPNTypeClient
	statuses       upstream.VPNServerStatusClient
	geo            upstream.GeoClient
}

// VPNServerServiceParams holds dependencies for VPNServerService, injected by Fx.
type VPNServerServiceParams struct {
	fx.In

	Servers        upstream.VPNServerClient
	Configurations upstream.VPNServerConfigurationClient
	Types          upstream.VPNTypeClient
	Statuses       upstream.VPNServerStatusClient
	Geo            upstream.GeoClient
}

// NewVPNServerService creates the VPN server policy instance.
func NewVPNServerService(params VPNServerServiceParams) usecase.VPNServerUsecase {
	return &vpnServerService{
		servers:        params.Servers,
		configurations: params.Configurations,
		types:          params.Types,
		statuses:       params.Statuses,
		geo:            params.Geo,
	}
}

// CreateVPNServer registers a new server.
func (s *vpnServerService) CreateVPNServer(ctx context.Context, server *entity.VPNServer) (*entity.VPNServer, error) {
	env, err := s.servers.Create(ctx, server)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create server")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return &env.Data, nil
}

// UpdateVPNServer updates an existing server.
func (s *vpnServerService) UpdateVPNServer(ctx context.Context, server *entity.VPNServer) (*entity.VPNServer, error) {
	env, err := s.servers.Update(ctx, server)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update server")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return &env.Data, nil
}

// GetRandomVPNServer returns the UUID of the first server of a single-item
// page, filtered by type or status if given. This mirrors the selection the
// clients have always seen; it is deliberately not true randomness.
func (s *vpnServerService) GetRandomVPNServer(ctx context.Context, filter usecase.ServerFilter) (uuid.UUID, error) {
	if filter.TypeID != nil && filter.StatusID != nil {
		return uuid.Nil, domainerrors.ErrServerFilterConflict
	}

	page := &upstream.Page{Limit: 1, Offset: 0}

	var (
		env *upstream.Envelope[[]entity.VPNServer]
		err error
	)
	switch {
	case filter.TypeID != nil:
		env, err = s.servers.ListByType(ctx, *filter.TypeID, page)
	case filter.StatusID != nil:
		env, err = s.servers.ListByStatus(ctx, *filter.StatusID, page)
	default:
		env, err = s.servers.List(ctx, page)
	}
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to select server")
	}
	if !env.Success {
		return uuid.Nil, failure(env)
	}
	if len(env.Data) == 0 {
		return uuid.Nil, domainerrors.ErrServerNotAvailable
	}

	return env.Data[0].UUID, nil
}

// GetVPNServerList retrieves full views, each enriched with embedded geo.
func (s *vpnServerService) GetVPNServerList(ctx context.Context, page *upstream.Page) ([]*entity.VPNServerView, error) {
	env, err := s.servers.List(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list servers")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return s.composeViews(ctx, env.Data), nil
}

// GetVPNServerListByType retrieves full views of one protocol type.
func (s *vpnServerService) GetVPNServerListByType(ctx context.Context, typeID entity.VPNTypeID, page *upstream.Page) ([]*entity.VPNServerView, error) {
	env, err := s.servers.ListByType(ctx, typeID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list servers by type")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return s.composeViews(ctx, env.Data), nil
}

// GetVPNServerListByStatus retrieves full views in one operational status.
func (s *vpnServerService) GetVPNServerListByStatus(ctx context.Context, statusID entity.ServerStatusID, page *upstream.Page) ([]*entity.VPNServerView, error) {
	env, err := s.servers.ListByStatus(ctx, statusID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list servers by status")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return s.composeViews(ctx, env.Data), nil
}

// GetVPNServerConditionList retrieves condition views; no geo calls are made.
func (s *vpnServerService) GetVPNServerConditionList(ctx context.Context, page *upstream.Page) ([]*entity.VPNServerCondition, error) {
	env, err := s.servers.List(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list servers")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return conditions(env.Data), nil
}

// GetVPNServerConditionListByType retrieves condition views of one type.
func (s *vpnServerService) GetVPNServerConditionListByType(ctx context.Context, typeID entity.VPNTypeID, page *upstream.Page) ([]*entity.VPNServerCondition, error) {
	env, err := s.servers.ListByType(ctx, typeID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list servers by type")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return conditions(env.Data), nil
}

// GetVPNServerConditionListByStatus retrieves condition views in one status.
func (s *vpnServerService) GetVPNServerConditionListByStatus(ctx context.Context, statusID entity.ServerStatusID, page *upstream.Page) ([]*entity.VPNServerCondition, error) {
	env, err := s.servers.ListByStatus(ctx, statusID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list servers by status")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return conditions(env.Data), nil
}

// GetVPNServer retrieves one full view. A failed primary lookup is fatal;
// only the geo enrichment is allowed to fail silently.
func (s *vpnServerService) GetVPNServer(ctx context.Context, id uuid.UUID) (*entity.VPNServerView, error) {
	env, err := s.servers.GetByUUID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get server")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return s.composeView(ctx, &env.Data), nil
}

// GetVPNServerCondition retrieves one condition view.
func (s *vpnServerService) GetVPNServerCondition(ctx context.Context, id uuid.UUID) (*entity.VPNServerCondition, error) {
	env, err := s.servers.GetByUUID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get server")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return env.Data.Condition(), nil
}

// GetVPNServerConfiguration retrieves the rendered configuration of a
// server. No composition, pure passthrough.
func (s *vpnServerService) GetVPNServerConfiguration(ctx context.Context, serverUUID uuid.UUID, userUUID *uuid.UUID) (*entity.VPNServerConfiguration, error) {
	env, err := s.configurations.Get(ctx, serverUUID, userUUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get configuration")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return &env.Data, nil
}

// GetNearestVPNServer returns the enriched view closest to the given
// coordinates. Servers whose geo enrichment failed carry no coordinates and
// are skipped.
func (s *vpnServerService) GetNearestVPNServer(ctx context.Context, lat, lon float64) (*entity.VPNServerView, error) {
	views, err := s.GetVPNServerList(ctx, nil)
	if err != nil {
		return nil, err
	}

	origin := orb.Point{lon, lat}

	var (
		nearest *entity.VPNServerView
		best    float64
	)
	for _, view := range views {
		if view.Geo == nil {
			continue
		}
		dist := geo.Distance(origin, view.Geo.Point())
		if nearest == nil || dist < best {
			nearest = view
			best = dist
		}
	}
	if nearest == nil {
		return nil, domainerrors.ErrServerNotAvailable
	}

	return nearest, nil
}

// GetVPNTypes reads the protocol type catalog.
func (s *vpnServerService) GetVPNTypes(ctx context.Context) ([]entity.VPNType, error) {
	env, err := s.types.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vpn types")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return env.Data, nil
}

// GetVPNServerStatuses reads the server status catalog.
func (s *vpnServerService) GetVPNServerStatuses(ctx context.Context) ([]entity.VPNServerStatus, error) {
	env, err := s.statuses.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list server statuses")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return env.Data, nil
}

// composeViews builds full views in the original list order. Geo lookups run
// sequentially, one per item; a failed lookup leaves that item without geo
// instead of aborting the list.
func (s *vpnServerService) composeViews(ctx context.Context, servers []entity.VPNServer) []*entity.VPNServerView {
	views := make([]*entity.VPNServerView, 0, len(servers))
	for i := range servers {
		views = append(views, s.composeView(ctx, &servers[i]))
	}

	return views
}

// composeView projects a raw server record into the full view: the geo
// position key is consumed by a geo lookup and, on success, the embedded geo
// record (internal id stripped) takes its place. Enrichment failure is
// non-fatal; the view is returned without geo.
func (s *vpnServerService) composeView(ctx context.Context, server *entity.VPNServer) *entity.VPNServerView {
	view := server.View()

	geoEnv, err := s.geo.GetPosition(ctx, server.GeoPositionID)
	if err != nil || !geoEnv.Success {
		return view
	}
	view.Geo = geoEnv.Data.Embed()

	return view
}

// conditions projects raw records into condition views, preserving order.
func conditions(servers []entity.VPNServer) []*entity.VPNServerCondition {
	out := make([]*entity.VPNServerCondition, 0, len(servers))
	for i := range servers {
		out = append(out, servers[i].Condition())
	}

	return out
}
