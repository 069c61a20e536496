package upstreamhttp

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"portal/config"
	"portal/internal/domain/entity"
	"portal/internal/domain/upstream"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// VPNConfigParams holds dependencies for the VPN-config service clients,
// injected by Fx.
type VPNConfigParams struct {
	fx.In

	Config *config.Config
}

type vpnServerClient struct {
	caller *caller
}

// NewVPNServerClient creates the server resource client of the VPN-config
// service.
func NewVPNServerClient(params VPNConfigParams) upstream.VPNServerClient {
	vpn := params.Config.Upstreams.VPN

	return &vpnServerClient{
		caller: newCaller(vpn.BaseURL, vpn.Timeout),
	}
}

func (c *vpnServerClient) Create(ctx context.Context, server *entity.VPNServer) (*upstream.Envelope[entity.VPNServer], error) {
	return call[entity.VPNServer](ctx, c.caller, http.MethodPost, "/servers", nil, server)
}

func (c *vpnServerClient) Update(ctx context.Context, server *entity.VPNServer) (*upstream.Envelope[entity.VPNServer], error) {
	return call[entity.VPNServer](ctx, c.caller, http.MethodPut, "/servers/"+server.UUID.String(), nil, server)
}

func (c *vpnServerClient) GetByUUID(ctx context.Context, id uuid.UUID) (*upstream.Envelope[entity.VPNServer], error) {
	return call[entity.VPNServer](ctx, c.caller, http.MethodGet, "/servers/uuid/"+id.String(), nil, nil)
}

func (c *vpnServerClient) List(ctx context.Context, page *upstream.Page) (*upstream.Envelope[[]entity.VPNServer], error) {
	return call[[]entity.VPNServer](ctx, c.caller, http.MethodGet, "/servers", pageQuery(page), nil)
}

func (c *vpnServerClient) ListByType(ctx context.Context, typeID entity.VPNTypeID, page *upstream.Page) (*upstream.Envelope[[]entity.VPNServer], error) {
	path := "/servers/type/" + strconv.FormatInt(int64(typeID), 10)

	return call[[]entity.VPNServer](ctx, c.caller, http.MethodGet, path, pageQuery(page), nil)
}

func (c *vpnServerClient) ListByStatus(ctx context.Context, statusID entity.ServerStatusID, page *upstream.Page) (*upstream.Envelope[[]entity.VPNServer], error) {
	path := "/servers/status/" + strconv.FormatInt(int64(statusID), 10)

	return call[[]entity.VPNServer](ctx, c.caller, http.MethodGet, path, pageQuery(page), nil)
}

type vpnServerConfigurationClient struct {
	caller *caller
}

// NewVPNServerConfigurationClient creates the configuration resource client
// of the VPN-config service.
func NewVPNServerConfigurationClient(params VPNConfigParams) upstream.VPNServerConfigurationClient {
	vpn := params.Config.Upstreams.VPN

	return &vpnServerConfigurationClient{
		caller: newCaller(vpn.BaseURL, vpn.Timeout),
	}
}

func (c *vpnServerConfigurationClient) Get(ctx context.Context, serverUUID uuid.UUID, userUUID *uuid.UUID) (*upstream.Envelope[entity.VPNServerConfiguration], error) {
	var query url.Values
	if userUUID != nil {
		query = url.Values{}
		query.Set("user_uuid", userUUID.String())
	}

	return call[entity.VPNServerConfiguration](ctx, c.caller, http.MethodGet, "/servers/"+serverUUID.String()+"/configuration", query, nil)
}

type vpnTypeClient struct {
	caller *caller
}

// NewVPNTypeClient creates the protocol type catalog client.
func NewVPNTypeClient(params VPNConfigParams) upstream.VPNTypeClient {
	vpn := params.Config.Upstreams.VPN

	return &vpnTypeClient{
		caller: newCaller(vpn.BaseURL, vpn.Timeout),
	}
}

func (c *vpnTypeClient) List(ctx context.Context) (*upstream.Envelope[[]entity.VPNType], error) {
	return call[[]entity.VPNType](ctx, c.caller, http.MethodGet, "/types", nil, nil)
}

func (c *vpnTypeClient) GetByID(ctx context.Context, id entity.VPNTypeID) (*upstream.Envelope[entity.VPNType], error) {
	return call[entity.VPNType](ctx, c.caller, http.MethodGet, "/types/"+strconv.FormatInt(int64(id), 10), nil, nil)
}

type vpnServerStatusClient struct {
	caller *caller
}

// NewVPNServerStatusClient creates the server status catalog client.
func NewVPNServerStatusClient(params VPNConfigParams) upstream.VPNServerStatusClient {
	vpn := params.Config.Upstreams.VPN

	return &vpnServerStatusClient{
		caller: newCaller(vpn.BaseURL, vpn.Timeout),
	}
}

func (c *vpnServerStatusClient) List(ctx context.Context) (*upstream.Envelope[[]entity.VPNServerStatus], error) {
	return call[[]entity.VPNServerStatus](ctx, c.caller, http.MethodGet, "/statuses", nil, nil)
}

func (c *vpnServerStatusClient) GetByID(ctx context.Context, id entity.ServerStatusID) (*upstream.Envelope[entity.VPNServerStatus], error) {
	return call[entity.VPNServerStatus](ctx, c.caller, http.MethodGet, "/statuses/"+strconv.FormatInt(int64(id), 10), nil, nil)
}

type geoClient struct {
	caller *caller
}

// NewGeoClient creates the geo catalog client of the VPN-config service.
func NewGeoClient(params VPNConfigParams) upstream.GeoClient {
	vpn := params.Config.Upstreams.VPN

	return &geoClient{
		caller: newCaller(vpn.BaseURL, vpn.Timeout),
	}
}

func (c *geoClient) GetPosition(ctx context.Context, id int64) (*upstream.Envelope[entity.GeoPosition], error) {
	return call[entity.GeoPosition](ctx, c.caller, http.MethodGet, "/geo/positions/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *geoClient) GetCity(ctx context.Context, id int64) (*upstream.Envelope[entity.GeoCity], error) {
	return call[entity.GeoCity](ctx, c.caller, http.MethodGet, "/geo/cities/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *geoClient) GetCountry(ctx context.Context, id int64) (*upstream.Envelope[entity.GeoCountry], error) {
	return call[entity.GeoCountry](ctx, c.caller, http.MethodGet, "/geo/countries/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *geoClient) GetState(ctx context.Context, id int64) (*upstream.Envelope[entity.GeoState], error) {
	return call[entity.GeoState](ctx, c.caller, http.MethodGet, "/geo/states/"+strconv.FormatInt(id, 10), nil, nil)
}
