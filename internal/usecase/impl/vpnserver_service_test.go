package impl

import (
	"context"
	"net/http"
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/upstream"
	mockUpstream "portal/internal/mocks/upstream"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVPNServerServiceForTest() (*vpnServerService, *mockUpstream.MockVPNServerClient, *mockUpstream.MockGeoClient, *mockUpstream.MockVPNServerConfigurationClient, *mockUpstream.MockVPNTypeClient, *mockUpstream.MockVPNServerStatusClient) {
	servers := new(mockUpstream.MockVPNServerClient)
	geoClient := new(mockUpstream.MockGeoClient)
	configurations := new(mockUpstream.MockVPNServerConfigurationClient)
	types := new(mockUpstream.MockVPNTypeClient)
	statuses := new(mockUpstream.MockVPNServerStatusClient)

	service := &vpnServerService{
		servers:        servers,
		configurations: configurations,
		types:          types,
		statuses:       statuses,
		geo:            geoClient,
	}

	return service, servers, geoClient, configurations, types, statuses
}

func TestVPNServerService_GetVPNServer_EmbedsGeo(t *testing.T) {
	service, servers, geoClient, _, _, _ := newVPNServerServiceForTest()

	ctx := context.Background()
	serverUUID := uuid.New()
	server := entity.VPNServer{
		UUID:          serverUUID,
		TypeID:        entity.VPNTypeWireGuard,
		StatusID:      entity.ServerStatusActive,
		Bandwidth:     100000,
		Load:          0.25,
		GeoPositionID: 77,
	}
	position := entity.GeoPosition{ID: 77, Latitude: 52.52, Longitude: 13.405, Country: "Germany", City: "Berlin"}

	servers.On("GetByUUID", ctx, serverUUID).
		Return(success(http.StatusOK, server), nil)
	geoClient.On("GetPosition", ctx, int64(77)).
		Return(success(http.StatusOK, position), nil)

	view, err := service.GetVPNServer(ctx, serverUUID)
	require.NoError(t, err)
	require.NotNil(t, view.Geo)
	assert.Equal(t, "Berlin", view.Geo.City)
	assert.Equal(t, 52.52, view.Geo.Latitude)
	assert.Equal(t, server.TypeID, view.TypeID)
	assert.Equal(t, server.Bandwidth, view.Bandwidth)
}

func TestVPNServerService_GetVPNServer_GeoFailureIsNonFatal(t *testing.T) {
	service, servers, geoClient, _, _, _ := newVPNServerServiceForTest()

	ctx := context.Background()
	serverUUID := uuid.New()
	server := entity.VPNServer{UUID: serverUUID, GeoPositionID: 12}

	servers.On("GetByUUID", ctx, serverUUID).
		Return(success(http.StatusOK, server), nil)
	geoClient.On("GetPosition", ctx, int64(12)).
		Return(failed[entity.GeoPosition](http.StatusNotFound), nil)

	view, err := service.GetVPNServer(ctx, serverUUID)
	require.NoError(t, err)
	assert.Nil(t, view.Geo, "enrichment failure must not fail the operation")
}

func TestVPNServerService_GetVPNServer_PrimaryLookupFailureIsFatal(t *testing.T) {
	service, servers, _, _, _, _ := newVPNServerServiceForTest()

	ctx := context.Background()
	serverUUID := uuid.New()

	servers.On("GetByUUID", ctx, serverUUID).
		Return(failed[entity.VPNServer](http.StatusNotFound, upstream.ErrorItem{Code: "SERVER_NOT_FOUND", Message: "unknown server"}), nil)

	_, err := service.GetVPNServer(ctx, serverUUID)

	var upstreamErr *domainerrors.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusNotFound, upstreamErr.HTTPCode())
}

func TestVPNServerService_GetVPNServerList_PartialGeoFailureKeepsAllItems(t *testing.T) {
	service, servers, geoClient, _, _, _ := newVPNServerServiceForTest()

	ctx := context.Background()
	list := []entity.VPNServer{
		{UUID: uuid.New(), GeoPositionID: 1},
		{UUID: uuid.New(), GeoPositionID: 2},
		{UUID: uuid.New(), GeoPositionID: 3},
	}

	servers.On("List", ctx, (*upstream.Page)(nil)).
		Return(success(http.StatusOK, list), nil)
	geoClient.On("GetPosition", ctx, int64(1)).
		Return(success(http.StatusOK, entity.GeoPosition{ID: 1, City: "Berlin"}), nil)
	geoClient.On("GetPosition", ctx, int64(2)).
		Return(failed[entity.GeoPosition](http.StatusBadGateway), nil)
	geoClient.On("GetPosition", ctx, int64(3)).
		Return(success(http.StatusOK, entity.GeoPosition{ID: 3, City: "Tokyo"}), nil)

	views, err := service.GetVPNServerList(ctx, nil)
	require.NoError(t, err)
	require.Len(t, views, 3, "a failed enrichment must not drop items")

	assert.Equal(t, list[0].UUID, views[0].UUID)
	assert.Equal(t, list[1].UUID, views[1].UUID)
	assert.Equal(t, list[2].UUID, views[2].UUID)

	require.NotNil(t, views[0].Geo)
	assert.Nil(t, views[1].Geo)
	require.NotNil(t, views[2].Geo)
	assert.Equal(t, "Tokyo", views[2].Geo.City)
}

func TestVPNServerService_GetVPNServerConditionList_NoGeoCalls(t *testing.T) {
	service, servers, geoClient, _, _, _ := newVPNServerServiceForTest()

	ctx := context.Background()
	list := []entity.VPNServer{
		{UUID: uuid.New(), TypeID: entity.VPNTypeOpenVPN, StatusID: entity.ServerStatusActive, GeoPositionID: 5, Bandwidth: 2000, Load: 0.7},
	}

	servers.On("List", ctx, (*upstream.Page)(nil)).
		Return(success(http.StatusOK, list), nil)

	conditionList, err := service.GetVPNServerConditionList(ctx, nil)
	require.NoError(t, err)
	require.Len(t, conditionList, 1)
	assert.Equal(t, list[0].UUID, conditionList[0].UUID)
	assert.Equal(t, entity.ServerStatusActive, conditionList[0].StatusID)
	assert.Equal(t, int64(2000), conditionList[0].Bandwidth)
	geoClient.AssertNotCalled(t, "GetPosition")
}

func TestVPNServerService_GetRandomVPNServer_ByType(t *testing.T) {
	service, servers, _, _, _, _ := newVPNServerServiceForTest()

	ctx := context.Background()
	typeID := entity.VPNTypeWireGuard
	want := uuid.New()

	servers.On("ListByType", ctx, typeID, &upstream.Page{Limit: 1, Offset: 0}).
		Return(success(http.StatusOK, []entity.VPNServer{{UUID: want}}), nil)

	got, err := service.GetRandomVPNServer(ctx, usecase.ServerFilter{TypeID: &typeID})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	servers.AssertExpectations(t)
	servers.AssertNumberOfCalls(t, "ListByType", 1)
}

func TestVPNServerService_GetRandomVPNServer_Unfiltered(t *testing.T) {
	service, servers, _, _, _, _ := newVPNServerServiceForTest()

	ctx := context.Background()
	want := uuid.New()

	servers.On("List", ctx, &upstream.Page{Limit: 1, Offset: 0}).
		Return(success(http.StatusOK, []entity.VPNServer{{UUID: want}}), nil)

	got, err := service.GetRandomVPNServer(ctx, usecase.ServerFilter{})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestVPNServerService_GetRandomVPNServer_RejectsBothFilters(t *testing.T) {
	service, _, _, _, _, _ := newVPNServerServiceForTest()

	typeID := entity.VPNTypeIKEv2
	statusID := entity.ServerStatusActive

	_, err := service.GetRandomVPNServer(context.Background(), usecase.ServerFilter{TypeID: &typeID, StatusID: &statusID})
	assert.ErrorIs(t, err, domainerrors.ErrServerFilterConflict)
}

func TestVPNServerService_GetRandomVPNServer_EmptyPage(t *testing.T) {
	service, servers, _, _, _, _ := newVPNServerServiceForTest()

	ctx := context.Background()
	statusID := entity.ServerStatusActive

	servers.On("ListByStatus", ctx, statusID, &upstream.Page{Limit: 1, Offset: 0}).
		Return(success(http.StatusOK, []entity.VPNServer{}), nil)

	_, err := service.GetRandomVPNServer(ctx, usecase.ServerFilter{StatusID: &statusID})
	assert.ErrorIs(t, err, domainerrors.ErrServerNotAvailable)
}

func TestVPNServerService_CreateThenGet_RoundTrip(t *testing.T) {
	service, servers, geoClient, _, _, _ := newVPNServerServiceForTest()

	ctx := context.Background()
	serverUUID := uuid.New()
	payload := entity.VPNServer{
		TypeID:        entity.VPNTypeOpenVPN,
		StatusID:      entity.ServerStatusActive,
		Bandwidth:     50000,
		Load:          0.1,
		GeoPositionID: 9,
	}
	stored := payload
	stored.UUID = serverUUID
	position := entity.GeoPosition{ID: 9, Latitude: 35.68, Longitude: 139.69, Country: "Japan", City: "Tokyo"}

	servers.On("Create", ctx, &payload).
		Return(success(http.StatusCreated, stored), nil)
	servers.On("GetByUUID", ctx, serverUUID).
		Return(success(http.StatusOK, stored), nil)
	geoClient.On("GetPosition", ctx, int64(9)).
		Return(success(http.StatusOK, position), nil)

	created, err := service.CreateVPNServer(ctx, &payload)
	require.NoError(t, err)

	view, err := service.GetVPNServer(ctx, created.UUID)
	require.NoError(t, err)

	assert.Equal(t, payload.TypeID, view.TypeID)
	assert.Equal(t, payload.StatusID, view.StatusID)
	assert.Equal(t, payload.Bandwidth, view.Bandwidth)
	assert.Equal(t, payload.Load, view.Load)
	require.NotNil(t, view.Geo)
	assert.Equal(t, *position.Embed(), *view.Geo)
}

func TestVPNServerService_GetNearestVPNServer_SkipsUnenriched(t *testing.T) {
	service, servers, geoClient, _, _, _ := newVPNServerServiceForTest()

	ctx := context.Background()
	berlin := entity.VPNServer{UUID: uuid.New(), GeoPositionID: 1}
	tokyo := entity.VPNServer{UUID: uuid.New(), GeoPositionID: 2}
	unknown := entity.VPNServer{UUID: uuid.New(), GeoPositionID: 3}

	servers.On("List", ctx, (*upstream.Page)(nil)).
		Return(success(http.StatusOK, []entity.VPNServer{berlin, tokyo, unknown}), nil)
	geoClient.On("GetPosition", ctx, int64(1)).
		Return(success(http.StatusOK, entity.GeoPosition{ID: 1, Latitude: 52.52, Longitude: 13.405}), nil)
	geoClient.On("GetPosition", ctx, int64(2)).
		Return(success(http.StatusOK, entity.GeoPosition{ID: 2, Latitude: 35.68, Longitude: 139.69}), nil)
	geoClient.On("GetPosition", ctx, int64(3)).
		Return(failed[entity.GeoPosition](http.StatusNotFound), nil)

	// Warsaw is much closer to Berlin than to Tokyo.
	nearest, err := service.GetNearestVPNServer(ctx, 52.23, 21.01)
	require.NoError(t, err)
	assert.Equal(t, berlin.UUID, nearest.UUID)
}

func TestVPNServerService_GetVPNServerConfiguration_Passthrough(t *testing.T) {
	service, _, _, configurations, _, _ := newVPNServerServiceForTest()

	ctx := context.Background()
	serverUUID := uuid.New()
	userUUID := uuid.New()
	cfg := entity.VPNServerConfiguration{ServerUUID: serverUUID, UserUUID: &userUUID, Payload: "[Interface]\nPrivateKey = ..."}

	configurations.On("Get", ctx, serverUUID, &userUUID).
		Return(success(http.StatusOK, cfg), nil)

	got, err := service.GetVPNServerConfiguration(ctx, serverUUID, &userUUID)
	require.NoError(t, err)
	assert.Equal(t, cfg, *got)
}

func TestVPNServerService_GetVPNTypes(t *testing.T) {
	service, _, _, _, types, _ := newVPNServerServiceForTest()

	ctx := context.Background()
	catalog := []entity.VPNType{{ID: entity.VPNTypeOpenVPN, Name: "openvpn"}, {ID: entity.VPNTypeWireGuard, Name: "wireguard"}}

	types.On("List", ctx).
		Return(success(http.StatusOK, catalog), nil)

	got, err := service.GetVPNTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog, got)
}
