package upstream

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/domain/upstream"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockVPNServerClient is a testify mock of upstream.VPNServerClient.
type MockVPNServerClient struct {
	mock.Mock
}

func (m *MockVPNServerClient) Create(ctx context.Context, server *entity.VPNServer) (*upstream.Envelope[entity.VPNServer], error) {
	args := m.Called(ctx, server)

	return envelope[entity.VPNServer](args.Get(0)), args.Error(1)
}

func (m *MockVPNServerClient) Update(ctx context.Context, server *entity.VPNServer) (*upstream.Envelope[entity.VPNServer], error) {
	args := m.Called(ctx, server)

	return envelope[entity.VPNServer](args.Get(0)), args.Error(1)
}

func (m *MockVPNServerClient) GetByUUID(ctx context.Context, id uuid.UUID) (*upstream.Envelope[entity.VPNServer], error) {
	args := m.Called(ctx, id)

	return envelope[entity.VPNServer](args.Get(0)), args.Error(1)
}

func (m *MockVPNServerClient) List(ctx context.Context, page *upstream.Page) (*upstream.Envelope[[]entity.VPNServer], error) {
	args := m.Called(ctx, page)

	return envelope[[]entity.VPNServer](args.Get(0)), args.Error(1)
}

func (m *MockVPNServerClient) ListByType(ctx context.Context, typeID entity.VPNTypeID, page *upstream.Page) (*upstream.Envelope[[]entity.VPNServer], error) {
	args := m.Called(ctx, typeID, page)

	return envelope[[]entity.VPNServer](args.Get(0)), args.Error(1)
}

func (m *MockVPNServerClient) ListByStatus(ctx context.Context, statusID entity.ServerStatusID, page *upstream.Page) (*upstream.Envelope[[]entity.VPNServer], error) {
	args := m.Called(ctx, statusID, page)

	return envelope[[]entity.VPNServer](args.Get(0)), args.Error(1)
}

// MockVPNServerConfigurationClient is a testify mock of upstream.VPNServerConfigurationClient.
type MockVPNServerConfigurationClient struct {
	mock.Mock
}

func (m *MockVPNServerConfigurationClient) Get(ctx context.Context, serverUUID uuid.UUID, userUUID *uuid.UUID) (*upstream.Envelope[entity.VPNServerConfiguration], error) {
	args := m.Called(ctx, serverUUID, userUUID)

	return envelope[entity.VPNServerConfiguration](args.Get(0)), args.Error(1)
}

// MockVPNTypeClient is a testify mock of upstream.VPNTypeClient.
type MockVPNTypeClient struct {
	mock.Mock
}

func (m *MockVPNTypeClient) List(ctx context.Context) (*upstream.Envelope[[]entity.VPNType], error) {
	args := m.Called(ctx)

	return envelope[[]entity.VPNType](args.Get(0)), args.Error(1)
}

func (m *MockVPNTypeClient) GetByID(ctx context.Context, id entity.VPNTypeID) (*upstream.Envelope[entity.VPNType], error) {
	args := m.Called(ctx, id)

	return envelope[entity.VPNType](args.Get(0)), args.Error(1)
}

// MockVPNServerStatusClient is a testify mock of upstream.VPNServerStatusClient.
type MockVPNServerStatusClient struct {
	mock.Mock
}

func (m *MockVPNServerStatusClient) List(ctx context.Context) (*upstream.Envelope[[]entity.VPNServerStatus], error) {
	args := m.Called(ctx)

	return envelope[[]entity.VPNServerStatus](args.Get(0)), args.Error(1)
}

func (m *MockVPNServerStatusClient) GetByID(ctx context.Context, id entity.ServerStatusID) (*upstream.Envelope[entity.VPNServerStatus], error) {
	args := m.Called(ctx, id)

	return envelope[entity.VPNServerStatus](args.Get(0)), args.Error(1)
}

// MockGeoClient is a testify mock of upstream.GeoClient.
type MockGeoClient struct {
	mock.Mock
}

func (m *MockGeoClient) GetPosition(ctx context.Context, id int64) (*upstream.Envelope[entity.GeoPosition], error) {
	args := m.Called(ctx, id)

	return envelope[entity.GeoPosition](args.Get(0)), args.Error(1)
}

func (m *MockGeoClient) GetCity(ctx context.Context, id int64) (*upstream.Envelope[entity.GeoCity], error) {
	args := m.Called(ctx, id)

	return envelope[entity.GeoCity](args.Get(0)), args.Error(1)
}

func (m *MockGeoClient) GetCountry(ctx context.Context, id int64) (*upstream.Envelope[entity.GeoCountry], error) {
	args := m.Called(ctx, id)

	return envelope[entity.GeoCountry](args.Get(0)), args.Error(1)
}

func (m *MockGeoClient) GetState(ctx context.Context, id int64) (*upstream.Envelope[entity.GeoState], error) {
	args := m.Called(ctx, id)

	return envelope[entity.GeoState](args.Get(0)), args.Error(1)
}
