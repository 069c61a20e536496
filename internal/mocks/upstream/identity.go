// Package upstream provides testify mocks for the upstream client
// interfaces, used by the policy unit tests.
package upstream

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/domain/upstream"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserClient is a testify mock of upstream.UserClient.
type MockUserClient struct {
	mock.Mock
}

func (m *MockUserClient) Create(ctx context.Context, user *entity.User) (*upstream.Envelope[entity.User], error) {
	args := m.Called(ctx, user)

	return envelope[entity.User](args.Get(0)), args.Error(1)
}

func (m *MockUserClient) Update(ctx context.Context, user *entity.User) (*upstream.Envelope[entity.User], error) {
	args := m.Called(ctx, user)

	return envelope[entity.User](args.Get(0)), args.Error(1)
}

func (m *MockUserClient) GetByUUID(ctx context.Context, id uuid.UUID) (*upstream.Envelope[entity.User], error) {
	args := m.Called(ctx, id)

	return envelope[entity.User](args.Get(0)), args.Error(1)
}

func (m *MockUserClient) GetByEmail(ctx context.Context, email string) (*upstream.Envelope[entity.User], error) {
	args := m.Called(ctx, email)

	return envelope[entity.User](args.Get(0)), args.Error(1)
}

func (m *MockUserClient) GetByPinCode(ctx context.Context, pinCode string) (*upstream.Envelope[entity.User], error) {
	args := m.Called(ctx, pinCode)

	return envelope[entity.User](args.Get(0)), args.Error(1)
}

// MockUserDeviceClient is a testify mock of upstream.UserDeviceClient.
type MockUserDeviceClient struct {
	mock.Mock
}

func (m *MockUserDeviceClient) Create(ctx context.Context, device *entity.UserDevice) (*upstream.Envelope[entity.UserDevice], error) {
	args := m.Called(ctx, device)

	return envelope[entity.UserDevice](args.Get(0)), args.Error(1)
}

func (m *MockUserDeviceClient) Update(ctx context.Context, device *entity.UserDevice) (*upstream.Envelope[entity.UserDevice], error) {
	args := m.Called(ctx, device)

	return envelope[entity.UserDevice](args.Get(0)), args.Error(1)
}

func (m *MockUserDeviceClient) GetByUUID(ctx context.Context, userUUID, deviceUUID uuid.UUID) (*upstream.Envelope[entity.UserDevice], error) {
	args := m.Called(ctx, userUUID, deviceUUID)

	return envelope[entity.UserDevice](args.Get(0)), args.Error(1)
}

func (m *MockUserDeviceClient) ListByUser(ctx context.Context, userUUID uuid.UUID) (*upstream.Envelope[[]entity.UserDevice], error) {
	args := m.Called(ctx, userUUID)

	return envelope[[]entity.UserDevice](args.Get(0)), args.Error(1)
}

func (m *MockUserDeviceClient) Delete(ctx context.Context, userUUID, deviceUUID uuid.UUID) (*upstream.Envelope[entity.UserDevice], error) {
	args := m.Called(ctx, userUUID, deviceUUID)

	return envelope[entity.UserDevice](args.Get(0)), args.Error(1)
}

// envelope casts a recorded mock return value back to its envelope type,
// tolerating nil.
func envelope[T any](v any) *upstream.Envelope[T] {
	if v == nil {
		return nil
	}

	return v.(*upstream.Envelope[T])
}
