package upstream

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/domain/upstream"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserSubscriptionClient is a testify mock of upstream.UserSubscriptionClient.
type MockUserSubscriptionClient struct {
	mock.Mock
}

func (m *MockUserSubscriptionClient) Create(ctx context.Context, sub *entity.UserSubscription) (*upstream.Envelope[entity.UserSubscription], error) {
	args := m.Called(ctx, sub)

	return envelope[entity.UserSubscription](args.Get(0)), args.Error(1)
}

func (m *MockUserSubscriptionClient) Update(ctx context.Context, sub *entity.UserSubscription) (*upstream.Envelope[entity.UserSubscription], error) {
	args := m.Called(ctx, sub)

	return envelope[entity.UserSubscription](args.Get(0)), args.Error(1)
}

func (m *MockUserSubscriptionClient) GetByUUID(ctx context.Context, userUUID, subUUID uuid.UUID) (*upstream.Envelope[entity.UserSubscription], error) {
	args := m.Called(ctx, userUUID, subUUID)

	return envelope[entity.UserSubscription](args.Get(0)), args.Error(1)
}

func (m *MockUserSubscriptionClient) ListByUser(ctx context.Context, userUUID uuid.UUID) (*upstream.Envelope[[]entity.UserSubscription], error) {
	args := m.Called(ctx, userUUID)

	return envelope[[]entity.UserSubscription](args.Get(0)), args.Error(1)
}

// MockOrderClient is a testify mock of upstream.OrderClient.
type MockOrderClient struct {
	mock.Mock
}

func (m *MockOrderClient) Create(ctx context.Context, order *entity.Order) (*upstream.Envelope[entity.Order], error) {
	args := m.Called(ctx, order)

	return envelope[entity.Order](args.Get(0)), args.Error(1)
}

func (m *MockOrderClient) Update(ctx context.Context, order *entity.Order) (*upstream.Envelope[entity.Order], error) {
	args := m.Called(ctx, order)

	return envelope[entity.Order](args.Get(0)), args.Error(1)
}

func (m *MockOrderClient) GetByUUID(ctx context.Context, id uuid.UUID) (*upstream.Envelope[entity.Order], error) {
	args := m.Called(ctx, id)

	return envelope[entity.Order](args.Get(0)), args.Error(1)
}

func (m *MockOrderClient) GetByCode(ctx context.Context, code string) (*upstream.Envelope[entity.Order], error) {
	args := m.Called(ctx, code)

	return envelope[entity.Order](args.Get(0)), args.Error(1)
}

// MockPaymentClient is a testify mock of upstream.PaymentClient.
type MockPaymentClient struct {
	mock.Mock
}

func (m *MockPaymentClient) Create(ctx context.Context, payment *entity.Payment) (*upstream.Envelope[entity.Payment], error) {
	args := m.Called(ctx, payment)

	return envelope[entity.Payment](args.Get(0)), args.Error(1)
}
