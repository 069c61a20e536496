package impl

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/upstream"
	mockUpstream "portal/internal/mocks/upstream"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserServiceForTest(now time.Time) (*userService, *mockUpstream.MockUserClient, *mockUpstream.MockUserDeviceClient, *mockUpstream.MockUserSubscriptionClient, *mockUpstream.MockOrderClient, *mockUpstream.MockPaymentClient) {
	users := new(mockUpstream.MockUserClient)
	devices := new(mockUpstream.MockUserDeviceClient)
	subs := new(mockUpstream.MockUserSubscriptionClient)
	orders := new(mockUpstream.MockOrderClient)
	payments := new(mockUpstream.MockPaymentClient)

	service := &userService{
		users:         users,
		devices:       devices,
		subscriptions: subs,
		orders:        orders,
		payments:      payments,
		now:           func() time.Time { return now },
	}

	return service, users, devices, subs, orders, payments
}

func success[T any](code int, data T) *upstream.Envelope[T] {
	return &upstream.Envelope[T]{Success: true, Code: code, Data: data}
}

func failed[T any](code int, items ...upstream.ErrorItem) *upstream.Envelope[T] {
	return &upstream.Envelope[T]{Success: false, Code: code, Errors: items}
}

func TestUserService_GetUser_ByUUID(t *testing.T) {
	service, users, _, _, _, _ := newUserServiceForTest(time.Now())

	ctx := context.Background()
	userUUID := uuid.New()
	want := entity.User{UUID: userUUID, Email: "a@example.com", IsEnabled: true}

	users.On("GetByUUID", ctx, userUUID).
		Return(success(http.StatusOK, want), nil)

	user, err := service.GetUser(ctx, usecase.GetUserQuery{UUID: &userUUID})
	require.NoError(t, err)
	assert.Equal(t, want, *user)
	users.AssertExpectations(t)
}

func TestUserService_GetUser_ByEmail(t *testing.T) {
	service, users, _, _, _, _ := newUserServiceForTest(time.Now())

	ctx := context.Background()
	email := "b@example.com"
	want := entity.User{UUID: uuid.New(), Email: email}

	users.On("GetByEmail", ctx, email).
		Return(success(http.StatusOK, want), nil)

	user, err := service.GetUser(ctx, usecase.GetUserQuery{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, email, user.Email)
}

func TestUserService_GetUser_RejectsBothKeys(t *testing.T) {
	service, _, _, _, _, _ := newUserServiceForTest(time.Now())

	userUUID := uuid.New()
	email := "c@example.com"

	_, err := service.GetUser(context.Background(), usecase.GetUserQuery{UUID: &userUUID, Email: &email})
	assert.ErrorIs(t, err, domainerrors.ErrUserQueryAmbiguous)
}

func TestUserService_GetUser_RejectsNoKeys(t *testing.T) {
	service, _, _, _, _, _ := newUserServiceForTest(time.Now())

	_, err := service.GetUser(context.Background(), usecase.GetUserQuery{})
	assert.ErrorIs(t, err, domainerrors.ErrUserQueryAmbiguous)
}

func TestUserService_GetUser_UpstreamFailurePropagatesVerbatim(t *testing.T) {
	service, users, _, _, _, _ := newUserServiceForTest(time.Now())

	ctx := context.Background()
	userUUID := uuid.New()
	items := []upstream.ErrorItem{{Code: "USER_NOT_FOUND", Message: "no such user"}}

	users.On("GetByUUID", ctx, userUUID).
		Return(failed[entity.User](http.StatusNotFound, items...), nil)

	_, err := service.GetUser(ctx, usecase.GetUserQuery{UUID: &userUUID})
	require.Error(t, err)

	var upstreamErr *domainerrors.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusNotFound, upstreamErr.HTTPCode())
	assert.Equal(t, items, upstreamErr.Items())
	assert.Equal(t, "USER_NOT_FOUND", upstreamErr.ErrorCode())
}

func TestUserService_GetUserSubscriptionByUUID_ComputesIsExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service, _, _, subs, _, _ := newUserServiceForTest(now)

	ctx := context.Background()
	userUUID := uuid.New()
	subUUID := uuid.New()

	tests := []struct {
		name       string
		expireDate string
		expired    bool
	}{
		{"expired in the past", "2025-05-31 00:00:00", true},
		{"expires in the future", "2025-06-02 00:00:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := entity.UserSubscription{UUID: subUUID, UserUUID: userUUID, ExpireDate: tt.expireDate}
			subs.On("GetByUUID", ctx, userUUID, subUUID).
				Return(success(http.StatusOK, sub), nil).Once()

			got, err := service.GetUserSubscriptionByUUID(ctx, userUUID, subUUID)
			require.NoError(t, err)
			assert.Equal(t, tt.expired, got.IsExpired)
		})
	}
}

func TestUserService_GetUserSubscriptionByUUID_LookupFailureSkipsEnrichment(t *testing.T) {
	service, _, _, subs, _, _ := newUserServiceForTest(time.Now())

	ctx := context.Background()
	userUUID := uuid.New()
	subUUID := uuid.New()

	subs.On("GetByUUID", ctx, userUUID, subUUID).
		Return(failed[entity.UserSubscription](http.StatusNotFound), nil)

	_, err := service.GetUserSubscriptionByUUID(ctx, userUUID, subUUID)

	var upstreamErr *domainerrors.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusNotFound, upstreamErr.HTTPCode())
}

func TestUserService_GetUserSubscriptions_EnrichesEveryItem(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service, _, _, subs, _, _ := newUserServiceForTest(now)

	ctx := context.Background()
	userUUID := uuid.New()
	list := []entity.UserSubscription{
		{UUID: uuid.New(), ExpireDate: "2025-05-01 00:00:00"},
		{UUID: uuid.New(), ExpireDate: "2025-07-01 00:00:00"},
	}

	subs.On("ListByUser", ctx, userUUID).
		Return(success(http.StatusOK, list), nil)

	got, err := service.GetUserSubscriptions(ctx, userUUID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsExpired)
	assert.False(t, got[1].IsExpired)
}

func TestUserService_GetUserSubscriptions_SingleParseFailureAbortsWholeList(t *testing.T) {
	service, _, _, subs, _, _ := newUserServiceForTest(time.Now())

	ctx := context.Background()
	userUUID := uuid.New()
	list := []entity.UserSubscription{
		{UUID: uuid.New(), ExpireDate: "2025-05-01 00:00:00"},
		{UUID: uuid.New(), ExpireDate: "not-a-date"},
		{UUID: uuid.New(), ExpireDate: "2025-07-01 00:00:00"},
	}

	subs.On("ListByUser", ctx, userUUID).
		Return(success(http.StatusOK, list), nil)

	got, err := service.GetUserSubscriptions(ctx, userUUID)
	require.Error(t, err)
	assert.Nil(t, got, "no partial list on enrichment failure")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EXPIRE_DATE_INVALID", appErr.ErrorCode())
}

func TestUserService_CreateUserDevice_GeneratesToken(t *testing.T) {
	service, _, devices, _, _, _ := newUserServiceForTest(time.Now())

	ctx := context.Background()
	userUUID := uuid.New()
	input := &usecase.DeviceInput{
		PlatformID: entity.PlatformAndroid,
		VPNTypeID:  entity.VPNTypeWireGuard,
		DeviceID:   "device-42",
	}

	var created *entity.UserDevice
	devices.On("Create", ctx, mock.AnythingOfType("*entity.UserDevice")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.UserDevice)
		}).
		Return(success(http.StatusCreated, entity.UserDevice{UUID: uuid.New(), UserUUID: userUUID}), nil)

	_, err := service.CreateUserDevice(ctx, userUUID, input)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, userUUID, created.UserUUID)
	assert.NotEmpty(t, created.DeviceToken)
}

func TestUserService_GetUserUUIDByPinCode_NotFoundSurfaces(t *testing.T) {
	service, users, _, _, _, _ := newUserServiceForTest(time.Now())

	ctx := context.Background()
	users.On("GetByPinCode", ctx, "000000").
		Return(failed[entity.User](http.StatusNotFound, upstream.ErrorItem{Code: "PIN_NOT_FOUND", Message: "pin code unknown"}), nil)

	_, err := service.GetUserUUIDByPinCode(ctx, "000000")

	var upstreamErr *domainerrors.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusNotFound, upstreamErr.HTTPCode())
}

func TestUserService_ExchangePinCode_BindsDeviceWithFreshToken(t *testing.T) {
	service, users, devices, _, _, _ := newUserServiceForTest(time.Now())

	ctx := context.Background()
	userUUID := uuid.New()
	input := &usecase.DeviceInput{PlatformID: entity.PlatformTV, VPNTypeID: entity.VPNTypeOpenVPN, DeviceID: "tv-1"}

	users.On("GetByPinCode", ctx, "123456").
		Return(success(http.StatusOK, entity.User{UUID: userUUID}), nil)

	var tokens []string
	devices.On("Create", ctx, mock.AnythingOfType("*entity.UserDevice")).
		Run(func(args mock.Arguments) {
			device := args.Get(1).(*entity.UserDevice)
			assert.Equal(t, userUUID, device.UserUUID)
			assert.Equal(t, "123456", device.PinCode)
			tokens = append(tokens, device.DeviceToken)
		}).
		Return(success(http.StatusCreated, entity.UserDevice{UUID: uuid.New(), UserUUID: userUUID}), nil)

	_, err := service.ExchangePinCode(ctx, "123456", input)
	require.NoError(t, err)

	_, err = service.ExchangePinCode(ctx, "123456", input)
	require.NoError(t, err)

	require.Len(t, tokens, 2)
	assert.NotEmpty(t, tokens[0])
	assert.NotEmpty(t, tokens[1])
	assert.NotEqual(t, tokens[0], tokens[1], "each exchange must issue a fresh token")
}

func TestUserService_ExchangePinCode_ResolveFailure(t *testing.T) {
	service, users, _, _, _, _ := newUserServiceForTest(time.Now())

	ctx := context.Background()
	users.On("GetByPinCode", ctx, "999999").
		Return(failed[entity.User](http.StatusNotFound), nil)

	_, err := service.ExchangePinCode(ctx, "999999", &usecase.DeviceInput{})

	var stepErr *domainerrors.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepResolvePinCode, stepErr.Step)
}

func TestUserService_ExchangePinCode_BindFailureAfterResolve(t *testing.T) {
	service, users, devices, _, _, _ := newUserServiceForTest(time.Now())

	ctx := context.Background()
	users.On("GetByPinCode", ctx, "123456").
		Return(success(http.StatusOK, entity.User{UUID: uuid.New()}), nil)
	devices.On("Create", ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil, errors.New("identity service unreachable"))

	_, err := service.ExchangePinCode(ctx, "123456", &usecase.DeviceInput{})

	var stepErr *domainerrors.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepBindDevice, stepErr.Step)
}

func TestUserService_ProcessPaymentNotification_LinksOrder(t *testing.T) {
	service, _, _, _, orders, payments := newUserServiceForTest(time.Now())

	ctx := context.Background()
	orderUUID := uuid.New()
	paymentUUID := uuid.New()
	payload := json.RawMessage(`{"provider":"apn","amount":"9.99"}`)

	orders.On("GetByCode", ctx, "ORD-1").
		Return(success(http.StatusOK, entity.Order{UUID: orderUUID, Code: "ORD-1", StatusID: entity.OrderStatusPending}), nil)
	payments.On("Create", ctx, mock.AnythingOfType("*entity.Payment")).
		Return(success(http.StatusCreated, entity.Payment{UUID: paymentUUID, OrderCode: "ORD-1"}), nil)
	orders.On("Update", ctx, mock.MatchedBy(func(order *entity.Order) bool {
		return order.UUID == orderUUID &&
			order.PaymentUUID != nil && *order.PaymentUUID == paymentUUID &&
			order.StatusID == entity.OrderStatusPaid
	})).Return(success(http.StatusOK, entity.Order{UUID: orderUUID}), nil)

	payment, err := service.ProcessPaymentNotification(ctx, "ORD-1", payload)
	require.NoError(t, err)
	assert.Equal(t, paymentUUID, payment.UUID)
	orders.AssertExpectations(t)
	payments.AssertExpectations(t)
}

func TestUserService_ProcessPaymentNotification_LinkFailureNamesStep(t *testing.T) {
	service, _, _, _, orders, payments := newUserServiceForTest(time.Now())

	ctx := context.Background()
	orders.On("GetByCode", ctx, "ORD-2").
		Return(success(http.StatusOK, entity.Order{UUID: uuid.New(), Code: "ORD-2"}), nil)
	payments.On("Create", ctx, mock.AnythingOfType("*entity.Payment")).
		Return(success(http.StatusCreated, entity.Payment{UUID: uuid.New()}), nil)
	orders.On("Update", ctx, mock.AnythingOfType("*entity.Order")).
		Return(failed[entity.Order](http.StatusConflict), nil)

	_, err := service.ProcessPaymentNotification(ctx, "ORD-2", json.RawMessage(`{}`))

	var stepErr *domainerrors.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepLinkOrder, stepErr.Step)
}
