package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/upstream"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Step names reported by the non-atomic compositions.
const (
	StepResolvePinCode = "resolve-pincode"
	StepBindDevice     = "bind-device"
	StepLookupOrder    = "lookup-order"
	StepCreatePayment  = "create-payment"
	StepLinkOrder      = "link-order"
)

type userService struct {
	users         upstream.UserClient
	devices       upstream.UserDeviceClient
	subscriptions upstream.UserSubscriptionClient
	orders        upstream.OrderClient
	payments      upstream.PaymentClient
	now           func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Users         upstream.UserClient
	Devices       upstream.UserDeviceClient
	Subscriptions upstream.UserSubscriptionClient
	Orders        upstream.OrderClient
	Payments      upstream.PaymentClient
}

// NewUserService creates the user policy instance.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		users:         params.Users,
		devices:       params.Devices,
		subscriptions: params.Subscriptions,
		orders:        params.Orders,
		payments:      params.Payments,
		now:           time.Now,
	}
}

// GetUser resolves a user by UUID or email; exactly one key must be set.
func (s *userService) GetUser(ctx context.Context, query usecase.GetUserQuery) (*entity.User, error) {
	if (query.UUID == nil) == (query.Email == nil) {
		return nil, domainerrors.ErrUserQueryAmbiguous
	}

	var (
		env *upstream.Envelope[entity.User]
		err error
	)
	if query.UUID != nil {
		env, err = s.users.GetByUUID(ctx, *query.UUID)
	} else {
		env, err = s.users.GetByEmail(ctx, *query.Email)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to call identity service")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return &env.Data, nil
}

// CreateUser registers a new user with the identity service.
func (s *userService) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	env, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return &env.Data, nil
}

// UpdateUser updates an existing user.
func (s *userService) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	env, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return &env.Data, nil
}

// CreateUserSubscription opens a subscription linked to an order.
func (s *userService) CreateUserSubscription(ctx context.Context, input usecase.CreateSubscriptionInput) (*entity.UserSubscription, error) {
	sub := &entity.UserSubscription{
		UserUUID:       input.UserUUID,
		SubscriptionID: input.SubscriptionID,
		OrderUUID:      input.OrderUUID,
	}

	env, err := s.subscriptions.Create(ctx, sub)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create subscription")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return &env.Data, nil
}

// UpdateUserSubscription mutates a subscription.
func (s *userService) UpdateUserSubscription(ctx context.Context, input usecase.UpdateSubscriptionInput) (*entity.UserSubscription, error) {
	sub := &entity.UserSubscription{
		UUID:           input.SubscriptionUUID,
		UserUUID:       input.UserUUID,
		SubscriptionID: input.SubscriptionID,
		OrderUUID:      input.OrderUUID,
		ExpireDate:     input.ExpireDate,
		ModifyDate:     input.ModifyDate,
		ModifyReason:   input.ModifyReason,
	}

	env, err := s.subscriptions.Update(ctx, sub)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update subscription")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return &env.Data, nil
}

// GetUserSubscriptionByUUID retrieves one subscription and recomputes
// IsExpired from its expire date. Enrichment is skipped only when the lookup
// itself failed.
func (s *userService) GetUserSubscriptionByUUID(ctx context.Context, userUUID, subUUID uuid.UUID) (*entity.UserSubscription, error) {
	env, err := s.subscriptions.GetByUUID(ctx, userUUID, subUUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get subscription")
	}
	if !env.Success {
		return nil, failure(env)
	}

	sub := env.Data
	if err := s.enrichSubscription(&sub); err != nil {
		return nil, err
	}

	return &sub, nil
}

// GetUserSubscriptions retrieves all subscriptions of a user, each enriched
// with IsExpired. Any single item's enrichment failure aborts the whole
// call; no partial list is returned.
func (s *userService) GetUserSubscriptions(ctx context.Context, userUUID uuid.UUID) ([]*entity.UserSubscription, error) {
	env, err := s.subscriptions.ListByUser(ctx, userUUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}
	if !env.Success {
		return nil, failure(env)
	}

	subs := make([]*entity.UserSubscription, 0, len(env.Data))
	for i := range env.Data {
		sub := env.Data[i]
		if err := s.enrichSubscription(&sub); err != nil {
			return nil, err
		}
		subs = append(subs, &sub)
	}

	return subs, nil
}

// enrichSubscription recomputes the transient IsExpired flag against the
// current time.
func (s *userService) enrichSubscription(sub *entity.UserSubscription) error {
	expired, err := sub.ExpiredAt(s.now())
	if err != nil {
		return domainerrors.ErrExpireDateInvalid.WithDetails(err.Error())
	}
	sub.IsExpired = expired

	return nil
}

// CreateUserDevice registers a device with a freshly generated device token.
func (s *userService) CreateUserDevice(ctx context.Context, userUUID uuid.UUID, input *usecase.DeviceInput) (*entity.UserDevice, error) {
	token, err := newDeviceToken()
	if err != nil {
		return nil, err
	}

	device := deviceFromInput(userUUID, input)
	device.DeviceToken = token

	env, err := s.devices.Create(ctx, device)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return &env.Data, nil
}

// UpdateUserDevice mutates a device, targeted by device UUID.
func (s *userService) UpdateUserDevice(ctx context.Context, userUUID, deviceUUID uuid.UUID, input *usecase.DeviceInput) (*entity.UserDevice, error) {
	device := deviceFromInput(userUUID, input)
	device.UUID = deviceUUID

	env, err := s.devices.Update(ctx, device)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update device")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return &env.Data, nil
}

// GetUserDeviceByUUID retrieves one device of a user.
func (s *userService) GetUserDeviceByUUID(ctx context.Context, userUUID, deviceUUID uuid.UUID) (*entity.UserDevice, error) {
	env, err := s.devices.GetByUUID(ctx, userUUID, deviceUUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get device")
	}
	if !env.Success {
		return nil, failure(env)
	}

	return &env.Data, nil
}

// GetUserDevices retrieves all devices of a user.
func (s *userService) GetUserDevices(ctx context.Context, userUUID uuid.UUID) ([]*entity.UserDevice, error) {
	env, err := s.devices.ListByUser(ctx, userUUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}
	if !env.Success {
		return nil, failure(env)
	}

	devices := make([]*entity.UserDevice, 0, len(env.Data))
	for i := range env.Data {
		devices = append(devices, &env.Data[i])
	}

	return devices, nil
}

// DeleteUserDevice physically removes a device.
func (s *userService) DeleteUserDevice(ctx context.Context, userUUID, deviceUUID uuid.UUID) error {
	env, err := s.devices.Delete(ctx, userUUID, deviceUUID)
	if err != nil {
		return errors.Wrap(err, "failed to delete device")
	}
	if !env.Success {
		return failure(env)
	}

	return nil
}

// GetUserUUIDByPinCode resolves an open pairing pin code to a user UUID. A
// miss surfaces as the upstream's not-found error, unmodified.
func (s *userService) GetUserUUIDByPinCode(ctx context.Context, pinCode string) (uuid.UUID, error) {
	env, err := s.users.GetByPinCode(ctx, pinCode)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to look up pin code")
	}
	if !env.Success {
		return uuid.Nil, failure(env)
	}

	return env.Data.UUID, nil
}

// ExchangePinCode resolves a pin code to a user and binds a device to that
// user with a freshly generated token. The two steps are not atomic: a bind
// failure after a successful resolve leaves no compensation behind, and the
// returned error names the failed step.
func (s *userService) ExchangePinCode(ctx context.Context, pinCode string, input *usecase.DeviceInput) (*entity.UserDevice, error) {
	userUUID, err := s.GetUserUUIDByPinCode(ctx, pinCode)
	if err != nil {
		return nil, domainerrors.NewStepError(StepResolvePinCode, err)
	}

	device := deviceFromInput(userUUID, input)
	device.PinCode = pinCode

	token, err := newDeviceToken()
	if err != nil {
		return nil, domainerrors.NewStepError(StepBindDevice, err)
	}
	device.DeviceToken = token

	env, err := s.devices.Create(ctx, device)
	if err != nil {
		return nil, domainerrors.NewStepError(StepBindDevice, errors.Wrap(err, "failed to bind device"))
	}
	if !env.Success {
		return nil, domainerrors.NewStepError(StepBindDevice, failure(env))
	}

	return &env.Data, nil
}

// ProcessPaymentNotification links a confirmed provider payment to its
// order. Three sequential steps with no rollback; the returned error names
// the failed step.
func (s *userService) ProcessPaymentNotification(ctx context.Context, orderCode string, payload json.RawMessage) (*entity.Payment, error) {
	orderEnv, err := s.orders.GetByCode(ctx, orderCode)
	if err != nil {
		return nil, domainerrors.NewStepError(StepLookupOrder, errors.Wrap(err, "failed to look up order"))
	}
	if !orderEnv.Success {
		return nil, domainerrors.NewStepError(StepLookupOrder, failure(orderEnv))
	}

	payment := &entity.Payment{
		OrderCode: orderCode,
		Payload:   payload,
	}
	paymentEnv, err := s.payments.Create(ctx, payment)
	if err != nil {
		return nil, domainerrors.NewStepError(StepCreatePayment, errors.Wrap(err, "failed to create payment"))
	}
	if !paymentEnv.Success {
		return nil, domainerrors.NewStepError(StepCreatePayment, failure(paymentEnv))
	}

	order := orderEnv.Data
	paymentUUID := paymentEnv.Data.UUID
	order.PaymentUUID = &paymentUUID
	order.StatusID = entity.OrderStatusPaid

	linkEnv, err := s.orders.Update(ctx, &order)
	if err != nil {
		return nil, domainerrors.NewStepError(StepLinkOrder, errors.Wrap(err, "failed to link order"))
	}
	if !linkEnv.Success {
		return nil, domainerrors.NewStepError(StepLinkOrder, failure(linkEnv))
	}

	return &paymentEnv.Data, nil
}

// deviceFromInput builds the upstream device DTO from client-supplied fields.
func deviceFromInput(userUUID uuid.UUID, input *usecase.DeviceInput) *entity.UserDevice {
	return &entity.UserDevice{
		UserUUID:   userUUID,
		PlatformID: input.PlatformID,
		VPNTypeID:  input.VPNTypeID,
		DeviceID:   input.DeviceID,
		DeviceIP:   input.DeviceIP,
		VirtualIP:  input.VirtualIP,
	}
}

// newDeviceToken generates an opaque random device token.
func newDeviceToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate device token")
	}

	return hex.EncodeToString(buf), nil
}
