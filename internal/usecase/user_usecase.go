// Package usecase defines the policy interfaces of the gateway: the
// operations that compose several upstream calls into one business
// operation with defined error semantics.
package usecase

import (
	"context"
	"encoding/json"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// GetUserQuery selects a user by exactly one of its lookup keys.
type GetUserQuery struct {
	UUID  *uuid.UUID
	Email *string
}

// DeviceInput carries the client-supplied fields of a device registration or
// update. Identifier, token and connection state are owned by the policy and
// the identity service.
type DeviceInput struct {
	PlatformID entity.PlatformID
	VPNTypeID  entity.VPNTypeID
	DeviceID   string
	DeviceIP   string
	VirtualIP  string
}

// CreateSubscriptionInput carries the required fields for opening a
// subscription. All three are mandatory.
type CreateSubscriptionInput struct {
	UserUUID       uuid.UUID
	SubscriptionID int64
	OrderUUID      uuid.UUID
}

// UpdateSubscriptionInput carries the fields for mutating a subscription.
type UpdateSubscriptionInput struct {
	UserUUID         uuid.UUID
	SubscriptionUUID uuid.UUID
	SubscriptionID   int64
	OrderUUID        uuid.UUID
	ExpireDate       string
	ModifyDate       string
	ModifyReason     string
}

// UserUsecase is the single point of orchestration for identity, device,
// subscription and order operations. It hides upstream call sequencing from
// handlers; failures surface as typed errors carrying the upstream HTTP code
// and error list unmodified.
type UserUsecase interface {
	// GetUser resolves a user by UUID or email; exactly one key must be set.
	GetUser(ctx context.Context, query GetUserQuery) (*entity.User, error)

	// CreateUser registers a new user with the identity service.
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)

	// UpdateUser updates an existing user.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)

	// CreateUserSubscription opens a subscription linked to an order.
	CreateUserSubscription(ctx context.Context, input CreateSubscriptionInput) (*entity.UserSubscription, error)

	// UpdateUserSubscription mutates a subscription.
	UpdateUserSubscription(ctx context.Context, input UpdateSubscriptionInput) (*entity.UserSubscription, error)

	// GetUserSubscriptionByUUID retrieves one subscription with IsExpired
	// recomputed from its expire date.
	GetUserSubscriptionByUUID(ctx context.Context, userUUID, subUUID uuid.UUID) (*entity.UserSubscription, error)

	// GetUserSubscriptions retrieves all subscriptions of a user, each
	// enriched with IsExpired. Any single item's failure aborts the whole
	// call; no partial list is returned.
	GetUserSubscriptions(ctx context.Context, userUUID uuid.UUID) ([]*entity.UserSubscription, error)

	// CreateUserDevice registers a device for a user with a freshly
	// generated device token.
	CreateUserDevice(ctx context.Context, userUUID uuid.UUID, input *DeviceInput) (*entity.UserDevice, error)

	// UpdateUserDevice mutates a device, targeted by device UUID.
	UpdateUserDevice(ctx context.Context, userUUID, deviceUUID uuid.UUID, input *DeviceInput) (*entity.UserDevice, error)

	// GetUserDeviceByUUID retrieves one device of a user.
	GetUserDeviceByUUID(ctx context.Context, userUUID, deviceUUID uuid.UUID) (*entity.UserDevice, error)

	// GetUserDevices retrieves all devices of a user.
	GetUserDevices(ctx context.Context, userUUID uuid.UUID) ([]*entity.UserDevice, error)

	// DeleteUserDevice physically removes a device.
	DeleteUserDevice(ctx context.Context, userUUID, deviceUUID uuid.UUID) error

	// GetUserUUIDByPinCode resolves an open pairing pin code to the UUID of
	// the user that owns it.
	GetUserUUIDByPinCode(ctx context.Context, pinCode string) (uuid.UUID, error)

	// ExchangePinCode resolves a pin code to a user and binds a device to
	// that user with a freshly generated token. The two steps are not
	// atomic: if the bind fails after the resolve succeeded, nothing is
	// rolled back and the returned error names the failed step.
	ExchangePinCode(ctx context.Context, pinCode string, input *DeviceInput) (*entity.UserDevice, error)

	// ProcessPaymentNotification links a confirmed provider payment to its
	// order: order lookup by code, payment creation, order update. The
	// steps are sequential and not atomic; the returned error names the
	// failed step.
	ProcessPaymentNotification(ctx context.Context, orderCode string, payload json.RawMessage) (*entity.Payment, error)
}
