package upstream

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// UserClient talks to the identity service's user resource.
type UserClient interface {
	// Create registers a new user.
	Create(ctx context.Context, user *entity.User) (*Envelope[entity.User], error)

	// Update replaces mutable fields of an existing user.
	Update(ctx context.Context, user *entity.User) (*Envelope[entity.User], error)

	// GetByUUID looks a user up by identifier.
	GetByUUID(ctx context.Context, id uuid.UUID) (*Envelope[entity.User], error)

	// GetByEmail looks a user up by email address.
	GetByEmail(ctx context.Context, email string) (*Envelope[entity.User], error)

	// GetByPinCode looks a user up by an open pairing pin code.
	GetByPinCode(ctx context.Context, pinCode string) (*Envelope[entity.User], error)
}

// UserDeviceClient talks to the identity service's device resource, scoped
// under the owning user.
type UserDeviceClient interface {
	// Create registers a device for a user.
	Create(ctx context.Context, device *entity.UserDevice) (*Envelope[entity.UserDevice], error)

	// Update mutates a device, targeting it by device UUID.
	Update(ctx context.Context, device *entity.UserDevice) (*Envelope[entity.UserDevice], error)

	// GetByUUID retrieves one device of a user.
	GetByUUID(ctx context.Context, userUUID, deviceUUID uuid.UUID) (*Envelope[entity.UserDevice], error)

	// ListByUser retrieves all devices of a user.
	ListByUser(ctx context.Context, userUUID uuid.UUID) (*Envelope[[]entity.UserDevice], error)

	// Delete physically removes a device. This is the only way a device
	// record ever disappears.
	Delete(ctx context.Context, userUUID, deviceUUID uuid.UUID) (*Envelope[entity.UserDevice], error)
}
