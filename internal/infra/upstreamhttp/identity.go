package upstreamhttp

import (
	"context"
	"net/http"

	"portal/config"
	"portal/internal/domain/entity"
	"portal/internal/domain/upstream"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// IdentityParams holds dependencies for the identity service clients,
// injected by Fx.
type IdentityParams struct {
	fx.In

	Config *config.Config
}

type userClient struct {
	caller *caller
}

// NewUserClient creates the user resource client of the identity service.
func NewUserClient(params IdentityParams) upstream.UserClient {
	identity := params.Config.Upstreams.Identity

	return &userClient{
		caller: newCaller(identity.BaseURL, identity.Timeout),
	}
}

func (c *userClient) Create(ctx context.Context, user *entity.User) (*upstream.Envelope[entity.User], error) {
	return call[entity.User](ctx, c.caller, http.MethodPost, "/users", nil, user)
}

func (c *userClient) Update(ctx context.Context, user *entity.User) (*upstream.Envelope[entity.User], error) {
	return call[entity.User](ctx, c.caller, http.MethodPut, "/users/"+user.UUID.String(), nil, user)
}

func (c *userClient) GetByUUID(ctx context.Context, id uuid.UUID) (*upstream.Envelope[entity.User], error) {
	return call[entity.User](ctx, c.caller, http.MethodGet, "/users/uuid/"+id.String(), nil, nil)
}

func (c *userClient) GetByEmail(ctx context.Context, email string) (*upstream.Envelope[entity.User], error) {
	return call[entity.User](ctx, c.caller, http.MethodGet, "/users/email/"+email, nil, nil)
}

func (c *userClient) GetByPinCode(ctx context.Context, pinCode string) (*upstream.Envelope[entity.User], error) {
	return call[entity.User](ctx, c.caller, http.MethodGet, "/users/pincode/"+pinCode, nil, nil)
}

type userDeviceClient struct {
	caller *caller
}

// NewUserDeviceClient creates the device resource client of the identity
// service. Devices are scoped under their owning user.
func NewUserDeviceClient(params IdentityParams) upstream.UserDeviceClient {
	identity := params.Config.Upstreams.Identity

	return &userDeviceClient{
		caller: newCaller(identity.BaseURL, identity.Timeout),
	}
}

func devicesPath(userUUID uuid.UUID) string {
	return "/users/" + userUUID.String() + "/devices"
}

func (c *userDeviceClient) Create(ctx context.Context, device *entity.UserDevice) (*upstream.Envelope[entity.UserDevice], error) {
	return call[entity.UserDevice](ctx, c.caller, http.MethodPost, devicesPath(device.UserUUID), nil, device)
}

func (c *userDeviceClient) Update(ctx context.Context, device *entity.UserDevice) (*upstream.Envelope[entity.UserDevice], error) {
	return call[entity.UserDevice](ctx, c.caller, http.MethodPut, devicesPath(device.UserUUID)+"/"+device.UUID.String(), nil, device)
}

func (c *userDeviceClient) GetByUUID(ctx context.Context, userUUID, deviceUUID uuid.UUID) (*upstream.Envelope[entity.UserDevice], error) {
	return call[entity.UserDevice](ctx, c.caller, http.MethodGet, devicesPath(userUUID)+"/"+deviceUUID.String(), nil, nil)
}

func (c *userDeviceClient) ListByUser(ctx context.Context, userUUID uuid.UUID) (*upstream.Envelope[[]entity.UserDevice], error) {
	return call[[]entity.UserDevice](ctx, c.caller, http.MethodGet, devicesPath(userUUID), nil, nil)
}

func (c *userDeviceClient) Delete(ctx context.Context, userUUID, deviceUUID uuid.UUID) (*upstream.Envelope[entity.UserDevice], error) {
	return call[entity.UserDevice](ctx, c.caller, http.MethodDelete, devicesPath(userUUID)+"/"+deviceUUID.String(), nil, nil)
}
