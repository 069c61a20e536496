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

// BillingParams holds dependencies for the billing service clients,
// injected by Fx.
type BillingParams struct {
	fx.In

	Config *config.Config
}

type userSubscriptionClient struct {
	caller *caller
}

// NewUserSubscriptionClient creates the subscription resource client of the
// billing service. Subscriptions are scoped under their owning user.
func NewUserSubscriptionClient(params BillingParams) upstream.UserSubscriptionClient {
	billing := params.Config.Upstreams.Billing

	return &userSubscriptionClient{
		caller: newCaller(billing.BaseURL, billing.Timeout),
	}
}

func subscriptionsPath(userUUID uuid.UUID) string {
	return "/users/" + userUUID.String() + "/subscriptions"
}

func (c *userSubscriptionClient) Create(ctx context.Context, sub *entity.UserSubscription) (*upstream.Envelope[entity.UserSubscription], error) {
	return call[entity.UserSubscription](ctx, c.caller, http.MethodPost, subscriptionsPath(sub.UserUUID), nil, sub)
}

func (c *userSubscriptionClient) Update(ctx context.Context, sub *entity.UserSubscription) (*upstream.Envelope[entity.UserSubscription], error) {
	return call[entity.UserSubscription](ctx, c.caller, http.MethodPut, subscriptionsPath(sub.UserUUID)+"/"+sub.UUID.String(), nil, sub)
}

func (c *userSubscriptionClient) GetByUUID(ctx context.Context, userUUID, subUUID uuid.UUID) (*upstream.Envelope[entity.UserSubscription], error) {
	return call[entity.UserSubscription](ctx, c.caller, http.MethodGet, subscriptionsPath(userUUID)+"/"+subUUID.String(), nil, nil)
}

func (c *userSubscriptionClient) ListByUser(ctx context.Context, userUUID uuid.UUID) (*upstream.Envelope[[]entity.UserSubscription], error) {
	return call[[]entity.UserSubscription](ctx, c.caller, http.MethodGet, subscriptionsPath(userUUID), nil, nil)
}

type orderClient struct {
	caller *caller
}

// NewOrderClient creates the order resource client of the billing service.
func NewOrderClient(params BillingParams) upstream.OrderClient {
	billing := params.Config.Upstreams.Billing

	return &orderClient{
		caller: newCaller(billing.BaseURL, billing.Timeout),
	}
}

func (c *orderClient) Create(ctx context.Context, order *entity.Order) (*upstream.Envelope[entity.Order], error) {
	return call[entity.Order](ctx, c.caller, http.MethodPost, "/orders", nil, order)
}

func (c *orderClient) Update(ctx context.Context, order *entity.Order) (*upstream.Envelope[entity.Order], error) {
	return call[entity.Order](ctx, c.caller, http.MethodPut, "/orders/"+order.UUID.String(), nil, order)
}

func (c *orderClient) GetByUUID(ctx context.Context, id uuid.UUID) (*upstream.Envelope[entity.Order], error) {
	return call[entity.Order](ctx, c.caller, http.MethodGet, "/orders/uuid/"+id.String(), nil, nil)
}

func (c *orderClient) GetByCode(ctx context.Context, code string) (*upstream.Envelope[entity.Order], error) {
	return call[entity.Order](ctx, c.caller, http.MethodGet, "/orders/code/"+code, nil, nil)
}

type paymentClient struct {
	caller *caller
}

// NewPaymentClient creates the payment resource client of the billing service.
func NewPaymentClient(params BillingParams) upstream.PaymentClient {
	billing := params.Config.Upstreams.Billing

	return &paymentClient{
		caller: newCaller(billing.BaseURL, billing.Timeout),
	}
}

func (c *paymentClient) Create(ctx context.Context, payment *entity.Payment) (*upstream.Envelope[entity.Payment], error) {
	return call[entity.Payment](ctx, c.caller, http.MethodPost, "/payments", nil, payment)
}
