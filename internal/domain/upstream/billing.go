package upstream

import (
	"context"

	"portal/internal/domain/entity"

	"github.com/google/uuid"
)

// UserSubscriptionClient talks to the billing service's subscription
// resource, scoped under the owning user.
type UserSubscriptionClient interface {
	// Create opens a subscription for a user.
	Create(ctx context.Context, sub *entity.UserSubscription) (*Envelope[entity.UserSubscription], error)

	// Update mutates a subscription, targeting it by subscription UUID.
	Update(ctx context.Context, sub *entity.UserSubscription) (*Envelope[entity.UserSubscription], error)

	// GetByUUID retrieves one subscription of a user.
	GetByUUID(ctx context.Context, userUUID, subUUID uuid.UUID) (*Envelope[entity.UserSubscription], error)

	// ListByUser retrieves all subscriptions of a user.
	ListByUser(ctx context.Context, userUUID uuid.UUID) (*Envelope[[]entity.UserSubscription], error)
}

// OrderClient talks to the billing service's order resource.
type OrderClient interface {
	// Create opens a new order.
	Create(ctx context.Context, order *entity.Order) (*Envelope[entity.Order], error)

	// Update replaces mutable fields of an order, including the payment link.
	Update(ctx context.Context, order *entity.Order) (*Envelope[entity.Order], error)

	// GetByUUID looks an order up by identifier.
	GetByUUID(ctx context.Context, id uuid.UUID) (*Envelope[entity.Order], error)

	// GetByCode looks an order up by its human-facing code.
	GetByCode(ctx context.Context, code string) (*Envelope[entity.Order], error)
}

// PaymentClient talks to the billing service's payment resource.
type PaymentClient interface {
	// Create records a confirmed provider payment.
	Create(ctx context.Context, payment *entity.Payment) (*Envelope[entity.Payment], error)
}
