package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExpireDateLayout is the date format the billing upstream uses for
// subscription expiry timestamps.
const ExpireDateLayout = "2006-01-02 15:04:05"

// UserSubscription represents a billing subscription owned by a user.
//
// IsExpired is never stored upstream; the user policy recomputes it from
// ExpireDate on every read.
type UserSubscription struct {
	UUID           uuid.UUID `json:"uuid"`                    // Identifier assigned by the billing service.
	UserUUID       uuid.UUID `json:"user_uuid"`               // Owning user.
	SubscriptionID int64     `json:"subscription_id"`         // Billing plan / service id.
	OrderUUID      uuid.UUID `json:"order_uuid"`              // Order the subscription was purchased through.
	ExpireDate     string    `json:"expire_date"`             // Expiry timestamp as the upstream serializes it.
	ModifyDate     string    `json:"modify_date,omitempty"`   // Last modification timestamp.
	ModifyReason   string    `json:"modify_reason,omitempty"` // Free-form reason for the last modification.
	IsExpired      bool      `json:"is_expired"`              // Derived on read, never persisted.
}

// ExpiredAt parses ExpireDate and reports whether the subscription is expired
// relative to the given instant.
func (s *UserSubscription) ExpiredAt(now time.Time) (bool, error) {
	expire, err := time.Parse(ExpireDateLayout, s.ExpireDate)
	if err != nil {
		return false, err
	}

	return expire.Before(now), nil
}
