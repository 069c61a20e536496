// Package impl contains the policy implementations. Policies are stateless:
// they hold only immutable upstream client references, never log and never
// retry; every upstream failure surfaces synchronously to the caller.
package impl

import (
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/upstream"
)

// failure translates a failure envelope into the typed upstream error,
// carrying the original HTTP code and error list verbatim.
func failure[T any](env *upstream.Envelope[T]) error {
	return domainerrors.NewUpstreamError(env.Code, env.Errors)
}
