// Package upstream defines the contract between the policy layer and the
// remote services: the normalized response envelope and one client interface
// per upstream resource. Policies never touch raw HTTP transport details,
// only this envelope.
package upstream

import (
	"net/http"
)

// ErrorItem is a single structured error reported by an upstream service.
type ErrorItem struct {
	Code    string `json:"code"`    // Machine-readable error code.
	Message string `json:"message"` // Human phrase.
}

// Envelope is the normalized outcome of one upstream call. Success mirrors
// whether the upstream answered with a 2xx status; Code carries the original
// HTTP status either way. Headers smuggle out-of-band values such as
// generated tokens or Location identifiers.
type Envelope[T any] struct {
	Success bool
	Code    int
	Data    T
	Headers http.Header
	Errors  []ErrorItem
}

// Header returns the first value of the named response header, or "".
func (e *Envelope[T]) Header(name string) string {
	if e.Headers == nil {
		return ""
	}

	return e.Headers.Get(name)
}

// Page is a pagination descriptor for collection reads. A nil *Page means no
// limit/offset query parameters are sent at all.
type Page struct {
	Limit  int
	Offset int
}
