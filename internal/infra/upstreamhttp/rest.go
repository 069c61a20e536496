// Package upstreamhttp implements the upstream client interfaces over plain
// HTTP with JSON bodies. Every call is normalized into the shared response
// envelope; transport errors are returned as Go errors, upstream failure
// statuses are returned inside the envelope.
package upstreamhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"portal/internal/domain/upstream"

	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// caller is the shared transport for one upstream service.
type caller struct {
	baseURL string
	client  *http.Client
}

func newCaller(baseURL string, timeout time.Duration) *caller {
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &caller{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// errorBody is the JSON error shape the upstream services respond with on
// failure statuses.
type errorBody struct {
	Errors []upstream.ErrorItem `json:"errors"`
}

// call performs one upstream request and folds the response into an
// envelope. A non-2xx status is not an error at this level; it becomes a
// failure envelope for the policy layer to translate.
func call[T any](ctx context.Context, c *caller, method, path string, query url.Values, body any) (*upstream.Envelope[T], error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "upstream request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upstream response")
	}

	env := &upstream.Envelope[T]{
		Code:    resp.StatusCode,
		Headers: resp.Header,
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		env.Success = true
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &env.Data); err != nil {
				return nil, errors.Wrap(err, "failed to decode upstream response")
			}
		}

		return env, nil
	}

	var failure errorBody
	if err := json.Unmarshal(raw, &failure); err == nil && len(failure.Errors) > 0 {
		env.Errors = failure.Errors
	} else if msg := strings.TrimSpace(string(raw)); msg != "" {
		env.Errors = []upstream.ErrorItem{{Code: "UPSTREAM_ERROR", Message: msg}}
	}

	return env, nil
}

// pageQuery renders the pagination descriptor; a nil page sends no
// parameters at all.
func pageQuery(page *upstream.Page) url.Values {
	if page == nil {
		return nil
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(page.Limit))
	query.Set("offset", strconv.Itoa(page.Offset))

	return query
}
