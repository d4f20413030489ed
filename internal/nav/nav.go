// Package nav models the outbound navigation requests issued by the browser
// core. A navigation carries a flat parameter set to a fixed listings path and
// is fire-and-forget: once issued, the caller abandons its in-memory state.
package nav

import (
	"context"
	"fmt"
	"net/url"
	"sync"
)

// ListingsPath is the path every listings navigation targets.
const ListingsPath = "/properties"

// Request is a single navigation.
type Request struct {
	Path   string
	Params url.Values
}

// NewRequest builds a request for the listings path.
func NewRequest(params url.Values) Request {
	return Request{Path: ListingsPath, Params: params}
}

// ParseRequest parses a link URL such as "/properties?page=2&search=austin".
func ParseRequest(raw string) (Request, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Request{}, fmt.Errorf("invalid navigation url %q: %w", raw, err)
	}

	path := u.Path
	if path == "" {
		path = ListingsPath
	}

	return Request{Path: path, Params: u.Query()}, nil
}

// URL encodes the request as a relative URL. Keys are sorted by url.Values.
func (r Request) URL() string {
	path := r.Path
	if path == "" {
		path = ListingsPath
	}

	if len(r.Params) == 0 {
		return path
	}

	return path + "?" + r.Params.Encode()
}

// Get returns the first value of a parameter.
func (r Request) Get(key string) string {
	if r.Params == nil {
		return ""
	}

	return r.Params.Get(key)
}

// Navigator performs navigations on behalf of the core.
type Navigator interface {
	Navigate(ctx context.Context, req Request) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, req Request) error

// Navigate calls f.
func (f NavigatorFunc) Navigate(ctx context.Context, req Request) error {
	return f(ctx, req)
}

// Recorder is a Navigator that only remembers what it was asked to do.
type Recorder struct {
	mu       sync.Mutex
	requests []Request
}

// Navigate records req.
func (r *Recorder) Navigate(_ context.Context, req Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests = append(r.requests, req)

	return nil
}

// Requests returns a copy of the recorded navigations.
func (r *Recorder) Requests() []Request {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Request, len(r.requests))
	copy(out, r.requests)

	return out
}

// Last returns the most recent navigation.
func (r *Recorder) Last() (Request, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.requests) == 0 {
		return Request{}, false
	}

	return r.requests[len(r.requests)-1], true
}
