package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type options struct {
	notFound   http.Handler
	middleware []func(http.Handler) http.Handler
}

type Option func(*options)

// WithNotFound sets the unit's own not-found handler. Without it a mounted
// unit inherits the host router's.
func WithNotFound(h http.Handler) Option { return func(o *options) { o.notFound = h } }

// WithMiddleware applies mw to every route of this unit only.
func WithMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(o *options) { o.middleware = append(o.middleware, mw...) }
}

// Configure validates t and returns a handler serving GET (and HEAD) /<name>
// for every row. The table is copied; later changes to t are not observed.
//
// All validation failures are returned together.
func Configure(t Table, opts ...Option) (http.Handler, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	entries, err := t.entries()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	if len(o.middleware) > 0 {
		r.Use(o.middleware...)
	}
	if o.notFound != nil {
		r.NotFound(o.notFound.ServeHTTP)
	}
	for _, e := range entries {
		h := Adapt(e.Handler)
		r.Method(http.MethodGet, "/"+e.Name, h)
		r.Method(http.MethodHead, "/"+e.Name, h)
	}
	return r, nil
}

// MustConfigure is Configure that panics on an invalid table.
func MustConfigure(t Table, opts ...Option) http.Handler {
	h, err := Configure(t, opts...)
	if err != nil {
		panic(err)
	}
	return h
}
