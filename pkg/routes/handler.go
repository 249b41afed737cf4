package routes

import (
	"net/http"
	"reflect"
)

// Handler is the capability every route provides: write exactly one
// response for a matched request.
type Handler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

// HandlerFunc adapts an ordinary function to Handler.
type HandlerFunc func(w http.ResponseWriter, r *http.Request)

func (f HandlerFunc) Handle(w http.ResponseWriter, r *http.Request) { f(w, r) }

// FromHTTP wraps an existing http.Handler.
func FromHTTP(h http.Handler) Handler {
	if isNilValue(h) {
		return nil
	}
	return HandlerFunc(h.ServeHTTP)
}

// Adapt exposes a Handler as an http.Handler.
func Adapt(h Handler) http.Handler {
	return http.HandlerFunc(h.Handle)
}

type staticHandler struct {
	status      int
	contentType string
	body        []byte
}

// Text responds 200 with body as plain text.
func Text(body string) Handler {
	return Static(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

// Static responds with a fixed status, content type and body.
// A zero status means 200.
func Static(status int, contentType string, body []byte) Handler {
	if status == 0 {
		status = http.StatusOK
	}
	b := make([]byte, len(body))
	copy(b, body)
	return staticHandler{status: status, contentType: contentType, body: b}
}

func (s staticHandler) Handle(w http.ResponseWriter, _ *http.Request) {
	if s.contentType != "" {
		w.Header().Set("Content-Type", s.contentType)
	}
	w.WriteHeader(s.status)
	if len(s.body) > 0 {
		_, _ = w.Write(s.body)
	}
}

func isNil(h Handler) bool { return isNilValue(h) }

// isNilValue also catches typed nils such as (*T)(nil) or HandlerFunc(nil).
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan, reflect.Interface, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
