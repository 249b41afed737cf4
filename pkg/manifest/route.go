package manifest

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/joeydtaylor/steeze-routes/pkg/codec"
	"github.com/joeydtaylor/steeze-routes/pkg/routes"
)

var (
	ErrUnsupportedMethod = errors.New("only GET routes are supported")
	ErrDuplicateName     = errors.New("duplicate route name")
)

// Route describes a single named route.
type Route struct {
	Name    string `toml:"name"`
	Method  string `toml:"method"`
	Policy  Policy `toml:"policy"`
	Handler HSpec  `toml:"handler"`
}

type Policy struct {
	TimeoutMS int `toml:"timeout_ms"`
}

type HSpec struct {
	Type        HandlerType `toml:"type"`
	Name        string      `toml:"name"`         // inproc
	Body        string      `toml:"body"`         // text, json
	Status      int         `toml:"status"`       // text, json; 0 means 200
	ContentType string      `toml:"content_type"` // text, json
}

// normalize name/method/handler type
func (r *Route) normalize() error {
	n, err := routes.NormalizeName(r.Name)
	if err != nil {
		return fmt.Errorf("name %q: %w", r.Name, err)
	}
	r.Name = n
	r.Method = strings.ToUpper(strings.TrimSpace(r.Method))
	if r.Method == "" {
		r.Method = DefaultHandlerMethod
	}
	r.Handler.Type = HandlerType(strings.ToLower(strings.TrimSpace(string(r.Handler.Type))))
	r.Handler.ContentType = strings.TrimSpace(r.Handler.ContentType)
	return nil
}

func (r *Route) validate() error {
	if r.Method != http.MethodGet {
		return fmt.Errorf("method %q: %w", r.Method, ErrUnsupportedMethod)
	}

	switch r.Handler.Type {
	case HandlerText:
		if r.Handler.ContentType == "" {
			r.Handler.ContentType = DefaultTextType
		}
	case HandlerJSON:
		out, err := codec.Canonicalize(codec.JSONStrict, []byte(r.Handler.Body))
		if err != nil {
			return fmt.Errorf("handler.body: %w", err)
		}
		r.Handler.Body = string(out)
		if r.Handler.ContentType == "" {
			r.Handler.ContentType = codec.JSONStrict.ContentType()
		}
	case HandlerInproc:
		if strings.TrimSpace(r.Handler.Name) == "" {
			return errors.New("handler.name required for inproc")
		}
	default:
		return fmt.Errorf("unknown handler type %q", r.Handler.Type)
	}

	if s := r.Handler.Status; s != 0 && (s < 100 || s > 599) {
		return fmt.Errorf("handler.status %d out of range", s)
	}
	if r.Policy.TimeoutMS < 0 {
		return errors.New("policy.timeout_ms must be >= 0")
	}
	return nil
}
