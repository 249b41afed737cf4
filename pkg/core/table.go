package core

import (
	"errors"
	"fmt"
	"time"

	manifest "github.com/joeydtaylor/steeze-routes/pkg/manifest"
	"github.com/joeydtaylor/steeze-routes/pkg/routes"
)

var ErrHandlerNotFound = errors.New("inproc handler not registered")

// TableFromConfig validates cfg and turns its routes into a route table.
// The caller's routes are not modified.
func TableFromConfig(cfg manifest.Config) (routes.Table, error) {
	cfg.Routes = append([]manifest.Route(nil), cfg.Routes...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := make(routes.Table, len(cfg.Routes))
	for _, rt := range cfg.Routes {
		h, err := buildHandler(rt.Handler)
		if err != nil {
			return nil, fmt.Errorf("route %q: %w", rt.Name, err)
		}
		if rt.Policy.TimeoutMS > 0 {
			h = withTimeout(h, time.Duration(rt.Policy.TimeoutMS)*time.Millisecond)
		}
		if _, dup := t[rt.Name]; dup {
			return nil, fmt.Errorf("route %q: %w", rt.Name, routes.ErrDuplicateRoute)
		}
		t[rt.Name] = h
	}
	return t, nil
}

func buildHandler(hs manifest.HSpec) (routes.Handler, error) {
	switch hs.Type {
	case manifest.HandlerText, manifest.HandlerJSON:
		return routes.Static(hs.Status, hs.ContentType, []byte(hs.Body)), nil
	case manifest.HandlerInproc:
		h, ok := Lookup(hs.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrHandlerNotFound, hs.Name)
		}
		return h, nil
	default:
		return nil, fmt.Errorf("unknown handler type %q", hs.Type)
	}
}
