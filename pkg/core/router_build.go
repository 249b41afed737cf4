package core

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	chimd "github.com/go-chi/chi/v5/middleware"
	hmetrics "github.com/joeydtaylor/steeze-routes/pkg/middleware/metrics"
	"github.com/joeydtaylor/steeze-routes/pkg/routes"
	httpx "github.com/joeydtaylor/steeze-routes/pkg/transport/httpx"
	"go.uber.org/multierr"
)

const (
	heartbeatPath = "/ping"
	metricsPath   = "/metrics"
)

var ErrReservedRoute = errors.New("route name reserved by host")

// BuildRouter mounts the table at base on d.Router (a fresh chi router when
// nil) behind request id, panic recovery, heartbeat, access log and metrics
// middleware. Every table problem is reported before anything is mounted.
func BuildRouter(base string, t routes.Table, d BuildDeps) (http.Handler, error) {
	base = cleanBase(base)

	var errs error
	if isReserved(base) {
		errs = multierr.Append(errs, fmt.Errorf("base %q: %w", base, ErrReservedRoute))
	}
	if base == "/" {
		for _, n := range t.Names() {
			if "/"+n == heartbeatPath || "/"+n == metricsPath {
				errs = multierr.Append(errs, fmt.Errorf("route %q: %w", n, ErrReservedRoute))
			}
		}
	}
	unit, err := routes.Configure(t)
	if err = multierr.Append(errs, err); err != nil {
		return nil, err
	}

	r := d.Router
	if r == nil {
		r = httpx.NewChi()
	}
	r.Use(chimd.RequestID, chimd.Recoverer, chimd.Heartbeat(heartbeatPath))
	if d.LogMW != nil {
		r.Use(d.LogMW.Middleware())
	}
	r.Use(hmetrics.Collect())

	// must precede Mount so the table inherits it
	if d.NotFound != nil {
		r.NotFound(d.NotFound)
	}
	if d.Metrics != nil {
		r.Get(metricsPath, d.Metrics)
	}
	r.Mount(base, unit)
	return r.Mux(), nil
}

// isReserved reports whether base sits on or under a host-owned path.
func isReserved(base string) bool {
	for _, p := range []string{heartbeatPath, metricsPath} {
		if base == p || strings.HasPrefix(base, p+"/") {
			return true
		}
	}
	return false
}

func cleanBase(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
