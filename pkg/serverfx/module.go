package serverfx

import (
	"net/http"

	"github.com/joeydtaylor/steeze-routes/pkg/bundlefx"
	"github.com/joeydtaylor/steeze-routes/pkg/core"
	"github.com/joeydtaylor/steeze-routes/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-routes/pkg/routes"
	"github.com/joeydtaylor/steeze-routes/pkg/server"
	"github.com/joeydtaylor/steeze-routes/pkg/transport/httpx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module returns a complete Fx option set. Contribute routes with AsRoute.
func Module(opts ...Option) fx.Option {
	return fx.Options(
		fx.Provide(func() (Config, error) { return loadConfig(opts) }),
		bundlefx.Module,
		fx.Provide(httpx.NewChi),
		fx.Provide(provideMount),
		fx.Provide(provideRouter),
		fx.Provide(provideServer),
		fx.Invoke(func(*server.Server) {}),
	)
}

// AsRoute contributes one named route to the table.
func AsRoute(name string, h routes.Handler) fx.Option {
	return fx.Provide(fx.Annotated{
		Group:  "routes",
		Target: func() routes.Entry { return routes.Entry{Name: name, Handler: h} },
	})
}

// AsRoutes contributes every row of t.
func AsRoutes(t routes.Table) fx.Option {
	opts := make([]fx.Option, 0, len(t))
	for _, e := range t.Entries() {
		opts = append(opts, AsRoute(e.Name, e.Handler))
	}
	return fx.Options(opts...)
}

// ---------- Table ----------

// Mount is the route table and the base path it is served under.
type Mount struct {
	Base  string
	Table routes.Table
}

type mountDeps struct {
	fx.In
	Cfg     Config
	Entries []routes.Entry `group:"routes"`
	Log     *zap.Logger
}

func provideMount(d mountDeps) (Mount, error) {
	entries := append([]routes.Entry(nil), d.Entries...)
	base := d.Cfg.BasePath

	if d.Cfg.ManifestPath != "" {
		man, err := core.LoadConfig(d.Cfg.ManifestPath)
		if err != nil {
			return Mount{}, err
		}
		mt, err := core.TableFromConfig(man)
		if err != nil {
			return Mount{}, err
		}
		entries = append(entries, mt.Entries()...)
		if base == "" {
			base = man.BasePath
		}
		d.Log.Info("manifest loaded",
			zap.String("path", d.Cfg.ManifestPath),
			zap.Int("routes", len(mt)),
		)
	}

	t, err := routes.NewTable(entries...)
	if err != nil {
		return Mount{}, err
	}
	if base == "" {
		base = "/"
	}
	return Mount{Base: base, Table: t}, nil
}

// ---------- Router ----------

type routerDeps struct {
	fx.In
	Mount   Mount
	LogMW   *logger.Middleware
	Metrics http.Handler `name:"metrics"`
	Router  httpx.Router
	Log     *zap.Logger
}

type routerResult struct {
	fx.Out
	App http.Handler `name:"app"`
}

func provideRouter(d routerDeps) (routerResult, error) {
	h, err := core.BuildRouter(d.Mount.Base, d.Mount.Table, core.BuildDeps{
		LogMW:   d.LogMW,
		Metrics: d.Metrics,
		Router:  d.Router,
	})
	if err != nil {
		return routerResult{}, err
	}
	d.Log.Info("routes mounted",
		zap.String("base", d.Mount.Base),
		zap.Strings("routes", d.Mount.Table.Names()),
	)
	return routerResult{App: h}, nil
}

// ---------- Lifecycle ----------

type serverDeps struct {
	fx.In
	Logger *zap.Logger
	App    http.Handler `name:"app"`
}

func provideServer(lc fx.Lifecycle, cfg Config, d serverDeps) *server.Server {
	s := server.New(cfg.ListenAddress, d.App, d.Logger,
		server.WithService(cfg.Service),
		server.WithTLS(cfg.TLSCert, cfg.TLSKey),
	)
	lc.Append(fx.Hook{
		OnStart: s.Start,
		OnStop:  s.Stop,
	})
	return s
}
