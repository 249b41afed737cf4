// Command routes-example serves GET /hello and GET /hi on :3000.
package main

import (
	"github.com/joeydtaylor/steeze-routes/pkg/routes"
	"github.com/joeydtaylor/steeze-routes/pkg/serverfx"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger { return &fxevent.ZapLogger{Logger: l} }),
		serverfx.Module(serverfx.WithService("routes-example")),
		serverfx.AsRoutes(routes.Table{
			"hello": routes.Text("hello world"),
			"hi":    routes.Text("hi world"),
		}),
	).Run()
}
