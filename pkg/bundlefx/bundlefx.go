// bundlefx/bundlefx.go
package bundlefx

import (
	"github.com/joeydtaylor/steeze-routes/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-routes/pkg/middleware/metrics"
	"go.uber.org/fx"
)

// Module provides *zap.Logger, *logger.Middleware and the `name:"metrics"` handler.
var Module = fx.Options(
	logger.Module,
	metrics.Module,
)
