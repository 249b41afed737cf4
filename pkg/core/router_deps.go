package core

import (
	"net/http"

	"github.com/joeydtaylor/steeze-routes/pkg/middleware/logger"
	httpx "github.com/joeydtaylor/steeze-routes/pkg/transport/httpx"
)

type BuildDeps struct {
	LogMW    *logger.Middleware
	Metrics  http.Handler
	Router   httpx.Router
	NotFound http.Handler
}
