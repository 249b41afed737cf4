package core

import (
	"context"
	"net/http"
	"time"

	"github.com/joeydtaylor/steeze-routes/pkg/routes"
)

func withTimeout(next routes.Handler, d time.Duration) routes.Handler {
	return routes.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), d)
		defer cancel()
		next.Handle(w, r.WithContext(ctx))
	})
}
