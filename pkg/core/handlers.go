// core/handlers.go
package core

import (
	"sync"

	"github.com/joeydtaylor/steeze-routes/pkg/routes"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]routes.Handler{}
)

// Register makes a handler available under a name referenced by inproc
// routes in the manifest. It panics on an empty name, nil handler, or a
// name that is already taken.
func Register(name string, h routes.Handler) {
	if name == "" || h == nil {
		panic("core: handler name and handler required")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		panic("core: duplicate handler " + name)
	}
	registry[name] = h
}

// Lookup retrieves a registered in-proc handler by name.
func Lookup(name string) (routes.Handler, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	h, ok := registry[name]
	return h, ok
}
