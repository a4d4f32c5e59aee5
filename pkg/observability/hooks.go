// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about mapper lookups, configuration
// failures, and HTTP API traffic.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetMapperHooks(&myMapperHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Mapper().OnLookup(name)
package observability

import (
	"net/http"
	"sync"
	"time"
)

// =============================================================================
// Mapper Hooks
// =============================================================================

// MapperHooks receives events from the mapper registry.
type MapperHooks interface {
	// OnLookup records a registry lookup for the given display name.
	OnLookup(name string)

	// OnConfigure records a successful mapper configuration.
	OnConfigure(name string, chain, parallel int, param string)

	// OnReject records a mapper that rejected its parameters.
	OnReject(name string, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API server.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(r *http.Request)

	// OnResponse records a completed HTTP response.
	OnResponse(r *http.Request, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopMapperHooks is a no-op implementation of MapperHooks.
type NoopMapperHooks struct{}

func (NoopMapperHooks) OnLookup(string)                      {}
func (NoopMapperHooks) OnConfigure(string, int, int, string) {}
func (NoopMapperHooks) OnReject(string, error)               {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(*http.Request)                      {}
func (NoopHTTPHooks) OnResponse(*http.Request, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	mapperHooks MapperHooks = NoopMapperHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetMapperHooks registers custom mapper hooks.
// This should be called once at application startup before any lookups.
func SetMapperHooks(h MapperHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		mapperHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving traffic.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Mapper returns the registered mapper hooks.
func Mapper() MapperHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return mapperHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	mapperHooks = NoopMapperHooks{}
	httpHooks = NoopHTTPHooks{}
}
