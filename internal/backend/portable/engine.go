package portable

import (
	"sync"

	"github.com/ekisa-team/tensorbridge/internal/backend"
)

// Engine is a standalone inference engine able to parse serialized portable
// graphs into executable sessions. Exactly one engine serves the process;
// implementations register themselves at init time, the way database drivers
// do. An unregistered engine is a hard environment prerequisite failure, not
// a runtime-recoverable condition.
type Engine interface {
	// Name returns the engine identifier.
	Name() string

	// NewSession parses a serialized portable graph once into a long-lived
	// execution session, applying the session options before first use.
	NewSession(artifact []byte, opts backend.SessionOptions) (Session, error)
}

var (
	engineMu sync.RWMutex
	engine   Engine
)

// RegisterEngine installs the process-wide portable inference engine.
// Later registrations replace earlier ones.
func RegisterEngine(e Engine) {
	engineMu.Lock()
	defer engineMu.Unlock()

	engine = e
}

// registeredEngine returns the installed engine, if any.
func registeredEngine() (Engine, bool) {
	engineMu.RLock()
	defer engineMu.RUnlock()

	return engine, engine != nil
}
