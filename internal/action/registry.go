package action

import (
	"fmt"
	"sort"
	"sync"

	"github.com/galago-remap/scte/internal/param"
)

// Constructor builds an Action from a keyword and its (already
// checker-validated-by-convention — constructors still run their own
// ParamChecker) parameter list.
type Constructor func(keyword string, params []param.Parameter) (Action, error)

// Registry is the append-only keyword -> Constructor table the parser
// resolves action keywords against. Modeled on the stub registry's
// mutex-guarded map, but registration here is fatal-on-duplicate instead of
// replace-on-duplicate: two action kinds can never legitimately claim the
// same keyword.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// DefaultRegistry is the global registry every built-in action kind
// registers itself into from its package's init().
var DefaultRegistry = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register adds keyword's constructor. Panics if keyword is already
// registered — a double registration is a programming error caught at
// package-init time, never a runtime condition to recover from.
func (r *Registry) Register(keyword string, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.ctors[keyword]; exists {
		panic(fmt.Sprintf("action keyword %q already registered", keyword))
	}
	r.ctors[keyword] = ctor
}

// Known reports whether keyword has a registered constructor.
func (r *Registry) Known(keyword string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ctors[keyword]
	return ok
}

// New builds an action for keyword, or an UnknownKeyword error if keyword
// isn't registered.
func (r *Registry) New(keyword string, params []param.Parameter) (Action, error) {
	r.mu.RLock()
	ctor, ok := r.ctors[keyword]
	r.mu.RUnlock()
	if !ok {
		return nil, unknownKeyword(keyword)
	}
	return ctor(keyword, params)
}

// List returns every registered keyword, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ctors))
	for k := range r.ctors {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Register adds keyword's constructor to the default registry.
func Register(keyword string, ctor Constructor) { DefaultRegistry.Register(keyword, ctor) }

// Known reports whether keyword is registered in the default registry.
func Known(keyword string) bool { return DefaultRegistry.Known(keyword) }

// New builds an action for keyword using the default registry.
func New(keyword string, params []param.Parameter) (Action, error) {
	return DefaultRegistry.New(keyword, params)
}
