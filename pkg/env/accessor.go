package env

import (
	"sort"
	"strings"
	"sync"

	"github.com/devscast/confcore/pkg/dotenv"
)

// ReadOption customises a single Read call.
type ReadOption func(*readOptions)

type readOptions struct {
	hasDefault bool
	def        string
}

// WithDefault supplies a fallback value for a Read that finds the
// variable unset, instead of returning a *MissingEnvError.
func WithDefault(value string) ReadOption {
	return func(o *readOptions) {
		o.hasDefault = true
		o.def = value
	}
}

// Accessor reads process-environment variables and remembers the name of
// every variable it has been asked to read.
type Accessor struct {
	penv dotenv.ProcessEnv

	mu         sync.RWMutex
	registered map[string]struct{}
}

// New returns an Accessor backed by penv. A nil penv defaults to
// dotenv.OS.
func New(penv dotenv.ProcessEnv) *Accessor {
	if penv == nil {
		penv = dotenv.OS
	}
	return &Accessor{penv: penv, registered: make(map[string]struct{})}
}

// Register adds names to the accessor's known set without reading them.
func (a *Accessor) Register(names ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, name := range names {
		a.registered[name] = struct{}{}
	}
}

// Read returns the value of name, registering it as known. If name is
// unset and no WithDefault option is given, it returns a
// *MissingEnvError.
func (a *Accessor) Read(name string, opts ...ReadOption) (string, error) {
	a.Register(name)

	if v, ok := a.penv.LookupEnv(name); ok {
		return v, nil
	}

	var ro readOptions
	for _, opt := range opts {
		opt(&ro)
	}
	if ro.hasDefault {
		return ro.def, nil
	}
	return "", &MissingEnvError{Name: name}
}

// Optional returns the value of name, or fallback if it is unset.
func (a *Accessor) Optional(name, fallback string) string {
	v, err := a.Read(name, WithDefault(fallback))
	if err != nil {
		return fallback
	}
	return v
}

// Has reports whether name is in the registered set or currently set in
// the process environment. It does not itself register name.
func (a *Accessor) Has(name string) bool {
	a.mu.RLock()
	_, registered := a.registered[name]
	a.mu.RUnlock()
	if registered {
		return true
	}
	_, ok := a.penv.LookupEnv(name)
	return ok
}

// Keys returns the union of the registered set and every name currently
// set in the process environment, sorted.
func (a *Accessor) Keys() []string {
	a.mu.RLock()
	union := make(map[string]struct{}, len(a.registered))
	for k := range a.registered {
		union[k] = struct{}{}
	}
	a.mu.RUnlock()

	for _, kv := range a.penv.Environ() {
		if i := strings.IndexByte(kv, '='); i >= 0 {
			union[kv[:i]] = struct{}{}
		}
	}

	keys := make([]string, 0, len(union))
	for k := range union {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
