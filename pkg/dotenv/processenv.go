package dotenv

import (
	"os"
	"strings"
	"sync"
)

// Sentinel keys this package maintains in the process environment. They
// are read by cooperating cascades across package boundaries, so the
// names are fixed rather than configurable.
const (
	// SentinelVars lists, comma-separated, every variable name this
	// package has populated into the process environment. A variable
	// named here may be overwritten by a later populate call even
	// without Override.
	SentinelVars = "NODE_DOTENV_VARS"

	// SentinelPath records the last base path a Cascade resolved,
	// informational only.
	SentinelPath = "NODE_DOTENV_PATH"
)

// ProcessEnv abstracts the process-wide environment so the lexer and
// cascade can be exercised without mutating the real process and so
// multiple cooperating cascades can share one view of it. OS returns the
// default, os-package-backed implementation.
type ProcessEnv interface {
	Getenv(key string) string
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
	Environ() []string
}

// OS is the default ProcessEnv, backed directly by the os package.
var OS ProcessEnv = osProcessEnv{}

type osProcessEnv struct{}

func (osProcessEnv) Getenv(key string) string            { return os.Getenv(key) }
func (osProcessEnv) LookupEnv(key string) (string, bool)  { return os.LookupEnv(key) }
func (osProcessEnv) Setenv(key, value string) error       { return os.Setenv(key, value) }
func (osProcessEnv) Environ() []string                    { return os.Environ() }

// sentinelMu guards read-modify-write of SentinelVars: the sentinel is
// shared process-wide state, not owned by any single Cascade or Lexer
// value, so every writer must serialise through the same mutex
// regardless of how many call sites populate concurrently.
var sentinelMu sync.Mutex

// LoadedVars returns, in sentinel order, every variable name currently
// listed as populated by this package.
func LoadedVars(penv ProcessEnv) []string {
	sentinelMu.Lock()
	raw, _ := penv.LookupEnv(SentinelVars)
	sentinelMu.Unlock()

	var order []string
	seen := map[string]bool{}
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name != "" && !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}
	return order
}

// loadedByUs returns the set of variable names the sentinel currently
// lists as populated by this package.
func loadedByUs(penv ProcessEnv) map[string]bool {
	sentinelMu.Lock()
	raw, _ := penv.LookupEnv(SentinelVars)
	sentinelMu.Unlock()

	set := make(map[string]bool)
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			set[name] = true
		}
	}
	return set
}

// markLoadedByUs adds name to the sentinel set, persisting the updated
// comma-joined list back into the process environment.
func markLoadedByUs(penv ProcessEnv, name string) {
	sentinelMu.Lock()
	defer sentinelMu.Unlock()

	raw, _ := penv.LookupEnv(SentinelVars)
	set := map[string]bool{}
	var order []string
	for _, n := range strings.Split(raw, ",") {
		n = strings.TrimSpace(n)
		if n == "" || set[n] {
			continue
		}
		set[n] = true
		order = append(order, n)
	}
	if !set[name] {
		order = append(order, name)
	}
	_ = penv.Setenv(SentinelVars, strings.Join(order, ","))
}
