package dotenv

import (
	"errors"
	"os"
	"strings"
)

// CascadeOptions configures a Cascade run. The zero value uses the
// Symfony-compatible defaults: APP_ENV/"dev", test environment "test",
// production environment "prod".
type CascadeOptions struct {
	// EnvKey is the process-env variable that names the current
	// environment (e.g. "dev", "test", "prod").
	EnvKey string

	// DefaultEnv is assigned to EnvKey when it is unset after loading
	// the base file.
	DefaultEnv string

	// TestEnvs lists environments for which base.local is not loaded.
	TestEnvs []string

	// ProdEnvs lists environments BootEnv treats as non-debug.
	ProdEnvs []string

	// DebugKey is the process-env variable BootEnv assigns a debug
	// flag to. Defaults to "APP_DEBUG".
	DebugKey string

	// Override, when true, lets every populate call overwrite an
	// existing process-env key regardless of sentinel membership.
	Override bool
}



func (o CascadeOptions) withDefaults() CascadeOptions {
	if o.EnvKey == "" {
		o.EnvKey = "APP_ENV"
	}
	if o.DefaultEnv == "" {
		o.DefaultEnv = "dev"
	}
	if o.TestEnvs == nil {
		o.TestEnvs = []string{"test"}
	}
	if o.ProdEnvs == nil {
		o.ProdEnvs = []string{"prod"}
	}
	if o.DebugKey == "" {
		o.DebugKey = "APP_DEBUG"
	}
	return o
}

// Cascade resolves a base ".env" path into the ordered set of sibling
// files a Symfony-style deployment loads, and populates each into a
// process environment under override-aware rules.
type Cascade struct {
	// Lexer parses each cascade file. Defaults to NewLexer().
	Lexer *Lexer

	// ProcessEnv is the environment populated by the cascade. Defaults
	// to OS.
	ProcessEnv ProcessEnv

	// OnFileLoaded, when set, is called with the path of each cascade
	// file successfully read and populated.
	OnFileLoaded func(path string)
}

func (c *Cascade) lexer() *Lexer {
	if c.Lexer != nil {
		return c.Lexer
	}
	return NewLexer()
}

func (c *Cascade) processEnv() ProcessEnv {
	if c.ProcessEnv != nil {
		return c.ProcessEnv
	}
	return OS
}

// LoadEnv resolves and populates base (or base.dist), base.local,
// base.<env>, and base.<env>.local in that precedence order.
func (c *Cascade) LoadEnv(base string, opts CascadeOptions) error {
	opts = opts.withDefaults()
	penv := c.processEnv()

	loadedPrimary, err := c.loadOptional(base, penv, opts.Override)
	if err != nil {
		return err
	}
	if !loadedPrimary {
		loadedDist, err := c.loadOptional(base+".dist", penv, opts.Override)
		if err != nil {
			return err
		}
		if !loadedDist {
			return &PathError{Path: base, Err: os.ErrNotExist}
		}
	}

	sentinelMu.Lock()
	_ = penv.Setenv(SentinelPath, base)
	sentinelMu.Unlock()

	if _, ok := penv.LookupEnv(opts.EnvKey); !ok {
		c.populate(penv, map[string]string{opts.EnvKey: opts.DefaultEnv}, opts.Override)
	}

	env, _ := penv.LookupEnv(opts.EnvKey)

	if !contains(opts.TestEnvs, env) {
		if err := c.loadIfPresent(base+".local", penv, opts.Override); err != nil {
			return err
		}
	}

	if env == "local" {
		return nil
	}

	if err := c.loadIfPresent(base+"."+env, penv, opts.Override); err != nil {
		return err
	}
	return c.loadIfPresent(base+"."+env+".local", penv, opts.Override)
}

// BootEnv runs LoadEnv and then ensures DebugKey is set, returning
// whether debug mode is in effect. If DebugKey was already set, its
// existing value is interpreted by a boolean cast rather than
// recomputed from ProdEnvs.
func (c *Cascade) BootEnv(base string, opts CascadeOptions) (bool, error) {
	opts = opts.withDefaults()
	if err := c.LoadEnv(base, opts); err != nil {
		return false, err
	}

	penv := c.processEnv()
	if existing, ok := penv.LookupEnv(opts.DebugKey); ok {
		return castBool(existing), nil
	}

	env, _ := penv.LookupEnv(opts.EnvKey)
	debug := !contains(opts.ProdEnvs, env)
	value := "0"
	if debug {
		value = "1"
	}
	c.populate(penv, map[string]string{opts.DebugKey: value}, opts.Override)
	return debug, nil
}

func (c *Cascade) loadIfPresent(path string, penv ProcessEnv, override bool) error {
	_, err := c.loadOptional(path, penv, override)
	return err
}

func (c *Cascade) loadOptional(path string, penv ProcessEnv, override bool) (bool, error) {
	data, present, err := readDotenvFile(path)
	if err != nil {
		return false, err
	}
	if !present {
		return false, nil
	}
	values, err := c.lexer().Parse(data, path)
	if err != nil {
		return false, err
	}
	c.populate(penv, values, override)
	if c.OnFileLoaded != nil {
		c.OnFileLoaded(path)
	}
	return true, nil
}

func readDotenvFile(path string) (data []byte, present bool, err error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return nil, false, nil
		}
		return nil, false, &PathError{Path: path, Err: statErr}
	}
	if info.IsDir() {
		return nil, false, &PathError{Path: path, Err: errors.New("is a directory")}
	}
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, false, &PathError{Path: path, Err: err}
	}
	return data, true, nil
}

// populate writes each (k, v) into penv when override is true, k is
// already in the NODE_DOTENV_VARS sentinel, or k is currently unset. A
// key that is written is added to the sentinel; a key that is skipped
// is left untouched and never recorded.
func (c *Cascade) populate(penv ProcessEnv, values map[string]string, override bool) {
	sentinelMu.Lock()
	defer sentinelMu.Unlock()

	raw, _ := penv.LookupEnv(SentinelVars)
	sentinel := map[string]bool{}
	var order []string
	for _, n := range strings.Split(raw, ",") {
		n = strings.TrimSpace(n)
		if n != "" && !sentinel[n] {
			sentinel[n] = true
			order = append(order, n)
		}
	}

	changed := false
	for k, v := range values {
		_, exists := penv.LookupEnv(k)
		if !override && !sentinel[k] && exists {
			continue
		}
		_ = penv.Setenv(k, v)
		if !sentinel[k] {
			sentinel[k] = true
			order = append(order, k)
			changed = true
		}
	}
	if changed {
		_ = penv.Setenv(SentinelVars, strings.Join(order, ","))
	}
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// castBool interprets a process-env string value as a boolean, per the
// conventions shared by DebugKey and similar flags.
func castBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off", "":
		return false
	default:
		return true
	}
}
