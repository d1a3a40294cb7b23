package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/devscast/confcore/pkg/clog"
	"github.com/devscast/confcore/pkg/dotenv"
	"github.com/devscast/confcore/pkg/env"
)

// ComposeResult is the successful outcome of a Composer.Compose call.
type ComposeResult struct {
	// Config is whatever opts.Schema.SafeParse returned as Data.
	Config any

	// Env is the accessor the cascade populated, returned so callers
	// can read further process-env values with the same registration
	// tracking.
	Env *env.Accessor
}

// Composer orchestrates one configuration load: cascade, source load,
// merge, placeholder resolution, schema validation.
type Composer struct {
	// Cwd is the default working directory; Options.Cwd overrides it
	// per call.
	Cwd string

	// ProcessEnv backs the dotenv cascade. Defaults to dotenv.OS.
	ProcessEnv dotenv.ProcessEnv

	// Logger receives one Debug line per compose stage. Defaults to an
	// error-level logger on stderr, so the Debug lines are dropped unless
	// the caller sets a Logger at debug level.
	Logger *clog.Logger

	// Metrics receives Prometheus observations. A nil Metrics (the
	// default) uses the package's lazily registered default
	// collectors.
	Metrics *Metrics
}

func (c Composer) processEnv() dotenv.ProcessEnv {
	if c.ProcessEnv != nil {
		return c.ProcessEnv
	}
	return dotenv.OS
}

func (c Composer) logger() *clog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return clog.New(clog.Config{Level: "error"})
}

func (c Composer) metrics() *Metrics {
	if c.Metrics != nil {
		return c.Metrics
	}
	return defaultMetrics()
}

// Compose runs the cascade, loads and merges every source, resolves
// placeholders, and validates the result against opts.Schema. ctx bounds
// command-substitution subprocesses started while parsing dotenv files,
// and a ctx already cancelled when the cascade is about to start makes
// Compose return ctx.Err(); Compose itself has no other suspension point.
func (c Composer) Compose(ctx context.Context, opts Options) (*ComposeResult, error) {
	if opts.Schema == nil {
		return nil, &ConfigError{Message: "a schema validator is required"}
	}

	cwd := opts.Cwd
	if cwd == "" {
		cwd = c.Cwd
	}
	if cwd == "" {
		cwd = "."
	}

	composeID := uuid.NewString()
	logger := c.logger().With("compose_id", composeID)
	metrics := c.metrics()
	start := time.Now()
	defer func() { metrics.observeComposeDuration(time.Since(start).Seconds()) }()

	accessor, err := c.runCascade(ctx, cwd, opts.Env, logger, metrics)
	if err != nil {
		metrics.incComposeErrors()
		return nil, err
	}

	tree, err := c.loadAndMergeSources(cwd, opts, logger)
	if err != nil {
		metrics.incComposeErrors()
		return nil, err
	}

	resolved, err := (PlaceholderResolver{Accessor: accessor}).Resolve(tree)
	if err != nil {
		metrics.incComposeErrors()
		return nil, &ConfigError{Message: "placeholder resolution failed for compose " + composeID, Err: err}
	}
	logger.Debug("placeholders resolved", "stage", "resolve")

	result, err := opts.Schema.SafeParse(resolved)
	if err != nil {
		metrics.incComposeErrors()
		return nil, &ConfigError{Message: "schema validation errored for compose " + composeID, Err: err}
	}
	if !result.OK {
		metrics.incComposeErrors()
		metrics.incValidationFailures()
		return nil, &ValidationError{Issues: result.Issues}
	}

	logger.Debug("configuration composed", "stage", "validate")
	return &ComposeResult{Config: result.Data, Env: accessor}, nil
}

func (c Composer) runCascade(ctx context.Context, cwd string, opts EnvOptions, logger *clog.Logger, metrics *Metrics) (*env.Accessor, error) {
	penv := c.processEnv()
	accessor := env.New(penv)
	accessor.Register(opts.KnownKeys...)

	if !boolOr(opts.Enabled, true) {
		return accessor, nil
	}

	opts = opts.withDefaults()
	base := opts.Path
	if !filepath.IsAbs(base) {
		base = filepath.Join(cwd, base)
	}
	if opts.Environment != "" {
		_ = penv.Setenv(opts.EnvKey, opts.Environment)
	}

	cascade := &dotenv.Cascade{
		ProcessEnv: penv,
		Lexer:      &dotenv.Lexer{ProcessEnv: penv, Context: ctx},
		OnFileLoaded: func(path string) {
			metrics.incCascadeFilesLoaded()
			logger.Debug("cascade file loaded", "stage", "cascade", "path", path)
		},
	}
	cascadeOpts := dotenv.CascadeOptions{
		EnvKey:     opts.EnvKey,
		DefaultEnv: opts.DefaultEnv,
		TestEnvs:   opts.TestEnvs,
		ProdEnvs:   opts.ProdEnvs,
		DebugKey:   opts.DebugKey,
		Override:   opts.OverrideExisting,
	}

	if ctx != nil {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
	}

	if err := cascade.LoadEnv(base, cascadeOpts); err != nil {
		if _, ok := err.(*dotenv.PathError); ok && boolOr(opts.Optional, true) {
			logger.Debug("cascade base file absent, continuing", "stage", "cascade", "path", base)
			return accessor, nil
		}
		return nil, err
	}

	for _, name := range dotenv.LoadedVars(penv) {
		accessor.Register(name)
	}
	accessor.Register(opts.EnvKey)
	return accessor, nil
}

func (c Composer) loadAndMergeSources(cwd string, opts Options, logger *clog.Logger) (any, error) {
	acc := map[string]any{}
	if opts.Defaults != nil {
		acc = Clone(opts.Defaults).(map[string]any)
	}

	loader := SourceLoader{Cwd: cwd}
	merger := Merger{}

	for i, src := range opts.Sources {
		tree, err := loader.Load(src)
		if err != nil {
			return nil, err
		}
		if tree == nil {
			logger.Debug("source contributed nothing", "stage", "load", "index", i)
			continue
		}
		merged, err := merger.Merge(acc, tree)
		if err != nil {
			return nil, err
		}
		acc = merged.(map[string]any)
		logger.Debug("source merged", "stage", "load", "index", i)
	}
	return acc, nil
}
