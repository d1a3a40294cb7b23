package config

// EnvOptions configures the dotenv cascade step of a Compose call. The
// zero value loads ".env" relative to the composer's working directory,
// tolerating a missing base file.
type EnvOptions struct {
	// Enabled gates the whole cascade step. Defaults to true.
	Enabled *bool

	// Path is the cascade base path. Defaults to ".env".
	Path string

	// EnvKey names the process-env variable holding the current
	// environment. Defaults to "APP_ENV".
	EnvKey string

	// DebugKey, if set, is passed through to dotenv.CascadeOptions so
	// BootEnv-style debug flagging can be composed in later.
	DebugKey string

	// DefaultEnv is assigned to EnvKey when unset. Defaults to "dev".
	DefaultEnv string

	// TestEnvs lists environments for which ".local" is skipped.
	// Defaults to ["test"].
	TestEnvs []string

	// ProdEnvs lists environments treated as production.
	ProdEnvs []string

	// OverrideExisting, when true, lets the cascade overwrite
	// process-env keys it does not already own.
	OverrideExisting bool

	// Optional, when true (the default), tolerates a missing cascade
	// base file instead of failing the whole Compose call.
	Optional *bool

	// Environment, if set, is force-assigned to EnvKey before the
	// cascade runs.
	Environment string

	// KnownKeys are pre-registered on the resulting Accessor even if
	// the cascade never touches them.
	KnownKeys []string
}

func (o EnvOptions) withDefaults() EnvOptions {
	if o.Path == "" {
		o.Path = ".env"
	}
	if o.EnvKey == "" {
		o.EnvKey = "APP_ENV"
	}
	if o.DefaultEnv == "" {
		o.DefaultEnv = "dev"
	}
	if o.TestEnvs == nil {
		o.TestEnvs = []string{"test"}
	}
	return o
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// Options configures a single Composer.Compose call.
type Options struct {
	// Cwd resolves relative source and cascade paths. Defaults to the
	// Composer's own Cwd, then ".".
	Cwd string

	Env EnvOptions

	// Sources are merged strictly left to right; later entries
	// override earlier ones.
	Sources []Source

	// Defaults seeds the merge accumulator before any Source is
	// loaded.
	Defaults map[string]any

	// Schema gates the final, placeholder-resolved tree. Required.
	Schema Validator
}
