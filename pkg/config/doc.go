/*
Package config composes a validated configuration value from layered
sources: inline defaults, structured files (JSON/YAML/INI), and
environment-variable placeholders.

Composer is the orchestrator: it runs the dotenv cascade (pkg/dotenv),
loads and deep-merges sources (SourceLoader, Merger), resolves
"%env(...)%" placeholders against the resulting tree (PlaceholderResolver),
and hands the result to a caller-supplied schema validator. All
configuration access through the generic singleton helpers in
singleton.go is safe for concurrent use; Composer.Compose itself is not —
concurrent calls that touch the process environment must be serialised by
the caller.
*/
package config
