// Command confcore composes, inspects, and validates layered application
// configuration built from a dotenv cascade and one or more JSON, YAML, or
// INI source files.
//
// Usage:
//
//	# Compose every configured source and print the resulting tree
//	confcore load --source config.yaml --source config.local.yaml
//
//	# Print the registered environment keys, secrets redacted
//	confcore env print --env-path .env
//
//	# Check a dotenv file for syntax errors without touching the process
//	confcore dotenv check .env.local
//
//	# Show version information
//	confcore version
//
// For complete documentation, see: https://github.com/devscast/confcore
package main

func main() {
	Execute()
}
