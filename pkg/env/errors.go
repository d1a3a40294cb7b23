package env

import "fmt"

// MissingEnvError reports that a required environment variable was neither
// set in the process environment nor given a default.
type MissingEnvError struct {
	Name string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("env: required variable %q is not set", e.Name)
}
