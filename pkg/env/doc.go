/*
Package env provides a typed, registered view over a process environment.

An Accessor tracks every variable name it has been asked to read, so a
caller can later enumerate or audit exactly which environment variables a
running process depends on. A read against an unset variable with no
default fails with a *MissingEnvError rather than silently returning an
empty string.
*/
package env
