/*
Package clog provides the structured logging backend shared by the
config composer and the confcore CLI.

Logger wraps log/slog with a fixed set of fields (level, format,
add-source) and writes synchronously — confcore's core is single-threaded
per its concurrency model, so there is no workload for an async log
buffer to smooth over. Redactor masks configuration secrets (passwords,
tokens, API keys) before a resolved value reaches a log line.
*/
package clog
