// Package app contains the multi-file orchestrator. It takes an already
// validated Config, opens each configured file, runs the extent scan and the
// line or byte extraction, and writes content and diagnostics to the writers
// it was given. It is decoupled from any entrypoint such as the CLI.
package app
