// Package commands defines the pairchat CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - demo  Pair two in-process sessions and relay a scripted exchange
//   - code  Generate a pairing code and key fingerprint
//
// # Implementation
//
// The root command parses environment configuration, configures logging, and
// builds the shared room registry before any subcommand runs, so handlers
// operate on one process-wide dependency graph.
package commands
