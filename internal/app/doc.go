// Package app wires application dependencies for the CLI.
//
// It parses environment configuration, sets up logging, and builds the
// shared room registry plus per-participant session services for commands to
// use.
package app
