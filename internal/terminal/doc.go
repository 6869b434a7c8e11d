// Package terminal is a command-line host for the script engine.
//
// The document is a file or the system clipboard, selections come from
// command-line flags, prompts are read with readline and messages are
// printed to stderr.
package terminal
