// Package app wires application dependencies for the CLI.
//
// It builds the storage backend and keystore from Config, exposing them via
// the Wire struct for commands to use. Config values can be loaded from an
// optional YAML file and overridden by flags.
package app
