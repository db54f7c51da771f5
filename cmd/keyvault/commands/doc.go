// Package commands defines the keyvault CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - generate   Create a session key (random, from a seed, or a mnemonic)
//   - insert     Store operator-supplied key material
//   - list       Print stored public keys for a role
//   - sign       Sign a message with a stored key
//   - verify     Check a signature against a public key
//   - has        Check session-key availability
//   - remove     Delete a stored key
//
// # Implementation
//
// The root command loads the optional config file and builds the dependency
// graph (backend, keystore, logger) before any subcommand runs, so handlers
// share one app context. The file backend's directory lock is released when
// the command finishes.
package commands
