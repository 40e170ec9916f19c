// Package commands defines the xmrkeys CLI and wires dependencies for subcommands.
//
// # Commands
//
//   - point add | mult-base | mult    ed25519 point arithmetic on hex buffers
//   - scalar reduce | add             scalar arithmetic modulo L
//   - subaddress                      derive a subaddress from a primary address
//   - address encode | decode         build or inspect Monero addresses
//   - spend-key                       print the public spend key of an address
//   - amount decode | verify          decrypt an output amount with the view key
//
// # Configuration
//
// Flags may also be set through XMRKEYS_* environment variables (for example
// XMRKEYS_VIEW_KEY or XMRKEYS_NETWORK) or a config file given with --config.
// Flags win over the environment, which wins over the file.
//
// # Implementation
//
// The root command binds flags into viper and builds the app (logger and
// services) before any subcommand runs. Results go to stdout; logs go to
// stderr.
package commands
