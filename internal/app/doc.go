// Package app wires application dependencies for the CLI.
//
// It validates Config, builds the logger and the subaddress and amount
// services, and exposes them via the Wire struct for commands to use.
package app
