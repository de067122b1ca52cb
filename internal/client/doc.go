// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the publishing services, and the local preview
// server into a single process lifecycle.
package client
