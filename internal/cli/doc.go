// Package cli defines the Cobra command tree for oskctl. Each file in this
// package registers one command (toggle, show, hide, check, status, version)
// with the root command; running the root bare toggles the keyboard. Command
// implementations delegate to the keyboard controller and only handle flag
// parsing and I/O formatting.
package cli
