// Package keyboard implements detection and process control for the
// supported on-screen keyboard programs. Detect probes PATH in a fixed
// priority order (wvkbd, squeekboard, onboard, svkbd); the Controller
// composes detection, running checks, and detached start/stop into the
// toggle, show, hide, check, and status operations exposed by the CLI.
package keyboard
