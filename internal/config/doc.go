// Package config loads the keyboard settings from the shell-style KEY=value
// file at ~/.config/oskctl/keyboard.conf. The recognized keys are LAYERS,
// LANDSCAPE_LAYERS, and HEIGHT; a missing file means the built-in defaults
// apply unchanged, and a present file may override any subset of them.
package config
