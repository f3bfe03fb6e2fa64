package keyboard

import (
	"strconv"
	"strings"

	"github.com/oskctl/oskctl/internal/config"
)

// Kind identifies one of the supported on-screen keyboard programs. A Kind
// is re-detected fresh on every invocation; nothing is persisted.
type Kind int

const (
	// None means no supported keyboard program is installed.
	None Kind = iota
	Wvkbd
	Squeekboard
	Onboard
	Svkbd
)

// detectOrder is the fixed detection priority. First resolvable entry wins.
// The order encodes a preference ranking, not alphabetics — do not sort it.
var detectOrder = []Kind{Wvkbd, Squeekboard, Onboard, Svkbd}

// program describes how one keyboard kind is probed, launched, and matched
// in the process table.
type program struct {
	// probe is the executable name resolved on PATH during detection.
	probe string
	// binary is the executable launched. For svkbd it intentionally
	// differs from both probe and match.
	binary string
	// match is the exact process name used for running checks and teardown.
	match string
	// args builds the launch arguments; nil for kinds launched bare.
	args func(cfg config.Config) []string
}

var programs = map[Kind]program{
	Wvkbd: {
		probe:  "wvkbd-mobintl",
		binary: "wvkbd-mobintl",
		match:  "wvkbd-mobintl",
		args:   wvkbdArgs,
	},
	Squeekboard: {
		probe:  "squeekboard",
		binary: "squeekboard",
		match:  "squeekboard",
	},
	Onboard: {
		probe:  "onboard",
		binary: "onboard",
		match:  "onboard",
	},
	Svkbd: {
		probe:  "svkbd",
		binary: "svkbd-mobile-intl",
		match:  "svkbd",
	},
}

func wvkbdArgs(cfg config.Config) []string {
	return []string{
		"-H", strconv.Itoa(cfg.Height),
		"-l", strings.Join(cfg.Layers, ","),
		"--landscape-layers", strings.Join(cfg.LandscapeLayers, ","),
	}
}

// String returns the short human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case Wvkbd:
		return "wvkbd"
	case Squeekboard:
		return "squeekboard"
	case Onboard:
		return "onboard"
	case Svkbd:
		return "svkbd"
	default:
		return "none"
	}
}

// ProbeName returns the executable name resolved on PATH during detection,
// empty for None.
func (k Kind) ProbeName() string { return programs[k].probe }

// Binary returns the executable name launched for the kind, empty for None.
func (k Kind) Binary() string { return programs[k].binary }

// MatchName returns the exact process-table name for the kind, empty for
// None.
func (k Kind) MatchName() string { return programs[k].match }

// InstallCandidates lists the package names suggested to the user when no
// keyboard program is installed, in detection priority order.
func InstallCandidates() []string {
	names := make([]string, 0, len(detectOrder))
	for _, kind := range detectOrder {
		names = append(names, kind.String())
	}
	return names
}
