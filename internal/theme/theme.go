// Package theme carries the light/dark presentation setting as an explicit
// value. It is set once at startup and replaced wholesale on toggle.
package theme

import (
	"strings"
	"sync/atomic"
)

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

const Reset = "\033[0m"

// Palette holds ANSI escape sequences; an empty field renders uncoloured.
type Palette struct {
	Text    string
	Muted   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

type Theme struct {
	Mode    Mode
	Palette Palette
}

var (
	lightPalette = Palette{
		Text:    "\033[30m",
		Muted:   "\033[90m",
		Accent:  "\033[34m",
		Success: "\033[32m",
		Warning: "\033[33m",
		Danger:  "\033[31m",
	}
	darkPalette = Palette{
		Text:    "\033[97m",
		Muted:   "\033[37m",
		Accent:  "\033[96m",
		Success: "\033[92m",
		Warning: "\033[93m",
		Danger:  "\033[91m",
	}
)

// ParseMode maps a config value to a Mode, defaulting to Light.
func ParseMode(s string) Mode {
	if Mode(strings.ToLower(strings.TrimSpace(s))) == Dark {
		return Dark
	}
	return Light
}

func ForMode(m Mode) Theme {
	if m == Dark {
		return Theme{Mode: Dark, Palette: darkPalette}
	}
	return Theme{Mode: Light, Palette: lightPalette}
}

// Plain is a theme without colours, for pipes and tests.
func Plain() Theme {
	return Theme{Mode: Light}
}

// Paint wraps s in the given colour.
func (t Theme) Paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + Reset
}

// Holder publishes the current theme to concurrent readers.
type Holder struct {
	current atomic.Pointer[Theme]
}

func NewHolder(t Theme) *Holder {
	h := &Holder{}
	h.Set(t)
	return h
}

func (h *Holder) Current() Theme {
	if t := h.current.Load(); t != nil {
		return *t
	}
	return ForMode(Light)
}

func (h *Holder) Set(t Theme) {
	h.current.Store(&t)
}

// Toggle swaps light and dark and returns the new theme.
func (h *Holder) Toggle() Theme {
	for {
		old := h.current.Load()
		cur := ForMode(Light)
		if old != nil {
			cur = *old
		}
		next := ForMode(Dark)
		if cur.Mode == Dark {
			next = ForMode(Light)
		}
		if h.current.CompareAndSwap(old, &next) {
			return next
		}
	}
}
