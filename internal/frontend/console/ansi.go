// Package console renders combat events and reads player choices on a
// terminal. It is a thin adapter over the engine: all combat rules live in
// the session, character, and ability packages.
package console

import (
	"fmt"
	"strings"
)

// ANSI escape code constants for terminal styling.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	Magenta = "\033[35m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightCyan   = "\033[96m"
	BrightWhite  = "\033[97m"
)

// Colorize wraps text with the given ANSI color code and a reset suffix.
//
// Precondition: color must be a valid ANSI escape sequence.
// Postcondition: Returns text wrapped with the color code and Reset.
func Colorize(color, text string) string {
	return color + text + Reset
}

// Colorf wraps a formatted string with the given ANSI color code.
func Colorf(color, format string, args ...interface{}) string {
	return color + fmt.Sprintf(format, args...) + Reset
}

// StripANSI removes all ANSI escape sequences from a string.
// This is useful for measuring the printable width of styled text.
//
// Postcondition: Returns text with all \033[...m sequences removed.
func StripANSI(s string) string {
	result := make([]byte, 0, len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			if j < len(s) {
				i = j + 1
				continue
			}
		}
		result = append(result, s[i])
		i++
	}
	return string(result)
}

// HealthBar renders current/max health as a fixed-width bar, e.g.
// "[########------] 48/60". Width is the number of bar cells.
//
// Precondition: max >= 1; width >= 1; 0 <= current <= max.
// Postcondition: The filled cell count is proportional to current/max, and a
// living character always shows at least one filled cell.
func HealthBar(current, max, width int) string {
	filled := current * width / max
	if filled == 0 && current > 0 {
		filled = 1
	}
	return fmt.Sprintf("[%s%s] %d/%d",
		strings.Repeat("#", filled),
		strings.Repeat("-", width-filled),
		current, max,
	)
}

// healthColor picks a bar color by remaining health fraction.
func healthColor(current, max int) string {
	switch {
	case current*2 >= max:
		return Green
	case current*4 >= max:
		return Yellow
	default:
		return BrightRed
	}
}
