// Package command turns gamepad events and digit keys into the short chat
// commands the relay posts, and parses them back for telemetry.
package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/padchat/gamepad"
)

// LongPrefix marks a command whose input was held past the long threshold.
const LongPrefix = "+"

// MaxDigit is the highest digit key command ("12").
const MaxDigit = 12

// Section groups commands for telemetry.
type Section int

const (
	SectionGamepad Section = iota
	SectionJoystick
	SectionKeyboard
)

func (s Section) String() string {
	switch s {
	case SectionGamepad:
		return "gamepad"
	case SectionJoystick:
		return "joystick"
	default:
		return "keyboard"
	}
}

// ForButton returns "A", or "+A" when the press lasted at least longPress ms.
func ForButton(ev gamepad.ButtonRelease, longPress float64) string {
	cmd := ev.Button.String()
	if ev.Duration >= longPress {
		cmd = LongPrefix + cmd
	}
	return cmd
}

// ForDirection returns "MLTR", or "+MLTR" when the stick was held at least
// longMove ms.
func ForDirection(ev gamepad.DirectionChange, longMove float64) string {
	cmd := "M" + ev.Side.Letter() + ev.Bucket.String()
	if ev.Duration >= longMove {
		cmd = LongPrefix + cmd
	}
	return cmd
}

// ForKey returns the command for digit key n (1 to MaxDigit).
func ForKey(n int) (string, error) {
	if n < 1 || n > MaxDigit {
		return "", fmt.Errorf("digit %d out of range 1-%d", n, MaxDigit)
	}
	return strconv.Itoa(n), nil
}

// ButtonLabel is the last-input label for a button release: "A".
func ButtonLabel(ev gamepad.ButtonRelease) string {
	return ev.Button.String()
}

// DirectionLabel is the last-input label for a stick event: "L (TR)".
func DirectionLabel(ev gamepad.DirectionChange) string {
	return fmt.Sprintf("%s (%s)", ev.Side.Letter(), ev.Bucket)
}

// Command is a parsed command string.
type Command struct {
	Section Section
	Long    bool

	Button gamepad.ButtonID  // SectionGamepad
	Side   gamepad.StickSide // SectionJoystick
	Bucket gamepad.Bucket    // SectionJoystick
	Digit  int               // SectionKeyboard
}

// Key is the telemetry counter key: the button, bucket or digit name.
func (c Command) Key() string {
	switch c.Section {
	case SectionGamepad:
		return c.Button.String()
	case SectionJoystick:
		return c.Bucket.String()
	default:
		return strconv.Itoa(c.Digit)
	}
}

// String rebuilds the canonical upper-case command.
func (c Command) String() string {
	var s string
	switch c.Section {
	case SectionGamepad:
		s = c.Button.String()
	case SectionJoystick:
		s = "M" + c.Side.Letter() + c.Bucket.String()
	default:
		s = strconv.Itoa(c.Digit)
	}
	if c.Long {
		s = LongPrefix + s
	}
	return s
}

// Parse reads a command produced by ForButton, ForDirection or ForKey,
// ignoring letter case.
func Parse(raw string) (Command, error) {
	var c Command
	s := strings.ToUpper(strings.TrimSpace(raw))
	if strings.HasPrefix(s, LongPrefix) {
		c.Long = true
		s = s[len(LongPrefix):]
	}
	if s == "" {
		return c, fmt.Errorf("empty command %q", raw)
	}

	if n, err := strconv.Atoi(s); err == nil {
		if c.Long || n < 1 || n > MaxDigit {
			return c, fmt.Errorf("invalid digit command %q", raw)
		}
		c.Section = SectionKeyboard
		c.Digit = n
		return c, nil
	}

	if id, ok := gamepad.ParseButton(s); ok {
		c.Section = SectionGamepad
		c.Button = id
		return c, nil
	}

	if len(s) >= 3 && s[0] == 'M' {
		var side gamepad.StickSide
		switch s[1] {
		case 'L':
			side = gamepad.StickLeft
		case 'R':
			side = gamepad.StickRight
		default:
			return c, fmt.Errorf("unknown stick in command %q", raw)
		}
		b, ok := gamepad.ParseBucket(s[2:])
		if !ok {
			return c, fmt.Errorf("unknown direction in command %q", raw)
		}
		c.Section = SectionJoystick
		c.Side = side
		c.Bucket = b
		return c, nil
	}

	return c, fmt.Errorf("unknown command %q", raw)
}
