package config

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
	"time"
)

// PopFirst splits a comma separated list into its first element and the rest
func PopFirst(s string) (first, rest string) {
	first, rest, _ = strings.Cut(s, ",")
	return strings.TrimSpace(first), strings.TrimSpace(rest)
}

// HasDurationUnit reports whether a duration literal carries a unit suffix
func HasDurationUnit(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	last := s[len(s)-1]
	return last < '0' || last > '9'
}

// ParseDuration converts a duration literal ("500ms", "2s", "1.5s") to ticks
// at the given frame rate. A bare number is read as milliseconds. Positive
// durations are at least one tick long.
func ParseDuration(s string, fps int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty duration", ErrInvalidValue)
	}

	var d time.Duration
	if HasDurationUnit(s) {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("%w: duration %q", ErrInvalidValue, s)
		}
		d = parsed
	} else {
		ms, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: duration %q", ErrInvalidValue, s)
		}
		d = time.Duration(ms * float64(time.Millisecond))
	}

	if d <= 0 {
		return 0, nil
	}
	ticks := int(math.Round(d.Seconds() * float64(fps)))
	if ticks < 1 {
		ticks = 1
	}
	return ticks, nil
}

// ParseColor reads "r,g,b" or "r,g,b,a". Alpha defaults to 255 and every
// component is clamped to 0..255.
func ParseColor(s string) (color.RGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 3 || len(parts) > 4 {
		return color.RGBA{}, fmt.Errorf("%w: color %q", ErrInvalidValue, s)
	}

	c := [4]uint8{0, 0, 0, 255}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: color %q", ErrInvalidValue, s)
		}
		c[i] = uint8(min(max(v, 0), 255))
	}
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
}

// ParseFloat reads a float, ignoring surrounding whitespace
func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: number %q", ErrInvalidValue, s)
	}
	return v, nil
}

// ParseInt reads an integer, ignoring surrounding whitespace
func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: integer %q", ErrInvalidValue, s)
	}
	return v, nil
}

// ParseBool accepts true/false, yes/no and 1/0
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1":
		return true
	default:
		return false
	}
}
