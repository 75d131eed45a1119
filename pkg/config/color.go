package config

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses "#rrggbb", "#rgb", "rgb(r,g,b)" and "rgba(r,g,b,a)"
// where a is in [0,1].
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		return parseFunctional(s)
	}
	return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
}

// MustColor is like ParseColor but panics on error. It is meant for
// package-level constants.
func MustColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as "#rrggbb", dropping alpha.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func parseFunctional(s string) (color.NRGBA, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") || open < 0 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	alpha := strings.HasPrefix(s, "rgba(")
	if (alpha && len(parts) != 4) || (!alpha && len(parts) != 3) {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: wrong component count", s)
	}

	var ch [3]uint8
	for i := range 3 {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: channel %d", s, i)
		}
		ch[i] = uint8(v)
	}

	a := uint8(255)
	if alpha {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || f < 0 || f > 1 {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: alpha", s)
		}
		a = uint8(math.Round(f * 255))
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: a}, nil
}
