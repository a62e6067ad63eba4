package palette

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// HueStep is the hue rotation between consecutive palette members.
const HueStep = 0.05

// Color is an RGB triple with channels in [0,255].
type Color struct {
	R, G, B int
}

// String formats c as "(r, g, b)".
func (c Color) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex formats c as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) valid() bool {
	return inRange(c.R) && inRange(c.G) && inRange(c.B)
}

func inRange(v int) bool { return v >= 0 && v <= 255 }

// ParseColor accepts "r,g,b" (decimal) or "#rrggbb" / "rrggbb" (hex).
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return Color{}, fmt.Errorf("invalid color %q: want three comma-separated channels", s)
		}
		var ch [3]int
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
			}
			ch[i] = v
		}
		c := Color{R: ch[0], G: ch[1], B: ch[2]}
		if !c.valid() {
			return Color{}, fmt.Errorf("invalid color %q: channels must be in [0,255]", s)
		}
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want r,g,b or #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}, nil
}

// Palette is a set of colors.
type Palette struct {
	set map[Color]struct{}
}

// Len returns the number of distinct colors.
func (p Palette) Len() int { return len(p.set) }

// Contains reports whether c is in the palette.
func (p Palette) Contains(c Color) bool {
	_, ok := p.set[c]
	return ok
}

// Colors returns the members ordered by R, then G, then B.
func (p Palette) Colors() []Color {
	out := make([]Color, 0, len(p.set))
	for c := range p.set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.R != b.R {
			return a.R < b.R
		}
		if a.G != b.G {
			return a.G < b.G
		}
		return a.B < b.B
	})
	return out
}

// Last returns the final color of Colors. ok is false for an empty palette.
func (p Palette) Last() (c Color, ok bool) {
	colors := p.Colors()
	if len(colors) == 0 {
		return Color{}, false
	}
	return colors[len(colors)-1], true
}

// Generate rotates the hue of seed n times by HueStep and collects the
// resulting colors. Saturation and value stay fixed; each channel is rounded
// to the nearest integer. Colors that coincide after rounding collapse.
func Generate(seed Color, n int) Palette {
	p := Palette{set: make(map[Color]struct{})}
	h, s, v := rgbToHSV(float64(seed.R)/255.0, float64(seed.G)/255.0, float64(seed.B)/255.0)

	for i := 0; i < n; i++ {
		hue := floorMod(h+float64(i)*HueStep, 1.0)
		r, g, b := hsvToRGB(hue, s, v)
		p.set[Color{R: scale(r), G: scale(g), B: scale(b)}] = struct{}{}
	}
	return p
}

func scale(x float64) int {
	v := int(math.Round(x * 255))
	return min(max(v, 0), 255)
}
