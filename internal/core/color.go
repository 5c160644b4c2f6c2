package core

// Color is a hex foreground color (#rrggbb) for a screen cell.
// Empty means the terminal default.
type Color string

// Palette used by the game and its renderers.
const (
	ColorDefault    Color = ""
	ColorNeonPink   Color = "#ff00de"
	ColorNeonCyan   Color = "#00ffff"
	ColorNeonGreen  Color = "#00ff00"
	ColorNeonYellow Color = "#ffff00"
	ColorSpikeRed   Color = "#ef4444"
	ColorBossRed    Color = "#f87171"
	ColorBossEye    Color = "#ff0000"
	ColorSteel      Color = "#94a3b8"
	ColorSlate      Color = "#334155"
	ColorWhite      Color = "#ffffff"
	ColorGray       Color = "#6b7280"
	ColorDarkBG     Color = "#111827"
)

// RGB decodes the color into 8-bit channels. Malformed or empty colors decode
// to white so that renderers always have something to draw with.
func (c Color) RGB() (r, g, b uint8) {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return 0xff, 0xff, 0xff
	}
	var out [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(s[1+2*i])
		lo, ok2 := hexNibble(s[2+2*i])
		if !ok1 || !ok2 {
			return 0xff, 0xff, 0xff
		}
		out[i] = hi<<4 | lo
	}
	return out[0], out[1], out[2]
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
