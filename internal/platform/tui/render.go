package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-abyss/internal/core"
)

type styleKey struct {
	fg, bg core.Color
}

// styleCache maps (foreground, background) pairs to lipgloss styles.
// SSH sessions render concurrently, hence the lock.
var styleCache = struct {
	sync.RWMutex
	styles map[styleKey]lipgloss.Style
}{styles: make(map[styleKey]lipgloss.Style)}

func styleFor(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg, bg}

	styleCache.RLock()
	st, ok := styleCache.styles[k]
	styleCache.RUnlock()
	if ok {
		return st
	}

	st = lipgloss.NewStyle()
	if fg != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(fg))
	}
	if bg != core.ColorDefault {
		st = st.Background(lipgloss.Color(bg))
	}

	styleCache.Lock()
	styleCache.styles[k] = st
	styleCache.Unlock()
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display,
// painting every cell over bg (ColorDefault keeps the terminal's own).
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, bg core.Color) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor, bg).Render(run.String()))
		}
	}
	return sb.String()
}
