package grid

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Glyphs selects the text used for each kind of cell in Format.
type Glyphs struct {
	Wall  string
	Floor string
	Path  string
}

// DefaultGlyphs returns the ASCII set used by String plus 'o' for path cells.
func DefaultGlyphs() Glyphs {
	return Glyphs{Wall: "#", Floor: ".", Path: "o"}
}

// Format renders g one line per row. When overlay has the same shape as g,
// its Floor cells are drawn with glyphs.Path. Glyphs of different display
// width (for example "墙" next to ".") are right-padded to the widest one so
// columns stay aligned in a terminal.
//
// Complexity: O(W×H).
func (g *Grid) Format(glyphs Glyphs, overlay *Grid) string {
	if overlay != nil && (overlay.width != g.width || overlay.height != g.height) {
		overlay = nil
	}
	cw := runewidth.StringWidth(glyphs.Wall)
	if w := runewidth.StringWidth(glyphs.Floor); w > cw {
		cw = w
	}
	if w := runewidth.StringWidth(glyphs.Path); w > cw {
		cw = w
	}
	wall := runewidth.FillRight(glyphs.Wall, cw)
	floor := runewidth.FillRight(glyphs.Floor, cw)
	path := runewidth.FillRight(glyphs.Path, cw)

	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i := y*g.width + x
			switch {
			case overlay != nil && overlay.cells[i] == Floor:
				b.WriteString(path)
			case g.cells[i] == Floor:
				b.WriteString(floor)
			default:
				b.WriteString(wall)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
