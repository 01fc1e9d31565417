package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/zhubert/murmur/internal/keys"
)

// EmojiPicker is the composer's glyph grid. It is drawn over the bottom-left
// corner of the thread.
type EmojiPicker struct {
	glyphs   []string
	selected int
}

// NewEmojiPicker creates a picker over glyphs.
func NewEmojiPicker(glyphs []string) *EmojiPicker {
	return &EmojiPicker{glyphs: glyphs}
}

// Reset moves the cursor back to the first glyph.
func (p *EmojiPicker) Reset() {
	p.selected = 0
}

// Selected returns the highlighted glyph.
func (p *EmojiPicker) Selected() string {
	if len(p.glyphs) == 0 {
		return ""
	}
	return p.glyphs[p.selected]
}

// Update handles a key. It returns the chosen glyph on enter, and done is
// true when the picker should close (enter or esc).
func (p *EmojiPicker) Update(msg tea.KeyPressMsg) (glyph string, done bool) {
	n := len(p.glyphs)
	if n == 0 {
		return "", true
	}
	switch msg.String() {
	case keys.Left, "h":
		if p.selected > 0 {
			p.selected--
		}
	case keys.Right, "l":
		if p.selected < n-1 {
			p.selected++
		}
	case keys.Up, "k":
		if p.selected-EmojiColumns >= 0 {
			p.selected -= EmojiColumns
		}
	case keys.Down, "j":
		if p.selected+EmojiColumns < n {
			p.selected += EmojiColumns
		}
	case keys.Enter:
		return p.Selected(), true
	case keys.Escape, keys.CtrlE:
		return "", true
	}
	return "", false
}

// View renders the grid.
func (p *EmojiPicker) View() string {
	var rows []string
	for start := 0; start < len(p.glyphs); start += EmojiColumns {
		end := min(start+EmojiColumns, len(p.glyphs))
		var cells []string
		for i := start; i < end; i++ {
			style := EmojiCellStyle
			if i == p.selected {
				style = EmojiSelectedStyle
			}
			cells = append(cells, style.Render(p.glyphs[i]))
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	return EmojiPickerStyle.Render(strings.Join(rows, "\n"))
}

// Overlay draws the picker over base, anchored bottom-left with a margin of
// bottomOffset lines. base is expected to be width x height cells.
func (p *EmojiPicker) Overlay(base string, width, height, bottomOffset int) string {
	if width <= 0 || height <= 0 {
		return base
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(base).Draw(scr, area)

	grid := p.View()
	gw, gh := lipgloss.Width(grid), lipgloss.Height(grid)
	x := 1
	y := max(0, height-bottomOffset-gh)
	uv.NewStyledString(grid).Draw(scr, uv.Rect(x, y, min(gw, width-x), min(gh, height-y)))

	return scr.Render()
}
