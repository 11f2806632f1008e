// Package display renders the CHIP-8 framebuffer as text for terminal output.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/machine"
)

// cursorHome moves the terminal cursor to the top left corner, so that
// consecutive frames overwrite each other.
const cursorHome = "\x1b[H"

// half block characters indexed by upper pixel | lower pixel<<1.
var blocks = [4]string{" ", "▀", "▄", "█"}

// Console renders frames to a writer. Two framebuffer rows are combined into
// one text line using half block characters.
type Console struct {
	writer    io.Writer
	animate   bool
	builder   strings.Builder
	lineWidth int
}

// New returns a console renderer writing to w. If animate is set, every frame
// is prefixed with a cursor home escape sequence.
func New(w io.Writer, animate bool) *Console {
	return &Console{
		writer:    w,
		animate:   animate,
		lineWidth: machine.DisplayWidth,
	}
}

// Render writes the framebuffer as text.
func (c *Console) Render(fb *machine.Framebuffer) error {
	c.builder.Reset()
	if c.animate {
		c.builder.WriteString(cursorHome)
	}

	border := "+" + strings.Repeat("-", c.lineWidth) + "+\n"
	c.builder.WriteString(border)
	for y := 0; y < machine.DisplayHeight; y += 2 {
		c.builder.WriteByte('|')
		for x := range machine.DisplayWidth {
			upper := fb[x+y*machine.DisplayWidth]
			lower := fb[x+(y+1)*machine.DisplayWidth]
			c.builder.WriteString(blocks[upper|lower<<1])
		}
		c.builder.WriteString("|\n")
	}
	c.builder.WriteString(border)

	if _, err := io.WriteString(c.writer, c.builder.String()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
