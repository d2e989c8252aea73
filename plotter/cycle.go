package plotter

import (
	"errors"
	"image/color"
)

// ErrColorCycle is returned when a colour cycle cannot be shared between
// two axes.
var ErrColorCycle = errors.New("colour cycle sharing failed")

// ColorCycle hands out series colours in order, wrapping around.
// Axes that share a ColorCycle never repeat each other's colours until
// the cycle wraps.
type ColorCycle struct {
	colors []color.Color
	next   int
}

// NewColorCycle returns a cycle over colors.
func NewColorCycle(colors []color.Color) *ColorCycle {
	return &ColorCycle{colors: append([]color.Color(nil), colors...)}
}

// Next returns the current colour and advances the cycle.
func (c *ColorCycle) Next() color.Color {
	col := c.Peek()
	if len(c.colors) > 0 {
		c.next = (c.next + 1) % len(c.colors)
	}
	return col
}

// Peek returns the colour Next would return, without advancing.
func (c *ColorCycle) Peek() color.Color {
	if len(c.colors) == 0 {
		return color.Black
	}
	return c.colors[c.next]
}

// Index is the position of the next colour.
func (c *ColorCycle) Index() int { return c.next }

// Len is the number of colours in the cycle.
func (c *ColorCycle) Len() int { return len(c.colors) }
