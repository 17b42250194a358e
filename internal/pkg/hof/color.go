package hof

import "fmt"

// Channel bounds
const (
	ChannelMin = 0
	ChannelMax = 255
)

// Color is an RGB triple whose channels stay within [ChannelMin, ChannelMax].
type Color struct {
	r, g, b int
}

// NewColor creates a color. Out of range channels are clamped.
func NewColor(r, g, b int) *Color {
	return &Color{r: clampChannel(r), g: clampChannel(g), b: clampChannel(b)}
}

// IncrRed adds amount to the red channel and returns the new value
func (c *Color) IncrRed(amount int) int {
	c.r = addChannel(c.r, amount)
	return c.r
}

// IncrGreen adds amount to the green channel and returns the new value
func (c *Color) IncrGreen(amount int) int {
	c.g = addChannel(c.g, amount)
	return c.g
}

// IncrBlue adds amount to the blue channel and returns the new value
func (c *Color) IncrBlue(amount int) int {
	c.b = addChannel(c.b, amount)
	return c.b
}

// Red returns the red channel
func (c *Color) Red() int { return c.r }

// Green returns the green channel
func (c *Color) Green() int { return c.g }

// Blue returns the blue channel
func (c *Color) Blue() int { return c.b }

// Hex formats the color as #rrggbb
func (c *Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

func clampChannel(v int) int {
	return min(max(v, ChannelMin), ChannelMax)
}

// addChannel saturates instead of overflowing; v is already in range.
func addChannel(v, amount int) int {
	switch {
	case amount > ChannelMax-v:
		return ChannelMax
	case amount < ChannelMin-v:
		return ChannelMin
	}
	return v + amount
}
