package hof

// Counter returns a value one higher than the previous one on every Next.
type Counter struct {
	n int
}

// NewCounter creates a counter that starts at start. Next wraps around
// like any int once it passes math.MaxInt.
func NewCounter(start int) *Counter {
	return &Counter{n: start}
}

// Next increments the counter and returns the new value
func (c *Counter) Next() int {
	c.n++
	return c.n
}

// Value returns the current value without incrementing
func (c *Counter) Value() int {
	return c.n
}
