package hof

// Lives tracks the number of lives remaining in a game.
type Lives struct {
	start   int
	current int
}

// NewLives creates a tracker with start lives. A negative start is
// treated as zero.
func NewLives(start int) *Lives {
	start = max(start, 0)
	return &Lives{start: start, current: start}
}

// Left returns the remaining lives
func (l *Lives) Left() int {
	return l.current
}

// Died takes one life away and returns the remaining count. The count
// never drops below zero.
func (l *Lives) Died() int {
	if l.current > 0 {
		l.current--
	}
	return l.current
}

// Restart resets the count to the starting value and returns it
func (l *Lives) Restart() int {
	l.current = l.start
	return l.current
}
