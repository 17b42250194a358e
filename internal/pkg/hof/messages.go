package hof

import "strconv"

// Messages prefixes each recorded message with its 1-based id.
type Messages struct {
	count int
}

// NewMessages creates an empty message log
func NewMessages() *Messages {
	return &Messages{}
}

// Record assigns the next id to text and returns "[id] text"
func (m *Messages) Record(text string) string {
	m.count++
	return "[" + strconv.Itoa(m.count) + "] " + text
}

// Count returns how many messages have been recorded
func (m *Messages) Count() int {
	return m.count
}
