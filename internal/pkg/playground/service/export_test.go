package playgroundService

import "time"

// SetClock replaces the service clock
func (s *DefaultPlaygroundService) SetClock(now func() time.Time) {
	s.now = now
}
