package services

import (
	"github.com/jonboulle/clockwork"
	"github.com/ncruces/go-strftime"
	"github.com/xvierd/termclock/internal/domain"
)

// ClockService holds the most recent clock reading and its formatted date.
type ClockService struct {
	clock      clockwork.Clock
	dateFormat string
	time       domain.Time
	date       string
}

// NewClockService creates a clock service reading from clock. A nil clock
// uses the system clock.
func NewClockService(clock clockwork.Clock, dateFormat string) *ClockService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if dateFormat == "" {
		dateFormat = domain.DefaultDateFormat
	}
	return &ClockService{
		clock:      clock,
		dateFormat: dateFormat,
	}
}

// Update samples the clock and refreshes the time and date.
func (s *ClockService) Update() {
	now := s.clock.Now()
	s.time = domain.TimeOf(now)
	s.date = strftime.Format(s.dateFormat, now)
}

// Time returns the time captured by the last Update.
func (s *ClockService) Time() domain.Time {
	return s.time
}

// Date returns the date captured by the last Update.
func (s *ClockService) Date() string {
	return s.date
}

// DateFormat returns the strftime layout in use.
func (s *ClockService) DateFormat() string {
	return s.dateFormat
}
