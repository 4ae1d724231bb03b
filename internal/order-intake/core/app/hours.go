package app

import (
	"fmt"
	"time"
)

const (
	openHour  = 8  // inclusive
	closeHour = 20 // exclusive
)

// BusinessHours decides whether order intake is currently open. The shop
// runs Mon-Sat 8am-8pm in US Eastern time; the server clock is
// authoritative, never anything the client sends.
type BusinessHours struct {
	loc *time.Location
	now func() time.Time
}

// NewBusinessHours loads the reference timezone once. now may be nil, in
// which case the wall clock is used; tests inject a fixed clock.
func NewBusinessHours(now func() time.Time) (*BusinessHours, error) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return nil, fmt.Errorf("load business timezone: %w", err)
	}
	if now == nil {
		now = time.Now
	}
	return &BusinessHours{loc: loc, now: now}, nil
}

// Check evaluates the window fresh against the current time. Closed all
// day Sunday, and outside 08:00-20:00 on other days.
func (b *BusinessHours) Check() error {
	t := b.now().In(b.loc)
	if t.Weekday() == time.Sunday {
		return &BusinessHoursError{}
	}
	if h := t.Hour(); h < openHour || h >= closeHour {
		return &BusinessHoursError{}
	}
	return nil
}
