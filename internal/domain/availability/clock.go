// Package availability holds the pure time-window logic for store
// opening hours and product visibility windows.
package availability

import (
	"time"

	"mazza/internal/domain/entity"
)

// MinutesPerDay is the number of minutes in a day; minute-of-day values are
// always in [0, MinutesPerDay).
const MinutesPerDay = 24 * 60

// IsOpen reports whether nowMinute falls within the inclusive opening-hours
// window. When opens > closes the window wraps past midnight, e.g. a
// 22:00-06:00 store is open at 23:00 and at 05:00 but closed at noon.
// All arguments are minutes since midnight.
func IsOpen(opensAtMinute, closesAtMinute, nowMinute int) bool {
	if opensAtMinute <= closesAtMinute {
		return nowMinute >= opensAtMinute && nowMinute <= closesAtMinute
	}

	return nowMinute >= opensAtMinute || nowMinute <= closesAtMinute
}

// ProductVisible reports whether the listing is purchasable at the given
// moment: it must be active, before its availability deadline, and past its
// optional start time.
func ProductVisible(p *entity.Product, now time.Time) bool {
	if p == nil || !p.IsActive {
		return false
	}
	if !now.Before(p.AvailableUntil) {
		return false
	}
	if p.AvailableFrom != nil && now.Before(*p.AvailableFrom) {
		return false
	}

	return true
}

// Clock derives "now" for availability checks from wall-clock UTC shifted by
// a fixed configured offset. The source system hard-coded UTC+5; here the
// offset is injected so deployments in other regions stay correct.
type Clock struct {
	offset time.Duration
	nowFn  func() time.Time
}

// NewClock builds a Clock with the given offset in minutes from UTC.
func NewClock(utcOffsetMinutes int) *Clock {
	return &Clock{
		offset: time.Duration(utcOffsetMinutes) * time.Minute,
		nowFn:  time.Now,
	}
}

// NewClockAt builds a Clock with a fixed now function. Tests use this to pin
// the wall clock.
func NewClockAt(utcOffsetMinutes int, nowFn func() time.Time) *Clock {
	clock := NewClock(utcOffsetMinutes)
	clock.nowFn = nowFn

	return clock
}

// Now returns the current local engine time (UTC + configured offset).
func (c *Clock) Now() time.Time {
	return c.nowFn().UTC().Add(c.offset)
}

// NowMinute returns the current minute-of-day in [0, 1439].
func (c *Clock) NowMinute() int {
	now := c.Now()

	return now.Hour()*60 + now.Minute()
}

// StoreOpen reports whether the store is open right now.
func (c *Clock) StoreOpen(store *entity.Store) bool {
	return IsOpen(store.OpensAtMinute, store.ClosesAtMinute, c.NowMinute())
}
