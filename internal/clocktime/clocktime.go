// Package clocktime implements 24-hour clock arithmetic and answer checks.
package clocktime

import "fmt"

const (
	// HoursPerDay is the number of hours on the clock face.
	HoursPerDay = 24
	// MinutesPerHour is the number of minutes in an hour.
	MinutesPerHour = 60
	// MinutesPerDay is the size of the wrapped minute range.
	MinutesPerDay = HoursPerDay * MinutesPerHour
)

// TimeOfDay is a wall-clock time without date or seconds.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Normalize maps any hour and minute into a valid TimeOfDay using a floored
// modulo, so -1 becomes 23 and 65 becomes 5.
func Normalize(hour, minute int) TimeOfDay {
	return TimeOfDay{
		Hour:   floorMod(hour, HoursPerDay),
		Minute: floorMod(minute, MinutesPerHour),
	}
}

// FromMinutes converts minutes since midnight into a TimeOfDay, wrapping
// values outside a single day.
func FromMinutes(total int) TimeOfDay {
	total = floorMod(total, MinutesPerDay)
	return TimeOfDay{Hour: total / MinutesPerHour, Minute: total % MinutesPerHour}
}

// Minutes returns the minutes since midnight of the normalized time.
func (t TimeOfDay) Minutes() int {
	n := Normalize(t.Hour, t.Minute)
	return n.Hour*MinutesPerHour + n.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Offset is an hours+minutes duration applied to a TimeOfDay.
type Offset struct {
	Hours   int
	Minutes int
}

// TotalMinutes returns the offset length with both fields normalized.
func (o Offset) TotalMinutes() int {
	return floorMod(o.Hours, HoursPerDay)*MinutesPerHour + floorMod(o.Minutes, MinutesPerHour)
}

func (o Offset) String() string {
	if o.Minutes == 0 {
		return fmt.Sprintf("%dh", o.Hours)
	}
	return fmt.Sprintf("%dh %02dm", o.Hours, o.Minutes)
}

// Wrap adds or subtracts offset from base and wraps the result onto the
// 24-hour clock.
func Wrap(base TimeOfDay, offset Offset, isAddition bool) TimeOfDay {
	delta := offset.TotalMinutes()
	if !isAddition {
		delta = -delta
	}
	return FromMinutes(base.Minutes() + delta)
}

// IsCorrect reports whether user matches expected on both hour and minute.
func IsCorrect(user, expected TimeOfDay) bool {
	return user.Hour == expected.Hour && user.Minute == expected.Minute
}

func floorMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
