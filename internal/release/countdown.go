package release

import (
	"fmt"
	"time"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Parts is a millisecond duration decomposed into calendar-free display
// components. All components are non-negative; days can exceed two digits.
type Parts struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// SplitMs decomposes a non-negative millisecond count by truncating integer
// division with remainder chaining. Callers must reject negative input first;
// the temporal model already distinguishes "no deadline" from zero/negative.
func SplitMs(ms int64) Parts {
	days := ms / msPerDay
	ms -= days * msPerDay
	hours := ms / msPerHour
	ms -= hours * msPerHour
	minutes := ms / msPerMinute
	ms -= minutes * msPerMinute
	seconds := ms / msPerSecond
	return Parts{
		Days:    int(days),
		Hours:   int(hours),
		Minutes: int(minutes),
		Seconds: int(seconds),
	}
}

// Split decomposes a duration, see SplitMs.
func Split(d time.Duration) Parts {
	return SplitMs(d.Milliseconds())
}

// Pad2 zero-pads a component to width 2. Day counts are never padded.
func Pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}

// String renders the parts as "Nd HH:MM:SS".
func (p Parts) String() string {
	return fmt.Sprintf("%dd %s:%s:%s", p.Days, Pad2(p.Hours), Pad2(p.Minutes), Pad2(p.Seconds))
}
