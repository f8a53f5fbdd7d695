// Package release interprets a game's release record relative to a reference
// instant: time remaining, a sortable value and a human label. All functions
// are pure and operate in UTC.
package release

import (
	"fmt"
	"math"
	"time"

	"github.com/dmatos/gamewatch/internal/models"
)

// NoDateSortValue is the sort key for releases with no literal instant.
// Absence of a date is always "furthest from now": it sorts last ascending
// ("soonest") and first descending ("latest").
const NoDateSortValue int64 = math.MaxInt64

// TargetInstant returns the absolute UTC instant a release points at, given
// now. For recurring releases this is the next occurrence at or after now.
// ok is false for variants with no literal deadline.
func TargetInstant(r models.Release, now time.Time) (time.Time, bool) {
	now = now.UTC()
	switch v := r.(type) {
	case models.AnnouncedDate:
		return dateInstant(v.DateISO)
	case models.Released:
		return dateInstant(v.DateISO)
	case models.RecurringDaily:
		hour, minute, err := models.ParseTimeOfDay(v.TimeUTC)
		if err != nil {
			return time.Time{}, false
		}
		return nextDaily(now, hour, minute), true
	case models.RecurringWeekly:
		if v.DayOfWeekUTC < 0 || v.DayOfWeekUTC > 6 {
			return time.Time{}, false
		}
		hour, minute, err := models.ParseTimeOfDay(v.TimeUTC)
		if err != nil {
			return time.Time{}, false
		}
		return nextWeekly(now, v.DayOfWeekUTC, hour, minute), true
	default:
		return time.Time{}, false
	}
}

// TimeRemaining returns the duration from now until the release target.
// ok is false when the release carries no literal deadline (tba, window,
// cancelled, delayed); callers render status text instead of a clock.
// Zero and negative durations are valid results: zero means "occurring right
// now" and negative means the date is in the past. Recurring releases always
// yield a non-negative duration.
func TimeRemaining(r models.Release, now time.Time) (time.Duration, bool) {
	target, ok := TargetInstant(r, now)
	if !ok {
		return 0, false
	}
	return target.Sub(now.UTC()), true
}

// SortValue derives a single comparable number from a release record and a
// reference time. Date-bearing variants use the absolute epoch millisecond of
// the target; recurring variants use the next-occurrence instant so they
// interleave correctly with one-off dates; dateless variants get
// NoDateSortValue.
func SortValue(g models.Game, now time.Time) int64 {
	target, ok := TargetInstant(g.Release, now)
	if !ok {
		return NoDateSortValue
	}
	return target.UnixMilli()
}

// HasCountdown reports whether the release should render a ticking clock.
// Only announced dates and recurring resets count down; released items show
// "Released" and the rest show status text.
func HasCountdown(r models.Release) bool {
	switch r.(type) {
	case models.AnnouncedDate, models.RecurringDaily, models.RecurringWeekly:
		return true
	default:
		return false
	}
}

// Label returns the human status text for a release.
func Label(r models.Release) string {
	switch v := r.(type) {
	case models.TBA:
		return "TBA"
	case models.AnnouncedDate:
		return "Releases " + v.DateISO
	case models.AnnouncedWindow:
		return "Expected " + WindowLabel(v.Window)
	case models.RecurringDaily:
		return "Resets daily at " + v.TimeUTC + " UTC"
	case models.RecurringWeekly:
		day := time.Weekday(v.DayOfWeekUTC).String()
		return fmt.Sprintf("Resets every %s at %s UTC", day, v.TimeUTC)
	case models.Released:
		return "Released " + v.DateISO
	case models.Cancelled:
		return "Cancelled"
	case models.Delayed:
		if v.Previous != nil && v.Previous.WindowLabel != "" {
			return "Delayed from " + v.Previous.WindowLabel
		}
		if v.Previous != nil && v.Previous.DateISO != "" {
			return "Delayed from " + v.Previous.DateISO
		}
		return "Delayed"
	default:
		return "Unknown"
	}
}

// WindowLabel renders an announced window, preferring the authored label.
func WindowLabel(w models.ReleaseWindow) string {
	if w.Label != "" {
		return w.Label
	}
	switch {
	case w.Month > 0 && w.Year > 0:
		return fmt.Sprintf("%s %d", time.Month(w.Month).String(), w.Year)
	case w.Quarter > 0 && w.Year > 0:
		return fmt.Sprintf("Q%d %d", w.Quarter, w.Year)
	case w.Year > 0:
		return fmt.Sprintf("%d", w.Year)
	default:
		return "TBA"
	}
}

func dateInstant(iso string) (time.Time, bool) {
	t, err := models.ParseDate(iso)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// nextDaily finds the next occurrence of hour:minute UTC at or after now,
// wrapping to the next UTC day once today's time has passed.
func nextDaily(now time.Time, hour, minute int) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
	if target.Before(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}

// nextWeekly finds the next occurrence of the weekday at hour:minute UTC,
// wrapping across the week boundary (7-day modulus).
func nextWeekly(now time.Time, dayOfWeek, hour, minute int) time.Time {
	days := (dayOfWeek - int(now.Weekday()) + 7) % 7
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC).AddDate(0, 0, days)
	if target.Before(now) {
		target = target.AddDate(0, 0, 7)
	}
	return target
}
