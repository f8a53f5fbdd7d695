package models

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the ISO calendar date layout used throughout the document.
const DateLayout = "2006-01-02"

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ParseDate parses a "YYYY-MM-DD" calendar date as UTC midnight.
func ParseDate(iso string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, iso, time.UTC)
}

// ParseTimeOfDay parses a 24-hour "HH:MM" UTC time-of-day string.
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	if !timeOfDayRe.MatchString(s) {
		return 0, 0, fmt.Errorf("invalid time of day %q, want 24-hour HH:MM", s)
	}
	fmt.Sscanf(s, "%02d:%02d", &hour, &minute)
	return hour, minute, nil
}

// Validate checks the document against the data contract. Malformed release
// records are rejected here so downstream derivations never see them.
func (d *GamesDoc) Validate() error {
	if d.SchemaVersion == "" {
		return fmt.Errorf("document: schemaVersion is required")
	}
	if d.GeneratedAt == "" {
		return fmt.Errorf("document: generatedAt is required")
	}
	if _, err := time.Parse(time.RFC3339, d.GeneratedAt); err != nil {
		return fmt.Errorf("document: invalid generatedAt: %w", err)
	}
	if d.AsOf != "" {
		if _, err := time.Parse(time.RFC3339, d.AsOf); err != nil {
			return fmt.Errorf("document: invalid asOf: %w", err)
		}
	}

	seen := make(map[string]bool, len(d.Games))
	for i := range d.Games {
		g := &d.Games[i]
		if g.ID == "" {
			return fmt.Errorf("game[%d]: id is required", i)
		}
		if seen[g.ID] {
			return fmt.Errorf("game %q: duplicate id", g.ID)
		}
		seen[g.ID] = true

		if g.Name == "" {
			return fmt.Errorf("game %q: name is required", g.ID)
		}
		if err := validateRelease(g.Release); err != nil {
			return fmt.Errorf("game %q: %w", g.ID, err)
		}
	}
	return nil
}

func validateRelease(r Release) error {
	if r == nil {
		return fmt.Errorf("release is required")
	}

	base := r.Base()
	switch base.Confidence {
	case ConfidenceConfirmed, ConfidenceLikely, ConfidenceRumor, ConfidenceUnknown:
	default:
		return fmt.Errorf("release: unknown confidence %q", base.Confidence)
	}

	switch v := r.(type) {
	case TBA, Delayed:
		// No temporal payload to check.
	case AnnouncedWindow:
		if q := v.Window.Quarter; q < 0 || q > 4 {
			return fmt.Errorf("release %s: quarter %d out of range [1,4]", v.Status(), q)
		}
		if m := v.Window.Month; m < 0 || m > 12 {
			return fmt.Errorf("release %s: month %d out of range [1,12]", v.Status(), m)
		}
	case AnnouncedDate:
		if _, err := ParseDate(v.DateISO); err != nil {
			return fmt.Errorf("release %s: %w", v.Status(), err)
		}
		switch v.DatePrecision {
		case "", PrecisionDay, PrecisionMonth, PrecisionQuarter, PrecisionYear:
		default:
			return fmt.Errorf("release %s: unknown datePrecision %q", v.Status(), v.DatePrecision)
		}
	case RecurringDaily:
		if _, _, err := ParseTimeOfDay(v.TimeUTC); err != nil {
			return fmt.Errorf("release %s: %w", v.Status(), err)
		}
	case RecurringWeekly:
		if v.DayOfWeekUTC < 0 || v.DayOfWeekUTC > 6 {
			return fmt.Errorf("release %s: dayOfWeekUTC %d out of range [0,6]", v.Status(), v.DayOfWeekUTC)
		}
		if _, _, err := ParseTimeOfDay(v.TimeUTC); err != nil {
			return fmt.Errorf("release %s: %w", v.Status(), err)
		}
	case Released:
		// Released items must carry a literal date.
		if v.DateISO == "" {
			return fmt.Errorf("release %s: dateISO is required", v.Status())
		}
		if _, err := ParseDate(v.DateISO); err != nil {
			return fmt.Errorf("release %s: %w", v.Status(), err)
		}
		if v.ReleasedAt != "" {
			if _, err := time.Parse(time.RFC3339, v.ReleasedAt); err != nil {
				return fmt.Errorf("release %s: invalid releasedAt: %w", v.Status(), err)
			}
		}
	case Cancelled:
		if v.DateISO != "" {
			if _, err := ParseDate(v.DateISO); err != nil {
				return fmt.Errorf("release %s: %w", v.Status(), err)
			}
		}
	default:
		return fmt.Errorf("release: unknown variant %T", r)
	}
	return nil
}
