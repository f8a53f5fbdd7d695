package models

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Status identifies which release variant describes a game's launch.
type Status string

const (
	StatusTBA             Status = "tba"
	StatusAnnouncedDate   Status = "announced_date"
	StatusAnnouncedWindow Status = "announced_window"
	StatusRecurringDaily  Status = "recurring_daily"
	StatusRecurringWeekly Status = "recurring_weekly"
	StatusReleased        Status = "released"
	StatusCancelled       Status = "cancelled"
	StatusDelayed         Status = "delayed"
)

// Statuses lists every valid release status.
var Statuses = []Status{
	StatusTBA,
	StatusAnnouncedDate,
	StatusAnnouncedWindow,
	StatusRecurringDaily,
	StatusRecurringWeekly,
	StatusReleased,
	StatusCancelled,
	StatusDelayed,
}

// ValidStatus reports whether s is a known release status.
func ValidStatus(s Status) bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

type DatePrecision string

const (
	PrecisionDay     DatePrecision = "day"
	PrecisionMonth   DatePrecision = "month"
	PrecisionQuarter DatePrecision = "quarter"
	PrecisionYear    DatePrecision = "year"
)

type Confidence string

const (
	ConfidenceConfirmed Confidence = "confirmed"
	ConfidenceLikely    Confidence = "likely"
	ConfidenceRumor     Confidence = "rumor"
	ConfidenceUnknown   Confidence = "unknown"
)

// ReleaseBase carries the fields shared by every release variant.
type ReleaseBase struct {
	IsOfficial bool       `json:"isOfficial"`
	Confidence Confidence `json:"confidence"`
	UpdatedAt  string     `json:"updatedAt,omitempty"`
	Sources    []Source   `json:"sources,omitempty"`
	Region     Region     `json:"region,omitempty"`
	Platforms  []Platform `json:"platforms,omitempty"`
}

// Release is the tagged union of release states. Exactly one variant is
// active per game; each concrete type carries only its own fields.
type Release interface {
	Status() Status
	Base() ReleaseBase

	// sealed limits implementations to this package.
	sealed()
}

type TBA struct {
	ReleaseBase
}

type AnnouncedDate struct {
	ReleaseBase
	DateISO       string        `json:"dateISO"`
	DatePrecision DatePrecision `json:"datePrecision,omitempty"`
}

// ReleaseWindow describes a coarse announced window ("2026", "Q4 2026", ...).
type ReleaseWindow struct {
	Year    int    `json:"year,omitempty"`
	Quarter int    `json:"quarter,omitempty"`
	Month   int    `json:"month,omitempty"`
	Label   string `json:"label,omitempty"`
}

type AnnouncedWindow struct {
	ReleaseBase
	Window ReleaseWindow `json:"window"`
}

type RecurringDaily struct {
	ReleaseBase
	TimeUTC string `json:"timeUTC"` // "HH:MM", UTC
}

type RecurringWeekly struct {
	ReleaseBase
	DayOfWeekUTC int    `json:"dayOfWeekUTC"` // 0 (Sunday) - 6 (Saturday)
	TimeUTC      string `json:"timeUTC"`      // "HH:MM", UTC
}

// Released requires DateISO so "is this released" filtering stays deterministic.
type Released struct {
	ReleaseBase
	DateISO    string `json:"dateISO"`
	ReleasedAt string `json:"releasedAt,omitempty"`
}

type Cancelled struct {
	ReleaseBase
	DateISO string `json:"dateISO,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// DelayedPrevious records the slipped date or window of a delayed release.
type DelayedPrevious struct {
	DateISO     string `json:"dateISO,omitempty"`
	WindowLabel string `json:"windowLabel,omitempty"`
}

type Delayed struct {
	ReleaseBase
	Previous *DelayedPrevious `json:"previous,omitempty"`
	Note     string           `json:"note,omitempty"`
}

func (r TBA) Status() Status             { return StatusTBA }
func (r AnnouncedDate) Status() Status   { return StatusAnnouncedDate }
func (r AnnouncedWindow) Status() Status { return StatusAnnouncedWindow }
func (r RecurringDaily) Status() Status  { return StatusRecurringDaily }
func (r RecurringWeekly) Status() Status { return StatusRecurringWeekly }
func (r Released) Status() Status        { return StatusReleased }
func (r Cancelled) Status() Status       { return StatusCancelled }
func (r Delayed) Status() Status         { return StatusDelayed }

func (b ReleaseBase) Base() ReleaseBase { return b }
func (b ReleaseBase) sealed()           {}

// UnmarshalRelease decodes a release record by its "status" discriminator.
func UnmarshalRelease(data []byte) (Release, error) {
	var tag struct {
		Status Status `json:"status"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, fmt.Errorf("release: %w", err)
	}

	var (
		rel Release
		err error
	)
	switch tag.Status {
	case StatusTBA:
		var r TBA
		err = json.Unmarshal(data, &r)
		rel = r
	case StatusAnnouncedDate:
		var r AnnouncedDate
		err = json.Unmarshal(data, &r)
		rel = r
	case StatusAnnouncedWindow:
		var r AnnouncedWindow
		err = json.Unmarshal(data, &r)
		rel = r
	case StatusRecurringDaily:
		var r RecurringDaily
		err = json.Unmarshal(data, &r)
		rel = r
	case StatusRecurringWeekly:
		var r RecurringWeekly
		err = json.Unmarshal(data, &r)
		rel = r
	case StatusReleased:
		var r Released
		err = json.Unmarshal(data, &r)
		rel = r
	case StatusCancelled:
		var r Cancelled
		err = json.Unmarshal(data, &r)
		rel = r
	case StatusDelayed:
		var r Delayed
		err = json.Unmarshal(data, &r)
		rel = r
	case "":
		return nil, fmt.Errorf("release: missing status")
	default:
		return nil, fmt.Errorf("release: unknown status %q", tag.Status)
	}
	if err != nil {
		return nil, fmt.Errorf("release %s: %w", tag.Status, err)
	}
	return rel, nil
}

// MarshalRelease encodes a release record with its "status" discriminator.
func MarshalRelease(r Release) ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	switch v := r.(type) {
	case TBA:
		return marshalVariant(v.Status(), v)
	case AnnouncedDate:
		return marshalVariant(v.Status(), v)
	case AnnouncedWindow:
		return marshalVariant(v.Status(), v)
	case RecurringDaily:
		return marshalVariant(v.Status(), v)
	case RecurringWeekly:
		return marshalVariant(v.Status(), v)
	case Released:
		return marshalVariant(v.Status(), v)
	case Cancelled:
		return marshalVariant(v.Status(), v)
	case Delayed:
		return marshalVariant(v.Status(), v)
	default:
		return nil, fmt.Errorf("release: unknown variant %T", r)
	}
}

func marshalVariant(status Status, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	head, err := json.Marshal(struct {
		Status Status `json:"status"`
	}{status})
	if err != nil {
		return nil, err
	}
	if string(body) == "{}" {
		return head, nil
	}
	// Splice the discriminator into the variant's own object.
	out := append(head[:len(head)-1], ',')
	out = append(out, body[1:]...)
	return out, nil
}
