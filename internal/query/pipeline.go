// Package query derives the visible, ordered list of games from the loaded
// document, a filter configuration and a reference instant. The pipeline is
// pure and synchronous; debouncing of free-text input is a UI concern.
package query

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dmatos/gamewatch/internal/models"
	"github.com/dmatos/gamewatch/internal/release"
)

// SortKey selects the ordering of the filtered list.
type SortKey string

const (
	SortAZ         SortKey = "az"
	SortSoonest    SortKey = "soonest"
	SortLatest     SortKey = "latest"
	SortDailyFirst SortKey = "daily_first"
)

// ParseSortKey normalizes a raw sort parameter, defaulting to az.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortSoonest, SortLatest, SortDailyFirst:
		return SortKey(s)
	default:
		return SortAZ
	}
}

// StatusAll disables the status filter.
const StatusAll = "all"

// TagAll disables the tag filter.
const TagAll = "all"

// ParseStatusFilter normalizes a raw status parameter, defaulting to all.
func ParseStatusFilter(s string) string {
	if models.ValidStatus(models.Status(s)) {
		return s
	}
	return StatusAll
}

// Filters is the ephemeral filter/sort state owned by the list view.
type Filters struct {
	Query  string
	Status string // a release status, or "all"
	Tag    string // a tag, or "all"
	Sort   SortKey
}

// DefaultFilters returns the neutral filter state.
func DefaultFilters() Filters {
	return Filters{Status: StatusAll, Tag: TagAll, Sort: SortAZ}
}

// IsDefault reports whether no filter or non-default sort is active.
func (f Filters) IsDefault() bool {
	return f.Query == "" && f.Status == StatusAll && f.Tag == TagAll && f.Sort == SortAZ
}

// Apply filters and sorts games without mutating the input slice.
func Apply(games []models.Game, f Filters, now time.Time) []models.Game {
	out := Filter(games, f)
	Sort(out, f.Sort, now)
	return out
}

// Filter keeps games passing the status, tag and free-text query filters.
// The returned slice is a copy.
func Filter(games []models.Game, f Filters) []models.Game {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]models.Game, 0, len(games))
	for _, g := range games {
		if f.Status != StatusAll && string(g.Release.Status()) != f.Status {
			continue
		}
		if f.Tag != TagAll && !hasTag(g, f.Tag) {
			continue
		}
		if q != "" && !matchesQuery(g, q) {
			continue
		}
		out = append(out, g)
	}
	return out
}

func hasTag(g models.Game, tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func matchesQuery(g models.Game, q string) bool {
	haystack := strings.ToLower(g.Name + " " + strings.Join(g.Tags, " "))
	return strings.Contains(haystack, q)
}

// Sort orders games in place by the given key. Names compare with a
// base-sensitivity collator; equal names keep their document order.
func Sort(games []models.Game, key SortKey, now time.Time) {
	c := collate.New(language.Und, collate.Loose)

	if key == SortAZ {
		sort.SliceStable(games, func(i, j int) bool {
			return c.CompareString(games[i].Name, games[j].Name) < 0
		})
		return
	}

	type decorated struct {
		game  models.Game
		value int64
		daily bool
	}
	items := make([]decorated, len(games))
	for i, g := range games {
		items[i] = decorated{
			game:  g,
			value: release.SortValue(g, now),
			daily: g.Release.Status() == models.StatusRecurringDaily,
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if key == SortDailyFirst && a.daily != b.daily {
			return a.daily
		}
		if a.value != b.value {
			if key == SortLatest {
				return a.value > b.value
			}
			return a.value < b.value
		}
		return c.CompareString(a.game.Name, b.game.Name) < 0
	})

	for i := range items {
		games[i] = items[i].game
	}
}

// AllTags returns the sorted distinct tags across games, feeding the tag
// filter dropdown.
func AllTags(games []models.Game) []string {
	set := make(map[string]bool)
	for _, g := range games {
		for _, t := range g.Tags {
			set[t] = true
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	c := collate.New(language.Und, collate.Loose)
	sort.Slice(tags, func(i, j int) bool { return c.CompareString(tags[i], tags[j]) < 0 })
	return tags
}
