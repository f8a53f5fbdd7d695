// Package testutil provides fixture builders shared by tests.
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmatos/gamewatch/internal/models"
)

// Doc builds a valid document around the given games.
func Doc(games ...models.Game) *models.GamesDoc {
	return &models.GamesDoc{
		GeneratedAt:   "2025-01-01T00:00:00Z",
		SchemaVersion: "1.0.0",
		Games:         games,
	}
}

func baseGame(id, name string, rel models.Release) models.Game {
	return models.Game{
		ID:        id,
		Name:      name,
		Category:  models.Category{Type: models.CategoryFullGame},
		Platforms: []models.Platform{models.PlatformPC},
		Release:   rel,
		Sources:   []models.Source{},
	}
}

func confirmed() models.ReleaseBase {
	return models.ReleaseBase{IsOfficial: true, Confidence: models.ConfidenceConfirmed}
}

// TBAGame builds a game with no release window.
func TBAGame(id, name string) models.Game {
	return baseGame(id, name, models.TBA{ReleaseBase: confirmed()})
}

// AnnouncedGame builds a game with an announced calendar date.
func AnnouncedGame(id, name, dateISO string) models.Game {
	return baseGame(id, name, models.AnnouncedDate{ReleaseBase: confirmed(), DateISO: dateISO})
}

// ReleasedGame builds an already-released game.
func ReleasedGame(id, name, dateISO string) models.Game {
	return baseGame(id, name, models.Released{ReleaseBase: confirmed(), DateISO: dateISO})
}

// DailyGame builds a game with a daily UTC reset.
func DailyGame(id, name, timeUTC string) models.Game {
	return baseGame(id, name, models.RecurringDaily{ReleaseBase: confirmed(), TimeUTC: timeUTC})
}

// WeeklyGame builds a game with a weekly UTC reset.
func WeeklyGame(id, name string, dayOfWeek int, timeUTC string) models.Game {
	return baseGame(id, name, models.RecurringWeekly{
		ReleaseBase:  confirmed(),
		DayOfWeekUTC: dayOfWeek,
		TimeUTC:      timeUTC,
	})
}

// MustTime parses an RFC 3339 instant or fails the test.
func MustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed.UTC()
}
