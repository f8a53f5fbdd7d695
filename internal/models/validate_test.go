package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmatos/gamewatch/internal/models"
	"github.com/dmatos/gamewatch/internal/testutil"
)

func TestValidate_ValidDoc(t *testing.T) {
	doc := testutil.Doc(
		testutil.AnnouncedGame("a", "Alpha", "2026-01-01"),
		testutil.TBAGame("b", "Beta"),
		testutil.DailyGame("c", "Gamma", "09:00"),
		testutil.WeeklyGame("d", "Delta", 6, "23:59"),
		testutil.ReleasedGame("e", "Epsilon", "2020-04-10"),
	)

	assert.NoError(t, doc.Validate())
}

func TestValidate_MissingSchemaVersion(t *testing.T) {
	doc := testutil.Doc()
	doc.SchemaVersion = ""

	err := doc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schemaVersion")
}

func TestValidate_BadGeneratedAt(t *testing.T) {
	doc := testutil.Doc()
	doc.GeneratedAt = "yesterday"

	err := doc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generatedAt")
}

func TestValidate_DuplicateID(t *testing.T) {
	doc := testutil.Doc(
		testutil.TBAGame("same", "One"),
		testutil.TBAGame("same", "Two"),
	)

	err := doc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestValidate_ReleasedRequiresDate(t *testing.T) {
	game := testutil.ReleasedGame("r", "Released", "2020-04-10")
	game.Release = models.Released{
		ReleaseBase: models.ReleaseBase{Confidence: models.ConfidenceConfirmed},
	}
	doc := testutil.Doc(game)

	err := doc.Validate()
	require.Error(t, err, "released without a literal date violates the contract")
	assert.Contains(t, err.Error(), "dateISO is required")
}

func TestValidate_DayOfWeekRange(t *testing.T) {
	doc := testutil.Doc(testutil.WeeklyGame("w", "Weekly", 7, "09:00"))

	err := doc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dayOfWeekUTC")
}

func TestValidate_TimeOfDayFormat(t *testing.T) {
	for _, bad := range []string{"9:00", "24:00", "09:60", "0900", "09:00:00", ""} {
		doc := testutil.Doc(testutil.DailyGame("d", "Daily", bad))
		assert.Error(t, doc.Validate(), "timeUTC=%q should be rejected", bad)
	}
}

func TestValidate_UnknownConfidence(t *testing.T) {
	game := testutil.TBAGame("t", "TBA")
	game.Release = models.TBA{ReleaseBase: models.ReleaseBase{Confidence: "probably"}}
	doc := testutil.Doc(game)

	err := doc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confidence")
}

func TestValidate_MissingRelease(t *testing.T) {
	game := testutil.TBAGame("t", "TBA")
	game.Release = nil
	doc := testutil.Doc(game)

	err := doc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "release is required")
}

func TestParseDate(t *testing.T) {
	parsed, err := models.ParseDate("2026-03-27")
	require.NoError(t, err)
	assert.Equal(t, testutil.MustTime(t, "2026-03-27T00:00:00Z"), parsed)

	_, err = models.ParseDate("03/27/2026")
	assert.Error(t, err)
}

func TestParseTimeOfDay(t *testing.T) {
	hour, minute, err := models.ParseTimeOfDay("17:05")
	require.NoError(t, err)
	assert.Equal(t, 17, hour)
	assert.Equal(t, 5, minute)

	_, _, err = models.ParseTimeOfDay("25:00")
	assert.Error(t, err)
}
