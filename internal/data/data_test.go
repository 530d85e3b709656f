package data

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, entry := range Travelogues {
		assert.False(t, seen[entry.ID], "duplicate travelogue id %s", entry.ID)
		seen[entry.ID] = true
	}

	seen = make(map[string]bool)
	for _, entry := range DailyLife {
		assert.False(t, seen[entry.ID], "duplicate daily-life id %s", entry.ID)
		seen[entry.ID] = true
	}
}

func TestCatalogEntriesComplete(t *testing.T) {
	for _, entry := range Travelogues {
		assert.NotEmpty(t, entry.Title, "travelogue %s missing title", entry.ID)
		assert.NotEmpty(t, entry.Date, "travelogue %s missing date", entry.ID)
		assert.True(t, strings.HasPrefix(entry.Route, "/Travelogues/"), "travelogue %s has route %s", entry.ID, entry.Route)
	}

	for _, entry := range DailyLife {
		assert.NotEmpty(t, entry.Title, "daily-life %s missing title", entry.ID)
		assert.True(t, strings.HasPrefix(entry.Route, "/daily-life/"), "daily-life %s has route %s", entry.ID, entry.Route)
	}
}

func TestFindTravelogue(t *testing.T) {
	entry, ok := FindTravelogue("kyoto-2024-07")
	require.True(t, ok)
	assert.Equal(t, "Kyoto, Japan", entry.Title)

	_, ok = FindTravelogue("nowhere-1999-01")
	assert.False(t, ok)
}

func TestFindDailyLife(t *testing.T) {
	_, ok := FindDailyLife("nowhere")
	assert.False(t, ok)

	require.NotEmpty(t, DailyLife)
	entry, ok := FindDailyLife(DailyLife[0].ID)
	require.True(t, ok)
	assert.Equal(t, DailyLife[0].Title, entry.Title)
}

func TestTripsHaveLocations(t *testing.T) {
	require.NotEmpty(t, Trips)
	for _, trip := range Trips {
		assert.NotEmpty(t, trip.Locations, "trip %s has no locations", trip.ID)
		assert.NotEmpty(t, trip.Color, "trip %s has no color", trip.ID)
		for _, loc := range trip.Locations {
			assert.NotZero(t, loc.Lat, "trip %s location %s has zero lat", trip.ID, loc.Name)
			assert.NotZero(t, loc.Lng, "trip %s location %s has zero lng", trip.ID, loc.Name)
		}
	}
}
