package gazetteer_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homestay/internal/gazetteer"
)

func TestRegions_FixedOrder(t *testing.T) {
	want := []string{"Jerusalem", "Northern", "Haifa", "Central", "Tel Aviv", "Southern"}
	assert.Equal(t, want, gazetteer.Regions())
}

func TestCitiesInRegion(t *testing.T) {
	got := gazetteer.CitiesInRegion("Tel Aviv")
	require.NotEmpty(t, got)
	assert.True(t, sort.StringsAreSorted(got), "cities must be sorted: %v", got)
	assert.Contains(t, got, "Holon")
	assert.Contains(t, got, "Tel Aviv-Yafo")

	// exact match only, and unknown regions are empty, not nil panics
	assert.Empty(t, gazetteer.CitiesInRegion("tel aviv"))
	assert.Empty(t, gazetteer.CitiesInRegion("Atlantis"))
}

func TestSearch(t *testing.T) {
	// "haifa" hits the city Haifa plus everything in the Haifa region.
	got := gazetteer.Search("haifa")
	assert.Contains(t, got, "Haifa")
	assert.Contains(t, got, "Hadera")
	assert.LessOrEqual(t, len(got), 10)

	// broad terms are capped at ten
	assert.Len(t, gazetteer.Search("a"), 10)

	// no matches
	assert.Empty(t, gazetteer.Search("zzzz"))
}

func TestSearch_PreservesTableOrder(t *testing.T) {
	got := gazetteer.Search("kiryat")
	want := []string{"Kiryat Shmona", "Kiryat Ata", "Kiryat Bialik", "Kiryat Gat", "Kiryat Malakhi"}
	assert.Equal(t, want, got)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		region, city string
		want         bool
	}{
		{"Southern", "Eilat", true},
		{"Southern", "eilat", true},     // city is case-insensitive
		{"Southern", "Nazareth", false}, // Nazareth is Northern
		{"southern", "Eilat", false},    // region is case-sensitive
		{"Tel Aviv", "Tel Aviv-Yafo", true},
		{"Central", "Netanya", true},
		{"Central", "", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, gazetteer.Validate(c.region, c.city), "%s/%s", c.region, c.city)
	}
}

func TestLookup(t *testing.T) {
	e, ok := gazetteer.Lookup("eilat")
	require.True(t, ok)
	assert.Equal(t, "Eilat", e.Name)
	assert.Equal(t, gazetteer.Southern, e.Region)

	_, ok = gazetteer.Lookup("Gotham")
	assert.False(t, ok)
}
