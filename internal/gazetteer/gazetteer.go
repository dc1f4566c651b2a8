// Package gazetteer holds the curated table of Israeli places a listing can
// reference. The table is fixed at compile time and never mutated; every
// operation is a pure read.
package gazetteer

import (
	"sort"
	"strings"
)

type Region string

const (
	Jerusalem Region = "Jerusalem"
	Northern  Region = "Northern"
	Haifa     Region = "Haifa"
	Central   Region = "Central"
	TelAviv   Region = "Tel Aviv"
	Southern  Region = "Southern"
)

// Entry is one known city and its administrative region.
type Entry struct {
	Name   string `json:"name"`
	Region Region `json:"region"`
}

// searchLimit caps free-text results; there is no relevance ranking, matches
// come back in table order.
const searchLimit = 10

var regions = []Region{Jerusalem, Northern, Haifa, Central, TelAviv, Southern}

var cities = []Entry{
	{"Jerusalem", Jerusalem},
	{"Ma'ale Adumim", Jerusalem},
	{"Beitar Illit", Jerusalem},
	{"Givat Ze'ev", Jerusalem},

	{"Nazareth", Northern},
	{"Acre", Northern},
	{"Safed", Northern},
	{"Tiberias", Northern},
	{"Nahariya", Northern},
	{"Carmiel", Northern},
	{"Kiryat Shmona", Northern},

	{"Haifa", Haifa},
	{"Hadera", Haifa},
	{"Nesher", Haifa},
	{"Tirat Carmel", Haifa},
	{"Kiryat Ata", Haifa},
	{"Kiryat Bialik", Haifa},

	{"Rishon LeZion", Central},
	{"Petah Tikva", Central},
	{"Netanya", Central},
	{"Rehovot", Central},
	{"Kfar Saba", Central},
	{"Hod HaSharon", Central},
	{"Ra'anana", Central},
	{"Herzliya", Central},
	{"Modi'in-Maccabim-Re'ut", Central},
	{"Lod", Central},
	{"Ramla", Central},
	{"Rosh HaAyin", Central},

	{"Tel Aviv-Yafo", TelAviv},
	{"Holon", TelAviv},
	{"Bat Yam", TelAviv},
	{"Bnei Brak", TelAviv},
	{"Ramat Gan", TelAviv},
	{"Givatayim", TelAviv},

	{"Beer Sheva", Southern},
	{"Ashdod", Southern},
	{"Ashkelon", Southern},
	{"Eilat", Southern},
	{"Kiryat Gat", Southern},
	{"Netivot", Southern},
	{"Sderot", Southern},
	{"Dimona", Southern},
	{"Arad", Southern},
	{"Kiryat Malakhi", Southern},
}

// Regions returns the six region names in declaration order.
func Regions() []string {
	out := make([]string, len(regions))
	for i, r := range regions {
		out[i] = string(r)
	}
	return out
}

// CitiesInRegion returns the city names of an exact region match, sorted
// lexicographically. Unknown regions yield an empty slice.
func CitiesInRegion(region string) []string {
	out := []string{}
	for _, c := range cities {
		if string(c.Region) == region {
			out = append(out, c.Name)
		}
	}
	sort.Strings(out)
	return out
}

// Search matches term case-insensitively against city or region names and
// returns up to ten city names in table order.
func Search(term string) []string {
	t := strings.ToLower(term)
	out := []string{}
	for _, c := range cities {
		if strings.Contains(strings.ToLower(c.Name), t) ||
			strings.Contains(strings.ToLower(string(c.Region)), t) {
			out = append(out, c.Name)
			if len(out) == searchLimit {
				break
			}
		}
	}
	return out
}

// Validate reports whether (region, city) is a recognized pair: exact region,
// case-insensitive city name.
func Validate(region, city string) bool {
	for _, c := range cities {
		if string(c.Region) == region && strings.EqualFold(c.Name, city) {
			return true
		}
	}
	return false
}

// Lookup finds a city by case-insensitive exact name.
func Lookup(cityName string) (Entry, bool) {
	for _, c := range cities {
		if strings.EqualFold(c.Name, cityName) {
			return c, true
		}
	}
	return Entry{}, false
}

// All exposes the table for callers that need to iterate it (the seeder).
// The returned slice is a copy.
func All() []Entry {
	out := make([]Entry, len(cities))
	copy(out, cities)
	return out
}
