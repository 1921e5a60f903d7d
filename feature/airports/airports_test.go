package airports

import (
	"os"
	"path/filepath"
	"testing"

	"route-atlas/core/tabular"
	"route-atlas/feature/openflights"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registryFixture = `3797,"John F Kennedy International Airport","New York","United States","JFK","KJFK",40.63980103,-73.77890015,13,-5,"A","America/New_York","airport","OurAirports"
3484,"Los Angeles International Airport","Los Angeles","United States","LAX","KLAX",33.94250107,-118.4079971,125,-8,"A","America/Los_Angeles","airport","OurAirports"
7001,"Some Airstrip","Nowhere","Nowhere","\N","XXXX",1.0,2.0,10,0,"U","\N","airport","OurAirports"
7002,"Another Airstrip","Nowhere","Nowhere","","YYYY",1.0,2.0,10,0,"U","\N","airport","OurAirports"
`

func decodeRegistry(t *testing.T) []tabular.Row {
	t.Helper()
	rows := tabular.Decode(registryFixture, openflights.RegistryColumns, false)
	require.Len(t, rows, 4)
	return rows
}

func TestSplitRegistry(t *testing.T) {
	usable, codeless := SplitRegistry(decodeRegistry(t))

	require.Len(t, usable, 2)
	require.Len(t, codeless, 2)
	assert.Equal(t, AbsentCode, codeless[0].IATA())
	assert.Equal(t, "", codeless[1].IATA())
	assert.Equal(t, "XXXX", codeless[0].ICAO())

	known := KnownCodes(usable)
	assert.Equal(t, []string{"JFK", "LAX"}, known.Sorted())
	assert.False(t, known.Has(AbsentCode))
}

func TestFromRegistry(t *testing.T) {
	usable, _ := SplitRegistry(decodeRegistry(t))
	out := FromRegistry(usable)

	require.Len(t, out, 2)
	assert.Equal(t, Airport{
		IATA3:     "JFK",
		Name:      "John F Kennedy International Airport",
		City:      "New York",
		Country:   "United States",
		Elevation: "13",
		Latitude:  "40.63980103",
		Longitude: "-73.77890015",
		Source:    SourceRegistry,
	}, out[0])
	assert.Equal(t, []string{"JFK", "John F Kennedy International Airport", "New York", "United States", "13", "40.63980103", "-73.77890015"}, out[0].Values())
}

func TestFromLookup(t *testing.T) {
	body := `{"airports":[{"apid":"1","iata":"XYZ","name":"Xyz Field","city":"Xyz","country":"Nowhere","elevation":1234,"x":"12.5","y":-3.25}]}`
	resp, err := openflights.ParseLookupResponse([]byte(body))
	require.NoError(t, err)

	a := FromLookup(resp.Airports[0])
	assert.Equal(t, Airport{
		IATA3:     "XYZ",
		Name:      "Xyz Field",
		City:      "Xyz",
		Country:   "Nowhere",
		Elevation: "1234",
		Latitude:  "12.5",
		Longitude: "-3.25",
		Source:    SourceLookup,
	}, a)

	partial := FromLookup(map[string]any{"iata": "ABC"})
	assert.Equal(t, "ABC", partial.IATA3)
	assert.Empty(t, partial.Name)
}

func TestReadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra_airports.csv")
	content := "IATA3,Name,City,Country,Elevation,Latitude,Longitude\nXYZ,Override Field,Xyz,Nowhere,10,1.5,2.5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := ReadOverrides(path)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Override Field", out[0].Name)
	assert.Equal(t, SourceOverride, out[0].Source)

	_, err = ReadOverrides(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMergeFirstMatchWins(t *testing.T) {
	primary := []Airport{{IATA3: "JFK", Name: "Registry JFK", Source: SourceRegistry}}
	backfilled := []Airport{{IATA3: "XYZ", Name: "Lookup XYZ", Source: SourceLookup}}
	overrides := []Airport{
		{IATA3: "JFK", Name: "Override JFK", Source: SourceOverride},
		{IATA3: "ABC", Name: "Override ABC", Source: SourceOverride},
	}

	table := Merge(primary, backfilled, overrides)
	assert.Equal(t, 4, table.Len())

	jfk, ok := table.Find("JFK")
	require.True(t, ok)
	assert.Equal(t, "Registry JFK", jfk.Name)

	abc, ok := table.Find("ABC")
	require.True(t, ok)
	assert.Equal(t, SourceOverride, abc.Source)

	_, ok = table.Find("QQQ")
	assert.False(t, ok)

	assert.Equal(t, []string{"ABC", "JFK", "XYZ"}, table.Codes().Sorted())
	assert.Equal(t, map[Source]int{SourceRegistry: 1, SourceLookup: 1, SourceOverride: 2}, table.Sources())

	rows := table.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, "Override JFK", rows[2][1])
}
