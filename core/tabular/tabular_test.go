package tabular

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var registryColumns = []string{"id", "name", "city", "country", "iata", "icao", "lat", "lng", "elevation", "tz", "dst", "olson_tz_name", "type", "source"}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"Plain", "a,b,c", []string{"a", "b", "c"}},
		{"QuotedComma", `1,"Goroka, PNG",x`, []string{"1", `"Goroka, PNG"`, "x"}},
		{"EmptyFields", "a,,c,", []string{"a", "", "c", ""}},
		{"SingleField", "abc", []string{"abc"}},
		{"TwoQuotedFields", `"a,b","c,d"`, []string{`"a,b"`, `"c,d"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLine(tt.line))
		})
	}
}

func TestClean(t *testing.T) {
	assert.Equal(t, "Goroka PNG", Clean(`"Goroka, PNG"`))
	assert.Equal(t, `He said "hi`, Clean(`"He said "hi"`))
	assert.Equal(t, `\N`, Clean(`\N`))
	assert.Equal(t, "", Clean(`""`))
	assert.Equal(t, `"`, Clean(`"""`))
}

func TestDecode_Registry(t *testing.T) {
	text := `1,"Goroka Airport","Goroka","Papua New Guinea","GKA","AYGA",-6.081689834590001,145.391998291,5282,10,"U","Pacific/Port_Moresby","airport","OurAirports"` + "\r\n" +
		"\n" +
		`5,"Port Moresby Jacksons International Airport","Port Moresby","Papua New Guinea","POM","AYPY",-9.443380355834961,147.22000122070312,146,10,"U","Pacific/Port_Moresby","airport","OurAirports"` + "\n"

	rows := Decode(text, registryColumns, false)
	require.Len(t, rows, 2)

	assert.Equal(t, "GKA", rows[0].Get("iata"))
	assert.Equal(t, "Goroka Airport", rows[0].Get("name"))
	assert.Equal(t, "-6.081689834590001", rows[0].Get("lat"))
	assert.Equal(t, "OurAirports", rows[0].Get("source"))
	assert.Equal(t, "POM", rows[1].Get("iata"))
	assert.Equal(t, "", rows[1].Get("unknown"))
	assert.Equal(t, registryColumns, rows[1].Columns())
}

func TestDecode_Header(t *testing.T) {
	text := "IATA3,Name\nXXA,Alpha\nXXB,Beta"
	rows := Decode(text, []string{"IATA3", "Name"}, true)
	require.Len(t, rows, 2)
	assert.Equal(t, "XXA", rows[0].Get("IATA3"))
	assert.Equal(t, []string{"XXB", "Beta"}, rows[1].Values())
}

func TestDecode_FieldCountMismatch(t *testing.T) {
	rows := Decode("a\nb,c,d", []string{"x", "y"}, false)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"a", ""}, rows[0].Values())
	assert.Equal(t, []string{"b", "c"}, rows[1].Values())
}

func TestDecode_Empty(t *testing.T) {
	assert.Empty(t, Decode("", []string{"a"}, false))
	assert.Empty(t, Decode("header", []string{"a"}, true))
}

func TestEncode(t *testing.T) {
	cols := []string{"IATA3", "Name"}
	recs := [][]string{{"JFK", "John F Kennedy"}, {"LAX", "Los Angeles"}}

	assert.Equal(t, "IATA3,Name\nJFK,John F Kennedy\nLAX,Los Angeles", Encode(cols, recs, true))
	assert.Equal(t, "JFK,John F Kennedy\nLAX,Los Angeles", Encode(cols, recs, false))
	assert.Equal(t, "IATA3,Name", Encode(cols, nil, true))
}

func TestRoundTrip_RegistryRow(t *testing.T) {
	line := `3797,"John F Kennedy International Airport","New York","United States","JFK","KJFK",40.63980103,-73.77890015,13,-5,"A","America/New_York","airport","OurAirports"`
	rows := Decode(line, registryColumns, false)
	require.Len(t, rows, 1)

	out := Encode(registryColumns, [][]string{rows[0].Values()}, false)
	want := `3797,John F Kennedy International Airport,New York,United States,JFK,KJFK,40.63980103,-73.77890015,13,-5,A,America/New_York,airport,OurAirports`
	assert.Equal(t, want, out)

	again := Decode(out, registryColumns, false)
	require.Len(t, again, 1)
	assert.Equal(t, rows[0].Values(), again[0].Values())
}

func TestFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	cols := []string{"a", "b"}

	require.NoError(t, WriteFile(path, cols, [][]string{{"1", "2"}}, true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2", string(data))

	rows, err := ReadFile(path, cols, true)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2", rows[0].Get("b"))

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.csv"), cols, true)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
