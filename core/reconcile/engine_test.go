package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartition(t *testing.T) {
	isEven := func(n int) bool { return n%2 == 0 }

	odd, even := Partition([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, isEven)
	assert.Equal(t, []int{1, 3, 5, 7, 9}, odd)
	assert.Equal(t, []int{2, 4, 6, 8, 10}, even)

	none, all := Partition([]int{}, isEven)
	assert.Empty(t, none)
	assert.Empty(t, all)
}

func TestUniqueEndpoints(t *testing.T) {
	s := UniqueEndpoints([]Endpoints{
		{From: "JFK", To: "LAX"},
		{From: "LAX", To: "JFK"},
		{From: "LAX", To: "SFO"},
	})
	assert.Equal(t, []string{"JFK", "LAX", "SFO"}, s.Sorted())
}

func TestDifference(t *testing.T) {
	d := Difference(NewSet("A", "B", "C"), NewSet("B", "D"))
	assert.Equal(t, []string{"A", "C"}, d.Sorted())
	assert.Equal(t, 0, Difference(NewSet(), NewSet("A")).Len())
}

func TestAnalyze(t *testing.T) {
	type airport struct{ code string }
	registry := []airport{{"JFK"}, {`\N`}, {""}, {"LAX"}, {"ORD"}}

	usable, codeless := Partition(registry, func(a airport) bool {
		return a.code == `\N` || a.code == ""
	})
	assert.Len(t, usable, 3)
	assert.Len(t, codeless, 2)

	known := KnownKeys(usable, func(a airport) string { return a.code })
	summary := Analyze([]Endpoints{
		{From: "JFK", To: "LAX"},
		{From: "LAX", To: "XYZ"},
		{From: "jfk", To: "JFK"},
	}, known)

	assert.Equal(t, 4, summary.Referenced.Len())
	assert.Equal(t, 3, summary.Known.Len())
	// Matching is exact: "jfk" is not "JFK"
	assert.Equal(t, []string{"XYZ", "jfk"}, summary.Gap.Sorted())
	assert.False(t, summary.Known.Has(`\N`))
}

func TestSet(t *testing.T) {
	s := NewSet("A")
	s.Add("B")
	s.Add("A")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("B"))
	s.Remove("B")
	assert.False(t, s.Has("B"))
}
