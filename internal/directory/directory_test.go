package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeded_Get(t *testing.T) {
	d := Seeded()

	c, ok := d.Get("c3")
	require.True(t, ok)
	assert.Equal(t, "Anthropic", c.Name)
	assert.Equal(t, "https://anthropic.com", c.URL)

	_, ok = d.Get("nope")
	assert.False(t, ok)
}

func TestList_NoFilter(t *testing.T) {
	d := Seeded()
	assert.Len(t, d.List(Filter{}), 10)
}

func TestList_IndustryAndStage(t *testing.T) {
	d := Seeded()

	ai := d.List(Filter{Industry: "AI"})
	require.Len(t, ai, 2)
	assert.Equal(t, "Anthropic", ai[0].Name)
	assert.Equal(t, "Hugging Face", ai[1].Name)

	devtoolsB := d.List(Filter{Industry: "DevTools", Stage: "Series B"})
	require.Len(t, devtoolsB, 1)
	assert.Equal(t, "Supabase", devtoolsB[0].Name)
}

func TestList_Query(t *testing.T) {
	d := Seeded()

	// Name match, case-insensitive.
	byName := d.List(Filter{Query: "stripe"})
	require.Len(t, byName, 1)
	assert.Equal(t, "c1", byName[0].ID)

	// Description match.
	byDesc := d.List(Filter{Query: "firebase"})
	require.Len(t, byDesc, 1)
	assert.Equal(t, "Supabase", byDesc[0].Name)

	assert.Empty(t, d.List(Filter{Query: "zzzz"}))
}

func TestFacets(t *testing.T) {
	d := Seeded()

	industries := d.Industries()
	assert.Equal(t, []string{"AI", "Design", "DevTools", "Fintech", "HR Tech", "Productivity"}, industries)

	stages := d.Stages()
	assert.Contains(t, stages, "Public")
	assert.Contains(t, stages, "Series B")
	assert.True(t, sortedStrings(stages))
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}
