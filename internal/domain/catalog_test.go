package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase passthrough", "tornado", "tornado"},
		{"uppercase", "TORNADO", "tornado"},
		{"mixed case", "Flash Flood", "flash flood"},
		{"surrounding whitespace", "  FLOOD  ", "flood"},
		{"accents stripped", "Tornádo", "tornado"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Fold(tt.input))
		})
	}
}

func TestNewCatalog(t *testing.T) {
	t.Run("empty labels rejected", func(t *testing.T) {
		_, err := NewCatalog(nil, 0)
		require.ErrorIs(t, err, ErrEmptyCatalog)
	})

	t.Run("blank entry rejected", func(t *testing.T) {
		_, err := NewCatalog([]string{"tornado", "   "}, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty label")
	})

	t.Run("duplicate after folding rejected", func(t *testing.T) {
		_, err := NewCatalog([]string{"Tornado", "TORNADO"}, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("entries folded and ordered", func(t *testing.T) {
		c, err := NewCatalog([]string{"Flash Flood", "Flood"}, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"flash flood", "flood"}, c.Entries())

		i, ok := c.Index("flood")
		require.True(t, ok)
		assert.Equal(t, 1, i)
	})
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, 48, c.Len())

	for _, label := range []string{"tornado", "flood", "hail", "thunderstorm wind", "hurricane (typhoon)"} {
		_, ok := c.Index(label)
		assert.True(t, ok, "catalog should contain %q", label)
	}
}

func TestCatalogMatch(t *testing.T) {
	catalog := DefaultCatalog()

	t.Run("verbatim labels match exactly", func(t *testing.T) {
		for _, entry := range catalog.Entries() {
			got, ok := catalog.Match(entry)
			require.True(t, ok, "entry %q should match itself", entry)
			assert.Equal(t, entry, got)
		}
	})

	t.Run("case and whitespace ignored", func(t *testing.T) {
		got, ok := catalog.Match("  TORNADO ")
		require.True(t, ok)
		assert.Equal(t, "tornado", got)
	})

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"trailing letter typo", "Tornadoe", "tornado"},
		{"transposition", "TORNDAO", "tornado"},
		{"plural", "thunderstorm winds", "thunderstorm wind"},
		{"plural rip currents", "RIP CURRENTS", "rip current"},
		{"plural heavy rains", "Heavy Rains", "heavy rain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := catalog.Match(tt.raw)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("narrative text does not match", func(t *testing.T) {
		_, ok := catalog.Match("SUMMARY OF MARCH 24-25 SEVERE WEATHER AND FLOODING EVENT")
		assert.False(t, ok)
	})

	t.Run("empty label does not match", func(t *testing.T) {
		_, ok := catalog.Match("   ")
		assert.False(t, ok)
	})
}

func TestCatalogMatch_DistanceCap(t *testing.T) {
	c, err := NewCatalog([]string{"tornado", "flood"}, 2)
	require.NoError(t, err)

	t.Run("within cap", func(t *testing.T) {
		got, ok := c.Match("Tornadoe")
		require.True(t, ok)
		assert.Equal(t, "tornado", got)
	})

	t.Run("beyond cap", func(t *testing.T) {
		_, ok := c.Match("blizzard!!")
		assert.False(t, ok)
	})
}

func TestCatalogMatch_TieBreak(t *testing.T) {
	// "gold" is distance 1 from both entries; the lowest catalog index wins.
	c, err := NewCatalog([]string{"cold", "bold"}, 2)
	require.NoError(t, err)

	got, ok := c.Match("gold")
	require.True(t, ok)
	assert.Equal(t, "cold", got)

	// Same entries in the opposite order flip the winner.
	c, err = NewCatalog([]string{"bold", "cold"}, 2)
	require.NoError(t, err)

	got, ok = c.Match("gold")
	require.True(t, ok)
	assert.Equal(t, "bold", got)
}
