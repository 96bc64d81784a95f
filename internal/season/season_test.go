package season

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	expected := map[time.Month]Season{
		time.January:   Winter,
		time.February:  Winter,
		time.March:     Winter,
		time.April:     Spring,
		time.May:       Spring,
		time.June:      Spring,
		time.July:      Summer,
		time.August:    Summer,
		time.September: Summer,
		time.October:   Fall,
		time.November:  Fall,
		time.December:  Fall,
	}

	for month, want := range expected {
		date := time.Date(2024, month, 15, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, want, Current(date), "month %s", month)
	}
}

func TestCurrentAlwaysReturnsValidSeason(t *testing.T) {
	valid := map[string]bool{"Winter": true, "Spring": true, "Summer": true, "Fall": true}

	for month := time.January; month <= time.December; month++ {
		date := time.Date(2024, month, 1, 0, 0, 0, 0, time.UTC)
		s := Current(date)
		assert.True(t, valid[s.String()], "month %d yielded %q", month, s.String())
	}
}

func TestStartDate(t *testing.T) {
	quarterStarts := map[time.Month]bool{
		time.January: true,
		time.April:   true,
		time.July:    true,
		time.October: true,
	}

	for month := time.January; month <= time.December; month++ {
		date := time.Date(2024, month, 20, 18, 30, 0, 0, time.UTC)
		start := StartDate(date)

		assert.True(t, quarterStarts[start.Month()], "month %d started quarter in %s", month, start.Month())
		assert.Equal(t, 1, start.Day())
		assert.Equal(t, 2024, start.Year())
		assert.Equal(t, 0, start.Hour())
	}
}

func TestStartDateBoundaries(t *testing.T) {
	t.Run("last day of a quarter", func(t *testing.T) {
		date := time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)
		assert.Equal(t, time.January, StartDate(date).Month())
	})

	t.Run("first day of a quarter", func(t *testing.T) {
		date := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, time.April, StartDate(date).Month())
	})
}

func TestKey(t *testing.T) {
	assert.Equal(t, "winter", Winter.Key())
	assert.Equal(t, "spring", Spring.Key())
	assert.Equal(t, "summer", Summer.Key())
	assert.Equal(t, "fall", Fall.Key())
}

func TestParse(t *testing.T) {
	t.Run("accepts any case", func(t *testing.T) {
		s, err := Parse("SPRING")
		require.NoError(t, err)
		assert.Equal(t, Spring, s)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := Parse("autumn")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "autumn")
	})
}
