// Package season maps calendar dates onto the four simulcast quarters.
package season

import (
	"fmt"
	"strings"
	"time"
)

// Season is one of the four simulcast quarters
type Season int

const (
	Winter Season = iota
	Spring
	Summer
	Fall
)

var names = [...]string{"Winter", "Spring", "Summer", "Fall"}

// String returns the capitalized season name.
func (s Season) String() string {
	return names[s]
}

// Key returns the lowercase season name used in catalog filters and file names.
func (s Season) Key() string {
	return strings.ToLower(names[s])
}

// Parse converts a season name (any case) into a Season.
func Parse(name string) (Season, error) {
	for i, n := range names {
		if strings.EqualFold(name, n) {
			return Season(i), nil
		}
	}
	return 0, fmt.Errorf("unknown season %q (expected winter, spring, summer or fall)", name)
}

// Current returns the season the given moment falls into.
func Current(t time.Time) Season {
	switch {
	case t.Month() <= time.March:
		return Winter
	case t.Month() <= time.June:
		return Spring
	case t.Month() <= time.September:
		return Summer
	default:
		return Fall
	}
}

// StartDate returns midnight on the first day of the quarter the given
// moment falls into, in the same location.
func StartDate(t time.Time) time.Time {
	month := time.January
	switch Current(t) {
	case Spring:
		month = time.April
	case Summer:
		month = time.July
	case Fall:
		month = time.October
	}
	return time.Date(t.Year(), month, 1, 0, 0, 0, 0, t.Location())
}
