package rental

import (
	"errors"
	"fmt"
	"strings"
)

// Category is a car class. Categories are ordered A < B < C < D.
type Category byte

const (
	CategoryA Category = 'A'
	CategoryB Category = 'B'
	CategoryC Category = 'C'
	CategoryD Category = 'D'

	DefaultCategory = CategoryA
)

// ErrInvalidCategory is returned when text does not name a known category
var ErrInvalidCategory = errors.New("invalid category")

// categoryInfo holds ordering and pricing for one category
type categoryInfo struct {
	rank      int
	dailyRate int
}

var categories = map[Category]categoryInfo{
	CategoryA: {rank: 1, dailyRate: 100},
	CategoryB: {rank: 2, dailyRate: 150},
	CategoryC: {rank: 3, dailyRate: 180},
	CategoryD: {rank: 4, dailyRate: 240},
}

// Categories returns all categories from lowest to highest
func Categories() []Category {
	return []Category{CategoryA, CategoryB, CategoryC, CategoryD}
}

// Valid reports whether c is one of A, B, C, D
func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

// Rank returns the position of c in the ordering (1 for A), or 0 if invalid
func (c Category) Rank() int {
	return categories[c].rank
}

// DailyRate returns the price of one rental day.
// Unknown categories are charged at the category A rate.
func (c Category) DailyRate() int {
	info, ok := categories[c]
	if !ok {
		return categories[DefaultCategory].dailyRate
	}
	return info.dailyRate
}

// WeeklyRate returns the discounted price of seven rental days
func (c Category) WeeklyRate() int {
	return DaysPerWeek * c.DailyRate() * (100 - WeeklyDiscountPercent) / 100
}

func (c Category) String() string {
	return string(rune(c))
}

// ParseCategory parses a single category letter, case-insensitive
func ParseCategory(s string) (Category, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}

	c := Category(s[0])
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}
