package models

import (
	"fmt"
	"strings"
)

// Category groups habits for filtering and breakdowns
type Category string

const (
	CategoryAll    Category = "all" // filter value only, never assigned to a habit
	CategoryHealth Category = "health"
	CategoryMind   Category = "mind"
	CategoryLearn  Category = "learn"
	CategoryWork   Category = "work"
	CategoryOther  Category = "other"
)

// AssignableCategories lists the categories a habit may belong to, in display order.
var AssignableCategories = []Category{
	CategoryHealth,
	CategoryMind,
	CategoryLearn,
	CategoryWork,
	CategoryOther,
}

// ParseCategory normalizes user input into a Category.
// "all" is accepted so the result can be used as a filter.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c == CategoryAll {
		return c, nil
	}
	for _, known := range AssignableCategories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
