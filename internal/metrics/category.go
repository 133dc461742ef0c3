package metrics

import (
	"strings"

	"github.com/julianstephens/habitus/internal/models"
)

// CategoryInfo is the display data for a category.
type CategoryInfo struct {
	ID    models.Category
	Label string
	Icon  string
}

// FallbackCategoryIcon is shown for categories missing from the catalogue.
const FallbackCategoryIcon = "🎨"

var catalogue = []CategoryInfo{
	{ID: models.CategoryAll, Label: "All", Icon: "🗂"},
	{ID: models.CategoryHealth, Label: "Health", Icon: "🏃"},
	{ID: models.CategoryMind, Label: "Mind", Icon: "🧘"},
	{ID: models.CategoryLearn, Label: "Learning", Icon: "📖"},
	{ID: models.CategoryWork, Label: "Work", Icon: "💻"},
	{ID: models.CategoryOther, Label: "Other", Icon: "🎨"},
}

// Categories returns the category catalogue in display order, "all" first.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(catalogue))
	copy(out, catalogue)
	return out
}

// LookupCategory returns display data for id. Unknown ids get the fallback
// icon and use the raw id as label.
func LookupCategory(id models.Category) CategoryInfo {
	for _, c := range catalogue {
		if c.ID == id {
			return c
		}
	}
	return CategoryInfo{ID: id, Label: string(id), Icon: FallbackCategoryIcon}
}

// CategoryIndex maps habit IDs to categories. It is owned by the caller and
// may contain stale IDs or miss current ones.
type CategoryIndex map[string]models.Category

// IndexCategories builds an index from the categories stored on habits.
// Habits without a category are left out so lookups fall back.
func IndexCategories(habits []models.Habit) CategoryIndex {
	idx := make(CategoryIndex, len(habits))
	for _, h := range habits {
		if h.Category != "" {
			idx[h.ID] = h.Category
		}
	}
	return idx
}

// CategoryOf returns the category of habitID, or CategoryOther when unknown.
func (idx CategoryIndex) CategoryOf(habitID string) models.Category {
	if c, ok := idx[habitID]; ok && c != "" {
		return c
	}
	return models.CategoryOther
}

// Filter returns the habits matching both the active category and the search
// query, in input order. CategoryAll (or empty) disables the category filter;
// an empty query disables the search filter. Search is a case-insensitive
// substring match on the habit name.
func Filter(habits []models.Habit, idx CategoryIndex, active models.Category, query string) []models.Habit {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if active != "" && active != models.CategoryAll && idx.CategoryOf(h.ID) != active {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(h.Name), query) {
			continue
		}
		out = append(out, h)
	}
	return out
}
