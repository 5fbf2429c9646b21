package statistics

import (
	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

// CategoryCount is the number of entries in one category
type CategoryCount struct {
	Category string
	Count    int
}

// StatisticsResult holds the total and the per-category counts
type StatisticsResult struct {
	Total      int
	Categories []CategoryCount // in the order each category is first seen
}

// CalculateStatistics counts entries per category.
// Entries without a category are counted under dictionary.UncategorizedCategory.
func CalculateStatistics(dict *dictionary.Dictionary) StatisticsResult {
	result := StatisticsResult{
		Categories: []CategoryCount{},
	}
	positions := make(map[string]int)

	for _, entry := range dict.All() {
		result.Total++

		category := entry.CategoryOrDefault()
		index, ok := positions[category]
		if !ok {
			index = len(result.Categories)
			positions[category] = index
			result.Categories = append(result.Categories, CategoryCount{Category: category})
		}
		result.Categories[index].Count++
	}
	return result
}
