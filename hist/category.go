package hist

import "sort"

// Category is one bucket of a categorical histogram: a distinct token and
// its occurrence count.
type Category struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// BuildCategories groups identical tokens and returns one Category per
// distinct token, ordered by ascending count so the tallest bar renders
// last. Ties are broken by label to keep the order deterministic.
func BuildCategories(tokens []string) []Category {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}

	categories := make([]Category, 0, len(counts))
	for label, count := range counts {
		categories = append(categories, Category{Label: label, Count: count})
	}

	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Count != categories[j].Count {
			return categories[i].Count < categories[j].Count
		}

		return categories[i].Label < categories[j].Label
	})

	return categories
}
