// Package classify assigns a category to an article from its text alone.
package classify

import (
	"strings"

	"warta/internal/model"
)

// Keyword sets are checked in this order. The ordering is a deliberate
// tie-break: text matching both politics and economy keywords classifies
// as politics.
var keywordSets = []struct {
	category model.Category
	keywords []string
}{
	{model.CategoryPolitics, []string{"politic", "government", "parliament", "minister", "election", "policy"}},
	{model.CategoryEconomy, []string{"economic", "business", "finance", "market", "trade", "ringgit"}},
	{model.CategorySocial, []string{"social", "community", "society", "education", "health", "culture"}},
}

// Classify returns exactly one category for the given title and description.
// It is total: any input, including empty strings, yields a category.
func Classify(title, description string) model.Category {
	text := strings.ToLower(title + " " + description)

	for _, set := range keywordSets {
		for _, kw := range set.keywords {
			if strings.Contains(text, kw) {
				return set.category
			}
		}
	}
	return model.CategoryGeneral
}
