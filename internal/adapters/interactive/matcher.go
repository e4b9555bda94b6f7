package interactive

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/forkcfg/internal/usecase"
)

// maxSuggestions caps "did you mean" output
const maxSuggestions = 3

// FuzzyMatcherAdapter suggests names close to a query
type FuzzyMatcherAdapter struct{}

// NewFuzzyMatcherAdapter creates a new fuzzy matcher
func NewFuzzyMatcherAdapter() *FuzzyMatcherAdapter {
	return &FuzzyMatcherAdapter{}
}

// Suggest returns up to three candidates matching query, best first
func (m *FuzzyMatcherAdapter) Suggest(query string, candidates []string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] && len(out) < maxSuggestions {
			seen[name] = true
			out = append(out, name)
		}
	}

	// Substring matches first, then fuzzy
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if strings.Contains(lc, query) || strings.Contains(query, lc) {
			add(c)
		}
	}
	for _, match := range fuzzy.Find(query, candidates) {
		add(match.Str)
	}

	return out
}

// Ensure the adapter implements the interface
var _ usecase.NameMatcher = (*FuzzyMatcherAdapter)(nil)
