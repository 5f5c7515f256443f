package shopping

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ReportLabels holds the human-readable section labels of the report.
// Deployments localize the report by supplying their own set.
type ReportLabels struct {
	Title       string
	NeedToBuy   string
	ForRecipes  string
	GeneratedAt string
}

var DefaultLabels = ReportLabels{
	Title:       "Shopping list.",
	NeedToBuy:   "Need to buy:",
	ForRecipes:  "For recipes:",
	GeneratedAt: "Generated at",
}

// FormatReport renders the aggregated shopping list as a flat text
// document. It never fails: an empty aggregate produces the section
// labels with no numbered lines.
func FormatReport(items []Item, generatedAt time.Time, labels ReportLabels) string {
	out := []string{
		labels.Title,
		"",
		labels.NeedToBuy,
	}
	for i, item := range items {
		out = append(out, fmt.Sprintf(
			"%d) %s = %s %s.",
			i+1, capitalize(item.Name), formatAmount(item.Amount), item.MeasurementUnit,
		))
	}

	out = append(out, "", labels.ForRecipes)
	for i, name := range recipeNames(items) {
		out = append(out, fmt.Sprintf("%d) %s", i+1, name))
	}

	out = append(out, "", fmt.Sprintf(
		"%s: %s", labels.GeneratedAt, generatedAt.Format("2006-01-02 15:04:05"),
	))
	return strings.Join(out, "\n")
}

// recipeNames is the deduplicated union of contributing recipe names
// across the whole list, sorted for a stable rendering.
func recipeNames(items []Item) []string {
	seen := map[string]bool{}
	names := []string{}
	for _, item := range items {
		for _, name := range item.Recipes {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// formatAmount prints the shortest decimal that round-trips, so "0.5"
// stays "0.5" and "300" stays "300".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// capitalize upper-cases the first rune and lower-cases the rest, a
// render-time transform only: stored catalog names stay untouched.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
