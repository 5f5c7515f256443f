package shopping

import (
	"sort"

	"github.com/foodgram-ru/foodgram-backend/model"
)

// Line is one resolved ingredient line of a recipe sitting in a cart:
// the product it refers to plus the name of the owning recipe.
type Line struct {
	ProductID       string
	ProductName     string
	MeasurementUnit string
	Amount          float64
	RecipeName      string
}

// Item is one row of the aggregated shopping list: the total amount of
// a product across every recipe in the cart, plus the names of the
// recipes that need it.
type Item struct {
	Name            string
	MeasurementUnit string
	Amount          float64
	Recipes         []string
}

// LinesFromCart flattens the preloaded cart rows into aggregation input.
// An unresolved product on a line means the store broke referential
// integrity; rows are preloaded so that cannot happen past migration.
func LinesFromCart(entries []*model.UserRecipeRelation) []Line {
	lines := []Line{}
	for _, entry := range entries {
		for _, ing := range entry.Recipe.Ingredients {
			lines = append(lines, Line{
				ProductID:       ing.ProductID,
				ProductName:     ing.Product.Name,
				MeasurementUnit: ing.Product.MeasurementUnit,
				Amount:          ing.Amount,
				RecipeName:      entry.Recipe.Name,
			})
		}
	}
	return lines
}

// Aggregate collapses ingredient lines into per-product totals. A
// product listed by several recipes, or several times within one
// recipe, gets a single row with the amounts summed. Each contributing
// recipe name appears once per row regardless of how many of its lines
// mention the product. Rows come back ordered by product name, ties
// broken by measurement unit, so repeated calls on the same cart render
// identically.
func Aggregate(lines []Line) []Item {
	type accumulator struct {
		item    *Item
		recipes map[string]bool
	}

	byProduct := map[string]*accumulator{}
	for _, line := range lines {
		acc, ok := byProduct[line.ProductID]
		if !ok {
			acc = &accumulator{
				item: &Item{
					Name:            line.ProductName,
					MeasurementUnit: line.MeasurementUnit,
				},
				recipes: map[string]bool{},
			}
			byProduct[line.ProductID] = acc
		}
		acc.item.Amount += line.Amount
		acc.recipes[line.RecipeName] = true
	}

	items := []Item{}
	for _, acc := range byProduct {
		for name := range acc.recipes {
			acc.item.Recipes = append(acc.item.Recipes, name)
		}
		sort.Strings(acc.item.Recipes)
		items = append(items, *acc.item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].MeasurementUnit < items[j].MeasurementUnit
	})
	return items
}
