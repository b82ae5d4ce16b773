package shoppinglist

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

type groupKey struct {
	name string
	unit string
}

// Aggregate groups lines by ingredient name and measurement unit, sums the
// amounts of each group and orders the groups by collated name, then unit.
// A nil collator falls back to the root locale.
func Aggregate(lines []domain.ShoppingLine, c *collate.Collator) []domain.ShoppingListItem {
	if c == nil {
		c = collate.New(language.Und)
	}

	index := make(map[groupKey]int, len(lines))
	items := make([]domain.ShoppingListItem, 0, len(lines))
	for _, line := range lines {
		key := groupKey{name: line.Name, unit: line.MeasurementUnit}
		i, ok := index[key]
		if !ok {
			i = len(items)
			index[key] = i
			items = append(items, domain.ShoppingListItem{Name: line.Name, MeasurementUnit: line.MeasurementUnit})
		}
		items[i].Amount += int64(line.Amount)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if cmp := c.CompareString(items[i].Name, items[j].Name); cmp != 0 {
			return cmp < 0
		}
		if cmp := c.CompareString(items[i].MeasurementUnit, items[j].MeasurementUnit); cmp != 0 {
			return cmp < 0
		}
		// Collators may treat distinct strings as equal
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].MeasurementUnit < items[j].MeasurementUnit
	})
	return items
}

// NewCollator returns a collator for the BCP 47 tag, falling back to
// DefaultLanguage on a malformed tag. Collators are not safe for concurrent use.
func NewCollator(tag string) *collate.Collator {
	parsed, err := language.Parse(tag)
	if err != nil {
		parsed = language.MustParse(DefaultLanguage)
	}
	return collate.New(parsed)
}
