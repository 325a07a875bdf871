package core

import (
	"strconv"
	"strings"
)

// Category is a closed set of expense categories. Declaration order is report order.
type Category int

const (
	Food Category = iota
	Transportation
	Shopping
	Entertainment
	Utilities
	Other
)

var categoryNames = [...]string{
	Food:           "Food",
	Transportation: "Transportation",
	Shopping:       "Shopping",
	Entertainment:  "Entertainment",
	Utilities:      "Utilities",
	Other:          "Other",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{Food, Transportation, Shopping, Entertainment, Utilities, Other}
}

// SelectableCategories are the ones offered at the expense prompt.
func SelectableCategories() []Category {
	return []Category{Food, Transportation, Shopping, Entertainment, Utilities}
}

// String returns the display name; unknown values render as Other.
func (c Category) String() string {
	if c < Food || c > Other {
		return categoryNames[Other]
	}
	return categoryNames[c]
}

func (c Category) Valid() bool {
	return c >= Food && c <= Other
}

// ParseCategoryChoice parses a prompt index into one of SelectableCategories.
func ParseCategoryChoice(s string) (Category, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidCategory
	}
	selectable := SelectableCategories()
	if n < 0 || n >= len(selectable) {
		return 0, ErrInvalidCategory
	}
	return selectable[n], nil
}
