package causal

import "fmt"

// Category is one stage in the ordered causal sequence of a theory-of-change
// model. The zero value is Inputs; the ordering of the constants is the
// canonical causal order.
type Category int

const (
	Inputs Category = iota
	Processes
	Outputs
	Results
	Impact

	numCategories = int(Impact) + 1
)

// String returns the lowercase name of the category
func (c Category) String() string {
	switch c {
	case Inputs:
		return "inputs"
	case Processes:
		return "processes"
	case Outputs:
		return "outputs"
	case Results:
		return "results"
	case Impact:
		return "impact"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// IsValid reports whether c is one of the five defined categories
func (c Category) IsValid() bool {
	return c >= Inputs && c <= Impact
}

// Categories returns all categories in causal order
func Categories() []Category {
	return []Category{Inputs, Processes, Outputs, Results, Impact}
}

// ParseCategory converts a category name to a Category.
// Matching is exact on the lowercase names used by String.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown causal category %q", s)
}
