package structural

import "fmt"

// Suggestions derives deterministic remediation text from a validation
// result. The same result always yields the same suggestions in the
// same order.
func Suggestions(r *Result) []string {
	suggestions := make([]string, 0)

	for _, c := range r.MissingCategories {
		suggestions = append(suggestions,
			fmt.Sprintf("add at least one %s node: the model instantiates no %s stage", c, c))
	}
	for _, e := range r.OrderViolations {
		suggestions = append(suggestions,
			fmt.Sprintf("edge %s goes backward in causal order: remove it or declare it as a feedback edge", e.Key()))
	}
	if len(r.MissingCategories) == 0 && len(r.OrderViolations) == 0 && len(r.CompletePaths) == 0 {
		suggestions = append(suggestions,
			"no complete causal chain links inputs to impact: connect the existing stages")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			"the causal structure is valid: all categories are present and at least one complete path links inputs to impact")
	}
	return suggestions
}
