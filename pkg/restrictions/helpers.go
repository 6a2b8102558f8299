package restrictions

// Overridable filters to violations the user may acknowledge and proceed
// past (recording the override reason is the caller's job).
func Overridable(vs []Violation) []Violation {
	out := []Violation{}
	for _, v := range vs {
		if v.CanOverride {
			out = append(out, v)
		}
	}
	return out
}

func BySeverity(vs []Violation, sev Severity) []Violation {
	out := []Violation{}
	for _, v := range vs {
		if v.Severity == sev {
			out = append(out, v)
		}
	}
	return out
}

func GroupByProduct(vs []Violation) map[uint][]Violation {
	out := map[uint][]Violation{}
	for _, v := range vs {
		out[v.ProductID] = append(out[v.ProductID], v)
	}
	return out
}

// HasBlockingViolations reports whether any error-severity violation exists.
// Note every error in the current rule set is overridable, so this currently
// coincides with "any error exists"; kept as the UI gate pending product
// clarification on whether a non-overridable error class should exist.
func HasBlockingViolations(vs []Violation) bool {
	for _, v := range vs {
		if v.Severity == SeverityError {
			return true
		}
	}
	return false
}
