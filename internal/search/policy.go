package search

// Policy selects how a query is compared against each line.
type Policy int

const (
	// CaseSensitive compares bytes exactly.
	CaseSensitive Policy = iota
	// CaseInsensitive folds ASCII letters before comparing.
	CaseInsensitive
)

// Func is the signature shared by both search variants.
type Func func(query, contents string) []string

// PolicyFor maps a resolved case-sensitivity flag to a Policy.
func PolicyFor(caseSensitive bool) Policy {
	if caseSensitive {
		return CaseSensitive
	}
	return CaseInsensitive
}

// Func returns the search variant implementing p.
// Unknown policies fall back to case-sensitive matching.
func (p Policy) Func() Func {
	if p == CaseInsensitive {
		return SearchCaseInsensitive
	}
	return Search
}

// String returns the policy name used in logs.
func (p Policy) String() string {
	switch p {
	case CaseSensitive:
		return "case-sensitive"
	case CaseInsensitive:
		return "case-insensitive"
	default:
		return "unknown"
	}
}

// Find runs the variant selected by p.
func Find(p Policy, query, contents string) []string {
	return p.Func()(query, contents)
}
