package store

import "strings"

// CaseFilter is the query engine's criteria set. All fields are optional
// and compose conjunctively: a case must satisfy every supplied criterion.
// The zero filter matches everything.
type CaseFilter struct {
	Status    string
	CrimeType string
	OfficerID string
	// Search is a case-insensitive substring match against the title.
	Search string
}

// IsZero reports whether no criteria were supplied.
func (f CaseFilter) IsZero() bool {
	return f.Status == "" && f.CrimeType == "" && f.OfficerID == "" && f.Search == ""
}

// Matches reports whether c satisfies every supplied criterion.
func (f CaseFilter) Matches(c Case) bool {
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.CrimeType != "" && c.CrimeType != f.CrimeType {
		return false
	}
	if f.OfficerID != "" && c.OfficerID != f.OfficerID {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(c.Title), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// Apply filters cases in storage order. A filter with no matches yields an
// empty slice, not an error.
func (f CaseFilter) Apply(cases []Case) []Case {
	matched := make([]Case, 0, len(cases))
	for _, c := range cases {
		if f.Matches(c) {
			matched = append(matched, c)
		}
	}
	return matched
}
