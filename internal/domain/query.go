package domain

// ParsedQuery holds the structured signals extracted from a free-text
// search string. All slices are non-nil, deduplicated, and preserve
// first-appearance order.
type ParsedQuery struct {
	Emails  []string `json:"emails"`
	Domains []string `json:"domains"`
	Phones  []string `json:"phones"`
	Tokens  []string `json:"tokens"`
}

// NewParsedQuery returns an empty ParsedQuery with all slices
// initialized, so callers and JSON encoding never see nulls.
func NewParsedQuery() ParsedQuery {
	return ParsedQuery{
		Emails:  []string{},
		Domains: []string{},
		Phones:  []string{},
		Tokens:  []string{},
	}
}
