package procedure

import "strings"

// KeywordSet is the set of outline keywords a record's tags are matched
// against.
type KeywordSet map[string]struct{}

// NewKeywordSet builds a set from the given keywords.
func NewKeywordSet(keywords ...string) KeywordSet {
	set := make(KeywordSet, len(keywords))
	for _, keyword := range keywords {
		set[keyword] = struct{}{}
	}
	return set
}

// Contains reports whether the keyword is in the set.
func (s KeywordSet) Contains(keyword string) bool {
	_, ok := s[keyword]
	return ok
}

// MatchByKeywords returns the records whose semicolon-split tag set has
// a non-empty intersection with the keyword set, preserving the
// original order. Records with an empty or whitespace-only tag never
// match. Matching is case-sensitive.
func MatchByKeywords(records []Record, keywords KeywordSet) []Record {
	matched := make([]Record, 0)
	for _, record := range records {
		for _, tag := range record.Tags() {
			if keywords.Contains(tag) {
				matched = append(matched, record)
				break
			}
		}
	}
	return matched
}

// SearchByTitle returns the records whose title contains the query,
// case-insensitively, preserving order. An empty query returns an
// empty result rather than the entire dataset.
func SearchByTitle(records []Record, query string) []Record {
	results := make([]Record, 0)
	if query == "" {
		return results
	}
	lowered := strings.ToLower(query)
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.Title), lowered) {
			results = append(results, record)
		}
	}
	return results
}
