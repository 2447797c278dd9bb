// Package procedure implements tagged knowledge-base records and the
// matching rules that bind them to outline keywords.
package procedure

import "strings"

// TagSeparator delimits the individual tags inside a record's Tag field.
const TagSeparator = ";"

// DefaultTag marks a record that was added without any tag.
const DefaultTag = "REST"

// Record is one tagged knowledge-base entry. Code is the unique
// identifier and may be empty when the source column is absent. Tag
// holds one or more semicolon-separated tags; empty means untagged.
type Record struct {
	Code  string `json:"code"`
	Title string `json:"title"`
	Link  string `json:"link"`
	Tag   string `json:"tag"`
}

// Tags returns the record's individual tags, trimmed, with empty
// pieces dropped.
func (r Record) Tags() []string {
	return splitTags(r.Tag)
}

// NormalizeTag re-splits a raw tag value on the separator, trims each
// piece, drops empty pieces, and rejoins. An entirely empty result is
// the empty string.
func NormalizeTag(raw string) string {
	return strings.Join(splitTags(raw), TagSeparator)
}

func splitTags(raw string) []string {
	pieces := strings.Split(raw, TagSeparator)
	tags := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		if trimmed := strings.TrimSpace(piece); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
