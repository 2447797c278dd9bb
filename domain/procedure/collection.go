package procedure

import "strings"

// Collection is an ordered, mutable set of records loaded wholesale
// from one version's backing store. It is not safe for concurrent
// mutation; the storage boundary serializes writers.
type Collection struct {
	records []Record
}

// NewCollection wraps the given records. The slice is owned by the
// collection afterwards.
func NewCollection(records []Record) *Collection {
	if records == nil {
		records = make([]Record, 0)
	}
	return &Collection{records: records}
}

// Records returns the records in their original order.
func (c *Collection) Records() []Record {
	return c.records
}

// Contains reports whether a record with the given code exists.
func (c *Collection) Contains(code string) bool {
	for _, record := range c.records {
		if record.Code == code {
			return true
		}
	}
	return false
}

// Add appends a record. A missing tag defaults to DefaultTag, marking
// the record uncategorized; a supplied tag is normalized. A duplicate
// code is silently ignored: callers cannot distinguish "added" from
// "duplicate skipped" through this method.
func (c *Collection) Add(record Record) {
	if c.Contains(record.Code) {
		return
	}
	if strings.TrimSpace(record.Tag) == "" {
		record.Tag = DefaultTag
	} else {
		record.Tag = NormalizeTag(record.Tag)
	}
	c.records = append(c.records, record)
}

// UpdateTag replaces the tag of the record with the given code,
// normalizing the value first. It reports whether the record was found.
func (c *Collection) UpdateTag(code, rawTag string) bool {
	for i := range c.records {
		if c.records[i].Code == code {
			c.records[i].Tag = NormalizeTag(rawTag)
			return true
		}
	}
	return false
}
