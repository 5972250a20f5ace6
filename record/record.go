// Package record defines labeled records and their persistent store.
package record

// Record is a labeled item in the store: an identifier plus a set of string
// keywords. GroupIndex and GroupName hold the stored partition assignment,
// when one exists.
type Record struct {
	ID       string
	Name     string
	Keywords []string

	GroupIndex *int
	GroupName  string
}

// HasKeyword reports whether the record carries the given keyword.
// Matching is case-sensitive and exact.
func (r *Record) HasKeyword(keyword string) bool {
	for _, k := range r.Keywords {
		if k == keyword {
			return true
		}
	}
	return false
}
