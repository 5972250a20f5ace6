// Package group partitions labeled records into keyword-defined groups.
//
// A partition is valid when it is mutually exclusive and exhaustive: every
// group matches at least one record, and every record matches exactly one
// group. Validation failures are typed errors naming the offending group or
// record.
//
// # Basic Usage
//
//	groups := []group.KeywordGroup{
//	    {Name: "disease", Keywords: []string{"disease"}},
//	    {Name: "healthy", Keywords: []string{"healthy"}},
//	}
//	assign, err := group.Partition(records, groups, nil)
//
// Group indices in the returned assignment are 0-based.
//
// # Deriving Groups
//
// With no groups supplied, Partition can derive one group per distinct
// keyword, gated by a caller-supplied confirmation:
//
//	opts := &group.Options{Confirm: func(prompt string) bool { return true }}
//	assign, err := group.Partition(records, nil, opts)
//
// # Writing Back
//
// A validated assignment can be persisted through an AssignmentStore; the
// store's previous assignment is replaced entirely, never merged.
package group
