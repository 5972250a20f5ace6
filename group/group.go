// Package group partitions labeled records into keyword-defined groups.
package group

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sartorproj/tsfeat/record"
)

// KeywordGroup names one partition class, defined by a set of keywords.
// A record belongs to the group when any of the keywords appears in the
// record's keyword set (case-sensitive exact match).
type KeywordGroup struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// ConfirmFunc answers a yes/no question posed to the caller. It gates the
// convenience path that derives one group per distinct keyword when no
// groups are supplied.
type ConfirmFunc func(prompt string) bool

// AssignmentStore receives a validated partition for persistence.
// record.Store satisfies this interface.
type AssignmentStore interface {
	SaveAssignments(groupNames []string, assign []int, ids []string) error
}

// Options controls the optional behaviors of Partition.
type Options struct {
	// Save writes the validated assignment back to Store.
	Save  bool
	Store AssignmentStore

	// Confirm gates group auto-derivation when no groups are supplied.
	Confirm ConfirmFunc
}

// EmptyGroupError reports a group that matched no record.
type EmptyGroupError struct {
	Group string
}

func (e *EmptyGroupError) Error() string {
	return fmt.Sprintf("group %q matches no records", e.Group)
}

// UnassignedError reports a record that matched no group.
type UnassignedError struct {
	Record string
}

func (e *UnassignedError) Error() string {
	return fmt.Sprintf("record %q matches no group", e.Record)
}

// AmbiguousError reports a record that matched more than one group.
type AmbiguousError struct {
	Record string
	Groups []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("record %q matches multiple groups: %s",
		e.Record, strings.Join(e.Groups, ", "))
}

// Partition assigns each record to exactly one group and validates the
// result. The returned slice holds one 0-based group index per record, in
// input order.
//
// Validation runs in a fixed order and stops at the first failure:
// a group matching no records (*EmptyGroupError), a record matching no group
// (*UnassignedError), then a record matching more than one group
// (*AmbiguousError).
//
// When groups is empty, opts.Confirm decides whether to derive one group per
// distinct keyword across all records. Declined (or absent) confirmation
// returns (nil, nil): no effect, no error.
//
// With opts.Save set, a successfully validated assignment is written to
// opts.Store, replacing any previously stored assignment entirely.
func Partition(records []record.Record, groups []KeywordGroup, opts *Options) ([]int, error) {
	if opts == nil {
		opts = &Options{}
	}

	if len(groups) == 0 {
		derived := AutoGroups(records)
		prompt := fmt.Sprintf("No groups supplied. Derive %d groups from the distinct keywords?", len(derived))
		if opts.Confirm == nil || !opts.Confirm(prompt) {
			return nil, nil
		}
		groups = derived
	}

	// matches[i] holds the indices of every group record i belongs to
	matches := make([][]int, len(records))
	groupHits := make([]int, len(groups))
	for i := range records {
		for g, kg := range groups {
			if matchesGroup(&records[i], &kg) {
				matches[i] = append(matches[i], g)
				groupHits[g]++
			}
		}
	}

	for g, hits := range groupHits {
		if hits == 0 {
			return nil, &EmptyGroupError{Group: groupName(&groups[g])}
		}
	}

	for i, m := range matches {
		if len(m) == 0 {
			return nil, &UnassignedError{Record: recordLabel(&records[i], i)}
		}
	}

	for i, m := range matches {
		if len(m) > 1 {
			names := make([]string, len(m))
			for j, g := range m {
				names[j] = groupName(&groups[g])
			}
			return nil, &AmbiguousError{Record: recordLabel(&records[i], i), Groups: names}
		}
	}

	assign := make([]int, len(records))
	for i, m := range matches {
		assign[i] = m[0]
	}

	if opts.Save {
		if opts.Store == nil {
			return nil, fmt.Errorf("save requested but no store configured")
		}
		names := make([]string, len(groups))
		for g := range groups {
			names[g] = groupName(&groups[g])
		}
		ids := make([]string, len(records))
		for i := range records {
			ids[i] = records[i].ID
		}
		if err := opts.Store.SaveAssignments(names, assign, ids); err != nil {
			return nil, fmt.Errorf("write back assignment: %w", err)
		}
	}

	return assign, nil
}

// AutoGroups derives one single-keyword group per distinct keyword observed
// across the records, sorted by keyword.
func AutoGroups(records []record.Record) []KeywordGroup {
	seen := make(map[string]bool)
	for i := range records {
		for _, k := range records[i].Keywords {
			seen[k] = true
		}
	}

	keywords := make([]string, 0, len(seen))
	for k := range seen {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)

	groups := make([]KeywordGroup, len(keywords))
	for i, k := range keywords {
		groups[i] = KeywordGroup{Name: k, Keywords: []string{k}}
	}
	return groups
}

func matchesGroup(r *record.Record, g *KeywordGroup) bool {
	for _, k := range g.Keywords {
		if r.HasKeyword(k) {
			return true
		}
	}
	return false
}

func groupName(g *KeywordGroup) string {
	if g.Name != "" {
		return g.Name
	}
	return strings.Join(g.Keywords, "|")
}

func recordLabel(r *record.Record, i int) string {
	if r.ID != "" {
		return r.ID
	}
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("#%d", i)
}
