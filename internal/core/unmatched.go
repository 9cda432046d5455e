package core

import (
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type unmatchedEntry struct {
	name  string // casing of the first parameter seen
	value any
}

// unmatched collects values that matched no field. Keys are compared
// case-insensitively; a repeated name keeps its first casing and last value.
type unmatched struct {
	entries *orderedmap.OrderedMap[string, unmatchedEntry]
}

func (u *unmatched) add(name, folded string, value any) {
	if u.entries == nil {
		u.entries = orderedmap.New[string, unmatchedEntry]()
	}
	if prev, ok := u.entries.Get(folded); ok {
		name = prev.name
	}
	u.entries.Set(folded, unmatchedEntry{name: name, value: value})
}

func (u *unmatched) size() int {
	if u.entries == nil {
		return 0
	}
	return u.entries.Len()
}

// names returns the collected names sorted ordinally.
func (u *unmatched) names() []string {
	out := make([]string, 0, u.size())
	if u.entries == nil {
		return out
	}
	for pair := u.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value.name)
	}
	slices.Sort(out)
	return out
}

func (u *unmatched) toMap() map[string]any {
	m := make(map[string]any, u.size())
	if u.entries == nil {
		return m
	}
	for pair := u.entries.Oldest(); pair != nil; pair = pair.Next() {
		m[pair.Value.name] = pair.Value.value
	}
	return m
}
