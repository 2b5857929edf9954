package model

import (
	"sort"
	"strconv"
)

// ProcessedSet is the set of submission ids that a sync has already handled.
// Ids are only ever added.
type ProcessedSet struct {
	ids map[string]struct{}
}

// NewProcessedSet builds a set holding the given ids.
func NewProcessedSet(ids ...string) *ProcessedSet {
	s := &ProcessedSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add marks id as processed. Empty ids are ignored.
func (s *ProcessedSet) Add(id string) {
	if id == "" {
		return
	}
	if s.ids == nil {
		s.ids = make(map[string]struct{})
	}
	s.ids[id] = struct{}{}
}

// Has reports whether id was processed.
func (s *ProcessedSet) Has(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of processed ids.
func (s *ProcessedSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// Sorted returns the ids in numeric ascending order. Ids that are not
// numbers sort after all numeric ids, lexically.
func (s *ProcessedSet) Sorted() []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		a, aErr := strconv.ParseInt(out[i], 10, 64)
		b, bErr := strconv.ParseInt(out[j], 10, 64)
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return out[i] < out[j]
		}
	})
	return out
}
