package wordforge

import "sort"

// CandidateSet is the duplicate-free working collection of generated
// candidates. Membership is pure set semantics; ordering only exists on
// the sorted view returned by Sorted.
type CandidateSet struct {
	members map[string]struct{}
}

// NewCandidateSet creates an empty candidate set
func NewCandidateSet() *CandidateSet {
	return &CandidateSet{members: make(map[string]struct{})}
}

// Add inserts a candidate into the set. Empty strings are ignored.
func (s *CandidateSet) Add(candidate string) {
	if candidate == "" {
		return
	}
	s.members[candidate] = struct{}{}
}

// AddAll inserts every supplied candidate into the set
func (s *CandidateSet) AddAll(candidates []string) {
	for _, candidate := range candidates {
		s.Add(candidate)
	}
}

// Contains reports whether the candidate is a member of the set
func (s *CandidateSet) Contains(candidate string) bool {
	_, found := s.members[candidate]
	return found
}

// Len returns the number of members
func (s *CandidateSet) Len() int {
	return len(s.members)
}

// Snapshot returns an immutable copy of the current members in unspecified
// order. Expanders that both read and write the set must iterate a snapshot
// so candidates added during the pass are not expanded again.
func (s *CandidateSet) Snapshot() []string {
	snapshot := make([]string, 0, len(s.members))
	for member := range s.members {
		snapshot = append(snapshot, member)
	}
	return snapshot
}

// Sorted returns all members in ascending lexicographic order
func (s *CandidateSet) Sorted() []string {
	sorted := s.Snapshot()
	sort.Strings(sorted)
	return sorted
}
