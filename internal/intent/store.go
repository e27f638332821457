package intent

// Store is the read-only, ordered intent table. It is never mutated after
// construction, so it is safe for concurrent reads.
type Store struct {
	entries []Entry
	index   map[string]int
}

// NewStore builds a Store over entries without validating them.
// Use Load or Parse for validated construction.
func NewStore(entries []Entry) *Store {
	s := &Store{
		entries: make([]Entry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	copy(s.entries, entries)
	for i, e := range s.entries {
		if _, seen := s.index[e.Tag]; !seen {
			s.index[e.Tag] = i
		}
	}
	return s
}

// Find returns the first entry whose tag equals tag.
func (s *Store) Find(tag string) (Entry, bool) {
	i, ok := s.index[tag]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Entries returns the entries in file order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Samples flattens every pattern into a Sample in store order.
func (s *Store) Samples() []Sample {
	var out []Sample
	for _, e := range s.entries {
		for j, p := range e.Patterns {
			smp := Sample{Tag: e.Tag, Pattern: p}
			if len(e.Responses) > 0 {
				smp.Response = e.Responses[j%len(e.Responses)]
			}
			out = append(out, smp)
		}
	}
	return out
}

// Tags returns the distinct tags in first-seen order.
func (s *Store) Tags() []string {
	out := make([]string, 0, len(s.index))
	for i, e := range s.entries {
		if s.index[e.Tag] == i {
			out = append(out, e.Tag)
		}
	}
	return out
}
