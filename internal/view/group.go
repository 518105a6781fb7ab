package view

import "sync"

// Group is a run of items sharing one field value.
type Group[T Entity] struct {
	Key   string
	Items []T
}

// GroupBy partitions items by the text of field. Groups appear in order of
// first occurrence; items keep their order within a group. Missing values
// group under "".
func GroupBy[T Entity](items []T, field string) []Group[T] {
	var groups []Group[T]
	index := make(map[string]int)
	for _, it := range items {
		v, _ := it.Field(field)
		k := text(v)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

// CountBy tallies items by the text of field.
func CountBy[T Entity](items []T, field string) map[string]int {
	counts := make(map[string]int)
	for _, it := range items {
		v, _ := it.Field(field)
		counts[text(v)]++
	}
	return counts
}

// Memo caches the last derivation. The caller supplies a version that
// changes whenever the source items change (a snapshot version); the
// predicates are compared by value.
type Memo[T Entity] struct {
	mu      sync.Mutex
	cfg     Config
	version uint64
	preds   Predicates
	out     []T
	valid   bool
}

// NewMemo creates a Memo for one view configuration.
func NewMemo[T Entity](cfg Config) *Memo[T] {
	return &Memo[T]{cfg: cfg}
}

// Derive returns the cached view when version and predicates are unchanged,
// otherwise recomputes it.
func (m *Memo[T]) Derive(version uint64, items []T, p Predicates) []T {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.valid && m.version == version && samePredicates(m.preds, p) {
		return m.out
	}
	m.out = Derive(items, p, m.cfg)
	m.version = version
	m.preds = clonePredicates(p)
	m.valid = true
	return m.out
}

// SetConfig replaces the view configuration and drops the cached result.
func (m *Memo[T]) SetConfig(cfg Config) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = cfg
	m.valid = false
}

func samePredicates(a, b Predicates) bool {
	if a.SearchText != b.SearchText || len(a.EqualityFilters) != len(b.EqualityFilters) {
		return false
	}
	for k, av := range a.EqualityFilters {
		bv, ok := b.EqualityFilters[k]
		if !ok || !strictEqual(av, bv) {
			return false
		}
	}
	return true
}

func clonePredicates(p Predicates) Predicates {
	out := Predicates{SearchText: p.SearchText}
	if p.EqualityFilters != nil {
		out.EqualityFilters = make(map[string]any, len(p.EqualityFilters))
		for k, v := range p.EqualityFilters {
			out.EqualityFilters[k] = v
		}
	}
	return out
}
