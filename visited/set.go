package visited

// Compile time checks.
var (
	_ Set[int] = (*MapSet[int])(nil)
	_ Set[int] = (*KeyedSet[int, int])(nil)
)

// MapSet is a hash set of comparable states.
type MapSet[S comparable] struct {
	seen map[S]struct{}
}

// NewSet creates a hash-based visited set for comparable states.
func NewSet[S comparable]() *MapSet[S] {
	return &MapSet[S]{seen: make(map[S]struct{})}
}

// Visit implements Set.
func (m *MapSet[S]) Visit(s S) bool {
	if _, ok := m.seen[s]; ok {
		return false
	}
	m.seen[s] = struct{}{}
	return true
}

// Visited implements Set.
func (m *MapSet[S]) Visited(s S) bool {
	_, ok := m.seen[s]
	return ok
}

// Len implements Set.
func (m *MapSet[S]) Len() int { return len(m.seen) }

// Reset implements Set.
func (m *MapSet[S]) Reset() { clear(m.seen) }

// Enabled implements Set.
func (m *MapSet[S]) Enabled() bool { return true }

// KeyedSet deduplicates states by a derived comparable key. Use it for
// states holding slices or maps, which cannot be map keys themselves.
type KeyedSet[S any, K comparable] struct {
	key  func(S) K
	seen map[K]struct{}
}

// NewKeyed creates a visited set that identifies states by key(s).
// Two states with equal keys are treated as the same state.
func NewKeyed[S any, K comparable](key func(S) K) *KeyedSet[S, K] {
	if key == nil {
		panic("visited: nil key function")
	}
	return &KeyedSet[S, K]{key: key, seen: make(map[K]struct{})}
}

// Visit implements Set.
func (k *KeyedSet[S, K]) Visit(s S) bool {
	id := k.key(s)
	if _, ok := k.seen[id]; ok {
		return false
	}
	k.seen[id] = struct{}{}
	return true
}

// Visited implements Set.
func (k *KeyedSet[S, K]) Visited(s S) bool {
	_, ok := k.seen[k.key(s)]
	return ok
}

// Len implements Set.
func (k *KeyedSet[S, K]) Len() int { return len(k.seen) }

// Reset implements Set.
func (k *KeyedSet[S, K]) Reset() { clear(k.seen) }

// Enabled implements Set.
func (k *KeyedSet[S, K]) Enabled() bool { return true }
