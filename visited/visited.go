// Package visited provides the deduplication policies used by search managers.
//
// A Set records states that have already been dequeued so they are expanded
// at most once. The policy is chosen when a manager is built:
//
//	visited.None[S]()                         // unhashable: no dedup
//	visited.NewSet[S]()                       // hashable: S is comparable
//	visited.NewKeyed(func(s S) K { ... })     // hashable by a derived key
//	visited.NewBitmap(func(s S) uint64 { ... }) // dense integer keys
//
// Sets are not safe for concurrent use.
package visited

// Set is a deduplication policy over states of type S.
type Set[S any] interface {
	// Visit marks s as visited. It reports true if s was not visited before.
	Visit(s S) bool
	// Visited reports whether s has been marked.
	Visited(s S) bool
	// Len returns the number of distinct states marked.
	Len() int
	// Reset forgets every marked state.
	Reset()
	// Enabled reports whether the policy deduplicates at all.
	Enabled() bool
}

// none is the unhashable policy.
type none[S any] struct{}

// None returns a policy that never deduplicates. Every Visit succeeds, so
// cyclic state spaces may be explored forever.
func None[S any]() Set[S] { return none[S]{} }

func (none[S]) Visit(S) bool   { return true }
func (none[S]) Visited(S) bool { return false }
func (none[S]) Len() int       { return 0 }
func (none[S]) Reset()         {}
func (none[S]) Enabled() bool  { return false }
