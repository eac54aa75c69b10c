// Package frontier implements the open sets used by the search managers.
//
// Two frontier types are provided:
//   - Deque: first-in-first-out (breadth-first) or last-in-first-out
//     (depth-first), switchable at run time
//   - PriorityQueue: min-priority with insertion-order tie-break (guided, A*)
//
// None of the types are safe for concurrent use. A frontier is owned by a
// single manager.
package frontier

// Frontier is an ordered collection of items awaiting exploration.
//
// Insertion is type specific: Deque.Push takes the item alone,
// PriorityQueue.Push takes the item and its key.
type Frontier[T any] interface {
	// Pop removes the next item according to the frontier's discipline.
	Pop() (T, bool)
	// Len returns the number of queued items.
	Len() int
	// Reset drops all queued items, keeping capacity.
	Reset()
}
