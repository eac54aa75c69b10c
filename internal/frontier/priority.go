package frontier

import "cmp"

// Compile time check to ensure PriorityQueue satisfies the Frontier interface.
var _ Frontier[int] = (*PriorityQueue[int, int64])(nil)

// item is a queued value with its key.
// seq is the insertion sequence number used to break ties.
type item[T any, K cmp.Ordered] struct {
	value T
	key   K
	seq   uint64
}

// PriorityQueue is a binary min-heap ordered by (key, insertion sequence).
// Keys keep their own type, so integer keys compare exactly at any
// magnitude. Equal keys pop in insertion order, which keeps exploration
// reproducible across runs.
// It does NOT implement container/heap to avoid interface overhead.
type PriorityQueue[T any, K cmp.Ordered] struct {
	items []item[T, K]
	seq   uint64
}

// NewPriorityQueue creates a min-priority queue with the given initial capacity.
func NewPriorityQueue[T any, K cmp.Ordered](capacity int) *PriorityQueue[T, K] {
	return &PriorityQueue[T, K]{items: make([]item[T, K], 0, max(capacity, 0))}
}

// Push inserts value under key while maintaining the heap invariant.
func (pq *PriorityQueue[T, K]) Push(value T, key K) {
	pq.items = append(pq.items, item[T, K]{value: value, key: key, seq: pq.seq})
	pq.seq++
	pq.siftUp(len(pq.items) - 1)
}

// Pop removes and returns the value with the lowest key.
func (pq *PriorityQueue[T, K]) Pop() (T, bool) {
	it, ok := pq.pop()
	return it.value, ok
}

func (pq *PriorityQueue[T, K]) pop() (item[T, K], bool) {
	n := len(pq.items)
	if n == 0 {
		return item[T, K]{}, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items[n-1] = item[T, K]{} // zero out for GC
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

func (pq *PriorityQueue[T, K]) top() (item[T, K], bool) {
	if len(pq.items) == 0 {
		return item[T, K]{}, false
	}
	return pq.items[0], true
}

// Len returns the number of items in the queue.
func (pq *PriorityQueue[T, K]) Len() int { return len(pq.items) }

// Reset clears the queue for reuse. The sequence counter restarts as well.
func (pq *PriorityQueue[T, K]) Reset() {
	clear(pq.items)
	pq.items = pq.items[:0]
	pq.seq = 0
}

func (pq *PriorityQueue[T, K]) less(i, j int) bool {
	a, b := &pq.items[i], &pq.items[j]
	if c := cmp.Compare(a.key, b.key); c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}

func (pq *PriorityQueue[T, K]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(i, p) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *PriorityQueue[T, K]) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		r := l + 1
		if r < n && pq.less(r, l) {
			best = r
		}
		if !pq.less(best, i) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}
