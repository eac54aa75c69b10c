package frontier

// Compile time check to ensure Deque satisfies the Frontier interface.
var _ Frontier[int] = (*Deque[int])(nil)

// Deque is the unguided frontier: a growable ring buffer that pops from the
// front (FIFO, breadth-first) or from the back (LIFO, depth-first). The
// discipline can be switched at any time; queued items are kept.
type Deque[T any] struct {
	buf  []T
	head int
	size int
	lifo bool
}

// NewQueue creates a FIFO deque with the given initial capacity.
func NewQueue[T any](capacity int) *Deque[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Deque[T]{buf: make([]T, capacity)}
}

// NewStack creates a LIFO deque with the given initial capacity.
func NewStack[T any](capacity int) *Deque[T] {
	d := NewQueue[T](capacity)
	d.lifo = true
	return d
}

// SetLIFO switches between LIFO (true) and FIFO (false) popping.
func (d *Deque[T]) SetLIFO(lifo bool) { d.lifo = lifo }

// LIFO reports whether Pop takes from the back.
func (d *Deque[T]) LIFO() bool { return d.lifo }

// Push appends item at the back.
func (d *Deque[T]) Push(item T) {
	if d.size == len(d.buf) {
		d.grow()
	}
	d.buf[(d.head+d.size)%len(d.buf)] = item
	d.size++
}

// Pop removes the next item per the current discipline.
func (d *Deque[T]) Pop() (T, bool) {
	if d.lifo {
		return d.PopBack()
	}
	return d.PopFront()
}

// PopFront removes and returns the oldest item.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	item := d.buf[d.head]
	d.buf[d.head] = zero // release for GC
	d.head = (d.head + 1) % len(d.buf)
	d.size--
	return item, true
}

// PopBack removes and returns the newest item.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	i := (d.head + d.size - 1) % len(d.buf)
	item := d.buf[i]
	d.buf[i] = zero
	d.size--
	return item, true
}

// Len returns the number of queued items.
func (d *Deque[T]) Len() int { return d.size }

// Reset clears the deque for reuse. The discipline is kept.
func (d *Deque[T]) Reset() {
	clear(d.buf)
	d.head = 0
	d.size = 0
}

func (d *Deque[T]) grow() {
	newBuf := make([]T, len(d.buf)*2)
	// unwrap so the head lands at index 0
	n := copy(newBuf, d.buf[d.head:])
	copy(newBuf[n:], d.buf[:d.head])
	d.buf = newBuf
	d.head = 0
}
