package visited

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Compile time check.
var _ Set[int] = (*BitmapSet[int])(nil)

// BitmapSet tracks visited states as a compressed 64-bit roaring bitmap.
//
// It suits state spaces that map onto dense integer identifiers (grid cells,
// permutation ranks, packed board encodings), where it uses far less memory
// than a hash set.
type BitmapSet[S any] struct {
	index func(S) uint64
	rb    *roaring64.Bitmap
}

// NewBitmap creates a bitmap-backed visited set. index must be injective over
// the reachable states: distinct states must map to distinct identifiers.
func NewBitmap[S any](index func(S) uint64) *BitmapSet[S] {
	if index == nil {
		panic("visited: nil index function")
	}
	return &BitmapSet[S]{index: index, rb: roaring64.New()}
}

// Visit implements Set.
func (b *BitmapSet[S]) Visit(s S) bool {
	return b.rb.CheckedAdd(b.index(s))
}

// Visited implements Set.
func (b *BitmapSet[S]) Visited(s S) bool {
	return b.rb.Contains(b.index(s))
}

// Len implements Set.
func (b *BitmapSet[S]) Len() int {
	return int(b.rb.GetCardinality())
}

// Reset implements Set.
func (b *BitmapSet[S]) Reset() { b.rb.Clear() }

// Enabled implements Set.
func (b *BitmapSet[S]) Enabled() bool { return true }

// SizeInBytes returns the serialized size of the underlying bitmap, a close
// estimate of its memory footprint.
func (b *BitmapSet[S]) SizeInBytes() uint64 {
	return b.rb.GetSizeInBytes()
}
