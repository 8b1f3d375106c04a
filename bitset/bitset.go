// Package bitset provides a fixed-capacity bit set tuned for listing the
// indices of set bits in block-allocated structures.
//
// Bits are stored in 32-bit words together with a 32-bit summary whose bit w
// is set iff word w is nonzero. Tests and mutations are O(1), whole-set algebra
// is O(words) without allocation, and enumeration skips zero words entirely, so
// listing a sparse set costs time proportional to its population rather than
// its capacity.
//
// Ordering: index i lives in word i>>5 at mask 1<<(31-(i&31)), i.e. the most
// significant bit of a word holds its lowest index. Words are visited in
// ascending order and, within a word, bits are taken with a leading-zero count.
// FindFirst, ClearFirst, All and Lister therefore all yield indices in
// ascending order.
//
// A BitSet is not safe for concurrent use, and mutating it while an All
// sequence or a Lister is in flight is unsupported. Copy into a scratch set
// first when the underlying set has to change during a walk.
package bitset

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

const (
	// WordBits is the number of bits per storage word.
	WordBits = 32
	// MaxCapacity is the largest capacity whose words fit the 32-bit summary.
	MaxCapacity = WordBits * WordBits
)

var (
	// ErrInvalidCapacity is raised when a capacity is not a positive multiple of 32 up to MaxCapacity.
	ErrInvalidCapacity = errors.New("bitset: invalid capacity")
	// ErrCapacityMismatch is raised when set algebra mixes operands of different capacity.
	ErrCapacityMismatch = errors.New("bitset: capacity mismatch")
)

// BitSet is a set of non-negative indices below a fixed capacity.
type BitSet struct {
	summary uint32
	words   []uint32
}

// lz makes a mask with n leading zeroes.
func lz(n int) uint32 {
	return 1 << (31 - n)
}

// RoundCapacity rounds n up to the next multiple of WordBits. It does not
// enforce MaxCapacity.
func RoundCapacity(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + WordBits - 1) / WordBits * WordBits
}

// New allocates an empty BitSet. It panics with ErrInvalidCapacity unless
// capacity is a positive multiple of 32 no larger than MaxCapacity.
func New(capacity int) *BitSet {
	if capacity <= 0 || capacity%WordBits != 0 || capacity > MaxCapacity {
		panic(fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity))
	}
	return &BitSet{words: make([]uint32, capacity/WordBits)}
}

// Size returns the capacity in bits.
func (b *BitSet) Size() int {
	return WordBits * len(b.words)
}

// Mark sets bit i.
func (b *BitSet) Mark(i int) {
	w := i >> 5
	b.words[w] |= lz(i & 31)
	b.summary |= lz(w)
}

// Clear clears bit i.
func (b *BitSet) Clear(i int) {
	w := i >> 5
	b.words[w] &^= lz(i & 31)
	if b.words[w] == 0 {
		b.summary &^= lz(w)
	}
}

// MarkAll sets every bit.
func (b *BitSet) MarkAll() {
	for w := range b.words {
		b.words[w] = ^uint32(0)
		b.summary |= lz(w)
	}
}

// ClearAll clears every bit.
func (b *BitSet) ClearAll() {
	b.summary = 0
	clear(b.words)
}

// Test reports whether bit i is set.
func (b *BitSet) Test(i int) bool {
	return b.words[i>>5]&lz(i&31) != 0
}

// Empty reports whether no bit is set. Only the summary is inspected.
func (b *BitSet) Empty() bool {
	return b.summary == 0
}

// Count returns the number of set bits, visiting nonzero words only.
func (b *BitSet) Count() int {
	c := 0
	for rem := b.summary; rem != 0; {
		w := bits.LeadingZeros32(rem)
		rem ^= lz(w)
		c += bits.OnesCount32(b.words[w])
	}
	return c
}

// Clone returns an independent copy of b.
func (b *BitSet) Clone() *BitSet {
	result := &BitSet{
		summary: b.summary,
		words:   make([]uint32, len(b.words)),
	}
	for rem := b.summary; rem != 0; {
		w := bits.LeadingZeros32(rem)
		rem ^= lz(w)
		result.words[w] = b.words[w]
	}
	return result
}

// CopyFrom overwrites b with the contents of other without allocating.
func (b *BitSet) CopyFrom(other *BitSet) {
	b.mustMatch(other)
	copy(b.words, other.words)
	b.summary = other.summary
}

// Equal reports whether b and other have the same capacity and set bits.
func (b *BitSet) Equal(other *BitSet) bool {
	if len(b.words) != len(other.words) || b.summary != other.summary {
		return false
	}
	for rem := b.summary; rem != 0; {
		w := bits.LeadingZeros32(rem)
		rem ^= lz(w)
		if b.words[w] != other.words[w] {
			return false
		}
	}
	return true
}

// FindFirst returns the lowest set index without removing it.
func (b *BitSet) FindFirst() (int, bool) {
	if b.summary == 0 {
		return 0, false
	}
	w := bits.LeadingZeros32(b.summary)
	return w<<5 | bits.LeadingZeros32(b.words[w]), true
}

// ClearFirst removes and returns the lowest set index.
func (b *BitSet) ClearFirst() (int, bool) {
	if b.summary == 0 {
		return 0, false
	}
	w := bits.LeadingZeros32(b.summary)
	bit := bits.LeadingZeros32(b.words[w])
	b.words[w] ^= lz(bit)
	if b.words[w] == 0 {
		b.summary &^= lz(w)
	}
	return w<<5 | bit, true
}

// Union sets b to b ∪ other.
func (b *BitSet) Union(other *BitSet) {
	b.mustMatch(other)
	b.summary |= other.summary
	for rem := other.summary; rem != 0; {
		w := bits.LeadingZeros32(rem)
		rem ^= lz(w)
		b.words[w] |= other.words[w]
	}
}

// Intersect sets b to b ∩ other.
func (b *BitSet) Intersect(other *BitSet) {
	b.mustMatch(other)
	for rem := b.summary; rem != 0; {
		w := bits.LeadingZeros32(rem)
		rem ^= lz(w)
		b.words[w] &= other.words[w]
		if b.words[w] == 0 {
			b.summary &^= lz(w)
		}
	}
}

// Xor sets b to the symmetric difference of b and other.
func (b *BitSet) Xor(other *BitSet) {
	b.mustMatch(other)
	for rem := other.summary; rem != 0; {
		w := bits.LeadingZeros32(rem)
		rem ^= lz(w)
		b.words[w] ^= other.words[w]
		if b.words[w] == 0 {
			b.summary &^= lz(w)
		} else {
			b.summary |= lz(w)
		}
	}
}

// Negate complements every bit and rebuilds the summary.
func (b *BitSet) Negate() {
	b.summary = 0
	for w := range b.words {
		b.words[w] = ^b.words[w]
		if b.words[w] != 0 {
			b.summary |= lz(w)
		}
	}
}

// All returns a sequence of the set indices in ascending order. Each call to
// the returned sequence starts over from the current contents of b.
func (b *BitSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for rem := b.summary; rem != 0; {
			w := bits.LeadingZeros32(rem)
			rem ^= lz(w)
			for v := b.words[w]; v != 0; {
				bit := bits.LeadingZeros32(v)
				v ^= lz(bit)
				if !yield(w<<5 | bit) {
					return
				}
			}
		}
	}
}

// String formats the set indices, e.g. "{0 5 33}".
func (b *BitSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for i := range b.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, i)
	}
	sb.WriteByte('}')
	return sb.String()
}

func (b *BitSet) mustMatch(other *BitSet) {
	if len(b.words) != len(other.words) {
		panic(fmt.Errorf("%w: %d != %d", ErrCapacityMismatch, b.Size(), other.Size()))
	}
}
