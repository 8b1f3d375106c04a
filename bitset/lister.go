package bitset

import "math/bits"

// Lister walks the set indices of a BitSet without allocating. It is a value
// type meant to live on the stack of hot loops; Reset rewinds it to the first
// index so one candidate set can be scanned several times.
//
//	l := bitset.NewLister(candidates)
//	for i, ok := l.Next(); ok; i, ok = l.Next() {
//		...
//	}
type Lister struct {
	bs        *BitSet
	remainder uint32
	w         int
	v         uint32
}

// NewLister returns a Lister positioned before the lowest set index of bs.
func NewLister(bs *BitSet) Lister {
	l := Lister{bs: bs}
	l.Reset()
	return l
}

// Next returns the next set index, or false once the set is exhausted.
func (l *Lister) Next() (int, bool) {
	if l.remainder == 0 {
		return -1, false
	}
	bit := bits.LeadingZeros32(l.v)
	idx := l.w<<5 | bit
	l.v ^= lz(bit)
	if l.v == 0 {
		l.remainder ^= lz(l.w)
		if l.remainder != 0 {
			l.w = bits.LeadingZeros32(l.remainder)
			l.v = l.bs.words[l.w]
		}
	}
	return idx, true
}

// Reset rewinds the Lister to the current first set index of its BitSet.
func (l *Lister) Reset() {
	l.remainder = l.bs.summary
	if l.remainder != 0 {
		l.w = bits.LeadingZeros32(l.remainder)
		l.v = l.bs.words[l.w]
	} else {
		l.w = 0
		l.v = 0
	}
}
