package game

import "math/bits"

// Bitboard represents a 64-bit set of squares.
type Bitboard uint64

func BB(s Square) Bitboard { return 1 << s }

func (b Bitboard) Empty() bool { return b == 0 }

func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

func (b Bitboard) PopLSB() (Square, Bitboard) {
	if b == 0 {
		return 0, 0
	}
	idx := Square(bits.TrailingZeros64(uint64(b)))
	return idx, b & (b - 1)
}

func (b Bitboard) Has(s Square) bool { return b&(1<<s) != 0 }

func (b Bitboard) Add(s Square) Bitboard { return b | (1 << s) }

func (b Bitboard) Remove(s Square) Bitboard { return b &^ (1 << s) }

func (b Bitboard) Iter(fn func(Square)) {
	bb := b
	for bb != 0 {
		var sq Square
		sq, bb = bb.PopLSB()
		fn(sq)
	}
}
