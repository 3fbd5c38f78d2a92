// Package shared holds the value types common to the rules engine and its
// consumers: colors, piece types, and board squares with algebraic notation.
package shared

import (
	"errors"
	"fmt"
)

// ErrInvalidPosition reports malformed algebraic text or an out-of-range
// coordinate. Callers match it with errors.Is.
var ErrInvalidPosition = errors.New("invalid position")

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) Index() int { return int(c) }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

func (p PieceType) String() string {
	switch p {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("piece(%d)", p)
	}
}

// Square indexes the board 0..63, rank-major from a1.
type Square uint8

func (s Square) Rank() int { return int(s) >> 3 }
func (s Square) File() int { return int(s) & 7 }

func (s Square) String() string {
	file := byte('a' + s.File())
	rank := byte('1' + s.Rank())
	return string([]byte{file, rank})
}

// CoordToSquare parses algebraic notation like "e4". Text must be exactly a
// lowercase file letter a-h followed by a rank digit 1-8.
func CoordToSquare(coord string) (Square, bool) {
	if len(coord) != 2 {
		return 0, false
	}
	file := coord[0]
	rank := coord[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, false
	}
	r := int(rank - '1')
	c := int(file - 'a')
	return Square(r*8 + c), true
}

// ParseSquare is CoordToSquare with an ErrInvalidPosition error for callers
// that propagate rather than branch.
func ParseSquare(coord string) (Square, error) {
	sq, ok := CoordToSquare(coord)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPosition, coord)
	}
	return sq, nil
}

func SquareFromCoords(rank, file int) (Square, bool) {
	if rank < 0 || rank > 7 || file < 0 || file > 7 {
		return 0, false
	}
	return Square(rank*8 + file), true
}

// Line returns the squares strictly between from and to when they share a
// rank, file, or diagonal; nil otherwise.
func Line(from, to Square) []Square {
	dr := to.Rank() - from.Rank()
	df := to.File() - from.File()
	stepR := normalize(dr)
	stepF := normalize(df)

	aligned := false
	switch {
	case dr == 0 && df != 0:
		stepR = 0
		aligned = true
	case df == 0 && dr != 0:
		stepF = 0
		aligned = true
	case abs(dr) == abs(df) && dr != 0:
		aligned = true
	}

	if !aligned {
		return nil
	}

	distance := max(abs(dr), abs(df)) - 1
	if distance <= 0 {
		return nil
	}

	squares := make([]Square, 0, distance)
	rank := from.Rank()
	file := from.File()
	for i := 0; i < distance; i++ {
		rank += stepR
		file += stepF
		sq, ok := SquareFromCoords(rank, file)
		if !ok {
			return nil
		}
		squares = append(squares, sq)
	}
	return squares
}

func normalize(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
