package game

import "github.com/MVS-Jaithra/chess-game/internal/shared"

// The engine works in the shared value vocabulary; aliases keep call sites
// unqualified.
type (
	Color     = shared.Color
	PieceType = shared.PieceType
	Square    = shared.Square
)

const (
	White = shared.White
	Black = shared.Black
)

const (
	Pawn   = shared.Pawn
	Knight = shared.Knight
	Bishop = shared.Bishop
	Rook   = shared.Rook
	Queen  = shared.Queen
	King   = shared.King
)

func CoordToSquare(coord string) (Square, bool) { return shared.CoordToSquare(coord) }

func SquareFromCoords(rank, file int) (Square, bool) { return shared.SquareFromCoords(rank, file) }

// Piece represents a single piece on the board. A piece's identity is the
// square it occupies; it carries no persistent ID.
type Piece struct {
	Color  Color
	Type   PieceType
	Square Square
}

// Status is the game-level state machine. Checkmate, stalemate and draw are
// terminal: no further moves are accepted.
type Status uint8

const (
	StatusActive Status = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
	StatusDraw
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCheck:
		return "check"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	case StatusDraw:
		return "draw"
	default:
		return "?"
	}
}

func (s Status) Terminal() bool {
	return s == StatusCheckmate || s == StatusStalemate || s == StatusDraw
}

// Move records one accepted move. Records are created when a legal move is
// accepted and never mutated afterward; Captured is set iff the destination
// held an opposing piece, and Promoted marks pawn auto-promotion so undo can
// restore the pawn.
type Move struct {
	From     Square
	To       Square
	Color    Color
	Piece    PieceType
	Captured *Piece
	Promoted bool
}

func (m Move) String() string {
	s := m.From.String() + " " + m.To.String()
	if m.Captured != nil {
		s += " x" + m.Captured.Type.String()
	}
	if m.Promoted {
		s += " =Q"
	}
	return s
}
