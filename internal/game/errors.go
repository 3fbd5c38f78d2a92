package game

import (
	"errors"

	"github.com/MVS-Jaithra/chess-game/internal/shared"
)

// The error taxonomy is flat: three kinds, matched with errors.Is. Detail is
// attached at the failure site with fmt.Errorf("%w: ...").
var (
	// ErrInvalidPosition: malformed algebraic text or out-of-range coordinate.
	ErrInvalidPosition = shared.ErrInvalidPosition
	// ErrInvalidMove: empty source square, wrong-turn piece, or a destination
	// that is not a legal move (including moves that leave one's own king in
	// check).
	ErrInvalidMove = errors.New("invalid move")
	// ErrIllegalOperation: undo with an empty undo stack, or a move submitted
	// after the game has ended.
	ErrIllegalOperation = errors.New("illegal operation")
)
