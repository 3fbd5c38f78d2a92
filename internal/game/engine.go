// Package game implements the chess rules engine: board state, legal move
// validation, check/checkmate/stalemate detection, and a reversible move
// history.
package game

import (
	"fmt"

	"github.com/MVS-Jaithra/chess-game/internal/clock"
)

// Engine owns the board, the turn order, the move history and undo stack,
// and the game-status state machine. It is single-threaded by contract:
// callers submit at most one move at a time.
type Engine struct {
	board   Board
	history []Move
	undos   []Move
	status  Status
	clock   *clock.Clock
}

// Board is the 8x8 grid plus derived occupancy bookkeeping. Exactly one king
// per color is present until a terminal status is reached; no two pieces
// share a square.
type Board struct {
	pieces    [2][6]Bitboard
	occupancy [2]Bitboard
	allOcc    Bitboard
	pieceAt   [64]*Piece
	turn      Color
	lastNote  string
}

// NewEngine creates an engine set up with the standard starting position.
func NewEngine() *Engine {
	e := &Engine{}
	e.Restart()
	return e
}

// AttachClock hands the engine the countdown clock to switch on each
// accepted move and reset on restart. The engine never starts or stops it.
func (e *Engine) AttachClock(c *clock.Clock) { e.clock = c }

// Restart reinitializes the board to the standard starting position, clears
// history and the undo stack, gives white the move, and resets the clock.
func (e *Engine) Restart() {
	e.board = Board{}
	e.history = e.history[:0]
	e.undos = e.undos[:0]

	setup := func(color Color, backRank, pawnRank int) {
		order := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
		for file, pt := range order {
			e.placePiece(color, pt, Square(backRank*8+file))
		}
		for file := 0; file < 8; file++ {
			e.placePiece(color, Pawn, Square(pawnRank*8+file))
		}
	}

	setup(Black, 7, 6)
	setup(White, 0, 1)
	e.board.turn = White
	e.status = StatusActive
	e.board.lastNote = "new game"
	if e.clock != nil {
		e.clock.Reset()
	}
}

// SubmitMove validates and applies a move for the side to move. Rejection
// leaves every piece of state exactly as it was; on success the move is
// recorded, the turn flips, the clock switches sides, and the status is
// recomputed for the opponent.
func (e *Engine) SubmitMove(from, to Square) error {
	if e.status.Terminal() {
		return fmt.Errorf("%w: game is over (%s)", ErrIllegalOperation, e.status)
	}

	pc := e.board.pieceAt[from]
	if pc == nil {
		return fmt.Errorf("%w: no piece at %s", ErrInvalidMove, from)
	}
	if pc.Color != e.board.turn {
		return fmt.Errorf("%w: it is %s's turn", ErrInvalidMove, e.board.turn)
	}
	if !e.isLegalDestination(pc, from, to) {
		return fmt.Errorf("%w: %s cannot move %s %s", ErrInvalidMove, pc.Color, from, to)
	}

	mv := Move{From: from, To: to, Color: pc.Color, Piece: pc.Type, Captured: e.board.pieceAt[to]}
	e.executeMove(&mv)
	e.history = append(e.history, mv)
	e.undos = append(e.undos, mv)
	e.flipTurn()
	e.updateGameStatus()
	return nil
}

// Undo reverses the most recent move. The popped record stays in the history
// permanently but leaves the undo stack for good: there is no redo.
func (e *Engine) Undo() error {
	if len(e.undos) == 0 {
		return fmt.Errorf("%w: nothing to undo", ErrIllegalOperation)
	}
	mv := e.undos[len(e.undos)-1]
	e.undos = e.undos[:len(e.undos)-1]
	e.undoMove(&mv)
	e.flipTurn()
	e.updateGameStatus()
	e.board.lastNote = fmt.Sprintf("undid %s; %s", mv, e.board.lastNote)
	return nil
}

func (e *Engine) flipTurn() {
	e.board.turn = e.board.turn.Opposite()
	if e.clock != nil {
		e.clock.SwitchPlayer()
	}
}

// updateGameStatus recomputes the status for the side to move: no legal move
// means checkmate when in check, stalemate otherwise.
func (e *Engine) updateGameStatus() {
	current := e.board.turn
	inCheck := e.isKingInCheck(current)
	hasMove := e.hasAnyLegalMove(current)

	switch {
	case !hasMove && inCheck:
		e.status = StatusCheckmate
		e.board.lastNote = fmt.Sprintf("checkmate - %s wins", current.Opposite())
	case !hasMove:
		e.status = StatusStalemate
		e.board.lastNote = "stalemate"
	case inCheck:
		e.status = StatusCheck
		e.board.lastNote = fmt.Sprintf("%s to move (in check)", current)
	default:
		e.status = StatusActive
		e.board.lastNote = fmt.Sprintf("%s's turn", current)
	}
}

// Status reports the current game status.
func (e *Engine) Status() Status { return e.status }

// Turn reports the side to move.
func (e *Engine) Turn() Color { return e.board.turn }

// InCheck reports whether the side to move is in check.
func (e *Engine) InCheck() bool { return e.isKingInCheck(e.board.turn) }

// LastNote is a human-readable summary of the most recent transition.
func (e *Engine) LastNote() string { return e.board.lastNote }

// History returns a copy of every accepted move, oldest first. Undone moves
// remain in the history.
func (e *Engine) History() []Move {
	return append([]Move(nil), e.history...)
}

// LegalMoves enumerates the fully legal moves for color.
func (e *Engine) LegalMoves(color Color) []Move { return e.legalMoves(color) }
