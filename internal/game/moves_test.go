package game

import (
	"testing"

	"github.com/MVS-Jaithra/chess-game/internal/testutil"
)

func TestPawnDoubleStepBlocked(t *testing.T) {
	tests := []struct {
		name    string
		blocker string
		want    []string
	}{
		{"clear file", "", []string{"e3", "e4"}},
		{"blocked on e3", "e3", nil},
		{"blocked on e4", "e4", []string{"e3"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			eng := NewEngine()
			clearBoard(eng)
			eng.placePiece(White, King, mustSquare(t, "a1"))
			eng.placePiece(Black, King, mustSquare(t, "a8"))
			eng.placePiece(White, Pawn, mustSquare(t, "e2"))
			if tt.blocker != "" {
				eng.placePiece(Black, Knight, mustSquare(t, tt.blocker))
			}

			pawn := eng.board.pieceAt[mustSquare(t, "e2")]
			moves := eng.generateMoves(pawn)
			if got := moves.Count(); got != len(tt.want) {
				t.Fatalf("expected %d pawn moves, got %d", len(tt.want), got)
			}
			for _, coord := range tt.want {
				if !moves.Has(mustSquare(t, coord)) {
					t.Errorf("expected %s among pawn moves", coord)
				}
			}
		})
	}
}

func TestPawnCapturesDiagonallyOnly(t *testing.T) {
	eng := NewEngine()
	clearBoard(eng)
	eng.placePiece(White, King, mustSquare(t, "a1"))
	eng.placePiece(Black, King, mustSquare(t, "a8"))
	eng.placePiece(White, Pawn, mustSquare(t, "e4"))
	eng.placePiece(Black, Pawn, mustSquare(t, "d5"))
	eng.placePiece(Black, Pawn, mustSquare(t, "e5"))

	pawn := eng.board.pieceAt[mustSquare(t, "e4")]
	moves := eng.generateMoves(pawn)

	testutil.AssertTrue(t, moves.Has(mustSquare(t, "d5")), "diagonal capture must be generated")
	testutil.AssertFalse(t, moves.Has(mustSquare(t, "e5")), "pawn cannot capture straight ahead")
	testutil.AssertFalse(t, moves.Has(mustSquare(t, "f5")), "no capture without a victim")
}

func TestPawnAutoPromotesToQueen(t *testing.T) {
	eng := NewEngine()
	clearBoard(eng)
	eng.placePiece(White, King, mustSquare(t, "e1"))
	eng.placePiece(Black, King, mustSquare(t, "h6"))
	eng.placePiece(White, Pawn, mustSquare(t, "a7"))
	eng.board.turn = White
	eng.updateGameStatus()

	if err := eng.SubmitMove(mustSquare(t, "a7"), mustSquare(t, "a8")); err != nil {
		t.Fatalf("promotion move: %v", err)
	}

	pc := eng.board.pieceAt[mustSquare(t, "a8")]
	if pc == nil || pc.Type != Queen || pc.Color != White {
		t.Fatalf("expected a white queen on a8, got %+v", pc)
	}
	testutil.AssertTrue(t, eng.board.pieces[White][Queen].Has(mustSquare(t, "a8")), "queen bitboard must track promotion")
	testutil.AssertTrue(t, eng.board.pieces[White][Pawn].Empty(), "pawn bitboard must be cleared")

	history := eng.History()
	if len(history) == 0 || !history[len(history)-1].Promoted {
		t.Fatal("promotion must be recorded on the move")
	}
}

func TestExecuteUndoIsExactInverse(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, eng *Engine)
		from  string
		to    string
	}{
		{
			name:  "quiet move",
			setup: func(t *testing.T, eng *Engine) {},
			from:  "g1",
			to:    "f3",
		},
		{
			name: "capture",
			setup: func(t *testing.T, eng *Engine) {
				playMoves(t, eng, "e2", "e4", "d7", "d5")
			},
			from: "e4",
			to:   "d5",
		},
		{
			name: "promotion with capture",
			setup: func(t *testing.T, eng *Engine) {
				clearBoard(eng)
				eng.placePiece(White, King, mustSquare(t, "e1"))
				eng.placePiece(Black, King, mustSquare(t, "h6"))
				eng.placePiece(White, Pawn, mustSquare(t, "a7"))
				eng.placePiece(Black, Rook, mustSquare(t, "b8"))
				eng.board.turn = White
			},
			from: "a7",
			to:   "b8",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			eng := NewEngine()
			tt.setup(t, eng)
			before := fingerprint(eng)

			pc := eng.board.pieceAt[mustSquare(t, tt.from)]
			if pc == nil {
				t.Fatalf("no piece at %s", tt.from)
			}
			mv := Move{
				From:     mustSquare(t, tt.from),
				To:       mustSquare(t, tt.to),
				Color:    pc.Color,
				Piece:    pc.Type,
				Captured: eng.board.pieceAt[mustSquare(t, tt.to)],
			}
			eng.executeMove(&mv)
			eng.undoMove(&mv)

			testutil.AssertEqual(t, fingerprint(eng), before, "undoMove must restore the prior board bit-for-bit")
		})
	}
}

func TestUndoRevertsPromotion(t *testing.T) {
	eng := NewEngine()
	clearBoard(eng)
	eng.placePiece(White, King, mustSquare(t, "e1"))
	eng.placePiece(Black, King, mustSquare(t, "h6"))
	eng.placePiece(White, Pawn, mustSquare(t, "a7"))
	eng.board.turn = White
	eng.updateGameStatus()
	before := fingerprint(eng)

	playMoves(t, eng, "a7", "a8")
	if err := eng.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}

	testutil.AssertEqual(t, fingerprint(eng), before, "undo must restore the pawn, not keep the queen")
	pc := eng.board.pieceAt[mustSquare(t, "a7")]
	if pc == nil || pc.Type != Pawn {
		t.Fatalf("expected the pawn back on a7, got %+v", pc)
	}
}

func TestUndoRestoresCapturedPiece(t *testing.T) {
	eng := NewEngine()
	playMoves(t, eng, "e2", "e4", "d7", "d5")
	before := fingerprint(eng)

	playMoves(t, eng, "e4", "d5")
	if err := eng.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}

	testutil.AssertEqual(t, fingerprint(eng), before, "undo must restore the captured pawn to d5")
	if eng.Turn() != White {
		t.Fatalf("after undo white should be to move again, got %s", eng.Turn())
	}
}
