package game

func (e *Engine) findKingSquare(color Color) (Square, bool) {
	bb := e.board.pieces[color][King]
	if bb.Empty() {
		return 0, false
	}
	sq, _ := bb.PopLSB()
	return sq, true
}

func (e *Engine) isSquareAttackedBy(color Color, target Square) bool {
	attacked := false
	e.board.occupancy[color].Iter(func(sq Square) {
		if attacked {
			return
		}
		attacker := e.board.pieceAt[sq]
		if attacker != nil && e.generateMoves(attacker).Has(target) {
			attacked = true
		}
	})
	return attacked
}

func (e *Engine) isKingInCheck(color Color) bool {
	kingSq, ok := e.findKingSquare(color)
	if !ok {
		return false
	}
	return e.isSquareAttackedBy(color.Opposite(), kingSq)
}

// wouldLeaveKingInCheck simulates the move with executeMove, tests check, and
// rolls back with undoMove. The rollback is exact: capture, vacated origin and
// occupied destination are restored identically, promotion included.
func (e *Engine) wouldLeaveKingInCheck(pc *Piece, from, to Square) bool {
	if pc == nil {
		return true
	}
	mv := Move{From: from, To: to, Color: pc.Color, Piece: pc.Type, Captured: e.board.pieceAt[to]}
	e.executeMove(&mv)
	inCheck := e.isKingInCheck(pc.Color)
	e.undoMove(&mv)
	return inCheck
}

// legalMoves filters every pseudo-legal candidate for color through the
// king-safety simulation. A move that leaves or places one's own king in
// check is illegal, even to escape check.
func (e *Engine) legalMoves(color Color) []Move {
	var out []Move
	e.board.occupancy[color].Iter(func(from Square) {
		pc := e.board.pieceAt[from]
		e.generateMoves(pc).Iter(func(to Square) {
			if e.wouldLeaveKingInCheck(pc, from, to) {
				return
			}
			out = append(out, Move{
				From:     from,
				To:       to,
				Color:    pc.Color,
				Piece:    pc.Type,
				Captured: e.board.pieceAt[to],
			})
		})
	})
	return out
}

// hasAnyLegalMove is the short-circuiting form of legalMoves.
func (e *Engine) hasAnyLegalMove(color Color) bool {
	found := false
	e.board.occupancy[color].Iter(func(from Square) {
		if found {
			return
		}
		pc := e.board.pieceAt[from]
		e.generateMoves(pc).Iter(func(to Square) {
			if found {
				return
			}
			if !e.wouldLeaveKingInCheck(pc, from, to) {
				found = true
			}
		})
	})
	return found
}

func (e *Engine) isLegalDestination(pc *Piece, from, to Square) bool {
	if !e.generateMoves(pc).Has(to) {
		return false
	}
	return !e.wouldLeaveKingInCheck(pc, from, to)
}
