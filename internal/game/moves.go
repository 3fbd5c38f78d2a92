package game

// executeMove mutates the grid unconditionally; legality is the caller's
// responsibility. It clears the origin, removes any captured piece, places
// the mover, and auto-promotes a pawn reaching its last rank to a queen,
// flagging the promotion on the move record.
func (e *Engine) executeMove(mv *Move) {
	pc := e.board.pieceAt[mv.From]

	if victim := mv.Captured; victim != nil {
		e.board.pieces[victim.Color][victim.Type] = e.board.pieces[victim.Color][victim.Type].Remove(mv.To)
		e.board.occupancy[victim.Color] = e.board.occupancy[victim.Color].Remove(mv.To)
		e.board.allOcc = e.board.allOcc.Remove(mv.To)
		e.board.pieceAt[mv.To] = nil
	}

	e.board.pieceAt[mv.From] = nil
	pc.Square = mv.To
	e.board.pieceAt[mv.To] = pc

	e.board.pieces[pc.Color][pc.Type] = e.board.pieces[pc.Color][pc.Type].Remove(mv.From).Add(mv.To)
	e.board.occupancy[pc.Color] = e.board.occupancy[pc.Color].Remove(mv.From).Add(mv.To)
	e.board.allOcc = e.board.allOcc.Remove(mv.From).Add(mv.To)

	if pc.Type == Pawn && lastRankFor(pc.Color) == mv.To.Rank() {
		e.board.pieces[pc.Color][Pawn] = e.board.pieces[pc.Color][Pawn].Remove(mv.To)
		pc.Type = Queen
		e.board.pieces[pc.Color][Queen] = e.board.pieces[pc.Color][Queen].Add(mv.To)
		mv.Promoted = true
	}
}

// undoMove is executeMove's exact inverse: the mover returns to From (as a
// pawn again when the move promoted), and the captured piece, if any, is
// restored to To.
func (e *Engine) undoMove(mv *Move) {
	pc := e.board.pieceAt[mv.To]

	if mv.Promoted {
		e.board.pieces[pc.Color][Queen] = e.board.pieces[pc.Color][Queen].Remove(mv.To)
		pc.Type = Pawn
		e.board.pieces[pc.Color][Pawn] = e.board.pieces[pc.Color][Pawn].Add(mv.To)
	}

	e.board.pieceAt[mv.To] = nil
	pc.Square = mv.From
	e.board.pieceAt[mv.From] = pc

	e.board.pieces[pc.Color][pc.Type] = e.board.pieces[pc.Color][pc.Type].Remove(mv.To).Add(mv.From)
	e.board.occupancy[pc.Color] = e.board.occupancy[pc.Color].Remove(mv.To).Add(mv.From)
	e.board.allOcc = e.board.allOcc.Remove(mv.To).Add(mv.From)

	if victim := mv.Captured; victim != nil {
		victim.Square = mv.To
		e.board.pieceAt[mv.To] = victim
		e.board.pieces[victim.Color][victim.Type] = e.board.pieces[victim.Color][victim.Type].Add(mv.To)
		e.board.occupancy[victim.Color] = e.board.occupancy[victim.Color].Add(mv.To)
		e.board.allOcc = e.board.allOcc.Add(mv.To)
	}
}

func lastRankFor(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

func (e *Engine) placePiece(color Color, pt PieceType, sq Square) {
	pc := &Piece{Color: color, Type: pt, Square: sq}
	e.board.pieceAt[sq] = pc
	e.board.pieces[color][pt] = e.board.pieces[color][pt].Add(sq)
	e.board.occupancy[color] = e.board.occupancy[color].Add(sq)
	e.board.allOcc = e.board.allOcc.Add(sq)
}

func (e *Engine) removePiece(pc *Piece, sq Square) {
	e.board.pieces[pc.Color][pc.Type] = e.board.pieces[pc.Color][pc.Type].Remove(sq)
	e.board.occupancy[pc.Color] = e.board.occupancy[pc.Color].Remove(sq)
	e.board.allOcc = e.board.allOcc.Remove(sq)
	e.board.pieceAt[sq] = nil
}
