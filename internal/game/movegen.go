package game

type moveDelta struct {
	dr int
	df int
}

var (
	rookDirections = [...]moveDelta{
		{dr: 1, df: 0},
		{dr: -1, df: 0},
		{dr: 0, df: 1},
		{dr: 0, df: -1},
	}
	bishopDirections = [...]moveDelta{
		{dr: 1, df: 1},
		{dr: 1, df: -1},
		{dr: -1, df: 1},
		{dr: -1, df: -1},
	}
	knightOffsets = [...]moveDelta{
		{dr: 2, df: 1},
		{dr: 1, df: 2},
		{dr: -1, df: 2},
		{dr: -2, df: 1},
		{dr: -2, df: -1},
		{dr: -1, df: -2},
		{dr: 1, df: -2},
		{dr: 2, df: -1},
	}
	kingOffsets = [...]moveDelta{
		{dr: 1, df: 0}, {dr: 1, df: 1}, {dr: 0, df: 1}, {dr: -1, df: 1},
		{dr: -1, df: 0}, {dr: -1, df: -1}, {dr: 0, df: -1}, {dr: 1, df: -1},
	}
)

// generateMoves produces the pseudo-legal destinations for pc: movement
// geometry and blocking/capture rules only, ignoring king safety and whose
// turn it is.
func (e *Engine) generateMoves(pc *Piece) Bitboard {
	if pc == nil {
		return 0
	}

	switch pc.Type {
	case Pawn:
		return e.generatePawnMoves(pc)
	case Knight:
		return e.generateOffsetMoves(pc, knightOffsets[:])
	case Bishop:
		return e.generateSlidingMoves(pc, bishopDirections[:])
	case Rook:
		return e.generateSlidingMoves(pc, rookDirections[:])
	case Queen:
		return e.generateSlidingMoves(pc, rookDirections[:]) |
			e.generateSlidingMoves(pc, bishopDirections[:])
	case King:
		return e.generateOffsetMoves(pc, kingOffsets[:])
	default:
		return 0
	}
}

func (e *Engine) generatePawnMoves(pc *Piece) Bitboard {
	var moves Bitboard

	rank := pc.Square.Rank()
	file := pc.Square.File()
	dir := 1
	startRank := 1

	if pc.Color == Black {
		dir = -1
		startRank = 6
	}

	if target, ok := SquareFromCoords(rank+dir, file); ok && e.board.pieceAt[target] == nil {
		moves = moves.Add(target)
		if rank == startRank {
			if doubleSq, ok := SquareFromCoords(rank+2*dir, file); ok && e.board.pieceAt[doubleSq] == nil {
				moves = moves.Add(doubleSq)
			}
		}
	}

	for _, df := range []int{-1, 1} {
		if target, ok := SquareFromCoords(rank+dir, file+df); ok {
			if victim := e.board.pieceAt[target]; victim != nil && victim.Color != pc.Color {
				moves = moves.Add(target)
			}
		}
	}

	return moves
}

func (e *Engine) generateOffsetMoves(pc *Piece, offsets []moveDelta) Bitboard {
	var moves Bitboard
	rank := pc.Square.Rank()
	file := pc.Square.File()

	for _, delta := range offsets {
		if target, ok := SquareFromCoords(rank+delta.dr, file+delta.df); ok {
			occupant := e.board.pieceAt[target]
			if occupant == nil || occupant.Color != pc.Color {
				moves = moves.Add(target)
			}
		}
	}
	return moves
}

func (e *Engine) generateSlidingMoves(pc *Piece, directions []moveDelta) Bitboard {
	var moves Bitboard
	startRank := pc.Square.Rank()
	startFile := pc.Square.File()

	for _, delta := range directions {
		rank := startRank + delta.dr
		file := startFile + delta.df
		for {
			target, ok := SquareFromCoords(rank, file)
			if !ok {
				break
			}
			occupant := e.board.pieceAt[target]
			if occupant == nil {
				moves = moves.Add(target)
				rank += delta.dr
				file += delta.df
				continue
			}
			if occupant.Color != pc.Color {
				moves = moves.Add(target)
			}
			break
		}
	}
	return moves
}
