package game

// PieceState is a serializable representation of a Piece.
type PieceState struct {
	Color     Color     `json:"color"`
	ColorName string    `json:"colorName"`
	Type      PieceType `json:"type"`
	TypeName  string    `json:"typeName"`
	Square    Square    `json:"square"`
	Coord     string    `json:"coord"`
}

// BoardState is a serializable representation of the game state.
type BoardState struct {
	Pieces   []PieceState `json:"pieces"`
	Turn     Color        `json:"turn"`
	TurnName string       `json:"turnName"`
	Status   string       `json:"status"`
	InCheck  bool         `json:"inCheck"`
	GameOver bool         `json:"gameOver"`
	LastNote string       `json:"lastNote"`
	Moves    []string     `json:"moves"`
}

// SquareView is one cell of the rendering snapshot.
type SquareView struct {
	Color Color
	Type  PieceType
}

// State returns a serializable representation of the current game state.
func (e *Engine) State() BoardState {
	state := BoardState{
		Pieces:   make([]PieceState, 0, 32),
		Turn:     e.board.turn,
		TurnName: e.board.turn.String(),
		Status:   e.status.String(),
		InCheck:  e.status == StatusCheck || e.status == StatusCheckmate,
		GameOver: e.status.Terminal(),
		LastNote: e.board.lastNote,
		Moves:    make([]string, 0, len(e.history)),
	}

	for _, pc := range e.board.pieceAt {
		if pc == nil {
			continue
		}
		state.Pieces = append(state.Pieces, PieceState{
			Color:     pc.Color,
			ColorName: pc.Color.String(),
			Type:      pc.Type,
			TypeName:  pc.Type.String(),
			Square:    pc.Square,
			Coord:     pc.Square.String(),
		})
	}
	for _, mv := range e.history {
		state.Moves = append(state.Moves, mv.String())
	}
	return state
}

// Snapshot returns a read-only 8x8 view of the board, indexed [rank][file];
// nil marks an empty square.
func (e *Engine) Snapshot() [8][8]*SquareView {
	var grid [8][8]*SquareView
	for _, pc := range e.board.pieceAt {
		if pc == nil {
			continue
		}
		grid[pc.Square.Rank()][pc.Square.File()] = &SquareView{Color: pc.Color, Type: pc.Type}
	}
	return grid
}
