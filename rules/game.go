package rules

import "slices"

// ClickResult reports which transition a click caused.
type ClickResult int

const (
	// ClickIgnored: nothing was selected and the click did not pick up a piece.
	ClickIgnored ClickResult = iota
	// ClickSelected: a piece of the side to move is now selected.
	ClickSelected
	// ClickMoved: the selected piece moved and the turn passed.
	ClickMoved
	// ClickCleared: the click dropped the previous selection.
	ClickCleared
)

func (r ClickResult) String() string {
	switch r {
	case ClickSelected:
		return "selected"
	case ClickMoved:
		return "moved"
	case ClickCleared:
		return "cleared"
	default:
		return "ignored"
	}
}

// Game owns the board, the side to move and the current selection.
// It is not safe for concurrent use; front ends drive it from their
// single update loop.
type Game struct {
	board        Board
	turn         Color
	selected     Square
	hasSelected  bool
	destinations []Square
}

// NewGame starts from the standard position with White to move.
func NewGame() *Game {
	return &Game{
		board: NewBoard(),
		turn:  White,
	}
}

// Board returns a snapshot of the grid.
func (g *Game) Board() Board { return g.board }

func (g *Game) Turn() Color { return g.turn }

func (g *Game) PieceAt(sq Square) Piece { return g.board.PieceAt(sq) }

// Selection returns the selected square, if any.
func (g *Game) Selection() (Square, bool) {
	return g.selected, g.hasSelected
}

// LegalDestinations returns a copy of the cached destinations for the
// current selection. It is empty when nothing is selected.
func (g *Game) LegalDestinations() []Square {
	return slices.Clone(g.destinations)
}

// IsDestination reports whether sq is one of the cached destinations.
func (g *Game) IsDestination(sq Square) bool {
	return slices.Contains(g.destinations, sq)
}

// HandleSquareClicked is the only way to change the game. A click on a
// cached destination plays the move; a click on a piece of the side to
// move selects it; anything else clears the selection.
func (g *Game) HandleSquareClicked(sq Square) ClickResult {
	if g.hasSelected && g.IsDestination(sq) {
		g.move(g.selected, sq)
		return ClickMoved
	}

	if p := g.board.PieceAt(sq); p != NoPiece && p.Color == g.turn {
		g.selected, g.hasSelected = sq, true
		g.destinations = LegalDestinations(&g.board, sq, p)
		return ClickSelected
	}

	if !g.hasSelected {
		return ClickIgnored
	}
	g.clearSelection()
	return ClickCleared
}

// move overwrites whatever stood on to.
func (g *Game) move(from, to Square) {
	g.board.Place(to, g.board.PieceAt(from))
	g.board.Place(from, NoPiece)
	g.clearSelection()
	g.turn = g.turn.Other()
}

func (g *Game) clearSelection() {
	g.selected, g.hasSelected = Square{}, false
	g.destinations = nil
}
