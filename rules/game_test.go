package rules

import (
	"slices"
	"testing"
)

func click(t *testing.T, g *Game, row, col int, want ClickResult) {
	t.Helper()
	if got := g.HandleSquareClicked(MustSquare(row, col)); got != want {
		t.Fatalf("click (%d,%d) = %s, want %s", row, col, got, want)
	}
}

func assertNoSelection(t *testing.T, g *Game) {
	t.Helper()
	if sq, ok := g.Selection(); ok {
		t.Fatalf("unexpected selection %s", sq)
	}
	if d := g.LegalDestinations(); len(d) != 0 {
		t.Fatalf("destinations cached without a selection: %v", d)
	}
}

func TestNewGame(t *testing.T) {
	g := NewGame()
	if g.Turn() != White {
		t.Fatalf("first turn = %s, want white", g.Turn())
	}
	assertNoSelection(t, g)
	if g.Board() != NewBoard() {
		t.Fatalf("new game is not in the starting position")
	}
}

func TestPawnOpening(t *testing.T) {
	g := NewGame()

	click(t, g, 6, 4, ClickSelected)
	sel, ok := g.Selection()
	if !ok || sel != MustSquare(6, 4) {
		t.Fatalf("selection = %v, %v", sel, ok)
	}
	dst := g.LegalDestinations()
	for _, want := range squares([2]int{5, 4}, [2]int{4, 4}) {
		if !slices.Contains(dst, want) {
			t.Fatalf("destinations %v missing %s", dst, want)
		}
	}

	click(t, g, 4, 4, ClickMoved)
	if g.PieceAt(MustSquare(6, 4)) != NoPiece {
		t.Errorf("origin still occupied")
	}
	if got := g.PieceAt(MustSquare(4, 4)); got != NewPiece(Pawn, White) {
		t.Errorf("(4,4) = %+v, want white pawn", got)
	}
	if g.Turn() != Black {
		t.Errorf("turn = %s, want black", g.Turn())
	}
	assertNoSelection(t, g)
}

func TestReselectOwnPiece(t *testing.T) {
	g := NewGame()
	click(t, g, 6, 4, ClickSelected)
	before := g.Board()

	click(t, g, 6, 3, ClickSelected)
	sel, _ := g.Selection()
	if sel != MustSquare(6, 3) {
		t.Fatalf("selection = %s, want d2", sel)
	}
	want := squares([2]int{5, 3}, [2]int{4, 3})
	if got := g.LegalDestinations(); !slices.Equal(got, want) {
		t.Fatalf("destinations = %v, want %v", got, want)
	}
	if g.Board() != before || g.Turn() != White {
		t.Fatalf("reselection must not move anything")
	}
}

func TestClickOpponentWithoutSelection(t *testing.T) {
	g := NewGame()
	click(t, g, 1, 4, ClickIgnored)
	assertNoSelection(t, g)
	if g.Turn() != White {
		t.Fatalf("turn changed on a rejected click")
	}
}

func TestClickEmptyWithoutSelection(t *testing.T) {
	g := NewGame()
	click(t, g, 4, 4, ClickIgnored)
	assertNoSelection(t, g)
}

func TestClickOffDestinationClears(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
	}{
		{name: "empty square", row: 3, col: 0},
		{name: "unreachable opponent", row: 1, col: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame()
			click(t, g, 6, 4, ClickSelected)
			click(t, g, tt.row, tt.col, ClickCleared)
			assertNoSelection(t, g)
			if g.Turn() != White || g.Board() != NewBoard() {
				t.Fatalf("clearing the selection changed the game")
			}
		})
	}
}

func TestClickSelectedSquareAgain(t *testing.T) {
	g := NewGame()
	click(t, g, 7, 1, ClickSelected)
	click(t, g, 7, 1, ClickSelected)
	want := squares([2]int{5, 0}, [2]int{5, 2})
	if got := g.LegalDestinations(); !slices.Equal(got, want) {
		t.Fatalf("destinations = %v, want %v", got, want)
	}
}

func TestCaptureReplacesPiece(t *testing.T) {
	g := NewGame()
	click(t, g, 6, 4, ClickSelected) // e2
	click(t, g, 4, 4, ClickMoved)    // e4
	click(t, g, 1, 3, ClickSelected) // d7
	click(t, g, 3, 3, ClickMoved)    // d5
	click(t, g, 4, 4, ClickSelected)

	if !slices.Contains(g.LegalDestinations(), MustSquare(3, 3)) {
		t.Fatalf("exd5 missing from %v", g.LegalDestinations())
	}
	click(t, g, 3, 3, ClickMoved)

	if got := g.PieceAt(MustSquare(3, 3)); got != NewPiece(Pawn, White) {
		t.Fatalf("d5 = %+v, want white pawn", got)
	}
	if g.Turn() != Black {
		t.Fatalf("turn = %s, want black", g.Turn())
	}
	b := g.Board()
	if got, want := b.FEN(), "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR"; got != want {
		t.Fatalf("FEN = %s, want %s", got, want)
	}
}

func TestTurnAlternates(t *testing.T) {
	g := NewGame()
	moves := [][4]int{
		{7, 6, 5, 5}, // Nf3
		{0, 6, 2, 5}, // Nf6
		{5, 5, 7, 6}, // Ng1
		{2, 5, 0, 6}, // Ng8
	}
	for i, m := range moves {
		side := g.Turn()
		// a7 belongs to Black: only selectable on Black's turn.
		if side == White {
			click(t, g, 1, 0, ClickIgnored)
		} else {
			click(t, g, 1, 0, ClickSelected)
		}
		click(t, g, m[0], m[1], ClickSelected)
		click(t, g, m[2], m[3], ClickMoved)
		if g.Turn() != side.Other() {
			t.Fatalf("move %d: turn = %s, want %s", i, g.Turn(), side.Other())
		}
	}
	if g.Board() != NewBoard() {
		t.Fatalf("knights did not return home")
	}
}

func TestLegalDestinationsReturnsCopy(t *testing.T) {
	g := NewGame()
	click(t, g, 6, 0, ClickSelected)
	d := g.LegalDestinations()
	d[0] = MustSquare(0, 0)
	if g.IsDestination(MustSquare(0, 0)) {
		t.Fatalf("caller mutation leaked into the cache")
	}
}
