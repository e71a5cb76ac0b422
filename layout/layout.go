// Package layout maps between screen pixels and board squares.
package layout

import "github.com/dulchik/hotseat-chess/rules"

const (
	CellSize  = 80
	BoardSize = CellSize * 8 // 640
)

// SquareAt returns the square under pixel (x, y), and false when the
// point lies outside the board.
func SquareAt(x, y int) (rules.Square, bool) {
	if x < 0 || y < 0 {
		return rules.Square{}, false
	}
	return rules.NewSquare(y/CellSize, x/CellSize)
}

// Origin returns the top-left pixel of sq.
func Origin(sq rules.Square) (x, y float64) {
	return float64(sq.Col() * CellSize), float64(sq.Row() * CellSize)
}
