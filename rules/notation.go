package rules

import (
	"errors"
	"fmt"

	"github.com/corentings/chess/v2"
)

// ErrBadSquare is returned for text that does not name a board square.
var ErrBadSquare = errors.New("not a square")

// chessSquare maps s onto the library's a1..h8 numbering. Row 7 is rank 1.
func (s Square) chessSquare() chess.Square {
	file := s.Col()
	rank := 7 - s.Row()
	return chess.Square(file + 8*rank)
}

// String returns the algebraic name, "e2" for row 6 col 4.
func (s Square) String() string {
	return s.chessSquare().String()
}

// ParseSquare reads an algebraic square name such as "e2".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrBadSquare, text)
	}
	col := int(text[0] - 'a')
	rank := int(text[1] - '1')
	sq, ok := NewSquare(7-rank, col)
	if !ok {
		return Square{}, fmt.Errorf("%w: %q", ErrBadSquare, text)
	}
	return sq, nil
}

var chessKinds = map[Kind]chess.PieceType{
	Pawn:   chess.Pawn,
	Rook:   chess.Rook,
	Knight: chess.Knight,
	Bishop: chess.Bishop,
	Queen:  chess.Queen,
	King:   chess.King,
}

func (p Piece) chessPiece() chess.Piece {
	if p == NoPiece {
		return chess.NoPiece
	}
	c := chess.White
	if p.Color == Black {
		c = chess.Black
	}
	return chess.NewPiece(chessKinds[p.Kind], c)
}

// Glyph returns the Unicode chess symbol for p, or "" for an empty cell.
func (p Piece) Glyph() string {
	if p == NoPiece {
		return ""
	}
	return p.chessPiece().String()
}

// FEN returns the piece placement field of a FEN record for b.
func (b *Board) FEN() string {
	m := make(map[chess.Square]chess.Piece)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b[row][col]; p != NoPiece {
				m[MustSquare(row, col).chessSquare()] = p.chessPiece()
			}
		}
	}
	return chess.NewBoard(m).String()
}
