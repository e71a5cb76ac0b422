package rules

// Color is the side a piece belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Kind identifies how a piece moves. The zero value marks an empty cell.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

var kindLetters = [...]byte{
	NoKind: '.',
	Pawn:   'p',
	Rook:   'r',
	Knight: 'n',
	Bishop: 'b',
	Queen:  'q',
	King:   'k',
}

func (k Kind) String() string {
	if int(k) >= len(kindLetters) {
		return "?"
	}
	return string(kindLetters[k])
}

// Piece is a plain value; moving a piece copies it.
type Piece struct {
	Kind  Kind
	Color Color
}

// NoPiece is what an empty cell holds.
var NoPiece = Piece{}

func NewPiece(k Kind, c Color) Piece {
	return Piece{Kind: k, Color: c}
}

// Label is the two letter tag drawn for the piece, color first: "wp", "bk".
func (p Piece) Label() string {
	if p == NoPiece {
		return ""
	}
	side := byte('w')
	if p.Color == Black {
		side = 'b'
	}
	return string([]byte{side, kindLetters[p.Kind]})
}

// Square is a (row, col) pair on the grid. Row 0 is Black's back rank.
// Values can only be built through NewSquare or MustSquare, so every
// Square in circulation is on the board.
type Square struct {
	row, col int8
}

// NewSquare returns the square at row, col and false when either
// coordinate falls outside [0,8).
func NewSquare(row, col int) (Square, bool) {
	if row < 0 || row >= 8 || col < 0 || col >= 8 {
		return Square{}, false
	}
	return Square{row: int8(row), col: int8(col)}, true
}

// MustSquare is NewSquare for coordinates known to be valid.
func MustSquare(row, col int) Square {
	sq, ok := NewSquare(row, col)
	if !ok {
		panic("rules: square out of range")
	}
	return sq
}

func (s Square) Row() int { return int(s.row) }
func (s Square) Col() int { return int(s.col) }

// Board is the 8x8 grid. It is a value type: copying it takes a snapshot.
type Board [8][8]Piece

func (b *Board) PieceAt(sq Square) Piece {
	return b[sq.row][sq.col]
}

// Place overwrites the cell. Placing NoPiece empties it.
func (b *Board) Place(sq Square, p Piece) {
	b[sq.row][sq.col] = p
}

func (b *Board) IsEmpty(sq Square) bool {
	return b.PieceAt(sq) == NoPiece
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitialSetup resets b to the standard starting position.
func (b *Board) InitialSetup() {
	*b = Board{}
	for col := 0; col < 8; col++ {
		b[1][col] = NewPiece(Pawn, Black)
		b[6][col] = NewPiece(Pawn, White)
	}
	for col, k := range backRank {
		b[0][col] = NewPiece(k, Black)
		b[7][col] = NewPiece(k, White)
	}
}

// NewBoard returns a board in the starting position.
func NewBoard() Board {
	var b Board
	b.InitialSetup()
	return b
}
