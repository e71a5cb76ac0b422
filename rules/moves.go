package rules

type offset struct {
	dr, dc int
}

var (
	rookDirections   = []offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	bishopDirections = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

	knightJumps = []offset{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingSteps = []offset{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)

func (s Square) step(o offset) (Square, bool) {
	return NewSquare(s.Row()+o.dr, s.Col()+o.dc)
}

// LegalDestinations lists the squares p could reach from origin by its
// movement pattern alone. Check is never considered. The order is fixed:
// direction order, then distance for sliders, offset order for jumpers.
func LegalDestinations(b *Board, origin Square, p Piece) []Square {
	var dst []Square
	switch p.Kind {
	case Pawn:
		dst = pawnDestinations(b, origin, p.Color, dst)
	case Rook:
		dst = slide(b, origin, p.Color, rookDirections, dst)
	case Bishop:
		dst = slide(b, origin, p.Color, bishopDirections, dst)
	case Queen:
		dst = slide(b, origin, p.Color, rookDirections, dst)
		dst = slide(b, origin, p.Color, bishopDirections, dst)
	case Knight:
		dst = jump(b, origin, p.Color, knightJumps, dst)
	case King:
		dst = jump(b, origin, p.Color, kingSteps, dst)
	}
	return dst
}

func pawnDestinations(b *Board, origin Square, c Color, dst []Square) []Square {
	dir, startRow := -1, 6
	if c == Black {
		dir, startRow = 1, 1
	}

	if one, ok := origin.step(offset{dir, 0}); ok && b.IsEmpty(one) {
		dst = append(dst, one)
		if origin.Row() == startRow {
			if two, ok := one.step(offset{dir, 0}); ok && b.IsEmpty(two) {
				dst = append(dst, two)
			}
		}
	}

	for _, dc := range [...]int{-1, 1} {
		sq, ok := origin.step(offset{dir, dc})
		if !ok {
			continue
		}
		if target := b.PieceAt(sq); target != NoPiece && target.Color != c {
			dst = append(dst, sq)
		}
	}
	return dst
}

// slide walks each ray until the edge or the first occupied square,
// which is included only when it holds an enemy piece.
func slide(b *Board, origin Square, c Color, dirs []offset, dst []Square) []Square {
	for _, d := range dirs {
		sq, ok := origin.step(d)
		for ok {
			target := b.PieceAt(sq)
			if target == NoPiece {
				dst = append(dst, sq)
				sq, ok = sq.step(d)
				continue
			}
			if target.Color != c {
				dst = append(dst, sq)
			}
			break
		}
	}
	return dst
}

func jump(b *Board, origin Square, c Color, offsets []offset, dst []Square) []Square {
	for _, o := range offsets {
		sq, ok := origin.step(o)
		if !ok {
			continue
		}
		if target := b.PieceAt(sq); target == NoPiece || target.Color != c {
			dst = append(dst, sq)
		}
	}
	return dst
}
