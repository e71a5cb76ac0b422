package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"github.com/dulchik/hotseat-chess/layout"
	"github.com/dulchik/hotseat-chess/rules"
)

const (
	labelOffset     = 20
	selectionStroke = 3
)

var (
	destinationColor = color.RGBA{0, 255, 0, 77}
	selectionColor   = color.RGBA{255, 0, 0, 255}
	labelColor       = color.RGBA{128, 128, 128, 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	if g.background == nil {
		g.background = ebiten.NewImageFromImage(checkerboard())
	}
	screen.DrawImage(g.background, nil)

	for _, sq := range g.chess.LegalDestinations() {
		x, y := layout.Origin(sq)
		ebitenutil.DrawRect(screen, x, y, layout.CellSize, layout.CellSize, destinationColor)
	}

	board := g.chess.Board()
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := rules.MustSquare(row, col)
			if p := board.PieceAt(sq); p != rules.NoPiece {
				g.drawPiece(screen, sq, p)
			}
		}
	}

	if sq, ok := g.chess.Selection(); ok {
		drawOutline(screen, sq, selectionStroke, selectionColor)
	}
}

func (g *Game) drawPiece(screen *ebiten.Image, sq rules.Square, p rules.Piece) {
	x, y := layout.Origin(sq)
	if g.pieceFace == nil {
		// The debug font is white; back it so it reads on light squares.
		ebitenutil.DrawRect(screen, x+labelOffset-2, y+labelOffset, 16, 16, labelColor)
		ebitenutil.DebugPrintAt(screen, p.Label(), int(x)+labelOffset, int(y)+labelOffset)
		return
	}
	// text.Draw positions by baseline.
	text.Draw(screen, p.Glyph(), g.pieceFace, int(x)+8, int(y)+layout.CellSize-12, labelColor)
}

func drawOutline(screen *ebiten.Image, sq rules.Square, width float64, clr color.Color) {
	x, y := layout.Origin(sq)
	size := float64(layout.CellSize)

	ebitenutil.DrawRect(screen, x, y, size, width, clr)
	ebitenutil.DrawRect(screen, x, y+size-width, size, width, clr)
	ebitenutil.DrawRect(screen, x, y, width, size, clr)
	ebitenutil.DrawRect(screen, x+size-width, y, width, size, clr)
}
