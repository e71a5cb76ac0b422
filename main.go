package main

import (
	"fmt"
	"log"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"github.com/dulchik/hotseat-chess/layout"
	"github.com/dulchik/hotseat-chess/rules"
)

const (
	screenWidth  = layout.BoardSize
	screenHeight = layout.BoardSize
	windowTitle  = "Xadrez"

	pieceFontPath = "chess_merida_unicode.ttf"
	pieceFontSize = 64
)

// Game adapts rules.Game to ebiten's update/draw loop.
type Game struct {
	chess     *rules.Game
	mouseDown bool

	background *ebiten.Image
	pieceFace  font.Face // nil: draw text labels instead of glyphs
}

func loadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return truetype.NewFace(ttf, &truetype.Options{Size: size}), nil
}

func NewGame() *Game {
	g := &Game{
		chess: rules.NewGame(),
	}

	face, err := loadFace(pieceFontPath, pieceFontSize)
	if err != nil {
		log.Printf("using text labels: %v", err)
	} else {
		g.pieceFace = face
	}
	return g
}

func (g *Game) Update() error {
	mousePressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if mousePressed && !g.mouseDown {
		x, y := ebiten.CursorPosition()
		if sq, ok := layout.SquareAt(x, y); ok {
			g.handleClick(sq)
		}
	}

	g.mouseDown = mousePressed
	return nil
}

func (g *Game) handleClick(sq rules.Square) {
	mover := g.chess.Turn()
	from, _ := g.chess.Selection()

	if g.chess.HandleSquareClicked(sq) == rules.ClickMoved {
		b := g.chess.Board()
		log.Printf("%s %s-%s  board %s", mover, from, sq, b.FEN())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(windowTitle)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
