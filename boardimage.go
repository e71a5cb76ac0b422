package main

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/dulchik/hotseat-chess/layout"
)

var boardColors = [2]color.Color{
	color.RGBA{255, 255, 255, 255}, // light
	color.RGBA{0, 0, 0, 255},       // dark
}

// checkerboard paints the empty board once; it never changes between frames.
func checkerboard() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, layout.BoardSize, layout.BoardSize))
	uniform := &image.Uniform{}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			x0 := col * layout.CellSize
			y0 := row * layout.CellSize
			rect := image.Rect(x0, y0, x0+layout.CellSize, y0+layout.CellSize)

			uniform.C = boardColors[(row+col)%2]
			draw.Draw(img, rect, uniform, image.Point{}, draw.Src)
		}
	}
	return img
}
