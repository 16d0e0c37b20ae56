package diagnostics

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/CWHer/Gobang-Env/board"
)

const cellPixels = 24

// RenderBoardPNG draws the stone grid to w: a light grid, player-0 stones
// as filled circles, player-1 stones as outlined circles, and the move
// index labeled at the most recently played cell — a graphical analogue of
// GobangBoard::display() in original_source/gobang_mcts/gobang_env.hpp.
func RenderBoardPNG(w io.Writer, b *board.Board) error {
	size := b.Size * cellPixels
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	fillBackground(img, color.White)
	drawGrid(img, b.Size)
	drawStones(img, b)
	if err := drawMoveLabel(img, b); err != nil {
		return err
	}
	return png.Encode(w, img)
}

func fillBackground(img *image.RGBA, c color.Color) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

func drawGrid(img *image.RGBA, n int) {
	grid := color.Gray{Y: 160}
	size := n * cellPixels
	for i := 0; i <= n; i++ {
		y := i * cellPixels
		for x := 0; x < size; x++ {
			img.Set(x, y, grid)
		}
		x := i * cellPixels
		for y := 0; y < size; y++ {
			img.Set(x, y, grid)
		}
	}
}

func drawStones(img *image.RGBA, b *board.Board) {
	for i, c := range b.Cells {
		if c == board.Empty {
			continue
		}
		row, col := i/b.Size, i%b.Size
		cx := col*cellPixels + cellPixels/2
		cy := row*cellPixels + cellPixels/2

		var stoneColor color.Color = color.Black
		filled := true
		if c == board.Player1 {
			stoneColor = color.Gray{Y: 40}
			filled = false
		}
		drawCircle(img, cx, cy, cellPixels/2-2, stoneColor, filled)
	}
}

func drawCircle(img *image.RGBA, cx, cy, r int, col color.Color, filled bool) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			d2 := x*x + y*y
			if filled && d2 <= r*r {
				img.Set(cx+x, cy+y, col)
			} else if !filled && d2 <= r*r && d2 >= (r-2)*(r-2) {
				img.Set(cx+x, cy+y, col)
			}
		}
	}
}

func drawMoveLabel(img *image.RGBA, b *board.Board) error {
	if len(b.History) == 0 {
		return nil
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return err
	}

	ctx := freetype.NewContext()
	ctx.SetFont(f)
	ctx.SetFontSize(10)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.NewUniform(color.RGBA{R: 200, A: 255}))

	last := b.History[len(b.History)-1]
	row, col := last/b.Size, last%b.Size
	pt := freetype.Pt(col*cellPixels+4, row*cellPixels+cellPixels-4)
	_, err = ctx.DrawString(fmt.Sprintf("%d", len(b.History)-1), pt)
	return err
}
