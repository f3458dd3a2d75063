package blockglyph

import (
	"fmt"
	"image"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics/color"
)

// counter is a Painter which only counts the calls.
type counter struct {
	rects, fills int
}

func (c *counter) SetFillColor(color.Color)              {}
func (c *counter) Rectangle(x, y, width, height float64) { c.rects++ }
func (c *counter) Fill()                                 { c.fills++ }

func BenchmarkIsBlockGlyph(b *testing.B) {
	text := []rune("┌───┐ abc │ x │ ▁▂▃▄▅▆▇█ └───┘")
	n := 0
	for b.Loop() {
		for _, c := range text {
			if IsBlockGlyph(c) {
				n++
			}
		}
	}
	_ = n
}

func BenchmarkRects(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Rects('╬')
	}
}

// BenchmarkDrawText measures the cost of laying out a full screen of box
// drawing characters.
func BenchmarkDrawText(b *testing.B) {
	for _, cols := range []int{20, 80, 200} {
		b.Run(fmt.Sprintf("%dx%d", cols, cols/2), func(b *testing.B) {
			line := make([]rune, cols)
			for i := range line {
				line[i] = []rune(AllBlockChars)[i%len(boxDrawing)]
			}
			lines := make([]string, cols/2)
			for i := range lines {
				lines[i] = string(line)
			}
			g := &Grid{CellWidth: 10, CellHeight: 20}
			p := &counter{}

			b.ReportAllocs()
			for b.Loop() {
				_, err := g.DrawText(p, lines)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkVector measures drawing all glyphs with x/image/vector, as a
// rendering adapter for raster images would do.
func BenchmarkVector(b *testing.B) {
	for _, size := range []int{8, 32, 128} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			z := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			cell := rect.Rect{URx: float64(size), URy: float64(size)}

			b.ReportAllocs()
			for b.Loop() {
				for _, rects := range All() {
					z.Reset(size, size)
					for _, r := range rects {
						q := r.Place(cell)
						z.MoveTo(float32(q.LLx), float32(q.LLy))
						z.LineTo(float32(q.URx), float32(q.LLy))
						z.LineTo(float32(q.URx), float32(q.URy))
						z.LineTo(float32(q.LLx), float32(q.URy))
						z.ClosePath()
					}
					z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
				}
			}
		})
	}
}
