package blockglyph

import (
	"errors"
	"image"
	"maps"
	"math"
	"slices"
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/blockglyph/testcases"
)

// recorder is a Painter which remembers all filled rectangles.  If a
// transformation is set, the bounding boxes of the transformed rectangles
// are recorded.
type recorder struct {
	ctm     matrix.Matrix
	colors  []color.Color
	pending []rect.Rect
	filled  []rect.Rect
	fills   int
}

func (r *recorder) SetFillColor(c color.Color) {
	r.colors = append(r.colors, c)
}

func (r *recorder) Transform(m matrix.Matrix) {
	if r.ctm == (matrix.Matrix{}) {
		r.ctm = matrix.Identity
	}
	r.ctm = m.Mul(r.ctm)
}

func (r *recorder) Rectangle(x, y, width, height float64) {
	b := rect.Rect{LLx: x, LLy: y, URx: x + width, URy: y + height}
	if m := r.ctm; m != (matrix.Matrix{}) {
		tb := rect.Rect{
			LLx: math.Inf(1),
			LLy: math.Inf(1),
			URx: math.Inf(-1),
			URy: math.Inf(-1),
		}
		for _, px := range []float64{b.LLx, b.URx} {
			for _, py := range []float64{b.LLy, b.URy} {
				tx := m[0]*px + m[2]*py + m[4]
				ty := m[1]*px + m[3]*py + m[5]
				tb.LLx = min(tb.LLx, tx)
				tb.LLy = min(tb.LLy, ty)
				tb.URx = max(tb.URx, tx)
				tb.URy = max(tb.URy, ty)
			}
		}
		b = tb
	}
	r.pending = append(r.pending, b)
}

func (r *recorder) Fill() {
	r.filled = append(r.filled, r.pending...)
	r.pending = r.pending[:0]
	r.fills++
}

func TestDrawRune(t *testing.T) {
	cell := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 20}

	p := &recorder{}
	ok, err := DrawRune(p, '═', cell)
	if err != nil || !ok {
		t.Fatalf("DrawRune: %t, %v", ok, err)
	}
	if p.fills != 1 || len(p.filled) != 2 {
		t.Errorf("got %d fills with %d rectangles", p.fills, len(p.filled))
	}

	// characters without rectangles are left to the font
	for _, c := range []rune{'╭', '╳', '░', '▓', 'A', ' '} {
		p = &recorder{}
		ok, err = DrawRune(p, c, cell)
		if err != nil || ok {
			t.Errorf("%q: %t, %v", c, ok, err)
		}
		if p.fills != 0 || len(p.pending) != 0 {
			t.Errorf("%q produced output", c)
		}
	}

	_, err = DrawRune(p, '─', rect.Rect{URx: 10})
	if !errors.Is(err, errEmptyCell) {
		t.Errorf("empty cell: %v", err)
	}

	// the cell is only checked for characters which are drawn
	for _, c := range []rune{'A', '╮'} {
		ok, err = DrawRune(p, c, rect.Rect{})
		if err != nil || ok {
			t.Errorf("%q in empty cell: %t, %v", c, ok, err)
		}
	}
}

func TestDrawTextFallback(t *testing.T) {
	g := &Grid{
		X:          5,
		Y:          40,
		CellWidth:  10,
		CellHeight: 20,
		Ink:        color.DeviceGray(0.25),
	}
	p := &recorder{}
	fallback, err := g.DrawText(p, []string{"┌A─╮", "│ b░"})
	if err != nil {
		t.Fatal(err)
	}

	want := []Fallback{
		{Rune: 'A', Cell: rect.Rect{LLx: 15, LLy: 20, URx: 25, URy: 40}},
		{Rune: '╮', Cell: rect.Rect{LLx: 35, LLy: 20, URx: 45, URy: 40}},
		{Rune: 'b', Cell: rect.Rect{LLx: 25, LLy: 0, URx: 35, URy: 20}},
		{Rune: '░', Cell: rect.Rect{LLx: 35, LLy: 0, URx: 45, URy: 20}},
	}
	if d := cmp.Diff(want, fallback); d != "" {
		t.Errorf("unexpected fallback (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]color.Color{color.DeviceGray(0.25)}, p.colors); d != "" {
		t.Errorf("unexpected colors (-want +got):\n%s", d)
	}
	if p.fills != 3 || len(p.filled) != 4 {
		t.Errorf("got %d fills with %d rectangles", p.fills, len(p.filled))
	}
}

func TestDrawTextInvalidGrid(t *testing.T) {
	g := &Grid{CellWidth: 10}
	_, err := g.DrawText(&recorder{}, []string{"─"})
	if !errors.Is(err, errEmptyCell) {
		t.Errorf("got %v", err)
	}
}

// TestRenderExamples draws all test cases and checks that exactly the
// characters without rectangles fall back to the font, and that all output
// stays inside the text block.
func TestRenderExamples(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				p := &recorder{}
				fallback, err := RenderExample(tc, p)
				if err != nil {
					t.Fatal(err)
				}

				var want []rune
				inked := 0
				for _, line := range tc.Lines {
					for _, c := range line {
						switch {
						case unicode.IsSpace(c):
						case !HasInk(c):
							want = append(want, c)
						default:
							inked++
						}
					}
				}
				var got []rune
				for _, f := range fallback {
					got = append(got, f.Rune)
				}
				if d := cmp.Diff(want, got); d != "" {
					t.Errorf("unexpected fallback (-want +got):\n%s", d)
				}
				if p.fills != inked {
					t.Errorf("got %d fills, want %d", p.fills, inked)
				}

				const slack = 1e-9
				bbox := tc.Bounds()
				for _, r := range p.filled {
					if r.LLx < bbox.LLx-slack || r.LLy < bbox.LLy-slack ||
						r.URx > bbox.URx+slack || r.URy > bbox.URy+slack {
						t.Errorf("rectangle %v outside %v", r, bbox)
					}
				}
			})
		}
	}
}

func TestRenderExampleCTM(t *testing.T) {
	tc := testcases.TestCase{
		Lines:      []string{"█"},
		CellWidth:  10,
		CellHeight: 20,
		CTM:        matrix.Matrix{2, 0, 0, 3, 5, 7},
	}
	p := &recorder{}
	if _, err := RenderExample(tc, p); err != nil {
		t.Fatal(err)
	}
	want := []rect.Rect{{LLx: 5, LLy: 7, URx: 25, URy: 67}}
	if d := cmp.Diff(want, p.filled, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("unexpected rectangles (-want +got):\n%s", d)
	}
	if d := cmp.Diff(want[0], tc.Bounds(), cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("unexpected bounds (-want +got):\n%s", d)
	}

	// a quarter turn maps the wide line to a vertical bar left of the origin
	tc = testcases.TestCase{
		Lines:      []string{"━"},
		CellWidth:  10,
		CellHeight: 10,
		CTM:        matrix.RotateDeg(90),
	}
	p = &recorder{}
	if _, err := RenderExample(tc, p); err != nil {
		t.Fatal(err)
	}
	want = []rect.Rect{{LLx: -6, LLy: 0, URx: -4, URy: 10}}
	if d := cmp.Diff(want, p.filled, cmpopts.EquateApprox(0, 1e-6)); d != "" {
		t.Errorf("unexpected rectangles (-want +got):\n%s", d)
	}
}

func TestRenderExampleNoTransform(t *testing.T) {
	tc := testcases.TestCase{
		Lines:      []string{"─"},
		CellWidth:  10,
		CellHeight: 20,
		CTM:        matrix.Scale(2, 2),
	}
	_, err := RenderExample(tc, &counter{})
	if !errors.Is(err, errNoTransform) {
		t.Errorf("got %v", err)
	}

	// the identity needs no transformation support
	tc.CTM = matrix.Identity
	if _, err := RenderExample(tc, &counter{}); err != nil {
		t.Error(err)
	}
}

// rasterize draws the given lines onto a pixel grid, using cells of
// size×size pixels, and returns the alpha values.
func rasterize(t *testing.T, lines []string, size int) *image.Alpha {
	t.Helper()
	tc := testcases.TestCase{
		Lines:      lines,
		CellWidth:  float64(size),
		CellHeight: float64(size),
	}
	w, h := int(tc.Width()), int(tc.Height())

	p := &recorder{}
	if _, err := RenderExample(tc, p); err != nil {
		t.Fatal(err)
	}

	z := vector.NewRasterizer(w, h)
	for _, r := range p.filled {
		// device space has y pointing up, the image has y pointing down
		x0, y0 := float32(r.LLx), float32(float64(h)-r.URy)
		x1, y1 := float32(r.URx), float32(float64(h)-r.LLy)
		z.MoveTo(x0, y0)
		z.LineTo(x1, y0)
		z.LineTo(x1, y1)
		z.LineTo(x0, y1)
		z.ClosePath()
	}
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// TestSeams checks that lines continue across cell boundaries without
// gaps.  Cells are 20×20 pixels, so the profiles fall on pixel boundaries:
// thin lines cover 9 to 11, wide lines 8 to 12, double lines 7 to 9 and
// 11 to 13.
func TestSeams(t *testing.T) {
	const size = 20
	type band struct{ lo, hi int }
	cases := []struct {
		lines      []string
		horizontal bool
		bands      []band
	}{
		{[]string{"─┼─┬─┴─"}, true, []band{{9, 11}}},
		{[]string{"━╋━┳━┻━"}, true, []band{{8, 12}}},
		{[]string{"═╪═╤═╧═"}, true, []band{{7, 9}, {11, 13}}},
		{[]string{"│", "┼", "├", "┤", "╪", "│"}, false, []band{{9, 11}}},
		{[]string{"┃", "╋", "┣", "┫", "┃"}, false, []band{{8, 12}}},
		{[]string{"║", "╫", "╟", "╢", "║"}, false, []band{{7, 9}, {11, 13}}},
		{[]string{"████", "▀▀▀▀"}, true, []band{{10, 40}}},
	}
	for _, test := range cases {
		img := rasterize(t, test.lines, size)
		w, h := img.Bounds().Dx(), img.Bounds().Dy()

		inBand := make(map[int]bool)
		for _, b := range test.bands {
			for k := b.lo; k < b.hi; k++ {
				inBand[k] = true
			}
		}

		// k is measured from the bottom (horizontal lines) or from the
		// left (vertical lines), l runs along the lines.
		n, length := h, w
		if !test.horizontal {
			n, length = w, h
		}
		for k := range n {
			for l := range length {
				x, y := l, h-1-k
				if !test.horizontal {
					x, y = k, l
				}
				a := img.AlphaAt(x, y).A
				if inBand[k] && a < 250 {
					t.Errorf("%q: gap at (%d, %d), alpha %d", test.lines, x, y, a)
					break
				}
			}
		}
	}
}

// TestNoInkOutside checks that straight lines leave the rest of the cell
// empty.
func TestNoInkOutside(t *testing.T) {
	const size = 20
	img := rasterize(t, []string{"─━═"}, size)
	for x := range 3 * size {
		for _, y := range []int{0, 1, 2, 3, 4, 16, 17, 18, 19} {
			if a := img.AlphaAt(x, y).A; a > 5 {
				t.Errorf("ink at (%d, %d): %d", x, y, a)
			}
		}
	}
	// the gap between the two lines of a double line stays empty
	for x := 2 * size; x < 3*size; x++ {
		if a := img.AlphaAt(x, size-10).A; a > 5 {
			t.Errorf("ink between double lines at x=%d: %d", x, a)
		}
	}
}
