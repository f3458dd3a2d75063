// seehuhn.de/go/blockglyph - box drawing characters as rectangles
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command specimen draws the block glyph test cases into PDF files.
// Optionally, the PDF files are rendered to PNG using Ghostscript.
//
// Characters without rectangles would normally be drawn using a font.  This
// includes letters as well as the arcs, diagonals and shades of the box
// drawing range.  In the specimen, their cells are marked with a light
// grey box.
package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/blockglyph"
	"seehuhn.de/go/blockglyph/testcases"
)

const margin = 8

var (
	outDir = flag.String("dir", "specimen", "output directory")
	scale  = flag.Float64("scale", 1, "scale factor for the cell size")
	toPNG  = flag.Bool("png", false, "render the PDF files to PNG using Ghostscript")
)

func main() {
	flag.Parse()

	if *scale <= 0 {
		log.Fatalf("invalid scale %g", *scale)
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")

			tc.CellWidth *= *scale
			tc.CellHeight *= *scale
			if err := generatePDF(tc, pdfPath); err != nil {
				log.Fatal(fmt.Errorf("%s: %w", name, err))
			}

			if *toPNG {
				pngPath := filepath.Join(*outDir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					log.Fatal(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	bbox := tc.Bounds()
	paper := &pdf.Rectangle{
		URx: bbox.URx - bbox.LLx + 2*margin,
		URy: bbox.URy - bbox.LLy + 2*margin,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.Transform(matrix.Translate(margin-bbox.LLx, margin-bbox.LLy))

	// RenderExample applies the test case CTM, so fallback cells below
	// are drawn in the same coordinates as the block glyphs.
	page.SetFillColor(color.DeviceGray(0))
	fallback, err := blockglyph.RenderExample(tc, page)
	if err != nil {
		return err
	}

	if len(fallback) > 0 {
		page.SetFillColor(color.DeviceGray(0.85))
		for _, f := range fallback {
			w := f.Cell.URx - f.Cell.LLx
			h := f.Cell.URy - f.Cell.LLy
			page.Rectangle(f.Cell.LLx+0.1*w, f.Cell.LLy+0.1*h, 0.8*w, 0.8*h)
		}
		page.Fill()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -r144: 2 pixels per point, so that thin lines cover whole pixels
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r144",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
