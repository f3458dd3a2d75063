// Command export writes the rectangle table to JSON, for use by renderers
// written in other languages.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/blockglyph"
)

func main() {
	out := flag.String("o", "blockglyph.json", "output file (\"-\" for stdout)")
	flag.Parse()

	if err := run(*out); err != nil {
		log.Fatal(err)
	}
}

func run(fname string) error {
	if fname == "-" {
		return export(os.Stdout)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = export(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

type jsonTable struct {
	Profiles map[string]jsonStroke `json:"profiles"`
	Glyphs   []jsonGlyph           `json:"glyphs"`
}

type jsonStroke struct {
	Start  float32 `json:"start"`
	End    float32 `json:"end"`
	Across float32 `json:"across"`
	Over   float32 `json:"over"`
}

type jsonGlyph struct {
	Code  string      `json:"code"`
	Char  string      `json:"char"`
	Name  string      `json:"name"`
	Rects [][]float32 `json:"rects"`
}

func export(w io.Writer) error {
	out := jsonTable{
		Profiles: map[string]jsonStroke{
			"thin":  toJSONStroke(blockglyph.Thin),
			"wide":  toJSONStroke(blockglyph.Wide),
			"twin1": toJSONStroke(blockglyph.Twin1),
			"twin2": toJSONStroke(blockglyph.Twin2),
		},
	}
	for c, rects := range blockglyph.All() {
		g := jsonGlyph{
			Code:  fmt.Sprintf("U+%04X", c),
			Char:  string(c),
			Name:  runenames.Name(c),
			Rects: make([][]float32, len(rects)),
		}
		for i, r := range rects {
			g.Rects[i] = []float32{r.Left, r.Bottom, r.Width, r.Height}
		}
		out.Glyphs = append(out.Glyphs, g)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toJSONStroke(s blockglyph.Stroke) jsonStroke {
	return jsonStroke{Start: s.Start, End: s.End, Across: s.Across, Over: s.Over}
}
