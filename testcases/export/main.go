// Command export writes the clip outlines of all test cases to JSON, for
// checking against other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/roundclip"
	"seehuhn.de/go/roundclip/testcases"
)

const outFile = "testdata/outlines.json"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var out struct {
		Outlines []jsonOutline `json:"outlines"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.Outlines = append(out.Outlines, toJSON(category, tc))
		}
	}

	if err := writeJSON(outFile, out); err != nil {
		logger.Error("export failed", "file", outFile, "err", err)
		os.Exit(1)
	}
	logger.Info("exported outlines", "file", outFile, "count", len(out.Outlines))
}

func writeJSON(fname string, v any) (err error) {
	if err := os.MkdirAll(filepath.Dir(fname), 0755); err != nil {
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type jsonOutline struct {
	Name     string        `json:"name"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Radius   float64       `json:"radius"`
	RX       float64       `json:"rx"`
	RY       float64       `json:"ry"`
	CTM      []float64     `json:"ctm,omitempty"`
	FillRule string        `json:"fill_rule"`
	Points   [][]float64   `json:"points"`
	Path     []jsonSegment `json:"path"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonOutline {
	o := roundclip.Build(tc.Width, tc.Height, tc.Radius)
	rx, ry := o.Radii()

	jo := jsonOutline{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		Radius:   tc.Radius,
		RX:       rx,
		RY:       ry,
		FillRule: o.FillRule().String(),
	}

	// Points and path are given in device space.
	m := tc.Matrix()
	if m != matrix.Identity {
		jo.CTM = m[:]
		o = o.Transform(m)
	}

	for _, p := range o.Points() {
		jo.Points = append(jo.Points, []float64{p.X, p.Y})
	}
	jo.Path = pathToJSON(o.Path().Iter())
	return jo
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
