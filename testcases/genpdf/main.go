// seehuhn.de/go/roundclip - rounded clip regions for UI elements
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

// Command genpdf writes a preview of every clip outline test case.
// For each case it creates a PDF showing the host rectangle, the filled
// clip outline and its anchor points, and renders the PDF to PNG using
// Ghostscript if this is installed.
package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/roundclip"
	"seehuhn.de/go/roundclip/testcases"
)

const (
	previewDir = "testdata/preview"

	// margin around the host rectangle, in device units
	margin = 8

	// side length of the anchor point markers, in user space units
	markerSize = 1.5
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	roundclip.SetLogger(logger)

	if err := os.MkdirAll(previewDir, 0755); err != nil {
		logger.Error("cannot create output directory", "err", err)
		os.Exit(1)
	}

	gs, err := exec.LookPath("gs")
	if err != nil {
		logger.Warn("Ghostscript not found, skipping PNG output")
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(previewDir, name+".pdf")
			pngPath := filepath.Join(previewDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				logger.Error("cannot write PDF", "case", name, "err", err)
				os.Exit(1)
			}
			logger.Info("wrote preview", "case", name, "file", pdfPath)

			if gs == "" {
				continue
			}
			if err := renderPNG(gs, pdfPath, pngPath); err != nil {
				logger.Error("cannot render PNG", "case", name, "err", err)
				os.Exit(1)
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	outline := roundclip.Build(tc.Width, tc.Height, tc.Radius)

	// The page must hold the outline in device space.
	bbox := outline.Transform(tc.Matrix()).Bounds()
	pageWidth := max(bbox.URx, 0) + margin
	pageHeight := max(bbox.URy, 0) + margin

	paper := &pdf.Rectangle{
		URx: pageWidth,
		URy: pageHeight,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, pageWidth, pageHeight)
	page.Fill()

	// PDF origin is bottom-left; UI coordinates start top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, pageHeight})
	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		page.Transform(tc.CTM)
	}

	// the unclipped host
	page.SetFillColor(color.DeviceGray(0.25))
	page.Rectangle(0, 0, tc.Width, tc.Height)
	page.Fill()

	// the clip region
	page.SetFillColor(color.DeviceGray(1))
	for cmd, pts := range outline.Path().Iter() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.FillEvenOdd()

	// the control polygon through the anchor points
	page.SetStrokeColor(color.DeviceGray(0.5))
	page.SetLineWidth(0.25)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	start := outline.Start()
	page.MoveTo(start.X, start.Y)
	for _, p := range outline.Points() {
		page.LineTo(p.X, p.Y)
	}
	page.Stroke()

	page.SetFillColor(color.DeviceGray(0.5))
	for _, p := range outline.Points() {
		page.Rectangle(p.X-markerSize/2, p.Y-markerSize/2, markerSize, markerSize)
	}
	page.Fill()

	if err := page.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", pdfPath, err)
	}
	return nil
}

func renderPNG(gs, pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		gs, "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
