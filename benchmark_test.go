package roundclip

import (
	"fmt"
	"image"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/vec"
)

// BenchmarkBuild measures the cost of one outline rebuild.
func BenchmarkBuild(b *testing.B) {
	b.ReportAllocs()
	w := 100.0
	for b.Loop() {
		w++
		_ = Build(w, 50, 4)
	}
}

// BenchmarkResize measures a full resize cycle through a behavior.
func BenchmarkResize(b *testing.B) {
	e := NewElement(100, 50)
	bh, err := New()
	if err != nil {
		b.Fatal(err)
	}
	if err := bh.Attach(e); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	w := 100.0
	for b.Loop() {
		w++
		e.Resize(w, 50)
	}
}

// BenchmarkContains benchmarks hit testing against outlines of
// different sizes.
func BenchmarkContains(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			o := Build(float64(size), float64(size), float64(size)/8)
			p := vec.Vec2{X: float64(size) / 2, Y: float64(size) / 2}

			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				o.Contains(p)
			}
		})
	}
}

// BenchmarkVectorMask benchmarks converting an outline to an alpha mask
// with x/image/vector, as a renderer consuming the outline would.
func BenchmarkVectorMask(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			o := Build(float64(size), float64(size), float64(size)/8)
			z := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			segs := o.Segments()
			start := o.Start()

			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				z.Reset(size, size)
				z.MoveTo(float32(start.X), float32(start.Y))
				for _, s := range segs {
					z.CubeTo(
						float32(s[0].X), float32(s[0].Y),
						float32(s[1].X), float32(s[1].Y),
						float32(s[2].X), float32(s[2].Y))
				}
				z.ClosePath()
				z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
			}
		})
	}
}
