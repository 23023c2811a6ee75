// Package roundclip clips UI elements to rounded rectangles.
//
// The geometry is computed by [Build], which maps a size and a corner
// radius to an [Outline]: a closed curve through twelve anchor points,
// with the corner radius clamped to half the width and half the height.
// Outlines are immutable values and can be converted to a
// [seehuhn.de/go/geom/path.Data] for use by a renderer.
//
// A [Behavior] connects the geometry to a [Host] element.  Attaching the
// behavior saves the host's clip and installs an outline, resize
// notifications and corner radius changes install new outlines, and
// detaching restores the saved clip.  Corner radii are configured on
// [Settings] nodes, which inherit values from their parents.
package roundclip

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
