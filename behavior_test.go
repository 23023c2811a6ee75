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

package roundclip

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

// originalClip stands in for a clip installed by the UI toolkit.
type originalClip struct{ name string }

func installedOutline(t *testing.T, h Host) Outline {
	t.Helper()
	o, ok := h.Clip().(Outline)
	if !ok {
		t.Fatalf("host clip is %T, not an Outline", h.Clip())
	}
	return o
}

func TestAttachDetachRestoresClip(t *testing.T) {
	orig := &originalClip{name: "toolkit"}
	e := NewElement(100, 50)
	e.SetClip(orig)

	b, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Attach(e); err != nil {
		t.Fatal(err)
	}

	if got := installedOutline(t, e); !got.Equal(Build(100, 50, 4)) {
		t.Errorf("initial outline: got %v", got)
	}
	if b.Host() != e {
		t.Error("Host() does not return the attached element")
	}

	e.Resize(120, 60)
	e.Resize(200, 80)
	e.Resize(10, 10)

	b.Detach()
	if e.Clip() != orig {
		t.Errorf("clip after detach: got %v, want %v", e.Clip(), orig)
	}
	if b.Host() != nil {
		t.Error("Host() is not nil after detach")
	}
	if _, ok := b.Outline(); ok {
		t.Error("detached behavior reports an outline")
	}
	if len(e.listeners) != 0 {
		t.Errorf("%d resize listeners left", len(e.listeners))
	}
	if len(b.Settings().listeners) != 0 {
		t.Errorf("%d change listeners left", len(b.Settings().listeners))
	}
}

func TestDetachRestoresNilClip(t *testing.T) {
	e := NewElement(30, 30)
	b, _ := New()
	if err := b.Attach(e); err != nil {
		t.Fatal(err)
	}
	if e.Clip() == nil {
		t.Fatal("no clip installed")
	}
	b.Detach()
	if e.Clip() != nil {
		t.Errorf("clip after detach: got %v, want nil", e.Clip())
	}
}

func TestResizeReplacesOutline(t *testing.T) {
	e := NewElement(100, 50)
	b, _ := New()
	if err := b.Attach(e); err != nil {
		t.Fatal(err)
	}
	before := installedOutline(t, e)

	e.Resize(200, 80)

	after := installedOutline(t, e)
	if !after.Equal(Build(200, 80, b.CornerRadius())) {
		t.Errorf("outline after resize: got %v", after)
	}
	if current, ok := b.Outline(); !ok || !current.Equal(after) {
		t.Error("Outline() does not match the installed clip")
	}

	// the previously installed outline is untouched
	if !before.Equal(Build(100, 50, 4)) {
		t.Errorf("old outline changed to %v", before)
	}
}

func TestOnSizeChangedUsesGivenSize(t *testing.T) {
	e := NewElement(100, 50)
	b, _ := New(WithCornerRadius(6))
	if err := b.Attach(e); err != nil {
		t.Fatal(err)
	}

	b.OnSizeChanged(40, 30)
	if got := installedOutline(t, e); !got.Equal(Build(40, 30, 6)) {
		t.Errorf("got %v", got)
	}

	// Update goes back to the size reported by the host
	b.Update()
	if got := installedOutline(t, e); !got.Equal(Build(100, 50, 6)) {
		t.Errorf("after Update: got %v", got)
	}
}

func TestCornerRadiusChangeRebuilds(t *testing.T) {
	e := NewElement(100, 50)
	b, _ := New()
	if err := b.Attach(e); err != nil {
		t.Fatal(err)
	}

	if err := b.SetCornerRadius(10); err != nil {
		t.Fatal(err)
	}
	if got := installedOutline(t, e); !got.Equal(Build(100, 50, 10)) {
		t.Errorf("outline after radius change: got %v", got)
	}

	if err := b.SetCornerRadius(-2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative radius: got %v", err)
	}
	if got := installedOutline(t, e); !got.Equal(Build(100, 50, 10)) {
		t.Error("failed radius change modified the clip")
	}
}

func TestInheritedCornerRadius(t *testing.T) {
	theme := NewSettings(nil)

	e1 := NewElement(100, 50)
	b1, err := New(WithParent(theme))
	if err != nil {
		t.Fatal(err)
	}
	e2 := NewElement(100, 50)
	b2, err := New(WithParent(theme), WithCornerRadius(2))
	if err != nil {
		t.Fatal(err)
	}
	if err := b1.Attach(e1); err != nil {
		t.Fatal(err)
	}
	if err := b2.Attach(e2); err != nil {
		t.Fatal(err)
	}

	if err := theme.SetCornerRadius(12); err != nil {
		t.Fatal(err)
	}
	if got := installedOutline(t, e1); !got.Equal(Build(100, 50, 12)) {
		t.Errorf("inheriting behavior: got %v", got)
	}
	if got := installedOutline(t, e2); !got.Equal(Build(100, 50, 2)) {
		t.Errorf("overriding behavior: got %v", got)
	}

	// detached behaviors no longer follow the parent
	b1.Detach()
	if err := theme.SetCornerRadius(1); err != nil {
		t.Fatal(err)
	}
	if e1.Clip() != nil {
		t.Errorf("detached host was clipped again: %v", e1.Clip())
	}
	b2.Detach()
	if len(theme.listeners) != 0 {
		t.Errorf("parent still has %d listeners", len(theme.listeners))
	}
}

func TestSharedSettings(t *testing.T) {
	s := NewSettings(nil)
	e1, e2 := NewElement(50, 50), NewElement(80, 20)
	b1, _ := New(WithSettings(s))
	b2, _ := New(WithSettings(s), WithParent(NewSettings(nil)))
	if b2.Settings() != s {
		t.Fatal("WithSettings did not take precedence over WithParent")
	}
	_ = b1.Attach(e1)
	_ = b2.Attach(e2)

	_ = s.SetCornerRadius(7)
	if got := installedOutline(t, e1); !got.Equal(Build(50, 50, 7)) {
		t.Errorf("first host: got %v", got)
	}
	if got := installedOutline(t, e2); !got.Equal(Build(80, 20, 7)) {
		t.Errorf("second host: got %v", got)
	}
}

func TestAttachErrors(t *testing.T) {
	b, _ := New()
	if err := b.Attach(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Attach(nil): got %v, want ErrInvalidArgument", err)
	}

	e := NewElement(10, 10)
	if err := b.Attach(e); err != nil {
		t.Fatal(err)
	}
	if err := b.Attach(NewElement(20, 20)); !errors.Is(err, ErrAttached) {
		t.Errorf("second Attach: got %v, want ErrAttached", err)
	}
	if b.Host() != e {
		t.Error("failed Attach replaced the host")
	}

	if _, err := New(WithCornerRadius(-1)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("New with negative radius: got %v", err)
	}
}

func TestCallsBeforeAttach(t *testing.T) {
	b, _ := New()

	// none of these may panic or have an effect
	b.OnSizeChanged(100, 50)
	b.Update()
	b.Detach()
	if err := b.SetCornerRadius(9); err != nil {
		t.Fatal(err)
	}

	if _, ok := b.Outline(); ok {
		t.Error("unattached behavior reports an outline")
	}

	e := NewElement(100, 50)
	if err := b.Attach(e); err != nil {
		t.Fatal(err)
	}
	if got := installedOutline(t, e); !got.Equal(Build(100, 50, 9)) {
		t.Errorf("radius set before attach was not used: %v", got)
	}
}

func TestDetachedIgnoresEvents(t *testing.T) {
	e := NewElement(100, 50)
	b, _ := New()
	_ = b.Attach(e)
	b.Detach()

	e.Resize(300, 300)
	_ = b.SetCornerRadius(20)
	if e.Clip() != nil {
		t.Errorf("clip changed after detach: %v", e.Clip())
	}
}

func TestReattach(t *testing.T) {
	e1 := NewElement(100, 50)
	e1.SetClip("first")
	e2 := NewElement(60, 60)
	e2.SetClip("second")

	b, _ := New()
	_ = b.Attach(e1)
	b.Detach()
	if err := b.Attach(e2); err != nil {
		t.Fatal(err)
	}
	e1.Resize(10, 10)
	if e1.Clip() != "first" {
		t.Errorf("old host changed: %v", e1.Clip())
	}

	b.Detach()
	if e2.Clip() != "second" {
		t.Errorf("second host: got %v", e2.Clip())
	}
}

func TestElementResize(t *testing.T) {
	e := NewElement(10, 20)
	var sizes [][2]float64
	remove := e.OnResize(func(w, h float64) {
		sizes = append(sizes, [2]float64{w, h})
	})

	e.Resize(10, 20) // unchanged
	e.Resize(30, 20)
	remove()
	e.Resize(40, 40)

	if len(sizes) != 1 || sizes[0] != [2]float64{30, 20} {
		t.Errorf("notifications: %v", sizes)
	}
	if w, h := e.Size(); w != 40 || h != 40 {
		t.Errorf("size: (%g, %g)", w, h)
	}
}

func TestBehaviorLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	b, _ := New(WithLogger(logger))
	e := NewElement(100, 50)
	_ = b.Attach(e)
	e.Resize(200, 80)
	b.Detach()

	out := buf.String()
	for _, msg := range []string{"roundclip: attached", "roundclip: clip rebuilt", "rx=4", "width=200", "roundclip: detached"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output lacks %q:\n%s", msg, out)
		}
	}
}

func TestSetLogger(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	SetLogger(l)
	if Logger() != l {
		t.Error("SetLogger did not install the logger")
	}

	b, _ := New()
	_ = b.Attach(NewElement(1, 1))
	if !strings.Contains(buf.String(), "roundclip: attached") {
		t.Errorf("package logger not used: %q", buf.String())
	}

	SetLogger(nil)
	if Logger() == nil || Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}
