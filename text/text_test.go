package text

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sketch/geom"
)

func mustFace(t *testing.T, family string, size float64) *Face {
	t.Helper()
	f, err := NewFace(family, size)
	if err != nil {
		t.Fatalf("NewFace(%q, %v) error = %v", family, size, err)
	}
	return f
}

func TestLookupFamily(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"", FamilySans, false},
		{"Arial", FamilySans, true},
		{"'Courier New'", FamilyMono, true},
		{"monospace", FamilyMono, true},
		{"sans-bold", FamilyBold, true},
		{"Comic Sans MS", FamilySans, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := LookupFamily(tt.name)
			if f.Name() != tt.want || ok != tt.wantOK {
				t.Errorf("LookupFamily(%q) = %q, %v; want %q, %v", tt.name, f.Name(), ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRegisterFamily(t *testing.T) {
	if err := RegisterFamily("Custom Sans", goregular.TTF, "my-font"); err != nil {
		t.Fatalf("RegisterFamily() error = %v", err)
	}
	if f, ok := LookupFamily("MY-FONT"); !ok || f.Name() != "custom sans" {
		t.Errorf("alias lookup = %q, %v", f.Name(), ok)
	}
	if err := RegisterFamily("broken", []byte("not a font")); !errors.Is(err, ErrInvalidFont) {
		t.Errorf("RegisterFamily(garbage) error = %v, want ErrInvalidFont", err)
	}
}

func TestNewFaceInvalidSize(t *testing.T) {
	for _, size := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		if _, err := NewFace(FamilySans, size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewFace(size=%v) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestMetrics(t *testing.T) {
	small := mustFace(t, FamilySans, 12).Metrics()
	large := mustFace(t, FamilySans, 24).Metrics()

	if small.Ascent <= 0 || small.Descent <= 0 {
		t.Fatalf("Metrics() = %+v, want positive ascent and descent", small)
	}
	if math.Abs(large.Ascent-2*small.Ascent) > 1 {
		t.Errorf("ascent does not scale: %v vs %v", small.Ascent, large.Ascent)
	}
}

func TestShapeAndMeasure(t *testing.T) {
	face := mustFace(t, FamilySans, 20)

	if got := face.Shape(""); got != nil {
		t.Errorf("Shape(\"\") = %v, want nil", got)
	}
	glyphs := face.Shape("abc")
	if len(glyphs) != 3 {
		t.Fatalf("Shape(abc) returned %d glyphs", len(glyphs))
	}
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].X <= glyphs[i-1].X {
			t.Errorf("glyph %d at x=%v does not advance past %v", i, glyphs[i].X, glyphs[i-1].X)
		}
	}
	if face.Measure("abc") <= face.Measure("ab") {
		t.Error("Measure should grow with text")
	}

	mono := mustFace(t, "monospace", 20)
	if a, b := mono.Measure("iii"), mono.Measure("WWW"); math.Abs(a-b) > 1e-6 {
		t.Errorf("monospace widths differ: %v vs %v", a, b)
	}
}

func TestOutlineBounds(t *testing.T) {
	face := mustFace(t, FamilySans, 32)
	origin := geom.Pt(10, 50)

	path, err := face.Outline("Hg", origin)
	if err != nil {
		t.Fatalf("Outline() error = %v", err)
	}
	if path.IsEmpty() {
		t.Fatal("Outline(Hg) is empty")
	}

	m := face.Metrics()
	width := face.Measure("Hg")
	var above, below bool
	for _, line := range path.Flatten(0) {
		for _, p := range line.Points {
			if p.X < origin.X-2 || p.X > origin.X+width+2 {
				t.Fatalf("point %v outside advance box", p)
			}
			if p.Y < origin.Y-m.Ascent-1 || p.Y > origin.Y+m.Descent+1 {
				t.Fatalf("point %v outside line box", p)
			}
			above = above || p.Y < origin.Y-10
			below = below || p.Y > origin.Y+2
		}
	}
	if !above || !below {
		t.Errorf("expected H above and g's descender below the baseline (above=%v below=%v)", above, below)
	}
}

func TestOutlineWhitespace(t *testing.T) {
	path, err := mustFace(t, FamilySans, 16).Outline("   ", geom.Pt(0, 0))
	if err != nil {
		t.Fatalf("Outline() error = %v", err)
	}
	if !path.IsEmpty() {
		t.Error("whitespace should have no outline")
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("e\u0301"); got != "\u00e9" {
		t.Errorf("Normalize(e + combining acute) = %q, want %q", got, "\u00e9")
	}
	if got := Normalize("plain"); got != "plain" {
		t.Errorf("Normalize(plain) = %q", got)
	}
}
