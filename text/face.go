package text

import (
	"fmt"
	"math"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Metrics holds vertical font metrics in pixels. In surface coordinates
// the baseline sits Ascent below the top of a line box.
type Metrics struct {
	Ascent  float64
	Descent float64
	Height  float64
}

// Face is a family at a specific pixel size. A Face is immutable and safe
// for concurrent use.
type Face struct {
	family  *Family
	size    float64
	metrics Metrics
}

// NewFace resolves family (see LookupFamily) and returns a face of the
// given pixel size.
func NewFace(family string, size float64) (*Face, error) {
	f, _ := LookupFamily(family)
	return NewFaceFromFamily(f, size)
}

// NewFaceFromFamily returns a face of f at the given pixel size.
func NewFaceFromFamily(f *Family, size float64) (*Face, error) {
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	var buf sfnt.Buffer
	m, err := f.outl.Metrics(&buf, toFixed(size), xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("text: metrics for %s: %w", f.name, err)
	}
	return &Face{
		family: f,
		size:   size,
		metrics: Metrics{
			Ascent:  fromFixed(m.Ascent),
			Descent: fromFixed(m.Descent),
			Height:  fromFixed(m.Height),
		},
	}, nil
}

// Family returns the face's family name.
func (f *Face) Family() string {
	return f.family.name
}

// Size returns the pixel size.
func (f *Face) Size() float64 {
	return f.size
}

// Metrics returns the face's vertical metrics.
func (f *Face) Metrics() Metrics {
	return f.metrics
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
