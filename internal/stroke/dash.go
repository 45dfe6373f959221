package stroke

import (
	"math"

	"github.com/gogpu/sketch/geom"
)

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating dash and gap lengths.
// For example, [5, 3] creates a pattern of 5 units dash, 3 units gap.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// An odd-length array is logically duplicated ([5] becomes [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Returns nil if no lengths are provided or all lengths are zero,
// which callers treat as a solid line.
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}

	positive := false
	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
		if normalized[i] > 0 {
			positive = true
		}
	}
	if !positive {
		return nil
	}
	return &Dash{Array: normalized}
}

// WithOffset returns a new Dash with the given offset.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// PatternLength returns the total length of one complete pattern cycle.
func (d *Dash) PatternLength() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, l := range d.effectiveArray() {
		total += l
	}
	return total
}

// IsDashed reports whether d describes a broken line.
func (d *Dash) IsDashed() bool {
	return d.PatternLength() > 0
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: append([]float64(nil), d.Array...), Offset: d.Offset}
}

// NormalizedOffset returns the offset reduced into one pattern cycle.
func (d *Dash) NormalizedOffset() float64 {
	patternLen := d.PatternLength()
	if patternLen <= 0 {
		return 0
	}
	offset := math.Mod(d.Offset, patternLen)
	if offset < 0 {
		offset += patternLen
	}
	return offset
}

func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

// dashWalker tracks the position inside the pattern.
type dashWalker struct {
	array     []float64
	index     int
	remaining float64
}

func newDashWalker(d *Dash) *dashWalker {
	w := &dashWalker{array: d.effectiveArray()}
	pos := d.NormalizedOffset()
	for pos >= w.array[w.index] {
		pos -= w.array[w.index]
		w.index = (w.index + 1) % len(w.array)
	}
	w.remaining = w.array[w.index] - pos
	return w
}

func (w *dashWalker) on() bool {
	return w.index%2 == 0
}

func (w *dashWalker) advance() {
	w.index = (w.index + 1) % len(w.array)
	w.remaining = w.array[w.index]
}

// Split walks pts and returns the runs of the polyline that fall on dashes,
// together with the arc length walked. A nil or solid dash returns pts as a
// single run. Zero-length dashes produce single-point runs, which round
// caps render as dots.
func (d *Dash) Split(pts []geom.Point) ([][]geom.Point, float64) {
	if len(pts) == 0 {
		return nil, 0
	}
	var total float64
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].Distance(pts[i])
	}
	if !d.IsDashed() {
		return [][]geom.Point{pts}, total
	}

	const eps = 1e-9
	w := newDashWalker(d)

	var (
		runs [][]geom.Point
		run  []geom.Point
	)
	if w.on() {
		run = []geom.Point{pts[0]}
	}
	flush := func() {
		if len(run) > 0 {
			runs = append(runs, run)
		}
		run = nil
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := a.Distance(b)
		if segLen < eps {
			continue
		}
		for t := 0.0; segLen-t > eps; {
			step := math.Min(w.remaining, segLen-t)
			t += step
			w.remaining -= step
			p := a.Lerp(b, t/segLen)
			if w.on() {
				run = append(run, p)
			}
			for w.remaining <= eps {
				if w.on() {
					flush()
				}
				w.advance()
				if w.on() {
					run = []geom.Point{p}
				}
			}
		}
	}
	if w.on() {
		flush()
	}
	return runs, total
}
