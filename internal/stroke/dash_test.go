package stroke

import (
	"math"
	"testing"

	"github.com/gogpu/sketch/geom"
)

func TestNewDash(t *testing.T) {
	tests := []struct {
		name    string
		lengths []float64
		wantNil bool
		wantLen float64
	}{
		{"empty", nil, true, 0},
		{"all zero", []float64{0, 0}, true, 0},
		{"even", []float64{10, 5}, false, 15},
		{"odd duplicated", []float64{5}, false, 10},
		{"negative abs", []float64{-4, 2}, false, 6},
		{"groove", []float64{10, 3, 2, 3}, false, 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDash(tt.lengths...)
			if (d == nil) != tt.wantNil {
				t.Fatalf("NewDash(%v) nil = %v, want %v", tt.lengths, d == nil, tt.wantNil)
			}
			if got := d.PatternLength(); got != tt.wantLen {
				t.Errorf("PatternLength() = %v, want %v", got, tt.wantLen)
			}
		})
	}
}

func TestDashNormalizedOffset(t *testing.T) {
	d := NewDash(10, 5)
	tests := []struct {
		offset, want float64
	}{
		{0, 0},
		{7, 7},
		{15, 0},
		{22, 7},
		{-3, 12},
	}
	for _, tt := range tests {
		if got := d.WithOffset(tt.offset).NormalizedOffset(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizedOffset(%v) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestSplitSolid(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 4}}
	runs, walked := (*Dash)(nil).Split(pts)
	if len(runs) != 1 || len(runs[0]) != 2 {
		t.Fatalf("solid split = %v, want a single run", runs)
	}
	if walked != 5 {
		t.Errorf("walked = %v, want 5", walked)
	}
}

func TestSplitDashed(t *testing.T) {
	d := NewDash(10, 5)
	runs, walked := d.Split([]geom.Point{{X: 0, Y: 0}, {X: 40, Y: 0}})
	if walked != 40 {
		t.Errorf("walked = %v, want 40", walked)
	}

	want := [][2]float64{{0, 10}, {15, 25}, {30, 40}}
	if len(runs) != len(want) {
		t.Fatalf("got %d runs, want %d: %v", len(runs), len(want), runs)
	}
	for i, r := range runs {
		start, end := r[0].X, r[len(r)-1].X
		if math.Abs(start-want[i][0]) > 1e-9 || math.Abs(end-want[i][1]) > 1e-9 {
			t.Errorf("run %d spans [%v, %v], want %v", i, start, end, want[i])
		}
	}
}

func TestSplitAcrossCorner(t *testing.T) {
	d := NewDash(10, 5)
	runs, _ := d.Split([]geom.Point{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 6}})
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	// The first dash bends around the corner.
	r := runs[0]
	if len(r) != 3 {
		t.Fatalf("run has %d points, want 3: %v", len(r), r)
	}
	if r[1] != geom.Pt(6, 0) {
		t.Errorf("corner point = %v, want (6, 0)", r[1])
	}
	if math.Abs(r[2].Y-4) > 1e-9 {
		t.Errorf("dash ends at %v, want y=4", r[2])
	}
}

func TestSplitContinuesPhase(t *testing.T) {
	d := NewDash(10, 5)

	// Stroking 0..12 then 12..40 with the carried offset must match a
	// single 0..40 stroke.
	first, walked := d.Split([]geom.Point{{X: 0, Y: 0}, {X: 12, Y: 0}})
	second, _ := d.WithOffset(walked).Split([]geom.Point{{X: 12, Y: 0}, {X: 40, Y: 0}})

	if len(first) != 1 || math.Abs(first[0][len(first[0])-1].X-10) > 1e-9 {
		t.Fatalf("first piece = %v, want one dash ending at 10", first)
	}
	if len(second) != 2 {
		t.Fatalf("second piece = %v, want 2 runs", second)
	}
	if math.Abs(second[0][0].X-15) > 1e-9 {
		t.Errorf("second piece starts at %v, want 15", second[0][0].X)
	}
}

func TestSplitStartsInGap(t *testing.T) {
	d := NewDash(2, 3).WithOffset(3)
	runs, _ := d.Split([]geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0}})
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1: %v", len(runs), runs)
	}
	if math.Abs(runs[0][0].X-2) > 1e-9 || math.Abs(runs[0][len(runs[0])-1].X-4) > 1e-9 {
		t.Errorf("run = %v, want [2, 4]", runs[0])
	}
}

func TestSplitSinglePoint(t *testing.T) {
	runs, walked := NewDash(10, 5).Split([]geom.Point{{X: 1, Y: 1}})
	if len(runs) != 1 || walked != 0 {
		t.Errorf("Split(single) = %v, %v; want a dot", runs, walked)
	}
}
