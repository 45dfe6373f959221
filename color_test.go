package sketch

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#000000", color.NRGBA{0, 0, 0, 255}},
		{"#ffffff", color.NRGBA{255, 255, 255, 255}},
		{"ff5733", color.NRGBA{0xff, 0x57, 0x33, 255}},
		{"#F00", color.NRGBA{255, 0, 0, 255}},
		{"#0f08", color.NRGBA{0, 255, 0, 0x88}},
		{"#11223380", color.NRGBA{0x11, 0x22, 0x33, 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#gggggg", "red"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		c    color.Color
		want string
	}{
		{Background, "#ffffff"},
		{color.NRGBA{0x12, 0xab, 0x00, 255}, "#12ab00"},
		{color.NRGBA{0, 0, 0, 0x80}, "#00000080"},
	}
	for _, tt := range tests {
		if got := Hex(tt.c); got != tt.want {
			t.Errorf("Hex(%v) = %q, want %q", tt.c, got, tt.want)
		}
	}

	c, err := ParseColor(Hex(color.NRGBA{1, 2, 3, 255}))
	if err != nil || c != (color.NRGBA{1, 2, 3, 255}) {
		t.Errorf("ParseColor(Hex()) = %v, %v", c, err)
	}
}
