// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package snapshot

import (
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 11), B: 200, A: 255})
		}
	}
	return img
}

func TestZeroSnapshot(t *testing.T) {
	var s Snapshot
	if !s.IsZero() {
		t.Error("zero Snapshot should be absent")
	}
	if s.DataURL() != "" || s.MediaType() != "" || s.Len() != 0 || s.Bytes() != nil {
		t.Error("absent snapshot should report empty accessors")
	}
	if _, err := s.Decode(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Decode() error = %v, want ErrInvalid", err)
	}
}

func TestPNGRoundTripIsLossless(t *testing.T) {
	src := testImage(17, 9)
	s, err := EncodePNG(src)
	if err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	if s.MediaType() != MediaTypePNG {
		t.Errorf("MediaType() = %q", s.MediaType())
	}

	img, err := s.Decode()
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if img.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v, want %v", img.Bounds(), src.Bounds())
	}
	for y := 0; y < 9; y++ {
		for x := 0; x < 17; x++ {
			got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if want := src.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSnapshotIdentity(t *testing.T) {
	img := testImage(4, 4)
	a, _ := EncodePNG(img)
	b, _ := EncodePNG(img)
	c := a

	if a == b {
		t.Error("separate captures must not compare equal")
	}
	if a != c {
		t.Error("copies of a snapshot must compare equal")
	}
}

func TestDataURLRoundTrip(t *testing.T) {
	s, _ := EncodePNG(testImage(3, 3))
	url := s.DataURL()
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Fatalf("DataURL() = %q", url[:min(len(url), 40)])
	}

	parsed, err := ParseDataURL(url)
	if err != nil {
		t.Fatalf("ParseDataURL() error = %v", err)
	}
	if string(parsed.Bytes()) != string(s.Bytes()) {
		t.Error("parsed payload differs")
	}
}

func TestParseDataURLErrors(t *testing.T) {
	png, _ := EncodePNG(testImage(2, 2))
	payload := strings.TrimPrefix(png.DataURL(), "data:image/png;base64,")

	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no prefix", "image/png;base64," + payload},
		{"no comma", "data:image/png;base64"},
		{"not base64 encoded", "data:image/png," + payload},
		{"bad base64", "data:image/png;base64,!!!"},
		{"unsupported type", "data:image/gif;base64," + payload},
		{"mismatched payload", "data:image/jpeg;base64," + payload},
		{"text payload", "data:image/png;base64,aGVsbG8="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDataURL(tt.in); !errors.Is(err, ErrInvalid) {
				t.Errorf("ParseDataURL() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestJSON(t *testing.T) {
	s, _ := EncodePNG(testImage(2, 2))
	type record struct {
		Data  Snapshot `json:"data"`
		Thumb Snapshot `json:"thumbnail"`
	}

	b, err := json.Marshal(record{Data: s})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(b), `"thumbnail":null`) {
		t.Errorf("absent snapshot should marshal as null: %s", b)
	}

	var got record
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.Data.IsZero() || !got.Thumb.IsZero() {
		t.Errorf("Unmarshal() = %v, %v", got.Data, got.Thumb)
	}
	if got.Data.DataURL() != s.DataURL() {
		t.Error("data URL changed across JSON")
	}

	if err := json.Unmarshal([]byte(`{"data":""}`), &got); err != nil || !got.Data.IsZero() {
		t.Errorf("empty string should decode as absent, err = %v", err)
	}
	if err := json.Unmarshal([]byte(`{"data":42}`), &got); err == nil {
		t.Error("non-string data should fail")
	}
}

func TestJSONKeepsInvalidDataURL(t *testing.T) {
	const url = "data:image/png;base64,AAAA"
	var got Snapshot
	if err := json.Unmarshal([]byte(`"`+url+`"`), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.IsZero() {
		t.Fatal("invalid data URL should not decode as absent")
	}
	if !errors.Is(got.Err(), ErrInvalid) {
		t.Errorf("Err() = %v, want ErrInvalid", got.Err())
	}
	if _, err := got.Decode(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Decode() error = %v, want ErrInvalid", err)
	}

	b, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `"`+url+`"` {
		t.Errorf("Marshal() = %s, want the stored data URL", b)
	}

	valid, _ := EncodePNG(testImage(2, 2))
	if valid.Err() != nil {
		t.Errorf("Err() of encoded snapshot = %v", valid.Err())
	}
}

func TestThumbnail(t *testing.T) {
	tests := []struct {
		name         string
		w, h, max    int
		wantW, wantH int
	}{
		{"downscale", 800, 600, 160, 160, 120},
		{"already small", 100, 50, 160, 100, 50},
		{"unbounded", 300, 10, 0, 300, 10},
		{"very wide", 1000, 2, 160, 160, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := Downscale(testImage(tt.w, tt.h), tt.max)
			if img.Bounds().Dx() != tt.wantW || img.Bounds().Dy() != tt.wantH {
				t.Errorf("Downscale() size = %v, want %dx%d", img.Bounds().Size(), tt.wantW, tt.wantH)
			}
		})
	}

	thumb, err := EncodeThumbnail(testImage(800, 600), DefaultThumbnailWidth)
	if err != nil {
		t.Fatalf("EncodeThumbnail() error = %v", err)
	}
	if thumb.MediaType() != MediaTypeJPEG {
		t.Errorf("thumbnail MediaType() = %q", thumb.MediaType())
	}
	decoded, err := thumb.Decode()
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if decoded.Bounds().Dx() != 160 {
		t.Errorf("thumbnail width = %d, want 160", decoded.Bounds().Dx())
	}
}

func TestNewCopiesData(t *testing.T) {
	src, _ := EncodePNG(testImage(2, 2))
	data := src.Bytes()
	s, err := New(MediaTypePNG, data)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	data[0] = 0
	if _, err := s.Decode(); err != nil {
		t.Errorf("mutating input affected snapshot: %v", err)
	}
	if _, err := New(MediaTypePNG, nil); !errors.Is(err, ErrInvalid) {
		t.Errorf("New(nil) error = %v, want ErrInvalid", err)
	}
}
