// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package snapshot

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Supported media types.
const (
	MediaTypePNG  = "image/png"
	MediaTypeJPEG = "image/jpeg"
)

// ErrInvalid is returned when a data URL or payload cannot be accepted.
var ErrInvalid = errors.New("snapshot: invalid data")

const dataURLPrefix = "data:"

// Snapshot is an immutable encoded raster. The zero value is absent.
type Snapshot struct {
	p *payload
}

type payload struct {
	mediaType string
	data      []byte

	// raw holds a stored data URL that failed validation; invalid says why.
	raw     string
	invalid error
}

// New wraps an already encoded image. The data is copied.
func New(mediaType string, data []byte) (Snapshot, error) {
	if err := checkPayload(mediaType, data); err != nil {
		return Snapshot{}, err
	}
	return Snapshot{p: &payload{mediaType: mediaType, data: bytes.Clone(data)}}, nil
}

func checkPayload(mediaType string, data []byte) error {
	switch mediaType {
	case MediaTypePNG, MediaTypeJPEG:
	default:
		return fmt.Errorf("%w: unsupported media type %q", ErrInvalid, mediaType)
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: empty payload", ErrInvalid)
	}
	if detected := mimetype.Detect(data); !detected.Is(mediaType) {
		return fmt.Errorf("%w: payload is %s, declared %s", ErrInvalid, detected.String(), mediaType)
	}
	return nil
}

// EncodePNG captures img losslessly.
func EncodePNG(img image.Image) (Snapshot, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: encode png: %w", err)
	}
	return Snapshot{p: &payload{mediaType: MediaTypePNG, data: buf.Bytes()}}, nil
}

// EncodeJPEG captures img with the given quality (1-100).
func EncodeJPEG(img image.Image, quality int) (Snapshot, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: encode jpeg: %w", err)
	}
	return Snapshot{p: &payload{mediaType: MediaTypeJPEG, data: buf.Bytes()}}, nil
}

// ParseDataURL decodes a base64 data URL. The payload must match the
// declared media type.
func ParseDataURL(s string) (Snapshot, error) {
	rest, ok := strings.CutPrefix(s, dataURLPrefix)
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: missing %q prefix", ErrInvalid, dataURLPrefix)
	}
	header, encoded, ok := strings.Cut(rest, ",")
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: missing payload separator", ErrInvalid)
	}
	mediaType, ok := strings.CutSuffix(header, ";base64")
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: only base64 data URLs are supported", ErrInvalid)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := checkPayload(mediaType, data); err != nil {
		return Snapshot{}, err
	}
	return Snapshot{p: &payload{mediaType: mediaType, data: data}}, nil
}

// IsZero reports whether the snapshot is absent.
func (s Snapshot) IsZero() bool {
	return s.p == nil
}

// MediaType returns the encoding of the snapshot, or "" if absent.
func (s Snapshot) MediaType() string {
	if s.p == nil {
		return ""
	}
	return s.p.mediaType
}

// Len returns the encoded size in bytes.
func (s Snapshot) Len() int {
	if s.p == nil {
		return 0
	}
	return len(s.p.data)
}

// Bytes returns a copy of the encoded image.
func (s Snapshot) Bytes() []byte {
	if s.p == nil {
		return nil
	}
	return bytes.Clone(s.p.data)
}

// DataURL returns the snapshot as a base64 data URL, or "" if absent.
// An invalid snapshot returns the data URL it was read from.
func (s Snapshot) DataURL() string {
	if s.p == nil {
		return ""
	}
	if s.p.invalid != nil {
		return s.p.raw
	}
	return dataURLPrefix + s.p.mediaType + ";base64," + base64.StdEncoding.EncodeToString(s.p.data)
}

// Err reports why a snapshot read from JSON cannot be decoded, or nil.
func (s Snapshot) Err() error {
	if s.p == nil {
		return nil
	}
	return s.p.invalid
}

// String returns a short description, not the data URL.
func (s Snapshot) String() string {
	if s.p == nil {
		return "Snapshot(absent)"
	}
	if s.p.invalid != nil {
		return fmt.Sprintf("Snapshot(invalid, %d chars)", len(s.p.raw))
	}
	return fmt.Sprintf("Snapshot(%s, %d bytes)", s.p.mediaType, len(s.p.data))
}

// Decode decodes the snapshot into an image.
func (s Snapshot) Decode() (image.Image, error) {
	if s.p == nil {
		return nil, fmt.Errorf("%w: absent snapshot", ErrInvalid)
	}
	if s.p.invalid != nil {
		return nil, s.p.invalid
	}

	r := bytes.NewReader(s.p.data)
	var (
		img image.Image
		err error
	)
	switch s.p.mediaType {
	case MediaTypePNG:
		img, err = png.Decode(r)
	case MediaTypeJPEG:
		img, err = jpeg.Decode(r)
	default:
		err = fmt.Errorf("unsupported media type %q", s.p.mediaType)
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot: decode %s: %w", s.p.mediaType, err)
	}
	return img, nil
}

// MarshalJSON encodes the snapshot as a data URL string, or null if absent.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	if s.p == nil {
		return []byte("null"), nil
	}
	return json.Marshal(s.DataURL())
}

// UnmarshalJSON accepts a data URL string, null or "". A string that is
// not a valid image data URL still unmarshals; the snapshot then carries
// the problem in Err and fails to Decode.
func (s *Snapshot) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = Snapshot{}
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if str == "" {
		*s = Snapshot{}
		return nil
	}
	parsed, err := ParseDataURL(str)
	if err != nil {
		*s = Snapshot{p: &payload{raw: str, invalid: err}}
		return nil
	}
	*s = parsed
	return nil
}
