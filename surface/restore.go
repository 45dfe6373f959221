// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/sketch/snapshot"
)

// Restore is a pending Blit. It resolves exactly once.
type Restore struct {
	done chan struct{}
	err  error

	s       *Surface
	gen     uint64
	applied bool // guarded by s.mu
}

func newRestore() *Restore {
	return &Restore{done: make(chan struct{})}
}

func (r *Restore) resolve(err error) {
	r.err = err
	close(r.done)
}

// Done returns a channel closed when the restore has resolved.
func (r *Restore) Done() <-chan struct{} {
	return r.done
}

// Err returns the outcome of a resolved restore: nil once pixels were
// written, an error wrapping ErrDecode, or ErrSuperseded. Before Done is
// closed it returns nil.
func (r *Restore) Err() error {
	select {
	case <-r.done:
		return r.err
	default:
		return nil
	}
}

// Wait blocks until the restore resolves or ctx is done.
func (r *Restore) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return r.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Blit restores snap into the surface at the origin, clipped to the
// surface. The decode runs in the background; pixels are written only if
// no newer Blit or Clear was issued in the meantime.
func (s *Surface) Blit(snap snapshot.Snapshot) *Restore {
	r := newRestore()
	r.s, r.gen = s, s.nextGeneration()
	go func() {
		img, err := s.decode(snap)
		r.resolve(s.apply(r, img, err))
	}()
	return r
}

// Cancel supersedes the restore if it has not written pixels yet and
// reports whether it did so. A canceled restore resolves with
// ErrSuperseded. Cancel on a restore that already wrote pixels returns
// false and changes nothing.
func (r *Restore) Cancel() bool {
	if r.s == nil {
		return false
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.applied {
		return false
	}
	if r.s.gen == r.gen {
		r.s.gen++
	}
	return true
}

func (s *Surface) nextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

func (s *Surface) decode(snap snapshot.Snapshot) (*image.RGBA, error) {
	return s.decoded.GetOrLoad(snap, func() (*image.RGBA, error) {
		img, err := snap.Decode()
		if err != nil {
			return nil, err
		}
		if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
			return rgba, nil
		}
		b := img.Bounds()
		rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
		return rgba, nil
	})
}

func (s *Surface) apply(r *Restore, img *image.RGBA, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.gen != s.gen {
		slogger().Debug("restore superseded", "generation", r.gen, "current", s.gen)
		return ErrSuperseded
	}
	if err != nil {
		s.err = fmt.Errorf("%w: %w", ErrDecode, err)
		slogger().Warn("restore failed", "err", err)
		return s.err
	}

	s.err = nil
	r.applied = true
	draw.Draw(s.img, img.Bounds().Intersect(s.img.Bounds()), img, image.Point{}, draw.Src)
	return nil
}
