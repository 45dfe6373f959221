// Package cache provides a generic, size-bounded LRU cache.
//
// The surface keeps decoded snapshots here, keyed by snapshot identity, so
// that repeated restores of the same snapshot (a shape preview redrawn on
// every pointer move, undo followed by redo) are memory copies rather than
// image decodes.
//
//	c := cache.New[snapshot.Snapshot, *image.RGBA](8)
//	img, err := c.GetOrLoad(snap, func() (*image.RGBA, error) {
//		return snap.Decode()
//	})
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
