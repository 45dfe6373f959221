package sketch

import (
	"github.com/gogpu/sketch/page"
	"github.com/gogpu/sketch/storage"
	"github.com/gogpu/sketch/surface"
)

// Default surface size.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// SessionOption configures a Session during creation.
//
// Example:
//
//	kv, _ := storage.Open(ctx, "sqlite", "sketch.db")
//	s, err := sketch.New(
//	    sketch.WithSize(1024, 768),
//	    sketch.WithStorage(kv),
//	    sketch.WithNotifier(func(n sketch.Notice) { log.Println(n) }),
//	)
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	width, height int
	kv            storage.KV
	key           string
	notify        Notifier
	historyLimit  int
	settings      *Settings
	surfaceOpts   []surface.Option
}

func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		width:  DefaultWidth,
		height: DefaultHeight,
		key:    page.DefaultKey,
	}
}

// WithSize sets the surface size in pixels.
func WithSize(width, height int) SessionOption {
	return func(o *sessionOptions) {
		o.width, o.height = width, height
	}
}

// WithStorage sets the key-value store that holds saved pages.
// Without it the session keeps saved pages in memory.
func WithStorage(kv storage.KV) SessionOption {
	return func(o *sessionOptions) {
		o.kv = kv
	}
}

// WithCollectionKey sets the storage key of the saved-page collection.
func WithCollectionKey(key string) SessionOption {
	return func(o *sessionOptions) {
		o.key = key
	}
}

// WithNotifier sets the callback that receives user-facing notices.
func WithNotifier(fn Notifier) SessionOption {
	return func(o *sessionOptions) {
		o.notify = fn
	}
}

// WithHistoryLimit caps the undo history of each page. Zero keeps every entry.
func WithHistoryLimit(n int) SessionOption {
	return func(o *sessionOptions) {
		o.historyLimit = n
	}
}

// WithSettings sets the initial tool settings. They are validated by New.
func WithSettings(s Settings) SessionOption {
	return func(o *sessionOptions) {
		o.settings = &s
	}
}

// WithThumbnailWidth sets the width of page thumbnails.
func WithThumbnailWidth(w int) SessionOption {
	return func(o *sessionOptions) {
		o.surfaceOpts = append(o.surfaceOpts, surface.WithThumbnailWidth(w))
	}
}

// WithSurfaceOptions passes options through to the raster surface.
func WithSurfaceOptions(opts ...surface.Option) SessionOption {
	return func(o *sessionOptions) {
		o.surfaceOpts = append(o.surfaceOpts, opts...)
	}
}
