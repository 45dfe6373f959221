// Package sketch is the core of a raster drawing editor: freehand strokes,
// shape stamping, text annotation, multiple pages, undo/redo history and
// local persistence, with no user interface attached.
//
// # Quick Start
//
//	s, err := sketch.New(sketch.WithSize(640, 480))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	ctx := context.Background()
//	s.PointerDown(ctx, sketch.Pt(10, 10))
//	s.PointerMove(ctx, sketch.Pt(120, 80))
//	s.PointerUp(ctx, sketch.Pt(200, 40))
//	s.Undo(ctx)
//
//	f, _ := os.Create("page.png")
//	s.EncodePNG(f)
//
// # Actions
//
// A Session is driven by Actions, delivered through Dispatch or the
// convenience methods that wrap it. Pointer coordinates are surface-local;
// translating from a viewport is the caller's job. Keyboard actions carry
// the shortcuts of the editor: Ctrl/Cmd+Z and Ctrl/Cmd+Y for undo and
// redo, p/b/e/t/s to pick a tool, Enter and Escape to commit or cancel a
// text edit.
//
// # Interaction States
//
// A session is Idle, drawing a freehand stroke, dragging a shape, or
// editing text. Pencil, brush and eraser strokes follow the pointer; a
// shape drag previews the shape at half opacity and stamps it on release;
// a text edit buffers typed text and rasterizes it on commit.
//
// # Pages and Storage
//
// Each session holds an ordered list of open pages, one of which is shown
// on the surface. Pages can be saved by name into a key-value store (see
// package storage) and opened again later.
//
// # Notices
//
// Operations the user asked for but that cannot be carried out, such as
// deleting the only page, are reported as a Notice to the function given
// to WithNotifier rather than as an error.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down.
package sketch

// Version is the current version of the library.
const Version = "0.1.0"
