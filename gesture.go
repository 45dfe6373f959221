package sketch

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/shape"
	"github.com/gogpu/sketch/snapshot"
	"github.com/gogpu/sketch/surface"
	"github.com/gogpu/sketch/text"
)

// previewOpacity is the alpha of a shape drawn during a drag.
const previewOpacity = 0.5

// freehand is an in-progress pencil, brush or eraser stroke. The style is
// fixed when the stroke starts.
type freehand struct {
	style surface.StrokeStyle
	last  geom.Point
	// phase is the stroked length so far; dashes continue across segments.
	phase float64
}

// shapeDrag is an in-progress shape stamp.
type shapeDrag struct {
	origin, last geom.Point
	// base is the raster at pointer-down. Each preview redraws from it.
	base  snapshot.Snapshot
	kind  shape.Kind
	fill  bool
	style surface.StrokeStyle
}

// textOverlay is an open text edit.
type textOverlay struct {
	at    geom.Point
	color color.NRGBA
	face  *text.Face
	buf   string
}

func (s *Session) setState(st State) {
	if s.state != st {
		Logger().Debug("state", "from", s.state.String(), "to", st.String())
	}
	s.state = st
}

func (s *Session) pointerDown(p geom.Point) error {
	switch s.state {
	case StateTextEdit:
		s.notify(Notice{Level: LevelInfo, Kind: NoticeBusy, Message: "finish the text first", Err: ErrBusy})
		return nil
	case StateFreehand, StateShapeDrag:
		return nil
	}

	switch tool := s.settings.Tool; {
	case tool.Freehand():
		return s.startStroke(p)
	case tool == ToolShape:
		return s.startDrag(p)
	case tool == ToolText:
		return s.startText(p)
	}
	return nil
}

func (s *Session) pointerMove(ctx context.Context, p geom.Point) error {
	switch s.state {
	case StateFreehand:
		s.continueStroke(p)
	case StateShapeDrag:
		return s.previewDrag(ctx, p)
	}
	return nil
}

func (s *Session) pointerUp(ctx context.Context, p geom.Point) error {
	switch s.state {
	case StateFreehand:
		s.continueStroke(p)
		s.endStroke()
	case StateShapeDrag:
		return s.commitDrag(ctx, p)
	}
	return nil
}

func (s *Session) pointerLeave(ctx context.Context) error {
	switch s.state {
	case StateFreehand:
		s.endStroke()
	case StateShapeDrag:
		return s.commitDrag(ctx, s.drag.last)
	}
	return nil
}

func (s *Session) pointerCancel(ctx context.Context) error {
	switch s.state {
	case StateFreehand:
		s.endStroke()
	case StateShapeDrag:
		return s.cancelDrag(ctx)
	}
	return nil
}

// endPointerGesture ends a stroke and cancels a shape drag. An open text
// edit is left alone.
func (s *Session) endPointerGesture(ctx context.Context) error {
	switch s.state {
	case StateFreehand:
		s.endStroke()
	case StateShapeDrag:
		return s.cancelDrag(ctx)
	}
	return nil
}

// finishGesture ends any gesture before a page-level operation. An open
// text edit is committed, as if it lost focus.
func (s *Session) finishGesture(ctx context.Context) error {
	if s.state == StateTextEdit {
		return s.commitText()
	}
	return s.endPointerGesture(ctx)
}

func (s *Session) startStroke(p geom.Point) error {
	style, err := s.settings.strokeStyle()
	if err != nil {
		return fmt.Errorf("sketch: stroke: %w", err)
	}
	if err := s.beginEdit(); err != nil {
		return err
	}
	s.stroke = &freehand{style: style, last: p}
	s.surf.StrokePolyline([]geom.Point{p}, style)
	s.setState(StateFreehand)
	return nil
}

func (s *Session) continueStroke(p geom.Point) {
	f := s.stroke
	if p == f.last {
		return
	}
	seg := f.style
	seg.Dash = f.style.Dash.WithOffset(f.phase)
	s.surf.StrokePolyline([]geom.Point{f.last, p}, seg)
	f.phase += f.last.Distance(p)
	f.last = p
}

func (s *Session) endStroke() {
	s.stroke = nil
	s.setState(StateIdle)
}

func (s *Session) startDrag(p geom.Point) error {
	style, err := s.settings.strokeStyle()
	if err != nil {
		return fmt.Errorf("sketch: shape: %w", err)
	}
	base, err := s.surf.Capture()
	if err != nil {
		return fmt.Errorf("sketch: shape: %w", err)
	}
	s.drag = &shapeDrag{
		origin: p,
		last:   p,
		base:   base,
		kind:   s.settings.Shape,
		fill:   s.settings.Fill,
		style:  style,
	}
	s.setState(StateShapeDrag)
	return nil
}

// previewDrag redraws the pre-drag raster and a translucent outline of
// the shape, so previews never accumulate.
func (s *Session) previewDrag(ctx context.Context, p geom.Point) error {
	d := s.drag
	d.last = p
	if err := s.restore(ctx, d.base); err != nil {
		return err
	}
	preview := d.style
	preview.Opacity = previewOpacity
	s.surf.DrawShape(d.kind, d.origin, p, false, preview)
	return nil
}

func (s *Session) commitDrag(ctx context.Context, end geom.Point) error {
	d := s.drag
	s.drag = nil
	s.setState(StateIdle)

	// The base must come back even if ctx is done, or the preview stays.
	if err := s.restore(context.WithoutCancel(ctx), d.base); err != nil {
		return err
	}
	if err := s.beginEdit(); err != nil {
		return err
	}
	s.surf.DrawShape(d.kind, d.origin, end, d.fill, d.style)
	return nil
}

func (s *Session) cancelDrag(ctx context.Context) error {
	d := s.drag
	s.drag = nil
	s.setState(StateIdle)
	return s.restore(context.WithoutCancel(ctx), d.base)
}

func (s *Session) startText(p geom.Point) error {
	c, err := ParseColor(s.settings.Color)
	if err != nil {
		return fmt.Errorf("sketch: text: %w", err)
	}
	face, err := text.NewFace(s.settings.FontFamily, s.settings.FontSize)
	if err != nil {
		return fmt.Errorf("sketch: text: %w", err)
	}
	s.overlay = &textOverlay{at: p, color: c, face: face}
	s.setState(StateTextEdit)
	return nil
}

func (s *Session) typeText(str string) {
	if s.state != StateTextEdit {
		return
	}
	s.overlay.buf += str
}

func (s *Session) backspace() {
	o := s.overlay
	_, size := utf8.DecodeLastRuneInString(o.buf)
	o.buf = o.buf[:len(o.buf)-size]
}

// commitText rasterizes the open text edit, if it holds any non-blank
// text, and closes it.
func (s *Session) commitText() error {
	if s.state != StateTextEdit {
		return nil
	}
	o := s.overlay
	s.overlay = nil
	s.setState(StateIdle)

	str := strings.TrimSpace(text.Normalize(o.buf))
	if str == "" {
		return nil
	}
	if err := s.beginEdit(); err != nil {
		return err
	}
	if err := s.surf.DrawText(str, o.at, o.face, o.color); err != nil {
		return fmt.Errorf("sketch: %w", err)
	}
	return nil
}

func (s *Session) cancelText() {
	s.overlay = nil
	s.setState(StateIdle)
}

// PendingText returns the text of the open text edit.
func (s *Session) PendingText() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overlay == nil {
		return "", false
	}
	return s.overlay.buf, true
}

var toolShortcuts = map[string]Tool{
	"p": ToolPencil,
	"b": ToolBrush,
	"e": ToolEraser,
	"t": ToolText,
	"s": ToolShape,
}

func (s *Session) keyDown(ctx context.Context, k Key) error {
	if k.command() {
		switch strings.ToLower(k.Name) {
		case "z":
			return s.undo(ctx)
		case "y":
			return s.redo(ctx)
		}
		return nil
	}

	switch s.state {
	case StateTextEdit:
		switch k.Name {
		case KeyEnter:
			return s.commitText()
		case KeyEscape:
			s.cancelText()
		case KeyBackspace:
			s.backspace()
		}
	case StateIdle:
		if tool, ok := toolShortcuts[strings.ToLower(k.Name)]; ok {
			s.settings.Tool = tool
		}
	}
	return nil
}
