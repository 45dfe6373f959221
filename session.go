package sketch

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/gogpu/sketch/history"
	"github.com/gogpu/sketch/page"
	"github.com/gogpu/sketch/snapshot"
	"github.com/gogpu/sketch/storage"
	"github.com/gogpu/sketch/surface"
)

// Session is one drawing editor: a raster surface, the open pages, the
// undo history of the current page, the saved-page collection and the
// interaction state machine that turns actions into raster edits.
//
// Actions are applied one at a time. Every restore a session issues has
// completed (or been canceled) before the action that issued it returns,
// so a restore never lands on top of a later gesture.
//
// The history tracks committed states. After an edit the surface is
// "dirty": it is ahead of the history cursor, and the edited state is
// recorded lazily, when the next edit starts or an undo needs it.
type Session struct {
	mu   sync.Mutex
	opts sessionOptions

	surf   *surface.Surface
	ledger *history.Ledger
	pages  *page.Store
	saved  *page.Collection
	kv     storage.KV
	ownKV  bool

	settings Settings
	state    State
	dirty    bool

	stroke  *freehand
	drag    *shapeDrag
	overlay *textOverlay
}

// New creates a session holding one blank page.
func New(opts ...SessionOption) (*Session, error) {
	o := defaultSessionOptions()
	for _, opt := range opts {
		opt(&o)
	}

	settings := DefaultSettings()
	if o.settings != nil {
		if err := o.settings.Validate(); err != nil {
			return nil, err
		}
		settings = *o.settings
	}

	surf, err := surface.New(o.width, o.height, o.surfaceOpts...)
	if err != nil {
		return nil, fmt.Errorf("sketch: %w", err)
	}

	kv, own := o.kv, false
	if kv == nil {
		kv, own = storage.NewMemory(), true
	}

	s := &Session{
		opts:     o,
		surf:     surf,
		ledger:   history.New(history.WithLimit(o.historyLimit)),
		pages:    page.NewStore(),
		saved:    page.NewCollection(kv, o.key),
		kv:       kv,
		ownKV:    own,
		settings: settings,
	}
	if err := s.blank(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close releases the session. The storage passed to WithStorage is left
// open for its owner to close.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ownKV {
		return s.kv.Close()
	}
	return nil
}

// Dispatch applies one action.
//
// Refused operations (deleting the sole page, opening a missing save,
// saving under a taken name, a snapshot that fails to decode) are reported
// through the notifier and Dispatch returns nil. Storage failures and
// context cancellation are returned as errors.
func (s *Session) Dispatch(ctx context.Context, a Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("sketch: %s: %w", a.Type, err)
	}
	Logger().Debug("dispatch", "action", a.Type.String(), "state", s.state.String())

	switch a.Type {
	case ActionPointerDown:
		return s.pointerDown(a.Point)
	case ActionPointerMove:
		return s.pointerMove(ctx, a.Point)
	case ActionPointerUp:
		return s.pointerUp(ctx, a.Point)
	case ActionPointerLeave:
		return s.pointerLeave(ctx)
	case ActionPointerCancel:
		return s.pointerCancel(ctx)
	case ActionKeyDown:
		return s.keyDown(ctx, a.Key)
	case ActionTextInput:
		s.typeText(a.Text)
		return nil
	case ActionTextCommit:
		return s.commitText()
	case ActionUndo:
		return s.undo(ctx)
	case ActionRedo:
		return s.redo(ctx)
	case ActionClear:
		return s.clear(ctx)
	case ActionSetSettings:
		s.setSettings(a.Settings)
		return nil
	case ActionSelectTool:
		st := s.settings
		st.Tool = a.Tool
		s.setSettings(st)
		return nil
	case ActionNewPage:
		return s.newPage(ctx)
	case ActionSelectPage:
		return s.selectPage(ctx, a.Index)
	case ActionDeletePage:
		return s.deletePage(ctx, a.Index)
	case ActionSavePage:
		return s.savePage(ctx, a.Text, a.Overwrite)
	case ActionOpenPage:
		return s.openPage(ctx, a.Text)
	case ActionResize:
		return s.resize(ctx, a.Width, a.Height)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, a.Type)
	}
}

// PointerDown starts a gesture at p.
func (s *Session) PointerDown(ctx context.Context, p Point) error {
	return s.Dispatch(ctx, Action{Type: ActionPointerDown, Point: p})
}

// PointerMove continues the current gesture at p.
func (s *Session) PointerMove(ctx context.Context, p Point) error {
	return s.Dispatch(ctx, Action{Type: ActionPointerMove, Point: p})
}

// PointerUp ends the current gesture at p.
func (s *Session) PointerUp(ctx context.Context, p Point) error {
	return s.Dispatch(ctx, Action{Type: ActionPointerUp, Point: p})
}

// PointerLeave ends the current gesture at the last known position.
func (s *Session) PointerLeave(ctx context.Context) error {
	return s.Dispatch(ctx, Action{Type: ActionPointerLeave})
}

// PointerCancel aborts a shape drag.
func (s *Session) PointerCancel(ctx context.Context) error {
	return s.Dispatch(ctx, Action{Type: ActionPointerCancel})
}

// KeyDown handles a keyboard shortcut or a text editing key.
func (s *Session) KeyDown(ctx context.Context, k Key) error {
	return s.Dispatch(ctx, Action{Type: ActionKeyDown, Key: k})
}

// TypeText appends str to the open text edit.
func (s *Session) TypeText(ctx context.Context, str string) error {
	return s.Dispatch(ctx, Action{Type: ActionTextInput, Text: str})
}

// CommitText commits the open text edit, as when it loses focus.
func (s *Session) CommitText(ctx context.Context) error {
	return s.Dispatch(ctx, Action{Type: ActionTextCommit})
}

// Undo steps back one history entry.
func (s *Session) Undo(ctx context.Context) error {
	return s.Dispatch(ctx, Action{Type: ActionUndo})
}

// Redo steps forward one history entry.
func (s *Session) Redo(ctx context.Context) error {
	return s.Dispatch(ctx, Action{Type: ActionRedo})
}

// Clear fills the current page with the background and resets its history.
func (s *Session) Clear(ctx context.Context) error {
	return s.Dispatch(ctx, Action{Type: ActionClear})
}

// SetSettings replaces the tool settings. Invalid settings are refused
// with a notice; use Settings.Validate to check them beforehand.
func (s *Session) SetSettings(ctx context.Context, st Settings) error {
	return s.Dispatch(ctx, Action{Type: ActionSetSettings, Settings: st})
}

// SelectTool switches the active tool.
func (s *Session) SelectTool(ctx context.Context, t Tool) error {
	return s.Dispatch(ctx, Action{Type: ActionSelectTool, Tool: t})
}

// NewPage persists the current page and opens a blank one.
func (s *Session) NewPage(ctx context.Context) error {
	return s.Dispatch(ctx, Action{Type: ActionNewPage})
}

// SelectPage persists the current page and switches to page i.
func (s *Session) SelectPage(ctx context.Context, i int) error {
	return s.Dispatch(ctx, Action{Type: ActionSelectPage, Index: i})
}

// DeletePage closes page i.
func (s *Session) DeletePage(ctx context.Context, i int) error {
	return s.Dispatch(ctx, Action{Type: ActionDeletePage, Index: i})
}

// SavePage saves the current page to storage under name and renames it.
func (s *Session) SavePage(ctx context.Context, name string, overwrite bool) error {
	return s.Dispatch(ctx, Action{Type: ActionSavePage, Text: name, Overwrite: overwrite})
}

// OpenPage opens the page saved under name.
func (s *Session) OpenPage(ctx context.Context, name string) error {
	return s.Dispatch(ctx, Action{Type: ActionOpenPage, Text: name})
}

// Resize changes the surface size. Content is kept at the origin, new
// area is filled with the background, and the page history restarts from
// the resized raster.
func (s *Session) Resize(ctx context.Context, width, height int) error {
	return s.Dispatch(ctx, Action{Type: ActionResize, Width: width, Height: height})
}

// State returns the interaction state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Settings returns the current tool settings.
func (s *Session) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// CanUndo reports whether Undo would change the raster.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty || s.ledger.CanUndo()
}

// CanRedo reports whether Redo would change the raster.
func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.dirty && s.ledger.CanRedo()
}

// Image returns a copy of the current pixels.
func (s *Session) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surf.Image()
}

// Bounds returns the surface bounds.
func (s *Session) Bounds() image.Rectangle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surf.Bounds()
}

// EncodePNG writes the current pixels to w as PNG.
func (s *Session) EncodePNG(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surf.EncodePNG(w)
}

// Capture encodes the current pixels.
func (s *Session) Capture() (snapshot.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surf.Capture()
}

// beginEdit is called before every raster edit that should become one
// undo step. A dirty surface is recorded first; otherwise the redo future
// is discarded, since the edit branches from the cursor.
func (s *Session) beginEdit() error {
	if s.dirty {
		if err := s.flush(); err != nil {
			return err
		}
	} else {
		s.ledger.DiscardRedo()
	}
	s.dirty = true
	return nil
}

// flush records a dirty surface as the newest history entry.
func (s *Session) flush() error {
	if !s.dirty {
		return nil
	}
	snap, err := s.surf.Capture()
	if err != nil {
		return fmt.Errorf("sketch: record history: %w", err)
	}
	s.ledger.Record(snap)
	s.dirty = false
	return nil
}

// blank fills the surface with the background and restarts the history
// from it.
func (s *Session) blank() error {
	s.surf.Clear(Background)
	snap, err := s.surf.Capture()
	if err != nil {
		return fmt.Errorf("sketch: capture blank page: %w", err)
	}
	s.ledger.Reset(snap)
	s.dirty = false
	return nil
}

// restore blits snap and waits for it. A restore cut short by ctx is
// canceled so that it cannot land after a later action.
func (s *Session) restore(ctx context.Context, snap snapshot.Snapshot) error {
	r := s.surf.Blit(snap)
	err := r.Wait(ctx)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		if !r.Cancel() {
			return nil
		}
		return fmt.Errorf("sketch: restore: %w", err)
	}
	return err
}

func (s *Session) undo(ctx context.Context) error {
	if err := s.endPointerGesture(ctx); err != nil {
		return err
	}
	if err := s.flush(); err != nil {
		return err
	}
	snap, ok := s.ledger.Undo()
	if !ok {
		return nil
	}
	if err := s.restore(ctx, snap); err != nil {
		s.ledger.Redo()
		return s.restoreFailed(err, "cannot restore the previous state")
	}
	return nil
}

func (s *Session) redo(ctx context.Context) error {
	if err := s.endPointerGesture(ctx); err != nil {
		return err
	}
	if s.dirty {
		return nil
	}
	snap, ok := s.ledger.Redo()
	if !ok {
		return nil
	}
	if err := s.restore(ctx, snap); err != nil {
		s.ledger.Undo()
		return s.restoreFailed(err, "cannot restore the next state")
	}
	return nil
}

// restoreFailed turns a decode failure into a notice and passes any other
// error through.
func (s *Session) restoreFailed(err error, msg string) error {
	if errors.Is(err, surface.ErrDecode) {
		s.refuse(NoticeDecodeFailed, msg, err)
		return nil
	}
	return err
}

func (s *Session) clear(ctx context.Context) error {
	if err := s.finishGesture(ctx); err != nil {
		return err
	}
	return s.blank()
}

func (s *Session) setSettings(st Settings) {
	if err := st.Validate(); err != nil {
		s.refuse(NoticeInvalidSettings, "settings rejected", err)
		return
	}
	s.settings = st
}

func (s *Session) resize(ctx context.Context, width, height int) error {
	if err := s.finishGesture(ctx); err != nil {
		return err
	}
	old := s.surf.Bounds()
	if err := s.surf.Resize(width, height); err != nil {
		return fmt.Errorf("sketch: %w", err)
	}
	if width > old.Dx() {
		s.surf.FillRect(image.Rect(old.Dx(), 0, width, height), Background)
	}
	if height > old.Dy() {
		s.surf.FillRect(image.Rect(0, old.Dy(), width, height), Background)
	}

	snap, err := s.surf.Capture()
	if err != nil {
		return fmt.Errorf("sketch: capture resized page: %w", err)
	}
	s.ledger.Reset(snap)
	s.dirty = false
	return nil
}
