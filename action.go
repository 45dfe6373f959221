package sketch

import (
	"fmt"
	"strings"

	"github.com/gogpu/sketch/geom"
)

// Point is a surface-local position.
type Point = geom.Point

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return geom.Pt(x, y)
}

// ActionType identifies an Action.
type ActionType uint8

// Action types.
const (
	ActionPointerDown ActionType = iota + 1
	ActionPointerMove
	ActionPointerUp
	ActionPointerLeave
	ActionPointerCancel
	ActionKeyDown
	ActionTextInput
	ActionTextCommit
	ActionUndo
	ActionRedo
	ActionClear
	ActionSetSettings
	ActionSelectTool
	ActionNewPage
	ActionSelectPage
	ActionDeletePage
	ActionSavePage
	ActionOpenPage
	ActionResize

	actionEnd
)

var actionNames = [actionEnd]string{
	ActionPointerDown:   "pointer-down",
	ActionPointerMove:   "pointer-move",
	ActionPointerUp:     "pointer-up",
	ActionPointerLeave:  "pointer-leave",
	ActionPointerCancel: "pointer-cancel",
	ActionKeyDown:       "key-down",
	ActionTextInput:     "text-input",
	ActionTextCommit:    "text-commit",
	ActionUndo:          "undo",
	ActionRedo:          "redo",
	ActionClear:         "clear",
	ActionSetSettings:   "set-settings",
	ActionSelectTool:    "select-tool",
	ActionNewPage:       "new-page",
	ActionSelectPage:    "select-page",
	ActionDeletePage:    "delete-page",
	ActionSavePage:      "save-page",
	ActionOpenPage:      "open-page",
	ActionResize:        "resize",
}

func (t ActionType) String() string {
	if t > 0 && t < actionEnd {
		return actionNames[t]
	}
	return fmt.Sprintf("ActionType(%d)", t)
}

// ParseActionType resolves an action name such as "pointer-down".
func ParseActionType(name string) (ActionType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t := ActionType(1); t < actionEnd; t++ {
		if actionNames[t] == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// MarshalText implements encoding.TextMarshaler.
func (t ActionType) MarshalText() ([]byte, error) {
	if t == 0 || t >= actionEnd {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAction, t)
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ActionType) UnmarshalText(b []byte) error {
	parsed, err := ParseActionType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Modifiers is a set of held modifier keys.
type Modifiers uint8

// Modifier keys.
const (
	ModCtrl Modifiers = 1 << iota
	ModMeta
	ModShift
	ModAlt
)

// Key is a discrete keyboard event. Name is a single character for
// printable keys, or one of "Enter", "Escape" and "Backspace".
type Key struct {
	Name string
	Mods Modifiers
}

// Key names.
const (
	KeyEnter     = "Enter"
	KeyEscape    = "Escape"
	KeyBackspace = "Backspace"
)

// command reports whether Ctrl or Cmd is held.
func (k Key) command() bool {
	return k.Mods&(ModCtrl|ModMeta) != 0
}

// Action is one input to Session.Dispatch. Only the fields relevant to
// Type are read.
type Action struct {
	Type ActionType

	// Point is the surface-local position of pointer actions.
	Point geom.Point
	// Key is the key of ActionKeyDown.
	Key Key
	// Text is the typed text of ActionTextInput and the page name of
	// ActionSavePage and ActionOpenPage.
	Text string
	// Tool is the tool of ActionSelectTool.
	Tool Tool
	// Settings replaces the tool settings for ActionSetSettings.
	Settings Settings
	// Index is the page index of ActionSelectPage and ActionDeletePage.
	Index int
	// Overwrite allows ActionSavePage to replace a saved page.
	Overwrite bool
	// Width and Height are the new surface size of ActionResize.
	Width, Height int
}
