package sketch

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/gogpu/sketch/shape"
	"github.com/gogpu/sketch/surface"
)

// Tool is the active drawing tool.
type Tool string

// Tools.
const (
	ToolPencil Tool = "pencil"
	ToolBrush  Tool = "brush"
	ToolEraser Tool = "eraser"
	ToolText   Tool = "text"
	ToolShape  Tool = "shape"
)

// Freehand reports whether t draws strokes that follow the pointer.
func (t Tool) Freehand() bool {
	return t == ToolPencil || t == ToolBrush || t == ToolEraser
}

// PaintStyle is the line style applied to strokes and shape outlines.
type PaintStyle string

// Paint styles.
const (
	StyleSolid  PaintStyle = "solid"
	StyleDashed PaintStyle = "dashed"
	StyleDotted PaintStyle = "dotted"
	StyleDouble PaintStyle = "double"
	StyleGroove PaintStyle = "groove"
	StyleRidge  PaintStyle = "ridge"
)

var dashPatterns = map[PaintStyle][]float64{
	StyleDashed: {10, 5},
	StyleDotted: {2, 3},
	StyleGroove: {10, 3, 2, 3},
	StyleRidge:  {10, 3, 2, 3, 2, 3},
}

// DashPattern returns the dash lengths for s, or nil for a solid line.
func (s PaintStyle) DashPattern() []float64 {
	return append([]float64(nil), dashPatterns[s]...)
}

// Settings is the tool configuration read when a gesture starts.
type Settings struct {
	Tool           Tool       `yaml:"tool" validate:"oneof=pencil brush eraser text shape"`
	Color          string     `yaml:"color" validate:"required,hexcolor"`
	SecondaryColor string     `yaml:"secondary_color" validate:"required,hexcolor"`
	Width          float64    `yaml:"width" validate:"gt=0,lte=100"`
	Style          PaintStyle `yaml:"style" validate:"oneof=solid dashed dotted double groove ridge"`
	Shape          shape.Kind `yaml:"shape" validate:"shapekind"`
	Fill           bool       `yaml:"fill"`
	FontFamily     string     `yaml:"font_family" validate:"required,max=64"`
	FontSize       float64    `yaml:"font_size" validate:"gt=0,lte=400"`
}

// DefaultSettings returns the settings of a fresh session.
func DefaultSettings() Settings {
	return Settings{
		Tool:           ToolPencil,
		Color:          "#000000",
		SecondaryColor: "#ffffff",
		Width:          5,
		Style:          StyleSolid,
		Shape:          shape.Rectangle,
		FontFamily:     "Arial",
		FontSize:       16,
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func newSettingsValidator() (*validator.Validate, error) {
	v := validator.New()
	err := v.RegisterValidation("shapekind", func(fl validator.FieldLevel) bool {
		k, ok := fl.Field().Interface().(shape.Kind)
		return ok && k.Valid()
	})
	if err != nil {
		return nil, fmt.Errorf("register shapekind validation: %w", err)
	}
	return v, nil
}

func settingsValidator() *validator.Validate {
	validateOnce.Do(func() {
		v, err := newSettingsValidator()
		if err != nil {
			panic("sketch: " + err.Error())
		}
		validate = v
	})
	return validate
}

// Validate checks every field. The error wraps ErrInvalidSettings.
func (s Settings) Validate() error {
	err := settingsValidator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return fmt.Errorf("%w: %s", ErrInvalidSettings, strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color such as #ff5733", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// strokeStyle resolves the settings into the fixed style of one stroke.
func (s Settings) strokeStyle() (surface.StrokeStyle, error) {
	c, err := ParseColor(s.Color)
	if err != nil {
		return surface.StrokeStyle{}, err
	}
	style := surface.StrokeStyle{Color: c, Width: s.Width}
	if s.Tool == ToolEraser {
		style.Color = Background
	}
	if s.Style == StyleDouble {
		style.Width = s.Width / 2
	} else {
		style.Dash = surface.NewDash(dashPatterns[s.Style]...)
	}
	return style, nil
}
