package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/sketch"
)

// Script is a recorded sequence of editor actions.
//
//	steps:
//	  - action: select-tool
//	    tool: brush
//	  - action: stroke
//	    points: [[10, 10], [80, 40], [120, 90]]
//	  - action: key-down
//	    key: z
//	    mods: [ctrl]
//	  - action: save-page
//	    name: sunset
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is one entry of a script. Action is a sketch action name, or
// "stroke", which expands to pointer-down, pointer-move and pointer-up
// over Points.
type Step struct {
	Action    string      `yaml:"action"`
	At        []float64   `yaml:"at"`
	Points    [][]float64 `yaml:"points"`
	Key       string      `yaml:"key"`
	Mods      []string    `yaml:"mods"`
	Text      string      `yaml:"text"`
	Name      string      `yaml:"name"`
	Tool      string      `yaml:"tool"`
	Index     int         `yaml:"index"`
	Overwrite bool        `yaml:"overwrite"`
	Size      []int       `yaml:"size"`
	// Settings are merged onto the current settings by set-settings.
	Settings yaml.Node `yaml:"settings"`
}

const actionStroke = "stroke"

// ParseScript decodes a YAML script.
func ParseScript(r io.Reader) (*Script, error) {
	var sc Script
	if err := yaml.NewDecoder(r).Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return &sc, nil
}

var modifierNames = map[string]sketch.Modifiers{
	"ctrl":  sketch.ModCtrl,
	"cmd":   sketch.ModMeta,
	"meta":  sketch.ModMeta,
	"shift": sketch.ModShift,
	"alt":   sketch.ModAlt,
}

func point(v []float64) (sketch.Point, error) {
	if len(v) != 2 {
		return sketch.Point{}, fmt.Errorf("point needs 2 coordinates, got %d", len(v))
	}
	return sketch.Pt(v[0], v[1]), nil
}

// actions expands st into session actions. cur is the session settings at
// the time the step runs.
func (st Step) actions(cur sketch.Settings) ([]sketch.Action, error) {
	if strings.EqualFold(st.Action, actionStroke) {
		return st.stroke()
	}

	typ, err := sketch.ParseActionType(st.Action)
	if err != nil {
		return nil, err
	}
	a := sketch.Action{Type: typ, Index: st.Index, Overwrite: st.Overwrite}

	switch typ {
	case sketch.ActionPointerDown, sketch.ActionPointerMove, sketch.ActionPointerUp:
		if a.Point, err = point(st.At); err != nil {
			return nil, fmt.Errorf("%s: %w", typ, err)
		}
	case sketch.ActionKeyDown:
		a.Key.Name = st.Key
		for _, m := range st.Mods {
			mod, ok := modifierNames[strings.ToLower(m)]
			if !ok {
				return nil, fmt.Errorf("%s: unknown modifier %q", typ, m)
			}
			a.Key.Mods |= mod
		}
	case sketch.ActionTextInput:
		a.Text = st.Text
	case sketch.ActionSavePage, sketch.ActionOpenPage:
		a.Text = st.Name
	case sketch.ActionSelectTool:
		a.Tool = sketch.Tool(strings.ToLower(st.Tool))
	case sketch.ActionSetSettings:
		a.Settings = cur
		if !st.Settings.IsZero() {
			if err := st.Settings.Decode(&a.Settings); err != nil {
				return nil, fmt.Errorf("%s: %w", typ, err)
			}
		}
	case sketch.ActionResize:
		if len(st.Size) != 2 {
			return nil, fmt.Errorf("%s: size needs width and height", typ)
		}
		a.Width, a.Height = st.Size[0], st.Size[1]
	}
	return []sketch.Action{a}, nil
}

func (st Step) stroke() ([]sketch.Action, error) {
	if len(st.Points) == 0 {
		return nil, fmt.Errorf("%s: no points", actionStroke)
	}
	out := make([]sketch.Action, 0, len(st.Points)+1)
	for i, v := range st.Points {
		p, err := point(v)
		if err != nil {
			return nil, fmt.Errorf("%s point %d: %w", actionStroke, i, err)
		}
		typ := sketch.ActionPointerMove
		if i == 0 {
			typ = sketch.ActionPointerDown
		}
		out = append(out, sketch.Action{Type: typ, Point: p})
	}
	last := out[len(out)-1].Point
	return append(out, sketch.Action{Type: sketch.ActionPointerUp, Point: last}), nil
}
