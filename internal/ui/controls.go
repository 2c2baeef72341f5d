package ui

import (
	"image"
	"math"
	"strconv"

	"twenty48/internal/core"
)

// Tunable is a source of HUD parameters. Sources that also implement
// core.ParameterControlsProvider and core.FloatParameterSetter get +/-
// buttons for their controls.
type Tunable interface {
	Parameters() core.ParameterSnapshot
}

type controlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// controlPanel is the input-independent half of the HUD: it tracks control
// values, lays out buttons and applies clicks.
type controlPanel struct {
	width    int
	controls []controlState
	readouts []core.Parameter
	setter   core.FloatParameterSetter
}

func newControlPanel(source Tunable, width int) *controlPanel {
	p := &controlPanel{width: max(width, 0)}
	if provider, ok := source.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			if ctrl.Type != core.ParamTypeFloat {
				continue
			}
			p.controls = append(p.controls, controlState{control: ctrl, value: "--"})
		}
		p.layout()
	}
	if setter, ok := source.(core.FloatParameterSetter); ok {
		p.setter = setter
	}
	return p
}

// refresh copies values from snap. Parameters without a control become
// read-only lines.
func (p *controlPanel) refresh(snap core.ParameterSnapshot) {
	p.readouts = p.readouts[:0]
	values := map[string]core.Parameter{}
	for _, group := range snap.Groups {
		for _, param := range group.Params {
			values[param.Key] = param
		}
	}
	for i := range p.controls {
		state := &p.controls[i]
		param, ok := values[state.control.Key]
		delete(values, state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.floatValue = parsed
		state.value = formatFloat(state.control, parsed)
		state.hasValue = true
	}
	for _, group := range snap.Groups {
		for _, param := range group.Params {
			if _, ok := values[param.Key]; ok {
				p.readouts = append(p.readouts, param)
			}
		}
	}
}

// click handles a left click at panel-local (x, y). It reports whether a
// value changed.
func (p *controlPanel) click(x, y int) bool {
	for i := range p.controls {
		state := &p.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(x, y, state.minusRect) {
			return p.adjust(state, -1)
		}
		if pointInRect(x, y, state.plusRect) {
			return p.adjust(state, 1)
		}
	}
	return false
}

func (p *controlPanel) adjust(state *controlState, direction int) bool {
	if p.setter == nil || direction == 0 {
		return false
	}
	target := state.control.Clamp(state.floatValue + float64(direction)*step(state.control))
	if math.Abs(target-state.floatValue) < 1e-9 {
		return false
	}
	if !p.setter.SetFloatParameter(state.control.Key, target) {
		return false
	}
	state.floatValue = target
	state.value = formatFloat(state.control, target)
	return true
}

func (p *controlPanel) canAdjust(state *controlState, direction int) bool {
	if p.setter == nil || !state.hasValue {
		return false
	}
	target := state.floatValue + float64(direction)*step(state.control)
	if state.control.HasMin && direction < 0 && target < state.control.Min {
		return false
	}
	if state.control.HasMax && direction > 0 && target > state.control.Max {
		return false
	}
	return true
}

func (p *controlPanel) layout() {
	if p.width <= 0 {
		return
	}
	for i := range p.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = top
		p.controls[i].minusRect = minusRect
		p.controls[i].plusRect = plusRect
	}
}

// readoutsTop is the baseline of the first read-only line.
func (p *controlPanel) readoutsTop() int {
	return controlsTop + len(p.controls)*lineHeight + labelBaseline
}

func step(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return 0.05
	}
	return ctrl.Step
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch s := step(ctrl); {
	case s < 0.001:
		precision = 4
	case s < 0.01:
		precision = 3
	case s < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	readoutHeight  = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
