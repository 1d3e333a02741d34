//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"wildfire/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// statusKeys are the read-only parameters shown above the controls.
var statusKeys = []string{"step", "wind_direction", "burning", "flammable", "burned_out"}

// HUD renders the status and parameter panel to the right of the grid.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	finished   bool

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width. It
// returns nil when the width leaves no room for a panel.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update refreshes the cached parameter snapshot and handles clicks on the
// adjustment buttons.
func (h *HUD) Update(panelOffsetX int, finished bool) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.finished = finished
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the grid view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawStatus()
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, key := range statusKeys {
		y += statusSpacing
		param, ok := h.snapshot.Lookup(key)
		if !ok {
			continue
		}
		text.Draw(h.panel, param.Label+": "+param.Value, face, panelPadding, y, color.RGBA{R: 170, G: 170, B: 180, A: 255})
	}
	if h.finished {
		y += statusSpacing
		text.Draw(h.panel, "Fire is out (R to restart)", face, panelPadding, y, color.RGBA{R: 255, G: 140, B: 60, A: 255})
	}
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if image.Pt(px, my).In(state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if image.Pt(px, my).In(state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

// target computes the value one step away in the given direction, clamped to
// the control bounds. ok is false when the value would not move.
func (s *hudControlState) target(direction int) (float64, bool) {
	step := s.control.Step
	if step <= 0 {
		step = defaultStep(s.control.Type)
	}
	if s.control.Type == core.ParamTypeInt {
		step = math.Max(1, math.Round(step))
	}
	v := s.floatValue + float64(direction)*step
	if s.control.HasMin && v < s.control.Min {
		v = s.control.Min
	}
	if s.control.HasMax && v > s.control.Max {
		v = s.control.Max
	}
	return v, math.Abs(v-s.floatValue) > 1e-9
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	v, ok := state.target(direction)
	if !ok {
		return
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil {
			h.intSetter.SetIntParameter(state.control.Key, int(math.Round(v)))
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil {
			h.floatSetter.SetFloatParameter(state.control.Key, v)
		}
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if !state.hasValue {
		return false
	}
	if state.control.Type == core.ParamTypeInt && h.intSetter == nil {
		return false
	}
	if state.control.Type == core.ParamTypeFloat && h.floatSetter == nil {
		return false
	}
	_, ok := state.target(direction)
	return ok
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.canAdjust(state, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func defaultStep(t core.ParamType) float64 {
	if t == core.ParamTypeInt {
		return 1
	}
	return 0.05
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusSpacing  = 16
	statusLines    = 6
	controlsTop    = panelPadding + headerBaseline + statusLines*statusSpacing + 8
)
