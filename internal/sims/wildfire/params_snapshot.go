package wildfire

import (
	"strconv"

	"wildfire/internal/core"
)

// Parameters reports the active configuration and live wind state.
func (e *Engine) Parameters() core.ParameterSnapshot {
	params := e.cfg.Params
	var counts [StateNonFlammable + 1]int
	for i := range e.grid.cells {
		counts[e.grid.cells[i].state]++
	}
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("rows", "Rows", e.cfg.Rows),
				intParam("cols", "Columns", e.cfg.Cols),
				int64Param("seed", "Seed", e.cfg.Seed),
				floatParam("flammable_chance", "Flammable chance", params.FlammableChance),
			},
		},
		{
			Name: "Status",
			Params: []core.Parameter{
				intParam("step", "Step", e.step),
				intParam("burning", "Burning", counts[StateBurning]),
				intParam("flammable", "Flammable", counts[StateFlammable]),
				intParam("burned_out", "Burned out", counts[StateBurnedOut]),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam("ignition_probability", "Ignition probability", params.IgnitionProbability),
				floatParam("self_ignition_probability", "Self-ignition probability", params.SelfIgnitionProbability),
				intParam("regeneration_threshold", "Regeneration threshold", params.RegenerationThreshold),
			},
		},
		{
			Name: "Wind",
			Params: []core.Parameter{
				{
					Key:   "wind_direction",
					Label: "Wind direction",
					Type:  core.ParamTypeEnum,
					Value: e.CurrentWindDirection().String(),
				},
				intParam("wind_rotation_interval", "Wind rotation interval", params.WindRotationInterval),
				floatParam("wind_strength", "Wind strength", params.WindStrength),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables the HUD may adjust while running.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "ignition_probability", Label: "Ignition", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "self_ignition_probability", Label: "Self-ignition", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "regeneration_threshold", Label: "Regrowth ticks", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "wind_rotation_interval", Label: "Wind interval", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true},
		{Key: "wind_strength", Label: "Wind strength", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 2, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a float tunable, clamping to its valid range.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	params := e.cfg.Params
	switch key {
	case "ignition_probability":
		params.IgnitionProbability = clampFloat(value, 0, 1)
	case "self_ignition_probability":
		params.SelfIgnitionProbability = clampFloat(value, 0, 1)
	case "wind_strength":
		params.WindStrength = clampFloat(value, 0, 2)
	default:
		return false
	}
	return e.applyParams(params)
}

// SetIntParameter updates an integer tunable, clamping to its valid range.
func (e *Engine) SetIntParameter(key string, value int) bool {
	params := e.cfg.Params
	switch key {
	case "regeneration_threshold":
		params.RegenerationThreshold = max(value, 0)
	case "wind_rotation_interval":
		params.WindRotationInterval = max(value, 1)
	default:
		return false
	}
	return e.applyParams(params)
}

func (e *Engine) applyParams(params Params) bool {
	if err := e.grid.Configure(params); err != nil {
		return false
	}
	e.cfg.Params = params
	return true
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
