package game

import (
	"strconv"

	"twenty48/internal/core"
)

const (
	paramTileZeta  = "tile_zeta"
	paramTileOmega = "tile_omega"
	paramPopMS     = "pop_ms"
)

// Parameters returns a snapshot for the debug HUD.
func (l *Loop) Parameters() core.ParameterSnapshot {
	st := l.Stats()
	t := l.ctx.Tuning
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Loop",
			Params: []core.Parameter{
				core.TextParam("state", "State", st.Active.String()),
				core.Uint64Param("frames", "Frames", st.Frames),
				core.Uint64Param("updates", "Updates", st.Updates),
				core.TextParam("lag", "Lag", st.Lag.String()),
			},
		},
		{
			Name: "Tile spring",
			Params: []core.Parameter{
				core.FloatParam(paramTileZeta, "Damping", t.Tile.Zeta),
				core.FloatParam(paramTileOmega, "Frequency", t.Tile.Omega),
				core.IntParam(paramPopMS, "Pop ms", int(t.Pop.Milliseconds())),
			},
			Summary: "zeta " + strconv.FormatFloat(t.Tile.Zeta, 'f', 2, 64) +
				", omega " + strconv.FormatFloat(t.Tile.Omega, 'f', 2, 64),
		},
	}}
}

// ParameterControls lists the HUD-adjustable tuning values.
func (l *Loop) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: paramTileZeta, Label: "Damping", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 2, HasMin: true, HasMax: true},
		{Key: paramTileOmega, Label: "Frequency", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, Max: 60, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a tuning value by key. It reports whether the key
// was recognised.
func (l *Loop) SetFloatParameter(key string, value float64) bool {
	for _, c := range l.ParameterControls() {
		if c.Key != key {
			continue
		}
		value = c.Clamp(value)
		switch key {
		case paramTileZeta:
			l.ctx.Tuning.Tile.Zeta = value
		case paramTileOmega:
			l.ctx.Tuning.Tile.Omega = value
		}
		l.ctx.Log.Printf("tuning: %s = %g", key, value)
		return true
	}
	return false
}

var (
	_ core.ParameterControlsProvider = (*Loop)(nil)
	_ core.FloatParameterSetter      = (*Loop)(nil)
)
