package ui

import (
	"image/color"
	"math"

	"twenty48/internal/core"
)

// ProbeSource lists the cells currently driven by a spring.
type ProbeSource interface {
	SpringProbes() []core.SpringProbe
}

const (
	velocityScale = 0.1   // seconds of travel drawn as the velocity line
	maxSpeed      = 800.0 // px/s mapped to the hottest color
)

// probeMark is the screen geometry of one probe.
type probeMark struct {
	centre core.Vec2 // current centre of the cell
	target core.Vec2 // top-left of the resting slot
	size   core.Vec2
	tip    core.Vec2 // end of the velocity line
	heat   float64   // speed normalised to [0, 1]
}

func probeMarks(dst []probeMark, probes []core.SpringProbe) []probeMark {
	for _, p := range probes {
		centre := p.Position.Add(p.Size.Scale(0.5))
		dst = append(dst, probeMark{
			centre: centre,
			target: p.Target,
			size:   p.Size,
			tip:    centre.Add(p.Velocity.Scale(velocityScale)),
			heat:   clamp01(math.Hypot(p.Velocity.X, p.Velocity.Y) / maxSpeed),
		})
	}
	return dst
}

func heatColor(t float64) color.NRGBA {
	t = clamp01(t)
	return color.NRGBA{
		R: uint8(math.Round(80 + 175*t)),
		G: uint8(math.Round(170 - 90*t)),
		B: uint8(math.Round(230 - 190*t)),
		A: uint8(math.Round(150 + 90*t)),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
