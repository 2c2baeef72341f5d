// Package anim eases values toward moving targets with an implicit
// spring-damper step that stays stable for large time steps.
package anim

import (
	"math"

	"twenty48/internal/core"
)

// Step advances value x with velocity v toward target xt by dt seconds.
// zeta is the damping ratio and omega the natural angular frequency (rad/s).
// Both results are computed from the incoming x and v.
func Step(x, v, xt, zeta, omega, dt float64) (float64, float64) {
	f := 1 + 2*dt*zeta*omega
	om2 := omega * omega
	dtOm2 := dt * om2
	dt2Om2 := dt * dtOm2
	detInv := 1 / (f + dt2Om2)
	nx := (f*x + dt*v + dt2Om2*xt) * detInv
	nv := (v + dtOm2*(xt-x)) * detInv
	return nx, nv
}

// Spring is the tuning of one animation.
type Spring struct {
	Zeta  float64 // damping ratio: <1 overshoots, 1 is critical
	Omega float64 // natural angular frequency in rad/s
}

// TileSpring is the default tile motion, tuned for core.FixedDT.
var TileSpring = Spring{Zeta: 0.23, Omega: 3 * math.Pi}

// Step advances one axis.
func (s Spring) Step(x, v, xt, dt float64) (float64, float64) {
	return Step(x, v, xt, s.Zeta, s.Omega, dt)
}

// Step2 advances both axes independently with the same tuning.
func (s Spring) Step2(pos, vel, target core.Vec2, dt float64) (core.Vec2, core.Vec2) {
	var np, nv core.Vec2
	np.X, nv.X = s.Step(pos.X, vel.X, target.X, dt)
	np.Y, nv.Y = s.Step(pos.Y, vel.Y, target.Y, dt)
	return np, nv
}

// Settled reports whether x is within eps of xt and nearly at rest.
func Settled(x, v, xt, eps float64) bool {
	return math.Abs(x-xt) <= eps && math.Abs(v) <= eps
}

// Settled2 is Settled for both axes.
func Settled2(pos, vel, target core.Vec2, eps float64) bool {
	return Settled(pos.X, vel.X, target.X, eps) && Settled(pos.Y, vel.Y, target.Y, eps)
}
