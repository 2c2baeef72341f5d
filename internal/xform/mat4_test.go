package xform

import (
	"math"
	"strings"
	"testing"

	"twenty48/internal/core"
)

func near(a, b core.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestMulIdentity(t *testing.T) {
	m := Mul(Translation(3, 4, 5), RotationZ(0.7))
	if Mul(Identity(), m) != m || Mul(m, Identity()) != m {
		t.Fatal("identity is not neutral")
	}
}

func TestMulOrder(t *testing.T) {
	// Translate·Scale scales first, then translates.
	m := Mul(Translation(10, 0, 0), Scaling(2, 2, 1))
	if got := m.Apply(core.Vec2{X: 1, Y: 1}); !near(got, core.Vec2{X: 12, Y: 2}) {
		t.Fatalf("T·S(1,1) = %+v", got)
	}
	m = Mul(Scaling(2, 2, 1), Translation(10, 0, 0))
	if got := m.Apply(core.Vec2{X: 1, Y: 1}); !near(got, core.Vec2{X: 22, Y: 2}) {
		t.Fatalf("S·T(1,1) = %+v", got)
	}
}

func TestModelUnrotated(t *testing.T) {
	m := Model(core.Vec2{X: 100, Y: 50}, core.Vec2{X: 80, Y: 40}, 0)
	cases := map[core.Vec2]core.Vec2{
		{X: 0, Y: 0}:     {X: 100, Y: 50},
		{X: 1, Y: 1}:     {X: 180, Y: 90},
		{X: 0.5, Y: 0.5}: {X: 140, Y: 70},
	}
	for in, want := range cases {
		if got := m.Apply(in); !near(got, want) {
			t.Fatalf("Model maps %+v to %+v, want %+v", in, got, want)
		}
	}
	for c := 0; c < 4; c++ {
		if want := [4]float64{0, 0, 0, 1}[c]; m[3][c] != want {
			t.Fatalf("row 3 = %v", m[3])
		}
	}
}

func TestModelRotatesAboutCentre(t *testing.T) {
	pos := core.Vec2{X: 20, Y: 30}
	size := core.Vec2{X: 80, Y: 80}
	centre := core.Vec2{X: 60, Y: 70}

	m := Model(pos, size, math.Pi/2)
	if got := m.Apply(core.Vec2{X: 0.5, Y: 0.5}); !near(got, centre) {
		t.Fatalf("centre moved to %+v", got)
	}
	// A quarter turn maps the top-left corner onto the top-right one.
	if got := m.Apply(core.Vec2{X: 0, Y: 0}); !near(got, core.Vec2{X: 100, Y: 30}) {
		t.Fatalf("corner mapped to %+v", got)
	}
}

func TestModelCompositionOrder(t *testing.T) {
	pos := core.Vec2{X: 7, Y: 9}
	size := core.Vec2{X: 3, Y: 5}
	angle := 0.4
	want := Identity()
	want = Mul(want, Translation(pos.X, pos.Y, 0))
	want = Mul(want, Translation(size.X/2, size.Y/2, 0))
	want = Mul(want, RotationZ(angle))
	want = Mul(want, Translation(-size.X/2, -size.Y/2, 0))
	want = Mul(want, Scaling(size.X, size.Y, 1))
	if got := Model(pos, size, angle); got != want {
		t.Fatalf("Model = %v\nwant %v", got, want)
	}
}

func TestOrthoMapsCorners(t *testing.T) {
	p := Ortho(0, 480, 640, 0, -1, 1)
	cases := map[core.Vec2]core.Vec2{
		{X: 0, Y: 0}:     {X: -1, Y: 1},
		{X: 480, Y: 640}: {X: 1, Y: -1},
		{X: 240, Y: 320}: {X: 0, Y: 0},
	}
	for in, want := range cases {
		if got := p.Apply(in); !near(got, want) {
			t.Fatalf("Ortho maps %+v to %+v, want %+v", in, got, want)
		}
	}
}

func TestTranspose(t *testing.T) {
	m := Translation(1, 2, 3)
	tr := m.Transpose()
	if tr[3][0] != 1 || tr[3][1] != 2 || tr[3][2] != 3 || tr.Transpose() != m {
		t.Fatalf("transpose = %v", tr)
	}
}

func TestString(t *testing.T) {
	s := Identity().String()
	if strings.Count(s, "\n") != 5 || !strings.Contains(s, "1.0000") {
		t.Fatalf("String() = %q", s)
	}
}
