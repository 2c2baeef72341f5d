package game

import (
	"errors"
	"io"
	"log"
	"slices"
	"testing"
	"time"

	"twenty48/internal/core"
	"twenty48/internal/input"
	"twenty48/internal/render"
)

type recordingMusic struct {
	played []string
	stops  int
}

func (m *recordingMusic) Play(track string) { m.played = append(m.played, track) }
func (m *recordingMusic) Stop()             { m.stops++ }

func testAtlas() render.StaticAtlas {
	a := render.StaticAtlas{
		"bg":    {X: 480, Y: 640},
		"press": {X: 200, Y: 40},
	}
	for v := 2; v <= 2048; v *= 2 {
		a[render.TileTexture(v)] = core.Vec2{X: 80, Y: 80}
	}
	return a
}

func testContext() (*Context, *recordingMusic) {
	music := &recordingMusic{}
	return &Context{
		Width:  480,
		Height: 640,
		Atlas:  testAtlas(),
		Music:  music,
		Log:    log.New(io.Discard, "", 0),
		Tuning: DefaultTuning(),
		RNG:    core.NewRNG(1),
	}, music
}

func testLoop(t *testing.T) (*Loop, *core.ManualClock, *recordingMusic) {
	t.Helper()
	ctx, music := testContext()
	clock := &core.ManualClock{}
	l, err := NewLoop(ctx, clock)
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	return l, clock, music
}

func TestNewLoopRequiresCollaborators(t *testing.T) {
	cases := map[string]func(*Context) *Context{
		"nil context": func(*Context) *Context { return nil },
		"no size":     func(c *Context) *Context { c.Width = 0; return c },
		"no atlas":    func(c *Context) *Context { c.Atlas = nil; return c },
		"no rng":      func(c *Context) *Context { c.RNG = nil; return c },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			ctx, _ := testContext()
			if _, err := NewLoop(mutate(ctx), &core.ManualClock{}); !errors.Is(err, ErrNotReady) {
				t.Fatalf("err = %v, want ErrNotReady", err)
			}
		})
	}

	ctx, _ := testContext()
	if _, err := NewLoop(ctx, nil); !errors.Is(err, ErrNotReady) {
		t.Fatalf("nil clock err = %v", err)
	}
}

func TestNewLoopDefaultsLogger(t *testing.T) {
	ctx, _ := testContext()
	ctx.Log = nil
	if _, err := NewLoop(ctx, &core.ManualClock{}); err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	if ctx.Log == nil {
		t.Fatal("logger not defaulted")
	}
}

func TestIntroAdvancesOnKeyUp(t *testing.T) {
	l, _, music := testLoop(t)
	if l.Active() != KindIntro {
		t.Fatalf("initial state = %s", l.Active())
	}

	l.Advance([]input.Event{input.Press(input.KeySpace)})
	if l.Active() != KindIntro {
		t.Fatal("key-down left the intro")
	}

	l.Advance([]input.Event{input.Release(input.KeyEnter)})
	if l.Active() != KindGameplay || l.Machine().Depth() != 1 {
		t.Fatalf("after key-up: %s depth %d", l.Active(), l.Machine().Depth())
	}

	l.Advance([]input.Event{input.Release(input.KeyEnter), input.Release(input.KeyLeft)})
	if l.Active() != KindGameplay || l.Machine().Depth() != 1 {
		t.Fatal("gameplay transitioned on key-up")
	}
	if !slices.Equal(music.played, []string{"intro", "game"}) {
		t.Fatalf("music = %v", music.played)
	}
}

func TestIntroInputDoesNotTick(t *testing.T) {
	l, _, _ := testLoop(t)
	l.Advance([]input.Event{input.Press(input.KeyUp), input.Press(input.KeyDown)})
	intro := l.Machine().Top().(*Intro)
	if intro.Ticks != 0 || intro.Elapsed != 0 {
		t.Fatalf("input ticked the intro: %+v", intro)
	}
}

func TestFixedStepUpdateCount(t *testing.T) {
	l, clock, _ := testLoop(t)
	l.SetStep(8 * time.Millisecond)

	total := 0
	for _, d := range []time.Duration{10, 3, 9} {
		clock.Advance(d * time.Millisecond)
		total += l.Advance(nil)
	}
	if total != 2 {
		t.Fatalf("updates = %d, want 2", total)
	}
	if got := l.Stats().Lag; got != 6*time.Millisecond {
		t.Fatalf("lag = %v, want 6ms", got)
	}
	intro := l.Machine().Top().(*Intro)
	if intro.Ticks != 2 || intro.Elapsed != 16*time.Millisecond {
		t.Fatalf("intro = %+v", intro)
	}
}

func TestRealStepRunsAtFixedDT(t *testing.T) {
	l, clock, _ := testLoop(t)
	clock.Advance(200 * time.Millisecond)
	if n := l.Advance(nil); n != 24 {
		t.Fatalf("updates in 200ms = %d, want 24", n)
	}
}

func TestStallTimeIsCaughtUp(t *testing.T) {
	l, clock, _ := testLoop(t)
	total := 0
	for range 4 {
		clock.Advance(time.Second)
		total += l.Advance(nil)
	}
	if want := int(4 * time.Second / core.FixedDT); total != want {
		t.Fatalf("updates over 4s of stalls = %d, want %d", total, want)
	}
	if lag := l.Stats().Lag; lag >= core.FixedDT {
		t.Fatalf("lag after catch-up = %v", lag)
	}
}

func TestRenderIsReadOnly(t *testing.T) {
	l, clock, _ := testLoop(t)
	l.Advance([]input.Event{input.Release(input.KeySpace)})
	clock.Advance(50 * time.Millisecond)
	l.Advance(nil)

	g := l.Machine().Top().(*Gameplay)
	before := slices.Clone(g.Grid.Cells())
	anims := slices.Clone(g.anims)

	var rec render.Recorder
	l.Render(&rec)
	first := slices.Clone(rec.Sprites)
	rec.Reset()
	l.Render(&rec)

	if !slices.Equal(before, g.Grid.Cells()) {
		t.Fatal("render changed the grid")
	}
	if !slices.Equal(anims, g.anims) {
		t.Fatal("render changed animations")
	}
	if !slices.Equal(first, rec.Sprites) {
		t.Fatal("two renders of the same state differ")
	}
}

func TestQuitEndsAfterRender(t *testing.T) {
	l, _, _ := testLoop(t)
	l.Advance([]input.Event{input.Quit()})
	if l.Done() {
		t.Fatal("loop done before render")
	}
	var rec render.Recorder
	l.Render(&rec)
	if !l.Done() || len(rec.Sprites) == 0 {
		t.Fatalf("done=%v sprites=%d", l.Done(), len(rec.Sprites))
	}
}

func TestQuitStopsMusic(t *testing.T) {
	l, _, music := testLoop(t)
	var rec render.Recorder
	l.Advance(nil)
	l.Render(&rec)
	if music.stops != 0 {
		t.Fatalf("music stopped while running: %d", music.stops)
	}

	l.Advance([]input.Event{input.Quit()})
	l.Render(&rec)
	l.Render(&rec)
	if music.stops != 1 {
		t.Fatalf("stops = %d, want 1", music.stops)
	}
}

func TestFrame(t *testing.T) {
	l, _, _ := testLoop(t)
	var q input.Queue
	var rec render.Recorder

	q.Push(input.Release(input.KeySpace))
	if !l.Frame(&q, &rec) || l.Active() != KindGameplay {
		t.Fatal("first frame")
	}
	q.Push(input.Quit())
	if l.Frame(&q, &rec) {
		t.Fatal("frame after quit reported running")
	}
	if st := l.Stats(); st.Frames != 2 || st.Active != KindGameplay {
		t.Fatalf("stats = %+v", st)
	}
}

func TestEmptyStackPanics(t *testing.T) {
	ctx, _ := testContext()
	m := NewMachine(ctx)
	defer func() {
		if recover() == nil {
			t.Fatal("Top on empty stack did not panic")
		}
	}()
	m.Top()
}

func TestMachinePopReentersBelow(t *testing.T) {
	ctx, music := testContext()
	if err := ctx.validate(); err != nil {
		t.Fatal(err)
	}
	m := NewMachine(ctx)
	m.Push(NewIntro())
	g := NewGameplay(ctx)
	m.Push(g)
	if m.Depth() != 2 || m.Active() != KindGameplay {
		t.Fatalf("depth %d active %s", m.Depth(), m.Active())
	}
	if m.Pop() != State(g) || m.Active() != KindIntro {
		t.Fatal("pop did not reveal intro")
	}
	if g.Grid.Len() != 0 {
		t.Fatal("popped gameplay kept its grid")
	}
	if !slices.Equal(music.played, []string{"intro", "game", "intro"}) {
		t.Fatalf("music = %v", music.played)
	}
}

func TestIntroRender(t *testing.T) {
	ctx, _ := testContext()
	s := NewIntro()
	var rec render.Recorder
	s.render(ctx, &rec)

	if !slices.Equal(rec.Textures(), []string{"bg", "press"}) {
		t.Fatalf("textures = %v", rec.Textures())
	}
	press := rec.Sprites[1]
	if press.Position != (core.Vec2{X: 140, Y: 490}) || press.Tint.A != 0 {
		t.Fatalf("press sprite = %+v", press)
	}

	s.Elapsed = 628 * time.Millisecond // sin(0.0025*628) ~ 1
	if a := s.PromptAlpha(); a < 0.99 {
		t.Fatalf("alpha = %v", a)
	}
}

func TestIntroRenderWithoutPrompt(t *testing.T) {
	ctx, _ := testContext()
	ctx.Atlas = render.StaticAtlas{}
	var rec render.Recorder
	NewIntro().render(ctx, &rec)
	if !slices.Equal(rec.Textures(), []string{"bg"}) {
		t.Fatalf("textures = %v", rec.Textures())
	}
}

func TestTuningParameters(t *testing.T) {
	l, _, _ := testLoop(t)
	if !l.SetFloatParameter("tile_zeta", 5) {
		t.Fatal("tile_zeta not recognised")
	}
	if got := l.Context().Tuning.Tile.Zeta; got != 2 {
		t.Fatalf("zeta = %v, want clamp to 2", got)
	}
	if l.SetFloatParameter("nope", 1) {
		t.Fatal("unknown key accepted")
	}
	p, ok := l.Parameters().Lookup("tile_omega")
	if !ok || p.Type != core.ParamTypeFloat {
		t.Fatalf("tile_omega = %+v %v", p, ok)
	}
	if p, _ := l.Parameters().Lookup("state"); p.Value != "intro" {
		t.Fatalf("state = %q", p.Value)
	}
}
