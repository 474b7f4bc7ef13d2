package entities

import (
	"errors"
	"math/rand"
	"testing"

	"nightshift/pkg/engine/world"
)

// scriptedRand replays fixed draws so a single turn can be walked through step by step.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

// makeFacility builds: office - hub, hub - a, hub - b, a - c.
func makeFacility(t *testing.T) *world.Graph {
	t.Helper()
	g, err := world.Build(world.Spec{
		Office: "office",
		Rooms: []world.RoomSpec{
			{ID: "office"}, {ID: "hub"}, {ID: "a"}, {ID: "b"}, {ID: "c"},
		},
		Hallways: []world.HallwaySpec{
			{ID: "hub_office", A: "hub", B: "office", BlockCost: 3},
			{ID: "hub_a", A: "hub", B: "a", BlockCost: 1},
			{ID: "hub_b", A: "hub", B: "b", BlockCost: 1},
			{ID: "a_c", A: "a", B: "c", BlockCost: 2},
		},
	})
	if err != nil {
		t.Fatalf("world.Build: %v", err)
	}
	return g
}

func makeAgent(t *testing.T, g *world.Graph, cfg AgentConfig) *Agent {
	t.Helper()
	a, err := NewAgent(cfg, g)
	if err != nil {
		t.Fatalf("NewAgent(%+v): %v", cfg, err)
	}
	return a
}

func TestNewAgent_Validation(t *testing.T) {
	g := makeFacility(t)
	tests := []struct {
		name string
		cfg  AgentConfig
		want error
	}{
		{"NoName", AgentConfig{StartRoom: "a", MoveProbability: 1, StepSize: 1}, ErrNoName},
		{"MoveTooHigh", AgentConfig{Name: "x", StartRoom: "a", MoveProbability: 1.5, StepSize: 1}, ErrBadProbability},
		{"TeleportNegative", AgentConfig{Name: "x", StartRoom: "a", MoveProbability: 1, TeleportProbability: -0.1, StepSize: 1}, ErrBadProbability},
		{"ZeroStep", AgentConfig{Name: "x", StartRoom: "a", MoveProbability: 1, StepSize: 0}, ErrBadStepSize},
		{"UnknownStart", AgentConfig{Name: "x", StartRoom: "attic", MoveProbability: 1, StepSize: 1}, ErrBadStartRoom},
		{"StartsInOffice", AgentConfig{Name: "x", StartRoom: "office", MoveProbability: 1, StepSize: 1}, ErrStartsInOffice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAgent(tt.cfg, g)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewAgent() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewAgents_KeepsOrder(t *testing.T) {
	g := makeFacility(t)
	agents, err := NewAgents([]AgentConfig{
		DefaultAgentConfig("First", "a"),
		DefaultAgentConfig("Second", "b"),
	}, g)
	if err != nil {
		t.Fatalf("NewAgents: %v", err)
	}
	if len(agents) != 2 || agents[0].Name != "First" || agents[1].Name != "Second" {
		t.Errorf("NewAgents order = %v, want [First Second]", agents)
	}
	if agents[1].CurrentRoom != "b" {
		t.Errorf("Second.CurrentRoom = %q, want %q", agents[1].CurrentRoom, "b")
	}
}

func TestTakeTurn_ZeroMoveProbabilityNeverMoves(t *testing.T) {
	g := makeFacility(t)
	cfg := DefaultAgentConfig("Still", "a")
	cfg.MoveProbability = 0
	a := makeAgent(t, g, cfg)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		m := a.TakeTurn(rng, g)
		if m.Kind != MoveNone || a.CurrentRoom != "a" {
			t.Fatalf("turn %d: move %v to %q, want no move from a", i, m.Kind, a.CurrentRoom)
		}
	}
}

func TestTakeTurn_FailedMoveRoll(t *testing.T) {
	g := makeFacility(t)
	cfg := DefaultAgentConfig("Lazy", "a")
	cfg.MoveProbability = 0.8
	a := makeAgent(t, g, cfg)
	rng := &scriptedRand{floats: []float64{0.9}}

	m := a.TakeTurn(rng, g)
	if m.Kind != MoveNone || a.CurrentRoom != "a" {
		t.Errorf("TakeTurn after failed roll = %v in %q, want none in a", m.Kind, a.CurrentRoom)
	}
	if len(rng.floats) != 0 {
		t.Error("failed move roll did not consume its draw")
	}
}

func TestTakeTurn_TeleportIsUniformOverNonOffice(t *testing.T) {
	g := makeFacility(t)
	cfg := DefaultAgentConfig("Blink", "a")
	cfg.TeleportProbability = 1
	a := makeAgent(t, g, cfg)
	rng := rand.New(rand.NewSource(42))

	const trials = 40000
	counts := make(map[world.RoomID]int)
	for i := 0; i < trials; i++ {
		a.CurrentRoom = "a"
		m := a.TakeTurn(rng, g)
		if m.Kind != MoveTeleport {
			t.Fatalf("trial %d: kind = %v, want teleport", i, m.Kind)
		}
		counts[a.CurrentRoom]++
	}

	if counts["office"] != 0 {
		t.Errorf("teleported into the office %d times, want 0", counts["office"])
	}
	expected := trials / 4
	for _, id := range []world.RoomID{"hub", "a", "b", "c"} {
		if diff := counts[id] - expected; diff > expected/20 || diff < -expected/20 {
			t.Errorf("teleports to %s = %d, want %d ± 5%%", id, counts[id], expected)
		}
	}
}

func TestTakeTurn_AllBlockedNeverMoves(t *testing.T) {
	g := makeFacility(t)
	g.ForEachHallway(func(h *world.Hallway) { h.Blocked = true })
	cfg := DefaultAgentConfig("Walker", "hub")
	cfg.StepSize = 3
	a := makeAgent(t, g, cfg)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		m := a.TakeTurn(rng, g)
		if a.CurrentRoom != "hub" || m.Hops != 0 {
			t.Fatalf("turn %d: moved to %q with %d hops, want to stay in hub", i, a.CurrentRoom, m.Hops)
		}
	}
}

func TestTakeTurn_WalkStopsAtOffice(t *testing.T) {
	g := makeFacility(t)
	cfg := DefaultAgentConfig("Runner", "a")
	cfg.StepSize = 3
	a := makeAgent(t, g, cfg)
	// a's neighbours sorted: [c hub] -> pick hub; hub's: [a b office] -> pick office.
	rng := &scriptedRand{floats: []float64{0.0, 0.5}, ints: []int{1, 2}}

	m := a.TakeTurn(rng, g)
	if !m.Captured {
		t.Error("walk into the office did not report capture")
	}
	if m.Hops != 2 || m.Kind != MoveWalk {
		t.Errorf("move = %+v, want a 2-hop walk", m)
	}
	if a.CurrentRoom != "office" || m.From != "a" || m.To != "office" {
		t.Errorf("agent went %q -> %q (now %q), want a -> office", m.From, m.To, a.CurrentRoom)
	}
}

func TestTakeTurn_WalkStopsWhenCornered(t *testing.T) {
	g := makeFacility(t)
	cfg := DefaultAgentConfig("Runner", "a")
	cfg.StepSize = 2
	a := makeAgent(t, g, cfg)
	g.ToggleBlock("hub_a")
	// With hub_a blocked the only way out of a is c, and c only leads back to a.
	rng := &scriptedRand{floats: []float64{0.0, 0.5}, ints: []int{0, 0}}

	m := a.TakeTurn(rng, g)
	if m.Hops != 2 || a.CurrentRoom != "a" {
		t.Errorf("move = %+v ending in %q, want a -> c -> a", m, a.CurrentRoom)
	}

	g.ToggleBlock("a_c")
	rng = &scriptedRand{floats: []float64{0.0, 0.5}}
	m = a.TakeTurn(rng, g)
	if m.Kind != MoveNone || m.Hops != 0 || a.CurrentRoom != "a" {
		t.Errorf("cornered move = %+v ending in %q, want none in a", m, a.CurrentRoom)
	}
}

func TestTakeTurn_SeededRunsAreReproducible(t *testing.T) {
	run := func() []world.RoomID {
		g := makeFacility(t)
		cfg := DefaultAgentConfig("Echo", "c")
		cfg.MoveProbability = 0.7
		cfg.TeleportProbability = 0.2
		cfg.StepSize = 2
		a := makeAgent(t, g, cfg)
		rng := rand.New(rand.NewSource(99))
		var path []world.RoomID
		for i := 0; i < 50; i++ {
			if a.TakeTurn(rng, g).Captured {
				a.CurrentRoom = "c"
			}
			path = append(path, a.CurrentRoom)
		}
		return path
	}

	first, second := run(), run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("runs diverged at turn %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestMoveKindString(t *testing.T) {
	for kind, want := range map[MoveKind]string{MoveNone: "none", MoveTeleport: "teleport", MoveWalk: "walk"} {
		if got := kind.String(); got != want {
			t.Errorf("MoveKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
