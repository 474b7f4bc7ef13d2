package state

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"nightshift/pkg/engine/world"
	"nightshift/pkg/game/config"
	"nightshift/pkg/game/entities"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := world.Build(world.Spec{
		Office: "office",
		Rooms: []world.RoomSpec{
			{ID: "office", Name: "Office", Bounds: world.Rect{X: 200, Y: 200, W: 100, H: 80}},
			{ID: "stage", Name: "Stage", Bounds: world.Rect{X: 200, Y: 0, W: 100, H: 80}},
			{ID: "hall", Name: "Hall", Bounds: world.Rect{X: 0, Y: 200, W: 100, H: 80}},
		},
		Hallways: []world.HallwaySpec{
			{ID: "stage_office", A: "stage", B: "office", BlockCost: 2},
			{ID: "hall_office", A: "hall", B: "office", BlockCost: 1},
		},
	})
	if err != nil {
		t.Fatalf("world.Build: %v", err)
	}
	freddy := entities.DefaultAgentConfig("Freddy", "stage")
	freddy.Asset = "freddy"
	agents, err := entities.NewAgents([]entities.AgentConfig{
		freddy,
		entities.DefaultAgentConfig("Bonnie", "stage"),
		entities.DefaultAgentConfig("Chica", "hall"),
	}, g)
	if err != nil {
		t.Fatalf("NewAgents: %v", err)
	}
	return NewGame(g, agents, config.DefaultRules(), rand.New(rand.NewSource(1)), time.Unix(100, 0))
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t)
	if g.Battery != 100 || g.TurnsRemaining != 20 {
		t.Errorf("Battery = %d, TurnsRemaining = %d, want 100 and 20", g.Battery, g.TurnsRemaining)
	}
	if g.Status != StatusPlaying || !g.AcceptsActions() {
		t.Errorf("Status = %v, want playing and accepting actions", g.Status)
	}
	if !g.LastDrainedTick.Equal(time.Unix(100, 0)) {
		t.Errorf("LastDrainedTick = %v, want the construction time", g.LastDrainedTick)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		status   Status
		name     string
		terminal bool
	}{
		{StatusPlaying, "playing", false},
		{StatusDrained, "drained", false},
		{StatusLost, "lost", true},
		{StatusWon, "won", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.status.IsTerminal(); got != tt.terminal {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.terminal)
			}
		})
	}
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := newTestGame(t)
	for i := 1; i <= 7; i++ {
		g.AddMessage(fmt.Sprintf("m%d", i))
	}
	if len(g.Messages) != 5 {
		t.Fatalf("len(Messages) = %d, want 5", len(g.Messages))
	}
	if g.Messages[0] != "m3" || g.Messages[4] != "m7" {
		t.Errorf("Messages = %v, want m3..m7", g.Messages)
	}
}

func TestSnapshot_HidesAgentsInDarkRooms(t *testing.T) {
	g := newTestGame(t)
	g.Graph.ToggleLight("stage")
	g.Graph.ToggleBlock("stage_office")

	s := g.Snapshot()

	if len(s.Rooms) != 3 || s.Rooms[0].ID != "office" || !s.Rooms[0].Office {
		t.Fatalf("rooms = %+v, want office first and flagged", s.Rooms)
	}
	stage, hall := s.Rooms[1], s.Rooms[2]
	if !stage.Lit || len(stage.Agents) != 2 || stage.Agents[0].Name != "Freddy" || stage.Agents[0].Asset != "freddy" {
		t.Errorf("stage view = %+v, want lit with Freddy then Bonnie", stage)
	}
	if hall.Lit || len(hall.Agents) != 0 {
		t.Errorf("hall view = %+v, want dark with nobody shown", hall)
	}

	if s.BlockCost != 2 || !s.Hallways[0].Blocked || s.Hallways[0].Cost != 2 {
		t.Errorf("block cost = %d, hallway = %+v, want 2 and a blocked stage_office", s.BlockCost, s.Hallways[0])
	}
	if s.Hallways[0].Mid != g.Graph.Hallway("stage_office").Midpoint() {
		t.Errorf("hallway midpoint = %+v, want %+v", s.Hallways[0].Mid, g.Graph.Hallway("stage_office").Midpoint())
	}
	if s.CaughtBy != nil {
		t.Errorf("CaughtBy = %+v, want nil while playing", s.CaughtBy)
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	g := newTestGame(t)
	g.AddMessage("first")
	s := g.Snapshot()

	g.AddMessage("second")
	g.Battery = 3
	g.Graph.ToggleLight("hall")

	if len(s.Messages) != 1 || s.Battery != 100 || s.Rooms[2].Lit {
		t.Errorf("snapshot changed after the game moved on: %+v", s)
	}
}

func TestSnapshot_CaughtBy(t *testing.T) {
	g := newTestGame(t)
	g.Status = StatusLost
	g.CaughtBy = g.Agents[0]
	g.DeathReason = "You were caught by Freddy!"

	s := g.Snapshot()
	if s.CaughtBy == nil || s.CaughtBy.Asset != "freddy" {
		t.Errorf("CaughtBy = %+v, want Freddy's asset", s.CaughtBy)
	}
	if s.Status != StatusLost || s.DeathReason != g.DeathReason {
		t.Errorf("status = %v reason = %q", s.Status, s.DeathReason)
	}
}
