package layout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"nightshift/pkg/engine/world"
	"nightshift/pkg/game/entities"
)

func TestDefault_Topology(t *testing.T) {
	l, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	g, agents, err := l.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := len(g.RoomIDs()); got != 11 {
		t.Errorf("rooms = %d, want 11", got)
	}
	if got := len(g.HallwayIDs()); got != 12 {
		t.Errorf("hallways = %d, want 12", got)
	}
	if g.Office() != "office" {
		t.Errorf("Office() = %q, want %q", g.Office(), "office")
	}
	if name := g.Room("party").Name; name != "Party Room" {
		t.Errorf("party name = %q, want %q", name, "Party Room")
	}
	if r := g.Room("office").Bounds; r != (world.Rect{X: 462, Y: 600, W: 100, H: 80}) {
		t.Errorf("office bounds = %+v", r)
	}

	costs := map[world.HallwayID]int{"left_hall": 3, "right_hall": 3, "storage_vert": 2, "back_vert": 2, "stage_left": 1}
	for id, want := range costs {
		if got := g.Hallway(id).BlockCost; got != want {
			t.Errorf("%s cost = %d, want %d", id, got, want)
		}
	}

	// The office is only reachable through the two long halls.
	office := world.SortedRooms(g.NeighborsViaUnblocked("office"))
	if len(office) != 2 || office[0] != "arcade" || office[1] != "supply" {
		t.Errorf("office neighbours = %v, want [arcade supply]", office)
	}

	if len(agents) != 5 {
		t.Fatalf("agents = %d, want 5", len(agents))
	}
}

func TestDefault_Roster(t *testing.T) {
	l, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	want := []entities.AgentConfig{
		{Name: "Freddy", StartRoom: "stage", MoveProbability: 0.8, StepSize: 1, Asset: "freddy"},
		{Name: "Bonnie", StartRoom: "stage", MoveProbability: 0.7, StepSize: 1, Asset: "bonnie"},
		{Name: "Chica", StartRoom: "stage", MoveProbability: 0.9, StepSize: 1, Asset: "chica"},
		{Name: "Foxy", StartRoom: "storage", MoveProbability: 1.0, StepSize: 2, Asset: "foxy"},
		{Name: "Golden Freddy", StartRoom: "basement", MoveProbability: 1.0, TeleportProbability: 0.3, StepSize: 1, Asset: "golden_freddy"},
	}
	if len(l.Agents) != len(want) {
		t.Fatalf("agents = %d, want %d", len(l.Agents), len(want))
	}
	for i := range want {
		if l.Agents[i] != want[i] {
			t.Errorf("agent %d = %+v, want %+v", i, l.Agents[i], want[i])
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "OneEndedHallway",
			doc: `
office: o
rooms: [{id: o}, {id: a}]
hallways: [{id: h, between: [o], cost: 1}]
agents: [{name: x, start: a}]
`,
			want: ErrBadHallway,
		},
		{
			name: "NoAgents",
			doc: `
office: o
rooms: [{id: o}, {id: a}]
hallways: [{id: h, between: [o, a], cost: 1}]
`,
			want: ErrNoAgents,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	doc := `
office: o
rooms: [{id: o}, {id: a}]
hallways: [{id: h, between: [o, a], cost: 1}]
agents: [{name: x, start: a, move_probabilty: 0.5}]
`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Error("Parse() accepted a misspelled key")
	}
}

func TestBuild_ReportsGraphAndRosterErrors(t *testing.T) {
	badCost := `
office: o
rooms: [{id: o}, {id: a}]
hallways: [{id: h, between: [o, a], cost: 0}]
agents: [{name: x, start: a}]
`
	l, err := Parse([]byte(badCost))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, _, err := l.Build(); !errors.Is(err, world.ErrBadCost) {
		t.Errorf("Build() error = %v, want %v", err, world.ErrBadCost)
	}

	inOffice := `
office: o
rooms: [{id: o}, {id: a}]
hallways: [{id: h, between: [o, a], cost: 1}]
agents: [{name: x, start: o}]
`
	l, err = Parse([]byte(inOffice))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, _, err := l.Build(); !errors.Is(err, entities.ErrStartsInOffice) {
		t.Errorf("Build() error = %v, want %v", err, entities.ErrStartsInOffice)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	doc := []byte(`
office: o
rooms: [{id: o, name: Office}, {id: a, name: Attic}]
hallways: [{id: h, name: Ladder, between: [a, o], cost: 2}]
agents: [{name: Rat, start: a, step_size: 3}]
`)
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.World.Hallways[0].A != "a" || l.World.Hallways[0].BlockCost != 2 {
		t.Errorf("hallway = %+v, want a->o cost 2", l.World.Hallways[0])
	}
	if l.Agents[0].StepSize != 3 || l.Agents[0].MoveProbability != 1.0 {
		t.Errorf("agent = %+v, want step 3 with default move probability", l.Agents[0])
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file returned nil error")
	}
}
