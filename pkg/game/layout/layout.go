// Package layout loads facility layouts: the room and hallway table plus the
// agent roster that starts in it.
package layout

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"nightshift/pkg/engine/world"
	"nightshift/pkg/game/entities"
)

//go:embed default.yaml
var defaultLayout []byte

// Layout errors
var (
	ErrBadHallway = errors.New("hallway must join exactly two rooms")
	ErrNoAgents   = errors.New("layout has no agents")
)

// RawLayout is the on-disk shape of a layout file.
type RawLayout struct {
	Office   string       `yaml:"office"`
	Rooms    []RawRoom    `yaml:"rooms"`
	Hallways []RawHallway `yaml:"hallways"`
	Agents   []RawAgent   `yaml:"agents"`
}

// RawRoom is one room entry.
type RawRoom struct {
	ID     string  `yaml:"id"`
	Name   string  `yaml:"name"`
	Bounds RawRect `yaml:"bounds"`
}

// RawRect is a room's screen rectangle.
type RawRect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// RawHallway is one hallway entry. Reachable is optional and defaults to Between.
type RawHallway struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Between   []string `yaml:"between"`
	Reachable []string `yaml:"reachable"`
	Cost      int      `yaml:"cost"`
}

// RawAgent is one roster entry. Omitted movement fields take the usual defaults.
type RawAgent struct {
	Name                string   `yaml:"name"`
	Start               string   `yaml:"start"`
	MoveProbability     *float64 `yaml:"move_probability"`
	TeleportProbability *float64 `yaml:"teleport_probability"`
	StepSize            *int     `yaml:"step_size"`
	Asset               string   `yaml:"asset"`
}

// Layout is a decoded layout, ready to build a game from.
type Layout struct {
	World  world.Spec
	Agents []entities.AgentConfig
}

// Default returns the standard eleven-room facility.
func Default() (*Layout, error) {
	return Parse(defaultLayout)
}

// Load reads a layout file from disk.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return l, nil
}

// Parse decodes a layout document. Unknown keys are rejected so a typo in a
// hand-written layout does not silently fall back to a default.
func Parse(data []byte) (*Layout, error) {
	var raw RawLayout
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	return raw.convert()
}

func (raw *RawLayout) convert() (*Layout, error) {
	l := &Layout{
		World: world.Spec{Office: world.RoomID(raw.Office)},
	}

	for _, r := range raw.Rooms {
		l.World.Rooms = append(l.World.Rooms, world.RoomSpec{
			ID:     world.RoomID(r.ID),
			Name:   r.Name,
			Bounds: world.Rect{X: r.Bounds.X, Y: r.Bounds.Y, W: r.Bounds.W, H: r.Bounds.H},
		})
	}

	for _, h := range raw.Hallways {
		if len(h.Between) != 2 {
			return nil, fmt.Errorf("hallway %q: %w", h.ID, ErrBadHallway)
		}
		hs := world.HallwaySpec{
			ID:        world.HallwayID(h.ID),
			Name:      h.Name,
			A:         world.RoomID(h.Between[0]),
			B:         world.RoomID(h.Between[1]),
			BlockCost: h.Cost,
		}
		for _, r := range h.Reachable {
			hs.Reachable = append(hs.Reachable, world.RoomID(r))
		}
		l.World.Hallways = append(l.World.Hallways, hs)
	}

	if len(raw.Agents) == 0 {
		return nil, ErrNoAgents
	}
	for _, a := range raw.Agents {
		cfg := entities.DefaultAgentConfig(a.Name, world.RoomID(a.Start))
		if a.MoveProbability != nil {
			cfg.MoveProbability = *a.MoveProbability
		}
		if a.TeleportProbability != nil {
			cfg.TeleportProbability = *a.TeleportProbability
		}
		if a.StepSize != nil {
			cfg.StepSize = *a.StepSize
		}
		cfg.Asset = a.Asset
		l.Agents = append(l.Agents, cfg)
	}

	return l, nil
}

// Build creates the facility graph and the agent roster. Every consistency
// problem in the layout (unknown rooms, bad costs, bad probabilities) is
// reported here.
func (l *Layout) Build() (*world.Graph, []*entities.Agent, error) {
	g, err := world.Build(l.World)
	if err != nil {
		return nil, nil, fmt.Errorf("build facility: %w", err)
	}
	agents, err := entities.NewAgents(l.Agents, g)
	if err != nil {
		return nil, nil, fmt.Errorf("build roster: %w", err)
	}
	return g, agents, nil
}
