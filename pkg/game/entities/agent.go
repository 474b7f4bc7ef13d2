// Package entities contains the hostile agents roaming the facility and their movement policy.
package entities

import (
	"errors"
	"fmt"

	"nightshift/pkg/engine/world"
)

// Agent configuration errors
var (
	ErrBadProbability = errors.New("probability must be within [0,1]")
	ErrBadStepSize    = errors.New("step size must be at least 1")
	ErrBadStartRoom   = errors.New("start room is not part of the facility")
	ErrStartsInOffice = errors.New("agent cannot start in the office")
	ErrNoName         = errors.New("agent needs a name")
)

// AgentConfig is the fixed record an agent is built from at game start.
type AgentConfig struct {
	Name                string
	StartRoom           world.RoomID
	MoveProbability     float64 // chance the agent tries to move on a turn
	TeleportProbability float64 // chance a move is a teleport rather than a walk
	StepSize            int     // hops walked per move
	Asset               string  // sprite/jumpscare handle, opaque to the engine
}

// DefaultAgentConfig returns a config with the usual movement parameters:
// always moves, never teleports, one hop per move.
func DefaultAgentConfig(name string, start world.RoomID) AgentConfig {
	return AgentConfig{
		Name:            name,
		StartRoom:       start,
		MoveProbability: 1.0,
		StepSize:        1,
	}
}

// Agent is a hostile roaming the facility.
type Agent struct {
	Name                string
	CurrentRoom         world.RoomID
	MoveProbability     float64
	TeleportProbability float64
	StepSize            int
	Asset               string
}

// NewAgent validates cfg against the facility and creates the agent
func NewAgent(cfg AgentConfig, g *world.Graph) (*Agent, error) {
	if cfg.Name == "" {
		return nil, ErrNoName
	}
	if cfg.MoveProbability < 0 || cfg.MoveProbability > 1 {
		return nil, fmt.Errorf("agent %s move probability %v: %w", cfg.Name, cfg.MoveProbability, ErrBadProbability)
	}
	if cfg.TeleportProbability < 0 || cfg.TeleportProbability > 1 {
		return nil, fmt.Errorf("agent %s teleport probability %v: %w", cfg.Name, cfg.TeleportProbability, ErrBadProbability)
	}
	if cfg.StepSize < 1 {
		return nil, fmt.Errorf("agent %s step size %d: %w", cfg.Name, cfg.StepSize, ErrBadStepSize)
	}
	if !g.HasRoom(cfg.StartRoom) {
		return nil, fmt.Errorf("agent %s start %q: %w", cfg.Name, cfg.StartRoom, ErrBadStartRoom)
	}
	if cfg.StartRoom == g.Office() {
		return nil, fmt.Errorf("agent %s: %w", cfg.Name, ErrStartsInOffice)
	}

	return &Agent{
		Name:                cfg.Name,
		CurrentRoom:         cfg.StartRoom,
		MoveProbability:     cfg.MoveProbability,
		TeleportProbability: cfg.TeleportProbability,
		StepSize:            cfg.StepSize,
		Asset:               cfg.Asset,
	}, nil
}

// NewAgents builds the full roster in order
func NewAgents(cfgs []AgentConfig, g *world.Graph) ([]*Agent, error) {
	agents := make([]*Agent, 0, len(cfgs))
	for _, cfg := range cfgs {
		a, err := NewAgent(cfg, g)
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	return agents, nil
}
