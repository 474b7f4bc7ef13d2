package state

import (
	"time"

	"nightshift/pkg/engine/logger"
	"nightshift/pkg/engine/world"
	"nightshift/pkg/game/config"
	"nightshift/pkg/game/entities"
)

// Status is where a night stands
type Status int

// Night statuses
const (
	StatusPlaying Status = iota
	StatusDrained        // battery gone: lights forced on, turns tick by themselves
	StatusLost
	StatusWon
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusDrained:
		return "drained"
	case StatusLost:
		return "lost"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the night is over
func (s Status) IsTerminal() bool {
	return s == StatusLost || s == StatusWon
}

// Game represents the state of one night in the facility
type Game struct {
	Graph  *world.Graph
	Agents []*entities.Agent

	Rules config.Rules
	Rand  entities.Rand
	Log   *logger.Logger

	Battery        int // percent; can go below zero
	TurnsRemaining int

	Status      Status
	DeathReason string
	CaughtBy    *entities.Agent

	LastDrainedTick time.Time

	Messages []string
}

// NewGame creates a night with a full battery and the whole turn budget.
// The drained timer starts at now.
func NewGame(g *world.Graph, agents []*entities.Agent, rules config.Rules, rng entities.Rand, now time.Time) *Game {
	return &Game{
		Graph:           g,
		Agents:          agents,
		Rules:           rules,
		Rand:            rng,
		Battery:         rules.StartBattery,
		TurnsRemaining:  rules.TurnBudget,
		Status:          StatusPlaying,
		LastDrainedTick: now,
		Messages:        make([]string, 0),
	}
}

// AcceptsActions reports whether the player may toggle lights, blocks or advance a turn
func (g *Game) AcceptsActions() bool {
	return g.Status == StatusPlaying
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// AgentsIn returns the agents currently in a room, in roster order
func (g *Game) AgentsIn(id world.RoomID) []*entities.Agent {
	var here []*entities.Agent
	for _, a := range g.Agents {
		if a.CurrentRoom == id {
			here = append(here, a)
		}
	}
	return here
}
