package gameplay

import (
	"fmt"
	"time"

	"nightshift/pkg/engine/logger"
	"nightshift/pkg/game/config"
	"nightshift/pkg/game/entities"
	"nightshift/pkg/game/layout"
	"nightshift/pkg/game/state"
)

// BuildGame creates a night from a layout. rng drives every agent decision;
// pass a seeded generator to replay a night.
func BuildGame(rules config.Rules, l *layout.Layout, rng entities.Rand, log *logger.Logger, now time.Time) (*state.Game, error) {
	graph, agents, err := l.Build()
	if err != nil {
		return nil, fmt.Errorf("build game: %w", err)
	}

	g := state.NewGame(graph, agents, rules, rng, now)
	g.Log = log

	log.Info("night started: %d rooms, %d hallways, %d agents, battery %d, %d turns",
		len(graph.RoomIDs()), len(graph.HallwayIDs()), len(agents), g.Battery, g.TurnsRemaining)

	logMessage(g, "Survive ACTION{%d} turns. Type ACTION{help} for commands.", g.TurnsRemaining)
	return g, nil
}
