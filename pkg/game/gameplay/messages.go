// Package gameplay provides the rules of a night: the battery ledger, turn
// resolution, drained mode and the mapping of player intents onto them.
package gameplay

import (
	"strings"

	"github.com/leonelquinteros/gotext"

	"nightshift/pkg/game/state"
)

// logMessage translates and formats a message and adds it to the game's message log.
// Messages may carry renderer markup such as ROOM{...} or ACTION{...}.
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(gotext.Get(msg, a...))
}

// showHelp lists the commands in the message log
func showHelp(g *state.Game) {
	logMessage(g, "Click a room to toggle its light, a hallway to block it.")
	logMessage(g, "Type ACTION{light} <room>, ACTION{block} <hallway>, ACTION{next} or ACTION{quit}.")
}

// Ending is the closing line of a finished night, with markup, or "" while
// the night goes on.
func Ending(g *state.Game) string {
	switch g.Status {
	case state.StatusWon:
		return "ACTION{" + gotext.Get("You Survived!") + "}"
	case state.StatusLost:
		return "DENIED{" + strings.ToUpper(g.DeathReason) + "}"
	default:
		return ""
	}
}
