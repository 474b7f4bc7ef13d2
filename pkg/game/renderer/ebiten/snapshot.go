package ebiten

import (
	"nightshift/pkg/game/state"
)

// RenderFrame captures a snapshot of g for the next Draw call
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	if g == nil {
		return
	}
	snap := renderSnapshot{valid: true, Snapshot: g.Snapshot()}

	e.snapshotMutex.Lock()
	e.snapshot = snap
	e.snapshotMutex.Unlock()
}

// currentSnapshot returns the last captured snapshot
func (e *EbitenRenderer) currentSnapshot() renderSnapshot {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	return e.snapshot
}
