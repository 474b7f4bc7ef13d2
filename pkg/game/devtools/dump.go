// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"nightshift/pkg/engine/world"
	"nightshift/pkg/game/state"
)

const dumpFilename = "facility.txt"

// DumpFacility writes a debug dump of the night: metadata, rooms, hallways and
// where every agent is, including agents the player cannot see.
// Format is human-readable (sections, key: value, consistent structure).
func DumpFacility(w io.Writer, g *state.Game) error {
	if g.Graph == nil {
		return fmt.Errorf("no facility")
	}

	// --- Metadata ---
	fmt.Fprintln(w, "=== FACILITY DUMP DEBUG ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "status: %s\n", g.Status)
	fmt.Fprintf(w, "battery: %d\n", g.Battery)
	fmt.Fprintf(w, "turns_remaining: %d\n", g.TurnsRemaining)
	fmt.Fprintf(w, "block_cost: %d\n", g.Graph.TotalBlockCost())
	fmt.Fprintf(w, "office: %q\n", g.Graph.Office())
	if g.DeathReason != "" {
		fmt.Fprintf(w, "death_reason: %q\n", g.DeathReason)
	}
	fmt.Fprintln(w, "")

	// --- Rooms ---
	fmt.Fprintln(w, "--- Rooms ---")
	g.Graph.ForEachRoom(func(r *world.Room) {
		var names []string
		for _, a := range g.AgentsIn(r.ID) {
			names = append(names, a.Name)
		}
		fmt.Fprintf(w, "  id: %q name: %q lit: %v agents: %q\n", r.ID, r.Name, r.Lit, names)
	})
	fmt.Fprintln(w, "")

	// --- Hallways ---
	fmt.Fprintln(w, "--- Hallways ---")
	g.Graph.ForEachHallway(func(h *world.Hallway) {
		fmt.Fprintf(w, "  id: %q name: %q a: %q b: %q cost: %d blocked: %v reachable: %q\n",
			h.ID, h.Name, h.A, h.B, h.BlockCost, h.Blocked, h.Reachable)
	})
	fmt.Fprintln(w, "")

	// --- Agents ---
	fmt.Fprintln(w, "--- Agents ---")
	for _, a := range g.Agents {
		fmt.Fprintf(w, "  name: %q room: %q move_probability: %.2f teleport_probability: %.2f step_size: %d\n",
			a.Name, a.CurrentRoom, a.MoveProbability, a.TeleportProbability, a.StepSize)
	}
	fmt.Fprintln(w, "")

	_, err := fmt.Fprintln(w, "=== END FACILITY DUMP ===")
	return err
}

// DumpFacilityToFile writes DumpFacility to facility.txt in the working
// directory and returns its absolute path.
func DumpFacilityToFile(g *state.Game) (string, error) {
	absPath, err := filepath.Abs(dumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpFacility(f, g); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
