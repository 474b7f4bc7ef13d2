package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"nightshift/pkg/engine/input"
	"nightshift/pkg/engine/terminal"
	"nightshift/pkg/engine/world"
	"nightshift/pkg/game/renderer"
	"nightshift/pkg/game/state"
)

// Icon constants for the facility listing
const (
	IconOffice  = "◆"
	IconLit     = "●"
	IconDark    = "○"
	IconOpen    = "═"
	IconBlocked = "╳"
	IconUnknown = "?"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since command help lines are looked up by their English text.
var dynamicGet = gotext.Get

// tickInterval is how often the loop checks the drained timer while waiting for input
const tickInterval = 250 * time.Millisecond

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	in          io.Reader
	out         io.Writer
	interactive bool

	colorRoom        color.Style
	colorRoomLit     color.Style
	colorOffice      color.Style
	colorHallway     color.Style
	colorBlocked     color.Style
	colorAgent       color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style
}

// New creates a TUI renderer on stdin and stdout
func New() *TUIRenderer {
	return NewWithIO(os.Stdin, os.Stdout, terminal.Interactive(os.Stdin, os.Stdout))
}

// NewWithIO creates a TUI renderer reading commands from in and drawing to out.
// The screen is only cleared when interactive is set.
func NewWithIO(in io.Reader, out io.Writer, interactive bool) *TUIRenderer {
	return &TUIRenderer{in: in, out: out, interactive: interactive}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() error {
	t.colorRoom = color.Style{color.FgGray}
	t.colorRoomLit = color.Style{color.FgWhite, color.OpBold}
	t.colorOffice = color.Style{color.FgBlue, color.OpBold}
	t.colorHallway = color.Style{color.FgCyan}
	t.colorBlocked = color.Style{color.FgRed, color.OpBold}
	t.colorAgent = color.Style{color.FgYellow, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	return nil
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if !t.interactive {
		return
	}
	c := exec.Command("clear")
	c.Stdout = t.out
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleRoomLit:
		return t.colorRoomLit.Sprint(text)
	case renderer.StyleOffice:
		return t.colorOffice.Sprint(text)
	case renderer.StyleHallway:
		return t.colorHallway.Sprint(text)
	case renderer.StyleBlocked:
		return t.colorBlocked.Sprint(text)
	case renderer.StyleAgent:
		return t.colorAgent.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	var b strings.Builder
	for _, span := range renderer.Spans(msg) {
		if span.Function == "ACTION" && span.Text != "" {
			// First letter bold, like a keyboard shortcut.
			runes := []rune(span.Text)
			b.WriteString(t.colorActionShort.Sprint(string(runes[:1])))
			b.WriteString(t.colorAction.Sprint(string(runes[1:])))
			continue
		}
		b.WriteString(t.StyleText(span.Text, span.Style))
	}
	return b.String()
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, t.FormatText(msg))
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	snap := g.Snapshot()

	t.printStatusBar(&snap)

	if snap.Status == state.StatusDrained {
		fmt.Fprintln(t.out)
		t.printString("DENIED{%s}\n", gotext.Get("BATTERY DRAINED"))
		fmt.Fprintln(t.out, t.colorSubtle.Sprint(gotext.Get("The lights are stuck on. Turns pass on their own.")))
	}

	t.printRooms(&snap)
	t.printHallways(&snap)

	if !snap.Status.IsTerminal() {
		t.printPossibleActions(&snap)
	}

	t.printMessagesPane(&snap)

	if snap.Status == state.StatusPlaying {
		fmt.Fprint(t.out, "\n> ")
	}
}

// Run reads commands from the terminal until the night ends, the player
// quits or input runs out. While drained the loop keeps ticking and redraws
// whenever a forced turn passes.
func (t *TUIRenderer) Run(g *state.Game, step renderer.StepFunc) error {
	lines := input.NewLineReader(t.in)
	defer lines.Stop()
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	t.redraw(g)

	for !g.Status.IsTerminal() {
		select {
		case line, ok := <-lines.Lines():
			if !ok {
				if err := lines.Err(); !errors.Is(err, io.EOF) {
					return fmt.Errorf("read command: %w", err)
				}
				return nil
			}
			intent := input.MapToIntent(input.NewDebouncedInput(input.FromLine(line)))
			if !step([]input.Intent{intent}, time.Now()) {
				return nil
			}
			t.redraw(g)

		case now := <-ticker.C:
			turns, status := g.TurnsRemaining, g.Status
			if !step(nil, now) {
				return nil
			}
			if g.TurnsRemaining != turns || g.Status != status {
				t.redraw(g)
			}
		}
	}
	return nil
}

func (t *TUIRenderer) redraw(g *state.Game) {
	t.Clear()
	t.RenderFrame(g)
}

// printString prints a formatted string
func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.out, t.FormatText(msg, a...))
}

// printBullet prints a bulleted item
func (t *TUIRenderer) printBullet(txt string) {
	fmt.Fprint(t.out, "- "+t.FormatText(dynamicGet(txt))+"\n")
}

// printStatusBar renders the battery HUD
func (t *TUIRenderer) printStatusBar(snap *state.Snapshot) {
	battery := t.colorRoomLit.Sprintf("%d%%", snap.Battery)
	if snap.Battery <= snap.BlockCost {
		battery = t.colorDenied.Sprintf("%d%%", snap.Battery)
	}

	fmt.Fprintf(t.out, "%s %s   %s %s   %s %s\n",
		t.colorSubtle.Sprint(gotext.Get("Battery:")), battery,
		t.colorSubtle.Sprint(gotext.Get("Turns:")), t.colorAction.Sprint(snap.TurnsRemaining),
		t.colorSubtle.Sprint(gotext.Get("Block Cost:")), t.colorBlocked.Sprintf("%d%%", snap.BlockCost),
	)
}

// printRooms lists every room. Agents are only listed in lit rooms; a dark
// room shows a question mark whoever is inside.
func (t *TUIRenderer) printRooms(snap *state.Snapshot) {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(gotext.Get("Rooms")))

	width := nameWidth(snap)
	for _, r := range snap.Rooms {
		name := fmt.Sprintf("%-*s", width, r.Name)

		switch {
		case r.Office:
			fmt.Fprintf(t.out, "  %s %s %s\n", t.colorOffice.Sprint(IconOffice), t.colorOffice.Sprint(name), t.colorSubtle.Sprint(gotext.Get("(you)")))
		case r.Lit:
			fmt.Fprintf(t.out, "  %s %s %s\n", t.colorRoomLit.Sprint(IconLit), t.colorRoomLit.Sprint(name), t.agentList(r.Agents))
		default:
			fmt.Fprintf(t.out, "  %s %s %s\n", t.colorRoom.Sprint(IconDark), t.colorRoom.Sprint(name), t.colorSubtle.Sprint(IconUnknown))
		}
	}
}

func (t *TUIRenderer) agentList(agents []state.AgentView) string {
	if len(agents) == 0 {
		return t.colorSubtle.Sprint(gotext.Get("empty"))
	}
	names := make([]string, 0, len(agents))
	for _, a := range agents {
		names = append(names, t.colorAgent.Sprint(a.Name))
	}
	return strings.Join(names, t.colorSubtle.Sprint(", "))
}

// printHallways lists every hallway with its ends and block cost
func (t *TUIRenderer) printHallways(snap *state.Snapshot) {
	roomNames := make(map[world.RoomID]string, len(snap.Rooms))
	for _, r := range snap.Rooms {
		roomNames[r.ID] = r.Name
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(gotext.Get("Hallways")))

	width := nameWidth(snap)
	for _, h := range snap.Hallways {
		name := fmt.Sprintf("%-*s", width, h.Name)
		ends := fmt.Sprintf("%s - %s", roomNames[h.A], roomNames[h.B])
		cost := gotext.Get("cost %d", h.Cost)

		if h.Blocked {
			fmt.Fprintf(t.out, "  %s %s %s  %s  %s\n", t.colorBlocked.Sprint(IconBlocked), t.colorBlocked.Sprint(name),
				t.colorSubtle.Sprint(ends), t.colorSubtle.Sprint(cost), t.colorBlocked.Sprint(gotext.Get("BLOCKED")))
			continue
		}
		fmt.Fprintf(t.out, "  %s %s %s  %s\n", t.colorHallway.Sprint(IconOpen), t.colorHallway.Sprint(name),
			t.colorSubtle.Sprint(ends), t.colorSubtle.Sprint(cost))
	}
}

// nameWidth is the column width that fits every room and hallway name
func nameWidth(snap *state.Snapshot) int {
	width := 0
	for _, r := range snap.Rooms {
		width = max(width, len(r.Name))
	}
	for _, h := range snap.Hallways {
		width = max(width, len(h.Name))
	}
	return width
}

// printPossibleActions prints the available commands
func (t *TUIRenderer) printPossibleActions(snap *state.Snapshot) {
	fmt.Fprintln(t.out)
	if snap.Status == state.StatusDrained {
		t.printBullet("ACTION{quit}: \tGive up")
		return
	}
	t.printBullet("ACTION{light} <room>: \tToggle a room's light")
	t.printBullet("ACTION{block} <hallway>: \tToggle a hallway block")
	t.printBullet("ACTION{next}: \tEnd the turn")
	t.printBullet("ACTION{help}, ACTION{quit}")
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(snap *state.Snapshot) {
	width := terminal.Width(t.out)

	label := " " + gotext.Get("Messages") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(width-sideLen-labelLen, 1))

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(leftDashes+label+rightDashes))

	if len(snap.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+gotext.Get("(no messages)")))
	} else {
		for _, msg := range snap.Messages {
			fmt.Fprintf(t.out, "  %s\n", t.FormatText(msg))
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
