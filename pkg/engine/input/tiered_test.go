package input

import (
	"io"
	"strings"
	"testing"
)

func TestMapToIntent_Terminal(t *testing.T) {
	tests := []struct {
		line string
		want Intent
	}{
		{"next", Intent{Action: ActionNextTurn}},
		{"  N ", Intent{Action: ActionNextTurn}},
		{"q", Intent{Action: ActionQuit}},
		{"?", Intent{Action: ActionHelp}},
		{"dump", Intent{Action: ActionDebugDump}},
		{"light stage", Intent{Action: ActionToggleLight, Target: "stage"}},
		{"l party room", Intent{Action: ActionToggleLight, Target: "party room"}},
		{"block left_hall", Intent{Action: ActionToggleBlock, Target: "left_hall"}},
		{"click 512 140", Intent{Action: ActionPointerDown, X: 512, Y: 140}},
		{"click 512", Intent{Action: ActionNone}},
		{"click a b", Intent{Action: ActionNone}},
		{"light", Intent{Action: ActionNone}},
		{"dance", Intent{Action: ActionNone}},
		{"", Intent{Action: ActionNone}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := MapToIntent(NewDebouncedInput(FromLine(tt.line)))
			if got != tt.want {
				t.Errorf("MapToIntent(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestMapToIntent_Devices(t *testing.T) {
	mouse := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceMouse, Code: "mouse_left", X: 10, Y: 20}))
	if mouse != (Intent{Action: ActionPointerDown, X: 10, Y: 20}) {
		t.Errorf("mouse intent = %+v, want pointer down at 10,20", mouse)
	}

	touch := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceTouch, X: 3, Y: 4}))
	if touch.Action != ActionPointerDown || touch.X != 3 || touch.Y != 4 {
		t.Errorf("touch intent = %+v, want pointer down at 3,4", touch)
	}

	for code, want := range map[string]Action{"space": ActionNextTurn, "Escape": ActionQuit, "x": ActionNone} {
		got := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceKeyboard, Code: code}))
		if got.Action != want {
			t.Errorf("key %q = %v, want %v", code, ActionName(got.Action), ActionName(want))
		}
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	quit := GetBindingsByAction()[ActionQuit]
	want := []string{"escape", "q", "quit"}
	if strings.Join(quit, ",") != strings.Join(want, ",") {
		t.Errorf("quit bindings = %v, want %v", quit, want)
	}
}

func TestLineReader(t *testing.T) {
	lr := NewLineReader(strings.NewReader("light stage\nnext\n"))

	var got []string
	for line := range lr.Lines() {
		got = append(got, line)
	}
	if len(got) != 2 || got[0] != "light stage" || got[1] != "next" {
		t.Errorf("lines = %q, want [light stage next]", got)
	}
	if err := lr.Err(); err != io.EOF {
		t.Errorf("Err() = %v, want io.EOF", err)
	}
}

func TestLineReader_StopReleasesReader(t *testing.T) {
	lr := NewLineReader(strings.NewReader("light stage\nnext\nquit\n"))

	if line := <-lr.Lines(); line != "light stage" {
		t.Fatalf("first line = %q, want %q", line, "light stage")
	}
	lr.Stop()
	lr.Stop()

	if err := lr.Err(); err != ErrStopped {
		t.Errorf("Err() after Stop = %v, want ErrStopped", err)
	}
	if line, ok := <-lr.Lines(); ok {
		t.Errorf("Lines() delivered %q after Stop, want it closed", line)
	}
}
