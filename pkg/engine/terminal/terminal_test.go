package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func TestWidth_NotATerminal(t *testing.T) {
	var buf bytes.Buffer
	if got := Width(&buf); got != DefaultWidth {
		t.Errorf("Width(buffer) = %d, want %d", got, DefaultWidth)
	}
}

func TestInteractive_NotATerminal(t *testing.T) {
	var buf bytes.Buffer
	if Interactive(strings.NewReader("next\n"), &buf) {
		t.Error("Interactive(reader, buffer) = true, want false")
	}
}
