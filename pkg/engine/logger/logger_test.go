package logger

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

func TestNilLoggerNoPanic(t *testing.T) {
	var l *Logger
	l.Info("info %d", 1)
	l.Warn("warn")
	l.Error("error")
	l.Event("TURN", "engine", "turn %d", 3)
}

func TestLevelsAndPrefixes(t *testing.T) {
	var out, errOut bytes.Buffer
	l := New(&out, &errOut, false)

	l.Info("battery %d", 42)
	l.Warn("low")
	l.Error("broken")

	if !strings.Contains(out.String(), "[INFO] battery 42") {
		t.Errorf("info output = %q, want it to contain %q", out.String(), "[INFO] battery 42")
	}
	if !strings.Contains(out.String(), "[WARN] low") {
		t.Errorf("warn output = %q, want it to contain %q", out.String(), "[WARN] low")
	}
	if !strings.Contains(errOut.String(), "[ERROR] broken") {
		t.Errorf("error output = %q, want it to contain %q", errOut.String(), "[ERROR] broken")
	}
	if strings.Contains(out.String(), "broken") {
		t.Error("error line written to the info writer")
	}
}

func TestLevelPrefixFollowsTimestamp(t *testing.T) {
	var out bytes.Buffer
	New(&out, &out, false).Info("battery %d", 42)

	line := regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2} \[INFO\] battery 42\n$`)
	if !line.MatchString(out.String()) {
		t.Errorf("info line = %q, want \"<date> <time> [INFO] battery 42\"", out.String())
	}
}

func TestEventNeedsVerbose(t *testing.T) {
	var quiet, loud bytes.Buffer
	New(&quiet, &quiet, false).Event("CAPTURE", "Freddy", "room %s", "office")
	New(&loud, &loud, true).Event("CAPTURE", "Freddy", "room %s", "office")

	if quiet.Len() != 0 {
		t.Errorf("non-verbose Event wrote %q, want nothing", quiet.String())
	}
	if want := "[EVENT:CAPTURE] Freddy | room office"; !strings.Contains(loud.String(), want) {
		t.Errorf("verbose Event wrote %q, want it to contain %q", loud.String(), want)
	}
}
