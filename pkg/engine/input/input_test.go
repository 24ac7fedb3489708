package input

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"space", ActionCommitRun},
		{"r", ActionRestore},
		{"p", ActionPreview},
		{"mouse_left", ActionToggleCell},
		{"mouse_right", ActionClearCell},
		{"arrow_up", ActionCursorUp},
		{"escape", ActionQuit},
		{"nope", ActionNone},
	}
	for _, tt := range tests {
		got := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceKeyboard, Code: tt.code}))
		if got.Action != tt.want {
			t.Errorf("MapToIntent(%q) = %v, want %v", tt.code, ActionName(got.Action), ActionName(tt.want))
		}
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line  string
		want  Intent
		ticks int
	}{
		{"run", Intent{Action: ActionCommitRun}, 0},
		{"  Restore ", Intent{Action: ActionRestore}, 0},
		{"toggle 2 8", Intent{Action: ActionToggleCell, Row: 2, Col: 8}, 0},
		{"clear 4 13", Intent{Action: ActionClearCell, Row: 4, Col: 13}, 0},
		{"tick", Intent{}, 1},
		{"tick 12", Intent{}, 12},
		{"", Intent{}, 0},
		{"# comment", Intent{}, 0},
	}
	for _, tt := range tests {
		got, err := ParseCommand(tt.line)
		if err != nil {
			t.Errorf("ParseCommand(%q) error = %v", tt.line, err)
			continue
		}
		if got.Intent != tt.want || got.Ticks != tt.ticks {
			t.Errorf("ParseCommand(%q) = %+v, want intent %+v ticks %d", tt.line, got, tt.want, tt.ticks)
		}
	}
}

func TestParseCommand_Errors(t *testing.T) {
	for _, line := range []string{"dance", "toggle 1", "toggle a 2", "clear 1 b", "tick -1", "tick x"} {
		if _, err := ParseCommand(line); err == nil {
			t.Errorf("ParseCommand(%q) error = nil, want error", line)
		}
	}
}

func TestScriptReader(t *testing.T) {
	src := "# warm up\n\ntoggle 3 8\nrun\ntick 5\nrestore"
	r := NewScriptReader(strings.NewReader(src))

	var got []Command
	for {
		cmd, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		got = append(got, cmd)
	}

	want := []Command{
		{Intent: Intent{Action: ActionToggleCell, Row: 3, Col: 8}},
		{Intent: Intent{Action: ActionCommitRun}},
		{Ticks: 5},
		{Intent: Intent{Action: ActionRestore}},
	}
	if len(got) != len(want) {
		t.Fatalf("read %d commands, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestScriptReader_ReportsLine(t *testing.T) {
	r := NewScriptReader(strings.NewReader("run\nbogus\n"))
	if _, err := r.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	_, err := r.Next()
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Next() error = %v, want mention of line 2", err)
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	codes := GetBindingsByAction()[ActionCommitRun]
	for i := 1; i < len(codes); i++ {
		if codes[i-1] > codes[i] {
			t.Errorf("bindings for Run not sorted: %v", codes)
		}
	}
}
