package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		gameOver bool
		want     Action
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace}, false, ActionJump},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, false, ActionJump},
		{"down ducks", tea.KeyMsg{Type: tea.KeyDown}, false, ActionDuck},
		{"space restarts after game over", tea.KeyMsg{Type: tea.KeySpace}, true, ActionRestart},
		{"r restarts", runeKey('r'), true, ActionRestart},
		{"q quits", runeKey('q'), false, ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, false, ActionQuit},
		{"help toggles", runeKey('?'), false, ActionHelp},
		{"unbound key", runeKey('x'), false, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Map(tt.msg, tt.gameOver); got != tt.want {
				t.Errorf("Map(%q, %v) = %v, want %v", tt.msg.String(), tt.gameOver, got, tt.want)
			}
		})
	}
}

func TestHeldKeysPressOnce(t *testing.T) {
	h := NewHeldKeys(60)

	got := h.Press(ActionJump, 0)
	if len(got) != 1 || got[0] != core.IntentJumpPressed {
		t.Fatalf("first press should emit JumpPressed, got %v", got)
	}

	// Auto-repeat while held
	for tick := 1; tick < 5; tick++ {
		if got := h.Press(ActionJump, tick); len(got) != 0 {
			t.Fatalf("tick %d: repeat should emit nothing, got %v", tick, got)
		}
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := NewHeldKeys(60)
	hold := ticksFor(defaultJumpHold, 60)

	h.Press(ActionJump, 0)
	if got := h.Expire(hold - 1); len(got) != 0 {
		t.Fatalf("released too early: %v", got)
	}

	got := h.Expire(hold)
	if len(got) != 1 || got[0] != core.IntentJumpReleased {
		t.Fatalf("expected JumpReleased, got %v", got)
	}
	if jump, _ := h.Held(); jump {
		t.Error("jump should no longer be held")
	}

	// Only one release per hold
	if got := h.Expire(hold + 10); len(got) != 0 {
		t.Errorf("second release emitted: %v", got)
	}
}

func TestHeldKeysRepeatExtendsHold(t *testing.T) {
	h := NewHeldKeys(60)
	hold := ticksFor(defaultDuckHold, 60)

	h.Press(ActionDuck, 0)
	h.Press(ActionDuck, hold-1)

	if got := h.Expire(hold); len(got) != 0 {
		t.Fatalf("repeat should extend the hold, got %v", got)
	}
	got := h.Expire(2*hold - 1)
	if len(got) != 1 || got[0] != core.IntentDuckReleased {
		t.Errorf("expected DuckReleased, got %v", got)
	}
}

func TestHeldKeysIndependent(t *testing.T) {
	h := NewHeldKeys(60)
	h.Press(ActionJump, 0)
	h.Press(ActionDuck, 0)

	jump, duck := h.Held()
	if !jump || !duck {
		t.Fatalf("both keys should be held, got jump=%v duck=%v", jump, duck)
	}

	h.Reset()
	if got := h.Expire(1000); len(got) != 0 {
		t.Errorf("reset keys should not emit releases, got %v", got)
	}
}

func TestTicksFor(t *testing.T) {
	if got := ticksFor(defaultJumpHold, 60); got != 15 {
		t.Errorf("250ms at 60fps: expected 15 ticks, got %d", got)
	}
	if got := ticksFor(defaultJumpHold, 1); got != 1 {
		t.Errorf("holds never round to zero ticks, got %d", got)
	}
}
