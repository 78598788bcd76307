package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Action is what a key press means to the terminal front end.
type Action int

const (
	ActionNone Action = iota
	ActionJump
	ActionDuck
	ActionRestart
	ActionHelp
	ActionScreenshot
	ActionQuit
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Jump       key.Binding
	Duck       key.Binding
	Restart    key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Duck, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Duck, k.Restart},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/up", "jump"),
		),
		Duck: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down", "duck"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Map translates a key message to an action. After game over the jump key
// doubles as restart.
func (k KeyMap) Map(msg tea.KeyMsg, gameOver bool) Action {
	switch {
	case key.Matches(msg, k.Quit):
		return ActionQuit
	case key.Matches(msg, k.Restart):
		return ActionRestart
	case key.Matches(msg, k.Jump):
		if gameOver {
			return ActionRestart
		}
		return ActionJump
	case key.Matches(msg, k.Duck):
		return ActionDuck
	case key.Matches(msg, k.Help):
		return ActionHelp
	case key.Matches(msg, k.Screenshot):
		return ActionScreenshot
	}
	return ActionNone
}

// Terminals report key presses only, so a held key shows up as a burst of
// repeats and its release is never seen. HeldKeys treats a key as held while
// repeats keep arriving and emits the release once they stop.
const (
	// Long enough to cover the pause before auto-repeat kicks in.
	defaultJumpHold = 250 * time.Millisecond
	defaultDuckHold = 550 * time.Millisecond
)

type heldKey struct {
	down    bool
	until   int
	hold    int
	press   core.Intent
	release core.Intent
}

func (h *heldKey) pressAt(tick int) []core.Intent {
	h.until = tick + h.hold
	if h.down {
		return nil
	}
	h.down = true
	return []core.Intent{h.press}
}

func (h *heldKey) expireAt(tick int) []core.Intent {
	if !h.down || tick < h.until {
		return nil
	}
	h.down = false
	return []core.Intent{h.release}
}

// HeldKeys infers press and release intents for jump and duck.
type HeldKeys struct {
	jump heldKey
	duck heldKey
}

// NewHeldKeys sizes the hold windows for the given tick rate.
func NewHeldKeys(tickRate int) *HeldKeys {
	return &HeldKeys{
		jump: heldKey{
			hold:    ticksFor(defaultJumpHold, tickRate),
			press:   core.IntentJumpPressed,
			release: core.IntentJumpReleased,
		},
		duck: heldKey{
			hold:    ticksFor(defaultDuckHold, tickRate),
			press:   core.IntentDuckPressed,
			release: core.IntentDuckReleased,
		},
	}
}

// Press records a key press at tick. It returns the pressed intent on the
// first press of a hold and nothing for repeats.
func (h *HeldKeys) Press(a Action, tick int) []core.Intent {
	switch a {
	case ActionJump:
		return h.jump.pressAt(tick)
	case ActionDuck:
		return h.duck.pressAt(tick)
	}
	return nil
}

// Expire returns release intents for keys whose repeats have stopped.
func (h *HeldKeys) Expire(tick int) []core.Intent {
	return append(h.jump.expireAt(tick), h.duck.expireAt(tick)...)
}

// Reset forgets every held key without emitting releases.
func (h *HeldKeys) Reset() {
	h.jump.down = false
	h.duck.down = false
}

// Held reports whether jump and duck are currently considered held.
func (h *HeldKeys) Held() (jump, duck bool) {
	return h.jump.down, h.duck.down
}
