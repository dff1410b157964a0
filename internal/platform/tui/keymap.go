package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-puyo/internal/core"
)

// PlayerKeys is one player's key set on the shared keyboard.
type PlayerKeys struct {
	Left   key.Binding
	Right  key.Binding
	Down   key.Binding
	Rotate key.Binding
}

// GameKeyMap holds every in-game binding.
type GameKeyMap struct {
	Players    []PlayerKeys // Indexed by board
	Restart    key.Binding
	Pause      key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Pause, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	groups := make([][]key.Binding, 0, len(k.Players)+1)
	for _, p := range k.Players {
		groups = append(groups, []key.Binding{p.Left, p.Right, p.Down, p.Rotate})
	}
	return append(groups, []key.Binding{k.Restart, k.Pause, k.Back, k.Screenshot, k.Quit})
}

// DefaultGameKeyMap returns arrows for Player 1 and WASD for Player 2.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Players: []PlayerKeys{
			{
				Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
				Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
				Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "drop")),
				Rotate: key.NewBinding(key.WithKeys("up", " ", "enter"), key.WithHelp("↑/space", "rotate")),
			},
			{
				Left:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "left")),
				Right:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "right")),
				Down:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "drop")),
				Rotate: key.NewBinding(key.WithKeys("w", "W", "tab"), key.WithHelp("w/tab", "rotate")),
			},
		},
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Pause:      key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Back:       key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "menu")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// With a single board both key sets drive Player 1.
type KeyMapper struct {
	keys    GameKeyMap
	players int
}

// NewKeyMapper creates a key mapper for a game with the given board count.
func NewKeyMapper(players int) *KeyMapper {
	return &KeyMapper{
		keys:    DefaultGameKeyMap(),
		players: max(1, players),
	}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action and the player it belongs to.
// Global actions (restart, pause, back) are attributed to Player 1.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (player core.PlayerID, action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.Player1, core.ActionQuit, true
	case key.Matches(msg, km.keys.Restart):
		return core.Player1, core.ActionRestart, false
	case key.Matches(msg, km.keys.Pause):
		return core.Player1, core.ActionPause, false
	case key.Matches(msg, km.keys.Back):
		return core.Player1, core.ActionBack, false
	}

	for i, pk := range km.keys.Players {
		player := core.PlayerForIndex(min(i, km.players-1))
		switch {
		case key.Matches(msg, pk.Left):
			return player, core.ActionLeft, false
		case key.Matches(msg, pk.Right):
			return player, core.ActionRight, false
		case key.Matches(msg, pk.Down):
			return player, core.ActionDown, false
		case key.Matches(msg, pk.Rotate):
			return player, core.ActionRotate, false
		}
	}

	return core.Player1, core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
