package core

import "fmt"

// PlayerID identifies a local player. Player1 owns board 0.
type PlayerID int

const (
	Player1 PlayerID = iota + 1
	Player2
)

// Index returns the zero-based board index for the player.
func (p PlayerID) Index() int {
	return int(p) - 1
}

// String returns "P1", "P2", ...
func (p PlayerID) String() string {
	return fmt.Sprintf("P%d", int(p))
}

// PlayerForIndex maps a board index back to its player.
func PlayerForIndex(i int) PlayerID {
	return PlayerID(i + 1)
}
