package components

import "github.com/yohamta/donburi"

// GameOverData is set once the player's death timer has run out.
type GameOverData struct {
	Over  bool
	Ticks int // ticks survived
	Best  int // saved record, set when the run ends
}

var GameOver = donburi.NewComponentType[GameOverData]()
