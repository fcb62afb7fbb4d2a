// internal/game/types.go
//
// Core type definitions for the bowling scoring engine.
// Defines:
//   - Kind: how a frame was resolved (open/spare/strike).
//   - Frame: one resolved scoring unit of a game.
//   - Game: the roll log for a single game.

package game

import "errors"

const (
	framesPerGame = 10
	pinsPerFrame  = 10
)

// ErrIncompleteGame is returned when the roll log is too short to resolve
// all ten frames, including any bonus rolls a strike or spare is owed.
var ErrIncompleteGame = errors.New("incomplete game")

// Kind classifies a frame.
//   - "open":   fewer than ten pins across the frame's two rolls.
//   - "spare":  ten pins across two rolls.
//   - "strike": ten pins on the first roll.
type Kind string

const (
	KindOpen   Kind = "open"
	KindSpare  Kind = "spare"
	KindStrike Kind = "strike"
)

// Frame is one resolved frame of a scored game.
type Frame struct {
	Number int   // 1-based frame number.
	Kind   Kind  // Open, spare or strike.
	Rolls  []int // Rolls thrown in this frame (the tenth includes its bonus rolls).
	Score  int   // Pins plus bonus for this frame.
	Total  int   // Running score through this frame.
}

// Game holds the ordered pins-per-roll log of one game.
// The zero value is an empty game ready for use.
//
// A Game is not safe for concurrent use; see the store package.
type Game struct {
	rolls []int
}
