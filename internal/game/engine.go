// internal/game/engine.go
//
// Core scoring engine for a single game of ten-pin bowling.
// Responsibilities:
//   - Record rolls in play order (no validation, never fails).
//   - Walk exactly ten frames over the flat roll log, one cursor advancing
//     by 1 after a strike and by 2 otherwise.
//   - Resolve strike and spare bonuses by reading ahead into later rolls.
//   - Report a short log as ErrIncompleteGame instead of reading past it.
//
// Notes:
//   - Frame boundaries are derived on every walk, never stored.
//   - Strike is tested before spare: a spare inspects two rolls from the
//     cursor, which only belong to one frame when the first is not a strike.
//   - The tenth frame needs no special case; its bonus rolls are simply the
//     lookahead of a ninth/tenth frame strike or spare.
package game

import "fmt"

// New constructs an empty game.
func New() *Game {
	return &Game{}
}

// Roll appends the pins knocked down by one throw.
func (g *Game) Roll(pins int) {
	g.rolls = append(g.rolls, pins)
}

// Rolls returns a copy of the roll log in play order.
func (g *Game) Rolls() []int {
	out := make([]int, len(g.rolls))
	copy(out, g.rolls)
	return out
}

// Score returns the total score of the game.
// Returns ErrIncompleteGame (wrapped with the failing frame) when the log
// cannot resolve all ten frames.
func (g *Game) Score() (int, error) {
	frames, err := g.Frames()
	if err != nil {
		return 0, err
	}
	return frames[len(frames)-1].Total, nil
}

// Frames resolves the ten frames of the game with their running totals.
// Rolls recorded beyond what the tenth frame needs are ignored.
func (g *Game) Frames() ([]Frame, error) {
	frames := make([]Frame, 0, framesPerGame)
	total, cursor := 0, 0
	for n := 1; n <= framesPerGame; n++ {
		f, next, err := g.frameAt(n, cursor)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", n, err)
		}
		total += f.Score
		f.Total = total
		frames = append(frames, f)
		cursor = next
	}
	return frames, nil
}

// frameAt resolves frame n starting at roll index i.
// Returns the frame and the index where the next frame starts.
func (g *Game) frameAt(n, i int) (Frame, int, error) {
	strike, err := g.isStrike(i)
	if err != nil {
		return Frame{}, 0, err
	}
	if strike {
		bonus, err := g.sumOfPair(i + 1)
		if err != nil {
			return Frame{}, 0, err
		}
		return Frame{
			Number: n,
			Kind:   KindStrike,
			Rolls:  g.frameRolls(n, i, KindStrike),
			Score:  pinsPerFrame + bonus,
		}, i + 1, nil
	}

	pins, err := g.sumOfPair(i)
	if err != nil {
		return Frame{}, 0, err
	}
	if pins == pinsPerFrame {
		bonus, err := g.at(i + 2)
		if err != nil {
			return Frame{}, 0, err
		}
		return Frame{
			Number: n,
			Kind:   KindSpare,
			Rolls:  g.frameRolls(n, i, KindSpare),
			Score:  pinsPerFrame + bonus,
		}, i + 2, nil
	}

	return Frame{
		Number: n,
		Kind:   KindOpen,
		Rolls:  g.frameRolls(n, i, KindOpen),
		Score:  pins,
	}, i + 2, nil
}

// isStrike reports whether the roll at i knocked down every pin.
func (g *Game) isStrike(i int) (bool, error) {
	pins, err := g.at(i)
	if err != nil {
		return false, err
	}
	return pins == pinsPerFrame, nil
}

// sumOfPair adds the rolls at i and i+1.
func (g *Game) sumOfPair(i int) (int, error) {
	first, err := g.at(i)
	if err != nil {
		return 0, err
	}
	second, err := g.at(i + 1)
	if err != nil {
		return 0, err
	}
	return first + second, nil
}

// at is the only read of the roll log. Out-of-range reads become
// ErrIncompleteGame.
func (g *Game) at(i int) (int, error) {
	if i < 0 || i >= len(g.rolls) {
		return 0, ErrIncompleteGame
	}
	return g.rolls[i], nil
}

// frameRolls copies the rolls thrown in frame n. A strike or spare in the
// tenth frame also owns its bonus rolls, which frameAt has already checked
// exist.
func (g *Game) frameRolls(n, i int, kind Kind) []int {
	width := 2
	if kind == KindStrike {
		width = 1
	}
	if n == framesPerGame && kind != KindOpen {
		width = 3
	}
	out := make([]int, width)
	copy(out, g.rolls[i:i+width])
	return out
}
