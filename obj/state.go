package obj

import (
	"github.com/milk9111/boyrun/common"
	"github.com/milk9111/boyrun/component"
)

// StateKind tags one of the character's animation states.
type StateKind int

const (
	StateIdle StateKind = iota
	StateRun

	stateCount
)

func (k StateKind) String() string {
	switch k {
	case StateIdle:
		return "idle"
	case StateRun:
		return "run"
	default:
		return "unknown"
	}
}

// CharacterState is implemented by each animation state. Transition requests
// return the state the character should switch to; states never touch the
// character themselves.
type CharacterState interface {
	Kind() StateKind
	Table() *component.AnimationTable
	Animate(canvas Canvas, sheet Image, pos common.Point, flip bool, scale float64)
	// RequestRun is asked while the character has a non-zero direction. It
	// returns the next state and the facing flag to use from now on.
	RequestRun(dir common.Vector, flip bool) (StateKind, bool)
	// RequestIdle is asked while the character has no direction.
	RequestIdle() StateKind
}

// animator is the drawing half shared by every state.
type animator struct {
	table *component.AnimationTable
}

func (a *animator) Table() *component.AnimationTable { return a.table }

// Animate draws the current frame at pos and then advances to the next one.
func (a *animator) Animate(canvas Canvas, sheet Image, pos common.Point, flip bool, scale float64) {
	clip := a.table.CurrentClip()
	w := float64(clip.W) * scale
	h := float64(clip.H) * scale
	canvas.DrawClipped(sheet, clip, pos, w, h, flip)
	a.table.Advance()
}

type idleState struct {
	animator
}

func (*idleState) Kind() StateKind { return StateIdle }

// RequestRun starts running, facing the way the character is about to move.
func (*idleState) RequestRun(dir common.Vector, flip bool) (StateKind, bool) {
	return StateRun, facing(dir, flip)
}

func (*idleState) RequestIdle() StateKind { return StateIdle }

type runState struct {
	animator
}

func (*runState) Kind() StateKind { return StateRun }

// RequestRun keeps running and reasserts facing from the horizontal
// direction. A purely vertical move leaves facing alone.
func (*runState) RequestRun(dir common.Vector, flip bool) (StateKind, bool) {
	return StateRun, facing(dir, flip)
}

func (*runState) RequestIdle() StateKind { return StateIdle }

// facing returns the mirrored flag matching the sign of dir.X, or flip when
// there is no horizontal movement.
func facing(dir common.Vector, flip bool) bool {
	switch {
	case dir.X > 0:
		return false
	case dir.X < 0:
		return true
	}
	return flip
}
