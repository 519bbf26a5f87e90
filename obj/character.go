package obj

import (
	"fmt"
	"log"

	"github.com/milk9111/boyrun/common"
	"github.com/milk9111/boyrun/component"
)

// DefaultSpeed is how far the character moves per loop step, in pixels.
const DefaultSpeed = 5

// Character is the player-controlled sprite. Both of its states are built
// once up front; switching state only changes which one is current, so each
// keeps its frame cursor while inactive.
type Character struct {
	Position  common.Point
	Direction common.Vector
	// Flip draws the sprite mirrored (facing left).
	Flip  bool
	Scale float64
	Speed float64

	states  [stateCount]CharacterState
	current StateKind
}

func NewCharacter(pos common.Point, idle, run *component.AnimationTable) (*Character, error) {
	if idle == nil || run == nil {
		return nil, fmt.Errorf("obj: character needs both idle and run animations")
	}
	c := &Character{
		Position: pos,
		Scale:    1,
		Speed:    DefaultSpeed,
		current:  StateIdle,
	}
	c.states[StateIdle] = &idleState{animator{table: idle}}
	c.states[StateRun] = &runState{animator{table: run}}
	return c, nil
}

func (c *Character) State() StateKind { return c.current }

func (c *Character) CurrentState() CharacterState { return c.states[c.current] }

// Table returns the animation table owned by the given state.
func (c *Character) Table(kind StateKind) *component.AnimationTable {
	return c.states[kind].Table()
}

// Delay is the current state's frame delay in seconds.
func (c *Character) Delay() float64 {
	return c.CurrentState().Table().Delay()
}

// Draw renders the current animation frame and advances it.
func (c *Character) Draw(canvas Canvas, sheet Image) {
	c.CurrentState().Animate(canvas, sheet, c.Position, c.Flip, c.Scale)
}

// Update moves the character one step along its direction.
func (c *Character) Update() {
	c.Position = c.Position.Add(c.Direction.Scale(c.Speed))
}

// Run asks the current state to run and applies its answer.
func (c *Character) Run() {
	next, flip := c.CurrentState().RequestRun(c.Direction, c.Flip)
	c.Flip = flip
	c.setState(next)
}

// Idle asks the current state to stop and applies its answer.
func (c *Character) Idle() {
	c.setState(c.CurrentState().RequestIdle())
}

func (c *Character) setState(next StateKind) {
	if next == c.current {
		return
	}
	log.Printf("character: %s -> %s", c.current, next)
	c.current = next
}
