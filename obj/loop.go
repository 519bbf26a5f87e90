package obj

import "github.com/milk9111/boyrun/common"

// Loop owns everything one iteration of the game mutates. Step is meant to be
// called from a single goroutine.
type Loop struct {
	Character *Character
	Input     *Input
	Sheet     Image
	// Background may be nil.
	Background Image
	// Width and Height are the world size; the background is centred in it.
	Width, Height float64

	steps   int
	running bool
}

func NewLoop(c *Character, sheet, background Image, width, height float64) *Loop {
	return &Loop{
		Character:  c,
		Input:      NewInput(),
		Sheet:      sheet,
		Background: background,
		Width:      width,
		Height:     height,
		running:    true,
	}
}

// Step runs one iteration: draw the scene, move the character, then apply
// the pending events and pick the next state. It returns false once a quit
// has been requested; later calls do nothing.
func (l *Loop) Step(canvas Canvas, events []Event) bool {
	if !l.running {
		return false
	}
	l.steps++

	canvas.Clear()
	if l.Background != nil {
		canvas.DrawImage(l.Background, common.Point{X: l.Width / 2, Y: l.Height / 2})
	}
	l.Character.Draw(canvas, l.Sheet)
	l.Character.Update()

	if !l.handleEvents(events) {
		l.running = false
		return false
	}

	if l.Character.Direction.IsZero() {
		l.Character.Idle()
	} else {
		l.Character.Run()
	}
	return true
}

func (l *Loop) handleEvents(events []Event) bool {
	for _, ev := range events {
		if !l.Input.Apply(ev, l.Character) {
			return false
		}
	}
	return true
}

// Delay is how long to wait before the next Step.
func (l *Loop) Delay() float64 {
	return l.Character.Delay()
}

func (l *Loop) Running() bool { return l.running }

// Steps returns the number of Step calls that ran.
func (l *Loop) Steps() int { return l.steps }
