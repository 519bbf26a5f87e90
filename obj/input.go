package obj

import "fmt"

// Key is one of the keys the character responds to.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEscape:
		return "escape"
	default:
		return "none"
	}
}

type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyDown
	EventKeyUp
)

// Event is a single input edge. Key is ignored for EventQuit.
type Event struct {
	Kind EventKind
	Key  Key
}

func (e Event) String() string {
	switch e.Kind {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		return fmt.Sprintf("down(%s)", e.Key)
	case EventKeyUp:
		return fmt.Sprintf("up(%s)", e.Key)
	default:
		return "event(?)"
	}
}

// Input turns key edges into the character's direction and facing. Each
// press adds to an axis and each release takes it back, so opposite keys
// held together cancel out. Edges that don't match the held set (a repeat
// press, a release of a key pressed before we started listening) are dropped
// to keep each axis within -1..1.
type Input struct {
	held map[Key]bool
}

func NewInput() *Input {
	return &Input{held: make(map[Key]bool)}
}

// Held reports whether key is currently down.
func (i *Input) Held(key Key) bool {
	return i.held[key]
}

// Apply applies one event to c. It returns false when the event asks the
// loop to stop.
func (i *Input) Apply(ev Event, c *Character) bool {
	switch ev.Kind {
	case EventQuit:
		return false
	case EventKeyDown:
		if ev.Key == KeyEscape {
			return false
		}
		if i.held[ev.Key] {
			return true
		}
		i.held[ev.Key] = true
		switch ev.Key {
		case KeyLeft:
			c.Flip = true
			c.Direction.X -= 1
		case KeyRight:
			c.Flip = false
			c.Direction.X += 1
		case KeyUp:
			c.Direction.Y += 1
		case KeyDown:
			c.Direction.Y -= 1
		}
	case EventKeyUp:
		if !i.held[ev.Key] {
			return true
		}
		delete(i.held, ev.Key)
		switch ev.Key {
		case KeyLeft:
			c.Direction.X += 1
		case KeyRight:
			c.Direction.X -= 1
		case KeyUp:
			c.Direction.Y -= 1
		case KeyDown:
			c.Direction.Y += 1
		}
	}
	return true
}
