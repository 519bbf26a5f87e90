package main

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/boyrun/common"
	"github.com/milk9111/boyrun/component"
	"github.com/milk9111/boyrun/obj"
	"github.com/milk9111/boyrun/prefabs"
	"golang.org/x/image/colornames"
)

// Game adapts obj.Loop to ebiten. Update runs at a fixed TPS; the pacer
// decides which ticks run a loop step, and Draw presents the frame the last
// step rendered.
type Game struct {
	loop    *obj.Loop
	canvas  *screenCanvas
	frame   *ebiten.Image
	pacer   obj.Pacer
	poller  eventPoller
	pending []obj.Event
	watcher *prefabs.Watcher

	width, height int
}

func NewGame(spec *prefabs.CharacterSpec) (*Game, error) {
	sheet, err := loadImage(spec.Sheet)
	if err != nil {
		return nil, err
	}
	var background obj.Image
	if spec.Background != "" {
		img, err := loadImage(spec.Background)
		if err != nil {
			return nil, err
		}
		background = img
	}

	idle, run, err := spec.Tables()
	if err != nil {
		return nil, err
	}
	if err := validateTables(sheet.Bounds(), idle, run); err != nil {
		return nil, fmt.Errorf("%s: %w", spec.Sheet, err)
	}

	character, err := obj.NewCharacter(common.Point{X: spec.Start.X, Y: spec.Start.Y}, idle, run)
	if err != nil {
		return nil, err
	}
	character.Speed = spec.Speed
	character.Scale = spec.Scale

	w, h := spec.Window.Width, spec.Window.Height
	frame := ebiten.NewImage(w, h)
	g := &Game{
		loop:   obj.NewLoop(character, sheet, background, float64(w), float64(h)),
		canvas: newScreenCanvas(frame, spec.Clear(colornames.Black)),
		frame:  frame,
		width:  w,
		height: h,
	}

	if prefabs.HasDiskDir() {
		watcher, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	g.pending = g.poller.Poll(g.pending)
	g.reloadChanged()

	// the first step renders immediately so Draw never presents an empty frame
	if g.loop.Steps() > 0 && !g.pacer.Tick(1/float64(ebiten.TPS()), g.loop.Delay()) {
		return nil
	}

	running := g.loop.Step(g.canvas, g.pending)
	g.pending = g.pending[:0]
	if !running {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.frame, nil)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s    FPS: %.2f", debugLine(g.loop), ebiten.ActualFPS()))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.width), float64(g.height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the prefab watcher, if any.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("prefabs: watch: %v", err)
		}
	default:
	}

	for _, name := range g.watcher.Changed() {
		if !prefabs.IsPrefab(name, prefabs.CharacterFile) {
			continue
		}
		if err := g.reload(); err != nil {
			log.Printf("prefabs: reload %s: %v", name, err)
			continue
		}
		log.Printf("prefabs: reloaded %s", name)
	}
}

// reload applies an edited character.yaml to the running character. Only
// animation, speed and scale are picked up; window and assets need a
// restart.
func (g *Game) reload() error {
	spec, err := prefabs.LoadCharacterSpec()
	if err != nil {
		return err
	}
	idle, run, err := spec.Tables()
	if err != nil {
		return err
	}
	if err := validateTables(g.loop.Sheet.Bounds(), idle, run); err != nil {
		return err
	}

	c := g.loop.Character
	if err := c.Table(obj.StateIdle).Replace(idle.Clips(), idle.Delay()); err != nil {
		return err
	}
	if err := c.Table(obj.StateRun).Replace(run.Clips(), run.Delay()); err != nil {
		return err
	}
	c.Speed = spec.Speed
	c.Scale = spec.Scale
	return nil
}

func validateTables(bounds image.Rectangle, tables ...*component.AnimationTable) error {
	for _, t := range tables {
		if err := t.Validate(bounds); err != nil {
			return err
		}
	}
	return nil
}

func debugLine(l *obj.Loop) string {
	c := l.Character
	return fmt.Sprintf("State: %s  Frame: %d/%d  Pos: (%.0f, %.0f)  Flip: %v",
		c.State(), c.CurrentState().Table().Frame(), c.CurrentState().Table().Len(),
		c.Position.X, c.Position.Y, c.Flip)
}
