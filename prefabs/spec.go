package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/boyrun/component"
	"gopkg.in/yaml.v3"
)

const CharacterFile = "character.yaml"

const (
	defaultWidth  = 1280
	defaultHeight = 1024
	defaultSpeed  = 5
	defaultScale  = 1
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// CharacterSpec describes the window, the assets and the one character.
type CharacterSpec struct {
	Name       string                      `yaml:"name"`
	Title      string                      `yaml:"title"`
	Window     WindowSpec                  `yaml:"window"`
	ClearColor *YAMLColor                  `yaml:"clear_color"`
	Sheet      string                      `yaml:"sheet"`
	Background string                      `yaml:"background"`
	Start      PointSpec                   `yaml:"start"`
	Speed      float64                     `yaml:"speed"`
	Scale      float64                     `yaml:"scale"`
	Animations map[string]AnimationDefSpec `yaml:"animations"`
}

type WindowSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// AnimationDefSpec lists an animation's frames either as a run of equally
// sized cells on one sheet row, or as explicit clips. Explicit clips take
// precedence; their W/H fall back to FrameW/FrameH when zero.
type AnimationDefSpec struct {
	Delay      float64    `yaml:"delay"`
	FrameW     int        `yaml:"frame_w"`
	FrameH     int        `yaml:"frame_h"`
	Row        int        `yaml:"row"`
	ColStart   int        `yaml:"col_start"`
	FrameCount int        `yaml:"frame_count"`
	Clips      []ClipSpec `yaml:"clips"`
}

type ClipSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// ClipList expands the definition into sheet rectangles.
func (d AnimationDefSpec) ClipList() []component.Clip {
	if len(d.Clips) > 0 {
		clips := make([]component.Clip, len(d.Clips))
		for i, c := range d.Clips {
			w, h := c.W, c.H
			if w == 0 {
				w = d.FrameW
			}
			if h == 0 {
				h = d.FrameH
			}
			clips[i] = component.Clip{X: c.X, Y: c.Y, W: w, H: h}
		}
		return clips
	}

	clips := make([]component.Clip, 0, max(d.FrameCount, 0))
	for i := 0; i < d.FrameCount; i++ {
		clips = append(clips, component.Clip{
			X: (d.ColStart + i) * d.FrameW,
			Y: d.Row * d.FrameH,
			W: d.FrameW,
			H: d.FrameH,
		})
	}
	return clips
}

func (d AnimationDefSpec) Table() (*component.AnimationTable, error) {
	return component.NewAnimationTable(d.ClipList(), d.Delay)
}

func LoadCharacterSpec() (*CharacterSpec, error) {
	spec, err := LoadSpec[CharacterSpec](CharacterFile)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", CharacterFile, err)
	}
	return &spec, nil
}

func (s *CharacterSpec) applyDefaults() {
	if s.Window.Width <= 0 {
		s.Window.Width = defaultWidth
	}
	if s.Window.Height <= 0 {
		s.Window.Height = defaultHeight
	}
	if s.Speed <= 0 {
		s.Speed = defaultSpeed
	}
	if s.Scale <= 0 {
		s.Scale = defaultScale
	}
	if s.Title == "" {
		s.Title = s.Name
	}
}

func (s *CharacterSpec) validate() error {
	if s.Sheet == "" {
		return fmt.Errorf("sheet is required")
	}
	for _, name := range []string{"idle", "run"} {
		if _, ok := s.Animations[name]; !ok {
			return fmt.Errorf("animation %q is required", name)
		}
	}
	return nil
}

// Tables builds fresh idle and run animation tables.
func (s *CharacterSpec) Tables() (idle, run *component.AnimationTable, err error) {
	idle, err = s.Animations["idle"].Table()
	if err != nil {
		return nil, nil, fmt.Errorf("prefabs: idle animation: %w", err)
	}
	run, err = s.Animations["run"].Table()
	if err != nil {
		return nil, nil, fmt.Errorf("prefabs: run animation: %w", err)
	}
	return idle, run, nil
}

// Clear returns the clear colour, or fallback when none is set.
func (s *CharacterSpec) Clear(fallback color.Color) color.Color {
	if s.ClearColor == nil || s.ClearColor.Color == nil {
		return fallback
	}
	return s.ClearColor.Color
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
