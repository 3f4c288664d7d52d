// Package scene describes images composed of several circular shapes and
// renders them onto a canvas. Scenes are loaded from TOML or YAML files:
//
//	width = 576
//	height = 576
//	background = "#ffffff"
//
//	[[shapes]]
//	kind = "semicircle-top"
//	radius = 256
//	center = [288, 288]
//	[shapes.gradient]
//	kind = "directional"
//	ramp = "cubehelix"
//	direction = "bottom-right"
//
// The same document in YAML lists the shapes under the same "shapes" key.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/semicircle"
)

var (
	// ErrInvalidScene is returned for scenes that cannot be rendered.
	ErrInvalidScene = errors.New("scene: invalid scene")
	// ErrUnknownShape is returned for an unrecognized shape kind.
	ErrUnknownShape = errors.New("scene: unknown shape kind")
	// ErrUnknownGradient is returned for an unrecognized gradient kind.
	ErrUnknownGradient = errors.New("scene: unknown gradient kind")
	// ErrUnknownDirection is returned for an unrecognized gradient direction.
	ErrUnknownDirection = errors.New("scene: unknown gradient direction")
	// ErrUnknownRamp is returned for a ramp name with no preset.
	ErrUnknownRamp = errors.New("scene: unknown color ramp")
	// ErrUnsupportedConfig is returned for scene files that are neither
	// TOML nor YAML.
	ErrUnsupportedConfig = errors.New("scene: unsupported config format")
)

// Scene is a canvas plus the shapes drawn on it, in order.
type Scene struct {
	Width      int     `toml:"width" yaml:"width"`
	Height     int     `toml:"height" yaml:"height"`
	Background string  `toml:"background" yaml:"background"`
	Shapes     []Shape `toml:"shapes" yaml:"shapes"`
}

// Shape is one figure of a scene.
type Shape struct {
	// Kind is one of the names accepted by ParseKind.
	Kind   string `toml:"kind" yaml:"kind"`
	Radius uint   `toml:"radius" yaml:"radius"`
	// Center is where the circle's origin lands on the canvas.
	Center [2]int `toml:"center" yaml:"center"`
	// Start and End stretch the rows of long shapes; End also sets the
	// straight edge of quadrants.
	Start int `toml:"start" yaml:"start"`
	End   int `toml:"end" yaml:"end"`
	// Reverse walks the rows from the pole. The pixels are the same; only
	// the drawing order changes.
	Reverse  bool      `toml:"reverse" yaml:"reverse"`
	Color    string    `toml:"color" yaml:"color"`
	Gradient *Gradient `toml:"gradient" yaml:"gradient"`
}

// Gradient colors a shape from a preset ramp.
type Gradient struct {
	// Kind is "axial" or "directional".
	Kind      string `toml:"kind" yaml:"kind"`
	Ramp      string `toml:"ramp" yaml:"ramp"`
	Direction string `toml:"direction" yaml:"direction"`
	// Size is the half-range of a directional gradient; the ramp is
	// sampled over [0, 2*Size]. Unset, it is the radius for straight
	// directions and ceil(radius*sqrt2) for diagonals. Offset defaults to
	// Size. Zero is a valid offset.
	Offset *int `toml:"offset" yaml:"offset"`
	Size   *int `toml:"size" yaml:"size"`
}

// Format is a scene file encoding.
type Format int

const (
	// FormatTOML decodes with github.com/BurntSushi/toml.
	FormatTOML Format = iota
	// FormatYAML decodes with gopkg.in/yaml.v3.
	FormatYAML
)

// FormatFromPath picks the config format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedConfig, filepath.Ext(path))
	}
}

// Decode reads a scene in the given format and validates it.
func Decode(r io.Reader, f Format) (*Scene, error) {
	var s Scene
	switch f {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&s)
		if err != nil {
			return nil, fmt.Errorf("scene: decode toml: %w", err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidScene, keys[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("scene: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedConfig, f)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	s, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	semicircle.Logger().Debug("scene: loaded", "path", path, "shapes", len(s.Shapes))
	return s, nil
}

// Validate checks the canvas size and every shape, without rendering.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalidScene, s.Width, s.Height)
	}
	if _, err := parseColor(s.Background, white); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	for i := range s.Shapes {
		if err := s.Shapes[i].validate(); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return nil
}

func (sh *Shape) validate() error {
	if _, err := ParseKind(sh.Kind); err != nil {
		return err
	}
	if _, err := parseColor(sh.Color, black); err != nil {
		return err
	}
	if sh.Gradient != nil {
		if _, err := sh.Gradient.colorizer(sh.Radius); err != nil {
			return err
		}
	}
	return nil
}
