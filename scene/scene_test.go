package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/semicircle"
)

func TestLoadTOML(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "gradient.toml"))
	require.NoError(t, err)

	assert.Equal(t, 128, s.Width)
	assert.Equal(t, 128, s.Height)
	require.Len(t, s.Shapes, 3)
	assert.Equal(t, "third-quadrant", s.Shapes[1].Kind)
	assert.Equal(t, [2]int{64, 64}, s.Shapes[1].Center)
	require.NotNil(t, s.Shapes[0].Gradient)
	assert.Equal(t, "bottom-right", s.Shapes[0].Gradient.Direction)
}

func TestLoadYAML(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "capsule.yaml"))
	require.NoError(t, err)

	require.Len(t, s.Shapes, 2)
	assert.Equal(t, -32, s.Shapes[0].Start)
	assert.True(t, s.Shapes[1].Reverse)
	assert.Nil(t, s.Shapes[1].Gradient)
}

func TestLoadUnsupported(t *testing.T) {
	_, err := Load("scene.json")
	assert.ErrorIs(t, err, ErrUnsupportedConfig)
}

func TestDecodeRejectsUnknownYAMLField(t *testing.T) {
	_, err := Decode(strings.NewReader("width: 4\nheight: 4\nradius: 3\n"), FormatYAML)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		scene Scene
		want  error
	}{
		{"empty canvas", Scene{}, ErrInvalidScene},
		{"bad background", Scene{Width: 1, Height: 1, Background: "white"}, ErrInvalidScene},
		{"bad kind", Scene{Width: 1, Height: 1, Shapes: []Shape{{Kind: "ellipse"}}}, ErrUnknownShape},
		{"bad color", Scene{Width: 1, Height: 1, Shapes: []Shape{{Kind: "circle", Color: "#12"}}}, ErrInvalidScene},
		{"bad ramp", Scene{Width: 1, Height: 1, Shapes: []Shape{{Kind: "circle", Gradient: &Gradient{Ramp: "rainbow"}}}}, ErrUnknownRamp},
		{"bad gradient", Scene{Width: 1, Height: 1, Shapes: []Shape{{Kind: "circle", Gradient: &Gradient{Kind: "radial"}}}}, ErrUnknownGradient},
		{"bad direction", Scene{Width: 1, Height: 1, Shapes: []Shape{{Kind: "circle", Gradient: &Gradient{Kind: "directional", Direction: "up"}}}}, ErrUnknownDirection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.scene.Validate(), tt.want)
		})
	}
	ok := Scene{Width: 4, Height: 4, Shapes: []Shape{{Kind: "Second_Quadrant", Radius: 2}}}
	assert.NoError(t, ok.Validate())
}

func TestRenderRadiusTooLarge(t *testing.T) {
	s := Scene{Width: 4, Height: 4, Shapes: []Shape{{Kind: "circle", Radius: semicircle.MaxRadius}}}
	_, err := s.Render()
	assert.ErrorIs(t, err, semicircle.ErrRadiusTooLarge)
}

func TestRenderSolid(t *testing.T) {
	s := Scene{
		Width:  20,
		Height: 20,
		Shapes: []Shape{{Kind: "circle", Radius: 10, Center: [2]int{10, 10}, Color: "#ff0000"}},
	}
	c, err := s.Render()
	require.NoError(t, err)

	red := semicircle.RGB8{R: 255}
	assert.Equal(t, red, c.Pixel(10, 10))
	assert.Equal(t, red, c.Pixel(0, 10))
	assert.Equal(t, white, c.Pixel(0, 0), "background defaults to white")
}

func TestRenderGradientCoversDisc(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "gradient.toml"))
	require.NoError(t, err)
	c, err := s.Render()
	require.NoError(t, err)

	// Every pixel of the full disc is covered by exactly one of the three
	// pieces, so none of them is left at the background color.
	disc := semicircle.MustNew[int](uint(56)).Spans().Circle().Offset(64, 64)
	for p := range disc {
		require.NotEqual(t, white, c.Pixel(p.X, p.Y), "pixel (%d, %d) not painted", p.X, p.Y)
	}
	assert.Equal(t, white, c.Pixel(0, 0))
}

func TestReverseDrawsSamePixels(t *testing.T) {
	fwd := Shape{Kind: "semicircle-bottom-long", Radius: 9, Start: -3, End: 2}
	rev := fwd
	rev.Reverse = true

	a, err := fwd.Points()
	require.NoError(t, err)
	b, err := rev.Points()
	require.NoError(t, err)

	set := func(p semicircle.Points[int]) map[semicircle.Point[int]]bool {
		m := make(map[semicircle.Point[int]]bool)
		for pt := range p {
			m[pt] = true
		}
		return m
	}
	assert.Equal(t, set(a), set(b))
}

func TestKinds(t *testing.T) {
	for _, name := range Kinds() {
		k, err := ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.String())
	}
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestDefaultGradientSize(t *testing.T) {
	assert.Equal(t, 100, defaultSize(semicircle.DirectionTop, 100))
	assert.Equal(t, 142, defaultSize(semicircle.DirectionTopRight, 100))
}

func TestLoadWritesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 2\nheight = 2\n"), 0o600))
	s, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, s.Shapes)
}

func TestDecodeRejectsUnknownTOMLKey(t *testing.T) {
	_, err := Decode(strings.NewReader("width = 4\nheight = 4\ncolour = \"#fff\"\n"), FormatTOML)
	assert.ErrorIs(t, err, ErrInvalidScene)
}

func TestGradientExplicitOffset(t *testing.T) {
	origin := semicircle.Points[int](func(yield func(semicircle.Point[int]) bool) {
		yield(semicircle.Pt(0, 0))
	})
	zero, ten := 0, 10

	g := &Gradient{Kind: "directional", Ramp: "greys", Direction: "right", Offset: &zero, Size: &ten}
	col, err := g.colorizer(10)
	require.NoError(t, err)
	px := col(origin).Collect()
	require.Len(t, px, 1)
	assert.Equal(t, white, px[0].Color, "offset 0 samples the start of the ramp")

	g.Offset = nil
	col, err = g.colorizer(10)
	require.NoError(t, err)
	assert.NotEqual(t, white, col(origin).Collect()[0].Color, "unset offset defaults to size")

	bad := -1
	g.Size = &bad
	_, err = g.colorizer(10)
	assert.ErrorIs(t, err, ErrInvalidScene)
}

func TestShapesKeySharedByFormats(t *testing.T) {
	const tomlDoc = `
width = 8
height = 8
[[shapes]]
kind = "circle"
radius = 3
center = [4, 4]
[shapes.gradient]
kind = "directional"
direction = "top"
offset = 0
`
	const yamlDoc = `
width: 8
height: 8
shapes:
  - kind: circle
    radius: 3
    center: [4, 4]
    gradient:
      kind: directional
      direction: top
      offset: 0
`
	a, err := Decode(strings.NewReader(tomlDoc), FormatTOML)
	require.NoError(t, err)
	b, err := Decode(strings.NewReader(yamlDoc), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	require.Len(t, a.Shapes, 1)
	require.NotNil(t, a.Shapes[0].Gradient.Offset)
	assert.Equal(t, 0, *a.Shapes[0].Gradient.Offset)
	assert.Nil(t, a.Shapes[0].Gradient.Size)

	_, err = Decode(strings.NewReader("width = 4\nheight = 4\n[[shape]]\nkind = \"circle\"\n"), FormatTOML)
	assert.ErrorIs(t, err, ErrInvalidScene)
}
