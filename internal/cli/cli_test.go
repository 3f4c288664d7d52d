package cli

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/semicircle"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	orig := semicircle.Logger()
	t.Cleanup(func() { semicircle.SetLogger(orig) })

	var stdout, stderr bytes.Buffer
	sink := &logSink{}
	root := newRootCmd(&stdout, &stderr, sink)
	root.SetArgs(args)
	err := execute(context.Background(), root, sink)
	return stdout.String(), stderr.String(), err
}

func TestSpans(t *testing.T) {
	out, _, err := run(t, "spans", "--radius", "5")
	require.NoError(t, err)
	assert.Equal(t, "[-5, 5)@-1\n[-5, 5)@-2\n[-4, 4)@-3\n[-3, 3)@-4\n[-2, 2)@-5\n", out)
}

func TestSpansReverse(t *testing.T) {
	for _, typ := range []string{"int", "int32", "int64"} {
		out, _, err := run(t, "spans", "-r", "5", "--reverse", "--type", typ)
		require.NoError(t, err, typ)
		assert.Equal(t, "[-2, 2)@-5\n[-3, 3)@-4\n[-4, 4)@-3\n[-5, 5)@-2\n[-5, 5)@-1\n", out, typ)
	}
}

func TestSpansErrors(t *testing.T) {
	_, _, err := run(t, "spans", "--type", "int8")
	assert.Error(t, err)

	_, _, err = run(t, "spans", "--radius", "100000000")
	assert.ErrorIs(t, err, semicircle.ErrRadiusTooLarge)

	_, _, err = run(t, "spans", "--type", "int32", "--radius", "5000000000")
	assert.ErrorIs(t, err, semicircle.ErrRadiusUnrepresentable)
}

func TestShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.png")
	_, stderr, err := run(t, "shape", "circle-long", "-r", "16", "--start", "-16", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Rendered circle-long")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 48, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}

func TestShapeGradient(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grad.bmp")
	_, _, err := run(t, "shape", "fourth-quadrant", "-r", "8", "--gradient", "directional",
		"--direction", "top-right", "--ramp", "viridis", "--margin", "2", "-o", path)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestShapeUnknownKind(t *testing.T) {
	_, _, err := run(t, "shape", "hexagon", "-o", filepath.Join(t.TempDir(), "x.png"))
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.tiff")
	_, stderr, err := run(t, "-v", "render", filepath.Join("..", "..", "scene", "testdata", "capsule.yaml"), "-o", path)
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Contains(t, stderr, "scene loaded")
}

func TestRenderBatch(t *testing.T) {
	dir := t.TempDir()
	var scenes []string
	for _, name := range []string{"capsule.yaml", "gradient.toml"} {
		data, err := os.ReadFile(filepath.Join("..", "..", "scene", "testdata", name))
		require.NoError(t, err)
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, data, 0o600))
		scenes = append(scenes, p)
	}

	_, stderr, err := run(t, append([]string{"render", "--format", "bmp", "-j", "2"}, scenes...)...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Rendered 2 scenes")
	assert.FileExists(t, filepath.Join(dir, "capsule.bmp"))
	assert.FileExists(t, filepath.Join(dir, "gradient.bmp"))
}

func TestRenderBatchReportsFailures(t *testing.T) {
	dir := t.TempDir()
	data, err := os.ReadFile(filepath.Join("..", "..", "scene", "testdata", "capsule.yaml"))
	require.NoError(t, err)
	good := filepath.Join(dir, "capsule.yaml")
	require.NoError(t, os.WriteFile(good, data, 0o600))

	_, stderr, err := run(t, "render", filepath.Join(dir, "missing.toml"), good)
	assert.Error(t, err)
	assert.Contains(t, stderr, "render failed")
	assert.FileExists(t, filepath.Join(dir, "capsule.png"))
}

func TestRenderOutputs(t *testing.T) {
	o := renderOptions{format: ".tiff"}
	outs, err := o.outputs([]string{"a/b.toml", "c.yaml"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a/b.tiff", "c.tiff"}, outs)

	o.output = "x.png"
	outs, err = o.outputs([]string{"a.toml"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x.png"}, outs)

	_, err = o.outputs([]string{"a.toml", "b.toml"})
	assert.Error(t, err)
}

func TestLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "semicircle.log")
	_, _, err := run(t, "--log-file", logPath, "shape", "circle", "-r", "4", "-o", filepath.Join(dir, "c.pdf"))
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Rendered circle")
	assert.FileExists(t, filepath.Join(dir, "c.pdf"))
}

func TestLogFileClosedOnFailure(t *testing.T) {
	orig := semicircle.Logger()
	t.Cleanup(func() { semicircle.SetLogger(orig) })

	dir := t.TempDir()
	logPath := filepath.Join(dir, "semicircle.log")
	var stdout, stderr bytes.Buffer
	sink := &logSink{}
	root := newRootCmd(&stdout, &stderr, sink)
	root.SetArgs([]string{"--log-file", logPath, "render", filepath.Join(dir, "missing.toml")})

	err := execute(context.Background(), root, sink)
	require.Error(t, err)
	assert.True(t, sink.closed, "log file left open after a failed command")
	assert.Nil(t, sink.file)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "render failed")
}

func TestShapeOptionsScene(t *testing.T) {
	o := shapeOptions{radius: 10, start: -5, end: 3, margin: 1}
	s := o.scene("circle")
	assert.Equal(t, 10+5+1+10+3+1, s.Width)
	assert.Equal(t, 22, s.Height)
	assert.Equal(t, [2]int{16, 11}, s.Shapes[0].Center)
}
