package snapshot_test

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"teppa/heightmap"
	"teppa/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/memfs"
)

func TestField(t *testing.T) {
	store := snapshot.Store{Filesystem: memfs.New()}
	field, err := heightmap.New(3, 2, []float32{0, 0.125, 0.25, 0.5, 0.75, 1})
	require.NoError(t, err)

	name := snapshot.Name("out/field", 42, "bin")
	assert.Equal(t, "out/field-000042.bin", name)
	require.NoError(t, store.SaveField(name, field))

	got, err := store.LoadField(name)
	require.NoError(t, err)
	assert.Equal(t, field, got)

	entries, err := store.Filesystem.ReadDir("out")
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file renamed into place")
	assert.Equal(t, "field-000042.bin", entries[0].Name())
	assert.Equal(t, int64(16+6*4), entries[0].Size())
}

func TestLoadFieldErrors(t *testing.T) {
	fs := memfs.New()
	store := snapshot.Store{Filesystem: fs}

	_, err := store.LoadField("missing.bin")
	assert.Error(t, err)

	file, err := fs.Create("junk.bin")
	require.NoError(t, err)
	_, err = file.Write([]byte("definitely not a field"))
	require.NoError(t, err)
	require.NoError(t, file.Close())
	_, err = store.LoadField("junk.bin")
	assert.ErrorIs(t, err, snapshot.ErrFormat)

	field, err := heightmap.Blank(4, 4)
	require.NoError(t, err)
	require.NoError(t, store.SaveField("short.bin", field))
	short, err := fs.Open("short.bin")
	require.NoError(t, err)
	buf, err := io.ReadAll(short)
	require.NoError(t, err)
	require.NoError(t, short.Close())

	file, err = fs.Create("truncated.bin")
	require.NoError(t, err)
	_, err = file.Write(buf[:len(buf)-8])
	require.NoError(t, err)
	require.NoError(t, file.Close())
	_, err = store.LoadField("truncated.bin")
	assert.ErrorIs(t, err, snapshot.ErrFormat)
}

func TestSaveImage(t *testing.T) {
	fs := memfs.New()
	store := snapshot.Store{Filesystem: fs}

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 0, color.RGBA{10, 20, 30, 255})
	require.NoError(t, store.SaveImage("frames/frame.png", img))

	file, err := fs.Open("frames/frame.png")
	require.NoError(t, err)
	defer file.Close()
	decoded, err := png.Decode(file)
	require.NoError(t, err)
	r, g, b, _ := decoded.At(1, 0).RGBA()
	assert.Equal(t, []uint32{10, 20, 30}, []uint32{r >> 8, g >> 8, b >> 8})
}

func TestEncodeFailure(t *testing.T) {
	fs := memfs.New()
	store := snapshot.Store{Filesystem: fs}

	err := store.SaveImage("frames/bad.png", image.NewRGBA(image.Rect(0, 0, 0, 0)))
	assert.Error(t, err)
	_, err = fs.Stat("frames/bad.png")
	assert.Error(t, err, "nothing left at the final name")

	entries, err := fs.ReadDir("frames")
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary file removed")
}

type noRename struct {
	billy.Filesystem
}

func (noRename) Rename(from, to string) error {
	return errors.New("rename refused")
}

func TestRenameFailure(t *testing.T) {
	fs := memfs.New()
	store := snapshot.Store{Filesystem: noRename{fs}}

	field, err := heightmap.Blank(2, 2)
	require.NoError(t, err)
	assert.EqualError(t, store.SaveField("frames/field.bin", field), "rename refused")

	entries, err := fs.ReadDir("frames")
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary file removed")
}
