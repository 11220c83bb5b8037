package frames

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

// 2x1 uncompressed true-color TGA with alpha, bottom-left origin.
func tgaBytes() []byte {
	hdr := []byte{
		0,    // id length
		0,    // no color map
		2,    // uncompressed true-color
		0, 0, 0, 0, 0,
		0, 0, 0, 0, // origin
		2, 0, // width
		1, 0, // height
		32,   // bits per pixel
		8,    // 8 alpha bits
	}
	// BGRA pixels: red, half-transparent blue.
	px := []byte{0, 0, 255, 255, 255, 0, 0, 128}
	return append(hdr, px...)
}

func TestLoad_PNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.Set(1, 1, color.RGBA{R: 255, A: 255})
	path := filepath.Join(t.TempDir(), "frame.png")
	writePNG(t, path, src)

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, img.NRGBAAt(1, 1))
	assert.Equal(t, uint8(0), img.NRGBAAt(0, 0).A)
}

func TestLoad_TGA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.tga")
	require.NoError(t, os.WriteFile(path, tgaBytes(), 0644))

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, img.NRGBAAt(0, 0))
	assert.Equal(t, uint8(128), img.NRGBAAt(1, 0).A)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "decode")
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.png", "b.png"} {
		p := filepath.Join(dir, name)
		writePNG(t, p, image.NewGray(image.Rect(0, 0, 4, 4)))
		paths = append(paths, p)
	}
	imgs, err := LoadAll(paths)
	require.NoError(t, err)
	require.Len(t, imgs, 2)
	// Gray sources come back opaque.
	assert.Equal(t, uint8(255), imgs[1].NRGBAAt(2, 2).A)

	_, err = LoadAll(append(paths, filepath.Join(dir, "missing.png")))
	assert.Error(t, err)
}

func TestToNRGBA_RebasesBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 7))
	src.SetNRGBA(6, 6, color.NRGBA{G: 200, A: 255})
	out := ToNRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 2, 2), out.Bounds())
	assert.Equal(t, color.NRGBA{G: 200, A: 255}, out.NRGBAAt(1, 1))
}

func TestLoad_UnknownExtension(t *testing.T) {
	_, err := Load("frame.bmp")
	assert.ErrorContains(t, err, "unknown extension")
}
