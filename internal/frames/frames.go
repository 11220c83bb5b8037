// Package frames loads rendered frames from disk.
package frames

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// Extensions lists the frame formats Load can decode.
var Extensions = []string{".png", ".jpg", ".jpeg", ".tga"}

// Load reads a PNG, JPEG or TGA file and returns it as NRGBA.
// The decoder is chosen by extension: TGA has no reliable magic number.
func Load(path string) (*image.NRGBA, error) {
	var decode func(io.Reader) (image.Image, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		decode = png.Decode
	case ".jpg", ".jpeg":
		decode = jpeg.Decode
	case ".tga":
		decode = tga.Decode
	default:
		return nil, fmt.Errorf("frames: unknown extension: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("frames: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("frames: decode %s: %w", path, err)
	}
	return ToNRGBA(img), nil
}

// LoadAll loads every path in order, stopping at the first failure.
func LoadAll(paths []string) ([]*image.NRGBA, error) {
	out := make([]*image.NRGBA, 0, len(paths))
	for _, p := range paths {
		img, err := Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, nil
}

// ToNRGBA converts any image to NRGBA format with bounds starting at 0,0.
func ToNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha: draw sets every pixel opaque.
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
			}
		}
	}
	return dst
}
