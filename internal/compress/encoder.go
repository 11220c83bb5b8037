package compress

import (
	"image"
	"io"

	"github.com/HugoSmits86/nativewebp"
)

// Encoder writes an image in some compressed format.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
	// Ext is the file extension for the output, with the dot.
	Ext() string
}

// WebPEncoder produces lossless WebP.
type WebPEncoder struct{}

func (WebPEncoder) Encode(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}

func (WebPEncoder) Ext() string { return ".webp" }
