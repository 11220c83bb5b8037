package sheet

import (
	"image"

	"golang.org/x/image/draw"
)

// Cell is one spritesheet entry. A nil Image leaves the cell transparent.
type Cell struct {
	Image  *image.NRGBA
	Mirror bool
}

// Compose draws cells into a new sheet following l. Each image is fitted
// into its cell; mirrored cells are flipped horizontally first.
func Compose(l Layout, cells []Cell) *image.NRGBA {
	dst := image.NewNRGBA(l.Bounds())
	for i, c := range cells {
		if i >= l.Cells {
			break
		}
		if c.Image == nil {
			continue
		}
		img := c.Image
		if c.Mirror {
			img = FlipHorizontal(img)
		}
		fitted := Fit(img, l.CellSize)
		r := l.CellRect(i)
		draw.Copy(dst, r.Min, fitted, fitted.Bounds(), draw.Src, nil)
	}
	return dst
}

// FlipHorizontal returns a left/right mirrored copy of img.
func FlipHorizontal(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetNRGBA(x, y, img.NRGBAAt(b.Min.X+w-1-x, b.Min.Y+y))
		}
	}
	return out
}

// Fit scales img to fit a size×size canvas, preserving aspect ratio and
// centering it. Scaling is premultiplied-alpha-aware CatmullRom so
// transparent edges do not pick up dark halos.
func Fit(img *image.NRGBA, size int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	canvas := image.NewNRGBA(image.Rect(0, 0, size, size))
	if w == 0 || h == 0 || size <= 0 {
		return canvas
	}

	dstW, dstH := size, size
	if w > h {
		dstH = max(1, h*size/w)
	} else if h > w {
		dstW = max(1, w*size/h)
	}
	offX := (size - dstW) / 2
	offY := (size - dstH) / 2
	dstRect := image.Rect(offX, offY, offX+dstW, offY+dstH)

	if w == dstW && h == dstH {
		draw.Copy(canvas, dstRect.Min, img, b, draw.Src, nil)
		return canvas
	}

	scaleInto(canvas, dstRect, img)
	return canvas
}

// scaleInto resamples src into r of dst with CatmullRom. The kernel runs on
// premultiplied RGBA so transparent texels contribute no color; the result
// is converted back to straight alpha when copied into dst.
func scaleInto(dst *image.NRGBA, r image.Rectangle, src *image.NRGBA) {
	tmp := image.NewRGBA(r)
	draw.CatmullRom.Scale(tmp, r, src, src.Bounds(), draw.Src, nil)
	draw.Draw(dst, r, tmp, r.Min, draw.Src)
}
