package raster

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// FromImage converts img into a pixel grid indexed [y][x], starting at the
// image's bounds origin.
func FromImage(img image.Image) [][]Pixel {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	grid := make([][]Pixel, h)
	for y := 0; y < h; y++ {
		row := make([]Pixel, w)
		for x := 0; x < w; x++ {
			row[x] = color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
		}
		grid[y] = row
	}
	return grid
}

// Fit scales img down to maxWidth dots, keeping the aspect ratio. Images
// already narrow enough, or a non-positive maxWidth, are returned unchanged.
func Fit(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if maxWidth <= 0 || w <= maxWidth {
		return img
	}
	nh := h * maxWidth / w
	if nh < 1 {
		nh = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, maxWidth, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}

// PackImage packs img row-aligned. See PackAligned.
func PackImage(img image.Image) Packed {
	bounds := img.Bounds()
	return PackAligned(FromImage(img), bounds.Dx(), bounds.Dy())
}
