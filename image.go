package escposgo

import (
	"image"

	"github.com/ericlevine/escposgo/command"
	"github.com/ericlevine/escposgo/raster"
)

const maxRasterDimension = 0xFFFF

// PrintBitmap prints a width x height pixel grid, indexed [y][x], as a GS v 0
// raster image. Pixels are packed as one continuous bit stream; see
// raster.Pack.
func (e *Encoder) PrintBitmap(pixels [][]raster.Pixel, width, height int) *Encoder {
	return e.printBitmap("print bitmap", pixels, width, height, 0)
}

// PrintBitmapScaled is PrintBitmap with the printer scaling the image up by
// scale.
func (e *Encoder) PrintBitmapScaled(pixels [][]raster.Pixel, width, height int, scale BitmapScale) *Encoder {
	const op = "print bitmap"
	if !e.ok(op) {
		return e
	}
	if scale < BitmapNormal || scale > BitmapQuadruple {
		return e.fail(op, invalid("bitmap scale %d", byte(scale)))
	}
	return e.printBitmap(op, pixels, width, height, byte(scale))
}

func (e *Encoder) printBitmap(op string, pixels [][]raster.Pixel, width, height int, m byte) *Encoder {
	if !e.ok(op) {
		return e
	}
	if width <= 0 || height <= 0 {
		return e.fail(op, invalid("bitmap size %dx%d", width, height))
	}
	if err := checkRasterSize(raster.PackedSize(width, height)); err != nil {
		return e.fail(op, err)
	}
	return e.emitRaster(op, raster.Pack(pixels, width, height), m)
}

// PrintImage prints img as a GS v 0 raster image with every row starting on
// a byte boundary. Use raster.Fit first to keep wide images within the
// printer's dot width.
func (e *Encoder) PrintImage(img image.Image) *Encoder {
	const op = "print image"
	if !e.ok(op) {
		return e
	}
	b := img.Bounds()
	if b.Empty() {
		return e.fail(op, invalid("empty image %v", b))
	}
	if err := checkRasterSize((b.Dx()+7)/8, b.Dy()); err != nil {
		return e.fail(op, err)
	}
	return e.emitRaster(op, raster.PackImage(img), 0)
}

// checkRasterSize rejects rasters whose byte width or row count does not fit
// the 16-bit fields of GS v 0. It runs before packing so oversized grids are
// never allocated.
func checkRasterSize(bitWidth, bitHeight int) error {
	if bitWidth > maxRasterDimension || bitHeight > maxRasterDimension {
		return invalid("raster %dx%d bytes too large", bitWidth, bitHeight)
	}
	return nil
}

func (e *Encoder) emitRaster(op string, p raster.Packed, m byte) *Encoder {
	if err := checkRasterSize(p.BitWidth, p.BitHeight); err != nil {
		return e.fail(op, err)
	}
	return e.emit(op,
		command.RasterHeader(m,
			byte(p.BitWidth&0xFF), byte(p.BitWidth>>8),
			byte(p.BitHeight&0xFF), byte(p.BitHeight>>8)),
		p.Data,
	)
}
