// Package raster converts pixel grids into the packed monochrome bitmaps sent
// with the GS v 0 raster command.
package raster

import (
	"image/color"
	"math"
	mathbits "math/bits"
)

// Pixel is a non-premultiplied color sample.
type Pixel = color.NRGBA

// Packed is a 1-bit-per-pixel bitmap. Data holds BitWidth bytes for each of
// BitHeight rows.
type Packed struct {
	Data      []byte
	BitWidth  int
	BitHeight int
}

// IsBlack reports whether p prints as a black dot: it must be at least half
// opaque and darker than mid grey on average.
func IsBlack(p Pixel) bool {
	if p.A < 128 {
		return false
	}
	return int(p.R)+int(p.G)+int(p.B) < 3*128
}

// Pack walks the width x height grid in row-major order and sets bit
// x+y*width of a continuous MSB-first bit stream for every black pixel.
// Rows are not realigned to byte boundaries; the stream is cut into rows of
// ceil(width/8) bytes and the last row zero-filled.
//
// pixels is indexed [y][x]. Cells missing from a ragged grid print white.
func Pack(pixels [][]Pixel, width, height int) Packed {
	if width <= 0 || height <= 0 {
		return Packed{}
	}
	bits := NewBits(width * height)
	for y := 0; y < height && y < len(pixels); y++ {
		row := pixels[y]
		for x := 0; x < width && x < len(row); x++ {
			if IsBlack(row[x]) {
				bits.Set(x + y*width)
			}
		}
	}

	bitWidth := (width + 7) / 8
	bitHeight := (bits.SizeInBytes() + bitWidth - 1) / bitWidth
	data := make([]byte, bitWidth*bitHeight)
	copy(data, bits.Bytes())
	return Packed{Data: data, BitWidth: bitWidth, BitHeight: bitHeight}
}

// PackedSize returns the BitWidth and BitHeight Pack would produce for a
// width x height grid, without allocating it. A grid too large to count
// reports a BitHeight of math.MaxInt.
func PackedSize(width, height int) (bitWidth, bitHeight int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	bitWidth = (width + 7) / 8
	hi, lo := mathbits.Mul64(uint64(width), uint64(height))
	if hi != 0 || lo > math.MaxUint64-7 {
		return bitWidth, math.MaxInt
	}
	n := (lo + 7) / 8
	rows := (n + uint64(bitWidth) - 1) / uint64(bitWidth)
	if rows > math.MaxInt {
		return bitWidth, math.MaxInt
	}
	return bitWidth, int(rows)
}

// PackAligned packs the grid with every row starting on a byte boundary, so
// BitHeight always equals height.
func PackAligned(pixels [][]Pixel, width, height int) Packed {
	if width <= 0 || height <= 0 {
		return Packed{}
	}
	bitWidth := (width + 7) / 8
	stride := bitWidth * 8
	bits := NewBits(stride * height)
	for y := 0; y < height && y < len(pixels); y++ {
		row := pixels[y]
		for x := 0; x < width && x < len(row); x++ {
			if IsBlack(row[x]) {
				bits.Set(x + y*stride)
			}
		}
	}
	return Packed{Data: bits.Bytes(), BitWidth: bitWidth, BitHeight: height}
}
