package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black       = Pixel{R: 0, G: 0, B: 0, A: 255}
	white       = Pixel{R: 255, G: 255, B: 255, A: 255}
	clearBlack  = Pixel{R: 0, G: 0, B: 0, A: 127}
	darkGrey    = Pixel{R: 127, G: 127, B: 128, A: 255}
	midGrey     = Pixel{R: 128, G: 128, B: 128, A: 255}
	transparent = Pixel{}
)

func grid(w, h int, fill Pixel) [][]Pixel {
	g := make([][]Pixel, h)
	for y := range g {
		g[y] = make([]Pixel, w)
		for x := range g[y] {
			g[y][x] = fill
		}
	}
	return g
}

func TestBitsMSBFirst(t *testing.T) {
	b := NewBits(12)
	b.Set(0)
	b.Set(7)
	b.Set(8)
	assert.Equal(t, []byte{0x81, 0x80}, b.Bytes())
	assert.True(t, b.Get(7))
	assert.False(t, b.Get(6))
	b.Clear(7)
	assert.Equal(t, []byte{0x80, 0x80}, b.Bytes())
	assert.Equal(t, "X....... X...", b.String())
	assert.Equal(t, 2, b.SizeInBytes())
	assert.Equal(t, 12, b.Size())
}

func TestIsBlack(t *testing.T) {
	tests := []struct {
		name string
		p    Pixel
		want bool
	}{
		{"black", black, true},
		{"white", white, false},
		{"dark grey", darkGrey, true},
		{"mid grey", midGrey, false},
		{"translucent black", clearBlack, false},
		{"transparent", transparent, false},
		{"half opaque black", Pixel{A: 128}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsBlack(tc.p); got != tc.want {
				t.Errorf("IsBlack(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestPackSingleBlackPixel(t *testing.T) {
	p := Pack(grid(1, 1, black), 1, 1)
	assert.Equal(t, Packed{Data: []byte{0x80}, BitWidth: 1, BitHeight: 1}, p)
}

func TestPackWhiteRow(t *testing.T) {
	p := Pack(grid(8, 1, white), 8, 1)
	assert.Equal(t, Packed{Data: []byte{0x00}, BitWidth: 1, BitHeight: 1}, p)
}

func TestPackTransparentNeverBlack(t *testing.T) {
	p := Pack(grid(8, 2, clearBlack), 8, 2)
	assert.Equal(t, []byte{0x00, 0x00}, p.Data)
}

func TestPackContinuousStream(t *testing.T) {
	// 4x2 grid: both rows land in one byte because rows are not realigned.
	g := grid(4, 2, white)
	g[0][0] = black
	g[1][3] = black
	p := Pack(g, 4, 2)
	assert.Equal(t, 1, p.BitWidth)
	assert.Equal(t, 1, p.BitHeight)
	assert.Equal(t, []byte{0x81}, p.Data)
}

func TestPackZeroFillsTail(t *testing.T) {
	// 12x3 = 36 bits -> 5 bytes, bitwidth 2 -> 3 rows -> 6 bytes.
	p := Pack(grid(12, 3, black), 12, 3)
	require.Equal(t, 2, p.BitWidth)
	require.Equal(t, 3, p.BitHeight)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0xf0, 0x00}, p.Data)
}

func TestPackDimensions(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {7, 3}, {8, 8}, {9, 5}, {17, 11}, {384, 2}} {
		w, h := size[0], size[1]
		p := Pack(grid(w, h, black), w, h)
		bitWidth := (w + 7) / 8
		packedLen := (w*h + 7) / 8
		bitHeight := (packedLen + bitWidth - 1) / bitWidth
		if p.BitWidth != bitWidth || p.BitHeight != bitHeight {
			t.Errorf("%dx%d: got %dx%d, want %dx%d", w, h, p.BitWidth, p.BitHeight, bitWidth, bitHeight)
		}
		if len(p.Data) != p.BitWidth*p.BitHeight {
			t.Errorf("%dx%d: payload %d bytes, want %d", w, h, len(p.Data), p.BitWidth*p.BitHeight)
		}
	}
}

func TestPackedSizeMatchesPack(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {7, 3}, {9, 5}, {17, 11}, {384, 2}, {3, 0}} {
		w, h := size[0], size[1]
		p := Pack(grid(w, h, black), w, h)
		bw, bh := PackedSize(w, h)
		if bw != p.BitWidth || bh != p.BitHeight {
			t.Errorf("PackedSize(%d, %d) = %dx%d, Pack gave %dx%d", w, h, bw, bh, p.BitWidth, p.BitHeight)
		}
	}
}

func TestPackedSizeLargeGrid(t *testing.T) {
	bw, bh := PackedSize(1<<27, 1<<27)
	assert.Equal(t, 1<<24, bw)
	assert.Equal(t, 1<<27, bh)

	bw, bh = PackedSize(8, 1<<40)
	assert.Equal(t, 1, bw)
	assert.Equal(t, 1<<40, bh)

	_, bh = PackedSize(1<<40, 1<<40)
	assert.Equal(t, math.MaxInt, bh)
}

func TestPackRaggedGrid(t *testing.T) {
	g := [][]Pixel{{black}, {}}
	p := Pack(g, 2, 2)
	assert.Equal(t, []byte{0x80}, p.Data)
}

func TestPackEmpty(t *testing.T) {
	assert.Equal(t, Packed{}, Pack(nil, 0, 4))
	assert.Equal(t, Packed{}, PackAligned(nil, 3, 0))
}

func TestPackAlignedRows(t *testing.T) {
	g := grid(4, 2, white)
	g[0][0] = black
	g[1][3] = black
	p := PackAligned(g, 4, 2)
	assert.Equal(t, Packed{Data: []byte{0x80, 0x10}, BitWidth: 1, BitHeight: 2}, p)
}

func TestFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(2, 3, 4, 4))
	img.Set(2, 3, color.Black)
	img.Set(3, 3, color.Transparent)
	g := FromImage(img)
	require.Len(t, g, 1)
	require.Len(t, g[0], 2)
	assert.True(t, IsBlack(g[0][0]))
	assert.False(t, IsBlack(g[0][1]))
}

func TestPackImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 2))
	for x := 0; x < 10; x++ {
		img.SetGray(x, 0, color.Gray{Y: 255})
		img.SetGray(x, 1, color.Gray{Y: 0})
	}
	p := PackImage(img)
	assert.Equal(t, Packed{Data: []byte{0x00, 0x00, 0xff, 0xc0}, BitWidth: 2, BitHeight: 2}, p)
}

func TestFit(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 800, 200))
	got := Fit(img, 400)
	assert.Equal(t, image.Rect(0, 0, 400, 100), got.Bounds())

	assert.Same(t, img, Fit(img, 1000))
	assert.Same(t, img, Fit(img, 0))
}
