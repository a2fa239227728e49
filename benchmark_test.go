package escposgo_test

import (
	"image"
	"image/color"
	"testing"

	escposgo "github.com/ericlevine/escposgo"
	"github.com/ericlevine/escposgo/raster"
)

func checkerboard(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/8+y/8)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

var symbolTests = []struct {
	name   string
	encode func(*escposgo.Encoder) *escposgo.Encoder
}{
	{"QRCode", func(e *escposgo.Encoder) *escposgo.Encoder {
		return e.PrintQRCode("Hello, World! This is a QR code benchmark test.", nil)
	}},
	{"Code128", func(e *escposgo.Encoder) *escposgo.Encoder {
		return e.PrintBarcode("{BHello123", escposgo.BarcodeCode128, nil)
	}},
	{"EAN13", func(e *escposgo.Encoder) *escposgo.Encoder {
		return e.PrintBarcode("5901234123457", escposgo.BarcodeEAN13, nil)
	}},
	{"TextCP437", func(e *escposgo.Encoder) *escposgo.Encoder {
		return e.PrintTextEncoded("Crème brûlée ........ 4.50", "cp437")
	}},
}

func BenchmarkSymbols(b *testing.B) {
	for _, tc := range symbolTests {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				e, err := escposgo.NewEncoder(true, "")
				if err != nil {
					b.Fatal(err)
				}
				if _, err := tc.encode(e).Build(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPrintBitmap(b *testing.B) {
	grid := raster.FromImage(checkerboard(384, 256))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, err := escposgo.NewEncoder(false, "")
		if err != nil {
			b.Fatal(err)
		}
		if _, err := e.PrintBitmap(grid, 384, 256).Build(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPrintImage(b *testing.B) {
	img := checkerboard(576, 300)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, err := escposgo.NewEncoder(false, "")
		if err != nil {
			b.Fatal(err)
		}
		if _, err := e.PrintImage(raster.Fit(img, 384)).Build(); err != nil {
			b.Fatal(err)
		}
	}
}
