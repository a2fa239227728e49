// Package command holds the ESC/POS byte templates used by the encoder.
//
// Every entry is either a fixed byte sequence or a constructor that places a
// single argument at a known offset. Constructors return a fresh slice on each
// call so callers may append to the result.
package command

// Control characters.
const (
	LF  = 0x0A
	ESC = 0x1B
	GS  = 0x1D
	FS  = 0x1C
	DLE = 0x10
	EOT = 0x04
)

// Initialize (ESC @) clears the print buffer and restores power-on modes.
func Initialize() []byte {
	return []byte{ESC, 0x40}
}

// LineFeed (LF) prints the buffer and feeds one line.
func LineFeed() []byte {
	return []byte{LF}
}

// PrintAndFeedLines (ESC d n) prints the buffer and feeds n lines.
func PrintAndFeedLines(n byte) []byte {
	return []byte{ESC, 0x64, n}
}

// SelectCharacterCodeTable (ESC t n).
func SelectCharacterCodeTable(n byte) []byte {
	return []byte{ESC, 0x74, n}
}

// SelectCharacterSize (GS ! n). The high nibble is the width multiplier and
// the low nibble the height multiplier.
func SelectCharacterSize(n byte) []byte {
	return []byte{GS, 0x21, n}
}

// SelectCharacterFont (ESC M n) switches between the standard and the
// compressed font.
func SelectCharacterFont(n byte) []byte {
	return []byte{ESC, 0x4D, n}
}

// Emphasize (ESC E n) turns bold on (1) or off (0).
func Emphasize(n byte) []byte {
	return []byte{ESC, 0x45, n}
}

// Underline (ESC - n). 48 turns underline off, 49 and 50 select one or two
// dot thickness.
func Underline(n byte) []byte {
	return []byte{ESC, 0x2D, n}
}

// Justify (ESC a n).
func Justify(n byte) []byte {
	return []byte{ESC, 0x61, n}
}

// WhiteBlackReverse (GS B n) prints white text on a black background.
func WhiteBlackReverse(n byte) []byte {
	return []byte{GS, 0x42, n}
}

// UpsideDown (ESC { n).
func UpsideDown(n byte) []byte {
	return []byte{ESC, 0x7B, n}
}

// EnterKanjiMode (FS &) switches the printer to its double-byte character set.
func EnterKanjiMode() []byte {
	return []byte{FS, 0x26}
}

// BarcodeWidth (GS w n) sets the module width in dots.
func BarcodeWidth(n byte) []byte {
	return []byte{GS, 0x77, n}
}

// BarcodeHeight (GS h n) sets the bar height in dots.
func BarcodeHeight(n byte) []byte {
	return []byte{GS, 0x68, n}
}

// BarcodeLeftSpacing (GS x n).
func BarcodeLeftSpacing(n byte) []byte {
	return []byte{GS, 0x78, n}
}

// LabelFont (GS f n) selects the HRI font.
func LabelFont(n byte) []byte {
	return []byte{GS, 0x66, n}
}

// LabelPosition (GS H n) selects where the HRI characters print.
func LabelPosition(n byte) []byte {
	return []byte{GS, 0x48, n}
}

// BarcodeData (GS k m n) announces a barcode of system m carrying n data
// bytes. The n data bytes must follow.
func BarcodeData(m, n byte) []byte {
	return []byte{GS, 0x6B, m, n}
}

// QR code function codes for GS ( k with cn = 49.
const (
	QRSelectModel     = 0x41
	QRSetModuleSize   = 0x43
	QRSetErrorLevel   = 0x45
	QRStoreData       = 0x50
	QRPrintStoredData = 0x51
)

const qrSymbolCategoryCn = 0x31

// QRBlock builds a GS ( k block for the QR symbol category. The two length
// bytes pL pH count cn, fn and params.
func QRBlock(fn byte, params ...byte) []byte {
	n := len(params) + 2
	b := make([]byte, 0, 7+len(params))
	b = append(b, GS, 0x28, 0x6B, byte(n%256), byte(n/256), qrSymbolCategoryCn, fn)
	return append(b, params...)
}

// QRStoreHeader is the GS ( k store-data header. pL pH must count the three
// bytes cn fn m plus the data that follows the header.
func QRStoreHeader(pL, pH byte) []byte {
	return []byte{GS, 0x28, 0x6B, pL, pH, qrSymbolCategoryCn, QRStoreData, 0x30}
}

// RasterHeader (GS v 0 m xL xH yL yH). xL xH give the bytes per row and
// yL yH the row count, both little-endian. (xL+xH*256)*(yL+yH*256) bytes of
// raster data must follow.
func RasterHeader(m, xL, xH, yL, yH byte) []byte {
	return []byte{GS, 0x76, 0x30, m, xL, xH, yL, yH}
}

// TransmitStatus (DLE EOT n) requests a real-time status byte.
func TransmitStatus(n byte) []byte {
	return []byte{DLE, EOT, n}
}

// Cut (GS V m).
func Cut(m byte) []byte {
	return []byte{GS, 0x56, m}
}

// Beep (ESC B n t) sounds the buzzer n times for t x 100ms.
func Beep(n, t byte) []byte {
	return []byte{ESC, 0x42, n, t}
}
