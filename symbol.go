package escposgo

import (
	"strings"

	"github.com/ericlevine/escposgo/command"
)

// BarcodeOptions configures PrintBarcode. Zero fields take the defaults of
// DefaultBarcodeOptions.
type BarcodeOptions struct {
	// Width is the module width.
	Width BarcodeWidth

	// Height is the bar height in dots, 1..255.
	Height int

	// LabelFont is the font of the human readable label.
	LabelFont LabelFont

	// LabelPosition places the human readable label.
	LabelPosition LabelPosition

	// LeftSpacing is the left margin in dots, 0..255.
	LeftSpacing int
}

// DefaultBarcodeOptions returns the options used when none are given.
func DefaultBarcodeOptions() BarcodeOptions {
	return BarcodeOptions{
		Width:         BarcodeDot375,
		Height:        162,
		LabelFont:     LabelFontA,
		LabelPosition: LabelBelow,
	}
}

func (o *BarcodeOptions) resolve() BarcodeOptions {
	r := DefaultBarcodeOptions()
	if o == nil {
		return r
	}
	if o.Width != 0 {
		r.Width = o.Width
	}
	if o.Height != 0 {
		r.Height = o.Height
	}
	if o.LabelFont != 0 {
		r.LabelFont = o.LabelFont
	}
	if o.LabelPosition != 0 {
		r.LabelPosition = o.LabelPosition
	}
	r.LeftSpacing = o.LeftSpacing
	return r
}

// PrintBarcode prints data as a barcode of the given system. All settings are
// sent before the length-bearing GS k command, followed by data verbatim.
func (e *Encoder) PrintBarcode(data string, system BarcodeSystem, opts *BarcodeOptions) *Encoder {
	const op = "print barcode"
	if !e.ok(op) {
		return e
	}
	o := opts.resolve()
	if o.Width < BarcodeDot250 || o.Width > BarcodeDot750 {
		return e.fail(op, invalid("module width %d outside 2..6", byte(o.Width)))
	}
	if o.Height < 1 || o.Height > 255 {
		return e.fail(op, invalid("height %d outside 1..255", o.Height))
	}
	if o.LeftSpacing < 0 || o.LeftSpacing > 255 {
		return e.fail(op, invalid("left spacing %d outside 0..255", o.LeftSpacing))
	}
	if o.LabelFont != LabelFontA && o.LabelFont != LabelFontB {
		return e.fail(op, invalid("label font %d", byte(o.LabelFont)))
	}
	if o.LabelPosition < LabelNone || o.LabelPosition > LabelAboveBelow {
		return e.fail(op, invalid("label position %d", byte(o.LabelPosition)))
	}
	n, err := barcodeLength(data, system)
	if err != nil {
		return e.fail(op, err)
	}
	return e.emit(op,
		command.BarcodeWidth(byte(o.Width)),
		command.BarcodeHeight(byte(o.Height)),
		command.BarcodeLeftSpacing(byte(o.LeftSpacing)),
		command.LabelFont(byte(o.LabelFont)),
		command.LabelPosition(byte(o.LabelPosition)),
		command.BarcodeData(byte(system), n),
		[]byte(data),
	)
}

// barcodeLength returns the one-byte length field of GS k after checking
// data against the symbology.
func barcodeLength(data string, system BarcodeSystem) (byte, error) {
	if len(data) == 0 {
		return 0, invalid("empty %s barcode", system)
	}
	if len(data) > 255 {
		return 0, invalid("%s barcode of %d bytes exceeds 255", system, len(data))
	}
	if err := checkBarcodeContents(data, system); err != nil {
		return 0, err
	}
	return byte(len(data)), nil
}

const (
	code39Alphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%*"
	codabarAlphabet = "0123456789-$:/.+ABCDabcd"
	codabarGuards   = "ABCDabcd"
)

func checkBarcodeContents(data string, system BarcodeSystem) error {
	switch system {
	case BarcodeUPCA:
		return checkDigits(data, system, 11, 12)
	case BarcodeUPCE:
		return checkDigits(data, system, 6, 7, 8, 11, 12)
	case BarcodeEAN13:
		return checkDigits(data, system, 12, 13)
	case BarcodeEAN8:
		return checkDigits(data, system, 7, 8)
	case BarcodeITF:
		if len(data)%2 != 0 {
			return invalid("ITF requires an even number of digits, got %d", len(data))
		}
		return checkDigits(data, system)
	case BarcodeCode39:
		return checkAlphabet(data, system, code39Alphabet)
	case BarcodeCodabar:
		if len(data) < 2 ||
			!strings.ContainsRune(codabarGuards, rune(data[0])) ||
			!strings.ContainsRune(codabarGuards, rune(data[len(data)-1])) {
			return invalid("invalid start/end guards: %s", data)
		}
		return checkAlphabet(data, system, codabarAlphabet)
	case BarcodeCode93, BarcodeCode128:
		for i := 0; i < len(data); i++ {
			if data[i] > 127 {
				return invalid("bad character in %s input: ASCII value=%d", system, data[i])
			}
		}
		return nil
	default:
		return invalid("unknown barcode system %d", byte(system))
	}
}

// checkDigits verifies data is all digits and, when lengths are given, that
// its length is one of them.
func checkDigits(data string, system BarcodeSystem, lengths ...int) error {
	for i := 0; i < len(data); i++ {
		if data[i] < '0' || data[i] > '9' {
			return invalid("%s input should only contain digits, got %q", system, data[i])
		}
	}
	if len(lengths) == 0 {
		return nil
	}
	for _, l := range lengths {
		if len(data) == l {
			return nil
		}
	}
	return invalid("%s requires %v digits, got %d", system, lengths, len(data))
}

func checkAlphabet(data string, system BarcodeSystem, alphabet string) error {
	for i := 0; i < len(data); i++ {
		if strings.IndexByte(alphabet, data[i]) < 0 {
			return invalid("cannot encode %q in %s", data[i], system)
		}
	}
	return nil
}

// QROptions configures PrintQRCode. Zero fields take the defaults of
// DefaultQROptions.
type QROptions struct {
	// ModuleSize is the width of one QR module in dots, 1..16. Some printer
	// APIs call this the QR version.
	ModuleSize int

	// ErrorCorrection is the error correction level.
	ErrorCorrection QRErrorCorrection

	// Model is the QR symbol model.
	Model QRModel
}

// DefaultQROptions returns the options used when none are given.
func DefaultQROptions() QROptions {
	return QROptions{ModuleSize: 1, ErrorCorrection: QRLevelM, Model: QRModel1}
}

func (o *QROptions) resolve() QROptions {
	r := DefaultQROptions()
	if o == nil {
		return r
	}
	if o.ModuleSize != 0 {
		r.ModuleSize = o.ModuleSize
	}
	if o.ErrorCorrection != 0 {
		r.ErrorCorrection = o.ErrorCorrection
	}
	if o.Model != 0 {
		r.Model = o.Model
	}
	return r
}

// PrintQRCode stores data in the printer's symbol buffer and prints it as a
// QR code.
func (e *Encoder) PrintQRCode(data string, opts *QROptions) *Encoder {
	const op = "print qr code"
	if !e.ok(op) {
		return e
	}
	o := opts.resolve()
	if o.ModuleSize < 1 || o.ModuleSize > 16 {
		return e.fail(op, invalid("QR module size %d outside 1..16", o.ModuleSize))
	}
	if o.ErrorCorrection < QRLevelL || o.ErrorCorrection > QRLevelH {
		return e.fail(op, invalid("QR error correction level %d", byte(o.ErrorCorrection)))
	}
	if o.Model < QRModel1 || o.Model > QRMicro {
		return e.fail(op, invalid("QR model %d", byte(o.Model)))
	}
	pL, pH, err := qrStoreLength(data)
	if err != nil {
		return e.fail(op, err)
	}
	return e.emit(op,
		command.QRBlock(command.QRSelectModel, byte(o.Model), 0),
		command.QRBlock(command.QRSetModuleSize, byte(o.ModuleSize)),
		command.QRBlock(command.QRSetErrorLevel, byte(o.ErrorCorrection)),
		command.QRStoreHeader(pL, pH),
		[]byte(data),
		command.QRBlock(command.QRPrintStoredData, 0x30),
	)
}

// qrStoreLength returns the pL pH fields of the store-data block. They count
// the three bytes cn fn m ahead of the data.
func qrStoreLength(data string) (pL, pH byte, err error) {
	if data == "" {
		return 0, 0, invalid("found empty QR contents")
	}
	s := len(data) + 3
	if s > 0xFFFF {
		return 0, 0, invalid("QR data of %d bytes too long", len(data))
	}
	return byte(s % 256), byte(s / 256), nil
}
