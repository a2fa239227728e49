package escposgo

import "fmt"

// Underline selects the underline thickness for StartUnderline.
type Underline byte

const (
	UnderlineOneDot  Underline = 49
	UnderlineTwoDots Underline = 50

	underlineOff = 48
)

// String returns the name of the underline mode.
func (u Underline) String() string {
	switch u {
	case UnderlineOneDot:
		return "ONE_POINT_OF_COARSE"
	case UnderlineTwoDots:
		return "TWO_POINTS_OF_COARSE"
	default:
		return fmt.Sprintf("Underline(%d)", byte(u))
	}
}

// Alignment is the line justification.
type Alignment byte

const (
	AlignLeft   Alignment = 48
	AlignCenter Alignment = 49
	AlignRight  Alignment = 50
)

// String returns the name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "LEFT"
	case AlignCenter:
		return "CENTER"
	case AlignRight:
		return "RIGHT"
	default:
		return fmt.Sprintf("Alignment(%d)", byte(a))
	}
}

// BarcodeSystem is the symbology argument m of GS k.
type BarcodeSystem byte

const (
	BarcodeUPCA    BarcodeSystem = 65
	BarcodeUPCE    BarcodeSystem = 66
	BarcodeEAN13   BarcodeSystem = 67
	BarcodeEAN8    BarcodeSystem = 68
	BarcodeCode39  BarcodeSystem = 69
	BarcodeITF     BarcodeSystem = 70
	BarcodeCodabar BarcodeSystem = 71
	BarcodeCode93  BarcodeSystem = 72
	BarcodeCode128 BarcodeSystem = 73
)

// String returns the name of the barcode system.
func (s BarcodeSystem) String() string {
	switch s {
	case BarcodeUPCA:
		return "UPC_A"
	case BarcodeUPCE:
		return "UPC_E"
	case BarcodeEAN13:
		return "EAN_13"
	case BarcodeEAN8:
		return "EAN_8"
	case BarcodeCode39:
		return "CODE_39"
	case BarcodeITF:
		return "ITF"
	case BarcodeCodabar:
		return "CODABAR"
	case BarcodeCode93:
		return "CODE_93"
	case BarcodeCode128:
		return "CODE_128"
	default:
		return fmt.Sprintf("BarcodeSystem(%d)", byte(s))
	}
}

// BarcodeWidth is the module width in dots (GS w).
type BarcodeWidth byte

const (
	BarcodeDot250 BarcodeWidth = 2
	BarcodeDot375 BarcodeWidth = 3
	BarcodeDot560 BarcodeWidth = 4
	BarcodeDot625 BarcodeWidth = 5
	BarcodeDot750 BarcodeWidth = 6
)

// LabelFont is the font of the human readable barcode label.
type LabelFont byte

const (
	LabelFontA LabelFont = 48
	LabelFontB LabelFont = 49
)

// LabelPosition places the human readable barcode label.
type LabelPosition byte

const (
	LabelNone       LabelPosition = 48
	LabelAbove      LabelPosition = 49
	LabelBelow      LabelPosition = 50
	LabelAboveBelow LabelPosition = 51
)

// String returns the name of the label position.
func (p LabelPosition) String() string {
	switch p {
	case LabelNone:
		return "NOT_PRINT"
	case LabelAbove:
		return "ABOVE"
	case LabelBelow:
		return "BOTTOM"
	case LabelAboveBelow:
		return "ABOVE_BOTTOM"
	default:
		return fmt.Sprintf("LabelPosition(%d)", byte(p))
	}
}

// QRErrorCorrection is the QR error correction level, encoded as the
// protocol byte '0'+level.
type QRErrorCorrection byte

const (
	QRLevelL QRErrorCorrection = 48
	QRLevelM QRErrorCorrection = 49
	QRLevelQ QRErrorCorrection = 50
	QRLevelH QRErrorCorrection = 51
)

// String returns the name of the error correction level.
func (l QRErrorCorrection) String() string {
	switch l {
	case QRLevelL:
		return "L"
	case QRLevelM:
		return "M"
	case QRLevelQ:
		return "Q"
	case QRLevelH:
		return "H"
	default:
		return fmt.Sprintf("QRErrorCorrection(%d)", byte(l))
	}
}

// QRModel selects the QR symbol model.
type QRModel byte

const (
	QRModel1 QRModel = 49
	QRModel2 QRModel = 50
	QRMicro  QRModel = 51
)

// String returns the name of the QR model.
func (m QRModel) String() string {
	switch m {
	case QRModel1:
		return "MODEL_1"
	case QRModel2:
		return "MODEL_2"
	case QRMicro:
		return "MICRO"
	default:
		return fmt.Sprintf("QRModel(%d)", byte(m))
	}
}

// BitmapScale is the m argument of GS v 0.
type BitmapScale byte

const (
	BitmapNormal       BitmapScale = 48
	BitmapDoubleWidth  BitmapScale = 49
	BitmapDoubleHeight BitmapScale = 50
	BitmapQuadruple    BitmapScale = 51
)

// String returns the name of the bitmap scale.
func (s BitmapScale) String() string {
	switch s {
	case BitmapNormal:
		return "NORMAL"
	case BitmapDoubleWidth:
		return "DOUBLE_WIDTH"
	case BitmapDoubleHeight:
		return "DOUBLE_HEIGHT"
	case BitmapQuadruple:
		return "FOUR_TIMES"
	default:
		return fmt.Sprintf("BitmapScale(%d)", byte(s))
	}
}

// StatusType is the status category requested by TransmitStatus.
type StatusType byte

const (
	StatusPrinter         StatusType = 1
	StatusOffline         StatusType = 2
	StatusError           StatusType = 3
	StatusPaperRollSensor StatusType = 4
)

// String returns the name of the status category.
func (s StatusType) String() string {
	switch s {
	case StatusPrinter:
		return "PRINTER_STATUS"
	case StatusOffline:
		return "OFFLINE_STATUS"
	case StatusError:
		return "ERROR_STATUS"
	case StatusPaperRollSensor:
		return "PAPER_ROLL_SENSOR_STATUS"
	default:
		return fmt.Sprintf("StatusType(%d)", byte(s))
	}
}
