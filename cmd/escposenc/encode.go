package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"

	escposgo "github.com/ericlevine/escposgo"
	"github.com/ericlevine/escposgo/raster"
)

var barcodeSystems = map[string]escposgo.BarcodeSystem{
	"upca":    escposgo.BarcodeUPCA,
	"upce":    escposgo.BarcodeUPCE,
	"ean13":   escposgo.BarcodeEAN13,
	"ean8":    escposgo.BarcodeEAN8,
	"code39":  escposgo.BarcodeCode39,
	"itf":     escposgo.BarcodeITF,
	"codabar": escposgo.BarcodeCodabar,
	"code93":  escposgo.BarcodeCode93,
	"code128": escposgo.BarcodeCode128,
}

var alignments = map[string]escposgo.Alignment{
	"left":   escposgo.AlignLeft,
	"center": escposgo.AlignCenter,
	"centre": escposgo.AlignCenter,
	"right":  escposgo.AlignRight,
}

var labelPositions = map[string]escposgo.LabelPosition{
	"none":  escposgo.LabelNone,
	"above": escposgo.LabelAbove,
	"below": escposgo.LabelBelow,
	"both":  escposgo.LabelAboveBelow,
}

var qrLevels = map[string]escposgo.QRErrorCorrection{
	"l": escposgo.QRLevelL,
	"m": escposgo.QRLevelM,
	"q": escposgo.QRLevelQ,
	"h": escposgo.QRLevelH,
}

var statusTypes = map[string]escposgo.StatusType{
	"printer": escposgo.StatusPrinter,
	"offline": escposgo.StatusOffline,
	"error":   escposgo.StatusError,
	"paper":   escposgo.StatusPaperRollSensor,
}

// key normalizes a step value for map lookups.
func key(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "")
}

// encodeJob runs every step of j through a fresh encoder.
func encodeJob(j job) ([]byte, error) {
	enc, err := escposgo.NewEncoder(j.Printer.Defaults, j.Printer.Encoding)
	if err != nil {
		return nil, err
	}
	for i, s := range j.Steps {
		if err := applyStep(enc, s, j); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, s.Op, err)
		}
		if err := enc.Err(); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, s.Op, err)
		}
	}
	if j.Printer.Beep {
		enc.PlayBeep()
	}
	if j.Printer.Cut {
		enc.PaperCut()
	}
	return enc.Build()
}

func applyStep(enc *escposgo.Encoder, s step, j job) error {
	switch key(s.Op) {
	case "text":
		if s.Encoding != "" {
			enc.PrintTextEncoded(s.Text, s.Encoding)
		} else {
			enc.PrintText(s.Text)
		}
	case "line":
		enc.PrintTextLine(s.Text)
	case "feed":
		if s.Lines == 0 {
			enc.LineFeed()
		} else {
			enc.BreakLine(s.Lines)
		}
	case "align":
		a, ok := alignments[key(s.Align)]
		if !ok {
			return fmt.Errorf("unknown alignment %q", s.Align)
		}
		enc.StartAlign(a)
	case "bold":
		toggle(s, enc.StartBold, enc.EndBold)
	case "underline":
		if !s.enabled() {
			enc.EndUnderline()
			break
		}
		mode := escposgo.UnderlineOneDot
		if key(s.Style) == "thick" {
			mode = escposgo.UnderlineTwoDots
		}
		enc.StartUnderline(mode)
	case "compressed":
		toggle(s, enc.StartCompressedCharacter, enc.EndCompressedCharacter)
	case "white":
		toggle(s, enc.StartWhiteMode, enc.EndWhiteMode)
	case "reverse":
		toggle(s, enc.StartReverseMode, enc.EndReverseMode)
	case "size":
		if s.Width == 0 && s.Height == 0 {
			enc.ResetCharacterSize()
		} else {
			enc.SetCharacterSize(s.Width, s.Height)
		}
	case "barcode":
		system, ok := barcodeSystems[key(s.System)]
		if !ok {
			return fmt.Errorf("unknown barcode system %q", s.System)
		}
		opts := &escposgo.BarcodeOptions{
			Width:       escposgo.BarcodeWidth(s.Width),
			Height:      s.Height,
			LeftSpacing: s.Spacing,
		}
		if s.Label != "" {
			pos, ok := labelPositions[key(s.Label)]
			if !ok {
				return fmt.Errorf("unknown label position %q", s.Label)
			}
			opts.LabelPosition = pos
		}
		if key(s.Font) == "b" {
			opts.LabelFont = escposgo.LabelFontB
		}
		enc.PrintBarcode(s.Text, system, opts)
	case "qr":
		opts := &escposgo.QROptions{ModuleSize: s.ModuleSize}
		if s.Level != "" {
			level, ok := qrLevels[key(s.Level)]
			if !ok {
				return fmt.Errorf("unknown QR level %q", s.Level)
			}
			opts.ErrorCorrection = level
		}
		if s.Model != 0 {
			opts.Model = escposgo.QRModel('0' + s.Model)
		}
		enc.PrintQRCode(s.Text, opts)
	case "image":
		img, err := loadImage(resolvePath(j.dir, s.Path))
		if err != nil {
			return err
		}
		enc.PrintImage(raster.Fit(img, j.Printer.MaxDots))
	case "status":
		st, ok := statusTypes[key(s.Status)]
		if !ok {
			return fmt.Errorf("unknown status type %q", s.Status)
		}
		enc.TransmitStatus(st)
	case "raw":
		data, err := decodeHex(s.Hex)
		if err != nil {
			return fmt.Errorf("decode hex: %w", err)
		}
		if _, err := enc.Write(data); err != nil {
			return err
		}
	case "cut":
		enc.PaperCut()
	case "beep":
		enc.PlayBeep()
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
	return nil
}

func toggle(s step, start, end func() *escposgo.Encoder) {
	if s.enabled() {
		start()
	} else {
		end()
	}
}

func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}
