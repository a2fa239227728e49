// Package escposgo encodes receipt printer jobs into the ESC/POS command
// protocol.
//
// An Encoder collects commands in call order:
//
//	enc, err := escposgo.NewEncoder(true, "cp437")
//	if err != nil {
//		return err
//	}
//	enc.StartAlign(escposgo.AlignCenter).
//		StartBold().PrintTextLine("RECEIPT").EndBold().
//		ResetAlign().
//		PrintBarcode("12345678", escposgo.BarcodeEAN8, nil).
//		PaperCut()
//	job, err := enc.Build()
//
// Operations never validate that start/end pairs are balanced. An operation
// whose arguments the protocol cannot carry appends nothing and records an
// error; every later operation is then skipped and Build returns that error.
//
// An Encoder is not safe for concurrent use.
package escposgo

import (
	"fmt"

	"github.com/ericlevine/escposgo/charset"
	"github.com/ericlevine/escposgo/command"
)

// Encoder accumulates ESC/POS commands for a single print job.
type Encoder struct {
	buf         []byte
	encoding    *charset.Encoding
	useDefaults bool
	err         error
	built       bool
}

// NewEncoder creates an Encoder whose text is written in textEncoding. An
// empty name selects the printer's base 7-bit ASCII encoding.
//
// When useDefaults is set the job starts by resetting the character size and
// code table, and Build ends it with a line feed and a printer reset. Any
// encoding other than ASCII switches the printer into double-byte mode at the
// start of the job. The switch is never undone.
func NewEncoder(useDefaults bool, textEncoding string) (*Encoder, error) {
	enc, err := lookupEncoding(textEncoding)
	if err != nil {
		return nil, err
	}
	e := &Encoder{encoding: enc, useDefaults: useDefaults}
	e.start()
	return e, nil
}

func lookupEncoding(name string) (*charset.Encoding, error) {
	if name == "" {
		return charset.ASCII, nil
	}
	enc, err := charset.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
	return enc, nil
}

func (e *Encoder) start() {
	if e.useDefaults {
		e.ResetCharacterSize()
		e.ResetCharacterCodeTable()
	}
	if !e.encoding.IsBase() {
		e.EnterDoubleByteMode()
	}
}

// ok reports whether op may append. Once built, any operation fails with
// ErrBuilt.
func (e *Encoder) ok(op string) bool {
	if e.err == nil && e.built {
		e.fail(op, ErrBuilt)
	}
	return e.err == nil
}

// fail records the first error. Later failures are dropped.
func (e *Encoder) fail(op string, err error) *Encoder {
	if e.err == nil {
		e.err = fmt.Errorf("%s: %w", op, err)
		Logger().Debug("escposgo: operation failed", "op", op, "err", err)
	}
	return e
}

func (e *Encoder) emit(op string, cmds ...[]byte) *Encoder {
	if !e.ok(op) {
		return e
	}
	for _, c := range cmds {
		e.buf = append(e.buf, c...)
	}
	return e
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}

// Encoding returns the encoding used by PrintText.
func (e *Encoder) Encoding() *charset.Encoding {
	return e.encoding
}

// Err returns the first error recorded by an operation, if any.
func (e *Encoder) Err() error {
	return e.err
}

// Len returns the number of bytes collected so far.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// Bytes returns a copy of the bytes collected so far, without the closing
// commands Build appends.
func (e *Encoder) Bytes() []byte {
	out := make([]byte, len(e.buf))
	copy(out, e.buf)
	return out
}

// Write appends p verbatim. It is meant for bytes that are already in
// printer form; text needing transcoding goes through PrintText.
func (e *Encoder) Write(p []byte) (int, error) {
	if !e.ok("write") {
		return 0, e.err
	}
	e.buf = append(e.buf, p...)
	return len(p), nil
}

// Build appends the closing commands and returns the finished job. The
// Encoder accepts no further operations until Reset.
func (e *Encoder) Build() ([]byte, error) {
	if !e.ok("build") {
		return nil, e.err
	}
	if e.useDefaults {
		e.buf = append(e.buf, command.LineFeed()...)
		e.buf = append(e.buf, command.Initialize()...)
	}
	e.built = true
	out := make([]byte, len(e.buf))
	copy(out, e.buf)
	Logger().Debug("escposgo: job built", "bytes", len(out), "encoding", e.encoding.Name)
	return out, nil
}

// Reset discards the collected bytes and any recorded error, then emits the
// same start-of-job commands NewEncoder did.
func (e *Encoder) Reset() *Encoder {
	e.buf = e.buf[:0]
	e.err = nil
	e.built = false
	e.start()
	return e
}

// ResetCharacterSize restores normal width and height.
func (e *Encoder) ResetCharacterSize() *Encoder {
	return e.emit("reset character size", command.SelectCharacterSize(0))
}

// SetCharacterSize scales characters by width and height, each in 0..7
// where 0 is normal size.
func (e *Encoder) SetCharacterSize(width, height int) *Encoder {
	const op = "set character size"
	if !e.ok(op) {
		return e
	}
	if width < 0 || width > 7 || height < 0 || height > 7 {
		return e.fail(op, invalid("size %dx%d outside 0..7", width, height))
	}
	return e.emit(op, command.SelectCharacterSize(byte(width<<4|height)))
}

// ResetCharacterCodeTable selects code table 0.
func (e *Encoder) ResetCharacterCodeTable() *Encoder {
	return e.emit("reset character code table", command.SelectCharacterCodeTable(0))
}

// EnterDoubleByteMode switches the printer to its double-byte character set.
func (e *Encoder) EnterDoubleByteMode() *Encoder {
	return e.emit("enter double-byte mode", command.EnterKanjiMode())
}

// StartCompressedCharacter selects the compressed font.
func (e *Encoder) StartCompressedCharacter() *Encoder {
	return e.emit("start compressed character", command.SelectCharacterFont(1))
}

// EndCompressedCharacter restores the standard font.
func (e *Encoder) EndCompressedCharacter() *Encoder {
	return e.emit("end compressed character", command.SelectCharacterFont(0))
}

// StartBold turns emphasis on.
func (e *Encoder) StartBold() *Encoder {
	return e.emit("start bold", command.Emphasize(1))
}

// EndBold turns emphasis off.
func (e *Encoder) EndBold() *Encoder {
	return e.emit("end bold", command.Emphasize(0))
}

// StartUnderline turns underline on with the given thickness.
func (e *Encoder) StartUnderline(mode Underline) *Encoder {
	return e.emit("start underline", command.Underline(byte(mode)))
}

// EndUnderline turns underline off.
func (e *Encoder) EndUnderline() *Encoder {
	return e.emit("end underline", command.Underline(underlineOff))
}

// StartAlign justifies following lines.
func (e *Encoder) StartAlign(a Alignment) *Encoder {
	return e.emit("start align", command.Justify(byte(a)))
}

// ResetAlign justifies following lines to the left.
func (e *Encoder) ResetAlign() *Encoder {
	return e.StartAlign(AlignLeft)
}

// StartWhiteMode prints white on black.
func (e *Encoder) StartWhiteMode() *Encoder {
	return e.emit("start white mode", command.WhiteBlackReverse(1))
}

// EndWhiteMode prints black on white.
func (e *Encoder) EndWhiteMode() *Encoder {
	return e.emit("end white mode", command.WhiteBlackReverse(0))
}

// StartReverseMode prints upside down.
func (e *Encoder) StartReverseMode() *Encoder {
	return e.emit("start reverse mode", command.UpsideDown(1))
}

// EndReverseMode prints the right way up.
func (e *Encoder) EndReverseMode() *Encoder {
	return e.emit("end reverse mode", command.UpsideDown(0))
}

// LineFeed prints the buffer and feeds one line.
func (e *Encoder) LineFeed() *Encoder {
	return e.emit("line feed", command.LineFeed())
}

// BreakLine prints the buffer and feeds lines more lines, 0..255.
func (e *Encoder) BreakLine(lines int) *Encoder {
	const op = "break line"
	if !e.ok(op) {
		return e
	}
	if lines < 0 || lines > 255 {
		return e.fail(op, invalid("line count %d outside 0..255", lines))
	}
	return e.emit(op, command.PrintAndFeedLines(byte(lines)))
}

// TransmitStatus asks the printer to send back one status byte. The reply
// arrives on the transport and is not read here.
func (e *Encoder) TransmitStatus(s StatusType) *Encoder {
	const op = "transmit status"
	if !e.ok(op) {
		return e
	}
	if s < StatusPrinter || s > StatusPaperRollSensor {
		return e.fail(op, invalid("status type %d", byte(s)))
	}
	return e.emit(op, command.TransmitStatus(byte(s)))
}

// PaperCut cuts the paper, leaving one point uncut.
func (e *Encoder) PaperCut() *Encoder {
	return e.emit("paper cut", command.Cut(1))
}

// PlayBeep sounds the buzzer twice.
func (e *Encoder) PlayBeep() *Encoder {
	return e.emit("play beep", command.Beep(2, 2))
}
