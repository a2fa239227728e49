package escposgo

import (
	"errors"
	"fmt"

	"github.com/ericlevine/escposgo/charset"
)

// PrintText appends text transcoded into the Encoder's encoding.
func (e *Encoder) PrintText(text string) *Encoder {
	return e.printText("print text", text, e.encoding)
}

// PrintTextEncoded appends text transcoded into the named encoding instead
// of the Encoder's own. It does not change the printer's character mode.
func (e *Encoder) PrintTextEncoded(text, encoding string) *Encoder {
	const op = "print text"
	if !e.ok(op) {
		return e
	}
	enc, err := lookupEncoding(encoding)
	if err != nil {
		return e.fail(op, err)
	}
	return e.printText(op, text, enc)
}

// PrintTextLine appends text followed by a line break.
func (e *Encoder) PrintTextLine(text string) *Encoder {
	return e.PrintText(text).BreakLine(0)
}

func (e *Encoder) printText(op, text string, enc *charset.Encoding) *Encoder {
	if !e.ok(op) {
		return e
	}
	data, err := enc.Encode(text)
	if err != nil {
		if errors.Is(err, charset.ErrUnencodable) {
			err = fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		return e.fail(op, err)
	}
	return e.emit(op, data)
}
