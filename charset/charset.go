// Package charset maps text encoding names to the byte encodings a receipt
// printer understands.
package charset

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

var (
	// ErrUnsupported indicates an encoding name with no transcoding table.
	ErrUnsupported = errors.New("charset: unsupported encoding")

	// ErrUnencodable indicates text containing characters the target
	// encoding cannot represent.
	ErrUnencodable = errors.New("charset: character not representable")
)

// Encoding is a named character encoding.
type Encoding struct {
	Name    string
	Aliases []string

	enc encoding.Encoding // nil means 7-bit ASCII
}

// pre-defined encodings
var (
	ASCII       = &Encoding{"ascii", []string{"us-ascii", "iso646-us"}, nil}
	UTF8        = &Encoding{"utf-8", []string{"utf8"}, unicode.UTF8}
	CP437       = &Encoding{"cp437", []string{"ibm437", "pc437"}, charmap.CodePage437}
	CP850       = &Encoding{"cp850", []string{"ibm850"}, charmap.CodePage850}
	CP852       = &Encoding{"cp852", []string{"ibm852"}, charmap.CodePage852}
	CP858       = &Encoding{"cp858", []string{"ibm00858"}, charmap.CodePage858}
	CP866       = &Encoding{"cp866", []string{"ibm866"}, charmap.CodePage866}
	ISO8859_1   = &Encoding{"iso-8859-1", []string{"latin1"}, charmap.ISO8859_1}
	ISO8859_2   = &Encoding{"iso-8859-2", []string{"latin2"}, charmap.ISO8859_2}
	ISO8859_15  = &Encoding{"iso-8859-15", []string{"latin9"}, charmap.ISO8859_15}
	Windows1250 = &Encoding{"windows-1250", []string{"cp1250"}, charmap.Windows1250}
	Windows1251 = &Encoding{"windows-1251", []string{"cp1251"}, charmap.Windows1251}
	Windows1252 = &Encoding{"windows-1252", []string{"cp1252"}, charmap.Windows1252}
	KOI8R       = &Encoding{"koi8-r", nil, charmap.KOI8R}
	ShiftJIS    = &Encoding{"shift_jis", []string{"sjis", "cp932", "windows-31j"}, japanese.ShiftJIS}
	EUCJP       = &Encoding{"euc-jp", nil, japanese.EUCJP}
	GB18030     = &Encoding{"gb18030", nil, simplifiedchinese.GB18030}
	GBK         = &Encoding{"gbk", []string{"gb2312", "cp936", "euc-cn"}, simplifiedchinese.GBK}
	Big5        = &Encoding{"big5", []string{"cp950"}, traditionalchinese.Big5}
	EUCKR       = &Encoding{"euc-kr", []string{"cp949", "ks_c_5601-1987"}, korean.EUCKR}
)

var nameToEncoding map[string]*Encoding

func init() {
	nameToEncoding = make(map[string]*Encoding)

	all := []*Encoding{
		ASCII, UTF8, CP437, CP850, CP852, CP858, CP866,
		ISO8859_1, ISO8859_2, ISO8859_15,
		Windows1250, Windows1251, Windows1252, KOI8R,
		ShiftJIS, EUCJP, GB18030, GBK, Big5, EUCKR,
	}
	for _, e := range all {
		nameToEncoding[normalize(e.Name)] = e
		for _, alias := range e.Aliases {
			nameToEncoding[normalize(alias)] = e
		}
	}
}

// normalize folds case and drops the separators that vary between spellings
// of the same name ("Shift_JIS", "shift-jis", "SHIFTJIS").
func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ', '.':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}

// Lookup returns the encoding registered under name. Names missing from the
// package table are resolved through the IANA registry.
func Lookup(name string) (*Encoding, error) {
	if e, ok := nameToEncoding[normalize(name)]; ok {
		return e, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		canonical = name
	}
	if e, ok := nameToEncoding[normalize(canonical)]; ok {
		return e, nil
	}
	return &Encoding{Name: strings.ToLower(canonical), enc: enc}, nil
}

// IsBase reports whether e is the printer's base 7-bit encoding.
func (e *Encoding) IsBase() bool {
	return e == ASCII
}

// String returns the canonical name of the encoding.
func (e *Encoding) String() string {
	return e.Name
}

// Encode converts UTF-8 text into the encoding's byte form.
func (e *Encoding) Encode(text string) ([]byte, error) {
	if e.enc == nil {
		for i, r := range text {
			if r >= utf8.RuneSelf {
				return nil, fmt.Errorf("%w: %q at byte %d in %s", ErrUnencodable, r, i, e.Name)
			}
		}
		return []byte(text), nil
	}
	out, err := e.enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnencodable, e.Name, err)
	}
	return out, nil
}

// Decode converts bytes in the encoding back to UTF-8 text.
func (e *Encoding) Decode(data []byte) (string, error) {
	if e.enc == nil {
		for i, b := range data {
			if b >= utf8.RuneSelf {
				return "", fmt.Errorf("%w: byte 0x%02x at %d in %s", ErrUnencodable, b, i, e.Name)
			}
		}
		return string(data), nil
	}
	out, err := e.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnencodable, e.Name, err)
	}
	return string(out), nil
}

// Encode is shorthand for looking up name and encoding text with it.
func Encode(text, name string) ([]byte, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return e.Encode(text)
}

// Decode is shorthand for looking up name and decoding data with it.
func Decode(data []byte, name string) (string, error) {
	e, err := Lookup(name)
	if err != nil {
		return "", err
	}
	return e.Decode(data)
}
