package charset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupByNameAndAlias(t *testing.T) {
	tests := []struct {
		name string
		want *Encoding
	}{
		{"ascii", ASCII},
		{"US-ASCII", ASCII},
		{"Shift_JIS", ShiftJIS},
		{"shift-jis", ShiftJIS},
		{"SJIS", ShiftJIS},
		{"cp437", CP437},
		{"IBM437", CP437},
		{"GB2312", GBK},
		{" windows-1252 ", Windows1252},
		{"EUC_KR", EUCKR},
		{"ANSI_X3.4-1968", ASCII},
		{"us", ASCII},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Lookup(tc.name)
			require.NoError(t, err)
			assert.Same(t, tc.want, got)
		})
	}
}

func TestLookupFallsBackToIANA(t *testing.T) {
	e, err := Lookup("ISO-8859-5")
	require.NoError(t, err)
	assert.Contains(t, e.Name, "8859-5")
	assert.False(t, e.IsBase())

	out, err := e.Encode("Привет")
	require.NoError(t, err)
	assert.Len(t, out, 6)
}

func TestLookupUnsupported(t *testing.T) {
	_, err := Lookup("klingon-8")
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Lookup error = %v, want ErrUnsupported", err)
	}
	_, err = Encode("hello", "klingon-8")
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Encode error = %v, want ErrUnsupported", err)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		encoding string
		text     string
	}{
		{"ascii", "Total: $12.50"},
		{"cp437", "Café ½ price"},
		{"cp858", "5 €"},
		{"iso-8859-15", "Größe €"},
		{"windows-1251", "Итого"},
		{"shift_jis", "合計 １２０円"},
		{"euc-jp", "領収書"},
		{"gb18030", "收据 总计"},
		{"big5", "收據"},
		{"euc-kr", "영수증"},
		{"utf-8", "naïve ☕"},
	}
	for _, tc := range tests {
		t.Run(tc.encoding, func(t *testing.T) {
			data, err := Encode(tc.text, tc.encoding)
			require.NoError(t, err)
			got, err := Decode(data, tc.encoding)
			require.NoError(t, err)
			assert.Equal(t, tc.text, got)
		})
	}
}

func TestASCIIRejectsHighRunes(t *testing.T) {
	_, err := ASCII.Encode("naïve")
	if !errors.Is(err, ErrUnencodable) {
		t.Fatalf("Encode error = %v, want ErrUnencodable", err)
	}
	_, err = ASCII.Decode([]byte{'a', 0x80})
	if !errors.Is(err, ErrUnencodable) {
		t.Fatalf("Decode error = %v, want ErrUnencodable", err)
	}
}

func TestSingleByteRejectsUnmappedRunes(t *testing.T) {
	_, err := CP437.Encode("合計")
	if !errors.Is(err, ErrUnencodable) {
		t.Fatalf("Encode error = %v, want ErrUnencodable", err)
	}
}

func TestShiftJISBytes(t *testing.T) {
	out, err := ShiftJIS.Encode("日本")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x93, 0xfa, 0x96, 0x7b}, out)
}

func TestIsBase(t *testing.T) {
	if !ASCII.IsBase() {
		t.Error("ASCII should be the base encoding")
	}
	for _, e := range []*Encoding{CP437, ShiftJIS, UTF8} {
		if e.IsBase() {
			t.Errorf("%s should not be the base encoding", e)
		}
	}
}
