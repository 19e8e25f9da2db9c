package document

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
)

// Detection is the outcome of sniffing a sample.
type Detection struct {
	Charset    string
	Confidence int
}

// Detect guesses the encoding of sample. Byte-order marks win, then UTF-8
// validity, then the ICU-style statistical detector.
func Detect(sample []byte) (Detection, error) {
	switch {
	case bytes.HasPrefix(sample, bomUTF32LE):
		return Detection{Charset: "utf-32le", Confidence: 100}, nil
	case bytes.HasPrefix(sample, bomUTF32BE):
		return Detection{Charset: "utf-32be", Confidence: 100}, nil
	case bytes.HasPrefix(sample, bomUTF8):
		return Detection{Charset: "utf-8", Confidence: 100}, nil
	case bytes.HasPrefix(sample, bomUTF16LE):
		return Detection{Charset: "utf-16le", Confidence: 100}, nil
	case bytes.HasPrefix(sample, bomUTF16BE):
		return Detection{Charset: "utf-16be", Confidence: 100}, nil
	}
	if validUTF8Prefix(sample) {
		return Detection{Charset: "utf-8", Confidence: 100}, nil
	}

	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil {
		return Detection{}, fmt.Errorf("detect charset: %w", err)
	}
	return Detection{Charset: strings.ToLower(result.Charset), Confidence: result.Confidence}, nil
}

// validUTF8Prefix reports whether sample is UTF-8, tolerating one rune cut at
// the end of the sample window.
func validUTF8Prefix(sample []byte) bool {
	if utf8.Valid(sample) {
		return true
	}
	for cut := 1; cut < utf8.UTFMax && cut < len(sample); cut++ {
		head := sample[:len(sample)-cut]
		if !utf8.Valid(head) {
			continue
		}
		tail := sample[len(sample)-cut:]
		return !utf8.FullRune(tail) && utf8.RuneStart(tail[0])
	}
	return false
}

// charsetAliases maps detector names that the WHATWG index spells differently.
var charsetAliases = map[string]string{
	"gb-18030": "gb18030",
}

// Lookup resolves a charset label to an encoding. UTF-8 returns a nil
// encoding because it is validated rather than transcoded.
func Lookup(name string) (encoding.Encoding, string, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := charsetAliases[label]; ok {
		label = alias
	}
	switch label {
	case "utf-8", "utf8", "ascii", "us-ascii":
		return nil, "utf-8", nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), label, nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), label, nil
	case "utf-32le":
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), label, nil
	case "utf-32be":
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), label, nil
	}

	if enc, err := htmlindex.Get(label); err == nil {
		canonical, _ := htmlindex.Name(enc)
		if canonical == "utf-8" {
			return nil, "utf-8", nil
		}
		return enc, canonical, nil
	}
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, "", fmt.Errorf("unsupported charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, "", fmt.Errorf("unsupported charset %q: %w", name, errors.ErrUnsupported)
	}
	return enc, label, nil
}
