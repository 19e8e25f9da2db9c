package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
)

// Policy selects how the decoder chooses an encoding.
type Policy string

const (
	// PolicyDetect sniffs each file's leading sample.
	PolicyDetect Policy = "detect"
	// PolicyFixed decodes every file with one configured encoding.
	PolicyFixed Policy = "fixed"
)

// DefaultSampleSize is how many leading bytes detection inspects.
const DefaultSampleSize = 10000

// Options configures a Decoder.
type Options struct {
	Policy        Policy
	FixedEncoding string
	SampleSize    int
}

// Decoded is the text of one document and how it was obtained.
type Decoded struct {
	Text       string
	Encoding   string
	Confidence int
}

// Decoder converts raw document bytes into trimmed text.
type Decoder struct {
	policy     Policy
	sampleSize int
	fixed      encoding.Encoding
	fixedName  string
}

// NewDecoder validates opts and returns a Decoder.
func NewDecoder(opts Options) (*Decoder, error) {
	d := &Decoder{policy: opts.Policy, sampleSize: opts.SampleSize}
	if d.policy == "" {
		d.policy = PolicyDetect
	}
	if d.sampleSize <= 0 {
		d.sampleSize = DefaultSampleSize
	}
	switch d.policy {
	case PolicyDetect:
	case PolicyFixed:
		name := opts.FixedEncoding
		if strings.TrimSpace(name) == "" {
			name = "utf-8"
		}
		enc, canonical, err := Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("fixed encoding: %w", err)
		}
		d.fixed, d.fixedName = enc, canonical
	default:
		return nil, fmt.Errorf("unknown encoding policy %q", opts.Policy)
	}
	return d, nil
}

// DecodeFile reads path and decodes it. The returned error is always an *Error.
func (d *Decoder) DecodeFile(ctx context.Context, path string) (Decoded, error) {
	if err := ctx.Err(); err != nil {
		return Decoded{}, &Error{Kind: ErrRead, Path: path, Err: err}
	}
	info, err := os.Stat(path)
	if err != nil {
		return Decoded{}, readError(path, err)
	}
	if info.IsDir() {
		return Decoded{}, &Error{Kind: ErrRead, Path: path, Err: errors.New("is a directory")}
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Decoded{}, readError(path, err)
	}
	decoded, err := d.Decode(raw)
	if err != nil {
		return Decoded{}, decodeError(path, err)
	}
	return decoded, nil
}

// Decode converts raw bytes using the configured policy, drops a leading
// byte-order mark and trims surrounding whitespace.
func (d *Decoder) Decode(raw []byte) (Decoded, error) {
	enc, name, confidence := d.fixed, d.fixedName, 100
	if d.policy == PolicyDetect {
		sample := raw
		if len(sample) > d.sampleSize {
			sample = sample[:d.sampleSize]
		}
		detection, err := Detect(sample)
		if err != nil {
			return Decoded{}, err
		}
		enc, name, err = Lookup(detection.Charset)
		if err != nil {
			return Decoded{}, err
		}
		confidence = detection.Confidence
	}

	text, err := transcode(raw, enc, name)
	if err != nil {
		return Decoded{}, err
	}
	text = strings.TrimPrefix(text, "\ufeff")
	return Decoded{
		Text:       strings.TrimSpace(text),
		Encoding:   name,
		Confidence: confidence,
	}, nil
}

// transcode decodes raw strictly: any byte sequence the encoding cannot map is
// an error rather than a replacement character.
func transcode(raw []byte, enc encoding.Encoding, name string) (string, error) {
	if enc == nil {
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("invalid %s byte sequence at offset %d", name, invalidOffset(raw))
		}
		return string(raw), nil
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	if idx := bytes.IndexRune(out, utf8.RuneError); idx >= 0 {
		return "", fmt.Errorf("invalid %s byte sequence near decoded offset %d", name, idx)
	}
	return string(out), nil
}

func invalidOffset(raw []byte) int {
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRune(raw[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(raw)
}
