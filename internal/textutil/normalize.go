package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PunctuationPolicy selects which characters normalization removes.
type PunctuationPolicy string

const (
	// PunctuationUnicode keeps letters, numbers, underscore and whitespace in
	// any script and removes everything else.
	PunctuationUnicode PunctuationPolicy = "unicode"
	// PunctuationASCII removes only ASCII punctuation; non-ASCII punctuation
	// such as "。" survives and may stay attached to tokens.
	PunctuationASCII PunctuationPolicy = "ascii"
)

const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// NormalizerOptions configures a Normalizer.
type NormalizerOptions struct {
	Punctuation PunctuationPolicy
	Segmenter   Segmenter
}

// Normalizer converts decoded text into a space-delimited token string.
type Normalizer struct {
	punctuation PunctuationPolicy
	segmenter   Segmenter
}

// NewNormalizer returns a Normalizer; a nil segmenter splits on whitespace only.
func NewNormalizer(opts NormalizerOptions) *Normalizer {
	n := &Normalizer{punctuation: opts.Punctuation, segmenter: opts.Segmenter}
	if n.punctuation == "" {
		n.punctuation = PunctuationUnicode
	}
	if n.segmenter == nil {
		n.segmenter = WhitespaceSegmenter{}
	}
	return n
}

// Normalize lowercases text, strips punctuation, segments each
// whitespace-delimited field and joins the tokens with single spaces.
// Empty or whitespace-only input yields "".
func (n *Normalizer) Normalize(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	// Casers are stateful and must not be shared across goroutines.
	lowered := cases.Lower(language.Und).String(text)
	cleaned := strings.Map(n.keep, lowered)

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		for _, segment := range n.segmenter.Segment(field) {
			tokens = append(tokens, strings.Fields(segment)...)
		}
	}
	return strings.Join(tokens, " ")
}

// keep is a strings.Map callback; a negative result drops the rune.
func (n *Normalizer) keep(r rune) rune {
	if n.punctuation == PunctuationASCII {
		if r < unicode.MaxASCII && strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}
	if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || unicode.IsSpace(r) {
		return r
	}
	return -1
}
