package config

const (
	EncodingPolicyDetect = "detect"
	EncodingPolicyFixed  = "fixed"

	PunctuationUnicode = "unicode"
	PunctuationASCII   = "ascii"

	SegmenterDictionary = "dictionary"
	SegmenterWhitespace = "whitespace"

	EmptyInputZero      = "zero"
	EmptyInputVectorize = "vectorize"
)

const (
	defaultEncodingPolicy       = EncodingPolicyDetect
	defaultFixedEncoding        = "utf-8"
	defaultSampleBytes          = 10000
	defaultPunctuation          = PunctuationUnicode
	defaultSegmenter            = SegmenterDictionary
	defaultNgramMin             = 1
	defaultNgramMax             = 2
	defaultMinDocumentFrequency = 2
	defaultMinTokenRunes        = 1
	defaultEmptyInput           = EmptyInputZero
	defaultLogFormat            = "console"
	defaultLogLevel             = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Decoder: Decoder{
			EncodingPolicy: defaultEncodingPolicy,
			FixedEncoding:  defaultFixedEncoding,
			SampleBytes:    defaultSampleBytes,
		},
		Normalizer: Normalizer{
			Punctuation: defaultPunctuation,
			Segmenter:   defaultSegmenter,
			HMM:         true,
		},
		Vectorizer: Vectorizer{
			NgramMin:             defaultNgramMin,
			NgramMax:             defaultNgramMax,
			MinDocumentFrequency: defaultMinDocumentFrequency,
			MinTokenRunes:        defaultMinTokenRunes,
		},
		Scorer: Scorer{
			EmptyInput: defaultEmptyInput,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
