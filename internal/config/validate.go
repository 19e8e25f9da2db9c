package config

import (
	"errors"
	"fmt"

	"plagcheck/internal/document"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDecoder(); err != nil {
		return err
	}
	if err := c.validateNormalizer(); err != nil {
		return err
	}
	if err := c.validateVectorizer(); err != nil {
		return err
	}
	if err := c.validateScorer(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDecoder() error {
	switch c.Decoder.EncodingPolicy {
	case EncodingPolicyDetect:
	case EncodingPolicyFixed:
		if _, _, err := document.Lookup(c.Decoder.FixedEncoding); err != nil {
			return fmt.Errorf("decoder.fixed_encoding: unsupported encoding %q", c.Decoder.FixedEncoding)
		}
	default:
		return fmt.Errorf("decoder.encoding_policy must be %q or %q, got %q", EncodingPolicyDetect, EncodingPolicyFixed, c.Decoder.EncodingPolicy)
	}
	if c.Decoder.SampleBytes < 0 {
		return errors.New("decoder.sample_bytes must be positive")
	}
	return nil
}

func (c *Config) validateNormalizer() error {
	switch c.Normalizer.Punctuation {
	case PunctuationUnicode, PunctuationASCII:
	default:
		return fmt.Errorf("normalizer.punctuation must be %q or %q, got %q", PunctuationUnicode, PunctuationASCII, c.Normalizer.Punctuation)
	}
	switch c.Normalizer.Segmenter {
	case SegmenterDictionary, SegmenterWhitespace:
	default:
		return fmt.Errorf("normalizer.segmenter must be %q or %q, got %q", SegmenterDictionary, SegmenterWhitespace, c.Normalizer.Segmenter)
	}
	return nil
}

func (c *Config) validateVectorizer() error {
	v := c.Vectorizer
	if v.NgramMin < 1 {
		return errors.New("vectorizer.ngram_min must be at least 1")
	}
	if v.NgramMax < v.NgramMin {
		return fmt.Errorf("vectorizer.ngram_max (%d) must be >= ngram_min (%d)", v.NgramMax, v.NgramMin)
	}
	if v.MinDocumentFrequency < 1 || v.MinDocumentFrequency > 2 {
		return errors.New("vectorizer.min_document_frequency must be 1 or 2")
	}
	if v.MinTokenRunes < 1 {
		return errors.New("vectorizer.min_token_runes must be at least 1")
	}
	return nil
}

func (c *Config) validateScorer() error {
	switch c.Scorer.EmptyInput {
	case EmptyInputZero, EmptyInputVectorize:
		return nil
	default:
		return fmt.Errorf("scorer.empty_input must be %q or %q, got %q", EmptyInputZero, EmptyInputVectorize, c.Scorer.EmptyInput)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
}
