package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeDecoder()
	if err := c.normalizeNormalizer(); err != nil {
		return err
	}
	c.Scorer.EmptyInput = lowerTrim(c.Scorer.EmptyInput)
	if c.Scorer.EmptyInput == "" {
		c.Scorer.EmptyInput = defaultEmptyInput
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeDecoder() {
	c.Decoder.EncodingPolicy = lowerTrim(c.Decoder.EncodingPolicy)
	if c.Decoder.EncodingPolicy == "" {
		c.Decoder.EncodingPolicy = defaultEncodingPolicy
	}
	c.Decoder.FixedEncoding = lowerTrim(c.Decoder.FixedEncoding)
	if c.Decoder.FixedEncoding == "" {
		c.Decoder.FixedEncoding = defaultFixedEncoding
	}
	if c.Decoder.SampleBytes == 0 {
		c.Decoder.SampleBytes = defaultSampleBytes
	}
}

func (c *Config) normalizeNormalizer() error {
	c.Normalizer.Punctuation = lowerTrim(c.Normalizer.Punctuation)
	if c.Normalizer.Punctuation == "" {
		c.Normalizer.Punctuation = defaultPunctuation
	}
	c.Normalizer.Segmenter = lowerTrim(c.Normalizer.Segmenter)
	if c.Normalizer.Segmenter == "" {
		c.Normalizer.Segmenter = defaultSegmenter
	}
	if strings.TrimSpace(c.Normalizer.DictionaryPath) == "" {
		c.Normalizer.DictionaryPath = ""
		return nil
	}
	var err error
	if c.Normalizer.DictionaryPath, err = expandPath(strings.TrimSpace(c.Normalizer.DictionaryPath)); err != nil {
		return fmt.Errorf("normalizer.dictionary_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = lowerTrim(c.Logging.Format)
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = lowerTrim(c.Logging.Level)
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) == "" {
		c.Logging.File = ""
		return nil
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

func lowerTrim(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
