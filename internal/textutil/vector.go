package textutil

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"
)

// NgramRange is the inclusive range of n-gram lengths to extract.
type NgramRange struct {
	Min int
	Max int
}

// VectorizerConfig controls feature extraction and filtering.
type VectorizerConfig struct {
	NgramRange NgramRange
	// MinDocumentFrequency is the number of documents a feature must appear
	// in to enter the vocabulary.
	MinDocumentFrequency int
	// MinTokenRunes drops shorter tokens before n-grams are built.
	MinTokenRunes int
}

// DefaultVectorizerConfig returns unigrams plus bigrams shared by both documents.
func DefaultVectorizerConfig() VectorizerConfig {
	return VectorizerConfig{
		NgramRange:           NgramRange{Min: 1, Max: 2},
		MinDocumentFrequency: 2,
		MinTokenRunes:        1,
	}
}

// Validate reports configuration values the vectorizer cannot use.
func (c VectorizerConfig) Validate() error {
	if c.NgramRange.Min < 1 {
		return fmt.Errorf("ngram range minimum must be at least 1, got %d", c.NgramRange.Min)
	}
	if c.NgramRange.Max < c.NgramRange.Min {
		return fmt.Errorf("ngram range (%d, %d) is inverted", c.NgramRange.Min, c.NgramRange.Max)
	}
	if c.MinDocumentFrequency < 1 {
		return fmt.Errorf("minimum document frequency must be at least 1, got %d", c.MinDocumentFrequency)
	}
	if c.MinTokenRunes < 1 {
		return fmt.Errorf("minimum token length must be at least 1, got %d", c.MinTokenRunes)
	}
	return nil
}

// TermVector is a sparse TF-IDF vector. Weights are only comparable with
// vectors fitted in the same FitTransform call.
type TermVector struct {
	weights map[string]float64
	norm    float64
}

func newTermVector(weights map[string]float64) *TermVector {
	var sum float64
	for _, feature := range sortedKeys(weights) {
		sum += weights[feature] * weights[feature]
	}
	return &TermVector{weights: weights, norm: math.Sqrt(sum)}
}

// Len returns the number of non-zero features.
func (v *TermVector) Len() int {
	if v == nil {
		return 0
	}
	return len(v.weights)
}

// Weight returns the weight of feature, or 0 when absent.
func (v *TermVector) Weight(feature string) float64 {
	if v == nil {
		return 0
	}
	return v.weights[feature]
}

// Norm returns the Euclidean length of the vector.
func (v *TermVector) Norm() float64 {
	if v == nil {
		return 0
	}
	return v.norm
}

// Features returns the non-zero features in lexical order.
func (v *TermVector) Features() []string {
	if v == nil {
		return nil
	}
	return sortedKeys(v.weights)
}

// IsZero reports whether the vector has no weight at all.
func (v *TermVector) IsZero() bool {
	return v == nil || v.norm == 0
}

// Vectorizer fits TF-IDF weights over a small corpus.
type Vectorizer struct {
	cfg VectorizerConfig
}

// NewVectorizer validates cfg and returns a Vectorizer.
func NewVectorizer(cfg VectorizerConfig) (*Vectorizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Vectorizer{cfg: cfg}, nil
}

// Vectorize fits the model over exactly the two token strings and returns
// their vectors. When the documents share no feature both vectors are zero.
func (v *Vectorizer) Vectorize(a, b string) (*TermVector, *TermVector) {
	vectors, _ := v.FitTransform(a, b)
	return vectors[0], vectors[1]
}

// FitTransform builds the vocabulary over docs and returns one vector per
// document together with the sorted vocabulary.
func (v *Vectorizer) FitTransform(docs ...string) ([]*TermVector, []string) {
	counts := make([]map[string]float64, len(docs))
	c := newCorpus()
	for i, doc := range docs {
		counts[i] = v.countFeatures(doc)
		c.add(counts[i])
	}

	idf := c.idf(v.cfg.MinDocumentFrequency)
	vectors := make([]*TermVector, len(docs))
	for i, tf := range counts {
		weights := make(map[string]float64, len(idf))
		for feature, count := range tf {
			if w, ok := idf[feature]; ok {
				weights[feature] = count * w
			}
		}
		vectors[i] = newTermVector(weights)
	}

	return vectors, sortedKeys(idf)
}

// countFeatures returns raw n-gram counts for one token string.
func (v *Vectorizer) countFeatures(doc string) map[string]float64 {
	tokens := v.tokens(doc)
	counts := make(map[string]float64)
	for n := v.cfg.NgramRange.Min; n <= v.cfg.NgramRange.Max; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			counts[strings.Join(tokens[i:i+n], " ")]++
		}
	}
	return counts
}

func (v *Vectorizer) tokens(doc string) []string {
	fields := strings.Fields(doc)
	if v.cfg.MinTokenRunes <= 1 {
		return fields
	}
	kept := fields[:0]
	for _, field := range fields {
		if utf8.RuneCountInString(field) >= v.cfg.MinTokenRunes {
			kept = append(kept, field)
		}
	}
	return kept
}

// corpus collects document frequency statistics for IDF computation.
type corpus struct {
	docCount int
	docFreq  map[string]int
}

func newCorpus() *corpus {
	return &corpus{docFreq: make(map[string]int)}
}

// add registers one document's distinct features.
func (c *corpus) add(counts map[string]float64) {
	c.docCount++
	for feature := range counts {
		c.docFreq[feature]++
	}
}

// idf returns smoothed inverse document frequencies, ln((N+1)/(df+1)) + 1,
// for every feature whose document frequency is at least minDF.
func (c *corpus) idf(minDF int) map[string]float64 {
	idf := make(map[string]float64, len(c.docFreq))
	n := float64(c.docCount)
	for feature, df := range c.docFreq {
		if df < minDF {
			continue
		}
		idf[feature] = math.Log((n+1)/(float64(df)+1)) + 1
	}
	return idf
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
