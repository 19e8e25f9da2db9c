package textutil

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-ego/gse"
)

// Segmenter splits a run of text without whitespace into word tokens.
type Segmenter interface {
	Segment(text string) []string
}

// WhitespaceSegmenter treats every whitespace-delimited field as one token.
type WhitespaceSegmenter struct{}

func (WhitespaceSegmenter) Segment(text string) []string {
	return strings.Fields(text)
}

// DictionarySegmenter cuts text into the most probable words using a word
// frequency dictionary, with an HMM pass for words the dictionary lacks.
type DictionarySegmenter struct {
	seg *gse.Segmenter
	hmm bool
}

var embedded struct {
	once sync.Once
	seg  *gse.Segmenter
	err  error
}

// NewDictionarySegmenter loads the dictionary at path, or the embedded
// Chinese dictionary when path is empty. The embedded dictionary is loaded at
// most once per process.
func NewDictionarySegmenter(path string, hmm bool) (*DictionarySegmenter, error) {
	if path == "" {
		embedded.once.Do(func() {
			seg := &gse.Segmenter{SkipLog: true}
			if err := seg.LoadDictEmbed(); err != nil {
				embedded.err = fmt.Errorf("load embedded dictionary: %w", err)
				return
			}
			embedded.seg = seg
		})
		if embedded.err != nil {
			return nil, embedded.err
		}
		return &DictionarySegmenter{seg: embedded.seg, hmm: hmm}, nil
	}

	seg := &gse.Segmenter{SkipLog: true}
	if err := seg.LoadDict(path); err != nil {
		return nil, fmt.Errorf("load dictionary %s: %w", path, err)
	}
	return &DictionarySegmenter{seg: seg, hmm: hmm}, nil
}

func (s *DictionarySegmenter) Segment(text string) []string {
	return s.seg.Cut(text, s.hmm)
}
