package textutil

import (
	"testing"
)

func newChineseNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	seg, err := NewDictionarySegmenter("", true)
	if err != nil {
		t.Fatalf("NewDictionarySegmenter: %v", err)
	}
	return NewNormalizer(NormalizerOptions{Punctuation: PunctuationUnicode, Segmenter: seg})
}

func TestNormalizeChineseSentence(t *testing.T) {
	n := newChineseNormalizer(t)

	got := n.Normalize("这是一个测试文本。")
	if want := "这是 一个 测试 文本"; got != want {
		t.Fatalf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	n := newChineseNormalizer(t)
	for _, input := range []string{"", " ", "\t\n  \r", "　"} {
		if got := n.Normalize(input); got != "" {
			t.Errorf("Normalize(%q) = %q, want empty", input, got)
		}
	}
}

func TestNormalizePunctuationOnly(t *testing.T) {
	n := NewNormalizer(NormalizerOptions{})
	if got := n.Normalize("!!! ... ，。？"); got != "" {
		t.Fatalf("Normalize() = %q, want empty", got)
	}
}

func TestNormalizeWhitespaceSegmenter(t *testing.T) {
	tests := []struct {
		name        string
		punctuation PunctuationPolicy
		input       string
		want        string
	}{
		{
			name:  "lowercases and strips",
			input: "Copy, copy!  THE Quick-brown fox.",
			want:  "copy copy the quickbrown fox",
		},
		{
			name:  "keeps underscore and digits",
			input: "snake_case v2 100%",
			want:  "snake_case v2 100",
		},
		{
			name:  "collapses whitespace",
			input: "a\t\tb\n\nc",
			want:  "a b c",
		},
		{
			name:  "unicode policy strips cjk punctuation",
			input: "你好，世界。",
			want:  "你好世界",
		},
		{
			name:        "ascii policy keeps cjk punctuation",
			punctuation: PunctuationASCII,
			input:       "你好，世界。Hello, World!",
			want:        "你好，世界。hello world",
		},
		{
			name:        "ascii policy strips underscore",
			punctuation: PunctuationASCII,
			input:       "snake_case",
			want:        "snakecase",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNormalizer(NormalizerOptions{Punctuation: tt.punctuation})
			if got := n.Normalize(tt.input); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := newChineseNormalizer(t)
	inputs := []string{
		"这是一个测试文本。",
		"Hello, World! Copy copy.",
		"今天天气很好",
		"  MIXED 文本 with   spaces\n",
	}
	for _, input := range inputs {
		once := n.Normalize(input)
		twice := n.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestNormalizeSingleSpaces(t *testing.T) {
	n := newChineseNormalizer(t)
	got := n.Normalize("The cat 今天天气很好 sat.")
	if got == "" {
		t.Fatal("expected tokens")
	}
	for i := 1; i < len(got); i++ {
		if got[i] == ' ' && got[i-1] == ' ' {
			t.Fatalf("double space in %q", got)
		}
	}
	if got[0] == ' ' || got[len(got)-1] == ' ' {
		t.Fatalf("untrimmed output %q", got)
	}
}

func TestWhitespaceSegmenter(t *testing.T) {
	got := WhitespaceSegmenter{}.Segment(" a  b ")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Segment() = %q", got)
	}
}
