package textutil

import (
	"math"
	"slices"
	"testing"
)

func mustVectorizer(t *testing.T, cfg VectorizerConfig) *Vectorizer {
	t.Helper()
	v, err := NewVectorizer(cfg)
	if err != nil {
		t.Fatalf("NewVectorizer: %v", err)
	}
	return v
}

func TestVectorizeKeepsOnlySharedFeatures(t *testing.T) {
	v := mustVectorizer(t, DefaultVectorizerConfig())

	vectors, vocabulary := v.FitTransform("a b c", "a b d")
	if want := []string{"a", "a b", "b"}; !slices.Equal(vocabulary, want) {
		t.Fatalf("vocabulary = %q, want %q", vocabulary, want)
	}
	for i, vec := range vectors {
		if vec.Len() != 3 {
			t.Fatalf("vector %d has %d features, want 3", i, vec.Len())
		}
		// Shared features in a two-document corpus have idf ln(3/3)+1 = 1.
		if w := vec.Weight("a b"); w != 1 {
			t.Fatalf("vector %d weight(a b) = %v, want 1", i, w)
		}
		if w := vec.Weight("c"); w != 0 {
			t.Fatalf("vector %d weight(c) = %v, want 0", i, w)
		}
	}
}

func TestVectorizeTermFrequencyWeights(t *testing.T) {
	v := mustVectorizer(t, DefaultVectorizerConfig())

	a, b := v.Vectorize("a a b", "a b b")
	if a.Weight("a") != 2 || a.Weight("b") != 1 || a.Weight("a b") != 1 {
		t.Fatalf("unexpected weights for a: %v", a.Features())
	}
	if a.Weight("a a") != 0 || b.Weight("b b") != 0 {
		t.Fatal("expected unshared bigrams to be dropped")
	}
	if math.Abs(a.Norm()-math.Sqrt(6)) > 1e-12 {
		t.Fatalf("norm = %v, want sqrt(6)", a.Norm())
	}

	got := CosineSimilarity(a, b)
	if want := 5.0 / 6.0; math.Abs(got-want) > 1e-12 {
		t.Fatalf("CosineSimilarity = %v, want %v", got, want)
	}
}

func TestVectorizeDisjointDocumentsAreZero(t *testing.T) {
	v := mustVectorizer(t, DefaultVectorizerConfig())

	vectors, vocabulary := v.FitTransform("apple banana cherry", "dog elephant frog")
	if len(vocabulary) != 0 {
		t.Fatalf("expected empty vocabulary, got %q", vocabulary)
	}
	if !vectors[0].IsZero() || !vectors[1].IsZero() {
		t.Fatal("expected zero vectors")
	}
	if got := CosineSimilarity(vectors[0], vectors[1]); got != 0 {
		t.Fatalf("CosineSimilarity = %v, want 0", got)
	}
}

func TestVectorizeEmptyDocument(t *testing.T) {
	v := mustVectorizer(t, DefaultVectorizerConfig())

	a, b := v.Vectorize("", "hello world")
	if !a.IsZero() || !b.IsZero() {
		t.Fatal("expected zero vectors when one document is empty")
	}
}

func TestVectorizeMinDocumentFrequencyOne(t *testing.T) {
	cfg := DefaultVectorizerConfig()
	cfg.MinDocumentFrequency = 1
	v := mustVectorizer(t, cfg)

	vectors, vocabulary := v.FitTransform("x y", "y z")
	if want := []string{"x", "x y", "y", "y z", "z"}; !slices.Equal(vocabulary, want) {
		t.Fatalf("vocabulary = %q, want %q", vocabulary, want)
	}
	wantRare := math.Log(3.0/2.0) + 1
	if got := vectors[0].Weight("x"); math.Abs(got-wantRare) > 1e-12 {
		t.Fatalf("weight(x) = %v, want %v", got, wantRare)
	}
	if got := vectors[0].Weight("y"); got != 1 {
		t.Fatalf("weight(y) = %v, want 1", got)
	}
}

func TestVectorizeNgramRange(t *testing.T) {
	cfg := DefaultVectorizerConfig()
	cfg.NgramRange = NgramRange{Min: 2, Max: 2}
	v := mustVectorizer(t, cfg)

	_, vocabulary := v.FitTransform("a b c", "a b c")
	if want := []string{"a b", "b c"}; !slices.Equal(vocabulary, want) {
		t.Fatalf("vocabulary = %q, want %q", vocabulary, want)
	}
}

func TestVectorizeMinTokenRunes(t *testing.T) {
	cfg := DefaultVectorizerConfig()
	cfg.MinTokenRunes = 2
	v := mustVectorizer(t, cfg)

	_, vocabulary := v.FitTransform("今天 天气 很 好", "今天 天气 非常 好")
	if want := []string{"今天", "今天 天气", "天气"}; !slices.Equal(vocabulary, want) {
		t.Fatalf("vocabulary = %q, want %q", vocabulary, want)
	}
}

func TestVectorizerConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  VectorizerConfig
		ok   bool
	}{
		{"default", DefaultVectorizerConfig(), true},
		{"zero min", VectorizerConfig{NgramRange: NgramRange{0, 2}, MinDocumentFrequency: 2, MinTokenRunes: 1}, false},
		{"inverted", VectorizerConfig{NgramRange: NgramRange{3, 2}, MinDocumentFrequency: 2, MinTokenRunes: 1}, false},
		{"zero df", VectorizerConfig{NgramRange: NgramRange{1, 2}, MinDocumentFrequency: 0, MinTokenRunes: 1}, false},
		{"zero runes", VectorizerConfig{NgramRange: NgramRange{1, 2}, MinDocumentFrequency: 2, MinTokenRunes: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVectorizer(tt.cfg)
			if (err == nil) != tt.ok {
				t.Fatalf("NewVectorizer error = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestTermVectorKeepsRawWeightsAndNorm(t *testing.T) {
	v := mustVectorizer(t, DefaultVectorizerConfig())
	a, _ := v.Vectorize("x x y", "x y")

	idf := math.Log(3.0/3.0) + 1
	if got := a.Weight("x"); math.Abs(got-2*idf) > 1e-12 {
		t.Fatalf("Weight(x) = %v, want %v", got, 2*idf)
	}
	var sum float64
	for _, f := range a.Features() {
		sum += a.Weight(f) * a.Weight(f)
	}
	if math.Abs(a.Norm()-math.Sqrt(sum)) > 1e-12 {
		t.Fatalf("Norm = %v, want %v", a.Norm(), math.Sqrt(sum))
	}
}

func TestTermVectorNilSafe(t *testing.T) {
	var v *TermVector
	if v.Len() != 0 || v.Weight("x") != 0 || v.Norm() != 0 || v.Features() != nil || !v.IsZero() {
		t.Fatal("nil vector should behave as empty")
	}
}
