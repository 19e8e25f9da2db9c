package textutil

import (
	"cmp"
	"slices"
)

// CosineSimilarity computes the cosine similarity between two vectors.
// Returns 0 if either vector is nil or has zero norm. The dot product is
// summed in feature order, so the result does not depend on argument order.
func CosineSimilarity(a, b *TermVector) float64 {
	if a.IsZero() || b.IsZero() {
		return 0
	}
	if len(b.weights) < len(a.weights) {
		a, b = b, a
	}
	var dot float64
	for _, feature := range sortedKeys(a.weights) {
		if other, ok := b.weights[feature]; ok {
			dot += a.weights[feature] * other
		}
	}
	if dot <= 0 {
		return 0
	}
	return min(dot/(a.norm*b.norm), 1)
}

// SharedFeature is one feature weighted in both vectors. A and B are the
// feature's weights after scaling each vector to unit length.
type SharedFeature struct {
	Feature string
	A       float64
	B       float64
}

// Contribution is the feature's share of the cosine similarity.
func (f SharedFeature) Contribution() float64 {
	return f.A * f.B
}

// SharedFeatures lists features present in both vectors, largest
// contribution first. A limit of zero or less returns all of them.
func SharedFeatures(a, b *TermVector, limit int) []SharedFeature {
	if a.IsZero() || b.IsZero() {
		return nil
	}
	shared := make([]SharedFeature, 0, min(len(a.weights), len(b.weights)))
	for feature, wa := range a.weights {
		if wb, ok := b.weights[feature]; ok {
			shared = append(shared, SharedFeature{Feature: feature, A: wa / a.norm, B: wb / b.norm})
		}
	}
	slices.SortFunc(shared, func(x, y SharedFeature) int {
		if c := cmp.Compare(y.Contribution(), x.Contribution()); c != 0 {
			return c
		}
		return cmp.Compare(x.Feature, y.Feature)
	})
	if limit > 0 && len(shared) > limit {
		shared = shared[:limit]
	}
	return shared
}
