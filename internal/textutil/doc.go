// Package textutil provides the text pipeline behind similarity scoring:
// normalization, word segmentation, TF-IDF vectorization, and cosine
// similarity.
//
// Normalize lowercases text, strips non-word symbols, segments it (a
// dictionary segmenter handles scripts written without spaces, such as
// Chinese) and rejoins the tokens with single spaces. A Vectorizer fits
// unigram and bigram TF-IDF weights jointly over a document pair, keeping only
// features that reach the minimum document frequency. CosineSimilarity
// compares the resulting vectors and treats zero vectors as dissimilar.
package textutil
