// Package report renders similarity results for persistence and display.
package report

import (
	"fmt"
	"strconv"

	"plagcheck/internal/fileutil"
	"plagcheck/internal/textutil"
)

// FormatScore renders score with two decimals and a trailing newline.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64) + "\n"
}

// WriteScore creates or replaces path with the formatted score.
func WriteScore(path string, score float64) error {
	if err := fileutil.WriteFileAtomic(path, []byte(FormatScore(score)), 0o644); err != nil {
		return fmt.Errorf("write result %s: %w", path, err)
	}
	return nil
}

// FeatureRows returns table rows (feature, original weight, candidate weight,
// contribution) for the limit strongest shared features.
func FeatureRows(a, b *textutil.TermVector, limit int) [][]string {
	shared := textutil.SharedFeatures(a, b, limit)
	rows := make([][]string, 0, len(shared))
	for _, f := range shared {
		rows = append(rows, []string{
			f.Feature,
			strconv.FormatFloat(f.A, 'f', 4, 64),
			strconv.FormatFloat(f.B, 'f', 4, 64),
			strconv.FormatFloat(f.Contribution(), 'f', 4, 64),
		})
	}
	return rows
}
