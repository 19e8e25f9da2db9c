package compare

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"plagcheck/internal/config"
	"plagcheck/internal/document"
	"plagcheck/internal/logging"
	"plagcheck/internal/textutil"
)

// EmptyInputPolicy selects how a pair with an empty document is scored.
type EmptyInputPolicy string

const (
	// EmptyInputZero scores 0 without vectorizing.
	EmptyInputZero EmptyInputPolicy = "zero"
	// EmptyInputVectorize hands empty documents to the vectorizer, which
	// produces zero vectors.
	EmptyInputVectorize EmptyInputPolicy = "vectorize"
)

const (
	RoleOriginal  = "original"
	RoleCandidate = "candidate"
)

// Options assembles the components of a Pipeline.
type Options struct {
	Decoder    document.Options
	Normalizer textutil.NormalizerOptions
	Vectorizer textutil.VectorizerConfig
	EmptyInput EmptyInputPolicy
}

// Document is one side of a comparison after normalization.
type Document struct {
	Role       string
	Path       string
	Encoding   string
	Confidence int
	Tokens     string
}

// Result is the outcome of comparing two documents.
type Result struct {
	Original  Document
	Candidate Document
	Score     float64
	// ShortCircuited is set when an empty document skipped vectorization.
	ShortCircuited bool
	Vocabulary     int
	OriginalVec    *textutil.TermVector
	CandidateVec   *textutil.TermVector
}

// Pipeline compares document pairs.
type Pipeline struct {
	decoder    *document.Decoder
	normalizer *textutil.Normalizer
	vectorizer *textutil.Vectorizer
	emptyInput EmptyInputPolicy
	logger     *slog.Logger
}

// New builds a Pipeline from opts.
func New(opts Options, logger *slog.Logger) (*Pipeline, error) {
	decoder, err := document.NewDecoder(opts.Decoder)
	if err != nil {
		return nil, fmt.Errorf("decoder: %w", err)
	}
	vectorizer, err := textutil.NewVectorizer(opts.Vectorizer)
	if err != nil {
		return nil, fmt.Errorf("vectorizer: %w", err)
	}
	emptyInput := opts.EmptyInput
	switch emptyInput {
	case "":
		emptyInput = EmptyInputZero
	case EmptyInputZero, EmptyInputVectorize:
	default:
		return nil, fmt.Errorf("unknown empty input policy %q", opts.EmptyInput)
	}
	return &Pipeline{
		decoder:    decoder,
		normalizer: textutil.NewNormalizer(opts.Normalizer),
		vectorizer: vectorizer,
		emptyInput: emptyInput,
		logger:     logging.Component(logger, "compare"),
	}, nil
}

// OptionsFromConfig maps configuration onto pipeline options. Loading the
// dictionary segmenter happens here, so it can fail.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	opts := Options{
		Decoder: document.Options{
			Policy:        document.Policy(cfg.Decoder.EncodingPolicy),
			FixedEncoding: cfg.Decoder.FixedEncoding,
			SampleSize:    cfg.Decoder.SampleBytes,
		},
		Normalizer: textutil.NormalizerOptions{
			Punctuation: textutil.PunctuationPolicy(cfg.Normalizer.Punctuation),
		},
		Vectorizer: textutil.VectorizerConfig{
			NgramRange: textutil.NgramRange{
				Min: cfg.Vectorizer.NgramMin,
				Max: cfg.Vectorizer.NgramMax,
			},
			MinDocumentFrequency: cfg.Vectorizer.MinDocumentFrequency,
			MinTokenRunes:        cfg.Vectorizer.MinTokenRunes,
		},
		EmptyInput: EmptyInputPolicy(cfg.Scorer.EmptyInput),
	}
	switch cfg.Normalizer.Segmenter {
	case config.SegmenterWhitespace:
		opts.Normalizer.Segmenter = textutil.WhitespaceSegmenter{}
	default:
		seg, err := textutil.NewDictionarySegmenter(cfg.Normalizer.DictionaryPath, cfg.Normalizer.HMM)
		if err != nil {
			return Options{}, err
		}
		opts.Normalizer.Segmenter = seg
	}
	return opts, nil
}

// NewFromConfig is New(OptionsFromConfig(cfg)).
func NewFromConfig(cfg *config.Config, logger *slog.Logger) (*Pipeline, error) {
	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return New(opts, logger)
}

// CompareFiles decodes and normalizes both files concurrently, then scores
// them. When both files fail, the original's error is returned.
func (p *Pipeline) CompareFiles(ctx context.Context, originalPath, candidatePath string) (Result, error) {
	paths := [2]string{originalPath, candidatePath}
	roles := [2]string{RoleOriginal, RoleCandidate}
	var docs [2]Document
	var errs [2]error

	var g errgroup.Group
	for i := range paths {
		g.Go(func() error {
			docs[i], errs[i] = p.load(logging.WithRole(ctx, roles[i]), roles[i], paths[i])
			return errs[i]
		})
	}
	if err := g.Wait(); err != nil {
		for _, e := range errs {
			if e != nil {
				return Result{}, e
			}
		}
	}

	result := p.score(ctx, docs[0].Tokens, docs[1].Tokens)
	result.Original, result.Candidate = docs[0], docs[1]
	return result, nil
}

// CompareText scores two already decoded texts.
func (p *Pipeline) CompareText(ctx context.Context, original, candidate string) Result {
	result := p.score(ctx, p.normalizer.Normalize(original), p.normalizer.Normalize(candidate))
	result.Original = Document{Role: RoleOriginal, Tokens: result.Original.Tokens}
	result.Candidate = Document{Role: RoleCandidate, Tokens: result.Candidate.Tokens}
	return result
}

func (p *Pipeline) load(ctx context.Context, role, path string) (Document, error) {
	logger := logging.WithContext(ctx, p.logger)
	started := time.Now()

	decoded, err := p.decoder.DecodeFile(ctx, path)
	if err != nil {
		logger.Debug("decode failed", logging.String(logging.FieldPath, path), logging.Error(err))
		return Document{}, err
	}
	tokens := p.normalizer.Normalize(decoded.Text)

	logger.Info("document normalized",
		logging.String(logging.FieldPath, path),
		logging.String("encoding", decoded.Encoding),
		logging.Int("confidence", decoded.Confidence),
		logging.Int("tokens", countTokens(tokens)),
		slog.Duration("elapsed", time.Since(started)),
	)
	return Document{
		Role:       role,
		Path:       path,
		Encoding:   decoded.Encoding,
		Confidence: decoded.Confidence,
		Tokens:     tokens,
	}, nil
}

func (p *Pipeline) score(ctx context.Context, original, candidate string) Result {
	logger := logging.WithContext(ctx, p.logger)
	result := Result{
		Original:  Document{Tokens: original},
		Candidate: Document{Tokens: candidate},
	}

	empty := strings.TrimSpace(original) == "" || strings.TrimSpace(candidate) == ""
	if empty && p.emptyInput == EmptyInputZero {
		logger.Info("empty document; similarity is zero")
		result.ShortCircuited = true
		return result
	}

	vectors, vocabulary := p.vectorizer.FitTransform(original, candidate)
	result.OriginalVec, result.CandidateVec = vectors[0], vectors[1]
	result.Vocabulary = len(vocabulary)
	result.Score = textutil.CosineSimilarity(vectors[0], vectors[1])

	logger.Info("similarity computed",
		logging.Int("vocabulary", result.Vocabulary),
		logging.Float64("score", result.Score),
	)
	return result
}

func countTokens(tokens string) int {
	if tokens == "" {
		return 0
	}
	return strings.Count(tokens, " ") + 1
}
