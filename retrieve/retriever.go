package retrieve

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"

	"github.com/poiesic/regulo/ai"
	"github.com/poiesic/regulo/core"
	"github.com/poiesic/regulo/extract"
	"github.com/poiesic/regulo/index"
)

const (
	// DefaultTopK is how many chunks a query returns.
	DefaultTopK = 6

	// DefaultVectorWeight and DefaultEntityWeight blend the semantic
	// and entity signals. They must sum to 1.
	DefaultVectorWeight = 0.6
	DefaultEntityWeight = 0.4
)

var (
	// ErrNilIndex indicates the retriever was built without an index.
	ErrNilIndex = errors.New("retriever requires an index")

	// ErrNilEmbedder indicates the retriever was built without an embedder.
	ErrNilEmbedder = errors.New("retriever requires an embedder")
)

// Option configures a Retriever.
type Option func(*Retriever)

// WithTopK sets how many chunks Retrieve returns.
func WithTopK(topK int) Option {
	return func(r *Retriever) {
		r.topK = topK
	}
}

// WithWeights sets the vector and entity score weights.
func WithWeights(vector, entity float64) Option {
	return func(r *Retriever) {
		r.vectorWeight = vector
		r.entityWeight = entity
	}
}

// WithAuthorityRules replaces the document authority table.
func WithAuthorityRules(rules []AuthorityRule) Option {
	return func(r *Retriever) {
		r.authorityRules = rules
	}
}

// WithBoostRules replaces the query boost table.
func WithBoostRules(rules []BoostRule) Option {
	return func(r *Retriever) {
		r.boostRules = rules
	}
}

// Retriever ranks indexed chunks against a query by blending vector
// similarity, entity overlap and document authority.
type Retriever struct {
	index          index.Index
	embedder       ai.Embedder
	topK           int
	vectorWeight   float64
	entityWeight   float64
	authorityRules []AuthorityRule
	boostRules     []BoostRule
	logger         *slog.Logger
}

// New creates a Retriever over the given index and embedder.
func New(idx index.Index, embedder ai.Embedder, opts ...Option) (*Retriever, error) {
	if idx == nil {
		return nil, ErrNilIndex
	}
	if embedder == nil {
		return nil, ErrNilEmbedder
	}

	r := &Retriever{
		index:          idx,
		embedder:       embedder,
		topK:           DefaultTopK,
		vectorWeight:   DefaultVectorWeight,
		entityWeight:   DefaultEntityWeight,
		authorityRules: DefaultAuthorityRules,
		boostRules:     DefaultBoostRules,
		logger:         slog.Default().With("component", "retriever"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Retrieve returns the topK chunks ranked for the query. Retrieval is
// fail-soft: an embedding failure yields an empty result, not an
// error, so the caller can still respond.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]core.ScoredChunk, error) {
	vector, err := r.embedder.EmbedText(ctx, query)
	if err != nil || len(vector) == 0 {
		r.logger.Warn("query embedding failed, returning no chunks", "err", err)
		return nil, nil
	}

	// Over-fetch so reranking has candidates to demote.
	matches, err := r.index.Search(ctx, vector, 2*r.topK)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}

	queryEntities := extract.Extract(query)

	scored := make([]core.ScoredChunk, 0, len(matches))
	for _, match := range matches {
		record := match.Record

		vectorScore := vectorScoreFromDistance(match.Distance)
		entityScore := extract.Overlap(queryEntities, recordEntities(record))
		base := r.vectorWeight*vectorScore + r.entityWeight*entityScore
		authority := authorityMultiplier(record.Source, query, r.authorityRules, r.boostRules)

		scored = append(scored, core.ScoredChunk{
			Text:        record.Text,
			Source:      record.Source,
			Score:       base * authority,
			VectorScore: vectorScore,
			EntityScore: entityScore,
			Authority:   authority,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > r.topK {
		scored = scored[:r.topK]
	}

	r.logger.Debug("retrieved chunks", "candidates", len(matches), "returned", len(scored))
	return scored, nil
}

// vectorScoreFromDistance maps a cosine distance in [0, 2] to a
// similarity score in [0, 1].
func vectorScoreFromDistance(distance float32) float64 {
	score := 1 - float64(distance)/2
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// recordEntities decodes the entity metadata stored with a record.
// Malformed metadata counts as no entities.
func recordEntities(record *index.Record) core.EntitySet {
	if record.Metadata == "" {
		return core.NewEntitySet()
	}
	var set core.EntitySet
	if err := json.Unmarshal([]byte(record.Metadata), &set); err != nil {
		return core.NewEntitySet()
	}
	return set
}
