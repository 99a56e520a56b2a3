package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/contextlab/ragstore/internal/chunker"
	"github.com/contextlab/ragstore/internal/provider"
	"github.com/contextlab/ragstore/internal/rank"
	"github.com/contextlab/ragstore/internal/vectorstore"
	"github.com/contextlab/ragstore/pkg/types"
)

// Engine ties a vector store and an embedding/chat provider into the
// full ingest and query pipeline.
type Engine struct {
	store        *vectorstore.Store
	provider     provider.Provider
	mock         bool
	chunkSize    int
	chunkOverlap int
}

// Options configure engine construction.
type Options struct {
	// ChunkSize and ChunkOverlap are the rune-window defaults applied
	// when an ingestion call does not override them. Non-positive
	// values take the chunker defaults; a zero overlap is selected
	// per call through IngestOptions.
	ChunkSize    int
	ChunkOverlap int
	// MockMode relaxes the similarity threshold filter so that the
	// deterministic mock embeddings still return documents.
	MockMode bool
}

// IngestOptions override chunking for a single ingestion call. Nil
// fields keep the engine defaults, so an explicit zero overlap is
// distinguishable from unset.
type IngestOptions struct {
	ChunkSize    *int
	ChunkOverlap *int
}

// New creates an engine over the given store and provider.
func New(store *vectorstore.Store, p provider.Provider, opts Options) *Engine {
	size := opts.ChunkSize
	if size <= 0 {
		size = chunker.DefaultSize
	}
	overlap := opts.ChunkOverlap
	if overlap <= 0 {
		overlap = chunker.DefaultOverlap
	}
	return &Engine{
		store:        store,
		provider:     p,
		mock:         opts.MockMode,
		chunkSize:    size,
		chunkOverlap: overlap,
	}
}

// contentHash fingerprints a chunk together with its metadata. Two
// chunks with identical text but different metadata are distinct items.
func contentHash(chunk string, metadata map[string]any) string {
	meta, err := json.Marshal(metadata)
	if err != nil || metadata == nil {
		meta = []byte("{}")
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(chunk))
	_, _ = h.Write([]byte("\n"))
	_, _ = h.Write(meta)
	return fmt.Sprintf("%08x", h.Sum32())
}

// Ingest chunks text, embeds the chunks that are not already stored,
// and appends them to the store document. The store is saved only when
// at least one item was added, so replayed ingestions are free.
func (e *Engine) Ingest(ctx context.Context, text string, metadata map[string]any, opts IngestOptions) (types.IngestResult, error) {
	size := e.chunkSize
	if opts.ChunkSize != nil && *opts.ChunkSize > 0 {
		size = *opts.ChunkSize
	}
	overlap := e.chunkOverlap
	if opts.ChunkOverlap != nil && *opts.ChunkOverlap >= 0 {
		overlap = *opts.ChunkOverlap
	}
	chunks := chunker.Chunk(text, size, overlap)
	if len(chunks) == 0 {
		return types.IngestResult{}, nil
	}

	e.store.Lock()
	defer e.store.Unlock()

	doc, err := e.store.Load(ctx)
	if err != nil {
		return types.IngestResult{}, err
	}
	if doc == nil {
		doc = types.NewStoreDocument()
	}

	seen := make(map[string]struct{}, len(doc.Items))
	for _, item := range doc.Items {
		seen[item.ContentHash] = struct{}{}
	}

	var result types.IngestResult
	for _, chunk := range chunks {
		hash := contentHash(chunk, metadata)
		if _, dup := seen[hash]; dup {
			result.Skipped++
			continue
		}

		embedding, err := e.provider.Embed(ctx, chunk)
		if err != nil {
			return types.IngestResult{}, fmt.Errorf("embed chunk: %w", err)
		}
		if doc.Dimension == 0 {
			doc.Dimension = len(embedding)
		} else if len(embedding) != doc.Dimension {
			return types.IngestResult{}, &types.DimensionMismatchError{Store: doc.Dimension, Got: len(embedding)}
		}

		doc.Items = append(doc.Items, types.StoredItem{
			ID:          uuid.NewString(),
			Text:        chunk,
			Metadata:    metadata,
			Embedding:   embedding,
			CreatedAt:   time.Now().UTC(),
			ContentHash: hash,
		})
		seen[hash] = struct{}{}
		result.Added++
	}

	if result.Added > 0 {
		if err := e.store.Save(ctx, doc); err != nil {
			return types.IngestResult{}, err
		}
	}

	return result, nil
}

// Query runs hybrid retrieval for the question and synthesizes an
// answer per the resolved answer mode.
func (e *Engine) Query(ctx context.Context, question string, opts types.QueryOptions) (types.QueryResult, error) {
	cfg := ResolveConfig(opts)
	result := types.QueryResult{
		Documents:  []types.RetrievalDocument{},
		UsedConfig: cfg,
	}

	doc, err := e.store.Load(ctx)
	if err != nil {
		return result, err
	}
	if doc == nil || len(doc.Items) == 0 || strings.TrimSpace(question) == "" {
		return e.answer(ctx, question, result)
	}

	queryEmbedding, err := e.provider.Embed(ctx, question)
	if err != nil {
		return result, fmt.Errorf("embed query: %w", err)
	}
	if len(queryEmbedding) != doc.Dimension {
		return result, &types.DimensionMismatchError{Store: doc.Dimension, Got: len(queryEmbedding)}
	}

	result.Documents = e.retrieve(doc, question, queryEmbedding, cfg)
	return e.answer(ctx, question, result)
}

// retrieve runs the two ranking passes independently, unions the top-K
// candidate sets, and filters and ranks the union. A candidate surfaced
// by only one pass keeps a 0 for the other score dimension.
func (e *Engine) retrieve(doc *types.StoreDocument, question string, queryEmbedding []float64, cfg types.QueryConfig) []types.RetrievalDocument {
	semanticScores := make([]float64, len(doc.Items))
	keywordScores := make([]float64, len(doc.Items))
	for i, item := range doc.Items {
		semanticScores[i] = rank.Cosine(queryEmbedding, item.Embedding)
		keywordScores[i] = rank.KeywordScore(question, item.Text)
	}

	semanticTop := topIndexes(semanticScores, cfg.SemanticTopK)
	keywordTop := topIndexes(keywordScores, cfg.KeywordTopK)

	// Union in a deterministic order: semantic candidates first, then
	// keyword-only additions.
	merged := make([]types.RetrievalDocument, 0, len(semanticTop)+len(keywordTop))
	position := make(map[string]int, len(semanticTop)+len(keywordTop))
	for _, i := range semanticTop {
		item := doc.Items[i]
		position[item.ID] = len(merged)
		merged = append(merged, types.RetrievalDocument{
			ID:            item.ID,
			Text:          item.Text,
			Metadata:      item.Metadata,
			SemanticScore: semanticScores[i],
		})
	}
	for _, i := range keywordTop {
		item := doc.Items[i]
		if pos, ok := position[item.ID]; ok {
			merged[pos].KeywordScore = keywordScores[i]
			continue
		}
		position[item.ID] = len(merged)
		merged = append(merged, types.RetrievalDocument{
			ID:           item.ID,
			Text:         item.Text,
			Metadata:     item.Metadata,
			KeywordScore: keywordScores[i],
		})
	}

	retained := make([]types.RetrievalDocument, 0, len(merged))
	for _, d := range merged {
		d.Score = semanticWeight*d.SemanticScore + keywordWeight*d.KeywordScore
		if !e.mock {
			if cfg.Strict {
				if d.SemanticScore < cfg.SimilarityThreshold {
					continue
				}
			} else if d.Score < cfg.SimilarityThreshold {
				continue
			}
		}
		retained = append(retained, d)
	}

	sort.SliceStable(retained, func(i, j int) bool {
		return retained[i].Score > retained[j].Score
	})
	if len(retained) > cfg.HybridTopK {
		retained = retained[:cfg.HybridTopK]
	}
	return retained
}

// topIndexes returns the indexes of the k highest scores, preserving
// store order among ties.
func topIndexes(scores []float64, k int) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	if len(idx) > k {
		idx = idx[:k]
	}
	return idx
}

// answer fills result.Answer per the resolved mode.
func (e *Engine) answer(ctx context.Context, question string, result types.QueryResult) (types.QueryResult, error) {
	switch result.UsedConfig.AnswerMode {
	case types.AnswerModeNone:
		return result, nil
	case types.AnswerModeExtractive:
		result.Answer = buildExtractiveAnswer(result.Documents)
		return result, nil
	default:
		if len(result.Documents) == 0 {
			result.Answer = UnknownAnswer
			return result, nil
		}
		prompt := buildUserPrompt(buildContext(result.Documents), question)
		answer, err := e.provider.Chat(ctx, result.UsedConfig.SystemPrompt, prompt, result.UsedConfig.Temperature)
		if err != nil {
			return result, fmt.Errorf("chat: %w", err)
		}
		result.Answer = answer
		return result, nil
	}
}

// Status reports the persisted store without loading item payloads into
// the response.
func (e *Engine) Status(ctx context.Context) (types.StoreStatus, error) {
	status := types.StoreStatus{StoreKey: e.store.Key()}
	doc, err := e.store.Load(ctx)
	if err != nil {
		return status, err
	}
	if doc == nil {
		return status, nil
	}
	status.Exists = true
	status.Dimension = doc.Dimension
	status.Items = len(doc.Items)
	return status, nil
}

// Reset deletes the store document.
func (e *Engine) Reset(ctx context.Context) error {
	e.store.Lock()
	defer e.store.Unlock()
	return e.store.Delete(ctx)
}
