package types

// RetrievalDocument is a scored, per-query view of a stored item. It is
// produced by retrieval and never persisted.
type RetrievalDocument struct {
	ID            string         `json:"id"`
	Text          string         `json:"text"`
	Metadata      map[string]any `json:"metadata"`
	SemanticScore float64        `json:"semanticScore"`
	KeywordScore  float64        `json:"keywordScore"`
	Score         float64        `json:"score"`
}

// QueryResult is the envelope returned by every query, regardless of
// answer mode. Answer is empty when the mode is none.
type QueryResult struct {
	Answer     string              `json:"answer,omitempty"`
	Documents  []RetrievalDocument `json:"documents"`
	UsedConfig QueryConfig         `json:"usedConfig"`
}

// IngestResult reports how many chunks one ingestion call appended and
// how many were skipped as content-hash duplicates.
type IngestResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// StoreStatus describes the persisted store without exposing its items.
type StoreStatus struct {
	Exists    bool   `json:"exists"`
	Dimension int    `json:"dimension"`
	Items     int    `json:"items"`
	StoreKey  string `json:"storeKey"`
}
