package server

import (
	"encoding/json"

	"github.com/contextlab/ragstore/pkg/types"
)

type HealthResponse struct {
	OK             bool   `json:"ok"`
	VectorStoreKey string `json:"vectorStoreKey"`
	Backend        string `json:"backend"`
}

type IngestRequest struct {
	// Data accepts either an array of records or a single record.
	Data json.RawMessage `json:"data"`
}

type IngestResponse struct {
	OK             bool   `json:"ok"`
	Count          int    `json:"count"`
	Added          int    `json:"added"`
	Skipped        int    `json:"skipped"`
	VectorStoreKey string `json:"vectorStoreKey,omitempty"`
}

// QueryRequest carries the question plus retrieval options, either
// inline or nested under config. A nested config wins over inline
// fields when both are present.
type QueryRequest struct {
	Question string              `json:"question"`
	Query    string              `json:"query"`
	Config   *types.QueryOptions `json:"config"`
	types.QueryOptions
}

type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
