package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/contextlab/ragstore/internal/engine"
	"github.com/contextlab/ragstore/pkg/types"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		OK:             true,
		VectorStoreKey: s.storeKey,
		Backend:        s.backend,
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.engine.Status(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// handleInit replaces the store: delete it, then ingest every record in
// the request body.
func (s *Server) handleInit(w http.ResponseWriter, r *http.Request) {
	var req IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	records, err := normalizeRecords(req.Data)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.engine.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	added, skipped, err := s.ingestRecords(r, records, "init")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	log.Printf("[ingest] source=init key=%s records=%d added=%d skipped=%d", s.storeKey, len(records), added, skipped)
	writeJSON(w, http.StatusOK, IngestResponse{
		OK:             true,
		Count:          len(records),
		Added:          added,
		Skipped:        skipped,
		VectorStoreKey: s.storeKey,
	})
}

// handleAppend ingests records into the existing store.
func (s *Server) handleAppend(w http.ResponseWriter, r *http.Request) {
	var req IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	records, err := normalizeRecords(req.Data)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	added, skipped, err := s.ingestRecords(r, records, "append")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	log.Printf("[ingest] source=append key=%s records=%d added=%d skipped=%d", s.storeKey, len(records), added, skipped)
	writeJSON(w, http.StatusOK, IngestResponse{
		OK:      true,
		Count:   len(records),
		Added:   added,
		Skipped: skipped,
	})
}

// handleQuery answers /rag/query and /rag/ask. The response shape
// follows the answer mode: a bare documents array for none, a
// single-element answer array otherwise, with documents as fallback
// when the answer came back empty.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	question := req.Question
	if question == "" {
		question = req.Query
	}
	opts := req.QueryOptions
	if req.Config != nil {
		opts = *req.Config
	}

	result, err := s.engine.Query(r.Context(), question, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	switch {
	case result.UsedConfig.AnswerMode == types.AnswerModeNone:
		writeJSON(w, http.StatusOK, result.Documents)
	case result.Answer != "":
		writeJSON(w, http.StatusOK, []string{result.Answer})
	case len(result.Documents) > 0:
		writeJSON(w, http.StatusOK, result.Documents)
	default:
		writeJSON(w, http.StatusOK, []any{})
	}
}

// ingestRecords stores each record as its canonical JSON text, tagged
// with the ingestion source and position. A string topic field on a
// record is copied into the metadata for retrieval-time inspection.
func (s *Server) ingestRecords(r *http.Request, records []json.RawMessage, source string) (added, skipped int, err error) {
	for i, raw := range records {
		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			return added, skipped, fmt.Errorf("record %d: %w", i, err)
		}
		text, err := json.Marshal(value)
		if err != nil {
			return added, skipped, fmt.Errorf("record %d: %w", i, err)
		}

		metadata := map[string]any{"source": source, "index": i}
		if m, ok := value.(map[string]any); ok {
			if topic, ok := m["topic"].(string); ok {
				metadata["topic"] = topic
			}
		}

		res, err := s.engine.Ingest(r.Context(), string(text), metadata, engine.IngestOptions{})
		if err != nil {
			return added, skipped, fmt.Errorf("record %d: %w", i, err)
		}
		added += res.Added
		skipped += res.Skipped
	}
	return added, skipped, nil
}

// normalizeRecords accepts data as an array, a single object, or
// null/absent.
func normalizeRecords(raw json.RawMessage) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var records []json.RawMessage
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("parse data: %w", err)
		}
		return records, nil
	}
	return []json.RawMessage{trimmed}, nil
}
