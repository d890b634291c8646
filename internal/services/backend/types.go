package backend

import (
	"bytes"
	"encoding/json"

	"github.com/killallgit/rofind-api/internal/models"
)

// SearchResponse is the body returned by /api/search and /api/trending
type SearchResponse struct {
	Took         int           `json:"took,omitempty"`
	Hits         *HitsEnvelope `json:"hits"`
	Enhancements *Enhancements `json:"llm_enhancements,omitempty"`
}

// HitsEnvelope wraps the hit list and the backend's match total
type HitsEnvelope struct {
	Total TotalHits       `json:"total"`
	Hits  []models.RawHit `json:"hits"`
}

// TotalHits is the backend's match count.
// Both {"value": n, "relation": "eq"} and a bare number are accepted.
type TotalHits struct {
	Value    int64  `json:"value"`
	Relation string `json:"relation,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler
func (t *TotalHits) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] != '{' {
		return json.Unmarshal(data, &t.Value)
	}

	type plain TotalHits
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = TotalHits(p)
	return nil
}

// Enhancements holds the optional model output attached to a search
type Enhancements struct {
	AlternativeQueries []string        `json:"alternative_queries,omitempty"`
	Analysis           json.RawMessage `json:"analysis,omitempty"`
}

// Suggestions returns the alternative queries, never nil
func (r *SearchResponse) Suggestions() []string {
	if r == nil || r.Enhancements == nil || r.Enhancements.AlternativeQueries == nil {
		return []string{}
	}
	return r.Enhancements.AlternativeQueries
}

// RawAnalysis returns the undecoded analysis payload, or nil
func (r *SearchResponse) RawAnalysis() json.RawMessage {
	if r == nil || r.Enhancements == nil {
		return nil
	}
	return r.Enhancements.Analysis
}

// Aggregations maps aggregation name to its raw body. Shapes differ per aggregation
// (terms, range, stats), so decoding is left to the consumer.
type Aggregations map[string]json.RawMessage

type trendingRequest struct {
	Limit int `json:"limit"`
}
