package models

// AggregationBucket is a (key, count) pair from a terms aggregation.
type AggregationBucket struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// MergedBucket has the same shape as AggregationBucket so merged lists can be merged again.
type MergedBucket = AggregationBucket

// RangeBucket is a bucket of a numeric range aggregation.
type RangeBucket struct {
	Key   string   `json:"key"`
	From  *float64 `json:"from,omitempty"`
	To    *float64 `json:"to,omitempty"`
	Count int64    `json:"count"`
}

// FacetSet is the filter panel data derived from backend aggregations.
type FacetSet struct {
	Genres       []MergedBucket `json:"genres"`
	Creators     []MergedBucket `json:"creators"`
	PlayerRanges []RangeBucket  `json:"playerRanges"`
}
