package facets

import (
	"sort"
	"strings"

	"github.com/killallgit/rofind-api/internal/models"
)

// sentinelKey is the catch-all genre the index assigns to uncategorised games
const sentinelKey = "All"

// Merge combines bucket lists into one list of unique keys.
// Keys are compared case-insensitively and keep their first spelling; counts are summed.
// Empty keys and the "All" sentinel are dropped. The result is sorted by count,
// descending, with ties in first-seen order.
func Merge(lists ...[]models.AggregationBucket) []models.MergedBucket {
	index := make(map[string]int)
	merged := make([]models.MergedBucket, 0)

	for _, list := range lists {
		for _, b := range list {
			if strings.TrimSpace(b.Key) == "" || b.Key == sentinelKey {
				continue
			}

			norm := strings.ToLower(b.Key)
			if i, ok := index[norm]; ok {
				merged[i].Count += b.Count
				continue
			}
			index[norm] = len(merged)
			merged = append(merged, models.MergedBucket{Key: b.Key, Count: b.Count})
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Count > merged[j].Count
	})
	return merged
}

// Top returns the first n buckets, or all of them when n <= 0
func Top(buckets []models.MergedBucket, n int) []models.MergedBucket {
	if n <= 0 || len(buckets) <= n {
		return buckets
	}
	return buckets[:n]
}
