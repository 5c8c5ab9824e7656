package algo

import (
	"sort"

	"github.com/pathworks/talentmap/schema"
)

// TopClusters sorts clusters by score in descending order and returns the
// top 'limit' entries. If limit is greater than the number of clusters,
// all clusters are returned in sorted order. Call sites disagree on the
// natural N (5 for the CLI top list, 3 for recommendations), so the limit
// is always an explicit parameter.
func TopClusters(scores []schema.ClusterScore, limit int) []schema.ClusterScore {
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].ID < scores[j].ID
	})
	if limit >= 0 && len(scores) > limit {
		return scores[:limit]
	}
	return scores
}
