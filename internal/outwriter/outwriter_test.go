package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pathworks/talentmap/internal/contract"
	"github.com/pathworks/talentmap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDomainReport() schema.DomainReport {
	return schema.DomainReport{
		Total: schema.Aggregate{Correct: 2, Considered: 3, Raw: 12, Possible: 15, Percent: 80},
		ByDomain: []schema.Aggregate{
			{Key: "Analytical", Correct: 2, Considered: 2, Raw: 10, Possible: 10, Percent: 100},
			{Key: "Social", Considered: 1, Raw: 2, Possible: 5, Percent: 40},
		},
		BySubDomain: []schema.Aggregate{
			{Key: "Logic", Correct: 2, Considered: 2, Raw: 10, Possible: 10, Percent: 100},
		},
	}
}

func sampleClusterScores() []schema.ClusterScore {
	return []schema.ClusterScore{
		{ID: "stem", Name: "STEM", Score: 4.5, Percent: 90, MatchedItems: 5},
		{ID: "arts", Name: "Arts", Score: 2.0, Percent: 40, Contributions: []schema.ClusterContribution{
			{Domain: "Creative", Weight: 0.6, DomainScore: 2.5},
			{Domain: "Spatial", Weight: 0.4, DomainScore: 1.0},
		}},
	}
}

func TestWriteJSONResultsForDomains(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSONResultsForDomains(&buf, sampleDomainReport())
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))

	total := result["total"].(map[string]any)
	assert.Equal(t, float64(80), total["percent"])
	assert.Equal(t, "Strong", total["label"])

	byDomain := result["byDomain"].([]any)
	require.Len(t, byDomain, 2)
	first := byDomain[0].(map[string]any)
	assert.Equal(t, "Analytical", first["key"])
	assert.Equal(t, "Strong", first["label"])
}

func TestWriteCSVResultsForDomains(t *testing.T) {
	fmtFloat, intFmt := createFormatters(1)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForDomains(w, sampleDomainReport(), fmtFloat, intFmt)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5) // header + total + 2 domains + 1 subdomain

	assert.Contains(t, lines[0], "scope")
	assert.Contains(t, lines[1], "total")
	assert.Contains(t, lines[2], "Analytical")
	assert.Contains(t, lines[2], "Strong")
	assert.Contains(t, lines[4], "subdomain")
}

func TestWriteJSONResultsForClusters(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSONResultsForClusters(&buf, sampleClusterScores())
	require.NoError(t, err)

	var result []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result, 2)

	assert.Equal(t, float64(1), result[0]["rank"])
	assert.Equal(t, "stem", result[0]["id"])
	assert.Equal(t, "Strong", result[0]["label"])
	assert.Equal(t, float64(2), result[1]["rank"])
	assert.Equal(t, "Fair", result[1]["label"])
}

func TestWriteCSVResultsForClusters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForClusters(w, sampleClusterScores(), fmtFloat, intFmt)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "cluster_id")
	assert.Contains(t, lines[1], "stem")
	assert.Contains(t, lines[1], "4.50")
	assert.Contains(t, lines[2], "Creative:0.60|Spatial:0.40")
}

func TestWriteCSVResultsForStyle(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	dominant := schema.VisualChannel
	style := schema.StyleResult{
		Channels: map[schema.Channel]float64{
			schema.VisualChannel:      4.5,
			schema.AuditoryChannel:    3.0,
			schema.KinestheticChannel: 2.0,
		},
		Dominant: &dominant,
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForStyle(w, style, fmtFloat)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4) // header + 3 channels in canonical order

	assert.Equal(t, "visual,4.5,true", lines[1])
	assert.Equal(t, "auditory,3.0,false", lines[2])
	assert.Equal(t, "kinesthetic,2.0,false", lines[3])
}

func TestFormatClusterBasis(t *testing.T) {
	_, intFmt := createFormatters(1)

	itemScore := schema.ClusterScore{MatchedItems: 4}
	assert.Equal(t, "4 items", formatClusterBasis(&itemScore, intFmt))

	domainScore := sampleClusterScores()[1]
	basis := formatClusterBasis(&domainScore, intFmt)
	assert.Contains(t, basis, "Creative(2.5)")
	assert.Contains(t, basis, "Spatial(1.0)")
}

func TestGetMaxTableNameWidth(t *testing.T) {
	t.Run("width override is respected", func(t *testing.T) {
		cfg := &contract.Config{Width: 120}
		assert.Equal(t, 50, GetMaxTableNameWidth(cfg))
	})

	t.Run("narrow terminals get the floor", func(t *testing.T) {
		cfg := &contract.Config{Width: 40}
		assert.Equal(t, 15, GetMaxTableNameWidth(cfg))
	})
}
