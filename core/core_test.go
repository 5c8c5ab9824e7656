package core

import (
	"testing"

	"github.com/pathworks/talentmap/internal/contract"
	"github.com/pathworks/talentmap/internal/dataset"
	"github.com/pathworks/talentmap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() *dataset.Dataset {
	bank := schema.NewBank([]schema.Item{
		{ID: 1, Domain: "Analytical", Type: "objective", CorrectAnswer: 1.0, CareerClusters: []string{"stem"}},
		{ID: 2, Domain: "Analytical", CareerClusters: []string{"stem"}},
		{ID: 3, Domain: "Creative", CareerClusters: []string{"arts"}},
		{ID: 4, Domain: "Social"},
	})
	return &dataset.Dataset{
		Bank: bank,
		Clusters: []schema.ClusterDef{
			{ID: "stem", Name: "STEM", Domains: []string{"Analytical"}},
			{ID: "arts", Name: "Arts", Domains: []string{"Creative"}},
		},
		StyleMap: schema.StyleMap{
			schema.VisualChannel:      {2},
			schema.KinestheticChannel: {4},
		},
		Answers: schema.AnswerSet{1: 1.0, 2: 5.0, 3: 2.0, 4: 3.0},
	}
}

func TestBuildResult(t *testing.T) {
	cfg := &contract.Config{Strategy: schema.ItemStrategy, ResultLimit: 5}

	res, err := BuildResult(sampleDataset(), cfg)
	require.NoError(t, err)

	t.Run("domains", func(t *testing.T) {
		assert.Equal(t, 4, res.Domains.Total.Considered)
		require.NotEmpty(t, res.Domains.ByDomain)
		assert.Equal(t, "Analytical", res.Domains.ByDomain[0].Key)
		assert.Equal(t, 100, res.Domains.ByDomain[0].Percent)
	})

	t.Run("clusters ranked best first", func(t *testing.T) {
		require.Len(t, res.Clusters, 2)
		assert.Equal(t, "stem", res.Clusters[0].ID)
		assert.Equal(t, "arts", res.Clusters[1].ID)
	})

	t.Run("style classified from the style map", func(t *testing.T) {
		require.NotNil(t, res.Style)
		require.NotNil(t, res.Style.Dominant)
		assert.Equal(t, schema.VisualChannel, *res.Style.Dominant)
	})
}

func TestBuildResult_LimitTruncates(t *testing.T) {
	cfg := &contract.Config{Strategy: schema.ItemStrategy, ResultLimit: 1}

	res, err := BuildResult(sampleDataset(), cfg)
	require.NoError(t, err)
	require.Len(t, res.Clusters, 1)
	assert.Equal(t, "stem", res.Clusters[0].ID)
}

func TestBuildResult_DomainStrategy(t *testing.T) {
	cfg := &contract.Config{Strategy: schema.DomainStrategy, ResultLimit: 5}

	res, err := BuildResult(sampleDataset(), cfg)
	require.NoError(t, err)
	require.Len(t, res.Clusters, 2)

	// Only likert items feed domain means: Analytical mean 5, Creative 2.
	assert.Equal(t, "stem", res.Clusters[0].ID)
	assert.InDelta(t, 5.0, res.Clusters[0].Score, 0.001)
	assert.InDelta(t, 2.0, res.Clusters[1].Score, 0.001)
}

func TestBuildResult_MissingInputs(t *testing.T) {
	cfg := &contract.Config{Strategy: schema.ItemStrategy, ResultLimit: 5}

	t.Run("answers required", func(t *testing.T) {
		ds := sampleDataset()
		ds.Answers = nil
		_, err := BuildResult(ds, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--answers")
	})

	t.Run("clusters required", func(t *testing.T) {
		ds := sampleDataset()
		ds.Clusters = nil
		_, err := BuildResult(ds, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--clusters")
	})

	t.Run("style map optional", func(t *testing.T) {
		ds := sampleDataset()
		ds.StyleMap = nil
		res, err := BuildResult(ds, cfg)
		require.NoError(t, err)
		assert.Nil(t, res.Style)
	})
}
