package core

import (
	"strings"
	"testing"

	"github.com/pathworks/talentmap/schema"
	"github.com/stretchr/testify/assert"
)

func TestVerifyDataset_Items(t *testing.T) {
	t.Run("empty bank is an error", func(t *testing.T) {
		result := VerifyDataset(schema.NewBank(nil), nil, nil)
		assert.False(t, result.Passed())
	})

	t.Run("clean bank passes", func(t *testing.T) {
		bank := schema.NewBank([]schema.Item{
			{ID: 1, Domain: "A", Type: "objective", CorrectAnswer: 0.0, Options: []string{"x", "y"}},
			{ID: 2, Domain: "B"},
		})
		result := VerifyDataset(bank, nil, nil)
		assert.True(t, result.Passed())
		assert.Empty(t, result.Warnings())
	})

	t.Run("duplicate ids are an error", func(t *testing.T) {
		bank := schema.NewBank([]schema.Item{
			{ID: 1, Domain: "A"},
			{ID: 1, Domain: "B"},
		})
		result := VerifyDataset(bank, nil, nil)
		assert.False(t, result.Passed())
		assert.Len(t, result.Errors(), 1, "duplicate group reported once")
	})

	t.Run("objective item without correct answer is an error", func(t *testing.T) {
		bank := schema.NewBank([]schema.Item{{ID: 1, Domain: "A", Type: "objective"}})
		result := VerifyDataset(bank, nil, nil)
		assert.False(t, result.Passed())
	})

	t.Run("correct answer index out of options range is an error", func(t *testing.T) {
		bank := schema.NewBank([]schema.Item{
			{ID: 1, Domain: "A", Type: "objective", CorrectAnswer: 5.0, Options: []string{"x", "y"}},
		})
		result := VerifyDataset(bank, nil, nil)
		assert.False(t, result.Passed())
	})

	t.Run("missing domain and negative weight are warnings", func(t *testing.T) {
		bank := schema.NewBank([]schema.Item{
			{ID: 1},
			{ID: 2, Domain: "A", Weight: -2},
		})
		result := VerifyDataset(bank, nil, nil)
		assert.True(t, result.Passed())
		assert.Len(t, result.Warnings(), 2)
	})
}

func TestVerifyDataset_Clusters(t *testing.T) {
	bank := schema.NewBank([]schema.Item{
		{ID: 1, Domain: "Analytical", CareerClusters: []string{"stem"}},
		{ID: 2, Domain: "Creative", CareerClusters: []string{"ghost"}},
	})

	t.Run("cluster without a scoring basis is an error", func(t *testing.T) {
		defs := []schema.ClusterDef{{ID: "empty", Name: "Empty"}}
		result := VerifyDataset(bank, defs, nil)
		assert.False(t, result.Passed())
	})

	t.Run("negative domain weight is an error", func(t *testing.T) {
		defs := []schema.ClusterDef{
			{ID: "stem", Name: "STEM", DomainWeights: map[string]float64{"Analytical": -1}},
		}
		result := VerifyDataset(bank, defs, nil)
		assert.False(t, result.Passed())
	})

	t.Run("domain with no items is a warning", func(t *testing.T) {
		defs := []schema.ClusterDef{
			{ID: "stem", Name: "STEM", Domains: []string{"Nowhere"}},
		}
		result := VerifyDataset(bank, defs, nil)
		assert.True(t, result.Passed())
		assert.NotEmpty(t, result.Warnings())
	})

	t.Run("unknown cluster tags are warnings", func(t *testing.T) {
		defs := []schema.ClusterDef{
			{ID: "stem", Name: "STEM", Domains: []string{"Analytical"}},
		}
		result := VerifyDataset(bank, defs, nil)
		assert.True(t, result.Passed())

		found := false
		for _, w := range result.Warnings() {
			if strings.Contains(w.Message, `"ghost"`) {
				found = true
			}
		}
		assert.True(t, found, "item tagged with an unknown cluster should warn")
	})
}

func TestVerifyDataset_StyleMap(t *testing.T) {
	bank := schema.NewBank([]schema.Item{
		{ID: 1, Domain: "A"},
		{ID: 2, Domain: "A", Type: "objective", CorrectAnswer: 0.0},
	})

	t.Run("nil style map is skipped", func(t *testing.T) {
		result := VerifyDataset(bank, nil, nil)
		assert.Empty(t, result.Warnings())
	})

	t.Run("unknown and objective ids are warnings", func(t *testing.T) {
		styleMap := schema.StyleMap{
			schema.VisualChannel:   {1, 99},
			schema.AuditoryChannel: {2},
		}
		result := VerifyDataset(bank, nil, styleMap)
		assert.True(t, result.Passed())
		assert.Len(t, result.Warnings(), 2)
	})
}
