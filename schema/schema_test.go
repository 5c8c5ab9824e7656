package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewBank tests kind resolution and effective weight defaults.
func TestNewBank(t *testing.T) {
	tests := []struct {
		name       string
		item       Item
		wantKind   ItemKind
		wantWeight float64
		wantMax    float64
	}{
		{
			name:       "objective with correct answer",
			item:       Item{ID: 1, Type: "objective", CorrectAnswer: 2.0},
			wantKind:   ObjectiveKind,
			wantWeight: 1,
			wantMax:    1,
		},
		{
			name:       "objective tag without correct answer falls back to likert",
			item:       Item{ID: 2, Type: "objective"},
			wantKind:   LikertKind,
			wantWeight: 1,
			wantMax:    1,
		},
		{
			name:       "no type tag is likert",
			item:       Item{ID: 3},
			wantKind:   LikertKind,
			wantWeight: 1,
			wantMax:    1,
		},
		{
			name:       "explicit weight and max score",
			item:       Item{ID: 4, Type: "objective", CorrectAnswer: 0.0, Weight: 2.5, MaxScore: 3},
			wantKind:   ObjectiveKind,
			wantWeight: 2.5,
			wantMax:    3,
		},
		{
			name:       "non-positive weight defaults to 1",
			item:       Item{ID: 5, Weight: -1, MaxScore: 0},
			wantKind:   LikertKind,
			wantWeight: 1,
			wantMax:    1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bank := NewBank([]Item{tc.item})
			require.Len(t, bank.Items, 1)
			got := bank.Items[0]
			assert.Equal(t, tc.wantKind, got.Kind)
			assert.Equal(t, tc.wantWeight, got.EffWeight)
			assert.Equal(t, tc.wantMax, got.EffMax)
		})
	}
}

// TestNewBank_PreservesDuplicates verifies that duplicate ids survive bank
// construction; the integrity check flags them, the bank never drops them.
func TestNewBank_PreservesDuplicates(t *testing.T) {
	bank := NewBank([]Item{
		{ID: 7, Domain: "A"},
		{ID: 7, Domain: "B"},
	})
	require.Len(t, bank.Items, 2)
	assert.Equal(t, "A", bank.Items[0].Domain)
	assert.Equal(t, "B", bank.Items[1].Domain)
}

func TestParseAnswerSet(t *testing.T) {
	t.Run("valid keys and mixed values", func(t *testing.T) {
		answers, err := ParseAnswerSet([]byte(`{"1": 4, "2": "frank", "3": null}`))
		require.NoError(t, err)
		assert.Equal(t, 4.0, answers[1])
		assert.Equal(t, "frank", answers[2])

		_, answered := answers.Answered(3)
		assert.False(t, answered, "explicit null counts as unanswered")
	})

	t.Run("non-integer key is rejected", func(t *testing.T) {
		_, err := ParseAnswerSet([]byte(`{"first": 4}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "item ids must be integers")
	})

	t.Run("malformed JSON is rejected", func(t *testing.T) {
		_, err := ParseAnswerSet([]byte(`{`))
		assert.Error(t, err)
	})
}

func TestAnswerEquals(t *testing.T) {
	tests := []struct {
		name    string
		answer  any
		correct any
		want    bool
	}{
		{"numeric match across types", 2, 2.0, true},
		{"numeric mismatch", 1.0, 2.0, false},
		{"string match", "frank", "frank", true},
		{"string mismatch", "frank", "guarded", false},
		{"numeric vs string never match", 2.0, "2", false},
		{"nil answer", nil, 2.0, false},
		{"nil correct", 2.0, nil, false},
		{"bool match", true, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AnswerEquals(tc.answer, tc.correct))
		})
	}
}

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		possible float64
		want     int
	}{
		{"full marks", 10, 10, 100},
		{"zero raw", 0, 10, 0},
		{"rounds half up", 1, 3, 33},
		{"rounds up", 2, 3, 67},
		{"zero possible degrades to zero", 5, 0, 0},
		{"negative possible degrades to zero", 5, -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PercentOf(tc.raw, tc.possible))
		})
	}
}

func TestLikertValue(t *testing.T) {
	tests := []struct {
		name    string
		raw     float64
		reverse bool
		want    float64
	}{
		{"plain value", 4, false, 4},
		{"reverse flips on the scale", 4, true, 2},
		{"reverse of min is max", 1, true, 5},
		{"clamps below scale", 0, false, 1},
		{"clamps above scale", 9, false, 5},
		{"clamp happens before reverse", 9, true, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LikertValue(tc.raw, tc.reverse))
		})
	}
}

func TestCheckResult(t *testing.T) {
	var result CheckResult
	assert.True(t, result.Passed(), "empty result passes")

	result.AddWarning("minor thing")
	assert.True(t, result.Passed(), "warnings alone do not fail")
	assert.Len(t, result.Warnings(), 1)
	assert.Empty(t, result.Errors())

	result.AddError("broken thing")
	assert.False(t, result.Passed())
	assert.Len(t, result.Errors(), 1)
}
