package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// AnswerSet maps item id to a raw answer value: a numeric self-rating for
// likert items, or an arbitrary JSON scalar compared for equality against
// the correct answer for objective items. A missing or nil entry means the
// item was not answered and contributes to no total.
type AnswerSet map[int]any

// ParseAnswerSet decodes the JSON object form of an answer set, where keys
// are decimal item ids. Keys that are not valid integers are rejected so
// malformed input surfaces at load time instead of silently dropping
// answers.
func ParseAnswerSet(data []byte) (AnswerSet, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid answer set JSON: %w", err)
	}
	answers := make(AnswerSet, len(raw))
	for key, value := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("invalid answer key %q: item ids must be integers", key)
		}
		answers[id] = value
	}
	return answers, nil
}

// Answered returns the raw value for an item id and whether it counts as
// answered. Explicit nulls count as unanswered.
func (s AnswerSet) Answered(id int) (any, bool) {
	v, ok := s[id]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Numeric returns the answer for an item id coerced to float64. Non-numeric
// values report false rather than coercing, so likert aggregation skips
// them.
func (s AnswerSet) Numeric(id int) (float64, bool) {
	v, ok := s.Answered(id)
	if !ok {
		return 0, false
	}
	return NumericValue(v)
}

// NumericValue coerces a raw answer value to float64. JSON decoding yields
// float64 for all numbers, but integer kinds are accepted too for callers
// that build answer sets programmatically.
func NumericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// AnswerEquals compares a learner's answer to an item's correct answer.
// Numbers compare numerically so that a JSON 2 matches a stored 2.0;
// everything else compares by stringified equality, which covers the
// string-choice and boolean cases the item bank actually uses.
func AnswerEquals(answer, correct any) bool {
	if answer == nil || correct == nil {
		return false
	}
	an, aok := NumericValue(answer)
	cn, cok := NumericValue(correct)
	if aok && cok {
		return an == cn
	}
	if aok != cok {
		return false
	}
	return fmt.Sprintf("%v", answer) == fmt.Sprintf("%v", correct)
}
