// Package agg has aggregation logic for reducing raw answers against the
// item bank into per-domain and per-sub-domain statistics.
package agg

import (
	"sort"

	"github.com/pathworks/talentmap/schema"
)

// ItemPoints holds the weighted scoring outcome of a single answered item.
type ItemPoints struct {
	Raw      float64 // Earned points: correctness or likert value, times weight
	Possible float64 // Maximum points the item could have earned
	Hit      bool    // Correct (objective) or high-scoring (likert)
}

// ScoreItem computes the (raw, possible) pair for one item against the
// answer set. It reports false when the item was not answered, or when a
// likert item received a non-numeric answer; skipped items contribute to
// neither raw nor possible totals anywhere.
func ScoreItem(it schema.BankItem, answers schema.AnswerSet) (ItemPoints, bool) {
	switch it.Kind {
	case schema.ObjectiveKind:
		answer, ok := answers.Answered(it.ID)
		if !ok {
			return ItemPoints{}, false
		}
		possible := it.EffMax * it.EffWeight
		if schema.AnswerEquals(answer, it.CorrectAnswer) {
			return ItemPoints{Raw: possible, Possible: possible, Hit: true}, true
		}
		return ItemPoints{Raw: 0, Possible: possible}, true
	default:
		raw, ok := answers.Numeric(it.ID)
		if !ok {
			return ItemPoints{}, false
		}
		v := schema.LikertValue(raw, it.Reverse)
		return ItemPoints{
			Raw:      v * it.EffWeight,
			Possible: schema.LikertMax * it.EffWeight,
			Hit:      v >= schema.LikertHighBand,
		}, true
	}
}

// AggregateDomains reduces the answer set into an overall total plus
// per-domain and per-sub-domain aggregates. Both scoring variants fold into
// the same accumulators; the domain and sub-domain lists are sorted by
// percent descending, ties by key ascending, so repeated invocations over
// identical inputs yield identical output.
func AggregateDomains(bank *schema.Bank, answers schema.AnswerSet) schema.DomainReport {
	var total schema.Aggregate
	byDomain := make(map[string]*schema.Aggregate)
	bySubDomain := make(map[string]*schema.Aggregate)

	for _, it := range bank.Items {
		pts, ok := ScoreItem(it, answers)
		if !ok {
			continue
		}
		// An item with no domain and no sub-domain still moves the
		// overall total; it just appears in neither breakdown list.
		accumulate(&total, pts)
		if it.Domain != "" {
			accumulate(lazyGet(byDomain, it.Domain), pts)
		}
		if it.SubDomain != "" {
			accumulate(lazyGet(bySubDomain, it.SubDomain), pts)
		}
	}

	total.Finalize()
	return schema.DomainReport{
		Total:       total,
		ByDomain:    finalizeSorted(byDomain),
		BySubDomain: finalizeSorted(bySubDomain),
	}
}

// LikertDomainMeans computes the weighted per-domain mean of likert items
// on the 0-5 scale. Objective items and unanswered or non-numeric entries
// are excluded. The result feeds the domain-means cluster strategy.
func LikertDomainMeans(bank *schema.Bank, answers schema.AnswerSet) map[string]float64 {
	sums := make(map[string]float64)
	weights := make(map[string]float64)
	for _, it := range bank.Items {
		if it.Kind != schema.LikertKind || it.Domain == "" {
			continue
		}
		raw, ok := answers.Numeric(it.ID)
		if !ok {
			continue
		}
		v := schema.LikertValue(raw, it.Reverse)
		sums[it.Domain] += v * it.EffWeight
		weights[it.Domain] += it.EffWeight
	}
	means := make(map[string]float64, len(sums))
	for domain, sum := range sums {
		if weights[domain] > 0 {
			means[domain] = sum / weights[domain]
		}
	}
	return means
}

// accumulate folds one item's points into an aggregate.
func accumulate(a *schema.Aggregate, pts ItemPoints) {
	a.Considered++
	if pts.Hit {
		a.Correct++
	}
	a.Raw += pts.Raw
	a.Possible += pts.Possible
}

// lazyGet creates the aggregate for a key the first time an item
// contributes to it.
func lazyGet(m map[string]*schema.Aggregate, key string) *schema.Aggregate {
	if a, ok := m[key]; ok {
		return a
	}
	a := &schema.Aggregate{Key: key}
	m[key] = a
	return a
}

// finalizeSorted derives percents and returns the aggregates sorted by
// percent descending, ties broken by key ascending.
func finalizeSorted(m map[string]*schema.Aggregate) []schema.Aggregate {
	out := make([]schema.Aggregate, 0, len(m))
	for _, a := range m {
		a.Finalize()
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Percent != out[j].Percent {
			return out[i].Percent > out[j].Percent
		}
		return out[i].Key < out[j].Key
	})
	return out
}
