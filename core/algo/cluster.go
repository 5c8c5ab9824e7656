// Package algo has cluster scoring, learning-style classification and
// ranking logic.
package algo

import (
	"sort"

	"github.com/pathworks/talentmap/core/agg"
	"github.com/pathworks/talentmap/schema"
)

// ClusterInput carries the inputs for one cluster scoring invocation. The
// strategy decides which fields are consulted: ItemStrategy reads Bank and
// Answers; DomainStrategy reads DomainMeans and TraitScores.
type ClusterInput struct {
	Strategy schema.ClusterStrategy

	Bank    *schema.Bank
	Answers schema.AnswerSet

	DomainMeans map[string]float64 // 0-5 scale per-domain means
	TraitScores map[string]float64 // Optional RIASEC trait scores, 0-5 scale
}

// ScoreClusters maps domain-level or item-level results onto cluster scores
// using a weighted linear combination. Both strategies are pure over their
// inputs and return clusters sorted best-first; the caller picks the
// strategy per call site, there is no shared state between them.
func ScoreClusters(defs []schema.ClusterDef, in ClusterInput) []schema.ClusterScore {
	if in.Strategy == schema.DomainStrategy {
		return scoreByDomainMeans(defs, in.DomainMeans, in.TraitScores)
	}
	return scoreByItems(defs, in.Bank, in.Answers)
}

// scoreByItems derives cluster scores straight from the answer set. Each
// answered item's (raw, possible) pair, computed exactly as in domain
// aggregation, feeds every cluster the item resolves to: its explicit
// careerClusters list when non-empty, otherwise every cluster whose domain
// list contains the item's domain.
func scoreByItems(defs []schema.ClusterDef, bank *schema.Bank, answers schema.AnswerSet) []schema.ClusterScore {
	totals := make(map[string]*schema.ClusterScore, len(defs))
	ordered := make([]*schema.ClusterScore, 0, len(defs))
	for _, def := range defs {
		cs := &schema.ClusterScore{ID: def.ID, Name: def.Name, Description: def.Description}
		totals[def.ID] = cs
		ordered = append(ordered, cs)
	}
	domainMembers := domainMembership(defs)

	for _, it := range bank.Items {
		pts, ok := agg.ScoreItem(it, answers)
		if !ok {
			continue
		}
		for _, id := range resolveClusterKeys(it, domainMembers) {
			cs, ok := totals[id]
			if !ok {
				// Unresolvable cluster references contribute to no cluster.
				continue
			}
			cs.MatchedItems++
			cs.Raw += pts.Raw
			cs.Possible += pts.Possible
		}
	}

	out := make([]schema.ClusterScore, 0, len(ordered))
	for _, cs := range ordered {
		cs.Percent = schema.PercentOf(cs.Raw, cs.Possible)
		if cs.Possible > 0 {
			cs.Score = cs.Raw / cs.Possible * schema.LikertMax
		}
		out = append(out, *cs)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Percent != out[j].Percent {
			return out[i].Percent > out[j].Percent
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// scoreByDomainMeans combines already-aggregated per-domain means, plus any
// RIASEC trait terms, into a weight-normalized score back on the 0-5 scale.
// Domains with no recorded mean contribute 0 but their weight still counts,
// so a cluster built on unanswered domains sinks rather than floats.
func scoreByDomainMeans(defs []schema.ClusterDef, means, traits map[string]float64) []schema.ClusterScore {
	out := make([]schema.ClusterScore, 0, len(defs))
	for _, def := range defs {
		weights := resolveDomainWeights(def)

		var sum, totalWeight float64
		contributions := make([]schema.ClusterContribution, 0, len(weights))
		for domain, weight := range weights {
			score := means[domain]
			sum += score * weight
			totalWeight += weight
			contributions = append(contributions, schema.ClusterContribution{
				Domain:      domain,
				Weight:      weight,
				DomainScore: score,
			})
		}
		for trait, weight := range def.RIASECWeights {
			sum += traits[trait] * weight
			totalWeight += weight
		}

		var normalized float64
		if totalWeight > 0 {
			normalized = sum / totalWeight
		}
		sort.Slice(contributions, func(i, j int) bool {
			if contributions[i].Weight != contributions[j].Weight {
				return contributions[i].Weight > contributions[j].Weight
			}
			return contributions[i].Domain < contributions[j].Domain
		})
		out = append(out, schema.ClusterScore{
			ID:            def.ID,
			Name:          def.Name,
			Description:   def.Description,
			Score:         normalized,
			Percent:       schema.PercentOf(normalized, schema.LikertMax),
			Contributions: contributions,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// resolveDomainWeights returns the explicit weight map, or a uniform
// 1/len(Domains) split over the fallback domain list.
func resolveDomainWeights(def schema.ClusterDef) map[string]float64 {
	if len(def.DomainWeights) > 0 {
		return def.DomainWeights
	}
	if len(def.Domains) == 0 {
		return nil
	}
	uniform := 1.0 / float64(len(def.Domains))
	weights := make(map[string]float64, len(def.Domains))
	for _, domain := range def.Domains {
		weights[domain] = uniform
	}
	return weights
}

// domainMembership inverts cluster definitions into domain -> cluster ids,
// preserving definition order for deterministic accumulation.
func domainMembership(defs []schema.ClusterDef) map[string][]string {
	members := make(map[string][]string)
	for _, def := range defs {
		for _, domain := range def.Domains {
			members[domain] = append(members[domain], def.ID)
		}
	}
	return members
}

// resolveClusterKeys picks the clusters an item contributes to: the item's
// explicit list wins when present, domain membership is the fallback.
func resolveClusterKeys(it schema.BankItem, domainMembers map[string][]string) []string {
	if len(it.CareerClusters) > 0 {
		return it.CareerClusters
	}
	if it.Domain == "" {
		return nil
	}
	return domainMembers[it.Domain]
}
