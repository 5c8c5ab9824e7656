// Package schema has models and shared constants for all parts of talentmap.
package schema

// Item is the wire form of a single assessment question, as authored in the
// item bank file. Optional fields keep their zero value when absent; the
// effective defaults (weight 1, max score 1, likert kind) are resolved by
// NewBank rather than at scoring time.
type Item struct {
	ID             int      `json:"id"`                       // Unique positive identifier, stable across runs
	Domain         string   `json:"domain"`                   // Aptitude domain, e.g. "Analytical"
	SubDomain      string   `json:"subDomain,omitempty"`      // Optional finer-grained category
	Type           string   `json:"type,omitempty"`           // "objective" or "likert"; absent implies likert
	Text           string   `json:"text,omitempty"`           // Question text, not used by scoring
	Options        []string `json:"options,omitempty"`        // Choices for objective items
	CorrectAnswer  any      `json:"correctAnswer,omitempty"`  // Objective items only, compared by equality
	Reverse        bool     `json:"reverse,omitempty"`        // Likert items only: effective value is 6 - raw
	Weight         float64  `json:"weight,omitempty"`         // Multiplies earned and possible points; default 1
	MaxScore       float64  `json:"maxScore,omitempty"`       // Objective items only, scales both sides; default 1
	CareerClusters []string `json:"careerClusters,omitempty"` // Explicit cluster keys; empty falls back to domain membership
}

// BankItem is an Item with its scoring variant and effective numbers
// resolved once at load time.
type BankItem struct {
	Item
	Kind      ItemKind // Objective or likert, never re-derived in the hot loop
	EffWeight float64  // Effective weight, always > 0
	EffMax    float64  // Effective max score, always > 0
}

// Bank is an ordered, read-only collection of kind-resolved items. It is
// safe to share across concurrent scoring invocations.
//
// Duplicate ids are preserved as-is: both items contribute independently,
// keyed by their own domain and weight, while the answer set can only
// supply one shared answer per id. The integrity check flags duplicates;
// scoring never deduplicates.
type Bank struct {
	Items []BankItem
}

// NewBank resolves each item's scoring kind and effective weights.
// An item is objective only when it is tagged as such AND carries a correct
// answer; everything else scores as likert. Non-positive weights and max
// scores fall back to 1 rather than erroring.
func NewBank(items []Item) *Bank {
	resolved := make([]BankItem, 0, len(items))
	for _, it := range items {
		kind := LikertKind
		if it.Type == string(ObjectiveKind) && it.CorrectAnswer != nil {
			kind = ObjectiveKind
		}
		w := it.Weight
		if w <= 0 {
			w = 1
		}
		m := it.MaxScore
		if m <= 0 {
			m = 1
		}
		resolved = append(resolved, BankItem{Item: it, Kind: kind, EffWeight: w, EffMax: m})
	}
	return &Bank{Items: resolved}
}

// Aggregate is an accumulator keyed by domain or sub-domain name. Raw and
// Possible carry weighted earned and weighted maximum points; Percent is
// derived by Finalize.
type Aggregate struct {
	Key        string  `json:"key,omitempty"` // Domain or sub-domain name; empty for the overall total
	Correct    int     `json:"correct"`       // Correct (objective) or high-scoring (likert) items
	Considered int     `json:"considered"`    // Answered items that contributed
	Raw        float64 `json:"raw"`           // Cumulative weighted earned points
	Possible   float64 `json:"possible"`      // Cumulative weighted maximum points
	Percent    int     `json:"percent"`       // round(Raw/Possible*100), 0 when Possible is 0
}

// Finalize derives the percent once accumulation is done.
func (a *Aggregate) Finalize() {
	a.Percent = PercentOf(a.Raw, a.Possible)
}

// DomainReport is the Domain Aggregator output: an overall total plus
// per-domain and per-sub-domain breakdowns, each sorted by percent
// descending with ties broken by key ascending.
type DomainReport struct {
	Total       Aggregate   `json:"total"`
	ByDomain    []Aggregate `json:"byDomain"`
	BySubDomain []Aggregate `json:"bySubDomain"`
}

// ClusterDef associates a named career cluster with aptitude domains.
// Either DomainWeights is set (weights need not sum to 1) or Domains lists
// member domains, each implicitly weighted 1/len(Domains). RIASECWeights
// optionally adds trait terms to the domain-means strategy.
type ClusterDef struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description,omitempty"`
	DomainWeights map[string]float64 `json:"domainWeights,omitempty"`
	Domains       []string           `json:"domains,omitempty"`
	RIASECWeights map[string]float64 `json:"riasecWeights,omitempty"`
}

// ClusterContribution records one (domain, weight) term of a cluster score
// for explanation purposes.
type ClusterContribution struct {
	Domain      string  `json:"domain"`
	Weight      float64 `json:"weight"`
	DomainScore float64 `json:"domainScore"`
}

// ClusterScore is the per-cluster output of either scoring strategy.
// MatchedItems, Raw and Possible are populated by the item strategy;
// Contributions by the domain-means strategy.
type ClusterScore struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description,omitempty"`
	Score         float64               `json:"score"`   // 0-5 scale
	Percent       int                   `json:"percent"` // 0-100
	MatchedItems  int                   `json:"matchedItems,omitempty"`
	Raw           float64               `json:"raw,omitempty"`
	Possible      float64               `json:"possible,omitempty"`
	Contributions []ClusterContribution `json:"contributions,omitempty"`
}

// StyleMap assigns item ids to learning-style channels. The assignment is
// caller-supplied configuration, not a constant baked into the engine.
type StyleMap map[Channel][]int

// StyleResult holds per-channel mean scores and the dominant channel.
// Dominant is nil when no mapped item was answered at all.
type StyleResult struct {
	Channels map[Channel]float64 `json:"channelScores"`
	Dominant *Channel            `json:"dominant"`
}
