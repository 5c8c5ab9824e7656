package core

import (
	"fmt"
	"os"
	"time"

	"github.com/pathworks/talentmap/internal/contract"
	"github.com/pathworks/talentmap/internal/dataset"
	"github.com/pathworks/talentmap/schema"
)

// ExecuteCheck runs the dataset integrity check for operator gating.
// It verifies the item bank, cluster definitions and style map against
// each other and returns a non-zero exit code if any error-severity issue
// is found. This runs at data-load time; scoring never validates.
func ExecuteCheck(cfg *contract.Config) error {
	start := time.Now()

	ds, err := dataset.Load(cfg)
	if err != nil {
		return err
	}

	result := VerifyDataset(ds.Bank, ds.Clusters, ds.StyleMap)
	printCheckResult(&result, len(ds.Bank.Items), time.Since(start))

	if !result.Passed() {
		fmt.Printf("%d integrity error(s) found\n", len(result.Errors()))
		os.Exit(1)
	}
	return nil
}

// VerifyDataset checks the structural integrity of a loaded dataset and
// returns every finding as a human-readable issue. Conditions that corrupt
// scoring (duplicate ids, malformed objective items, unusable clusters)
// are errors; conditions the engine degrades through silently are
// warnings.
func VerifyDataset(bank *schema.Bank, defs []schema.ClusterDef, styleMap schema.StyleMap) schema.CheckResult {
	var result schema.CheckResult

	verifyItems(bank, &result)
	verifyClusters(bank, defs, &result)
	verifyStyleMap(bank, styleMap, &result)

	return result
}

func verifyItems(bank *schema.Bank, result *schema.CheckResult) {
	if len(bank.Items) == 0 {
		result.AddError("item bank is empty")
		return
	}

	seen := make(map[int]int)
	for _, it := range bank.Items {
		seen[it.ID]++
	}
	for _, it := range bank.Items {
		if n := seen[it.ID]; n > 1 {
			result.AddError(fmt.Sprintf("duplicate item id %d used by %d items; one answer is shared across all of them", it.ID, n))
			seen[it.ID] = 1 // report each duplicate group once
		}

		if it.Domain == "" && it.SubDomain == "" {
			result.AddWarning(fmt.Sprintf("item %d has no domain or sub-domain; it only affects the overall total", it.ID))
		}
		if it.Type == string(schema.ObjectiveKind) && it.CorrectAnswer == nil {
			result.AddError(fmt.Sprintf("item %d is tagged objective but has no correct answer; it will score as likert", it.ID))
		}
		if idx, ok := correctAnswerIndex(it.Item); ok && len(it.Options) > 0 {
			if idx < 0 || idx >= len(it.Options) {
				result.AddError(fmt.Sprintf("item %d correct answer index %d is out of range for %d options", it.ID, idx, len(it.Options)))
			}
		}
		if it.Weight < 0 {
			result.AddWarning(fmt.Sprintf("item %d has negative weight %g; it is treated as 1", it.ID, it.Weight))
		}
		if it.MaxScore < 0 {
			result.AddWarning(fmt.Sprintf("item %d has negative max score %g; it is treated as 1", it.ID, it.MaxScore))
		}
	}
}

func verifyClusters(bank *schema.Bank, defs []schema.ClusterDef, result *schema.CheckResult) {
	clusterIDs := make(map[string]bool, len(defs))
	itemDomains := make(map[string]bool)
	for _, it := range bank.Items {
		if it.Domain != "" {
			itemDomains[it.Domain] = true
		}
	}

	for _, def := range defs {
		clusterIDs[def.ID] = true
		if len(def.DomainWeights) == 0 && len(def.Domains) == 0 {
			result.AddError(fmt.Sprintf("cluster %q has neither domain weights nor a domain list", def.ID))
		}
		for domain, weight := range def.DomainWeights {
			if weight < 0 {
				result.AddError(fmt.Sprintf("cluster %q has negative weight %g for domain %q", def.ID, weight, domain))
			}
			if !itemDomains[domain] {
				result.AddWarning(fmt.Sprintf("cluster %q references domain %q with no items", def.ID, domain))
			}
		}
		for _, domain := range def.Domains {
			if !itemDomains[domain] {
				result.AddWarning(fmt.Sprintf("cluster %q references domain %q with no items", def.ID, domain))
			}
		}
		for trait, weight := range def.RIASECWeights {
			if weight < 0 {
				result.AddError(fmt.Sprintf("cluster %q has negative weight %g for trait %q", def.ID, weight, trait))
			}
		}
	}

	if len(defs) == 0 {
		return
	}
	for _, it := range bank.Items {
		for _, key := range it.CareerClusters {
			if !clusterIDs[key] {
				result.AddWarning(fmt.Sprintf("item %d references unknown cluster %q; it contributes to no cluster", it.ID, key))
			}
		}
	}
}

func verifyStyleMap(bank *schema.Bank, styleMap schema.StyleMap, result *schema.CheckResult) {
	if styleMap == nil {
		return
	}
	kinds := make(map[int]schema.ItemKind, len(bank.Items))
	for _, it := range bank.Items {
		kinds[it.ID] = it.Kind
	}
	for _, channel := range schema.ChannelOrder {
		for _, id := range styleMap[channel] {
			kind, ok := kinds[id]
			if !ok {
				result.AddWarning(fmt.Sprintf("style map channel %s references unknown item %d", channel, id))
				continue
			}
			if kind == schema.ObjectiveKind {
				result.AddWarning(fmt.Sprintf("style map channel %s references objective item %d; channel means expect numeric ratings", channel, id))
			}
		}
	}
}

// correctAnswerIndex reports the correct answer as an options index when it
// is an integral number.
func correctAnswerIndex(it schema.Item) (int, bool) {
	n, ok := schema.NumericValue(it.CorrectAnswer)
	if !ok || n != float64(int(n)) {
		return 0, false
	}
	return int(n), true
}

// printCheckResult prints the check result in a concise format suitable
// for CI or operator review.
func printCheckResult(result *schema.CheckResult, totalItems int, duration time.Duration) {
	fmt.Println("Dataset Integrity Check:")
	fmt.Printf("  Items:    %d\n", totalItems)
	fmt.Printf("  Errors:   %d\n", len(result.Errors()))
	fmt.Printf("  Warnings: %d\n", len(result.Warnings()))
	fmt.Println()

	fmt.Printf("Checked dataset in %v\n\n", duration)

	if result.Passed() && len(result.Warnings()) == 0 {
		fmt.Printf("✅ Dataset passed all integrity checks\n")
		return
	}
	if result.Passed() {
		fmt.Printf("✅ Dataset passed with %d warning(s)\n\n", len(result.Warnings()))
	} else {
		fmt.Printf("❌ Integrity check failed: %d error(s), %d warning(s)\n\n", len(result.Errors()), len(result.Warnings()))
	}

	for _, issue := range result.Errors() {
		fmt.Printf("  - [%s] %s\n", issue.Severity, issue.Message)
	}
	for _, issue := range result.Warnings() {
		fmt.Printf("  - [%s] %s\n", issue.Severity, issue.Message)
	}
	fmt.Println()
}
