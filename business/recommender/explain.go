package recommender

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ashlia0420/Laptop-Recommendation/domain"
)

// buildBreakdown computes each active field's share of the 0-100 score:
// contribution = normalized * weight / totalWeight * 100. The rounded
// contributions sum approximately to the row's total score.
func buildBreakdown(row scoredLaptop, prefs domain.SoftPreferences) map[string]domain.FieldContribution {
	active := activePreferences(prefs)
	totalW := totalWeight(active)

	out := make(map[string]domain.FieldContribution, len(active))
	for _, p := range active {
		raw, _ := row.Feature(p.field)
		norm := row.normalized[p.field]

		contribution := 0.0
		if totalW > 0 {
			contribution = round1(norm * float64(p.weight) / float64(totalW) * 100)
		}

		out[p.field] = domain.FieldContribution{
			Label:        fieldLabel(p.field),
			RawValue:     raw,
			Normalized:   round4(norm),
			Weight:       p.weight,
			Contribution: contribution,
		}
	}
	return out
}

// topContributor picks the field with the single highest contribution.
// Ties go to the first maximal field in canonical order.
func topContributor(breakdown map[string]domain.FieldContribution, prefs domain.SoftPreferences) string {
	top := ""
	best := math.Inf(-1)
	for _, p := range activePreferences(prefs) {
		if d, ok := breakdown[p.field]; ok && d.Contribution > best {
			best = d.Contribution
			top = p.field
		}
	}
	return top
}

// explanation builds the one-sentence, benefit-focused summary. It never
// mentions scores or internal mechanics. With no soft preferences the
// pool was price-ranked, so the sentence is framed around budget value
// and varies by rank.
func explanation(row scoredLaptop, rank int, breakdown map[string]domain.FieldContribution, prefs domain.SoftPreferences) string {
	model := strings.TrimSpace(row.ModelName)

	if len(breakdown) == 0 {
		price := formatPrice(row.Price)
		switch rank {
		case 1:
			return fmt.Sprintf("%s meets all your requirements and offers the best value within your budget at %s.", model, price)
		case 2:
			return fmt.Sprintf("%s also meets your requirements and is a strong alternative priced at %s.", model, price)
		default:
			return fmt.Sprintf("%s fits your criteria and is available at %s, making it another option to consider.", model, price)
		}
	}

	topField := topContributor(breakdown, prefs)
	phrase, ok := benefitPhrase(topField, breakdown[topField].RawValue)

	if rank == 1 {
		if ok {
			return fmt.Sprintf("The %s is your best match — it %s, which aligns closely with your priorities.", model, phrase)
		}
		return fmt.Sprintf("The %s is your best match across all your stated priorities.", model)
	}
	if ok {
		return fmt.Sprintf("The %s is a strong option that %s, though it may not lead on every priority.", model, phrase)
	}
	return fmt.Sprintf("The %s meets your requirements and scores well on several of your stated priorities.", model)
}

// strengths lists up to three benefit sentences for the highest
// positive contributions. The CPU performance field drops the metric
// clause since a raw cores*threads index means nothing to the user.
func strengths(breakdown map[string]domain.FieldContribution, prefs domain.SoftPreferences) []string {
	fields := make([]string, 0, len(breakdown))
	for _, p := range activePreferences(prefs) {
		if _, ok := breakdown[p.field]; ok {
			fields = append(fields, p.field)
		}
	}
	sort.SliceStable(fields, func(i, j int) bool {
		return breakdown[fields[i]].Contribution > breakdown[fields[j]].Contribution
	})
	if len(fields) > 3 {
		fields = fields[:3]
	}

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		d := breakdown[f]
		if d.Contribution <= 0 {
			continue
		}
		metric := benefitMetric(f, d.RawValue)
		phrase, ok := benefitPhrase(f, d.RawValue)
		if !ok {
			out = append(out, fmt.Sprintf("%s: %s.", d.Label, metric))
			continue
		}
		if f == domain.FieldCPUPerformance {
			out = append(out, fmt.Sprintf("This laptop %s.", phrase))
		} else {
			out = append(out, fmt.Sprintf("With %s, this laptop %s.", metric, phrase))
		}
	}
	return out
}

// tradeoffs warns about fields the user marked important (weight >= 2)
// where this laptop sits in the bottom stretch of the pool
// (normalized < 0.4). Low-weight fields never warn, however weak.
func tradeoffs(breakdown map[string]domain.FieldContribution, prefs domain.SoftPreferences) []string {
	out := []string{}
	for _, p := range activePreferences(prefs) {
		d, ok := breakdown[p.field]
		if !ok {
			continue
		}
		if p.weight >= 2 && d.Normalized < 0.4 {
			metric := benefitMetric(p.field, d.RawValue)
			out = append(out, fmt.Sprintf("Heads up: with only %s, this laptop %s.", metric, fieldAdvice(p.field)))
		}
	}
	return out
}
