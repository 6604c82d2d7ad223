package recommender

import (
	"math"
	"sort"

	"github.com/ashlia0420/Laptop-Recommendation/domain"
)

// scoredLaptop is the pipeline's working row: a borrowed catalog record
// plus the per-request normalized values and composite score. Scratch
// state lives here so the shared catalog is never mutated.
type scoredLaptop struct {
	domain.Laptop
	normalized map[string]float64
	score      float64
}

// activePref is one positively-weighted soft preference.
type activePref struct {
	field  string
	weight int
}

// activePreferences lists the positively-weighted fields in deterministic
// order: catalog fields first in FieldOrder, then any unrecognized keys
// the caller sent, alphabetically. Unrecognized fields never normalize or
// contribute, but they still dilute the score through the weight total.
func activePreferences(prefs domain.SoftPreferences) []activePref {
	out := make([]activePref, 0, len(prefs))
	for _, f := range FieldOrder {
		if prefs[f] > 0 {
			out = append(out, activePref{field: f, weight: prefs[f]})
		}
	}
	var extra []string
	for f, w := range prefs {
		if w > 0 && !isCatalogField(f) {
			extra = append(extra, f)
		}
	}
	sort.Strings(extra)
	for _, f := range extra {
		out = append(out, activePref{field: f, weight: prefs[f]})
	}
	return out
}

func totalWeight(active []activePref) int {
	sum := 0
	for _, p := range active {
		sum += p.weight
	}
	return sum
}

// normalizeRows min-max rescales each active catalog field to [0,1] over
// the filtered pool only. A zero range (including the single-row pool)
// yields 0.0 for every row: the field carries no discriminating
// information for this request. Fields with weight <= 0 or outside the
// record schema produce no normalized value at all.
func normalizeRows(pool []domain.Laptop, prefs domain.SoftPreferences) []scoredLaptop {
	rows := make([]scoredLaptop, len(pool))
	for i, l := range pool {
		rows[i] = scoredLaptop{Laptop: l, normalized: make(map[string]float64)}
	}

	for _, p := range activePreferences(prefs) {
		if !isCatalogField(p.field) {
			continue
		}
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := range rows {
			v, _ := rows[i].Feature(p.field)
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		rng := hi - lo
		for i := range rows {
			if rng == 0 {
				rows[i].normalized[p.field] = 0.0
				continue
			}
			v, _ := rows[i].Feature(p.field)
			rows[i].normalized[p.field] = clip((v-lo)/rng, 0.0, 1.0)
		}
	}
	return rows
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
