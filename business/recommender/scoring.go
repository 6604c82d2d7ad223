package recommender

import (
	"github.com/ashlia0420/Laptop-Recommendation/domain"
)

// scoreRows computes the composite score [0,100] for every row, rounded
// to one decimal place.
//
// Weighted mode: score = sum(normalized_i * w_i) / sum(w_i) * 100.
// When no soft preference is active the pool is scored by inverted price
// instead, so the cheapest filtered laptop lands near 100 and the most
// expensive near 0. A flat price pool scores exactly 50.0 everywhere.
func scoreRows(rows []scoredLaptop, prefs domain.SoftPreferences) {
	active := activePreferences(prefs)
	totalW := totalWeight(active)

	if len(active) == 0 || totalW == 0 {
		scoreByPrice(rows)
		return
	}

	for i := range rows {
		sum := 0.0
		for _, p := range active {
			sum += rows[i].normalized[p.field] * float64(p.weight)
		}
		rows[i].score = round1(sum / float64(totalW) * 100)
	}
}

func scoreByPrice(rows []scoredLaptop) {
	if len(rows) == 0 {
		return
	}
	lo, hi := rows[0].Price, rows[0].Price
	for _, r := range rows[1:] {
		if r.Price < lo {
			lo = r.Price
		}
		if r.Price > hi {
			hi = r.Price
		}
	}
	rng := hi - lo
	for i := range rows {
		if rng > 0 {
			rows[i].score = round1((1 - (rows[i].Price-lo)/rng) * 100)
		} else {
			rows[i].score = 50.0
		}
	}
}
