package recommender

import (
	"strings"

	"github.com/ashlia0420/Laptop-Recommendation/domain"
)

// applyHardConstraints returns the laptops that satisfy every active
// constraint, preserving catalog order. A constraint is active only when
// its value is present and positive (budget, min_ram, min_storage) or a
// non-empty string other than "any" (os). All active rules are combined
// with AND; an empty result is a valid outcome, not an error.
func applyHardConstraints(pool []domain.Laptop, c domain.HardConstraints) []domain.Laptop {
	budget := c.Number("budget")
	minRAM := c.Number("min_ram")
	minStorage := c.Number("min_storage")

	osPref := strings.ToLower(c.String("os"))
	if osPref == "any" {
		osPref = ""
	}

	out := make([]domain.Laptop, 0, len(pool))
	for _, l := range pool {
		if budget > 0 && l.Price > budget {
			continue
		}
		if osPref != "" && !strings.Contains(strings.ToLower(l.OperatingSystem), osPref) {
			continue
		}
		if minRAM > 0 && l.RAMGB < minRAM {
			continue
		}
		if minStorage > 0 && l.TotalStorageGB < minStorage {
			continue
		}
		out = append(out, l)
	}
	return out
}
