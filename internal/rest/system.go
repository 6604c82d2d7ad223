package rest

import (
	"net/http"
	"sort"

	"github.com/ashlia0420/Laptop-Recommendation/domain"

	"github.com/labstack/echo/v4"
)

// SystemHandler serves the health probe and the dataset debug snapshot.
// It reads the same immutable catalog snapshot the pipeline uses.
type SystemHandler struct {
	catalog []domain.Laptop
}

func NewSystemHandler(catalog []domain.Laptop) *SystemHandler {
	return &SystemHandler{catalog: catalog}
}

func (h *SystemHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":            "ok",
		"dataset_loaded":    len(h.catalog) > 0,
		"laptops_available": len(h.catalog),
	})
}

// Debug returns a snapshot of the loaded dataset so parsed prices, RAM
// and storage can be eyeballed without attaching a debugger.
func (h *SystemHandler) Debug(c echo.Context) error {
	if len(h.catalog) == 0 {
		return c.JSON(http.StatusOK, map[string]string{"error": "dataset not loaded"})
	}

	priceMin, priceMax := h.catalog[0].Price, h.catalog[0].Price
	ramSet := map[float64]struct{}{}
	osSeen := map[string]struct{}{}
	var osValues []string

	for _, l := range h.catalog {
		if l.Price < priceMin {
			priceMin = l.Price
		}
		if l.Price > priceMax {
			priceMax = l.Price
		}
		ramSet[l.RAMGB] = struct{}{}
		if _, ok := osSeen[l.OperatingSystem]; !ok && l.OperatingSystem != "" && len(osValues) < 10 {
			osSeen[l.OperatingSystem] = struct{}{}
			osValues = append(osValues, l.OperatingSystem)
		}
	}

	ramValues := make([]float64, 0, len(ramSet))
	for v := range ramSet {
		ramValues = append(ramValues, v)
	}
	sort.Float64s(ramValues)

	sample := h.catalog
	if len(sample) > 10 {
		sample = sample[:10]
	}

	return c.JSON(http.StatusOK, map[string]any{
		"total_rows": len(h.catalog),
		"price_min":  priceMin,
		"price_max":  priceMax,
		"ram_values": ramValues,
		"os_values":  osValues,
		"sample":     sample,
	})
}
