// Package recommender implements the laptop recommendation pipeline:
// hard-constraint filtering, min-max normalization over the filtered pool,
// weighted scoring with a price fallback, bounded ranking, and rule-based
// explanation generation. The pipeline is deterministic and stateless per
// call; the catalog snapshot it holds is read-only.
package recommender

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ashlia0420/Laptop-Recommendation/domain"
)

type Service struct {
	catalog []domain.Laptop
	topN    int
}

// NewService wraps an immutable catalog snapshot. The caller owns loading
// and must hand over a fully-typed, derived-field-complete record set
// before the first request. topN <= 0 selects the default bound.
func NewService(catalog []domain.Laptop, topN int) *Service {
	if topN <= 0 {
		topN = TopN
	}
	return &Service{catalog: catalog, topN: topN}
}

// Size reports how many laptops the snapshot holds.
func (s *Service) Size() int {
	return len(s.catalog)
}

// Recommend runs the full pipeline and returns up to topN results in rank
// order. An empty slice means no laptop survived the hard constraints;
// that is a normal outcome. Errors surface only for contract violations
// (missing catalog, dead context), never for malformed constraint values.
func (s *Service) Recommend(
	ctx context.Context,
	constraints domain.HardConstraints,
	prefs domain.SoftPreferences,
) ([]domain.Recommendation, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if s.catalog == nil {
		return nil, errors.New("laptop catalog is not loaded")
	}

	filtered := applyHardConstraints(s.catalog, constraints)
	if len(filtered) == 0 {
		return []domain.Recommendation{}, nil
	}

	rows := normalizeRows(filtered, prefs)
	scoreRows(rows, prefs)
	ranked := rankRows(rows, s.topN)

	results := make([]domain.Recommendation, 0, len(ranked))
	for i, row := range ranked {
		rank := i + 1
		breakdown := buildBreakdown(row, prefs)

		results = append(results, domain.Recommendation{
			Rank:             rank,
			RankLabel:        rankLabel(rank),
			Brand:            strings.TrimSpace(row.Brand),
			Model:            strings.TrimSpace(row.ModelName),
			Price:            row.Price,
			OS:               strings.TrimSpace(row.OperatingSystem),
			Processor:        strings.TrimSpace(row.ProcessorName),
			RAMGB:            row.RAMGB,
			SSDGB:            row.SSDGB,
			HDDGB:            row.HDDGB,
			TotalStorageGB:   row.TotalStorageGB,
			ScreenSize:       row.ScreenSize,
			Score:            row.score,
			Explanation:      explanation(row, rank, breakdown, prefs),
			Strengths:        strengths(breakdown, prefs),
			Tradeoffs:        tradeoffs(breakdown, prefs),
			FeatureBreakdown: breakdown,
		})
	}
	return results, nil
}
