package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ashlia0420/Laptop-Recommendation/domain"

	"github.com/labstack/echo/v4"
)

type fakeRecommender struct {
	size    int
	results []domain.Recommendation
	err     error

	gotConstraints domain.HardConstraints
	gotPrefs       domain.SoftPreferences
}

func (f *fakeRecommender) Recommend(_ context.Context, c domain.HardConstraints, p domain.SoftPreferences) ([]domain.Recommendation, error) {
	f.gotConstraints = c
	f.gotPrefs = p
	return f.results, f.err
}

func (f *fakeRecommender) Size() int { return f.size }

func doRecommend(t *testing.T, svc RecommenderService, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommend", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewRecommendHandler(svc)
	if err := h.Recommend(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestRecommend_MissingBudgetRejected(t *testing.T) {
	svc := &fakeRecommender{size: 3}

	cases := []string{
		`{"hard_constraints": {}, "soft_preferences": {}}`,
		`{"hard_constraints": {"budget": 0}, "soft_preferences": {}}`,
		`{"hard_constraints": {"budget": -100}, "soft_preferences": {}}`,
		`{"hard_constraints": {"budget": "junk"}, "soft_preferences": {}}`,
	}
	for _, body := range cases {
		rec := doRecommend(t, svc, body)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("body %s: expected 422, got %d", body, rec.Code)
		}
	}
}

func TestRecommend_EmptyDatasetUnavailable(t *testing.T) {
	svc := &fakeRecommender{size: 0}
	rec := doRecommend(t, svc, `{"hard_constraints": {"budget": 50000}}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestRecommend_Success(t *testing.T) {
	svc := &fakeRecommender{
		size: 3,
		results: []domain.Recommendation{
			{Rank: 1, RankLabel: "Best match", Model: "Vivobook 15", Score: 87.5},
		},
	}
	rec := doRecommend(t, svc, `{"hard_constraints": {"budget": 70000, "os": "Windows"}, "soft_preferences": {"ram(GB)": 3}}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Vivobook 15") {
		t.Errorf("response missing result payload: %s", rec.Body.String())
	}
	if svc.gotConstraints.Number("budget") != 70000 {
		t.Errorf("constraints not forwarded: %v", svc.gotConstraints)
	}
	if svc.gotPrefs[domain.FieldRAM] != 3 {
		t.Errorf("preferences not forwarded: %v", svc.gotPrefs)
	}
}

func TestRecommend_EmptyResultsStillOK(t *testing.T) {
	svc := &fakeRecommender{size: 3, results: []domain.Recommendation{}}
	rec := doRecommend(t, svc, `{"hard_constraints": {"budget": 1000}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("empty result list must be 200, got %d", rec.Code)
	}
}

func TestRecommend_MalformedBodyRejected(t *testing.T) {
	svc := &fakeRecommender{size: 3}
	rec := doRecommend(t, svc, `{"hard_constraints": not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
