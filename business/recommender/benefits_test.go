package recommender

import (
	"testing"

	"github.com/ashlia0420/Laptop-Recommendation/domain"
)

func TestBenefitTier_HalfOpenBoundaries(t *testing.T) {
	cases := []struct {
		field string
		value float64
		want  string
	}{
		{domain.FieldRAM, 0, tierLow},
		{domain.FieldRAM, 7.99, tierLow},
		{domain.FieldRAM, 8, tierMid},
		{domain.FieldRAM, 15.99, tierMid},
		{domain.FieldRAM, 16, tierHigh},
		{domain.FieldRAM, 128, tierHigh},

		{domain.FieldCPUPerformance, 29, tierLow},
		{domain.FieldCPUPerformance, 30, tierMid},
		{domain.FieldCPUPerformance, 80, tierHigh},

		{domain.FieldTotalStorage, 255, tierLow},
		{domain.FieldTotalStorage, 256, tierMid},
		{domain.FieldTotalStorage, 512, tierHigh},

		{domain.FieldSSD, 127, tierLow},
		{domain.FieldSSD, 128, tierMid},
		{domain.FieldSSD, 512, tierHigh},

		{domain.FieldScreenSize, 13.3, tierLow},
		{domain.FieldScreenSize, 13.9, tierMid},
		{domain.FieldScreenSize, 15.5, tierHigh},
		// Beyond the literal 99 upper bound the value still reads as high.
		{domain.FieldScreenSize, 120, tierHigh},
	}
	for _, c := range cases {
		if got := benefitTier(c.field, c.value); got != c.want {
			t.Errorf("%s=%v: expected %s, got %s", c.field, c.value, c.want, got)
		}
	}
}

func TestBenefitTier_UnknownFieldDefaultsToMid(t *testing.T) {
	if got := benefitTier("battery_hours", 10); got != tierMid {
		t.Errorf("expected mid for unknown field, got %s", got)
	}
}

func TestBenefitMetric_Formatting(t *testing.T) {
	cases := []struct {
		field string
		value float64
		want  string
	}{
		{domain.FieldRAM, 16, "16 GB RAM"},
		{domain.FieldSSD, 512, "512 GB SSD"},
		{domain.FieldTotalStorage, 1024, "1024 GB total storage"},
		{domain.FieldCPUPerformance, 96, "a 96-point CPU score"},
		{domain.FieldScreenSize, 15.6, "15.6\" display"},
	}
	for _, c := range cases {
		if got := benefitMetric(c.field, c.value); got != c.want {
			t.Errorf("%s=%v: expected %q, got %q", c.field, c.value, c.want, got)
		}
	}
}

func TestBenefitPhrase_VerbLed(t *testing.T) {
	phrase, ok := benefitPhrase(domain.FieldRAM, 32)
	if !ok {
		t.Fatal("expected a phrase for RAM")
	}
	if phrase != "runs many applications simultaneously with plenty of headroom" {
		t.Errorf("unexpected high-tier RAM phrase: %q", phrase)
	}

	if _, ok := benefitPhrase("battery_hours", 10); ok {
		t.Error("unknown field must not produce a phrase")
	}
}

func TestFieldLabel(t *testing.T) {
	if got := fieldLabel(domain.FieldCPUPerformance); got != "Processing performance" {
		t.Errorf("unexpected label: %q", got)
	}
	if got := fieldLabel("battery_hours"); got != "battery_hours" {
		t.Errorf("unknown field label should fall back to the identifier, got %q", got)
	}
}

func TestFormatPrice(t *testing.T) {
	cases := map[float64]string{
		0:       "₹0",
		999:     "₹999",
		1000:    "₹1,000",
		40000:   "₹40,000",
		62500.4: "₹62,500",
		1234567: "₹1,234,567",
	}
	for v, want := range cases {
		if got := formatPrice(v); got != want {
			t.Errorf("formatPrice(%v): expected %q, got %q", v, want, got)
		}
	}
}
