package recommender

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ashlia0420/Laptop-Recommendation/domain"
)

// FieldOrder is the canonical iteration order for catalog fields. Soft
// preferences arrive as a JSON object, which carries no ordering, so every
// deterministic walk over active fields (breakdown construction, headline
// tie-breaks) follows this order instead.
var FieldOrder = []string{
	domain.FieldCPUPerformance,
	domain.FieldRAM,
	domain.FieldTotalStorage,
	domain.FieldSSD,
	domain.FieldScreenSize,
}

const (
	tierLow  = "low"
	tierMid  = "mid"
	tierHigh = "high"
)

type tierBound struct {
	lo, hi float64
	tier   string
}

// benefitPattern ties a catalog field to everything the explanation layer
// needs: a display label, three tiers of verb-led benefit phrasing, a
// human metric formatter, and a tradeoff advice phrase.
//
// All phrase values are verb-led so the template "this laptop {phrase}"
// always reads as a grammatical sentence.
type benefitPattern struct {
	label   string
	phrases map[string]string
	metric  func(v float64) string
	tiers   []tierBound
	advice  string
}

// The screen-size high tier deliberately tops out at the literal 99; the
// boundary values are load-bearing for classification and must not be
// swapped for an unbounded sentinel.
var benefitPatterns = map[string]benefitPattern{
	domain.FieldCPUPerformance: {
		label: "Processing performance",
		phrases: map[string]string{
			tierLow:  "handles everyday tasks like browsing and documents",
			tierMid:  "runs office apps, video calls, and light multitasking comfortably",
			tierHigh: "handles demanding workloads and heavy multitasking with ease",
		},
		metric: func(v float64) string { return fmt.Sprintf("a %d-point CPU score", int(v)) },
		tiers: []tierBound{
			{0, 30, tierLow},
			{30, 80, tierMid},
			{80, 9999, tierHigh},
		},
		advice: "may feel slow for demanding tasks or heavy multitasking",
	},
	domain.FieldRAM: {
		label: "RAM",
		phrases: map[string]string{
			tierLow:  "covers basic use with a few browser tabs open",
			tierMid:  "handles multitasking across several apps at once without slowdowns",
			tierHigh: "runs many applications simultaneously with plenty of headroom",
		},
		metric: func(v float64) string { return fmt.Sprintf("%d GB RAM", int(v)) },
		tiers: []tierBound{
			{0, 8, tierLow},
			{8, 16, tierMid},
			{16, 9999, tierHigh},
		},
		advice: "may struggle when running several apps at the same time",
	},
	domain.FieldTotalStorage: {
		label: "Total storage",
		phrases: map[string]string{
			tierLow:  "offers enough space for essential files and installed apps",
			tierMid:  "provides plenty of room for documents, photos, and a full software library",
			tierHigh: "delivers generous storage for large media libraries, projects, and backups",
		},
		metric: func(v float64) string { return fmt.Sprintf("%d GB total storage", int(v)) },
		tiers: []tierBound{
			{0, 256, tierLow},
			{256, 512, tierMid},
			{512, 9999, tierHigh},
		},
		advice: "may fill up quickly if you store large files or many apps",
	},
	domain.FieldSSD: {
		label: "SSD storage",
		phrases: map[string]string{
			tierLow:  "stays responsive for everyday tasks thanks to its SSD",
			tierMid:  "boots quickly and launches apps without noticeable delays",
			tierHigh: "delivers excellent system speed with fast, large SSD storage",
		},
		metric: func(v float64) string { return fmt.Sprintf("%d GB SSD", int(v)) },
		tiers: []tierBound{
			{0, 128, tierLow},
			{128, 512, tierMid},
			{512, 9999, tierHigh},
		},
		advice: "may result in slower boot times and app load speeds",
	},
	domain.FieldScreenSize: {
		label: "Display size",
		phrases: map[string]string{
			tierLow:  "stays compact and portable for on-the-go use",
			tierMid:  "strikes a good balance between screen space and portability",
			tierHigh: "offers a large display suited to extended work or media sessions",
		},
		metric: func(v float64) string { return fmt.Sprintf("%.1f\" display", v) },
		tiers: []tierBound{
			{0, 13.9, tierLow},
			{13.9, 15.5, tierMid},
			{15.5, 99, tierHigh},
		},
		advice: "may feel cramped for extended work sessions",
	},
}

const genericAdvice = "may not fully meet your expectations for this feature"

// benefitTier classifies a value into low/mid/high using half-open
// [lo, hi) intervals. Values beyond the top bound fall through to high.
func benefitTier(field string, value float64) string {
	pattern, ok := benefitPatterns[field]
	if !ok {
		return tierMid
	}
	for _, b := range pattern.tiers {
		if value >= b.lo && value < b.hi {
			return b.tier
		}
	}
	return tierHigh
}

// benefitPhrase returns the tiered benefit description for a field value.
func benefitPhrase(field string, value float64) (string, bool) {
	pattern, ok := benefitPatterns[field]
	if !ok {
		return "", false
	}
	return pattern.phrases[benefitTier(field, value)], true
}

// benefitMetric returns a short human value string, e.g. "16 GB RAM".
func benefitMetric(field string, value float64) string {
	pattern, ok := benefitPatterns[field]
	if !ok {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
	return pattern.metric(value)
}

// fieldLabel returns the display label, falling back to the identifier for
// fields outside the catalog.
func fieldLabel(field string) string {
	if pattern, ok := benefitPatterns[field]; ok {
		return pattern.label
	}
	return field
}

func fieldAdvice(field string) string {
	if pattern, ok := benefitPatterns[field]; ok {
		return pattern.advice
	}
	return genericAdvice
}

func isCatalogField(field string) bool {
	_, ok := benefitPatterns[field]
	return ok
}

// formatPrice renders a rounded price with thousands separators, e.g.
// "₹62,500".
func formatPrice(v float64) string {
	n := int64(math.Round(v))
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return "₹" + s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return "₹" + b.String()
}
