package domain

import (
	"strconv"
	"strings"
)

// CREATE TABLE public.laptops (
//     id               BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     brand            TEXT,
//     model_name       TEXT,
//     price            NUMERIC,
//     operating_system TEXT,
//     processor_name   TEXT,
//     ram_gb           NUMERIC,
//     ssd_gb           NUMERIC,
//     hdd_gb           NUMERIC,
//     total_storage_gb NUMERIC,
//     screen_size      NUMERIC,
//     no_of_cores      INTEGER,
//     no_of_threads    INTEGER,
//     cpu_performance  NUMERIC
// );

// Laptop is one catalog record. total_storage_gb and cpu_performance are
// derived during ingestion (ssd+hdd and cores*threads), never recomputed
// by the pipeline.
type Laptop struct {
	ID              uint64  `gorm:"primaryKey;autoIncrement" json:"-"`
	Brand           string  `gorm:"column:brand;type:text" json:"brand"`
	ModelName       string  `gorm:"column:model_name;type:text" json:"model"`
	Price           float64 `gorm:"column:price;type:numeric" json:"price"`
	OperatingSystem string  `gorm:"column:operating_system;type:text" json:"os"`
	ProcessorName   string  `gorm:"column:processor_name;type:text" json:"processor"`
	RAMGB           float64 `gorm:"column:ram_gb;type:numeric" json:"ram_gb"`
	SSDGB           float64 `gorm:"column:ssd_gb;type:numeric" json:"ssd_gb"`
	HDDGB           float64 `gorm:"column:hdd_gb;type:numeric" json:"hdd_gb"`
	TotalStorageGB  float64 `gorm:"column:total_storage_gb;type:numeric" json:"total_storage_gb"`
	ScreenSize      float64 `gorm:"column:screen_size;type:numeric" json:"screen_size"`
	Cores           int     `gorm:"column:no_of_cores" json:"-"`
	Threads         int     `gorm:"column:no_of_threads" json:"-"`
	CPUPerformance  float64 `gorm:"column:cpu_performance;type:numeric" json:"-"`
}

func (Laptop) TableName() string {
	return "laptops"
}

// Soft-preference field identifiers. These are the wire keys the frontend
// sends, kept verbatim so request payloads stay compatible with the
// dataset column names.
const (
	FieldCPUPerformance = "cpu_performance"
	FieldRAM            = "ram(GB)"
	FieldTotalStorage   = "total_storage_GB"
	FieldSSD            = "ssd(GB)"
	FieldScreenSize     = "screen_size(inches)"
)

// Feature returns the laptop's raw value for a soft-preference field.
// The second return is false for identifiers outside the catalog.
func (l Laptop) Feature(field string) (float64, bool) {
	switch field {
	case FieldCPUPerformance:
		return l.CPUPerformance, true
	case FieldRAM:
		return l.RAMGB, true
	case FieldTotalStorage:
		return l.TotalStorageGB, true
	case FieldSSD:
		return l.SSDGB, true
	case FieldScreenSize:
		return l.ScreenSize, true
	default:
		return 0, false
	}
}

// HardConstraints is the loosely-typed constraint payload. Recognized keys:
// budget, os, min_ram, min_storage. Anything else is ignored; malformed
// values are treated as "constraint not applied".
type HardConstraints map[string]any

// Number coerces a constraint value to float64. Garbage (wrong type,
// unparseable string) yields 0, which every consumer reads as inactive.
func (c HardConstraints) Number(key string) float64 {
	switch v := c[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// String coerces a constraint value to a trimmed string, empty when absent
// or not string-like.
func (c HardConstraints) String(key string) string {
	switch v := c[key].(type) {
	case string:
		return strings.TrimSpace(v)
	default:
		return ""
	}
}

// SoftPreferences maps a field identifier to an integer weight. Weights
// carry only relative meaning; anything <= 0 deactivates the field.
type SoftPreferences map[string]int

// FieldContribution is one row of the per-result score breakdown.
type FieldContribution struct {
	Label        string  `json:"label"`
	RawValue     float64 `json:"raw_value"`
	Normalized   float64 `json:"normalized"`
	Weight       int     `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// Recommendation is the externally visible result record. Built once per
// response and never mutated afterwards.
type Recommendation struct {
	Rank             int                          `json:"rank"`
	RankLabel        string                       `json:"rank_label"`
	Brand            string                       `json:"brand"`
	Model            string                       `json:"model"`
	Price            float64                      `json:"price"`
	OS               string                       `json:"os"`
	Processor        string                       `json:"processor"`
	RAMGB            float64                      `json:"ram_gb"`
	SSDGB            float64                      `json:"ssd_gb"`
	HDDGB            float64                      `json:"hdd_gb"`
	TotalStorageGB   float64                      `json:"total_storage_gb"`
	ScreenSize       float64                      `json:"screen_size"`
	Score            float64                      `json:"score"`
	Explanation      string                       `json:"explanation"`
	Strengths        []string                     `json:"strengths"`
	Tradeoffs        []string                     `json:"tradeoffs"`
	FeatureBreakdown map[string]FieldContribution `json:"feature_breakdown"`
}
