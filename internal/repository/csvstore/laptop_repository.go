// Package csvstore loads the laptop catalog from the cleaned CSV export.
// It owns all ingestion concerns the pipeline refuses to: numeric
// coercion, row dropping, and derived fields.
package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/ashlia0420/Laptop-Recommendation/domain"
)

var requiredColumns = []string{
	"model_name", "brand", "processor_name",
	"ram(GB)", "ssd(GB)", "Hard Disk(GB)",
	"Operating System", "graphics",
	"screen_size(inches)", "resolution (pixels)",
	"no_of_cores", "no_of_threads", "price",
}

// currency symbols and thousands separators stripped before coercion
var numericJunk = regexp.MustCompile(`[₹$£€,\s]`)

type LaptopRepository struct {
	path string
}

func NewLaptopRepository(path string) *LaptopRepository {
	return &LaptopRepository{path: path}
}

// FindAll reads the whole catalog. A missing file or a missing required
// column is a contract violation and fails the load; individual rows with
// an unparseable price or RAM are dropped, and the remaining numeric
// blanks are filled with 0 before deriving total storage and the CPU
// performance index.
func (r *LaptopRepository) FindAll(ctx context.Context) ([]domain.Laptop, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", r.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", r.path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s has no header row", r.path)
	}

	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset %s missing required columns: %v", r.path, missing)
	}

	laptops := make([]domain.Laptop, 0, len(records)-1)
	for _, rec := range records[1:] {
		cell := func(col string) string {
			i := index[col]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		price, priceOK := cleanNumeric(cell("price"))
		ram, ramOK := cleanNumeric(cell("ram(GB)"))
		if !priceOK || !ramOK {
			continue
		}

		ssd, _ := cleanNumeric(cell("ssd(GB)"))
		hdd, _ := cleanNumeric(cell("Hard Disk(GB)"))
		screen, _ := cleanNumeric(cell("screen_size(inches)"))
		cores, _ := cleanNumeric(cell("no_of_cores"))
		threads, _ := cleanNumeric(cell("no_of_threads"))

		laptops = append(laptops, domain.Laptop{
			Brand:           cell("brand"),
			ModelName:       cell("model_name"),
			Price:           price,
			OperatingSystem: cell("Operating System"),
			ProcessorName:   cell("processor_name"),
			RAMGB:           ram,
			SSDGB:           ssd,
			HDDGB:           hdd,
			TotalStorageGB:  ssd + hdd,
			ScreenSize:      screen,
			Cores:           int(cores),
			Threads:         int(threads),
			CPUPerformance:  cores * threads,
		})
	}

	return laptops, nil
}

// cleanNumeric strips currency symbols, thousands separators and
// whitespace, then parses the remainder. The second return is false for
// values that still do not parse; callers decide whether that drops the
// row or defaults to 0.
func cleanNumeric(s string) (float64, bool) {
	cleaned := numericJunk.ReplaceAllString(s, "")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
