package recommender

import (
	"github.com/ashlia0420/Laptop-Recommendation/domain"
)

// laptop builds a catalog record with derived fields filled in, the way
// the ingestion layer would hand them over.
func laptop(brand, model string, price float64, os string, ram, ssd, hdd, screen float64, cores, threads int) domain.Laptop {
	return domain.Laptop{
		Brand:           brand,
		ModelName:       model,
		Price:           price,
		OperatingSystem: os,
		ProcessorName:   "test-cpu",
		RAMGB:           ram,
		SSDGB:           ssd,
		HDDGB:           hdd,
		TotalStorageGB:  ssd + hdd,
		ScreenSize:      screen,
		Cores:           cores,
		Threads:         threads,
		CPUPerformance:  float64(cores * threads),
	}
}

// threeTierCatalog is a small pool with clear spread on every field.
func threeTierCatalog() []domain.Laptop {
	return []domain.Laptop{
		laptop("Acme", "Entry 14", 40000, "Windows 11", 8, 256, 0, 14.0, 4, 8),
		laptop("Acme", "Mid 15", 60000, "windows 10 home", 16, 512, 0, 15.6, 6, 12),
		laptop("Pear", "Air 13", 90000, "macOS", 16, 512, 0, 13.3, 8, 8),
	}
}
