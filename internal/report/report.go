package report

import (
	"log"

	"github.com/ThiagoRGoveia/penguin-stats/internal/models"
	"github.com/ThiagoRGoveia/penguin-stats/internal/stats"
)

// PrintRecords dumps every loaded record, one per line, labelled with its row checksum.
func PrintRecords(logger *log.Logger, records []models.Record) {
	logger.Printf(">>> Rows loaded: %d", len(records))
	for _, record := range records {
		logger.Printf("%s %s", record.CheckSum, record)
	}
}

// PrintSummary writes the five summary lines. fmt sorts map keys, so the
// species line is stable between runs.
func PrintSummary(logger *log.Logger, summary stats.Summary) {
	logger.Printf(">>> Avg body mass with valid flipper data: %v", summary.AverageBodyMassBySpecies)
	logger.Printf(">>> Avg bill length for body mass > %dg and above the minimum bill depth of %.1fmm: %.3f mm",
		stats.HeavyDeepMinMassG, stats.HeavyDeepMinBillDepthMM, summary.HeavyDeepBillAverageLength)
	logger.Printf(">>> Penguins in top 25%% body mass AND bill length > %.0fmm: %d",
		stats.LongBillMinLengthMM, summary.UpperQuartileLongBillCount)
	logger.Printf(">>> Total penguins with body mass > %dg: %d", stats.HeavyMassThresholdG, summary.HeavyMassCount)
	logger.Printf(">>> Total %s penguins with body mass > %dg: %d",
		stats.GentooSpecies, stats.HeavyMassThresholdG, summary.HeavyGentooCount)
}
