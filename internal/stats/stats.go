package stats

import (
	"math"
	"sort"

	"github.com/ThiagoRGoveia/penguin-stats/internal/models"
	"gonum.org/v1/gonum/stat"
)

const (
	HeavyDeepMinMassG       = 3500
	HeavyDeepMinBillDepthMM = 17.0
	LongBillMinLengthMM     = 42.0
	UpperQuartileFraction   = 0.75
	HeavyMassThresholdG     = 4000
	GentooSpecies           = "Gentoo"
)

// Summary holds the five statistics for one dataset.
type Summary struct {
	AverageBodyMassBySpecies   map[string]float64
	HeavyDeepBillAverageLength float64
	UpperQuartileLongBillCount int
	HeavyMassCount             int
	HeavyGentooCount           int
}

// Summarize runs every aggregation over the same records.
func Summarize(records []models.Record) Summary {
	return Summary{
		AverageBodyMassBySpecies:   AverageBodyMassBySpecies(records),
		HeavyDeepBillAverageLength: HeavyDeepBillAverageLength(records),
		UpperQuartileLongBillCount: UpperQuartileLongBillCount(records),
		HeavyMassCount:             HeavyMassCount(records),
		HeavyGentooCount:           HeavyGentooCount(records),
	}
}

type massTotal struct {
	sum   int64
	count int
}

// AverageBodyMassBySpecies averages body mass per species over records that
// have both a body mass and a flipper length.
func AverageBodyMassBySpecies(records []models.Record) map[string]float64 {
	totals := make(map[string]*massTotal)
	for _, r := range records {
		mass, ok := r.BodyMassG.Get()
		if !ok || !r.FlipperLengthMM.IsPresent() {
			continue
		}

		total, exists := totals[r.Species]
		if !exists {
			total = &massTotal{}
			totals[r.Species] = total
		}
		total.sum += mass
		total.count++
	}

	averages := make(map[string]float64, len(totals))
	for species, total := range totals {
		if total.count == 0 {
			averages[species] = 0
			continue
		}
		averages[species] = float64(total.sum) / float64(total.count)
	}
	return averages
}

// HeavyDeepBillAverageLength is the mean bill length of penguins heavier than
// 3500g with a bill depth of at least 17mm. It is 0 when nothing matches.
func HeavyDeepBillAverageLength(records []models.Record) float64 {
	var lengths []float64
	for _, r := range records {
		mass, ok := r.BodyMassG.Get()
		if !ok || mass <= HeavyDeepMinMassG {
			continue
		}
		length, ok := r.BillLengthMM.Get()
		if !ok {
			continue
		}
		depth, ok := r.BillDepthMM.Get()
		if !ok || depth < HeavyDeepMinBillDepthMM {
			continue
		}
		lengths = append(lengths, length)
	}

	if len(lengths) == 0 {
		return 0
	}
	return stat.Mean(lengths, nil)
}

// UpperQuartileCutoff picks the mass at index floor(0.75*N)-1 of the sorted
// masses, clamped to 0. masses is not modified.
func UpperQuartileCutoff(masses []int64) (int64, bool) {
	if len(masses) == 0 {
		return 0, false
	}

	sorted := make([]int64, len(masses))
	copy(sorted, masses)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	index := int(math.Floor(UpperQuartileFraction*float64(len(sorted)))) - 1
	if index < 0 {
		index = 0
	}
	return sorted[index], true
}

// UpperQuartileLongBillCount counts penguins at or above the upper quartile
// mass cutoff whose bill is longer than 42mm.
func UpperQuartileLongBillCount(records []models.Record) int {
	var masses []int64
	for _, r := range records {
		if mass, ok := r.BodyMassG.Get(); ok {
			masses = append(masses, mass)
		}
	}

	cutoff, ok := UpperQuartileCutoff(masses)
	if !ok {
		return 0
	}

	count := 0
	for _, r := range records {
		mass, ok := r.BodyMassG.Get()
		if !ok || mass < cutoff {
			continue
		}
		if length, ok := r.BillLengthMM.Get(); ok && length > LongBillMinLengthMM {
			count++
		}
	}
	return count
}

// HeavyMassCount counts penguins heavier than 4000g.
func HeavyMassCount(records []models.Record) int {
	count := 0
	for _, r := range records {
		if isHeavy(r) {
			count++
		}
	}
	return count
}

// HeavyGentooCount counts Gentoo penguins heavier than 4000g.
func HeavyGentooCount(records []models.Record) int {
	count := 0
	for _, r := range records {
		if r.Species == GentooSpecies && isHeavy(r) {
			count++
		}
	}
	return count
}

func isHeavy(r models.Record) bool {
	mass, ok := r.BodyMassG.Get()
	return ok && mass > HeavyMassThresholdG
}
