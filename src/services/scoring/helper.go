package scoring

import (
	"math"
	"sort"

	"Backend-SecAssess/src/models"
)

// unknownName is used when a catalog row referenced by a recorded
// response was deleted later.
const unknownName = "Unknown"

type rollup struct {
	total    int
	count    int
	domainID string // parent domain, controls only
}

// Compute aggregates one assessment's responses into dashboard stats.
// Pure function: catalog names come in as lookup maps so it can be
// tested without a database.
//
// Rollups accumulate in first-seen response order, and the strengths /
// focus-area lists come from a single stable descending sort of the
// domain averages: first two and last two respectively. With two or
// three domains the lists overlap; that matches the dashboard contract.
func Compute(responses []models.Response, domainNames, controlNames map[string]string) *models.AssessmentStats {
	stats := &models.AssessmentStats{
		DomainScores:       []models.DomainScore{},
		ControlPerformance: []models.ControlPerformance{},
	}
	if len(responses) == 0 {
		return stats
	}

	totalScore := 0
	domainOrder := []string{}
	domains := map[string]*rollup{}
	controlOrder := []string{}
	controls := map[string]*rollup{}

	for _, r := range responses {
		totalScore += r.ScoreValue

		d, ok := domains[r.DomainID]
		if !ok {
			d = &rollup{}
			domains[r.DomainID] = d
			domainOrder = append(domainOrder, r.DomainID)
		}
		d.total += r.ScoreValue
		d.count++

		c, ok := controls[r.ControlID]
		if !ok {
			c = &rollup{domainID: r.DomainID}
			controls[r.ControlID] = c
			controlOrder = append(controlOrder, r.ControlID)
		}
		c.total += r.ScoreValue
		c.count++
	}

	stats.TotalResponses = len(responses)
	stats.OverallAverage = Round2(float64(totalScore) / float64(len(responses)))
	stats.DomainsCompleted = len(domains)

	for _, id := range domainOrder {
		d := domains[id]
		stats.DomainScores = append(stats.DomainScores, models.DomainScore{
			DomainID:       id,
			DomainName:     nameOrUnknown(domainNames, id),
			AverageScore:   Round2(float64(d.total) / float64(d.count)),
			TotalQuestions: d.count,
			TotalScore:     d.total,
		})
	}

	for _, id := range controlOrder {
		c := controls[id]
		stats.ControlPerformance = append(stats.ControlPerformance, models.ControlPerformance{
			ControlID:      id,
			ControlName:    nameOrUnknown(controlNames, id),
			DomainID:       c.domainID,
			DomainName:     nameOrUnknown(domainNames, c.domainID),
			AverageScore:   Round2(float64(c.total) / float64(c.count)),
			TotalQuestions: c.count,
		})
	}

	sorted := make([]models.DomainScore, len(stats.DomainScores))
	copy(sorted, stats.DomainScores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AverageScore > sorted[j].AverageScore
	})

	if len(sorted) >= 2 {
		stats.TopStrengths = sorted[:2]
		stats.FocusAreas = sorted[len(sorted)-2:]
	} else {
		stats.TopStrengths = sorted
		stats.FocusAreas = []models.DomainScore{}
	}

	return stats
}

// Round2 rounds to two decimal places, the dashboard's precision.
// Exact halves round to the even hundredth (1/8 → 0.12, 3/8 → 0.38).
func Round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

func nameOrUnknown(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return unknownName
}
