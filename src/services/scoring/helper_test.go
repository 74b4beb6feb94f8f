package scoring

import (
	"encoding/json"
	"testing"

	"Backend-SecAssess/src/models"

	"github.com/stretchr/testify/assert"
)

func response(domainID, controlID string, score int) models.Response {
	return models.Response{
		DomainID:   domainID,
		ControlID:  controlID,
		ScoreValue: score,
	}
}

func TestComputeOverallAverage(t *testing.T) {
	responses := []models.Response{
		response("d1", "c1", 2),
		response("d1", "c1", 3),
		response("d2", "c2", 5),
	}

	stats := Compute(responses, map[string]string{"d1": "Governance", "d2": "Access Control"}, map[string]string{"c1": "Policies", "c2": "MFA"})

	assert.Equal(t, 3, stats.TotalResponses)
	assert.Equal(t, 3.33, stats.OverallAverage)
	assert.Equal(t, 2, stats.DomainsCompleted)
}

func TestComputeDomainScores(t *testing.T) {
	responses := []models.Response{
		response("d1", "c1", 4),
		response("d1", "c2", 2),
		response("d2", "c3", 5),
	}
	domainNames := map[string]string{"d1": "Governance", "d2": "Data Protection"}
	controlNames := map[string]string{"c1": "Policies", "c2": "Risk", "c3": "Encryption"}

	stats := Compute(responses, domainNames, controlNames)

	assert.Len(t, stats.DomainScores, 2)

	first := stats.DomainScores[0]
	assert.Equal(t, "d1", first.DomainID)
	assert.Equal(t, "Governance", first.DomainName)
	assert.Equal(t, 3.0, first.AverageScore)
	assert.Equal(t, 2, first.TotalQuestions)
	assert.Equal(t, 6, first.TotalScore)

	second := stats.DomainScores[1]
	assert.Equal(t, "d2", second.DomainID)
	assert.Equal(t, 5.0, second.AverageScore)
	assert.Equal(t, 1, second.TotalQuestions)
}

func TestComputeControlPerformanceCarriesDomain(t *testing.T) {
	responses := []models.Response{
		response("d1", "c1", 1),
		response("d1", "c1", 3),
	}

	stats := Compute(responses, map[string]string{"d1": "Governance"}, map[string]string{"c1": "Policies"})

	assert.Len(t, stats.ControlPerformance, 1)
	perf := stats.ControlPerformance[0]
	assert.Equal(t, "c1", perf.ControlID)
	assert.Equal(t, "Policies", perf.ControlName)
	assert.Equal(t, "d1", perf.DomainID)
	assert.Equal(t, "Governance", perf.DomainName)
	assert.Equal(t, 2.0, perf.AverageScore)
	assert.Equal(t, 2, perf.TotalQuestions)
}

func TestComputeUnknownCatalogNames(t *testing.T) {
	responses := []models.Response{response("gone", "gone-too", 3)}

	stats := Compute(responses, map[string]string{}, map[string]string{})

	assert.Equal(t, "Unknown", stats.DomainScores[0].DomainName)
	assert.Equal(t, "Unknown", stats.ControlPerformance[0].ControlName)
	assert.Equal(t, "Unknown", stats.ControlPerformance[0].DomainName)
}

func TestComputeStrengthsAndFocusAreas(t *testing.T) {
	responses := []models.Response{
		response("d1", "c1", 1),
		response("d2", "c2", 5),
		response("d3", "c3", 3),
		response("d4", "c4", 4),
	}
	names := map[string]string{"d1": "A", "d2": "B", "d3": "C", "d4": "D"}

	stats := Compute(responses, names, map[string]string{})

	assert.Len(t, stats.TopStrengths, 2)
	assert.Equal(t, "d2", stats.TopStrengths[0].DomainID)
	assert.Equal(t, "d4", stats.TopStrengths[1].DomainID)

	assert.Len(t, stats.FocusAreas, 2)
	assert.Equal(t, "d3", stats.FocusAreas[0].DomainID)
	assert.Equal(t, "d1", stats.FocusAreas[1].DomainID)
}

func TestComputeStrengthsOverlapWithTwoDomains(t *testing.T) {
	responses := []models.Response{
		response("d1", "c1", 2),
		response("d2", "c2", 4),
	}

	stats := Compute(responses, map[string]string{}, map[string]string{})

	// With exactly two domains the two lists contain the same entries.
	assert.Len(t, stats.TopStrengths, 2)
	assert.Len(t, stats.FocusAreas, 2)
	assert.Equal(t, stats.TopStrengths, stats.FocusAreas)
}

func TestComputeSingleDomain(t *testing.T) {
	responses := []models.Response{response("d1", "c1", 3)}

	stats := Compute(responses, map[string]string{}, map[string]string{})

	assert.Len(t, stats.TopStrengths, 1)
	assert.Empty(t, stats.FocusAreas)
}

func TestComputeTieKeepsFirstSeenOrder(t *testing.T) {
	responses := []models.Response{
		response("d1", "c1", 3),
		response("d2", "c2", 3),
		response("d3", "c3", 3),
	}

	stats := Compute(responses, map[string]string{}, map[string]string{})

	// Stable sort: equal averages keep response order.
	assert.Equal(t, "d1", stats.TopStrengths[0].DomainID)
	assert.Equal(t, "d2", stats.TopStrengths[1].DomainID)
	assert.Equal(t, "d2", stats.FocusAreas[0].DomainID)
	assert.Equal(t, "d3", stats.FocusAreas[1].DomainID)
}

func TestComputeEmptyResponses(t *testing.T) {
	stats := Compute(nil, nil, nil)

	assert.Equal(t, 0, stats.TotalResponses)
	assert.Equal(t, 0, stats.DomainsCompleted)
	assert.Equal(t, 0.0, stats.OverallAverage)
	assert.NotNil(t, stats.DomainScores)
	assert.Empty(t, stats.DomainScores)
	assert.NotNil(t, stats.ControlPerformance)
	assert.Empty(t, stats.ControlPerformance)
	assert.Nil(t, stats.TopStrengths)
	assert.Nil(t, stats.FocusAreas)
	assert.Nil(t, stats.SubmissionDate)
}

func TestStatsJSONKeys(t *testing.T) {
	// Single domain: top_strengths present, focus_areas an empty list.
	single := Compute([]models.Response{response("d1", "c1", 3)}, map[string]string{}, map[string]string{})
	data, err := json.Marshal(single)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"top_strengths":[{`)
	assert.Contains(t, string(data), `"focus_areas":[]`)

	// No responses: the optional keys are dropped entirely.
	empty := Compute(nil, nil, nil)
	data, err = json.Marshal(empty)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "top_strengths")
	assert.NotContains(t, string(data), "focus_areas")
	assert.NotContains(t, string(data), "submission_date")
	assert.Contains(t, string(data), `"domain_scores":[]`)
	assert.Contains(t, string(data), `"control_performance":[]`)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.33, Round2(10.0/3.0))
	assert.Equal(t, 2.5, Round2(2.5))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 1.67, Round2(5.0/3.0))
}

func TestRound2TiesToEven(t *testing.T) {
	// Exactly representable halves pick the even hundredth.
	assert.Equal(t, 0.12, Round2(1.0/8.0))
	assert.Equal(t, 0.38, Round2(3.0/8.0))
	assert.Equal(t, -0.12, Round2(-1.0/8.0))
}
