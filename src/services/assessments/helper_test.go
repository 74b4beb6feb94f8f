package assessments

import (
	"testing"
	"time"

	"Backend-SecAssess/src/models"

	"github.com/stretchr/testify/assert"
)

func sampleQuestion(id string) models.Question {
	return models.Question{
		ID:          id,
		DomainID:    "dom-" + id,
		SubDomainID: "sub-" + id,
		ControlID:   "ctl-" + id,
		MetricID:    "met-" + id,
		Answers: []models.Answer{
			{ID: id + "-a0", AnswerText: "Not implemented", ScoreValue: 0},
			{ID: id + "-a3", AnswerText: "Well implemented", ScoreValue: 3},
			{ID: id + "-a5", AnswerText: "Excellent", ScoreValue: 5},
		},
	}
}

func TestBuildResponsesResolvesScores(t *testing.T) {
	questions := map[string]models.Question{
		"q1": sampleQuestion("q1"),
		"q2": sampleQuestion("q2"),
	}
	selections := []models.AnswerSelection{
		{QuestionID: "q1", SelectedAnswerID: "q1-a3"},
		{QuestionID: "q2", SelectedAnswerID: "q2-a5"},
	}
	now := time.Now().UTC()

	responses := BuildResponses("assess-1", "user-1", selections, questions, now)

	assert.Len(t, responses, 2)

	first := responses[0]
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "assess-1", first.AssessmentID)
	assert.Equal(t, "user-1", first.UserID)
	assert.Equal(t, "q1", first.QuestionID)
	assert.Equal(t, "q1-a3", first.SelectedAnswerID)
	assert.Equal(t, "dom-q1", first.DomainID)
	assert.Equal(t, "sub-q1", first.SubDomainID)
	assert.Equal(t, "ctl-q1", first.ControlID)
	assert.Equal(t, "met-q1", first.MetricID)
	assert.Equal(t, 3, first.ScoreValue)
	assert.Equal(t, now, first.CreatedAt)

	assert.Equal(t, 5, responses[1].ScoreValue)
}

func TestBuildResponsesSkipsUnknownQuestion(t *testing.T) {
	questions := map[string]models.Question{"q1": sampleQuestion("q1")}
	selections := []models.AnswerSelection{
		{QuestionID: "q1", SelectedAnswerID: "q1-a0"},
		{QuestionID: "missing", SelectedAnswerID: "whatever"},
	}

	responses := BuildResponses("a", "u", selections, questions, time.Now())

	assert.Len(t, responses, 1)
	assert.Equal(t, "q1", responses[0].QuestionID)
}

func TestBuildResponsesSkipsUnknownAnswer(t *testing.T) {
	questions := map[string]models.Question{"q1": sampleQuestion("q1")}
	selections := []models.AnswerSelection{
		{QuestionID: "q1", SelectedAnswerID: "not-an-answer"},
	}

	responses := BuildResponses("a", "u", selections, questions, time.Now())

	assert.Empty(t, responses)
}

func TestBuildResponsesMixedValidity(t *testing.T) {
	questions := map[string]models.Question{
		"q1": sampleQuestion("q1"),
		"q2": sampleQuestion("q2"),
	}
	// 2 valid + 3 invalid pairs must yield exactly 2 responses.
	selections := []models.AnswerSelection{
		{QuestionID: "q1", SelectedAnswerID: "q1-a5"},
		{QuestionID: "q1", SelectedAnswerID: "bad-answer"},
		{QuestionID: "ghost", SelectedAnswerID: "q1-a5"},
		{QuestionID: "q2", SelectedAnswerID: "q2-a0"},
		{QuestionID: "ghost", SelectedAnswerID: "ghost-a0"},
	}

	responses := BuildResponses("a", "u", selections, questions, time.Now())

	assert.Len(t, responses, 2)
}

func TestBuildResponsesEmptySelections(t *testing.T) {
	responses := BuildResponses("a", "u", nil, map[string]models.Question{}, time.Now())
	assert.Empty(t, responses)
}

func TestFindAnswer(t *testing.T) {
	q := sampleQuestion("q1")

	answer, ok := q.FindAnswer("q1-a5")
	assert.True(t, ok)
	assert.Equal(t, 5, answer.ScoreValue)

	_, ok = q.FindAnswer("nope")
	assert.False(t, ok)
}
