package assessments

import (
	"time"

	"Backend-SecAssess/src/models"

	"github.com/google/uuid"
)

// BuildResponses resolves each selection against the fetched questions
// and returns the response documents to persist. A selection whose
// question id or answer id doesn't resolve is dropped without error.
// The answer's score is copied onto the response, freezing it at
// submission time.
func BuildResponses(assessmentID, userID string, selections []models.AnswerSelection, questions map[string]models.Question, at time.Time) []models.Response {
	responses := make([]models.Response, 0, len(selections))

	for _, sel := range selections {
		question, ok := questions[sel.QuestionID]
		if !ok {
			continue
		}

		answer, ok := question.FindAnswer(sel.SelectedAnswerID)
		if !ok {
			continue
		}

		responses = append(responses, models.Response{
			ID:               uuid.NewString(),
			AssessmentID:     assessmentID,
			UserID:           userID,
			QuestionID:       question.ID,
			SelectedAnswerID: answer.ID,
			DomainID:         question.DomainID,
			SubDomainID:      question.SubDomainID,
			ControlID:        question.ControlID,
			MetricID:         question.MetricID,
			ScoreValue:       answer.ScoreValue,
			CreatedAt:        at,
		})
	}

	return responses
}
