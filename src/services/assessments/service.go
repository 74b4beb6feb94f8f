package assessments

import (
	"context"
	"errors"
	"log"
	"time"

	"Backend-SecAssess/src/database"
	"Backend-SecAssess/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("assessment not found")

// Service รับผิดชอบการส่งแบบประเมินและบันทึกคำตอบ
type Service struct {
	db *database.Mongo
}

func NewService(db *database.Mongo) *Service {
	return &Service{db: db}
}

// Submit records one assessment for the user and resolves every
// selected answer against the question catalog. Pairs that don't
// resolve are skipped silently. The assessment document is written
// first and is never rolled back, so an all-invalid submission still
// produces an assessment with zero responses.
func (s *Service) Submit(ctx context.Context, userID string, selections []models.AnswerSelection) (string, error) {
	now := time.Now().UTC()
	assessment := models.Assessment{
		ID:             uuid.NewString(),
		UserID:         userID,
		SubmissionDate: now,
		Status:         models.AssessmentCompleted,
	}

	if _, err := s.db.Collection(database.ColAssessments).InsertOne(ctx, assessment); err != nil {
		return "", err
	}

	questions, err := s.questionsFor(ctx, selections)
	if err != nil {
		return "", err
	}

	responses := BuildResponses(assessment.ID, userID, selections, questions, now)
	if len(responses) > 0 {
		docs := make([]interface{}, len(responses))
		for i := range responses {
			docs[i] = responses[i]
		}
		if _, err := s.db.Collection(database.ColResponses).InsertMany(ctx, docs); err != nil {
			return "", err
		}
	}

	log.Printf("📝 Assessment %s submitted: %d/%d responses recorded", assessment.ID, len(responses), len(selections))
	return assessment.ID, nil
}

// ListByUser returns the user's assessments, newest first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]models.Assessment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submission_date", Value: -1}})
	cursor, err := s.db.Collection(database.ColAssessments).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := []models.Assessment{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetOwned fetches an assessment only if it belongs to the user.
func (s *Service) GetOwned(ctx context.Context, assessmentID, userID string) (*models.Assessment, error) {
	var assessment models.Assessment
	err := s.db.Collection(database.ColAssessments).
		FindOne(ctx, bson.M{"_id": assessmentID, "user_id": userID}).
		Decode(&assessment)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

// questionsFor fetches the selected questions in one query and keys
// them by id. Unknown question ids are simply absent from the map.
func (s *Service) questionsFor(ctx context.Context, selections []models.AnswerSelection) (map[string]models.Question, error) {
	byID := map[string]models.Question{}
	if len(selections) == 0 {
		return byID, nil
	}

	ids := make([]string, 0, len(selections))
	for _, sel := range selections {
		ids = append(ids, sel.QuestionID)
	}

	cursor, err := s.db.Collection(database.ColQuestions).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []models.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	for _, q := range questions {
		byID[q.ID] = q
	}
	return byID, nil
}
