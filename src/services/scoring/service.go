package scoring

import (
	"context"

	"Backend-SecAssess/src/database"
	"Backend-SecAssess/src/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Service คำนวณสถิติ dashboard จากคำตอบที่บันทึกไว้
type Service struct {
	db *database.Mongo
}

func NewService(db *database.Mongo) *Service {
	return &Service{db: db}
}

// AssessmentStats loads the assessment's responses and aggregates
// them. An assessment with no responses short-circuits to the zero
// stats without submission date, strengths or focus areas.
func (s *Service) AssessmentStats(ctx context.Context, assessment *models.Assessment) (*models.AssessmentStats, error) {
	responses, err := s.responsesFor(ctx, assessment.ID)
	if err != nil {
		return nil, err
	}
	if len(responses) == 0 {
		return Compute(nil, nil, nil), nil
	}

	domainNames, err := s.namesOf(ctx, database.ColDomains)
	if err != nil {
		return nil, err
	}
	controlNames, err := s.namesOf(ctx, database.ColControls)
	if err != nil {
		return nil, err
	}

	stats := Compute(responses, domainNames, controlNames)
	date := assessment.SubmissionDate
	stats.SubmissionDate = &date
	return stats, nil
}

func (s *Service) responsesFor(ctx context.Context, assessmentID string) ([]models.Response, error) {
	cursor, err := s.db.Collection(database.ColResponses).Find(ctx, bson.M{"assessment_id": assessmentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []models.Response
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

// namesOf maps id → name for a whole catalog collection. Catalogs are
// small (tens of rows), so one scan beats per-response lookups.
func (s *Service) namesOf(ctx context.Context, collection string) (map[string]string, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	names := map[string]string{}
	for cursor.Next(ctx) {
		var doc struct {
			ID   string `bson:"_id"`
			Name string `bson:"name"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		names[doc.ID] = doc.Name
	}
	return names, cursor.Err()
}
