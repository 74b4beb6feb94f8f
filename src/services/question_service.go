package services

import (
	"context"

	"Backend-SecAssess/src/database"
	"Backend-SecAssess/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// QuestionService จัดการคำถามและตัวเลือกคำตอบที่ฝังอยู่
type QuestionService struct {
	db *database.Mongo
}

func NewQuestionService(db *database.Mongo) *QuestionService {
	return &QuestionService{db: db}
}

func (s *QuestionService) GetAll(ctx context.Context) ([]models.Question, error) {
	cursor, err := s.db.Collection(database.ColQuestions).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := []models.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// Create assigns ids to the question and to any embedded answer that
// arrived without one.
func (s *QuestionService) Create(ctx context.Context, question *models.Question) error {
	question.ID = uuid.NewString()
	for i := range question.Answers {
		if question.Answers[i].ID == "" {
			question.Answers[i].ID = uuid.NewString()
		}
	}

	_, err := s.db.Collection(database.ColQuestions).InsertOne(ctx, question)
	return err
}

func (s *QuestionService) Update(ctx context.Context, id string, update *models.QuestionUpdate) error {
	set := bson.M{}
	if update.QuestionText != nil {
		set["question_text"] = *update.QuestionText
	}
	if update.DomainID != nil {
		set["domain_id"] = *update.DomainID
	}
	if update.SubDomainID != nil {
		set["subdomain_id"] = *update.SubDomainID
	}
	if update.ControlID != nil {
		set["control_id"] = *update.ControlID
	}
	if update.MetricID != nil {
		set["metric_id"] = *update.MetricID
	}
	if update.Answers != nil {
		answers := *update.Answers
		for i := range answers {
			if answers[i].ID == "" {
				answers[i].ID = uuid.NewString()
			}
		}
		set["answers"] = answers
	}
	if len(set) == 0 {
		return ensureExists(ctx, s.db.Collection(database.ColQuestions), id)
	}

	res, err := s.db.Collection(database.ColQuestions).
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *QuestionService) Delete(ctx context.Context, id string) error {
	res, err := s.db.Collection(database.ColQuestions).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByDomain returns the domain's questions joined with the names of
// their subdomain, control and metric. Catalog rows that no longer
// exist render as empty names, not errors.
func (s *QuestionService) GetByDomain(ctx context.Context, domainID string) ([]models.QuestionDetail, error) {
	cursor, err := s.db.Collection(database.ColQuestions).Find(ctx, bson.M{"domain_id": domainID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []models.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}

	subdomains, err := s.subDomainNames(ctx, questions)
	if err != nil {
		return nil, err
	}
	controls, err := s.controlSummaries(ctx, questions)
	if err != nil {
		return nil, err
	}
	metrics, err := s.metricNames(ctx, questions)
	if err != nil {
		return nil, err
	}

	details := []models.QuestionDetail{}
	for _, q := range questions {
		details = append(details, models.QuestionDetail{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Answers:      q.Answers,
			SubDomain:    subdomains[q.SubDomainID],
			Control:      controls[q.ControlID],
			Metric:       metrics[q.MetricID],
			DomainID:     q.DomainID,
			SubDomainID:  q.SubDomainID,
			ControlID:    q.ControlID,
			MetricID:     q.MetricID,
		})
	}

	return details, nil
}

func (s *QuestionService) subDomainNames(ctx context.Context, questions []models.Question) (map[string]string, error) {
	ids := make([]string, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.SubDomainID)
	}

	names := map[string]string{}
	if len(ids) == 0 {
		return names, nil
	}

	cursor, err := s.db.Collection(database.ColSubDomains).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subdomains []models.SubDomain
	if err := cursor.All(ctx, &subdomains); err != nil {
		return nil, err
	}
	for _, sd := range subdomains {
		names[sd.ID] = sd.Name
	}
	return names, nil
}

func (s *QuestionService) controlSummaries(ctx context.Context, questions []models.Question) (map[string]models.ControlSummary, error) {
	ids := make([]string, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ControlID)
	}

	summaries := map[string]models.ControlSummary{}
	if len(ids) == 0 {
		return summaries, nil
	}

	cursor, err := s.db.Collection(database.ColControls).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var controls []models.Control
	if err := cursor.All(ctx, &controls); err != nil {
		return nil, err
	}
	for _, c := range controls {
		summaries[c.ID] = models.ControlSummary{Name: c.Name, Definition: c.Definition}
	}
	return summaries, nil
}

func (s *QuestionService) metricNames(ctx context.Context, questions []models.Question) (map[string]string, error) {
	ids := make([]string, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.MetricID)
	}

	names := map[string]string{}
	if len(ids) == 0 {
		return names, nil
	}

	cursor, err := s.db.Collection(database.ColMetrics).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var metrics []models.Metric
	if err := cursor.All(ctx, &metrics); err != nil {
		return nil, err
	}
	for _, m := range metrics {
		names[m.ID] = m.Name
	}
	return names, nil
}
