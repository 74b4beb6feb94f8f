package services

import (
	"context"

	"Backend-SecAssess/src/database"
	"Backend-SecAssess/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type MetricService struct {
	db *database.Mongo
}

func NewMetricService(db *database.Mongo) *MetricService {
	return &MetricService{db: db}
}

func (s *MetricService) GetAll(ctx context.Context) ([]models.Metric, error) {
	cursor, err := s.db.Collection(database.ColMetrics).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	metrics := []models.Metric{}
	if err := cursor.All(ctx, &metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}

func (s *MetricService) Create(ctx context.Context, metric *models.Metric) error {
	metric.ID = uuid.NewString()
	_, err := s.db.Collection(database.ColMetrics).InsertOne(ctx, metric)
	return err
}

func (s *MetricService) Update(ctx context.Context, id string, update *models.MetricUpdate) error {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.ControlID != nil {
		set["control_id"] = *update.ControlID
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if len(set) == 0 {
		return ensureExists(ctx, s.db.Collection(database.ColMetrics), id)
	}

	res, err := s.db.Collection(database.ColMetrics).
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MetricService) Delete(ctx context.Context, id string) error {
	res, err := s.db.Collection(database.ColMetrics).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
