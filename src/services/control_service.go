package services

import (
	"context"

	"Backend-SecAssess/src/database"
	"Backend-SecAssess/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type ControlService struct {
	db *database.Mongo
}

func NewControlService(db *database.Mongo) *ControlService {
	return &ControlService{db: db}
}

func (s *ControlService) GetAll(ctx context.Context) ([]models.Control, error) {
	cursor, err := s.db.Collection(database.ColControls).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	controls := []models.Control{}
	if err := cursor.All(ctx, &controls); err != nil {
		return nil, err
	}
	return controls, nil
}

func (s *ControlService) Create(ctx context.Context, control *models.Control) error {
	control.ID = uuid.NewString()
	_, err := s.db.Collection(database.ColControls).InsertOne(ctx, control)
	return err
}

func (s *ControlService) Update(ctx context.Context, id string, update *models.ControlUpdate) error {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Definition != nil {
		set["definition"] = *update.Definition
	}
	if update.SubDomainID != nil {
		set["subdomain_id"] = *update.SubDomainID
	}
	if len(set) == 0 {
		return ensureExists(ctx, s.db.Collection(database.ColControls), id)
	}

	res, err := s.db.Collection(database.ColControls).
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ControlService) Delete(ctx context.Context, id string) error {
	res, err := s.db.Collection(database.ColControls).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
