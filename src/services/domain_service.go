package services

import (
	"context"
	"log"

	"Backend-SecAssess/src/database"
	"Backend-SecAssess/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DomainService CRUD ของโดเมนแบบประเมิน
type DomainService struct {
	db *database.Mongo
}

func NewDomainService(db *database.Mongo) *DomainService {
	return &DomainService{db: db}
}

// GetAll returns domains ordered by their display order.
func (s *DomainService) GetAll(ctx context.Context) ([]models.Domain, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := s.db.Collection(database.ColDomains).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	domains := []models.Domain{}
	if err := cursor.All(ctx, &domains); err != nil {
		return nil, err
	}
	return domains, nil
}

func (s *DomainService) Create(ctx context.Context, domain *models.Domain) error {
	domain.ID = uuid.NewString()
	_, err := s.db.Collection(database.ColDomains).InsertOne(ctx, domain)
	return err
}

// Update applies the non-nil fields of the partial update.
func (s *DomainService) Update(ctx context.Context, id string, update *models.DomainUpdate) error {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Icon != nil {
		set["icon"] = *update.Icon
	}
	if update.Order != nil {
		set["order"] = *update.Order
	}
	if len(set) == 0 {
		return ensureExists(ctx, s.db.Collection(database.ColDomains), id)
	}

	res, err := s.db.Collection(database.ColDomains).
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the domain together with its subdomains and
// questions. Recorded responses keep their denormalized scores and are
// left untouched.
func (s *DomainService) Delete(ctx context.Context, id string) error {
	if _, err := s.db.Collection(database.ColQuestions).DeleteMany(ctx, bson.M{"domain_id": id}); err != nil {
		return err
	}
	if _, err := s.db.Collection(database.ColSubDomains).DeleteMany(ctx, bson.M{"domain_id": id}); err != nil {
		return err
	}

	res, err := s.db.Collection(database.ColDomains).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	log.Println("🗑️ Domain deleted with descendants:", id)
	return nil
}
