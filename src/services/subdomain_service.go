package services

import (
	"context"

	"Backend-SecAssess/src/database"
	"Backend-SecAssess/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type SubDomainService struct {
	db *database.Mongo
}

func NewSubDomainService(db *database.Mongo) *SubDomainService {
	return &SubDomainService{db: db}
}

func (s *SubDomainService) GetAll(ctx context.Context) ([]models.SubDomain, error) {
	cursor, err := s.db.Collection(database.ColSubDomains).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subdomains := []models.SubDomain{}
	if err := cursor.All(ctx, &subdomains); err != nil {
		return nil, err
	}
	return subdomains, nil
}

func (s *SubDomainService) Create(ctx context.Context, subdomain *models.SubDomain) error {
	subdomain.ID = uuid.NewString()
	_, err := s.db.Collection(database.ColSubDomains).InsertOne(ctx, subdomain)
	return err
}

func (s *SubDomainService) Update(ctx context.Context, id string, update *models.SubDomainUpdate) error {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.DomainID != nil {
		set["domain_id"] = *update.DomainID
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if len(set) == 0 {
		return ensureExists(ctx, s.db.Collection(database.ColSubDomains), id)
	}

	res, err := s.db.Collection(database.ColSubDomains).
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SubDomainService) Delete(ctx context.Context, id string) error {
	res, err := s.db.Collection(database.ColSubDomains).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
