package services

import (
	"context"
	"testing"

	"Backend-SecAssess/src/database"
	"Backend-SecAssess/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func registerRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		FirstName:        "Ada",
		LastName:         "Lovelace",
		OrganizationName: "Analytical Engines",
		Email:            "ada@example.com",
		Designation:      "Security Lead",
		Password:         "secret123",
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate email leaves no record", func(mt *mtest.T) {
		existing := bson.D{
			{Key: "_id", Value: "user-1"},
			{Key: "email", Value: "ada@example.com"},
		}
		// Only the duplicate lookup is answered; a write after it would
		// fail for lack of a queued response.
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "secassess.users", mtest.FirstBatch, existing))

		svc := NewAuthService(database.NewWithDatabase(mt.DB), nil)
		user, err := svc.Register(context.Background(), registerRequest())

		assert.Equal(mt, ErrEmailTaken, err)
		assert.Nil(mt, user)

		lookup := mt.GetStartedEvent()
		assert.NotNil(mt, lookup)
		assert.Equal(mt, "find", lookup.CommandName)
		assert.Nil(mt, mt.GetStartedEvent(), "no command should follow the duplicate check")
	})
}

func TestRegisterCreatesActiveUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("new email", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "secassess.users", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		svc := NewAuthService(database.NewWithDatabase(mt.DB), nil)
		user, err := svc.Register(context.Background(), registerRequest())

		assert.NoError(mt, err)
		assert.NotEmpty(mt, user.ID)
		assert.Equal(mt, models.RoleUser, user.Role)
		assert.Equal(mt, models.StatusActive, user.Status)
		assert.NotEqual(mt, "secret123", user.PasswordHash)
	})
}
