package services

import (
	"context"
	"testing"

	"Backend-SecAssess/src/database"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// deleteStatement extracts the single {q, limit} statement of a delete
// command.
func deleteStatement(mt *mtest.T, cmd bson.Raw) bson.Raw {
	values, err := cmd.Lookup("deletes").Array().Values()
	assert.NoError(mt, err)
	assert.Len(mt, values, 1)
	return values[0].Document()
}

func TestDomainDeleteCascades(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("descendants removed, other domains untouched", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 4}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		svc := NewDomainService(database.NewWithDatabase(mt.DB))
		assert.NoError(mt, svc.Delete(context.Background(), "dom-1"))

		// Questions and subdomains go first, scoped to the domain.
		questions := mt.GetStartedEvent()
		assert.Equal(mt, "delete", questions.CommandName)
		assert.Equal(mt, "questions", questions.Command.Lookup("delete").StringValue())
		stmt := deleteStatement(mt, questions.Command)
		assert.Equal(mt, "dom-1", stmt.Lookup("q", "domain_id").StringValue())
		assert.Equal(mt, int32(0), stmt.Lookup("limit").Int32())

		subdomains := mt.GetStartedEvent()
		assert.Equal(mt, "subdomains", subdomains.Command.Lookup("delete").StringValue())
		stmt = deleteStatement(mt, subdomains.Command)
		assert.Equal(mt, "dom-1", stmt.Lookup("q", "domain_id").StringValue())
		assert.Equal(mt, int32(0), stmt.Lookup("limit").Int32())

		// The domain itself is removed by id with limit 1, so sibling
		// domains cannot be touched.
		domains := mt.GetStartedEvent()
		assert.Equal(mt, "domains", domains.Command.Lookup("delete").StringValue())
		stmt = deleteStatement(mt, domains.Command)
		assert.Equal(mt, "dom-1", stmt.Lookup("q", "_id").StringValue())
		assert.Equal(mt, int32(1), stmt.Lookup("limit").Int32())

		assert.Nil(mt, mt.GetStartedEvent())
	})

	mt.Run("unknown domain", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		svc := NewDomainService(database.NewWithDatabase(mt.DB))
		assert.Equal(mt, ErrNotFound, svc.Delete(context.Background(), "ghost"))
	})
}
