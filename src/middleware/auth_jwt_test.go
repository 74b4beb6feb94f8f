package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"Backend-SecAssess/src/database"
	"Backend-SecAssess/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func protectedApp(mw *AuthMiddleware) *fiber.App {
	app := fiber.New()
	app.Get("/me", mw.RequireAuth, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": CurrentUser(c).ID})
	})
	return app
}

func userDoc(id, status string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "email", Value: "user@example.com"},
		{Key: "role", Value: "user"},
		{Key: "status", Value: status},
	}
}

func bearerRequest(token string) *http.Request {
	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestRequireAuthRejectsBlockedUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("blocked after token issued", func(mt *mtest.T) {
		token, err := utils.GenerateJWT("user-1", "user")
		assert.NoError(mt, err)

		// The signature is still valid; the live lookup sees the block.
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "secassess.users", mtest.FirstBatch, userDoc("user-1", "blocked")))

		app := protectedApp(NewAuthMiddleware(database.NewWithDatabase(mt.DB)))
		resp, err := app.Test(bearerRequest(token))

		assert.NoError(mt, err)
		assert.Equal(mt, fiber.StatusForbidden, resp.StatusCode)
	})

	mt.Run("active user passes", func(mt *mtest.T) {
		token, err := utils.GenerateJWT("user-1", "user")
		assert.NoError(mt, err)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "secassess.users", mtest.FirstBatch, userDoc("user-1", "active")))

		app := protectedApp(NewAuthMiddleware(database.NewWithDatabase(mt.DB)))
		resp, err := app.Test(bearerRequest(token))

		assert.NoError(mt, err)
		assert.Equal(mt, fiber.StatusOK, resp.StatusCode)
	})

	mt.Run("deleted user rejected", func(mt *mtest.T) {
		token, err := utils.GenerateJWT("user-gone", "user")
		assert.NoError(mt, err)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "secassess.users", mtest.FirstBatch))

		app := protectedApp(NewAuthMiddleware(database.NewWithDatabase(mt.DB)))
		resp, err := app.Test(bearerRequest(token))

		assert.NoError(mt, err)
		assert.Equal(mt, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRequireAuthMissingHeader(t *testing.T) {
	app := protectedApp(NewAuthMiddleware(nil))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/me", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
