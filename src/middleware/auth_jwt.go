package middleware

import (
	"strings"

	"Backend-SecAssess/src/database"
	"Backend-SecAssess/src/models"
	"Backend-SecAssess/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// AuthMiddleware resolves bearer tokens to live user records. The
// token only proves identity; role and status come from the store on
// every request, so blocking a user or changing their role takes
// effect without reissuing tokens.
type AuthMiddleware struct {
	db *database.Mongo
}

func NewAuthMiddleware(db *database.Mongo) *AuthMiddleware {
	return &AuthMiddleware{db: db}
}

// RequireAuth validates the bearer token, loads the user and stores it
// in locals. Order of rejections: invalid token → unknown user →
// blocked account.
func (m *AuthMiddleware) RequireAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token")
	}

	var user models.User
	err = m.db.Collection(database.ColUsers).
		FindOne(c.Context(), bson.M{"_id": claims.UserID}).
		Decode(&user)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "User not found")
	}

	if user.Status == models.StatusBlocked {
		return utils.HandleError(c, fiber.StatusForbidden, "Account blocked")
	}

	c.Locals("currentUser", &user)
	c.Locals("userId", user.ID)
	c.Locals("role", user.Role)

	return c.Next()
}

// RequireAdmin gates admin endpoints. Must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin(c *fiber.Ctx) error {
	user, ok := c.Locals("currentUser").(*models.User)
	if !ok || user.Role != models.RoleAdmin {
		return utils.HandleError(c, fiber.StatusForbidden, "Admin access required")
	}
	return c.Next()
}

// CurrentUser fetches the authenticated user stored by RequireAuth.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("currentUser").(*models.User)
	return user
}
