package controllers

import (
	"fmt"

	"Backend-SecAssess/src/database"
	"Backend-SecAssess/src/models"
	"Backend-SecAssess/src/seeder"
	"Backend-SecAssess/src/services"
	"Backend-SecAssess/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminController ผูก endpoint ฝั่งผู้ดูแลระบบทั้งหมด
type AdminController struct {
	admin *services.AdminService
	db    *database.Mongo
}

func NewAdminController(admin *services.AdminService, db *database.Mongo) *AdminController {
	return &AdminController{admin: admin, db: db}
}

func (ctl *AdminController) GetUsers(c *fiber.Ctx) error {
	users, err := ctl.admin.GetAllUsers(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching users")
	}
	return c.JSON(users)
}

// CreateUser godoc
// @Summary      Create a user or admin account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body body models.AdminCreateUserRequest true "User data"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/users [post]
func (ctl *AdminController) CreateUser(c *fiber.Ctx) error {
	var req models.AdminCreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := ctl.admin.CreateUser(c.Context(), &req)
	if err != nil {
		if err == services.ErrEmailTaken {
			return utils.HandleError(c, fiber.StatusBadRequest, "Email already registered")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating user")
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("%s created successfully", roleTitle(user.Role)),
		"user":    user,
	})
}

func (ctl *AdminController) UpdateUser(c *fiber.Ctx) error {
	var update models.UserUpdate
	if err := c.BodyParser(&update); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.ValidateStruct(&update); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.admin.UpdateUser(c.Context(), c.Params("id"), &update); err != nil {
		if err == services.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error updating user")
	}

	return c.JSON(fiber.Map{"message": "User updated successfully"})
}

func (ctl *AdminController) DeleteUser(c *fiber.Ctx) error {
	if err := ctl.admin.DeleteUser(c.Context(), c.Params("id")); err != nil {
		if err == services.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error deleting user")
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

// PlatformStats godoc
// @Summary      Platform-wide user and assessment statistics
// @Tags         admin
// @Produce      json
// @Success      200  {object}  models.PlatformStats
// @Security     BearerAuth
// @Router       /admin/platform-stats [get]
func (ctl *AdminController) PlatformStats(c *fiber.Ctx) error {
	stats, err := ctl.admin.PlatformStats(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error computing platform stats")
	}
	return c.JSON(stats)
}

func (ctl *AdminController) ContentStats(c *fiber.Ctx) error {
	stats, err := ctl.admin.ContentStats(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error computing content stats")
	}
	return c.JSON(stats)
}

// InitData godoc
// @Summary      Seed the sample questionnaire and default accounts
// @Description  No-op when catalog data already exists
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /admin/init-data [post]
func (ctl *AdminController) InitData(c *fiber.Ctx) error {
	result, err := seeder.SeedSampleData(c.Context(), ctl.db)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error initializing data")
	}
	if result == nil {
		return c.JSON(fiber.Map{"message": "Data already initialized"})
	}

	adminCredentials := fiber.Map{
		"email":    seeder.DefaultAdminEmail,
		"password": seeder.DefaultAdminPassword,
	}
	testUserCredentials := fiber.Map{
		"email":    seeder.DefaultUserEmail,
		"password": seeder.DefaultUserPassword,
	}

	return c.JSON(fiber.Map{
		"message":               "Complete sample data initialized successfully",
		"domains_created":       result.Domains,
		"total_questions":       result.Questions,
		"users_created":         result.Users,
		"admin_credentials":     adminCredentials,
		"test_user_credentials": testUserCredentials,
	})
}

func (ctl *AdminController) ClearData(c *fiber.Ctx) error {
	if err := ctl.admin.ClearAllData(c.Context()); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error clearing data: "+err.Error())
	}
	return c.JSON(fiber.Map{"message": "All data cleared successfully"})
}

func roleTitle(role string) string {
	if role == models.RoleAdmin {
		return "Admin"
	}
	return "User"
}
