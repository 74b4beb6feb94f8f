package controllers

import (
	"fmt"

	"Backend-SecAssess/src/models"
	"Backend-SecAssess/src/services"
	"Backend-SecAssess/src/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account and return a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.RegisterRequest true "Registration data"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Router       /auth/register [post]
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := ctl.auth.Register(c.Context(), &req)
	if err != nil {
		if err == services.ErrEmailTaken {
			return utils.HandleError(c, fiber.StatusBadRequest, "Email already registered")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating user")
	}

	token, err := utils.GenerateJWT(user.ID, user.Role)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate by email and password, return a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.LoginRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      429  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if ctl.auth.IsRateLimited(c.Context(), req.Email) {
		remaining := ctl.auth.RemainingCooldown(c.Context(), req.Email)
		return utils.HandleError(c, fiber.StatusTooManyRequests,
			fmt.Sprintf("Too many login attempts. Please try again in %d minutes and %d seconds.",
				int(remaining.Minutes()), int(remaining.Seconds())%60))
	}

	user, err := ctl.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		ctl.auth.LogLoginAttempt(c.Context(), req.Email, c.IP(), false)

		if err == services.ErrAccountBlocked {
			return utils.HandleError(c, fiber.StatusForbidden, "Account blocked")
		}
		ctl.auth.RecordFailedLogin(c.Context(), req.Email)
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := utils.GenerateJWT(user.ID, user.Role)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	ctl.auth.LogLoginAttempt(c.Context(), req.Email, c.IP(), true)
	ctl.auth.ResetLoginAttempts(c.Context(), req.Email)

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
