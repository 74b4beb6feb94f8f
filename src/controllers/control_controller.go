package controllers

import (
	"Backend-SecAssess/src/models"
	"Backend-SecAssess/src/services"
	"Backend-SecAssess/src/utils"

	"github.com/gofiber/fiber/v2"
)

type ControlController struct {
	controls *services.ControlService
}

func NewControlController(controls *services.ControlService) *ControlController {
	return &ControlController{controls: controls}
}

func (ctl *ControlController) GetControls(c *fiber.Ctx) error {
	controls, err := ctl.controls.GetAll(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching controls")
	}
	return c.JSON(controls)
}

func (ctl *ControlController) CreateControl(c *fiber.Ctx) error {
	var control models.Control
	if err := c.BodyParser(&control); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(&control); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.controls.Create(c.Context(), &control); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating control")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Control created successfully",
		"control": control,
	})
}

func (ctl *ControlController) UpdateControl(c *fiber.Ctx) error {
	var update models.ControlUpdate
	if err := c.BodyParser(&update); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := ctl.controls.Update(c.Context(), c.Params("id"), &update); err != nil {
		if err == services.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Control not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error updating control")
	}

	return c.JSON(fiber.Map{"message": "Control updated successfully"})
}

func (ctl *ControlController) DeleteControl(c *fiber.Ctx) error {
	if err := ctl.controls.Delete(c.Context(), c.Params("id")); err != nil {
		if err == services.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Control not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error deleting control")
	}

	return c.JSON(fiber.Map{"message": "Control deleted successfully"})
}
