package controllers

import (
	"Backend-SecAssess/src/models"
	"Backend-SecAssess/src/services"
	"Backend-SecAssess/src/utils"

	"github.com/gofiber/fiber/v2"
)

type SubDomainController struct {
	subdomains *services.SubDomainService
}

func NewSubDomainController(subdomains *services.SubDomainService) *SubDomainController {
	return &SubDomainController{subdomains: subdomains}
}

func (ctl *SubDomainController) GetSubDomains(c *fiber.Ctx) error {
	subdomains, err := ctl.subdomains.GetAll(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching subdomains")
	}
	return c.JSON(subdomains)
}

func (ctl *SubDomainController) CreateSubDomain(c *fiber.Ctx) error {
	var subdomain models.SubDomain
	if err := c.BodyParser(&subdomain); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(&subdomain); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.subdomains.Create(c.Context(), &subdomain); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating subdomain")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Subdomain created successfully",
		"subdomain": subdomain,
	})
}

func (ctl *SubDomainController) UpdateSubDomain(c *fiber.Ctx) error {
	var update models.SubDomainUpdate
	if err := c.BodyParser(&update); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := ctl.subdomains.Update(c.Context(), c.Params("id"), &update); err != nil {
		if err == services.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Subdomain not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error updating subdomain")
	}

	return c.JSON(fiber.Map{"message": "Subdomain updated successfully"})
}

func (ctl *SubDomainController) DeleteSubDomain(c *fiber.Ctx) error {
	if err := ctl.subdomains.Delete(c.Context(), c.Params("id")); err != nil {
		if err == services.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Subdomain not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error deleting subdomain")
	}

	return c.JSON(fiber.Map{"message": "Subdomain deleted successfully"})
}
