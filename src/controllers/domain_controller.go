package controllers

import (
	"Backend-SecAssess/src/models"
	"Backend-SecAssess/src/services"
	"Backend-SecAssess/src/utils"

	"github.com/gofiber/fiber/v2"
)

type DomainController struct {
	domains   *services.DomainService
	questions *services.QuestionService
}

func NewDomainController(domains *services.DomainService, questions *services.QuestionService) *DomainController {
	return &DomainController{domains: domains, questions: questions}
}

// GetDomains godoc
// @Summary      List assessment domains
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  models.Domain
// @Router       /domains [get]
func (ctl *DomainController) GetDomains(c *fiber.Ctx) error {
	domains, err := ctl.domains.GetAll(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching domains")
	}
	return c.JSON(domains)
}

// GetDomainQuestions godoc
// @Summary      List questions of a domain with catalog names
// @Tags         catalog
// @Produce      json
// @Param        id path string true "Domain ID"
// @Success      200  {array}  models.QuestionDetail
// @Router       /domains/{id}/questions [get]
func (ctl *DomainController) GetDomainQuestions(c *fiber.Ctx) error {
	questions, err := ctl.questions.GetByDomain(c.Context(), c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching questions")
	}
	return c.JSON(questions)
}

// CreateDomain godoc
// @Summary      Create a domain
// @Tags         admin-catalog
// @Accept       json
// @Produce      json
// @Param        body body models.Domain true "Domain"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Router       /admin/domains [post]
func (ctl *DomainController) CreateDomain(c *fiber.Ctx) error {
	var domain models.Domain
	if err := c.BodyParser(&domain); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(&domain); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.domains.Create(c.Context(), &domain); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating domain")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Domain created successfully",
		"domain":  domain,
	})
}

// UpdateDomain godoc
// @Summary      Update a domain (partial)
// @Tags         admin-catalog
// @Accept       json
// @Produce      json
// @Param        id   path string              true "Domain ID"
// @Param        body body models.DomainUpdate true "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /admin/domains/{id} [put]
func (ctl *DomainController) UpdateDomain(c *fiber.Ctx) error {
	var update models.DomainUpdate
	if err := c.BodyParser(&update); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := ctl.domains.Update(c.Context(), c.Params("id"), &update); err != nil {
		if err == services.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Domain not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error updating domain")
	}

	return c.JSON(fiber.Map{"message": "Domain updated successfully"})
}

// DeleteDomain godoc
// @Summary      Delete a domain and its subdomains and questions
// @Tags         admin-catalog
// @Produce      json
// @Param        id path string true "Domain ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /admin/domains/{id} [delete]
func (ctl *DomainController) DeleteDomain(c *fiber.Ctx) error {
	if err := ctl.domains.Delete(c.Context(), c.Params("id")); err != nil {
		if err == services.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Domain not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error deleting domain")
	}

	return c.JSON(fiber.Map{"message": "Domain and related data deleted successfully"})
}
